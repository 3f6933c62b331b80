package mapgen

import "container/list"

// CacheCapacity bounds the number of generated results retained per
// coordinator.
const CacheCapacity = 20

// resultCache is a small LRU keyed by the canonical option key. Not safe
// for concurrent use; the owning coordinator serializes access.
type resultCache struct {
	capacity int
	order    *list.List // front = most recently used
	items    map[string]*list.Element
}

type cacheEntry struct {
	key    string
	layers *GeneratedMapLayers
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached layers for key, marking the entry most recently
// used.
func (c *resultCache) Get(key string) (*GeneratedMapLayers, bool) {
	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).layers, true
}

// Put inserts or refreshes an entry, evicting the least recently used one
// if the cache would exceed capacity.
func (c *resultCache) Put(key string, layers *GeneratedMapLayers) {
	if elem, ok := c.items[key]; ok {
		elem.Value.(*cacheEntry).layers = layers
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, layers: layers})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

func (c *resultCache) Len() int {
	return c.order.Len()
}

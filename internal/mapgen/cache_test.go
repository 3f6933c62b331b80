package mapgen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCacheEviction(t *testing.T) {
	cache := newResultCache(CacheCapacity)

	// Insert one more distinct entry than the cache holds.
	for i := 0; i <= CacheCapacity; i++ {
		cache.Put(fmt.Sprintf("key-%d", i), &GeneratedMapLayers{CellsX: i})
	}

	require.Equal(t, CacheCapacity, cache.Len())

	_, ok := cache.Get("key-0")
	assert.False(t, ok, "least recently used entry must be evicted")

	for i := 1; i <= CacheCapacity; i++ {
		layers, ok := cache.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d should survive", i)
		assert.Equal(t, i, layers.CellsX)
	}
}

func TestResultCacheGetRefreshesRecency(t *testing.T) {
	cache := newResultCache(2)

	cache.Put("a", &GeneratedMapLayers{CellsX: 1})
	cache.Put("b", &GeneratedMapLayers{CellsX: 2})

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", &GeneratedMapLayers{CellsX: 3})

	_, ok = cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestResultCachePutRefreshesExistingKey(t *testing.T) {
	cache := newResultCache(2)

	cache.Put("a", &GeneratedMapLayers{CellsX: 1})
	cache.Put("a", &GeneratedMapLayers{CellsX: 9})

	require.Equal(t, 1, cache.Len())
	layers, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 9, layers.CellsX)
}

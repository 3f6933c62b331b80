package mapgen

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/Loreweave/api/internal/logging"
)

// Coordinator owns one consumer's generation state: the LRU of previous
// results, the worker handle, and the request-correlation counter. It is
// created and destroyed together with its consumer; nothing is shared
// across instances.
//
// The one concurrency invariant it preserves: of all outstanding requests,
// only the response carrying the most recently issued RequestID is ever
// applied. Everything else is discarded without a signal.
type Coordinator struct {
	mu        sync.Mutex
	cache     *resultCache
	worker    Worker
	responses chan GenerationResponse
	nextID    uint64
	activeID  uint64 // 0 when no request is outstanding
	latest    GenerationOptions
	logger    *log.Logger
}

// NewCoordinator creates a coordinator backed by the default goroutine
// worker.
func NewCoordinator() *Coordinator {
	return NewCoordinatorWithWorker(DefaultWorkerFactory)
}

// NewSynchronousCoordinator creates a coordinator with no worker: every
// cache miss is computed on the caller's goroutine and returned directly.
// The server's preview endpoint uses this mode so repeated previews still
// share the LRU.
func NewSynchronousCoordinator() *Coordinator {
	return NewCoordinatorWithWorker(nil)
}

// NewCoordinatorWithWorker creates a coordinator using the given worker
// factory. A nil factory, or a factory error, degrades the coordinator to
// synchronous-only generation for its whole lifetime; that is a slower
// path, not an error.
func NewCoordinatorWithWorker(factory WorkerFactory) *Coordinator {
	c := &Coordinator{
		cache:     newResultCache(CacheCapacity),
		responses: make(chan GenerationResponse, 16),
		logger:    logging.WithFields("component", "mapgen-coordinator"),
	}
	if factory == nil {
		c.logger.Debug("No worker factory, running synchronous-only")
		return c
	}
	worker, err := factory(c.responses)
	if err != nil {
		c.logger.Warn("Worker unavailable, degrading to synchronous generation", "error", err)
		return c
	}
	c.worker = worker
	return c
}

// Request submits a new option set. On a cache hit, or whenever no worker
// is available, the layers are returned immediately with ready=true. On a
// miss with a live worker the request is dispatched and (nil, false) is
// returned; the response eventually arrives on Responses and must be fed
// to Apply.
func (c *Coordinator) Request(opts GenerationOptions) (layers *GeneratedMapLayers, ready bool) {
	opts = opts.normalized()
	key := opts.CacheKey()

	c.mu.Lock()
	c.latest = opts
	if cached, ok := c.cache.Get(key); ok {
		c.activeID = 0 // any outstanding request is now superseded by a hit
		c.mu.Unlock()
		c.logger.Debug("Cache hit", "key", key)
		return cached, true
	}

	if c.worker == nil {
		layers := Generate(opts)
		c.cache.Put(key, layers)
		c.mu.Unlock()
		return layers, true
	}

	c.nextID++
	id := c.nextID
	c.activeID = id
	worker := c.worker
	c.mu.Unlock()

	req := GenerationRequest{RequestID: id, CacheKey: key, Options: opts}
	if err := worker.Dispatch(req); err != nil {
		logging.WithRequestID(id).Warn("Worker dispatch failed, recovering synchronously", "error", err)
		return c.recover(id, opts), true
	}

	logging.WithRequestID(id).Debug("Generation dispatched", "key", key)
	return nil, false
}

// Responses delivers worker results. The consumer selects on this channel
// and hands each response to Apply; stale responses are filtered there,
// not here.
func (c *Coordinator) Responses() <-chan GenerationResponse {
	return c.responses
}

// Apply correlates a response with the currently active request. A stale
// RequestID is discarded silently. A worker error on the active request
// triggers a one-time synchronous recovery with the latest options; the
// worker is not retried for that request. A matching success is cached and
// returned.
func (c *Coordinator) Apply(resp GenerationResponse) (*GeneratedMapLayers, bool) {
	c.mu.Lock()
	if resp.RequestID != c.activeID {
		c.mu.Unlock()
		logging.WithRequestID(resp.RequestID).Debug("Discarding stale response")
		return nil, false
	}

	if resp.Err != nil {
		opts := c.latest
		c.mu.Unlock()
		logging.WithRequestID(resp.RequestID).Warn("Worker failed, recovering synchronously", "error", resp.Err)
		return c.recover(resp.RequestID, opts), true
	}

	c.cache.Put(resp.CacheKey, resp.Layers)
	c.activeID = 0
	c.mu.Unlock()
	logging.WithRequestID(resp.RequestID).Debug("Generation applied", "key", resp.CacheKey)
	return resp.Layers, true
}

// recover regenerates synchronously and treats the result as if it were
// the matching response for id.
func (c *Coordinator) recover(id uint64, opts GenerationOptions) *GeneratedMapLayers {
	layers := Generate(opts)
	c.mu.Lock()
	c.cache.Put(opts.CacheKey(), layers)
	if c.activeID == id {
		c.activeID = 0
	}
	c.mu.Unlock()
	return layers
}

// Close discards the worker handle. In-flight work is not notified; its
// responses simply go nowhere.
func (c *Coordinator) Close() {
	c.mu.Lock()
	worker := c.worker
	c.worker = nil
	c.mu.Unlock()
	if worker != nil {
		worker.Close()
	}
}

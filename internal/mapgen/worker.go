package mapgen

import (
	"errors"
	"sync"
)

// ErrWorkerClosed is returned by Dispatch after the worker handle has been
// discarded.
var ErrWorkerClosed = errors.New("mapgen: worker closed")

// GenerationRequest identifies one unit of generation work. RequestID is
// monotonically increasing per coordinator and is the sole correlation
// token between a request and its eventual response.
type GenerationRequest struct {
	RequestID uint64
	CacheKey  string
	Options   GenerationOptions
}

// GenerationResponse carries a finished (or failed) generation back to the
// coordinator.
type GenerationResponse struct {
	RequestID uint64
	CacheKey  string
	Layers    *GeneratedMapLayers
	Err       error
}

// Worker runs generation off the caller's goroutine. Dispatch must not
// block on computation; responses arrive on the channel the factory was
// given. Close discards the handle without notifying in-flight work.
type Worker interface {
	Dispatch(req GenerationRequest) error
	Close()
}

// WorkerFactory constructs a Worker that reports onto results. Returning an
// error degrades the owning coordinator to synchronous-only generation.
type WorkerFactory func(results chan<- GenerationResponse) (Worker, error)

// DefaultWorkerFactory starts a dedicated generation goroutine.
func DefaultWorkerFactory(results chan<- GenerationResponse) (Worker, error) {
	w := &goroutineWorker{
		requests: make(chan GenerationRequest, 8),
		done:     make(chan struct{}),
	}
	go w.run(results)
	return w, nil
}

type goroutineWorker struct {
	requests  chan GenerationRequest
	done      chan struct{}
	closeOnce sync.Once
}

func (w *goroutineWorker) run(results chan<- GenerationResponse) {
	for {
		select {
		case req := <-w.requests:
			layers := Generate(req.Options)
			select {
			case results <- GenerationResponse{RequestID: req.RequestID, CacheKey: req.CacheKey, Layers: layers}:
			case <-w.done:
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *goroutineWorker) Dispatch(req GenerationRequest) error {
	select {
	case w.requests <- req:
		return nil
	case <-w.done:
		return ErrWorkerClosed
	}
}

func (w *goroutineWorker) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
}

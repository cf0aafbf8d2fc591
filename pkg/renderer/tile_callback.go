package renderer

import (
	"image"
	"sync"
)

// TileEvent is a tile-completion notification produced by a worker
type TileEvent struct {
	Bounds image.Rectangle
	Stats  RenderStats
}

// TileCallback consumes tile events on the drain side
type TileCallback func(TileEvent)

// TileCallbackQueue serializes tile-completion notifications from worker
// goroutines to a single consumer. Workers may post from any goroutine; a
// single mutex guards each enqueue and each drain, and Drain replays the
// pending events in arrival order. The consumer is expected to call Drain
// from exactly one goroutine.
type TileCallbackQueue struct {
	mu       sync.Mutex
	pending  []TileEvent
	callback TileCallback
}

// NewTileCallbackQueue creates a queue that replays events into the given
// callback. A nil callback discards events on drain.
func NewTileCallbackQueue(callback TileCallback) *TileCallbackQueue {
	return &TileCallbackQueue{callback: callback}
}

// Post enqueues a tile event. Safe to call from any worker goroutine.
func (q *TileCallbackQueue) Post(event TileEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, event)
}

// Drain replays all pending events in arrival order on the caller's
// goroutine and clears the queue.
func (q *TileCallbackQueue) Drain() {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	if q.callback == nil {
		return
	}
	for _, event := range pending {
		q.callback(event)
	}
}

// PendingCount returns the number of queued events, for monitoring
func (q *TileCallbackQueue) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

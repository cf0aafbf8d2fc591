package renderer

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileCallbackQueue_DrainReplaysInArrivalOrder(t *testing.T) {
	var got []image.Rectangle
	queue := NewTileCallbackQueue(func(ev TileEvent) {
		got = append(got, ev.Bounds)
	})

	expected := []image.Rectangle{
		image.Rect(0, 0, 8, 8),
		image.Rect(8, 0, 16, 8),
		image.Rect(0, 8, 8, 16),
	}
	for _, bounds := range expected {
		queue.Post(TileEvent{Bounds: bounds})
	}

	require.Equal(t, 3, queue.PendingCount())
	queue.Drain()
	assert.Equal(t, expected, got)
	assert.Equal(t, 0, queue.PendingCount())
}

func TestTileCallbackQueue_ConcurrentPosts(t *testing.T) {
	count := 0
	queue := NewTileCallbackQueue(func(TileEvent) { count++ })

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				queue.Post(TileEvent{Bounds: image.Rect(0, 0, 1, 1)})
			}
		}()
	}
	wg.Wait()

	queue.Drain()
	assert.Equal(t, workers*perWorker, count)
}

func TestTileCallbackQueue_NilCallback(t *testing.T) {
	queue := NewTileCallbackQueue(nil)
	queue.Post(TileEvent{})
	queue.Drain()
	assert.Equal(t, 0, queue.PendingCount())
}

func TestTileCallbackQueue_DrainIsIncremental(t *testing.T) {
	count := 0
	queue := NewTileCallbackQueue(func(TileEvent) { count++ })

	queue.Post(TileEvent{})
	queue.Drain()
	require.Equal(t, 1, count)

	queue.Post(TileEvent{})
	queue.Post(TileEvent{})
	queue.Drain()
	assert.Equal(t, 3, count)
}

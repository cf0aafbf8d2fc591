package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"

	"github.com/aurora-render/aurora/pkg/core"
)

// TileTask is a tile rendering task for the worker pool
type TileTask struct {
	TaskID        int
	Bounds        image.Rectangle
	TargetSamples int
	PixelStats    [][]PixelStats // Shared pixel stats array to write into
	Seed          int64          // Per-tile seed for deterministic renders
}

// TileResult is the outcome of rendering one tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool renders tiles in parallel. Each worker owns its tile renderer
// and random generator; the shared scattering models are read-only, so no
// locking happens inside a shading evaluation.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	callbacks   *TileCallbackQueue
	newRenderer func() *TileRenderer
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers workers (default: NumCPU). The
// factory builds one tile renderer per worker; callbacks may be nil.
func NewWorkerPool(numWorkers, maxTiles int, factory func() *TileRenderer, callbacks *TileCallbackQueue) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
		callbacks:   callbacks,
		newRenderer: factory,
	}
}

// Start launches the workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop signals that no more tasks will arrive and waits for the workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit queues a tile task
func (wp *WorkerPool) Submit(task TileTask) {
	wp.taskQueue <- task
}

// Result retrieves a completed tile result; ok is false once the pool has
// stopped and all results are consumed
func (wp *WorkerPool) Result() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	tileRenderer := wp.newRenderer()
	for task := range wp.taskQueue {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(task.Seed)))
		stats := tileRenderer.RenderBounds(task.Bounds, task.PixelStats, sampler, task.TargetSamples)

		if wp.callbacks != nil {
			wp.callbacks.Post(TileEvent{Bounds: task.Bounds, Stats: stats})
		}
		wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}

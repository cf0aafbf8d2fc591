// Package renderer contains the rendering kernel: camera, path-tracing
// integrator, tile/worker orchestration and image assembly.
package renderer

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/aurora-render/aurora/log"
	"github.com/aurora-render/aurora/pkg/scene"
)

var logger = log.New("renderer")

// Options configure a render
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	TileSize        int
	NumWorkers      int
	MaxDepth        int
	OnTileDone      TileCallback // Optional; replayed serially in arrival order
}

// Renderer renders a scene into an image using a pool of tile workers
type Renderer struct {
	scene   *scene.Scene
	options Options
}

// NewRenderer creates a renderer for a scene
func NewRenderer(sc *scene.Scene, options Options) *Renderer {
	if options.TileSize <= 0 {
		options.TileSize = 64
	}
	if options.SamplesPerPixel <= 0 {
		options.SamplesPerPixel = 64
	}
	if options.MaxDepth <= 0 {
		options.MaxDepth = 8
	}
	return &Renderer{scene: sc, options: options}
}

// Render renders the full frame and returns the image with render statistics
func (r *Renderer) Render() (image.Image, RenderStats) {
	opts := r.options
	start := time.Now()

	camera := NewCamera(r.scene.Camera, opts.Width, opts.Height)

	pixelStats := make([][]PixelStats, opts.Height)
	for j := range pixelStats {
		pixelStats[j] = make([]PixelStats, opts.Width)
	}

	tiles := splitIntoTiles(opts.Width, opts.Height, opts.TileSize)
	callbacks := NewTileCallbackQueue(opts.OnTileDone)

	pool := NewWorkerPool(opts.NumWorkers, len(tiles), func() *TileRenderer {
		integrator := NewPathTracer()
		integrator.MaxDepth = opts.MaxDepth
		return NewTileRenderer(r.scene, camera, integrator)
	}, callbacks)

	logger.Infof("rendering %dx%d, %d spp, %d tiles, %d workers",
		opts.Width, opts.Height, opts.SamplesPerPixel, len(tiles), pool.NumWorkers())

	pool.Start()
	for i, bounds := range tiles {
		pool.Submit(TileTask{
			TaskID:        i,
			Bounds:        bounds,
			TargetSamples: opts.SamplesPerPixel,
			PixelStats:    pixelStats,
			Seed:          int64(i) + 1,
		})
	}
	go pool.Stop()

	// Single consumer: collect results and replay tile callbacks in order
	var stats RenderStats
	completed := 0
	for {
		result, ok := pool.Result()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
		completed++
		callbacks.Drain()

		if completed%32 == 0 {
			logger.Debugf("completed %d/%d tiles", completed, len(tiles))
		}
	}
	callbacks.Drain()

	logger.Infof("render finished in %s (%.1f avg spp)", time.Since(start).Round(time.Millisecond), stats.AverageSamples)

	return assembleImage(pixelStats, opts.Width, opts.Height), stats
}

// splitIntoTiles partitions the frame into non-overlapping tile rectangles
func splitIntoTiles(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)))
		}
	}
	return tiles
}

// assembleImage converts accumulated pixel stats into a gamma-corrected image
func assembleImage(pixelStats [][]PixelStats, width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := pixelStats[j][i].Color()
			img.SetRGBA(i, j, color.RGBA{
				R: toSRGB(c[0]),
				G: toSRGB(c[1]),
				B: toSRGB(c[2]),
				A: 255,
			})
		}
	}
	return img
}

// toSRGB clamps and gamma-corrects a linear radiance value to an 8-bit channel
func toSRGB(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(255.0 * math.Sqrt(v))
}

// WritePNG encodes an image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

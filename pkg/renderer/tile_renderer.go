package renderer

import (
	"image"
	"math"

	"github.com/aurora-render/aurora/pkg/core"
	"github.com/aurora-render/aurora/pkg/scene"
)

// TileRenderer renders rectangular pixel regions with a path tracer
type TileRenderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator *PathTracer

	// Adaptive sampling: stop a pixel early once its relative luminance
	// error drops below the threshold, after a minimum fraction of samples
	adaptiveThreshold  float64
	adaptiveMinSamples float64
}

// NewTileRenderer creates a tile renderer for a scene and camera
func NewTileRenderer(sc *scene.Scene, camera *Camera, integrator *PathTracer) *TileRenderer {
	return &TileRenderer{
		scene:              sc,
		camera:             camera,
		integrator:         integrator,
		adaptiveThreshold:  0.01,
		adaptiveMinSamples: 0.25,
	}
}

// RenderBounds renders the pixels within bounds into the shared pixel stats
// array. Tiles have non-overlapping bounds, so concurrent calls for distinct
// tiles are safe.
func (tr *TileRenderer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, targetSamples int) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			used := tr.samplePixel(i, j, &pixelStats[j][i], sampler, targetSamples)
			stats.TotalSamples += used
			stats.MinSamples = min(stats.MinSamples, used)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, used)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}

// samplePixel samples one pixel until convergence or the sample budget runs out
func (tr *TileRenderer) samplePixel(i, j int, ps *PixelStats, sampler core.Sampler, maxSamples int) int {
	initial := ps.SampleCount

	for ps.SampleCount < maxSamples && !tr.converged(ps, maxSamples) {
		ray, diff := tr.camera.GetRay(i, j, sampler.Get2D())
		color := tr.integrator.RayColor(ray, diff, tr.scene, sampler)
		ps.AddSample(color)
	}

	return ps.SampleCount - initial
}

// converged applies the adaptive stopping rule based on relative luminance error
func (tr *TileRenderer) converged(ps *PixelStats, maxSamples int) bool {
	minSamples := max(1, int(float64(maxSamples)*tr.adaptiveMinSamples))
	if ps.SampleCount < minSamples {
		return false
	}

	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	variance := math.Max(0, meanSq-mean*mean)

	if mean <= 1e-8 {
		return variance < 1e-6
	}

	relativeError := math.Sqrt(variance/float64(ps.SampleCount)) / mean
	return relativeError < tr.adaptiveThreshold
}

package renderer

import "github.com/aurora-render/aurora/pkg/core"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MaxSamples     int     // Maximum samples allowed per pixel
	MinSamples     int     // Minimum samples taken by any pixel
	MaxSamplesUsed int     // Maximum samples actually used by any pixel
}

// Merge accumulates another stats block into this one
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.MaxSamples = max(rs.MaxSamples, other.MaxSamples)
	rs.MaxSamplesUsed = max(rs.MaxSamplesUsed, other.MaxSamplesUsed)
	if rs.MinSamples == 0 || other.MinSamples < rs.MinSamples {
		rs.MinSamples = other.MinSamples
	}
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Spectrum // Radiance accumulator for the final result
	LuminanceAccum   float64       // Luminance accumulator for convergence
	LuminanceSqAccum float64       // Luminance squared for variance
	SampleCount      int           // Number of samples taken
}

// AddSample adds a new radiance sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Spectrum) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// Color returns the current average radiance for this pixel
func (ps *PixelStats) Color() core.Spectrum {
	if ps.SampleCount == 0 {
		return core.Spectrum{}
	}
	return ps.ColorAccum.Scale(1.0 / float64(ps.SampleCount))
}

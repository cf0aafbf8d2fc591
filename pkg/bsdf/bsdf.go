// Package bsdf implements the scattering-model core of the renderer: the
// polymorphic BSDF contract every material variant satisfies, plus the
// concrete models. Sampling, evaluation and pdf evaluation must agree with
// each other for the renderer's Monte Carlo estimates and MIS weights to be
// unbiased.
package bsdf

import (
	"github.com/aurora-render/aurora/pkg/core"
)

// TransportMode distinguishes camera-path (radiance) from light-path
// (importance, i.e. adjoint) transport in bidirectional algorithms.
type TransportMode int

const (
	// Radiance transport: rays traced from the camera toward lights
	Radiance TransportMode = iota
	// Importance transport: rays traced from lights toward the camera
	Importance
)

// Differentials carries the screen-space ray-footprint derivatives of a
// direction, used downstream for texture filtering.
type Differentials struct {
	DX core.Vec3
	DY core.Vec3
}

// SampleResult is populated by Sample. Its zero value is the no-op state
// (weight black, pdf zero, mode unset); callers detect a rejected sample
// either through the ok return or by checking Mode == ModeNone.
type SampleResult struct {
	Incoming      core.Vec3           // Sampled incoming direction (world space, unit length)
	Differentials Differentials       // Propagated footprint of the incoming direction
	Weight        core.Spectrum       // Spectral transport weight for the sampled direction
	PDF           float64             // Solid-angle density of Incoming under the model's strategy
	Mode          core.ScatteringMode // The single mode that produced the sample
}

// BSDF is the contract every scattering model satisfies.
//
// All three operations are pure: they read their inputs, mutate no shared
// state, and may be called concurrently from any number of worker goroutines.
// Geometric edge cases (directions below the surface, degenerate half
// vectors) and mode mismatches yield zero results, never errors; the kernel
// calls these operations unconditionally across the full space of sampled
// directions.
type BSDF interface {
	// Model returns the stable identifier of the physical model, used for
	// statistics, debugging and registry lookup.
	Model() string

	// Modes returns the scattering modes this model is capable of producing.
	Modes() core.ScatteringMode

	// Sample draws an incoming direction for the given outgoing direction
	// using the model's importance strategy, consuming one 2D sample from the
	// sampler. It reports the transport weight and the matching pdf, and
	// propagates ray differentials for the sampled direction. Returns ok=false
	// (with the zero SampleResult) when the outgoing direction lies below the
	// shading surface.
	Sample(frame core.Frame, outgoing core.Vec3, outDiff Differentials,
		transport TransportMode, cosineMult bool, sampler core.Sampler) (SampleResult, bool)

	// Evaluate computes the transport weight and pdf for an explicit pair of
	// unit directions. The returned pdf must numerically match what Sample and
	// EvaluatePDF report for the same pair. Returns zero/black when modes
	// excludes this model's capability or either direction lies below the
	// shading surface.
	Evaluate(frame core.Frame, outgoing, incoming core.Vec3,
		transport TransportMode, cosineMult bool, modes core.ScatteringMode) (float64, core.Spectrum)

	// EvaluatePDF computes only the sampling density for an explicit pair of
	// unit directions, with the same rejection rules as Evaluate.
	EvaluatePDF(frame core.Frame, outgoing, incoming core.Vec3, modes core.ScatteringMode) float64
}

// saturate clamps a value into [0,1] so that degenerate geometry cannot feed
// a negative base into a power and propagate NaNs into the image.
func saturate(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// pow5 raises x to the fifth power without going through math.Pow.
func pow5(x float64) float64 {
	x2 := x * x
	return x2 * x2 * x
}

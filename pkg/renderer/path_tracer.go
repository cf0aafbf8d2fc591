package renderer

import (
	"math"

	"github.com/aurora-render/aurora/pkg/bsdf"
	"github.com/aurora-render/aurora/pkg/core"
	"github.com/aurora-render/aurora/pkg/geometry"
	"github.com/aurora-render/aurora/pkg/scene"
)

const (
	shadowEpsilon = 1e-3
	maxRayT       = 1e6
)

// PathTracer implements unidirectional path tracing with next-event
// estimation. Indirect light is gathered by importance-sampling the surface's
// scattering model; direct light is gathered by sampling the lights and
// weighting both strategies with the balance heuristic.
type PathTracer struct {
	MaxDepth     int // Maximum number of path vertices
	MinRRDepth   int // Bounces before Russian roulette may terminate a path
	SampledModes core.ScatteringMode
}

// NewPathTracer creates a path tracer with default settings
func NewPathTracer() *PathTracer {
	return &PathTracer{
		MaxDepth:     8,
		MinRRDepth:   3,
		SampledModes: core.ModeAll,
	}
}

// RayColor computes the radiance arriving along a primary ray
func (pt *PathTracer) RayColor(ray core.Ray, diff bsdf.Differentials, sc *scene.Scene, sampler core.Sampler) core.Spectrum {
	radiance := core.Spectrum{}
	throughput := core.NewUniformSpectrum(1.0)

	// Density of the previous bounce's BSDF sample, needed to weight light
	// emission found by BSDF sampling against the light-sampling strategy
	lastBSDFPDF := 0.0
	var lastPoint core.Vec3

	for depth := 0; depth < pt.MaxDepth; depth++ {
		hit, ok := sc.Hit(ray, shadowEpsilon, maxRayT)
		if !ok {
			radiance = radiance.Add(throughput.Mul(sc.Background(ray.Direction)))
			break
		}

		// Emission at the hit point. The first vertex sees the light
		// directly; later vertices weight it against next-event estimation.
		if !hit.Emission.IsBlack() && hit.FrontFace {
			misWeight := 1.0
			if depth > 0 {
				lightPDF := pt.lightPDF(sc, lastPoint, ray.Direction)
				misWeight = balanceHeuristic(lastBSDFPDF, lightPDF)
			}
			radiance = radiance.Add(throughput.Mul(hit.Emission).Scale(misWeight))
		}

		if hit.Material == nil {
			// Pure emitter, nothing to scatter
			break
		}

		outgoing := ray.Direction.Negate()

		// Next-event estimation toward the lights
		direct := pt.sampleDirect(sc, hit, outgoing, sampler)
		radiance = radiance.Add(throughput.Mul(direct))

		// Extend the path by importance-sampling the scattering model
		result, sampled := hit.Material.Sample(hit.Frame, outgoing, diff, bsdf.Radiance, false, sampler)
		if !sampled || result.PDF <= 0 || result.Weight.IsBlack() {
			break
		}

		cos := hit.Frame.CosTheta(result.Incoming)
		throughput = throughput.Mul(result.Weight).Scale(cos / result.PDF)

		// Russian roulette on the path throughput
		if depth >= pt.MinRRDepth {
			pSurvive := math.Min(1.0, throughput.MaxComponent())
			if sampler.Get1D() >= pSurvive {
				break
			}
			throughput = throughput.Scale(1.0 / pSurvive)
		}

		lastBSDFPDF = result.PDF
		lastPoint = hit.Point
		ray = core.NewRay(hit.Point, result.Incoming)
		diff = result.Differentials
	}

	return radiance
}

// sampleDirect estimates direct illumination at a hit point by sampling one
// light uniformly and evaluating the scattering model for the sampled
// direction, MIS-weighted against BSDF sampling.
func (pt *PathTracer) sampleDirect(sc *scene.Scene, hit *geometry.HitRecord, outgoing core.Vec3, sampler core.Sampler) core.Spectrum {
	numLights := len(sc.Lights)
	if numLights == 0 {
		return core.Spectrum{}
	}

	index := int(sampler.Get1D() * float64(numLights))
	if index == numLights {
		index = numLights - 1
	}
	light := sc.Lights[index]

	ls, ok := light.SampleDirection(hit.Point, sampler.Get2D())
	if !ok || ls.PDF <= 0 {
		return core.Spectrum{}
	}

	bsdfPDF, weight := hit.Material.Evaluate(hit.Frame, outgoing, ls.Direction, bsdf.Radiance, false, pt.SampledModes)
	if weight.IsBlack() {
		return core.Spectrum{}
	}

	// Shadow test up to the sampled light point
	shadowRay := core.NewRay(hit.Point, ls.Direction)
	if _, blocked := sc.Hit(shadowRay, shadowEpsilon, ls.Distance-shadowEpsilon); blocked {
		return core.Spectrum{}
	}

	// Density of the light strategy: uniform light choice over the mixture of
	// per-light densities
	lightPDF := pt.lightPDF(sc, hit.Point, ls.Direction)
	if lightPDF <= 0 {
		return core.Spectrum{}
	}

	cos := hit.Frame.CosTheta(ls.Direction)
	misWeight := balanceHeuristic(lightPDF, bsdfPDF)

	return ls.Emission.Mul(weight).Scale(cos / lightPDF * misWeight)
}

// lightPDF returns the solid-angle density of the light-sampling strategy for
// a direction: the per-light densities averaged over the uniform light choice
func (pt *PathTracer) lightPDF(sc *scene.Scene, point core.Vec3, direction core.Vec3) float64 {
	numLights := len(sc.Lights)
	if numLights == 0 {
		return 0
	}

	total := 0.0
	for _, light := range sc.Lights {
		total += light.PDFDirection(point, direction)
	}
	return total / float64(numLights)
}

// balanceHeuristic combines two sampling densities into an MIS weight for the
// strategy with density pdfA
func balanceHeuristic(pdfA, pdfB float64) float64 {
	if pdfA <= 0 {
		return 0
	}
	return pdfA / (pdfA + pdfB)
}

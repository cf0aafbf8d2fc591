package bsdf

import (
	"math"

	"github.com/aurora-render/aurora/pkg/core"
)

// LambertianModel is the registry identifier of the lambertian BRDF.
const LambertianModel = "lambertian_brdf"

// LambertianParams are the resolved inputs of the lambertian BRDF.
type LambertianParams struct {
	Reflectance           core.Spectrum
	ReflectanceMultiplier float64
}

// Lambertian is a perfectly diffuse BRDF with constant reflectance albedo/π.
// Sampling strategy: cosine-weighted hemisphere, pdf cos(θ)/π.
type Lambertian struct {
	reflectance core.Spectrum
	multiplier  float64
}

// NewLambertian creates a lambertian BRDF from resolved parameters.
func NewLambertian(params LambertianParams) *Lambertian {
	return &Lambertian{
		reflectance: params.Reflectance,
		multiplier:  params.ReflectanceMultiplier,
	}
}

func init() {
	metadata := []ParamSpec{
		{Name: "reflectance", Label: "Reflectance", Type: ParamSpectrum, Required: true},
		{Name: "reflectance_multiplier", Label: "Reflectance Multiplier", Type: ParamFloat, Default: 1.0},
	}
	Register(LambertianModel, metadata, func(params Params) (BSDF, error) {
		reflectance, err := params.Spectrum("reflectance")
		if err != nil {
			return nil, err
		}
		multiplier, err := params.Float("reflectance_multiplier")
		if err != nil {
			return nil, err
		}
		return NewLambertian(LambertianParams{
			Reflectance:           reflectance,
			ReflectanceMultiplier: multiplier,
		}), nil
	})
}

// Model implements the BSDF interface.
func (l *Lambertian) Model() string {
	return LambertianModel
}

// Modes implements the BSDF interface.
func (l *Lambertian) Modes() core.ScatteringMode {
	return core.ModeDiffuse
}

// Sample implements the BSDF interface for lambertian scattering.
func (l *Lambertian) Sample(frame core.Frame, outgoing core.Vec3, outDiff Differentials,
	transport TransportMode, cosineMult bool, sampler core.Sampler) (SampleResult, bool) {
	// No reflection below the shading surface
	if frame.CosTheta(outgoing) < 0 {
		return SampleResult{}, false
	}

	// Draw the incoming direction from the cosine-weighted hemisphere
	wi := core.SampleHemisphereCosine(sampler.Get2D())
	incoming := frame.ToWorld(wi)

	return SampleResult{
		Incoming:      incoming,
		Differentials: ReflectedDifferentials(frame, outDiff),
		Weight:        l.reflectance.Scale(l.multiplier / math.Pi),
		PDF:           core.CosineHemispherePDF(wi.Z),
		Mode:          core.ModeDiffuse,
	}, true
}

// Evaluate implements the BSDF interface for lambertian scattering.
func (l *Lambertian) Evaluate(frame core.Frame, outgoing, incoming core.Vec3,
	transport TransportMode, cosineMult bool, modes core.ScatteringMode) (float64, core.Spectrum) {
	if !modes.Has(core.ModeDiffuse) {
		return 0, core.Spectrum{}
	}

	// No reflection below the shading surface
	cosIN := frame.CosTheta(incoming)
	if cosIN < 0 || frame.CosTheta(outgoing) < 0 {
		return 0, core.Spectrum{}
	}

	return core.CosineHemispherePDF(cosIN), l.reflectance.Scale(l.multiplier / math.Pi)
}

// EvaluatePDF implements the BSDF interface for lambertian scattering.
func (l *Lambertian) EvaluatePDF(frame core.Frame, outgoing, incoming core.Vec3, modes core.ScatteringMode) float64 {
	if !modes.Has(core.ModeDiffuse) {
		return 0
	}

	// No reflection below the shading surface
	cosIN := frame.CosTheta(incoming)
	if cosIN < 0 || frame.CosTheta(outgoing) < 0 {
		return 0
	}

	return core.CosineHemispherePDF(cosIN)
}

package bsdf

import (
	"github.com/aurora-render/aurora/pkg/core"
)

// SheenModel is the registry identifier of the sheen BRDF.
const SheenModel = "sheen_brdf"

// SheenParams are the resolved inputs of the sheen BRDF.
type SheenParams struct {
	Reflectance           core.Spectrum
	ReflectanceMultiplier float64
}

// Sheen is a retro-reflective grazing-angle BRDF modeling fabric-like
// highlights, after the sheen term of the Disney principled shading model.
// The reflectance peaks when the incoming direction is perpendicular to the
// half vector and vanishes at retro-reflection.
//
// Sampling strategy: uniform hemisphere, constant pdf 1/(2π).
type Sheen struct {
	reflectance core.Spectrum
	multiplier  float64
}

// NewSheen creates a sheen BRDF from resolved parameters.
func NewSheen(params SheenParams) *Sheen {
	return &Sheen{
		reflectance: params.Reflectance,
		multiplier:  params.ReflectanceMultiplier,
	}
}

func init() {
	metadata := []ParamSpec{
		{Name: "reflectance", Label: "Reflectance", Type: ParamSpectrum, Required: true},
		{Name: "reflectance_multiplier", Label: "Reflectance Multiplier", Type: ParamFloat, Default: 1.0},
	}
	Register(SheenModel, metadata, func(params Params) (BSDF, error) {
		reflectance, err := params.Spectrum("reflectance")
		if err != nil {
			return nil, err
		}
		multiplier, err := params.Float("reflectance_multiplier")
		if err != nil {
			return nil, err
		}
		return NewSheen(SheenParams{
			Reflectance:           reflectance,
			ReflectanceMultiplier: multiplier,
		}), nil
	})
}

// Model implements the BSDF interface.
func (s *Sheen) Model() string {
	return SheenModel
}

// Modes implements the BSDF interface.
func (s *Sheen) Modes() core.ScatteringMode {
	return core.ModeDiffuse
}

// Sample implements the BSDF interface for sheen scattering.
func (s *Sheen) Sample(frame core.Frame, outgoing core.Vec3, outDiff Differentials,
	transport TransportMode, cosineMult bool, sampler core.Sampler) (SampleResult, bool) {
	// No reflection below the shading surface
	if frame.CosTheta(outgoing) < 0 {
		return SampleResult{}, false
	}

	// Draw the incoming direction uniformly over the local hemisphere
	wi := core.SampleHemisphereUniform(sampler.Get2D())
	incoming := frame.ToWorld(wi)

	return SampleResult{
		Incoming:      incoming,
		Differentials: ReflectedDifferentials(frame, outDiff),
		Weight:        s.term(outgoing, incoming),
		PDF:           core.UniformHemispherePDF(),
		Mode:          core.ModeDiffuse,
	}, true
}

// Evaluate implements the BSDF interface for sheen scattering.
func (s *Sheen) Evaluate(frame core.Frame, outgoing, incoming core.Vec3,
	transport TransportMode, cosineMult bool, modes core.ScatteringMode) (float64, core.Spectrum) {
	if !modes.Has(core.ModeDiffuse) {
		return 0, core.Spectrum{}
	}

	// No reflection below the shading surface
	if frame.CosTheta(incoming) < 0 || frame.CosTheta(outgoing) < 0 {
		return 0, core.Spectrum{}
	}

	return core.UniformHemispherePDF(), s.term(outgoing, incoming)
}

// EvaluatePDF implements the BSDF interface for sheen scattering.
func (s *Sheen) EvaluatePDF(frame core.Frame, outgoing, incoming core.Vec3, modes core.ScatteringMode) float64 {
	if !modes.Has(core.ModeDiffuse) {
		return 0
	}

	// No reflection below the shading surface
	if frame.CosTheta(incoming) < 0 || frame.CosTheta(outgoing) < 0 {
		return 0
	}

	return core.UniformHemispherePDF()
}

// term computes the spectral sheen reflectance for a direction pair:
// reflectance * multiplier * (1 - cos(incoming, half))^5, with the base
// saturated before the power.
func (s *Sheen) term(outgoing, incoming core.Vec3) core.Spectrum {
	h := incoming.Add(outgoing)
	if h.NearZero() {
		// Degenerate half vector from opposing directions
		return core.Spectrum{}
	}
	h = h.Normalize()

	cosIH := incoming.Dot(h)
	fh := pow5(saturate(1.0 - cosIH))

	return s.reflectance.Scale(fh * s.multiplier)
}

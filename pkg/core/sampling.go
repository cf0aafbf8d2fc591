package core

import "math"

// SampleHemisphereUniform maps a pair of uniform samples in [0,1)² to a
// direction on the local-space upper hemisphere (z >= 0) with constant
// probability density 1/(2π) with respect to solid angle.
func SampleHemisphereUniform(sample Vec2) Vec3 {
	z := sample.Y
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.X
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// UniformHemispherePDF returns the solid-angle density of uniform hemisphere
// sampling, the constant 1/(2π).
func UniformHemispherePDF() float64 {
	return 1.0 / (2.0 * math.Pi)
}

// SampleHemisphereCosine maps a pair of uniform samples in [0,1)² to a
// cosine-weighted direction on the local-space upper hemisphere.
func SampleHemisphereCosine(sample Vec2) Vec3 {
	// Sample a unit disk, then project up onto the hemisphere
	phi := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)
	z := math.Sqrt(math.Max(0, 1.0-sample.Y))
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// CosineHemispherePDF returns the solid-angle density of cosine-weighted
// hemisphere sampling for a direction with the given cosine to the normal.
func CosineHemispherePDF(cosTheta float64) float64 {
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// SampleCone samples a direction uniformly within a cone around a world-space
// axis. cosTotalWidth is the cosine of the cone's half angle.
func SampleCone(axis Vec3, cosTotalWidth float64, sample Vec2) Vec3 {
	frame := NewFrame(axis)

	cosTheta := 1.0 - sample.X*(1.0-cosTotalWidth)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	local := NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return frame.ToWorld(local)
}

// UniformConePDF returns the solid-angle density of uniform cone sampling.
func UniformConePDF(cosTotalWidth float64) float64 {
	if cosTotalWidth >= 1.0 {
		return 0
	}
	return 1.0 / (2.0 * math.Pi * (1.0 - cosTotalWidth))
}

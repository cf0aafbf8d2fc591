package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleHemisphereUniform_UpperHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		dir := SampleHemisphereUniform(NewVec2(random.Float64(), random.Float64()))

		if dir.Z < 0 {
			t.Fatalf("direction below hemisphere: %v", dir)
		}
		if math.Abs(dir.Length()-1) > 1e-12 {
			t.Fatalf("direction not unit length: %f", dir.Length())
		}
	}
}

// Uniform hemisphere sampling has constant solid-angle density, so equal-width
// bands in z receive equal sample counts (the area of a spherical zone depends
// only on its height).
func TestSampleHemisphereUniform_Density(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	const numSamples = 100000
	const numBins = 10
	bins := make([]int, numBins)

	for i := 0; i < numSamples; i++ {
		dir := SampleHemisphereUniform(NewVec2(random.Float64(), random.Float64()))
		bin := int(dir.Z * numBins)
		if bin == numBins {
			bin = numBins - 1
		}
		bins[bin]++
	}

	expected := float64(numSamples) / numBins
	for i, count := range bins {
		relErr := math.Abs(float64(count)-expected) / expected
		if relErr > 0.05 {
			t.Errorf("bin %d: got %d samples, expected ~%.0f (rel err %.3f)", i, count, expected, relErr)
		}
	}
}

func TestUniformHemispherePDF(t *testing.T) {
	expected := 1.0 / (2.0 * math.Pi)
	if pdf := UniformHemispherePDF(); math.Abs(pdf-expected) > 1e-15 {
		t.Errorf("expected pdf %f, got %f", expected, pdf)
	}
}

func TestSampleHemisphereCosine_Density(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	// Under cosine weighting the CDF in z is z², so half of all samples
	// should land above z = sqrt(0.5)
	const numSamples = 100000
	above := 0
	threshold := math.Sqrt(0.5)

	for i := 0; i < numSamples; i++ {
		dir := SampleHemisphereCosine(NewVec2(random.Float64(), random.Float64()))
		if dir.Z < 0 {
			t.Fatalf("direction below hemisphere: %v", dir)
		}
		if dir.Z > threshold {
			above++
		}
	}

	fraction := float64(above) / numSamples
	if math.Abs(fraction-0.5) > 0.01 {
		t.Errorf("expected ~50%% of cosine samples above z=%.3f, got %.1f%%", threshold, fraction*100)
	}
}

func TestCosineHemispherePDF(t *testing.T) {
	tests := []struct {
		cosTheta float64
		expected float64
	}{
		{1.0, 1.0 / math.Pi},
		{0.5, 0.5 / math.Pi},
		{0.0, 0.0},
		{-0.5, 0.0},
	}

	for _, tt := range tests {
		if pdf := CosineHemispherePDF(tt.cosTheta); math.Abs(pdf-tt.expected) > 1e-15 {
			t.Errorf("CosineHemispherePDF(%f): got %f, expected %f", tt.cosTheta, pdf, tt.expected)
		}
	}
}

func TestSampleCone_WithinCone(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	axis := NewVec3(1, 2, 3).Normalize()
	cosWidth := 0.9

	for i := 0; i < 1000; i++ {
		dir := SampleCone(axis, cosWidth, NewVec2(random.Float64(), random.Float64()))
		if dir.Dot(axis) < cosWidth-1e-9 {
			t.Fatalf("direction outside cone: cos=%f, width=%f", dir.Dot(axis), cosWidth)
		}
	}
}

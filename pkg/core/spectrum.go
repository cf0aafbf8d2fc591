package core

// NumBands is the number of spectral bins carried by a Spectrum.
const NumBands = 3

// Spectrum is a fixed-size vector of non-negative sample weights over
// wavelength bins. The renderer treats the three bins as linear RGB.
type Spectrum [NumBands]float64

// NewSpectrum creates a spectrum from individual bin values.
func NewSpectrum(r, g, b float64) Spectrum {
	return Spectrum{r, g, b}
}

// NewUniformSpectrum creates a spectrum with the same value in every bin.
func NewUniformSpectrum(v float64) Spectrum {
	var s Spectrum
	for i := range s {
		s[i] = v
	}
	return s
}

// Add returns the bin-wise sum of two spectra.
func (s Spectrum) Add(other Spectrum) Spectrum {
	var out Spectrum
	for i := range s {
		out[i] = s[i] + other[i]
	}
	return out
}

// Mul returns the bin-wise product of two spectra.
func (s Spectrum) Mul(other Spectrum) Spectrum {
	var out Spectrum
	for i := range s {
		out[i] = s[i] * other[i]
	}
	return out
}

// Scale returns the spectrum with every bin multiplied by a scalar.
func (s Spectrum) Scale(f float64) Spectrum {
	var out Spectrum
	for i := range s {
		out[i] = s[i] * f
	}
	return out
}

// IsBlack reports whether every bin is zero.
func (s Spectrum) IsBlack() bool {
	for i := range s {
		if s[i] != 0 {
			return false
		}
	}
	return true
}

// MaxComponent returns the largest bin value.
func (s Spectrum) MaxComponent() float64 {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Luminance returns the perceptual luminance of an RGB spectrum
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (s Spectrum) Luminance() float64 {
	return 0.299*s[0] + 0.587*s[1] + 0.114*s[2]
}

// ToVec3 returns the spectrum bins as a Vec3 for image output.
func (s Spectrum) ToVec3() Vec3 {
	return Vec3{X: s[0], Y: s[1], Z: s[2]}
}

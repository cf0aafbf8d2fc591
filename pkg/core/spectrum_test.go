package core

import (
	"math"
	"testing"
)

func TestSpectrum_Arithmetic(t *testing.T) {
	a := NewSpectrum(0.5, 0.25, 1.0)
	b := NewSpectrum(2.0, 4.0, 0.5)

	sum := a.Add(b)
	if sum != NewSpectrum(2.5, 4.25, 1.5) {
		t.Errorf("Add: got %v", sum)
	}

	prod := a.Mul(b)
	if prod != NewSpectrum(1.0, 1.0, 0.5) {
		t.Errorf("Mul: got %v", prod)
	}

	scaled := a.Scale(2.0)
	if scaled != NewSpectrum(1.0, 0.5, 2.0) {
		t.Errorf("Scale: got %v", scaled)
	}
}

func TestSpectrum_IsBlack(t *testing.T) {
	if !(Spectrum{}).IsBlack() {
		t.Error("zero spectrum should be black")
	}
	if NewSpectrum(0, 0.001, 0).IsBlack() {
		t.Error("non-zero spectrum should not be black")
	}
}

func TestSpectrum_MaxComponent(t *testing.T) {
	if m := NewSpectrum(0.2, 0.9, 0.4).MaxComponent(); math.Abs(m-0.9) > 1e-15 {
		t.Errorf("expected 0.9, got %f", m)
	}
}

func TestSpectrum_Luminance(t *testing.T) {
	white := NewUniformSpectrum(1.0)
	if l := white.Luminance(); math.Abs(l-1.0) > 1e-12 {
		t.Errorf("white luminance should be 1, got %f", l)
	}
}

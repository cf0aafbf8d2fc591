package geometry

import (
	"math"

	"github.com/aurora-render/aurora/pkg/core"
)

// QuadLight is a rectangular area light sampled uniformly by area, with the
// density converted to solid angle at the shading point.
type QuadLight struct {
	*Quad
	Emission core.Spectrum
}

// NewQuadLight creates a new rectangular light
func NewQuadLight(corner, u, v core.Vec3, emission core.Spectrum) *QuadLight {
	return &QuadLight{
		Quad:     NewQuad(corner, u, v, nil),
		Emission: emission,
	}
}

// Hit tests intersection and attaches the light's emission to the record
func (ql *QuadLight) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	hit, ok := ql.Quad.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Emission = ql.Emission
	return hit, true
}

// SampleDirection implements the Light interface
func (ql *QuadLight) SampleDirection(point core.Vec3, sample core.Vec2) (LightSample, bool) {
	samplePoint := ql.Corner.
		Add(ql.U.Multiply(sample.X)).
		Add(ql.V.Multiply(sample.Y))

	toLight := samplePoint.Subtract(point)
	distSq := toLight.LengthSquared()
	if distSq < 1e-12 {
		return LightSample{}, false
	}
	distance := math.Sqrt(distSq)
	direction := toLight.Multiply(1.0 / distance)

	// Facing side of the light only
	cosLight := ql.Normal.Dot(direction.Negate())
	if cosLight <= 1e-8 {
		return LightSample{}, false
	}

	// Convert the uniform area density 1/area to solid angle
	pdf := distSq / (cosLight * ql.Area())

	return LightSample{
		Point:     samplePoint,
		Normal:    ql.Normal,
		Direction: direction,
		Distance:  distance,
		Emission:  ql.Emission,
		PDF:       pdf,
	}, true
}

// PDFDirection implements the Light interface
func (ql *QuadLight) PDFDirection(point core.Vec3, direction core.Vec3) float64 {
	hit, ok := ql.Quad.Hit(core.NewRay(point, direction), 1e-4, math.Inf(1))
	if !ok {
		return 0
	}

	cosLight := ql.Normal.AbsDot(direction)
	if cosLight <= 1e-8 {
		return 0
	}

	distSq := hit.Point.Subtract(point).LengthSquared()
	return distSq / (cosLight * ql.Area())
}

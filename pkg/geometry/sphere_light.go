package geometry

import (
	"math"

	"github.com/aurora-render/aurora/pkg/core"
)

// SphereLight is a spherical area light. Directions toward the light are
// drawn uniformly from the cone subtended by the sphere as seen from the
// shading point.
type SphereLight struct {
	*Sphere
	Emission core.Spectrum
}

// NewSphereLight creates a new spherical light
func NewSphereLight(center core.Vec3, radius float64, emission core.Spectrum) *SphereLight {
	return &SphereLight{
		Sphere:   NewSphere(center, radius, nil),
		Emission: emission,
	}
}

// Hit tests intersection and attaches the light's emission to the record
func (sl *SphereLight) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	hit, ok := sl.Sphere.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Emission = sl.Emission
	return hit, true
}

// SampleDirection implements the Light interface using cone sampling toward
// the visible cap of the sphere. Returns ok=false when the shading point lies
// inside the sphere.
func (sl *SphereLight) SampleDirection(point core.Vec3, sample core.Vec2) (LightSample, bool) {
	toCenter := sl.Center.Subtract(point)
	distSq := toCenter.LengthSquared()
	if distSq <= sl.Radius*sl.Radius {
		return LightSample{}, false
	}

	cosWidth := sl.coneCosWidth(distSq)
	direction := core.SampleCone(toCenter.Normalize(), cosWidth, sample)

	// Project the sampled direction onto the sphere surface
	hit, ok := sl.Sphere.Hit(core.NewRay(point, direction), 1e-4, math.Inf(1))
	if !ok {
		// Numerical miss at the cone boundary
		return LightSample{}, false
	}

	return LightSample{
		Point:     hit.Point,
		Normal:    hit.Point.Subtract(sl.Center).Normalize(),
		Direction: direction,
		Distance:  hit.T,
		Emission:  sl.Emission,
		PDF:       core.UniformConePDF(cosWidth),
	}, true
}

// PDFDirection implements the Light interface
func (sl *SphereLight) PDFDirection(point core.Vec3, direction core.Vec3) float64 {
	toCenter := sl.Center.Subtract(point)
	distSq := toCenter.LengthSquared()
	if distSq <= sl.Radius*sl.Radius {
		return 0
	}

	// Zero density for directions that miss the sphere
	if _, ok := sl.Sphere.Hit(core.NewRay(point, direction), 1e-4, math.Inf(1)); !ok {
		return 0
	}

	return core.UniformConePDF(sl.coneCosWidth(distSq))
}

// coneCosWidth returns the cosine of the half angle of the cone subtended by
// the sphere from a point at squared distance distSq.
func (sl *SphereLight) coneCosWidth(distSq float64) float64 {
	sinSq := sl.Radius * sl.Radius / distSq
	return math.Sqrt(math.Max(0, 1.0-sinSq))
}

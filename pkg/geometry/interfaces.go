package geometry

import (
	"github.com/aurora-render/aurora/pkg/bsdf"
	"github.com/aurora-render/aurora/pkg/core"
)

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	Point     core.Vec3     // Point of intersection
	Frame     core.Frame    // Shading frame built around the facing normal
	T         float64       // Parameter t along the ray
	FrontFace bool          // Whether the ray hit the front face
	Material  bsdf.BSDF     // Scattering model of the hit surface
	Emission  core.Spectrum // Emitted radiance, non-black only for lights
}

// SetFaceNormal orients the shading frame toward the side the ray arrived
// from and records which face was hit.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Frame = core.NewFrame(outwardNormal)
	} else {
		h.Frame = core.NewFrame(outwardNormal.Negate())
	}
}

// Hittable is implemented by every shape the renderer can intersect
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}

// LightSample is the result of sampling a direction toward a light from a
// shading point
type LightSample struct {
	Point     core.Vec3     // Sampled point on the light surface
	Normal    core.Vec3     // Light surface normal at the sampled point
	Direction core.Vec3     // Unit direction from the shading point to the light
	Distance  float64       // Distance to the sampled point
	Emission  core.Spectrum // Radiance emitted toward the shading point
	PDF       float64       // Solid-angle density of Direction at the shading point
}

// Light is an emissive shape that supports next-event estimation. PDFDirection
// reports the density SampleDirection would have assigned to an arbitrary
// direction, which MIS needs to weight BSDF samples that happen to hit the
// light.
type Light interface {
	Hittable
	SampleDirection(point core.Vec3, sample core.Vec2) (LightSample, bool)
	PDFDirection(point core.Vec3, direction core.Vec3) float64
}

package core

import "math"

// Frame is an orthonormal shading basis anchored at a surface point.
// Normal, Tangent and Bitangent are mutually orthogonal unit vectors;
// local space puts the normal along +Z.
type Frame struct {
	Tangent   Vec3
	Bitangent Vec3
	Normal    Vec3
}

// NewFrame builds an orthonormal basis around a unit normal.
func NewFrame(normal Vec3) Frame {
	// Pick a helper axis that is not parallel to the normal
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return Frame{Tangent: tangent, Bitangent: bitangent, Normal: normal}
}

// ToWorld transforms a direction from local space to world space.
func (f Frame) ToWorld(local Vec3) Vec3 {
	return f.Tangent.Multiply(local.X).
		Add(f.Bitangent.Multiply(local.Y)).
		Add(f.Normal.Multiply(local.Z))
}

// ToLocal transforms a direction from world space to local space.
func (f Frame) ToLocal(world Vec3) Vec3 {
	return Vec3{
		X: world.Dot(f.Tangent),
		Y: world.Dot(f.Bitangent),
		Z: world.Dot(f.Normal),
	}
}

// CosTheta returns the cosine between a world-space direction and the normal.
func (f Frame) CosTheta(world Vec3) float64 {
	return world.Dot(f.Normal)
}

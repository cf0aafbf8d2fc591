package renderer

import (
	"math"

	"github.com/aurora-render/aurora/pkg/bsdf"
	"github.com/aurora-render/aurora/pkg/core"
	"github.com/aurora-render/aurora/pkg/scene"
)

// Camera generates primary rays for the configured viewpoint
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	pixelDeltaU     core.Vec3
	pixelDeltaV     core.Vec3
	width, height   int
}

// NewCamera creates a camera from a scene's camera configuration and the
// target image size
func NewCamera(cfg scene.CameraConfig, width, height int) *Camera {
	aspectRatio := float64(width) / float64(height)
	theta := cfg.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal camera basis
	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := cfg.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          cfg.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		pixelDeltaU:     horizontal.Multiply(1.0 / float64(width)),
		pixelDeltaV:     vertical.Multiply(1.0 / float64(height)),
		width:           width,
		height:          height,
	}
}

// GetRay generates a ray through pixel (i, j), jittered by a 2D sample, along
// with the screen-space footprint differentials of its direction
func (c *Camera) GetRay(i, j int, sample core.Vec2) (core.Ray, bsdf.Differentials) {
	s := (float64(i) + sample.X) / float64(c.width)
	t := 1.0 - (float64(j)+sample.Y)/float64(c.height)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	// One-pixel offsets of the (unnormalized) direction
	diff := bsdf.Differentials{
		DX: c.pixelDeltaU,
		DY: c.pixelDeltaV.Negate(),
	}

	return core.NewRay(c.origin, direction.Normalize()), diff
}

package renderer

import (
	"math"
	"testing"

	"github.com/aurora-render/aurora/pkg/core"
	"github.com/aurora-render/aurora/pkg/scene"
)

func TestCamera_CenterRayPointsAtLookAt(t *testing.T) {
	cfg := scene.CameraConfig{
		LookFrom: core.NewVec3(0, 1, 5),
		LookAt:   core.NewVec3(0, 1, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     60,
	}
	camera := NewCamera(cfg, 100, 100)

	ray, _ := camera.GetRay(50, 50, core.NewVec2(0, 0))

	if ray.Origin != cfg.LookFrom {
		t.Errorf("ray origin = %v, expected %v", ray.Origin, cfg.LookFrom)
	}

	expected := cfg.LookAt.Subtract(cfg.LookFrom).Normalize()
	if ray.Direction.Subtract(expected).Length() > 0.05 {
		t.Errorf("center ray direction = %v, expected ~%v", ray.Direction, expected)
	}
	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("ray direction should be normalized, length %f", ray.Direction.Length())
	}
}

func TestCamera_DifferentialsSpanOnePixel(t *testing.T) {
	cfg := scene.CameraConfig{
		LookFrom: core.NewVec3(0, 0, 1),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}
	camera := NewCamera(cfg, 200, 100)

	_, diff := camera.GetRay(100, 50, core.NewVec2(0.5, 0.5))

	if diff.DX.NearZero() || diff.DY.NearZero() {
		t.Fatal("footprint differentials should be non-zero")
	}

	// DX spans horizontally, DY vertically
	if math.Abs(diff.DX.Y) > 1e-9 {
		t.Errorf("DX should have no vertical component, got %v", diff.DX)
	}
	if math.Abs(diff.DY.X) > 1e-9 {
		t.Errorf("DY should have no horizontal component, got %v", diff.DY)
	}
}

func TestCamera_CornersDiverge(t *testing.T) {
	cfg := scene.CameraConfig{
		LookFrom: core.NewVec3(0, 0, 1),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}
	camera := NewCamera(cfg, 100, 100)

	topLeft, _ := camera.GetRay(0, 0, core.NewVec2(0, 0))
	bottomRight, _ := camera.GetRay(99, 99, core.NewVec2(1, 1))

	if topLeft.Direction.Subtract(bottomRight.Direction).Length() < 0.1 {
		t.Error("corner rays should diverge")
	}

	// Top-left of the image looks up and to the left
	if topLeft.Direction.X >= 0 || topLeft.Direction.Y <= 0 {
		t.Errorf("unexpected top-left ray direction %v", topLeft.Direction)
	}
}

// Package scene holds the renderable world: camera configuration, shapes,
// lights and the background, plus the YAML description loader that resolves
// material parameter dictionaries through the bsdf registry.
package scene

import (
	"github.com/aurora-render/aurora/pkg/bsdf"
	"github.com/aurora-render/aurora/pkg/core"
	"github.com/aurora-render/aurora/pkg/geometry"
)

// CameraConfig describes the viewpoint of a scene
type CameraConfig struct {
	LookFrom core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3
	VFov     float64 // Vertical field of view in degrees
}

// Scene contains everything needed to render an image
type Scene struct {
	Camera           CameraConfig
	Objects          []geometry.Hittable
	Lights           []geometry.Light
	BackgroundTop    core.Spectrum
	BackgroundBottom core.Spectrum
}

// Hit finds the closest intersection along a ray, if any
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	var closest *geometry.HitRecord
	closestT := tMax

	for _, obj := range s.Objects {
		if hit, ok := obj.Hit(ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
		}
	}

	return closest, closest != nil
}

// Background returns the environment radiance for a ray direction as a
// vertical gradient between the bottom and top colors
func (s *Scene) Background(direction core.Vec3) core.Spectrum {
	unit := direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return s.BackgroundBottom.Scale(1.0 - t).Add(s.BackgroundTop.Scale(t))
}

// Default builds the built-in demo scene: a sheen-coated sphere over a
// diffuse ground plane, lit by a rectangular area light.
func Default() *Scene {
	velvet, err := bsdf.Create(bsdf.SheenModel, bsdf.Params{
		"reflectance":            []float64{0.7, 0.2, 0.25},
		"reflectance_multiplier": 1.5,
	})
	if err != nil {
		panic(err)
	}
	ground, err := bsdf.Create(bsdf.LambertianModel, bsdf.Params{
		"reflectance": []float64{0.6, 0.6, 0.6},
	})
	if err != nil {
		panic(err)
	}

	light := geometry.NewQuadLight(
		core.NewVec3(-1, 4, -3),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewSpectrum(12, 12, 12),
	)

	return &Scene{
		Camera: CameraConfig{
			LookFrom: core.NewVec3(0, 1.2, 3),
			LookAt:   core.NewVec3(0, 0.8, -2),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     40,
		},
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, 0.8, -2), 0.8, velvet),
			geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
			light,
		},
		Lights:           []geometry.Light{light},
		BackgroundTop:    core.NewSpectrum(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewSpectrum(1.0, 1.0, 1.0),
	}
}

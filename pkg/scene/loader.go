package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aurora-render/aurora/pkg/bsdf"
	"github.com/aurora-render/aurora/pkg/core"
	"github.com/aurora-render/aurora/pkg/geometry"
)

type cameraDesc struct {
	LookFrom []float64 `yaml:"look_from"`
	LookAt   []float64 `yaml:"look_at"`
	Up       []float64 `yaml:"up"`
	VFov     float64   `yaml:"vfov"`
}

type backgroundDesc struct {
	Top    []float64 `yaml:"top"`
	Bottom []float64 `yaml:"bottom"`
}

type materialDesc struct {
	Name   string                 `yaml:"name"`
	Model  string                 `yaml:"model"`
	Params map[string]interface{} `yaml:"params"`
}

type objectDesc struct {
	Type     string    `yaml:"type"`
	Material string    `yaml:"material"`
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Point    []float64 `yaml:"point"`
	Normal   []float64 `yaml:"normal"`
	Corner   []float64 `yaml:"corner"`
	U        []float64 `yaml:"u"`
	V        []float64 `yaml:"v"`
	Emission []float64 `yaml:"emission"`
}

type sceneDesc struct {
	Camera     cameraDesc     `yaml:"camera"`
	Background backgroundDesc `yaml:"background"`
	Materials  []materialDesc `yaml:"materials"`
	Objects    []objectDesc   `yaml:"objects"`
}

// Load reads a YAML scene description from a file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}
	return Parse(data)
}

// Parse builds a scene from a YAML description. Material parameter
// dictionaries are resolved through the bsdf registry, which applies declared
// defaults and enforces required parameters.
func Parse(data []byte) (*Scene, error) {
	var desc sceneDesc
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parse scene description: %w", err)
	}

	materials := make(map[string]bsdf.BSDF, len(desc.Materials))
	for _, m := range desc.Materials {
		if m.Name == "" {
			return nil, fmt.Errorf("material with model %q has no name", m.Model)
		}
		if _, exists := materials[m.Name]; exists {
			return nil, fmt.Errorf("duplicate material name %q", m.Name)
		}
		model, err := bsdf.Create(m.Model, bsdf.Params(m.Params))
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", m.Name, err)
		}
		materials[m.Name] = model
	}

	sc := &Scene{
		BackgroundTop:    core.NewSpectrum(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewSpectrum(1.0, 1.0, 1.0),
	}

	camera, err := parseCamera(desc.Camera)
	if err != nil {
		return nil, err
	}
	sc.Camera = camera

	if desc.Background.Top != nil {
		if sc.BackgroundTop, err = toSpectrum(desc.Background.Top, "background.top"); err != nil {
			return nil, err
		}
	}
	if desc.Background.Bottom != nil {
		if sc.BackgroundBottom, err = toSpectrum(desc.Background.Bottom, "background.bottom"); err != nil {
			return nil, err
		}
	}

	for i, o := range desc.Objects {
		obj, light, err := parseObject(o, materials)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		sc.Objects = append(sc.Objects, obj)
		if light != nil {
			sc.Lights = append(sc.Lights, light)
		}
	}

	return sc, nil
}

func parseCamera(desc cameraDesc) (CameraConfig, error) {
	cfg := CameraConfig{
		LookFrom: core.NewVec3(0, 1, 3),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40,
	}

	var err error
	if desc.LookFrom != nil {
		if cfg.LookFrom, err = toVec3(desc.LookFrom, "camera.look_from"); err != nil {
			return cfg, err
		}
	}
	if desc.LookAt != nil {
		if cfg.LookAt, err = toVec3(desc.LookAt, "camera.look_at"); err != nil {
			return cfg, err
		}
	}
	if desc.Up != nil {
		if cfg.Up, err = toVec3(desc.Up, "camera.up"); err != nil {
			return cfg, err
		}
	}
	if desc.VFov != 0 {
		cfg.VFov = desc.VFov
	}
	return cfg, nil
}

func parseObject(desc objectDesc, materials map[string]bsdf.BSDF) (geometry.Hittable, geometry.Light, error) {
	lookup := func() (bsdf.BSDF, error) {
		material, ok := materials[desc.Material]
		if !ok {
			return nil, fmt.Errorf("unknown material %q", desc.Material)
		}
		return material, nil
	}

	switch desc.Type {
	case "sphere":
		center, err := toVec3(desc.Center, "center")
		if err != nil {
			return nil, nil, err
		}
		material, err := lookup()
		if err != nil {
			return nil, nil, err
		}
		return geometry.NewSphere(center, desc.Radius, material), nil, nil

	case "plane":
		point, err := toVec3(desc.Point, "point")
		if err != nil {
			return nil, nil, err
		}
		normal, err := toVec3(desc.Normal, "normal")
		if err != nil {
			return nil, nil, err
		}
		material, err := lookup()
		if err != nil {
			return nil, nil, err
		}
		return geometry.NewPlane(point, normal, material), nil, nil

	case "quad":
		corner, u, v, err := toQuadBasis(desc)
		if err != nil {
			return nil, nil, err
		}
		material, err := lookup()
		if err != nil {
			return nil, nil, err
		}
		return geometry.NewQuad(corner, u, v, material), nil, nil

	case "sphere_light":
		center, err := toVec3(desc.Center, "center")
		if err != nil {
			return nil, nil, err
		}
		emission, err := toSpectrum(desc.Emission, "emission")
		if err != nil {
			return nil, nil, err
		}
		light := geometry.NewSphereLight(center, desc.Radius, emission)
		return light, light, nil

	case "quad_light":
		corner, u, v, err := toQuadBasis(desc)
		if err != nil {
			return nil, nil, err
		}
		emission, err := toSpectrum(desc.Emission, "emission")
		if err != nil {
			return nil, nil, err
		}
		light := geometry.NewQuadLight(corner, u, v, emission)
		return light, light, nil
	}

	return nil, nil, fmt.Errorf("unknown object type %q", desc.Type)
}

func toQuadBasis(desc objectDesc) (corner, u, v core.Vec3, err error) {
	if corner, err = toVec3(desc.Corner, "corner"); err != nil {
		return
	}
	if u, err = toVec3(desc.U, "u"); err != nil {
		return
	}
	v, err = toVec3(desc.V, "v")
	return
}

func toVec3(values []float64, field string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

func toSpectrum(values []float64, field string) (core.Spectrum, error) {
	if len(values) != core.NumBands {
		return core.Spectrum{}, fmt.Errorf("%s: expected %d bins, got %d", field, core.NumBands, len(values))
	}
	var s core.Spectrum
	copy(s[:], values)
	return s, nil
}

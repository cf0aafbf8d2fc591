package bsdf

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aurora-render/aurora/pkg/core"
)

// ParamType identifies the type of a declared model parameter.
type ParamType int

const (
	ParamSpectrum ParamType = iota
	ParamFloat
)

// String returns the metadata name of the parameter type.
func (t ParamType) String() string {
	switch t {
	case ParamSpectrum:
		return "spectrum"
	case ParamFloat:
		return "float"
	}
	return "unknown"
}

// ParamSpec declares one parameter a model accepts: its name, type, default
// and whether the scene description must supply it. This is the metadata
// surface exposed to editors; the models themselves only ever see resolved,
// typed values.
type ParamSpec struct {
	Name     string
	Label    string
	Type     ParamType
	Default  interface{} // nil when the parameter is required
	Required bool
}

// Params is an unresolved parameter dictionary as parsed from a scene
// description. Values are scalars ([]float64, float64 or int); Create
// resolves them against the model's declared metadata before construction.
type Params map[string]interface{}

// Float resolves a named parameter as a scalar.
func (p Params) Float(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return 0, fmt.Errorf("parameter %q: expected float, got %T", name, v)
}

// Spectrum resolves a named parameter as a spectral value. A scalar is
// broadcast uniformly across all bins.
func (p Params) Spectrum(name string) (core.Spectrum, error) {
	v, ok := p[name]
	if !ok {
		return core.Spectrum{}, fmt.Errorf("missing parameter %q", name)
	}
	switch n := v.(type) {
	case float64:
		return core.NewUniformSpectrum(n), nil
	case int:
		return core.NewUniformSpectrum(float64(n)), nil
	case []float64:
		if len(n) != core.NumBands {
			return core.Spectrum{}, fmt.Errorf("parameter %q: expected %d bins, got %d", name, core.NumBands, len(n))
		}
		var s core.Spectrum
		copy(s[:], n)
		return s, nil
	case []interface{}:
		if len(n) != core.NumBands {
			return core.Spectrum{}, fmt.Errorf("parameter %q: expected %d bins, got %d", name, core.NumBands, len(n))
		}
		var s core.Spectrum
		for i, e := range n {
			switch b := e.(type) {
			case float64:
				s[i] = b
			case int:
				s[i] = float64(b)
			default:
				return core.Spectrum{}, fmt.Errorf("parameter %q: bin %d is %T, expected number", name, i, e)
			}
		}
		return s, nil
	}
	return core.Spectrum{}, fmt.Errorf("parameter %q: expected spectrum, got %T", name, v)
}

// Factory constructs a model from a resolved parameter dictionary.
type Factory func(params Params) (BSDF, error)

type registryEntry struct {
	metadata []ParamSpec
	factory  Factory
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]registryEntry)
)

// Register adds a model to the process-wide registry. It is intended to be
// called from init functions; registering the same model twice panics.
func Register(model string, metadata []ParamSpec, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[model]; exists {
		panic(fmt.Sprintf("bsdf: model %q registered twice", model))
	}
	registry[model] = registryEntry{metadata: metadata, factory: factory}
}

// Models returns the names of all registered models, sorted.
func Models() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InputMetadata returns the declared parameter metadata of a model.
func InputMetadata(model string) ([]ParamSpec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	entry, ok := registry[model]
	if !ok {
		return nil, false
	}
	return entry.metadata, true
}

// Create resolves a parameter dictionary against the model's metadata
// (applying defaults, enforcing required parameters, rejecting unknown ones)
// and constructs the model.
func Create(model string, params Params) (BSDF, error) {
	registryMu.RLock()
	entry, ok := registry[model]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown scattering model %q", model)
	}

	declared := make(map[string]bool, len(entry.metadata))
	resolved := make(Params, len(entry.metadata))
	for _, spec := range entry.metadata {
		declared[spec.Name] = true
		if v, present := params[spec.Name]; present {
			resolved[spec.Name] = v
		} else if spec.Required {
			return nil, fmt.Errorf("model %q: required parameter %q not set", model, spec.Name)
		} else {
			resolved[spec.Name] = spec.Default
		}
	}
	for name := range params {
		if !declared[name] {
			return nil, fmt.Errorf("model %q: unknown parameter %q", model, name)
		}
	}

	return entry.factory(resolved)
}

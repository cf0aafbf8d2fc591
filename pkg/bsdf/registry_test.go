package bsdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurora-render/aurora/pkg/core"
)

func TestRegistry_Models(t *testing.T) {
	models := Models()
	assert.Contains(t, models, SheenModel)
	assert.Contains(t, models, LambertianModel)
}

func TestRegistry_CreateAppliesDefaults(t *testing.T) {
	model, err := Create(SheenModel, Params{
		"reflectance": []float64{0.5, 0.5, 0.5},
	})
	require.NoError(t, err)

	sheen, ok := model.(*Sheen)
	require.True(t, ok)
	assert.Equal(t, 1.0, sheen.multiplier, "reflectance_multiplier should default to 1.0")
	assert.Equal(t, core.NewSpectrum(0.5, 0.5, 0.5), sheen.reflectance)
}

func TestRegistry_CreateEnforcesRequired(t *testing.T) {
	_, err := Create(SheenModel, Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reflectance")
}

func TestRegistry_CreateRejectsUnknownModel(t *testing.T) {
	_, err := Create("no_such_brdf", Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scattering model")
}

func TestRegistry_CreateRejectsUnknownParameter(t *testing.T) {
	_, err := Create(SheenModel, Params{
		"reflectance": []float64{0.5, 0.5, 0.5},
		"shininess":   10.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shininess")
}

func TestRegistry_CreateBroadcastsScalarSpectrum(t *testing.T) {
	model, err := Create(SheenModel, Params{"reflectance": 0.25})
	require.NoError(t, err)

	sheen := model.(*Sheen)
	assert.Equal(t, core.NewUniformSpectrum(0.25), sheen.reflectance)
}

func TestRegistry_InputMetadata(t *testing.T) {
	metadata, ok := InputMetadata(SheenModel)
	require.True(t, ok)
	require.Len(t, metadata, 2)

	assert.Equal(t, "reflectance", metadata[0].Name)
	assert.Equal(t, ParamSpectrum, metadata[0].Type)
	assert.True(t, metadata[0].Required)

	assert.Equal(t, "reflectance_multiplier", metadata[1].Name)
	assert.Equal(t, ParamFloat, metadata[1].Type)
	assert.False(t, metadata[1].Required)
	assert.Equal(t, 1.0, metadata[1].Default)

	_, ok = InputMetadata("no_such_brdf")
	assert.False(t, ok)
}

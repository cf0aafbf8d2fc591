package core

import "testing"

func TestScatteringMode_Has(t *testing.T) {
	tests := []struct {
		name     string
		set      ScatteringMode
		query    ScatteringMode
		expected bool
	}{
		{"diffuse in all", ModeAll, ModeDiffuse, true},
		{"glossy in all", ModeAll, ModeGlossy, true},
		{"specular in all", ModeAll, ModeSpecular, true},
		{"diffuse in diffuse", ModeDiffuse, ModeDiffuse, true},
		{"diffuse not in glossy", ModeGlossy, ModeDiffuse, false},
		{"nothing in none", ModeNone, ModeDiffuse, false},
		{"diffuse in diffuse|specular", ModeDiffuse | ModeSpecular, ModeDiffuse, true},
		{"glossy not in diffuse|specular", ModeDiffuse | ModeSpecular, ModeGlossy, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Has(tt.query); got != tt.expected {
				t.Errorf("(%v).Has(%v) = %v, expected %v", tt.set, tt.query, got, tt.expected)
			}
		})
	}
}

func TestScatteringMode_Union(t *testing.T) {
	set := ModeDiffuse.Union(ModeSpecular)
	if !set.Has(ModeDiffuse) || !set.Has(ModeSpecular) {
		t.Errorf("union missing members: %v", set)
	}
	if set.Has(ModeGlossy) {
		t.Errorf("union has unexpected member: %v", set)
	}
}

func TestScatteringMode_String(t *testing.T) {
	if s := ModeNone.String(); s != "none" {
		t.Errorf("expected \"none\", got %q", s)
	}
	if s := (ModeDiffuse | ModeGlossy).String(); s != "diffuse|glossy" {
		t.Errorf("expected \"diffuse|glossy\", got %q", s)
	}
}

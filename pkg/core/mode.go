package core

import "strings"

// ScatteringMode classifies the physical effects a scattering model may
// produce. Modes form a bitset so callers can restrict a query to any
// combination of effects.
type ScatteringMode uint8

const (
	ModeDiffuse ScatteringMode = 1 << iota
	ModeGlossy
	ModeSpecular

	ModeNone ScatteringMode = 0
	ModeAll                = ModeDiffuse | ModeGlossy | ModeSpecular
)

// Has reports whether every mode in m is present in the set.
func (s ScatteringMode) Has(m ScatteringMode) bool {
	return s&m != 0
}

// Union returns the set containing the modes of both sets.
func (s ScatteringMode) Union(other ScatteringMode) ScatteringMode {
	return s | other
}

// String returns a human-readable mode list for logging and statistics.
func (s ScatteringMode) String() string {
	if s == ModeNone {
		return "none"
	}
	var parts []string
	if s.Has(ModeDiffuse) {
		parts = append(parts, "diffuse")
	}
	if s.Has(ModeGlossy) {
		parts = append(parts, "glossy")
	}
	if s.Has(ModeSpecular) {
		parts = append(parts, "specular")
	}
	return strings.Join(parts, "|")
}

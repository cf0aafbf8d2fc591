package bsdf

import (
	"github.com/aurora-render/aurora/pkg/core"
)

// ReflectedDifferentials propagates the footprint of the outgoing ray to a
// reflected incoming direction by mirroring each derivative about the shading
// normal. Models call this after sampling so downstream texture filtering
// sees a footprint consistent with the scattered ray.
func ReflectedDifferentials(frame core.Frame, outDiff Differentials) Differentials {
	return Differentials{
		DX: outDiff.DX.Reflect(frame.Normal),
		DY: outDiff.DY.Reflect(frame.Normal),
	}
}

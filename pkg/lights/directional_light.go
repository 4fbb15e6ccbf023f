package lights

import "github.com/df07/go-raycasting/pkg/core"

// DirectionalLight is an infinitely distant source emitting along a single direction,
// with the same radiance everywhere in space (sun-like)
type DirectionalLight struct {
	Radiosity core.Vec3 // Light strength/color
	Direction core.Vec3 // Unit direction the light travels in
}

// NewDirectionalLight creates a new directional light. direction is normalized.
func NewDirectionalLight(radiosity, direction core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Radiosity: radiosity,
		Direction: direction.Normalize(),
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// SampleRadiance implements the Light interface
func (dl *DirectionalLight) SampleRadiance(point core.Vec3) LightSample {
	return LightSample{
		Radiance:  dl.Radiosity,
		Direction: dl.Direction.Negate(),
		Distance:  core.Infinity,
	}
}

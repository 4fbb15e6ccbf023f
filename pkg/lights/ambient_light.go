package lights

import "github.com/df07/go-raycasting/pkg/core"

// AmbientLight emits constant radiance from every direction at every point.
// It stands in for the indirect illumination that local shading ignores.
type AmbientLight struct {
	Radiance core.Vec3
}

// NewAmbientLight creates a new ambient light
func NewAmbientLight(radiance core.Vec3) *AmbientLight {
	return &AmbientLight{Radiance: radiance}
}

func (al *AmbientLight) Type() LightType {
	return LightTypeAmbient
}

// SampleRadiance returns the constant radiance. There is no single direction to the
// light, so Direction is zero and Distance is 0.
func (al *AmbientLight) SampleRadiance(point core.Vec3) LightSample {
	return LightSample{Radiance: al.Radiance}
}

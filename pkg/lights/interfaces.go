package lights

import "github.com/df07/go-raycasting/pkg/core"

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
	LightTypeCone        LightType = "cone"
	LightTypeCylinder    LightType = "cylinder"
)

// Light interface for idealized light sources.
// Sampling never consults scene geometry; occlusion is applied by the integrator afterwards.
type Light interface {
	Type() LightType

	// SampleRadiance returns the radiance arriving at point from this light,
	// with Direction pointing FROM point TO the light
	SampleRadiance(point core.Vec3) LightSample
}

// LightSample holds the data an integrator needs to shade a point with one light
type LightSample struct {
	Radiance  core.Vec3 // Radiance travelling toward the shading point
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light, +Inf for lights at infinity
}

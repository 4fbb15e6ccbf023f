package lights

import "github.com/df07/go-raycasting/pkg/core"

// PointLight is an isotropic light with no area, defined by its position and intensity.
// Radiance falls off with the inverse square of the distance.
type PointLight struct {
	Intensity core.Vec3 // Light intensity/color
	Position  core.Vec3 // Light position in world space
}

// NewPointLight creates a new point light
func NewPointLight(intensity, position core.Vec3) *PointLight {
	return &PointLight{
		Intensity: intensity,
		Position:  position,
	}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// SampleRadiance implements the Light interface
func (pl *PointLight) SampleRadiance(point core.Vec3) LightSample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()

	if distance == 0 {
		// Shading point sits on the light; emit nothing rather than divide by zero
		return LightSample{
			Radiance:  core.Vec3{},
			Direction: core.NewVec3(0, 1, 0),
			Distance:  0,
		}
	}

	return LightSample{
		Radiance:  pl.Intensity.Multiply(1.0 / (distance * distance)),
		Direction: toLight.Divide(distance),
		Distance:  distance,
	}
}

package lights

import (
	"math"

	"github.com/df07/go-raycasting/pkg/core"
)

// coneTextureFrequency sets the ring density of the concentric angular texture
const coneTextureFrequency = 200.0

// ConeLight is a point light that only emits inside a cone around Direction.
// Emission fades out with a smoothstep towards the cone edge and carries a
// concentric ring texture.
type ConeLight struct {
	PointLight
	Direction core.Vec3 // Unit cone axis, pointing away from the light
	CosPhi    float64   // Cosine of the half-angle beyond which nothing is emitted
}

// NewConeLight creates a new cone light. direction is normalized.
func NewConeLight(intensity, position, direction core.Vec3, cosPhi float64) *ConeLight {
	return &ConeLight{
		PointLight: PointLight{Intensity: intensity, Position: position},
		Direction:  direction.Normalize(),
		CosPhi:     cosPhi,
	}
}

// NewConeLightFromAngle creates a cone light aimed from position at target with
// the given half-angle in degrees
func NewConeLightFromAngle(intensity, position, target core.Vec3, halfAngleDegrees float64) *ConeLight {
	cosPhi := math.Cos(halfAngleDegrees * math.Pi / 180.0)
	return NewConeLight(intensity, position, target.Subtract(position), cosPhi)
}

func (cl *ConeLight) Type() LightType {
	return LightTypeCone
}

// SampleRadiance samples like a point light, then applies angular attenuation and texture
func (cl *ConeLight) SampleRadiance(point core.Vec3) LightSample {
	sample := cl.PointLight.SampleRadiance(point)

	// Cosine between the cone axis and the direction from the light to the point
	cosAngle := -sample.Direction.Dot(cl.Direction)

	attenuation := core.Smoothstep(cl.CosPhi, 1.0, cosAngle)
	texture := 0.5 + 0.5*math.Sin(coneTextureFrequency*cosAngle)

	sample.Radiance = sample.Radiance.Multiply(attenuation * texture)
	return sample
}

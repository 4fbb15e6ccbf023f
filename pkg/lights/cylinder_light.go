package lights

import (
	"math"

	"github.com/df07/go-raycasting/pkg/core"
)

// cylinderTextureFrequency sets the ring density of the concentric radial texture
const cylinderTextureFrequency = 15.0

// CylinderLight is a directional light restricted to a cylinder of parallel rays around
// an axis through Origin. Emission fades out with a smoothstep near the radius and carries
// a concentric ring texture.
type CylinderLight struct {
	DirectionalLight
	Origin core.Vec3 // A point on the cylinder axis
	Radius float64   // Radius of the light cylinder
}

// NewCylinderLight creates a new cylinder light. direction is normalized.
func NewCylinderLight(radiosity, origin, direction core.Vec3, radius float64) *CylinderLight {
	return &CylinderLight{
		DirectionalLight: DirectionalLight{Radiosity: radiosity, Direction: direction.Normalize()},
		Origin:           origin,
		Radius:           radius,
	}
}

func (cl *CylinderLight) Type() LightType {
	return LightTypeCylinder
}

// AxisDistance returns the distance from point to the cylinder axis
func (cl *CylinderLight) AxisDistance(point core.Vec3) float64 {
	lightToPoint := point.Subtract(cl.Origin)
	alongAxis := cl.Direction.Multiply(lightToPoint.Dot(cl.Direction))
	return lightToPoint.Subtract(alongAxis).Length()
}

// SampleRadiance samples like a directional light, then applies radial attenuation and texture
func (cl *CylinderLight) SampleRadiance(point core.Vec3) LightSample {
	sample := cl.DirectionalLight.SampleRadiance(point)

	distance := cl.AxisDistance(point)

	attenuation := core.Smoothstep(0.0, 1.0, cl.Radius-distance)
	texture := 0.5 + 0.5*math.Sin(cylinderTextureFrequency*distance)

	sample.Radiance = sample.Radiance.Multiply(attenuation * texture)
	return sample
}

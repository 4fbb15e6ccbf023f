package scene

import (
	"math"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/lights"
)

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 10

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cone responses, then cube
	lCone := l + 0.3963377774*a + 0.2158037573*b
	mCone := l - 0.1055613458*a - 0.0638541728*b
	sCone := l - 0.0894841775*a - 1.2914855480*b
	lCone, mCone, sCone = lCone*lCone*lCone, mCone*mCone*mCone, sCone*sCone*sCone

	rgb := core.NewVec3(
		+4.0767416621*lCone-3.3077115913*mCone+0.2309699292*sCone,
		-1.2684380046*lCone+2.6097574011*mCone-0.3413193965*sCone,
		-0.0041960863*lCone-0.7034186147*mCone+1.7076147010*sCone,
	)
	return rgb.Clamp(0, 1)
}

// NewSphereGridScene creates a 10x10 grid of spheres whose albedo sweeps the hue circle
// along one axis and lightness along the other, lit by a cone light and a point light
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(4.5, 6, -9),
		LookAt: core.NewVec3(4.5, 0.4, 4.5),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene("spheregrid", cameraConfig)
	s.Ambient = lights.AmbientLight{Radiance: core.NewVec3Scalar(0.03)}

	// Ground
	s.AddSphere(core.NewVec3(4.5, -1000, 4.5), 1000, core.NewVec3Scalar(0.6))

	const radius = 0.4
	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			hue := 360.0 * float64(i) / sphereGridSize
			lightness := 0.45 + 0.4*float64(j)/(sphereGridSize-1)
			s.AddSphere(core.NewVec3(float64(i), radius, float64(j)), radius, oklchToRGB(lightness, 0.15, hue))
		}
	}

	mustAddLights(s,
		lights.NewConeLightFromAngle(core.NewVec3Scalar(120), core.NewVec3(4.5, 9, 4.5), core.NewVec3(4.5, 0, 4.5), 35),
		lights.NewPointLight(core.NewVec3Scalar(25), core.NewVec3(-3, 5, -3)),
	)

	return s
}

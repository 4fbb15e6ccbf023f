package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/lights"
)

// LightMode selects the light setup of the default scene
type LightMode string

const (
	LightModePoint       LightMode = "point"
	LightModeDirectional LightMode = "directional"
	LightModeCylinder    LightMode = "cylinder"
	LightModeCone        LightMode = "cone"
	LightModeAll         LightMode = "all"
)

// DefaultLightMode is the light setup used when none is requested
const DefaultLightMode = LightModeCone

// LightModes returns every supported light mode
func LightModes() []LightMode {
	return []LightMode{LightModePoint, LightModeDirectional, LightModeCylinder, LightModeCone, LightModeAll}
}

// ParseLightMode converts a flag or query value into a LightMode.
// The empty string selects DefaultLightMode.
func ParseLightMode(value string) (LightMode, error) {
	if value == "" {
		return DefaultLightMode, nil
	}
	for _, mode := range LightModes() {
		if string(mode) == value {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown light mode %q", value)
}

// NewDefaultScene creates the reference scene: two spheres resting on a huge ground
// sphere, a dim ambient term, and the lights selected by mode
func NewDefaultScene(mode LightMode, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene("default", cameraConfig)
	s.Ambient = lights.AmbientLight{Radiance: core.NewVec3Scalar(0.01)}

	s.AddSphere(core.NewVec3(0, 0, 4), 1.0, core.NewVec3(1, 0.5, 0.1))
	s.AddSphere(core.NewVec3(-1, 0, 2.5), 1.0, core.NewVec3(0.3, 1, 0.3))

	// A large sphere for the ground
	s.AddSphere(core.NewVec3(0, -1001, 0), 1000.0, core.NewVec3(0.1, 0.5, 1.0))

	lightPosition := core.NewVec3(2, 2, 2)
	lightTarget := core.NewVec3(1, 0, 3)
	lightDirection := lightTarget.Subtract(lightPosition).Normalize()

	var sceneLights []lights.Light
	if mode == LightModePoint || mode == LightModeAll {
		sceneLights = append(sceneLights, lights.NewPointLight(core.NewVec3Scalar(30), lightPosition))
	}
	if mode == LightModeDirectional || mode == LightModeAll {
		sceneLights = append(sceneLights, lights.NewDirectionalLight(core.NewVec3Scalar(3), lightDirection))
	}
	if mode == LightModeCylinder || mode == LightModeAll {
		sceneLights = append(sceneLights, lights.NewCylinderLight(core.NewVec3Scalar(3), lightPosition, lightDirection, 3.0))
	}
	if mode == LightModeCone || mode == LightModeAll {
		sceneLights = append(sceneLights, lights.NewConeLight(core.NewVec3Scalar(30), lightPosition, lightDirection, math.Cos(0.25*math.Pi)))
	}
	mustAddLights(s, sceneLights...)

	return s
}

// mustAddLights adds lights whose types are known to be supported
func mustAddLights(s *Scene, sceneLights ...lights.Light) {
	for _, light := range sceneLights {
		if err := s.AddLight(light); err != nil {
			panic(err)
		}
	}
}

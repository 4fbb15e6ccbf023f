package scene

import (
	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/lights"
)

// NewCylinderLightScene shines three shafts of light of different radii and tilts
// onto a floor with a few spheres standing in them
func NewCylinderLightScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 5, -8),
		LookAt: core.NewVec3(0, 0, 1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   50.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene("cylinder-lights", cameraConfig)
	s.Ambient = lights.AmbientLight{Radiance: core.NewVec3Scalar(0.02)}
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, core.NewVec3Scalar(0.85))

	s.AddSphere(core.NewVec3(-3, 0.8, 1), 0.8, core.NewVec3(0.9, 0.3, 0.3))
	s.AddSphere(core.NewVec3(0, 0.6, 2), 0.6, core.NewVec3(0.3, 0.9, 0.3))
	s.AddSphere(core.NewVec3(3, 1.0, 1), 1.0, core.NewVec3(0.3, 0.3, 0.9))

	mustAddLights(s,
		// Straight down
		lights.NewCylinderLight(core.NewVec3(2, 1.8, 1.6), core.NewVec3(-3, 5, 1), core.NewVec3(0, -1, 0), 1.2),
		// Tilted towards the camera
		lights.NewCylinderLight(core.NewVec3(1.6, 2, 1.6), core.NewVec3(0, 5, 4), core.NewVec3(0, -1, -0.6), 1.8),
		// Wide and grazing
		lights.NewCylinderLight(core.NewVec3(1.4, 1.4, 2), core.NewVec3(6, 4, 1), core.NewVec3(-1, -0.7, 0), 2.5),
	)

	return s
}

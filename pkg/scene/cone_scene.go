package scene

import (
	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/lights"
)

// coneHalfAngles are the spot sizes shown side by side, in degrees
var coneHalfAngles = []float64{10, 20, 35, 55}

// NewConeLightScene lines up four cone lights of increasing half-angle over a white
// floor, each aimed at its own sphere, so the falloff and the ring texture can be compared
func NewConeLightScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 4, -7),
		LookAt: core.NewVec3(0, 0, 1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   50.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene("cone-lights", cameraConfig)
	s.Ambient = lights.AmbientLight{Radiance: core.NewVec3Scalar(0.01)}
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, core.NewVec3Scalar(0.9))

	spacing := 2.5
	offset := -spacing * float64(len(coneHalfAngles)-1) / 2
	for i, halfAngle := range coneHalfAngles {
		x := offset + spacing*float64(i)
		target := core.NewVec3(x, 0, 2)
		s.AddSphere(core.NewVec3(x, 0.5, 2.6), 0.5, core.NewVec3(0.9, 0.7, 0.4))
		mustAddLights(s, lights.NewConeLightFromAngle(core.NewVec3Scalar(40), core.NewVec3(x, 4, 1), target, halfAngle))
	}

	return s
}

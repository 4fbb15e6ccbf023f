package scene

import (
	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/lights"
)

// NewSpheresScene creates five overlapping tinted spheres floating in front of the camera.
// Five spheres crossed twice each plus the escaping segment is exactly the transparency
// integrator's default segment budget.
func NewSpheresScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0.5, -1),
		LookAt: core.NewVec3(0, 0, 4),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   50.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene("spheres", cameraConfig)
	s.Ambient = lights.AmbientLight{Radiance: core.NewVec3Scalar(0.05)}

	s.AddSphere(core.NewVec3(0, 0, 4), 1.0, core.NewVec3(0.95, 0.6, 0.6))
	s.AddSphere(core.NewVec3(-1.1, 0.3, 4.6), 0.8, core.NewVec3(0.6, 0.95, 0.6))
	s.AddSphere(core.NewVec3(1.1, 0.3, 4.6), 0.8, core.NewVec3(0.6, 0.6, 0.95))
	s.AddSphere(core.NewVec3(-0.5, -0.6, 3.2), 0.5, core.NewVec3(0.95, 0.95, 0.5))
	s.AddSphere(core.NewVec3(0.6, -0.5, 3.0), 0.4, core.NewVec3(0.5, 0.95, 0.95))

	mustAddLights(s,
		lights.NewPointLight(core.NewVec3Scalar(20), core.NewVec3(-2, 3, 1)),
		lights.NewDirectionalLight(core.NewVec3Scalar(0.5), core.NewVec3(0.3, -1, 0.5)),
	)

	return s
}

// NewSingleSphereScene creates a white unit sphere at the origin, seen from -Z, lit by one
// unit point light two units in front of the visible pole and no ambient light
func NewSingleSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center: core.NewVec3(0, 0, -5),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene("single", cameraConfig)
	s.AddSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 1, 1))
	mustAddLights(s, lights.NewPointLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, -3)))

	return s
}

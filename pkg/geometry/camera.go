package geometry

import (
	"math"

	"github.com/df07/go-raycasting/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // Up direction (usually (0,1,0))
	VFov   float64   // Vertical field of view in degrees
}

// DefaultCameraConfig looks down +Z from the origin with a 60 degree vertical field of view
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, 1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60.0,
	}
}

// MergeCameraConfig applies the non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Center.IsZero() {
		result.Center = override.Center
	}
	if !override.LookAt.IsZero() {
		result.LookAt = override.LookAt
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	return result
}

// Camera is a pinhole camera. Screen coordinates are scaled by the focal length derived
// from the vertical field of view, so v = ±1 maps to the top and bottom of the frustum.
type Camera struct {
	origin      core.Vec3
	right       core.Vec3
	up          core.Vec3
	forward     core.Vec3
	focalLength float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	forward := config.LookAt.Subtract(config.Center).Normalize()
	if forward.IsZero() {
		forward = core.NewVec3(0, 0, 1)
	}

	right := config.Up.Cross(forward).Normalize()
	if right.IsZero() {
		// Up is parallel to the view direction, pick any perpendicular vector
		var nt core.Vec3
		if math.Abs(forward.X) > 0.1 {
			nt = core.NewVec3(0, 1, 0)
		} else {
			nt = core.NewVec3(1, 0, 0)
		}
		right = nt.Cross(forward).Normalize()
	}
	up := forward.Cross(right)

	vfov := config.VFov
	if vfov <= 0 || vfov >= 180 {
		vfov = DefaultCameraConfig().VFov
	}
	focalLength := 1.0 / math.Tan(vfov*math.Pi/360.0)

	return &Camera{
		origin:      config.Center,
		right:       right,
		up:          up,
		forward:     forward,
		focalLength: focalLength,
	}
}

// GenerateRay returns the primary ray through normalized screen coordinate uv
func (c *Camera) GenerateRay(uv core.Vec2) core.Ray {
	direction := c.right.Multiply(uv.X).
		Add(c.up.Multiply(uv.Y)).
		Add(c.forward.Multiply(c.focalLength)).
		Normalize()
	return core.NewRay(c.origin, direction)
}

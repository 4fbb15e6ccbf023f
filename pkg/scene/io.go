package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/lights"
)

// File is the JSON representation of a scene
type File struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Group       string       `json:"group,omitempty"`
	Camera      *CameraFile  `json:"camera,omitempty"`
	Ambient     vec3File     `json:"ambient"`
	Spheres     []SphereFile `json:"spheres"`
	Lights      []LightFile  `json:"lights"`
}

// CameraFile describes the scene camera; missing fields fall back to the default camera
type CameraFile struct {
	Center vec3File `json:"center"`
	LookAt vec3File `json:"lookAt"`
	Up     vec3File `json:"up"`
	VFov   float64  `json:"vfov"`
}

// SphereFile describes one sphere
type SphereFile struct {
	Center vec3File `json:"center"`
	Radius float64  `json:"radius"`
	Albedo vec3File `json:"albedo"`
}

// LightFile describes one light. Which fields are read depends on Type:
//
//	point:       intensity, position
//	directional: radiosity, direction
//	cone:        intensity, position, direction or target, halfAngle (degrees)
//	cylinder:    radiosity, origin, direction, radius
type LightFile struct {
	Type      string    `json:"type"`
	Intensity vec3File  `json:"intensity,omitempty"`
	Radiosity vec3File  `json:"radiosity,omitempty"`
	Position  vec3File  `json:"position,omitempty"`
	Origin    vec3File  `json:"origin,omitempty"`
	Direction *vec3File `json:"direction,omitempty"`
	Target    *vec3File `json:"target,omitempty"`
	HalfAngle float64   `json:"halfAngle,omitempty"`
	Radius    float64   `json:"radius,omitempty"`
}

type vec3File [3]float64

func (v vec3File) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Load reads a Scene from a JSON file
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes and validates a JSON scene
func Parse(r io.Reader) (*Scene, error) {
	var file File
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return file.Build()
}

// Build validates the description and constructs the scene
func (f *File) Build() (*Scene, error) {
	cameraConfig := geometry.DefaultCameraConfig()
	if f.Camera != nil {
		// center and lookAt are taken as written, the origin being a valid point
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, geometry.CameraConfig{
			Up:   f.Camera.Up.vec(),
			VFov: f.Camera.VFov,
		})
		cameraConfig.Center = f.Camera.Center.vec()
		cameraConfig.LookAt = f.Camera.LookAt.vec()
		if cameraConfig.LookAt.Subtract(cameraConfig.Center).IsZero() {
			return nil, fmt.Errorf("camera: lookAt must differ from center")
		}
	}

	s := NewScene(f.Name, cameraConfig)
	s.Ambient = lights.AmbientLight{Radiance: f.Ambient.vec()}

	for i, sf := range f.Spheres {
		if sf.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %g", i, sf.Radius)
		}
		s.AddSphere(sf.Center.vec(), sf.Radius, sf.Albedo.vec())
	}

	for i, lf := range f.Lights {
		light, err := lf.build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		if err := s.AddLight(light); err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
	}

	return s, nil
}

func (lf LightFile) build() (lights.Light, error) {
	switch lights.LightType(lf.Type) {
	case lights.LightTypePoint:
		return lights.NewPointLight(lf.Intensity.vec(), lf.Position.vec()), nil

	case lights.LightTypeDirectional:
		direction, err := lf.direction()
		if err != nil {
			return nil, err
		}
		return lights.NewDirectionalLight(lf.Radiosity.vec(), direction), nil

	case lights.LightTypeCone:
		if lf.HalfAngle <= 0 || lf.HalfAngle >= 180 {
			return nil, fmt.Errorf("cone halfAngle must be in (0, 180) degrees, got %g", lf.HalfAngle)
		}
		if lf.Direction == nil && lf.Target != nil {
			light := lights.NewConeLightFromAngle(lf.Intensity.vec(), lf.Position.vec(), lf.Target.vec(), lf.HalfAngle)
			if light.Direction.IsZero() {
				return nil, fmt.Errorf("cone target must differ from position")
			}
			return light, nil
		}
		direction, err := lf.direction()
		if err != nil {
			return nil, err
		}
		cosPhi := math.Cos(lf.HalfAngle * math.Pi / 180.0)
		return lights.NewConeLight(lf.Intensity.vec(), lf.Position.vec(), direction, cosPhi), nil

	case lights.LightTypeCylinder:
		if lf.Radius <= 0 {
			return nil, fmt.Errorf("cylinder radius must be positive, got %g", lf.Radius)
		}
		direction, err := lf.direction()
		if err != nil {
			return nil, err
		}
		return lights.NewCylinderLight(lf.Radiosity.vec(), lf.Origin.vec(), direction, lf.Radius), nil

	case "":
		return nil, fmt.Errorf("missing light type")
	default:
		return nil, fmt.Errorf("unsupported light type %q", lf.Type)
	}
}

func (lf LightFile) direction() (core.Vec3, error) {
	if lf.Direction == nil {
		return core.Vec3{}, fmt.Errorf("%s light needs a direction", lf.Type)
	}
	direction := lf.Direction.vec()
	if direction.IsZero() {
		return core.Vec3{}, fmt.Errorf("%s light direction must be non-zero", lf.Type)
	}
	return direction, nil
}

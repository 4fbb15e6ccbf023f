package scene

import (
	"fmt"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/lights"
)

// lightOrder is the order in which light kinds are visited during shading
var lightOrder = []lights.LightType{
	lights.LightTypePoint,
	lights.LightTypeDirectional,
	lights.LightTypeCone,
	lights.LightTypeCylinder,
}

// Scene contains the geometry and lights to render.
// Shapes and lights are only added while the scene is built; rendering treats
// the scene as read-only, so a built scene is safe to query from many goroutines.
type Scene struct {
	Name         string
	CameraConfig geometry.CameraConfig // Preferred camera for this scene
	Shapes       []geometry.Shape      // Objects in the scene, scanned linearly
	Ambient      lights.AmbientLight   // Ambient term, zero unless set

	lightsByType map[lights.LightType][]lights.Light
	lights       []lights.Light // All non-ambient lights in lightOrder
}

// NewScene creates an empty scene
func NewScene(name string, cameraConfig geometry.CameraConfig) *Scene {
	return &Scene{
		Name:         name,
		CameraConfig: cameraConfig,
		Shapes:       make([]geometry.Shape, 0),
		lightsByType: make(map[lights.LightType][]lights.Light),
	}
}

// AddShape appends shapes to the scene
func (s *Scene) AddShape(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddSphere adds a sphere with the given albedo
func (s *Scene) AddSphere(center core.Vec3, radius float64, albedo core.Vec3) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, albedo)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}

// AddLight adds a light, partitioned by its type. Adding an ambient light replaces
// the current ambient term.
func (s *Scene) AddLight(light lights.Light) error {
	if s.lightsByType == nil {
		s.lightsByType = make(map[lights.LightType][]lights.Light)
	}

	switch light.Type() {
	case lights.LightTypeAmbient:
		ambient, ok := light.(*lights.AmbientLight)
		if !ok {
			return fmt.Errorf("ambient light has unexpected type %T", light)
		}
		s.Ambient = *ambient
		return nil
	case lights.LightTypePoint, lights.LightTypeDirectional, lights.LightTypeCone, lights.LightTypeCylinder:
		s.lightsByType[light.Type()] = append(s.lightsByType[light.Type()], light)
	default:
		return fmt.Errorf("unsupported light type %q", light.Type())
	}

	all := make([]lights.Light, 0, len(s.lights)+1)
	for _, lightType := range lightOrder {
		all = append(all, s.lightsByType[lightType]...)
	}
	s.lights = all
	return nil
}

// Lights returns every non-ambient light: point, directional, cone and cylinder lights,
// in insertion order within each kind. The returned slice must not be modified.
func (s *Scene) Lights() []lights.Light {
	return s.lights
}

// LightsOfType returns the lights of a single kind in insertion order
func (s *Scene) LightsOfType(lightType lights.LightType) []lights.Light {
	return s.lightsByType[lightType]
}

// Intersect returns the nearest intersection inside (minT, maxT), or core.NoIntersection().
// Each shape is queried with the closest distance found so far as its upper bound.
func (s *Scene) Intersect(ray core.Ray, minT, maxT float64) core.Intersection {
	closest := core.NoIntersection()
	closestSoFar := maxT

	for _, shape := range s.Shapes {
		if hit := shape.Intersect(ray, minT, closestSoFar); hit.Valid() && hit.Distance < closestSoFar {
			closestSoFar = hit.Distance
			closest = hit
		}
	}

	return closest
}

// IntersectAny reports whether any shape is hit inside (minT, maxT).
// It stops at the first hit, so it is the query to use for shadow rays.
func (s *Scene) IntersectAny(ray core.Ray, minT, maxT float64) bool {
	for _, shape := range s.Shapes {
		if shape.IntersectAny(ray, minT, maxT) {
			return true
		}
	}
	return false
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// GetLightCount returns the number of non-ambient lights in the scene
func (s *Scene) GetLightCount() int {
	return len(s.lights)
}

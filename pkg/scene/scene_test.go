package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/lights"
)

func newTestScene() *Scene {
	s := NewScene("test", geometry.DefaultCameraConfig())
	s.AddSphere(core.NewVec3(0, 0, 10), 1, core.NewVec3(1, 0, 0))
	s.AddSphere(core.NewVec3(0, 0, 5), 1, core.NewVec3(0, 1, 0))
	s.AddSphere(core.NewVec3(0, 0, 15), 1, core.NewVec3(0, 0, 1))
	return s
}

func TestScene_Intersect_Nearest(t *testing.T) {
	s := newTestScene()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	tests := []struct {
		name          string
		minT, maxT    float64
		expectHit     bool
		expectedT     float64
		expectedColor core.Vec3
	}{
		{"unbounded finds nearest sphere", 0, math.Inf(1), true, 4, core.NewVec3(0, 1, 0)},
		{"minT skips nearest front face", 4.5, math.Inf(1), true, 6, core.NewVec3(0, 1, 0)},
		{"minT past first sphere", 7, math.Inf(1), true, 9, core.NewVec3(1, 0, 0)},
		{"maxT before everything", 0, 3, false, 0, core.Vec3{}},
		{"window between spheres", 6.5, 8.5, false, 0, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := s.Intersect(ray, tt.minT, tt.maxT)
			if hit.Valid() != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, hit.Valid())
			}
			if !tt.expectHit {
				if hit != core.NoIntersection() {
					t.Errorf("Expected canonical miss, got %+v", hit)
				}
				return
			}
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.Distance)
			}
			if hit.Color != tt.expectedColor {
				t.Errorf("Expected color %v, got %v", tt.expectedColor, hit.Color)
			}
			if s.IntersectAny(ray, tt.minT, tt.maxT) != tt.expectHit {
				t.Errorf("IntersectAny disagrees with Intersect")
			}
		})
	}
}

func TestScene_Empty(t *testing.T) {
	s := NewScene("empty", geometry.DefaultCameraConfig())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if hit := s.Intersect(ray, 0, math.Inf(1)); hit.Valid() {
		t.Errorf("Expected miss on empty scene, got %+v", hit)
	}
	if s.IntersectAny(ray, 0, math.Inf(1)) {
		t.Error("Expected IntersectAny miss on empty scene")
	}
	if len(s.Lights()) != 0 {
		t.Errorf("Expected no lights, got %d", len(s.Lights()))
	}
}

func TestScene_Intersect_ReorderInvariant(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	var spheres []geometry.Shape
	for i := 0; i < 8; i++ {
		center := core.NewVec3(random.Float64()*6-3, random.Float64()*6-3, random.Float64()*6+2)
		radius := 0.3 + random.Float64()
		albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
		spheres = append(spheres, geometry.NewSphere(center, radius, albedo))
	}

	forward := NewScene("forward", geometry.DefaultCameraConfig())
	forward.AddShape(spheres...)

	reversed := NewScene("reversed", geometry.DefaultCameraConfig())
	for i := len(spheres) - 1; i >= 0; i-- {
		reversed.AddShape(spheres[i])
	}

	shuffled := NewScene("shuffled", geometry.DefaultCameraConfig())
	for _, i := range random.Perm(len(spheres)) {
		shuffled.AddShape(spheres[i])
	}

	for i := 0; i < 2000; i++ {
		direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1).Normalize()
		ray := core.NewRay(core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, 0), direction)

		expected := forward.Intersect(ray, 0, math.Inf(1))
		for _, other := range []*Scene{reversed, shuffled} {
			got := other.Intersect(ray, 0, math.Inf(1))
			if got != expected {
				t.Fatalf("%s scene: expected %+v, got %+v", other.Name, expected, got)
			}
			if other.IntersectAny(ray, 0, math.Inf(1)) != expected.Valid() {
				t.Fatalf("%s scene: IntersectAny disagrees", other.Name)
			}
		}
	}
}

type areaLight struct{}

func (areaLight) Type() lights.LightType { return "area" }

func (areaLight) SampleRadiance(point core.Vec3) lights.LightSample { return lights.LightSample{} }

func TestScene_AddLight_PartitionsByType(t *testing.T) {
	s := NewScene("lights", geometry.DefaultCameraConfig())

	cylinder := lights.NewCylinderLight(core.NewVec3Scalar(1), core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), 1)
	cone := lights.NewConeLight(core.NewVec3Scalar(1), core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0.5)
	point1 := lights.NewPointLight(core.NewVec3Scalar(1), core.NewVec3(1, 0, 0))
	directional := lights.NewDirectionalLight(core.NewVec3Scalar(1), core.NewVec3(0, -1, 0))
	point2 := lights.NewPointLight(core.NewVec3Scalar(2), core.NewVec3(2, 0, 0))

	for _, light := range []lights.Light{cylinder, cone, point1, directional, point2} {
		if err := s.AddLight(light); err != nil {
			t.Fatalf("Unexpected error adding %s light: %v", light.Type(), err)
		}
	}

	expectedOrder := []lights.Light{point1, point2, directional, cone, cylinder}
	got := s.Lights()
	if len(got) != len(expectedOrder) {
		t.Fatalf("Expected %d lights, got %d", len(expectedOrder), len(got))
	}
	for i := range expectedOrder {
		if got[i] != expectedOrder[i] {
			t.Errorf("Light %d: expected %s light %p, got %s light %p", i,
				expectedOrder[i].Type(), expectedOrder[i], got[i].Type(), got[i])
		}
	}

	if n := len(s.LightsOfType(lights.LightTypePoint)); n != 2 {
		t.Errorf("Expected 2 point lights, got %d", n)
	}
	if s.GetLightCount() != 5 {
		t.Errorf("Expected light count 5, got %d", s.GetLightCount())
	}
}

func TestScene_AddLight_Ambient(t *testing.T) {
	s := NewScene("ambient", geometry.DefaultCameraConfig())

	if err := s.AddLight(lights.NewAmbientLight(core.NewVec3Scalar(0.1))); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.AddLight(lights.NewAmbientLight(core.NewVec3Scalar(0.2))); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.Ambient.Radiance != core.NewVec3Scalar(0.2) {
		t.Errorf("Expected the last ambient light to win, got %v", s.Ambient.Radiance)
	}
	if len(s.Lights()) != 0 {
		t.Errorf("Ambient light must not be listed with the sampled lights")
	}
}

func TestScene_AddLight_Unsupported(t *testing.T) {
	s := NewScene("unsupported", geometry.DefaultCameraConfig())
	if err := s.AddLight(areaLight{}); err == nil {
		t.Error("Expected error for unsupported light type")
	}
	if len(s.Lights()) != 0 {
		t.Errorf("Unsupported light should not be added")
	}
}

func TestNewDefaultScene_LightModes(t *testing.T) {
	tests := []struct {
		mode     LightMode
		expected map[lights.LightType]int
	}{
		{LightModePoint, map[lights.LightType]int{lights.LightTypePoint: 1}},
		{LightModeDirectional, map[lights.LightType]int{lights.LightTypeDirectional: 1}},
		{LightModeCylinder, map[lights.LightType]int{lights.LightTypeCylinder: 1}},
		{LightModeCone, map[lights.LightType]int{lights.LightTypeCone: 1}},
		{LightModeAll, map[lights.LightType]int{
			lights.LightTypePoint:       1,
			lights.LightTypeDirectional: 1,
			lights.LightTypeCylinder:    1,
			lights.LightTypeCone:        1,
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			s := NewDefaultScene(tt.mode)
			if s.GetPrimitiveCount() != 3 {
				t.Errorf("Expected 3 spheres, got %d", s.GetPrimitiveCount())
			}
			if s.Ambient.Radiance != core.NewVec3Scalar(0.01) {
				t.Errorf("Expected ambient 0.01, got %v", s.Ambient.Radiance)
			}
			total := 0
			for lightType, count := range tt.expected {
				if got := len(s.LightsOfType(lightType)); got != count {
					t.Errorf("Expected %d %s lights, got %d", count, lightType, got)
				}
				total += count
			}
			if s.GetLightCount() != total {
				t.Errorf("Expected %d lights in total, got %d", total, s.GetLightCount())
			}
		})
	}
}

func TestParseLightMode(t *testing.T) {
	if mode, err := ParseLightMode(""); err != nil || mode != DefaultLightMode {
		t.Errorf("Expected default light mode, got %q (%v)", mode, err)
	}
	if mode, err := ParseLightMode("cylinder"); err != nil || mode != LightModeCylinder {
		t.Errorf("Expected cylinder, got %q (%v)", mode, err)
	}
	if _, err := ParseLightMode("laser"); err == nil {
		t.Error("Expected error for unknown light mode")
	}
}

package lights

import (
	"math"
	"testing"

	"github.com/df07/go-raycasting/pkg/core"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestAmbientLight_SampleRadiance(t *testing.T) {
	light := NewAmbientLight(core.NewVec3(0.1, 0.2, 0.3))

	for _, point := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(100, -5, 3)} {
		sample := light.SampleRadiance(point)
		if sample.Radiance != light.Radiance {
			t.Errorf("Expected constant radiance %v, got %v", light.Radiance, sample.Radiance)
		}
	}
	if light.Type() != LightTypeAmbient {
		t.Errorf("Expected ambient type, got %s", light.Type())
	}
}

func TestPointLight_SampleRadiance(t *testing.T) {
	light := NewPointLight(core.NewVec3(8, 4, 2), core.NewVec3(0, 2, 0))

	tests := []struct {
		name              string
		point             core.Vec3
		expectedRadiance  core.Vec3
		expectedDirection core.Vec3
		expectedDistance  float64
	}{
		{
			name:              "directly below at distance 2",
			point:             core.NewVec3(0, 0, 0),
			expectedRadiance:  core.NewVec3(2, 1, 0.5),
			expectedDirection: core.NewVec3(0, 1, 0),
			expectedDistance:  2,
		},
		{
			name:              "to the side at distance 4",
			point:             core.NewVec3(4, 2, 0),
			expectedRadiance:  core.NewVec3(0.5, 0.25, 0.125),
			expectedDirection: core.NewVec3(-1, 0, 0),
			expectedDistance:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := light.SampleRadiance(tt.point)
			if !vecNear(sample.Radiance, tt.expectedRadiance) {
				t.Errorf("Expected radiance %v, got %v", tt.expectedRadiance, sample.Radiance)
			}
			if !vecNear(sample.Direction, tt.expectedDirection) {
				t.Errorf("Expected direction %v, got %v", tt.expectedDirection, sample.Direction)
			}
			if math.Abs(sample.Distance-tt.expectedDistance) > tolerance {
				t.Errorf("Expected distance %f, got %f", tt.expectedDistance, sample.Distance)
			}
		})
	}
}

func TestPointLight_AtLightPosition(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 1, 1), core.NewVec3(1, 2, 3))
	sample := light.SampleRadiance(core.NewVec3(1, 2, 3))

	if !sample.Radiance.IsZero() {
		t.Errorf("Expected no radiance at the light position, got %v", sample.Radiance)
	}
	if math.Abs(sample.Direction.Length()-1) > tolerance {
		t.Errorf("Expected unit direction, got %v", sample.Direction)
	}
}

func TestDirectionalLight_SampleRadiance(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(3, 3, 3), core.NewVec3(0, -2, 0))

	sample := light.SampleRadiance(core.NewVec3(5, -7, 11))
	if sample.Radiance != core.NewVec3(3, 3, 3) {
		t.Errorf("Expected uniform radiance, got %v", sample.Radiance)
	}
	if !vecNear(sample.Direction, core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected direction toward the light (0,1,0), got %v", sample.Direction)
	}
	if !math.IsInf(sample.Distance, 1) {
		t.Errorf("Expected infinite distance, got %f", sample.Distance)
	}
}

func TestConeLight_SampleRadiance(t *testing.T) {
	intensity := core.NewVec3(30, 30, 30)
	position := core.NewVec3(0, 4, 0)
	light := NewConeLight(intensity, position, core.NewVec3(0, -1, 0), math.Cos(math.Pi/4))
	point := NewPointLight(intensity, position)

	t.Run("on axis", func(t *testing.T) {
		p := core.NewVec3(0, 0, 0)
		sample := light.SampleRadiance(p)
		base := point.SampleRadiance(p)

		// Attenuation is 1 on the axis, texture is 0.5 + 0.5*sin(200)
		factor := 0.5 + 0.5*math.Sin(200.0)
		if !vecNear(sample.Radiance, base.Radiance.Multiply(factor)) {
			t.Errorf("Expected %v, got %v", base.Radiance.Multiply(factor), sample.Radiance)
		}
		if sample.Direction != base.Direction || sample.Distance != base.Distance {
			t.Errorf("Expected direction and distance of the point light, got %+v", sample)
		}
	})

	t.Run("outside cone", func(t *testing.T) {
		sample := light.SampleRadiance(core.NewVec3(10, 3, 0))
		if !sample.Radiance.IsZero() {
			t.Errorf("Expected no radiance outside the cone, got %v", sample.Radiance)
		}
	})

	t.Run("behind the light", func(t *testing.T) {
		sample := light.SampleRadiance(core.NewVec3(0, 8, 0))
		if !sample.Radiance.IsZero() {
			t.Errorf("Expected no radiance behind the light, got %v", sample.Radiance)
		}
	})

	t.Run("inside cone near edge is attenuated", func(t *testing.T) {
		// 30 degrees off axis, half-angle is 45
		p := core.NewVec3(4*math.Tan(math.Pi/6), 0, 0)
		sample := light.SampleRadiance(p)
		base := point.SampleRadiance(p)

		cosAngle := math.Cos(math.Pi / 6)
		factor := core.Smoothstep(math.Cos(math.Pi/4), 1, cosAngle) * (0.5 + 0.5*math.Sin(200*cosAngle))
		if math.Abs(sample.Radiance.X-base.Radiance.X*factor) > 1e-6 {
			t.Errorf("Expected %f, got %f", base.Radiance.X*factor, sample.Radiance.X)
		}
	})
}

func TestNewConeLightFromAngle(t *testing.T) {
	light := NewConeLightFromAngle(core.NewVec3(1, 1, 1), core.NewVec3(2, 2, 2), core.NewVec3(2, 0, 2), 60)

	if !vecNear(light.Direction, core.NewVec3(0, -1, 0)) {
		t.Errorf("Expected axis (0,-1,0), got %v", light.Direction)
	}
	if math.Abs(light.CosPhi-0.5) > tolerance {
		t.Errorf("Expected cosPhi 0.5, got %f", light.CosPhi)
	}
	if light.Type() != LightTypeCone {
		t.Errorf("Expected cone type, got %s", light.Type())
	}
}

func TestCylinderLight_SampleRadiance(t *testing.T) {
	radiosity := core.NewVec3(3, 3, 3)
	light := NewCylinderLight(radiosity, core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0), 3)

	tests := []struct {
		name     string
		point    core.Vec3
		expected float64
	}{
		{"on axis", core.NewVec3(0, 0, 0), 3 * 0.5},
		{"well inside", core.NewVec3(1, -4, 0), 3 * (0.5 + 0.5*math.Sin(15))},
		{"in falloff band", core.NewVec3(0, 2, 2.5), 3 * core.Smoothstep(0, 1, 0.5) * (0.5 + 0.5*math.Sin(15*2.5))},
		{"outside radius", core.NewVec3(0, 0, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := light.SampleRadiance(tt.point)
			if math.Abs(sample.Radiance.X-tt.expected) > 1e-9 {
				t.Errorf("Expected radiance %f, got %f", tt.expected, sample.Radiance.X)
			}
			if !vecNear(sample.Direction, core.NewVec3(0, 1, 0)) {
				t.Errorf("Expected direction (0,1,0), got %v", sample.Direction)
			}
			if !math.IsInf(sample.Distance, 1) {
				t.Errorf("Expected infinite distance, got %f", sample.Distance)
			}
		})
	}
}

func TestLights_DirectionIsUnit(t *testing.T) {
	all := []Light{
		NewPointLight(core.NewVec3(1, 1, 1), core.NewVec3(3, -1, 2)),
		NewDirectionalLight(core.NewVec3(1, 1, 1), core.NewVec3(1, -2, 3)),
		NewConeLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 5, 0), core.NewVec3(0.2, -1, 0), 0.5),
		NewCylinderLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 5, 0), core.NewVec3(1, -1, 1), 2),
	}
	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(-3, 1, 7),
		core.NewVec3(0.5, 0.5, -0.5),
	}

	for _, light := range all {
		for _, p := range points {
			sample := light.SampleRadiance(p)
			if math.Abs(sample.Direction.Length()-1) > tolerance {
				t.Errorf("%s light: expected unit direction at %v, got %v", light.Type(), p, sample.Direction)
			}
		}
	}
}

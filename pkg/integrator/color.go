package integrator

import (
	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/scene"
)

// Color renders the albedo of the nearest surface, unlit
type Color struct{}

func (Color) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	// A miss carries a zero color
	return primaryHit(s, ray).Color
}

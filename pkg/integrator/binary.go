package integrator

import (
	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/scene"
)

// Binary renders white where the ray hits anything and black elsewhere
type Binary struct{}

func (Binary) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	if primaryHit(s, ray).Valid() {
		return core.NewVec3Scalar(1)
	}
	return core.NewVec3Scalar(0)
}

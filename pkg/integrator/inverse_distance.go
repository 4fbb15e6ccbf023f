package integrator

import (
	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/scene"
)

// InverseDistance renders 1/t for the nearest hit distance t, so near surfaces are bright.
// Values above 1 are left for the image serializer to clamp.
type InverseDistance struct{}

func (InverseDistance) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	hit := primaryHit(s, ray)
	if !hit.Valid() {
		return core.Vec3{}
	}
	return core.NewVec3Scalar(1.0 / hit.Distance)
}

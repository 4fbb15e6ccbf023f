package integrator

import (
	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/scene"
)

// Normal visualizes the viewer-facing surface normal, mapping [-1,1] to [0,1] per channel
type Normal struct{}

func (Normal) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	hit := primaryHit(s, ray)
	if !hit.Valid() {
		return core.Vec3{}
	}
	n := hit.FacingNormal(ray.Direction)
	return n.Multiply(0.5).Add(core.NewVec3Scalar(0.5))
}

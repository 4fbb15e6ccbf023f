package integrator

import (
	"math"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/scene"
)

// DefaultMaxSegments bounds the number of ray segments traced through transparent surfaces
const DefaultMaxSegments = 11

// Transparency treats every surface as a colored filter in front of a white background.
// Each crossing multiplies the transmitted color by the surface albedo.
type Transparency struct {
	Epsilon     float64
	MaxSegments int
}

// NewTransparency creates a transparency integrator
func NewTransparency(epsilon float64, maxSegments int) Transparency {
	return Transparency{Epsilon: epsilon, MaxSegments: maxSegments}
}

func (tr Transparency) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	color := core.NewVec3Scalar(1)

	for segment := 0; segment < tr.MaxSegments; segment++ {
		hit := s.Intersect(ray, 0, math.Inf(1))
		if !hit.Valid() {
			return color
		}
		color = color.MultiplyVec(hit.Color)

		// Step just past the surface along the ray's side of it
		n := hit.FacingNormal(ray.Direction)
		ray = core.NewRay(hit.Position.Subtract(n.Multiply(tr.Epsilon)), ray.Direction)
	}

	// Segment budget exhausted: treat the remaining path as absorbed
	return core.Vec3{}
}

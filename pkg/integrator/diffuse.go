package integrator

import (
	"math"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/lights"
	"github.com/df07/go-raycasting/pkg/scene"
)

// DiffuseLocal shades Lambertian surfaces from every light without shadows.
//
//	L = π·ρ·ambient + Σ ρ·Li·max(0, n·ωi),  ρ = albedo/π
type DiffuseLocal struct{}

func (DiffuseLocal) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	hit := primaryHit(s, ray)
	if !hit.Valid() {
		return core.Vec3{}
	}
	return shadeDiffuse(s, ray, hit, nil)
}

// DiffuseDirect is DiffuseLocal with a shadow ray per light. A light contributes only
// when nothing lies between the surface and the light.
type DiffuseDirect struct {
	Epsilon float64 // Shadow ray origin offset along the facing normal
}

// NewDiffuseDirect creates a direct lighting integrator
func NewDiffuseDirect(epsilon float64) DiffuseDirect {
	return DiffuseDirect{Epsilon: epsilon}
}

func (dd DiffuseDirect) Radiance(s *scene.Scene, ray core.Ray) core.Vec3 {
	hit := primaryHit(s, ray)
	if !hit.Valid() {
		return core.Vec3{}
	}

	visible := func(n core.Vec3, sample lights.LightSample) bool {
		shadowRay := core.NewRay(hit.Position.Add(n.Multiply(dd.Epsilon)), sample.Direction)
		return !s.IntersectAny(shadowRay, 0, sample.Distance)
	}
	return shadeDiffuse(s, ray, hit, visible)
}

// shadeDiffuse evaluates the Lambertian sum at hit. Lights are sampled at the surface
// point itself; visible, when non-nil, gates each light's contribution.
func shadeDiffuse(s *scene.Scene, ray core.Ray, hit core.Intersection, visible func(n core.Vec3, sample lights.LightSample) bool) core.Vec3 {
	albedo := hit.Color.Multiply(core.InvPi)
	n := hit.FacingNormal(ray.Direction)

	ambient := s.Ambient.SampleRadiance(hit.Position).Radiance
	radiance := albedo.MultiplyVec(ambient).Multiply(math.Pi)

	for _, light := range s.Lights() {
		sample := light.SampleRadiance(hit.Position)
		if sample.Radiance.IsZero() {
			continue
		}
		cosTheta := n.Dot(sample.Direction)
		if cosTheta <= 0 {
			continue
		}
		if visible != nil && !visible(n, sample) {
			continue
		}
		radiance = radiance.Add(albedo.MultiplyVec(sample.Radiance).Multiply(cosTheta))
	}

	return radiance
}

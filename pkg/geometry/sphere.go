package geometry

import (
	"math"

	"github.com/df07/go-raycasting/pkg/core"
)

// Sphere represents a sphere shape with a constant albedo
type Sphere struct {
	Center core.Vec3
	Radius float64
	Albedo core.Vec3 // Diffuse color, in [0,1] per channel for energy conservation
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, albedo core.Vec3) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Albedo: albedo,
	}
}

// NormalAt returns the outward unit normal for a point on the sphere surface
func (s *Sphere) NormalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Divide(s.Radius)
}

// roots solves |origin + t*dir - center|² = r² for a unit-length direction.
// The leading coefficient is 1, so with b = dot(dir, center-origin) and
// c = |center-origin|² - r² the roots are b ± sqrt(b² - c).
// Tangent rays (zero discriminant) are reported as a miss.
func (s *Sphere) roots(ray core.Ray) (t1, t2 float64, ok bool) {
	oc := s.Center.Subtract(ray.Origin)
	b := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - c

	if discriminant <= 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	return b - sqrtD, b + sqrtD, true
}

// Intersect returns the nearest intersection with t strictly inside (minT, maxT),
// or core.NoIntersection()
func (s *Sphere) Intersect(ray core.Ray, minT, maxT float64) core.Intersection {
	t1, t2, ok := s.roots(ray)
	if !ok {
		return core.NoIntersection()
	}

	// Try the closer root first, then the farther one
	t := t1
	if t <= minT || t >= maxT {
		t = t2
		if t <= minT || t >= maxT {
			return core.NoIntersection()
		}
	}

	position := ray.At(t)
	return core.Intersection{
		Distance: t,
		Position: position,
		Normal:   s.NormalAt(position),
		Color:    s.Albedo,
	}
}

// IntersectAny reports whether the ray hits the sphere inside (minT, maxT)
// without building the intersection record
func (s *Sphere) IntersectAny(ray core.Ray, minT, maxT float64) bool {
	t1, t2, ok := s.roots(ray)
	if !ok {
		return false
	}
	return (t1 > minT && t1 < maxT) || (t2 > minT && t2 < maxT)
}

package core

// Intersection contains information about a ray-geometry intersection.
// Normal is unit length but not oriented: it is the geometric outward normal and
// may face away from the ray. Use FacingNormal to orient it.
type Intersection struct {
	Distance float64 // Distance along the ray, +Inf when there is no intersection
	Position Vec3    // Point of intersection
	Normal   Vec3    // Outward surface normal at the intersection
	Color    Vec3    // Surface albedo at the intersection
}

// NoIntersection returns the canonical miss: infinite distance and zeroed fields
func NoIntersection() Intersection {
	return Intersection{Distance: Infinity}
}

// Valid reports whether the intersection represents a hit
func (i Intersection) Valid() bool {
	return i.Distance < Infinity
}

// FacingNormal returns the normal oriented against direction, so that it points
// to the side the ray arrived from. Surfaces are treated as two-sided.
func (i Intersection) FacingNormal(direction Vec3) Vec3 {
	if direction.Dot(i.Normal) < 0 {
		return i.Normal
	}
	return i.Normal.Negate()
}

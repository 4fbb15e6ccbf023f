package geometry

import "github.com/df07/go-raycasting/pkg/core"

// Shape interface for objects that can be hit by rays.
// Both queries only report hits strictly inside (minT, maxT), and IntersectAny must agree
// with Intersect(...).Valid() for the same inputs.
type Shape interface {
	Intersect(ray core.Ray, minT, maxT float64) core.Intersection
	IntersectAny(ray core.Ray, minT, maxT float64) bool
}

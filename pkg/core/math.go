package core

import "math"

const (
	// DefaultEpsilon is the offset applied along the surface normal when a secondary ray
	// (shadow or transmission) leaves a surface. It has to survive float64 rounding at
	// scene scale while staying small enough that shadows do not detach from contacts.
	DefaultEpsilon = 1e-4

	// InvPi is 1/π, the normalization of a Lambertian BRDF
	InvPi = 1.0 / math.Pi
)

// Infinity is +Inf, the "no intersection" distance and the distance to lights at infinity
var Infinity = math.Inf(1)

// Clamp limits x to [minVal, maxVal]
func Clamp(x, minVal, maxVal float64) float64 {
	return max(minVal, min(maxVal, x))
}

// Smoothstep mirrors GLSL smoothstep: cubic Hermite interpolation of x between edge0 and edge1,
// clamped to [0, 1]
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

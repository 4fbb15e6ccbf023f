package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/scene"
)

// Integrator maps a camera ray to the radiance arriving along it
type Integrator interface {
	// Radiance computes the color seen along ray. It has no side effects, so one
	// integrator may be shared by concurrent renders of the same scene.
	Radiance(s *scene.Scene, ray core.Ray) core.Vec3
}

// Type names an integrator
type Type string

const (
	TypeBinary          Type = "binary"
	TypeColor           Type = "color"
	TypeInverseDistance Type = "inverse-distance"
	TypeNormal          Type = "normal"
	TypeTransparency    Type = "transparency"
	TypeDiffuseLocal    Type = "diffuse-local"
	TypeDiffuseDirect   Type = "diffuse-direct"
)

// DefaultType is the integrator used when none is requested
const DefaultType = TypeDiffuseDirect

// Options holds the tunables shared by the integrators that spawn secondary rays
type Options struct {
	Epsilon     float64 // Offset applied to secondary ray origins
	MaxSegments int     // Segment cap for the transparency integrator
}

// DefaultOptions returns the default epsilon and segment cap
func DefaultOptions() Options {
	return Options{
		Epsilon:     core.DefaultEpsilon,
		MaxSegments: DefaultMaxSegments,
	}
}

// Types returns every integrator name in menu order
func Types() []Type {
	return []Type{
		TypeBinary,
		TypeColor,
		TypeInverseDistance,
		TypeNormal,
		TypeTransparency,
		TypeDiffuseLocal,
		TypeDiffuseDirect,
	}
}

// ParseType validates an integrator name. An empty name selects DefaultType.
func ParseType(value string) (Type, error) {
	if value == "" {
		return DefaultType, nil
	}
	for _, t := range Types() {
		if Type(value) == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown integrator %q (valid: %v)", value, Types())
}

// New creates the integrator named by t. Zero option values fall back to the defaults.
func New(t Type, opts Options) (Integrator, error) {
	if opts.Epsilon <= 0 {
		opts.Epsilon = core.DefaultEpsilon
	}
	if opts.MaxSegments <= 0 {
		opts.MaxSegments = DefaultMaxSegments
	}

	switch t {
	case TypeBinary:
		return Binary{}, nil
	case TypeColor:
		return Color{}, nil
	case TypeInverseDistance:
		return InverseDistance{}, nil
	case TypeNormal:
		return Normal{}, nil
	case TypeTransparency:
		return NewTransparency(opts.Epsilon, opts.MaxSegments), nil
	case TypeDiffuseLocal:
		return DiffuseLocal{}, nil
	case TypeDiffuseDirect:
		return NewDiffuseDirect(opts.Epsilon), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", t)
	}
}

// primaryHit finds the nearest surface along a camera ray
func primaryHit(s *scene.Scene, ray core.Ray) core.Intersection {
	return s.Intersect(ray, 0, math.Inf(1))
}

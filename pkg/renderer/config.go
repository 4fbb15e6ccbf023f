package renderer

import (
	"fmt"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	Width       int             // Image width in pixels
	Height      int             // Image height in pixels
	Integrator  integrator.Type // Light transport used for every pixel
	Epsilon     float64         // Secondary ray offset
	MaxSegments int             // Segment cap of the transparency integrator
	Gamma       float64         // Gamma applied when the image is quantized
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:       640,
		Height:      480,
		Integrator:  integrator.DefaultType,
		Epsilon:     core.DefaultEpsilon,
		MaxSegments: integrator.DefaultMaxSegments,
		Gamma:       2.0,
	}
}

// Validate checks that the configuration can be rendered
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d: width and height must be positive", c.Width, c.Height)
	}
	if _, err := integrator.ParseType(string(c.Integrator)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("invalid epsilon %g: must be positive", c.Epsilon)
	}
	if c.MaxSegments <= 0 {
		return fmt.Errorf("invalid max segments %d: must be positive", c.MaxSegments)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("invalid gamma %g: must be positive", c.Gamma)
	}
	return nil
}

// IntegratorOptions returns the integrator tunables of this configuration
func (c Config) IntegratorOptions() integrator.Options {
	return integrator.Options{
		Epsilon:     c.Epsilon,
		MaxSegments: c.MaxSegments,
	}
}

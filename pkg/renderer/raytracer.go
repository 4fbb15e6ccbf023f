package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/integrator"
	"github.com/df07/go-raycasting/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene with the camera and integrator chosen by its configuration
type Raytracer struct {
	scene      *scene.Scene
	camera     core.Camera
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer validates config and prepares the scene camera and integrator
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scene")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	config.Integrator, _ = integrator.ParseType(string(config.Integrator))
	integ, err := integrator.New(config.Integrator, config.IntegratorOptions())
	if err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:      s,
		camera:     geometry.NewCamera(s.CameraConfig),
		integrator: integ,
		config:     config,
		logger:     logger,
	}, nil
}

// SetCamera replaces the camera derived from the scene
func (rt *Raytracer) SetCamera(camera core.Camera) {
	rt.camera = camera
}

// Config returns the configuration the raytracer was created with
func (rt *Raytracer) Config() Config {
	return rt.config
}

// RenderPass renders the whole image once
func (rt *Raytracer) RenderPass() (*Image, RenderStats) {
	img, stats, _ := rt.RenderPassContext(context.Background())
	return img, stats
}

// RenderPassContext renders the whole image, stopping between rows when ctx is done
func (rt *Raytracer) RenderPassContext(ctx context.Context) (*Image, RenderStats, error) {
	rt.logger.Printf("Rendering %q at %dx%d with the %s integrator (%d shapes, %d lights)...\n",
		rt.scene.Name, rt.config.Width, rt.config.Height, rt.config.Integrator,
		rt.scene.GetPrimitiveCount(), rt.scene.GetLightCount())

	start := time.Now()
	img := NewImage(rt.config.Width, rt.config.Height)
	target := NewCountingTarget(img)

	err := RenderContext(ctx, target, rt.camera, rt.scene, rt.integrator)

	total, lit := target.Counts()
	stats := RenderStats{
		TotalPixels:      total,
		HitPixels:        lit,
		AverageLuminance: img.AverageLuminance(),
		Elapsed:          time.Since(start),
	}
	if err != nil {
		rt.logger.Printf("Render cancelled after %d of %d pixels\n", stats.TotalPixels, rt.config.Width*rt.config.Height)
		return img, stats, err
	}

	rt.logger.Printf("Render completed in %v (%d/%d pixels lit)\n", stats.Elapsed, stats.HitPixels, stats.TotalPixels)
	return img, stats, nil
}

package renderer

import (
	"context"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/integrator"
	"github.com/df07/go-raycasting/pkg/scene"
)

// ScreenCoordinate maps the centre of pixel (x, y) of a width×height target to camera
// screen space: u spans [-aspect, aspect] left to right, v spans [1, -1] top to bottom.
func ScreenCoordinate(x, y, width, height int) core.Vec2 {
	aspect := float64(width) / float64(height)
	u := aspect * (2.0*(float64(x)+0.5)/float64(width) - 1.0)
	v := -2.0*(float64(y)+0.5)/float64(height) + 1.0
	return core.NewVec2(u, v)
}

// Render fills target with one primary ray per pixel, rows top to bottom and
// columns left to right
func Render(target Target, camera core.Camera, s *scene.Scene, integ integrator.Integrator) {
	// Background context is never cancelled
	_ = RenderContext(context.Background(), target, camera, s, integ)
}

// RenderContext is Render with cancellation checked between rows. It returns ctx.Err()
// when the render stops early, leaving the remaining rows untouched.
func RenderContext(ctx context.Context, target Target, camera core.Camera, s *scene.Scene, integ integrator.Integrator) error {
	width, height := target.Width(), target.Height()
	if width <= 0 || height <= 0 {
		return nil
	}

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < width; x++ {
			ray := camera.GenerateRay(ScreenCoordinate(x, y, width, height))
			target.Set(x, y, integ.Radiance(s, ray))
		}
	}
	return nil
}

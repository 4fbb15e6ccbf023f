package renderer

import (
	"time"

	"github.com/df07/go-raycasting/pkg/core"
)

// RenderStats contains statistics about a render pass
type RenderStats struct {
	TotalPixels      int           // Pixels written
	HitPixels        int           // Pixels that received non-black radiance
	AverageLuminance float64       // Mean clamped luminance of the image
	Elapsed          time.Duration // Wall time of the pass
}

// HitRatio returns the fraction of pixels that received non-black radiance
func (rs RenderStats) HitRatio() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.HitPixels) / float64(rs.TotalPixels)
}

// CountingTarget forwards writes to a Target and counts them
type CountingTarget struct {
	Target
	total int
	lit   int
}

// NewCountingTarget wraps target
func NewCountingTarget(target Target) *CountingTarget {
	return &CountingTarget{Target: target}
}

func (ct *CountingTarget) Set(x, y int, c core.Vec3) {
	ct.total++
	if !c.IsZero() {
		ct.lit++
	}
	ct.Target.Set(x, y, c)
}

// Counts returns the number of pixels written and how many of them were non-black
func (ct *CountingTarget) Counts() (total, lit int) {
	return ct.total, ct.lit
}

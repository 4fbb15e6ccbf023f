package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Downscale shrinks img by an integer factor with a Lanczos filter. Rendering at
// factor× the target size and downscaling gives an anti-aliased image from a
// renderer that casts one ray per pixel. A factor of 1 or less returns img unchanged.
func Downscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	bounds := img.Bounds()
	width := bounds.Dx() / factor
	height := bounds.Dy() / factor
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

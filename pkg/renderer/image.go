package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raycasting/pkg/core"
)

// Target receives the radiance computed for each pixel
type Target interface {
	Width() int
	Height() int
	Set(x, y int, c core.Vec3)
}

// Image is a row-major buffer of linear radiance values
type Image struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewImage creates a black image of the given size
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

// Set stores the radiance of pixel (x, y); (0, 0) is the top-left corner
func (img *Image) Set(x, y int, c core.Vec3) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.pixels[y*img.width+x] = c
}

// At returns the radiance of pixel (x, y), or black outside the image
func (img *Image) At(x, y int) core.Vec3 {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return core.Vec3{}
	}
	return img.pixels[y*img.width+x]
}

// ToRGBA quantizes the image to 8 bits per channel. Each value is gamma corrected,
// then clamped to [0, 1]. A gamma of 1, or one that is not positive, leaves values linear.
func (img *Image) ToRGBA(gamma float64) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			out.SetRGBA(x, y, vec3ToColor(img.pixels[y*img.width+x], gamma))
		}
	}
	return out
}

// AverageLuminance returns the mean luminance of the clamped pixel values
func (img *Image) AverageLuminance() float64 {
	if len(img.pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range img.pixels {
		total += c.Clamp(0, 1).Luminance()
	}
	return total / float64(len(img.pixels))
}

// vec3ToColor converts a radiance value to RGBA with gamma correction and clamping
func vec3ToColor(c core.Vec3, gamma float64) color.RGBA {
	// Negative values have no meaningful power
	c = core.NewVec3(max(c.X, 0), max(c.Y, 0), max(c.Z, 0))
	if gamma > 0 && gamma != 1 {
		c = c.GammaCorrect(gamma)
	}
	c = c.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255*c.X + 0.5),
		G: uint8(255*c.Y + 0.5),
		B: uint8(255*c.Z + 0.5),
		A: 255,
	}
}

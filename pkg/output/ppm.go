package output

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// EncodePPM writes img as a binary (P6) portable pixmap
func EncodePPM(w io.Writer, img image.Image) error {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	row := make([]byte, 3*bounds.Dx())
	for y := 0; y < bounds.Dy(); y++ {
		pixels := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*bounds.Dx()]
		for x := 0; x < bounds.Dx(); x++ {
			copy(row[3*x:3*x+3], pixels[4*x:4*x+3])
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("write ppm pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}

// SavePPM writes img to path as a binary portable pixmap
func SavePPM(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return EncodePPM(f, img)
}

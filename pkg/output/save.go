// Package output turns rendered images into files and published objects
package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// JPEGQuality is used whenever a render is encoded as JPEG
const JPEGQuality = 95

// Format names an output image encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
	FormatGIF  Format = "gif"
	FormatTIFF Format = "tif"
	FormatBMP  Format = "bmp"
	FormatPPM  Format = "ppm"
)

// FormatFromFilename picks the encoding from a file extension
func FormatFromFilename(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "ppm":
		return FormatPPM, nil
	case "jpeg":
		return FormatJPEG, nil
	case "tiff":
		return FormatTIFF, nil
	}
	if _, err := imaging.FormatFromExtension(ext); err != nil {
		return "", fmt.Errorf("unsupported output format %q: %w", filepath.Ext(filename), err)
	}
	return Format(ext), nil
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatGIF:
		return "image/gif"
	case FormatTIFF:
		return "image/tiff"
	case FormatBMP:
		return "image/bmp"
	case FormatPPM:
		return "image/x-portable-pixmap"
	default:
		return "application/octet-stream"
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	if format == FormatPPM {
		return EncodePPM(w, img)
	}

	imagingFormat, err := imaging.FormatFromExtension(string(format))
	if err != nil {
		return fmt.Errorf("unsupported output format %q: %w", format, err)
	}
	if err := imaging.Encode(w, img, imagingFormat, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Save writes img to path, choosing the encoding from the file extension and
// creating missing parent directories
func Save(path string, img image.Image) error {
	format, err := FormatFromFilename(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if format == FormatPPM {
		return SavePPM(path, img)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

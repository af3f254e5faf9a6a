// Package imageio writes rendered frames to disk.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Formats lists the supported output extensions without the dot.
var Formats = []string{"webp", "tga", "png"}

// Encode writes img to w in the given format ("webp", "tga" or "png").
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("imageio: webp encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: tga encode: %w", err)
		}
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: png encode: %w", err)
		}
	default:
		return fmt.Errorf("imageio: unknown format %q", format)
	}
	return nil
}

// Save writes img to path, choosing the encoder from the file extension and
// creating parent directories as needed.
func Save(path string, img image.Image) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !Supported(format) {
		return fmt.Errorf("imageio: unknown extension %q", filepath.Ext(path))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Supported reports whether format names one of Formats.
func Supported(format string) bool {
	format = strings.ToLower(format)
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

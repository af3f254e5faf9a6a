package imageio

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"
)

var decoders = map[string]func(io.Reader) (image.Image, error){
	"webp": webp.Decode,
	"tga":  tga.Decode,
	"png":  png.Decode,
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 12; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 20), uint8(y * 30), 90, 255})
		}
	}
	return img
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := testImage()

	for _, format := range Formats {
		path := filepath.Join(dir, "sub", "frame."+format)
		if err := Save(path, src); err != nil {
			t.Fatalf("%s: %v", format, err)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		img, err := decoders[format](f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: decode: %v", format, err)
		}
		if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 7 {
			t.Fatalf("%s: bounds=%v", format, img.Bounds())
		}
		r, g, _, _ := img.At(3, 2).RGBA()
		if r>>8 != 60 || g>>8 != 60 {
			t.Fatalf("%s: pixel (3,2)=%v", format, img.At(3, 2))
		}
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "frame.bmp"), testImage()); err == nil {
		t.Fatal("expected error for .bmp")
	}
	if Supported("jpeg") || !Supported("WEBP") {
		t.Fatal("Supported mismatch")
	}
}

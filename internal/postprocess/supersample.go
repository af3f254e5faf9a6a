package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales img down to target×target with premultiplied-alpha-aware
// CatmullRom filtering, so transparent edges do not pick up dark halos.
// Images already at or below target are returned as is.
func Downsample(img *image.NRGBA, target int) *image.NRGBA {
	b := img.Bounds()
	if target <= 0 || (b.Dx() <= target && b.Dy() <= target) {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, target, target))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premultiply(img), b, draw.Src, nil)
	return unpremultiply(dst)
}

func premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := uint32(img.Pix[si+3])
			for c := 0; c < 3; c++ {
				out.Pix[di+c] = uint8((uint32(img.Pix[si+c])*a + 127) / 255)
			}
			out.Pix[di+3] = img.Pix[si+3]
		}
	}
	return out
}

func unpremultiply(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := float32(img.Pix[si+3])
			if a > 1 {
				inv := 255 / a
				for c := 0; c < 3; c++ {
					out.Pix[di+c] = clamp8(float32(img.Pix[si+c]) * inv)
				}
			}
			out.Pix[di+3] = img.Pix[si+3]
		}
	}
	return out
}

func clamp8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

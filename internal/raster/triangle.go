package raster

import (
	"github.com/chewxy/math32"

	"vec3f/internal/mathutil"
)

// RGBA is an 8-bit sRGB color.
type RGBA struct{ R, G, B, A uint8 }

// RasterizeTriangle fills one screen-space triangle (x, y in pixels, z = depth,
// larger is nearer) with a flat shaded color, using the z-buffer.
//
// This is the hot path; no allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, p0, p1, p2 mathutil.Vec3f, shade float32, albedo RGBA, lc *LightConfig) {
	x0, y0, z0 := p0.X(), p0.Y(), p0.Z()
	x1, y1, z1 := p1.X(), p1.Y(), p1.Z()
	x2, y2, z2 := p2.X(), p2.Y(), p2.Z()

	// Bounding box
	minX := int(math32.Min(math32.Min(x0, x1), x2))
	maxX := int(math32.Max(math32.Max(x0, x1), x2)) + 1
	minY := int(math32.Min(math32.Min(y0, y1), y2))
	maxY := int(math32.Max(math32.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Color is constant across a flat-shaded face.
	cr, cg, cb := lc.Shade(shade, albedo.R, albedo.G, albedo.B)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float32(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float32(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = cr
			fb.Color[pxIdx+1] = cg
			fb.Color[pxIdx+2] = cb
			fb.Color[pxIdx+3] = albedo.A
		}
	}
}

package raster

import (
	"context"
	"image"

	"github.com/chewxy/math32"

	"vec3f/internal/kernel"
	"vec3f/internal/mathutil"
)

// View orients the mesh before projection. Angles in degrees.
type View struct {
	Yaw   float32 // around +Y
	Pitch float32 // around +X, applied after yaw
}

// Render rasterizes mesh into a (size*supersample)² NRGBA image with an
// orthographic camera looking down -Z. Per-vertex and per-face vector work
// runs on dev.
func Render(
	ctx context.Context,
	dev *kernel.Device,
	mesh Mesh,
	view View,
	lc LightConfig,
	albedo RGBA,
	size int,
	supersample int,
) (*image.NRGBA, error) {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	fb := NewFrameBuffer(renderSize, renderSize)
	if len(mesh.Verts) == 0 || len(mesh.Tris) == 0 {
		return fb.Image(), nil
	}

	// Orient vertices
	yaw, pitch := mathutil.Deg2Rad(view.Yaw), mathutil.Deg2Rad(view.Pitch)
	verts := make([]mathutil.Vec3f, len(mesh.Verts))
	err := dev.Launch(ctx, len(verts), func(i int) {
		verts[i] = mesh.Verts[i].
			RotateAround(mathutil.YAxis(), yaw).
			RotateAround(mathutil.XAxis(), pitch)
	})
	if err != nil {
		return nil, err
	}

	// Face normals: normalize((b-a)×(c-a))
	normals, err := faceNormals(ctx, dev, verts, mesh.Tris)
	if err != nil {
		return nil, err
	}
	shades := make([]float32, len(normals))
	if err := dev.Launch(ctx, len(normals), func(i int) {
		shades[i] = lc.ComputeShade(normals[i])
	}); err != nil {
		return nil, err
	}

	// Fit the bounding box into the frame
	allMin := mathutil.New(math32.Inf(1), math32.Inf(1), math32.Inf(1))
	allMax := allMin.Neg()
	for _, v := range verts {
		for k := 0; k < 3; k++ {
			allMin[k] = math32.Min(allMin[k], v[k])
			allMax[k] = math32.Max(allMax[k], v[k])
		}
	}
	center := allMin.Add(allMax).Mul(0.5)
	extent := allMax.Sub(allMin)
	span := math32.Max(extent.X(), extent.Y())
	if span < 0.001 {
		span = 0.001
	}

	margin := renderSize / 16
	scale := float32(renderSize-2*margin) / span
	half := float32(renderSize) / 2

	screen := make([]mathutil.Vec3f, len(verts))
	if err := dev.Launch(ctx, len(verts), func(i int) {
		d := verts[i].Sub(center)
		screen[i] = mathutil.New(half+d.X()*scale, half-d.Y()*scale, d.Z())
	}); err != nil {
		return nil, err
	}

	// Rasterize serially; the z-buffer is shared.
	for f, tri := range mesh.Tris {
		RasterizeTriangle(fb, screen[tri[0]], screen[tri[1]], screen[tri[2]], shades[f], albedo, &lc)
	}

	return fb.Image(), nil
}

func faceNormals(ctx context.Context, dev *kernel.Device, verts []mathutil.Vec3f, tris [][3]int) ([]mathutil.Vec3f, error) {
	n := len(tris)
	a := make([]mathutil.Vec3f, n)
	e1 := make([]mathutil.Vec3f, n)
	e2 := make([]mathutil.Vec3f, n)
	if err := dev.Launch(ctx, n, func(i int) {
		t := tris[i]
		a[i], e1[i], e2[i] = verts[t[0]], verts[t[1]], verts[t[2]]
	}); err != nil {
		return nil, err
	}

	if err := dev.Sub(ctx, e1, a, e1); err != nil {
		return nil, err
	}
	if err := dev.Sub(ctx, e2, a, e2); err != nil {
		return nil, err
	}
	normals := a
	if err := dev.Cross(ctx, e1, e2, normals); err != nil {
		return nil, err
	}
	if err := dev.Normalize(ctx, normals); err != nil {
		return nil, err
	}
	return normals, nil
}

package raster

import (
	"context"
	"errors"
	"testing"

	"vec3f/internal/kernel"
	"vec3f/internal/mathutil"
)

func outward(t *testing.T, name string, m Mesh) {
	t.Helper()
	for i, tri := range m.Tris {
		a, b, c := m.Verts[tri[0]], m.Verts[tri[1]], m.Verts[tri[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.SquareLength() == 0 {
			t.Fatalf("%s: triangle %d is degenerate", name, i)
		}
		if n.Dot(a.Add(b).Add(c)) <= 0 {
			t.Fatalf("%s: triangle %d winds inward: n=%v", name, i, n)
		}
	}
}

func TestShapesWindOutward(t *testing.T) {
	outward(t, "cube", Cube())
	outward(t, "octahedron", Octahedron())
	outward(t, "sphere", Sphere(8, 16))

	if got := len(Cube().Tris); got != 12 {
		t.Fatalf("cube tris=%d", got)
	}
	if got := len(Octahedron().Tris); got != 8 {
		t.Fatalf("octahedron tris=%d", got)
	}
}

func TestSphereOnUnitSphere(t *testing.T) {
	for i, v := range Sphere(6, 12).Verts {
		if l := v.Length(); l < 0.999 || l > 1.001 {
			t.Fatalf("vertex %d length=%v", i, l)
		}
	}
}

func TestShapeByName(t *testing.T) {
	for _, name := range []string{"sphere", "Cube", "octahedron", ""} {
		m, err := Shape(name, 4)
		if err != nil || len(m.Tris) == 0 {
			t.Fatalf("Shape(%q)=%d tris, %v", name, len(m.Tris), err)
		}
	}
	if _, err := Shape("teapot", 0); !errors.Is(err, ErrUnknownShape) {
		t.Fatalf("err=%v", err)
	}
}

func TestComputeShadeFacesLight(t *testing.T) {
	lc := DefaultLightConfig().WithLight(mathutil.ZAxis())
	lit := lc.ComputeShade(mathutil.ZAxis())
	edge := lc.ComputeShade(mathutil.XAxis())
	if lit <= edge {
		t.Fatalf("lit=%v edge=%v", lit, edge)
	}

	same := lc.WithLight(mathutil.Zero())
	if same.LightDir != lc.LightDir {
		t.Fatalf("zero light changed direction: %v", same.LightDir)
	}
}

func TestACESTonemap(t *testing.T) {
	if ACESTonemap(0) != 0 {
		t.Fatalf("aces(0)=%v", ACESTonemap(0))
	}
	if a, b := ACESTonemap(0.5), ACESTonemap(2); a >= b || b > 1.01 {
		t.Fatalf("aces not monotone/bounded: %v %v", a, b)
	}
}

func TestRasterizeTriangleDepth(t *testing.T) {
	fb := NewFrameBuffer(16, 16)
	lc := DefaultLightConfig()
	far := RGBA{255, 0, 0, 255}
	near := RGBA{0, 0, 255, 200}

	RasterizeTriangle(fb, mathutil.New(0, 0, 1), mathutil.New(16, 0, 1), mathutil.New(0, 16, 1), 1, near, &lc)
	RasterizeTriangle(fb, mathutil.New(0, 0, 0), mathutil.New(16, 0, 0), mathutil.New(0, 16, 0), 1, far, &lc)

	i := (2*16 + 2) * 4
	if fb.Color[i+3] != near.A || fb.Color[i] != 0 {
		t.Fatalf("pixel (2,2)=%v, far triangle overwrote near one", fb.Color[i:i+4])
	}
	j := (15*16 + 15) * 4
	if fb.Color[j+3] != 0 {
		t.Fatalf("pixel (15,15) outside triangle is covered: %v", fb.Color[j:j+4])
	}
}

func TestRenderSphere(t *testing.T) {
	mesh, err := Shape("sphere", 12)
	if err != nil {
		t.Fatal(err)
	}
	dev := &kernel.Device{Lanes: 4, BlockSize: 32}
	img, err := Render(context.Background(), dev, mesh, View{Yaw: 30, Pitch: 15}, DefaultLightConfig(), RGBA{200, 180, 160, 255}, 48, 2)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 96 || b.Dy() != 96 {
		t.Fatalf("bounds=%v", b)
	}
	if a := img.NRGBAAt(48, 48).A; a != 255 {
		t.Fatalf("center alpha=%d", a)
	}
	if a := img.NRGBAAt(1, 1).A; a != 0 {
		t.Fatalf("corner alpha=%d", a)
	}
}

func TestRenderEmptyMesh(t *testing.T) {
	img, err := Render(context.Background(), kernel.NewDevice(1), Mesh{}, View{}, DefaultLightConfig(), RGBA{}, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 {
		t.Fatalf("bounds=%v", img.Bounds())
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, kernel.NewDevice(2), Cube(), View{}, DefaultLightConfig(), RGBA{A: 255}, 16, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}

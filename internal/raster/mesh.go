package raster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"vec3f/internal/mathutil"
)

// ErrUnknownShape is returned by Shape for names it does not know.
var ErrUnknownShape = errors.New("raster: unknown shape")

// Mesh is an indexed triangle list. Triangles wind counter-clockwise seen
// from outside.
type Mesh struct {
	Verts []mathutil.Vec3f
	Tris  [][3]int
}

// Sphere returns a unit UV sphere with the given number of stacks and slices.
func Sphere(stacks, slices int) Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	var m Mesh
	for i := 0; i <= stacks; i++ {
		phi := math32.Pi * float32(i) / float32(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(slices)
			m.Verts = append(m.Verts, mathutil.New(
				math32.Sin(phi)*math32.Cos(theta),
				math32.Cos(phi),
				math32.Sin(phi)*math32.Sin(theta),
			))
		}
	}

	row := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*row + j
			b := a + row
			if i != 0 {
				m.Tris = append(m.Tris, [3]int{a, a + 1, b})
			}
			if i != stacks-1 {
				m.Tris = append(m.Tris, [3]int{a + 1, b + 1, b})
			}
		}
	}
	return m
}

// Cube returns the unit cube centred on the origin (side 2).
func Cube() Mesh {
	var m Mesh
	for axis := 0; axis < 3; axis++ {
		u := mathutil.Axis((axis + 1) % 3)
		v := mathutil.Axis((axis + 2) % 3)
		for _, sign := range []float32{1, -1} {
			n := mathutil.Axis(axis).Mul(sign)
			// u×v == n for sign +1; swap for the opposite face.
			du, dv := u, v
			if sign < 0 {
				du, dv = v, u
			}
			base := len(m.Verts)
			m.Verts = append(m.Verts,
				n.Sub(du).Sub(dv),
				n.Add(du).Sub(dv),
				n.Add(du).Add(dv),
				n.Sub(du).Add(dv),
			)
			m.Tris = append(m.Tris,
				[3]int{base, base + 1, base + 2},
				[3]int{base, base + 2, base + 3},
			)
		}
	}
	return m
}

// Octahedron returns the unit octahedron with vertices on the axes.
func Octahedron() Mesh {
	m := Mesh{
		Verts: []mathutil.Vec3f{
			mathutil.XAxis(), mathutil.XAxis().Neg(),
			mathutil.YAxis(), mathutil.YAxis().Neg(),
			mathutil.ZAxis(), mathutil.ZAxis().Neg(),
		},
	}
	for _, sx := range []int{0, 1} {
		for _, sy := range []int{2, 3} {
			for _, sz := range []int{4, 5} {
				tri := [3]int{sx, sy, sz}
				// Keep outward winding: (b-a)×(c-a) must point away from the origin.
				a, b, c := m.Verts[tri[0]], m.Verts[tri[1]], m.Verts[tri[2]]
				if b.Sub(a).Cross(c.Sub(a)).Dot(a.Add(b).Add(c)) < 0 {
					tri[1], tri[2] = tri[2], tri[1]
				}
				m.Tris = append(m.Tris, tri)
			}
		}
	}
	return m
}

// Shape builds a named mesh. subdiv controls sphere tessellation and is
// ignored by the other shapes.
func Shape(name string, subdiv int) (Mesh, error) {
	switch strings.ToLower(name) {
	case "sphere", "":
		if subdiv <= 0 {
			subdiv = 24
		}
		return Sphere(subdiv, subdiv*2), nil
	case "cube":
		return Cube(), nil
	case "octahedron":
		return Octahedron(), nil
	}
	return Mesh{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

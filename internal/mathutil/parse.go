package mathutil

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/math/f32"
)

// Parse reads a vector written as "x,y,z" or "(x, y, z)", the form String produces.
func Parse(s string) (Vec3f, error) {
	t := strings.TrimSpace(s)
	lp, rp := strings.HasPrefix(t, "("), strings.HasSuffix(t, ")")
	if lp != rp {
		return Vec3f{}, fmt.Errorf("mathutil: parse %q: unbalanced parentheses", s)
	}
	if lp {
		t = t[1 : len(t)-1]
	}

	parts := strings.Split(t, ",")
	if len(parts) != 3 {
		return Vec3f{}, fmt.Errorf("mathutil: parse %q: want 3 components, got %d", s, len(parts))
	}

	var v Vec3f
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return Vec3f{}, fmt.Errorf("mathutil: parse %q: component %d: %w", s, i, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// F32 converts v to the x/image float32 layout.
func (v Vec3f) F32() f32.Vec3 {
	return f32.Vec3(v)
}

// FromF32 converts an x/image float32 vector.
func FromF32(v f32.Vec3) Vec3f {
	return Vec3f(v)
}

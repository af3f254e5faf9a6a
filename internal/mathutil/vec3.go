package mathutil

import (
	"fmt"

	"github.com/chewxy/math32"
)

// normalizeEpsilon is the squared length at or below which Normalize is a no-op.
const normalizeEpsilon = 1e-6

// Vec3f is a 3-component float32 vector (value type, stack-allocated).
// Index 0 is x, 1 is y, 2 is z. Assignment copies all three components.
type Vec3f [3]float32

// New builds a vector from three scalars.
func New(x, y, z float32) Vec3f {
	return Vec3f{x, y, z}
}

// Zero returns the zero vector.
func Zero() Vec3f {
	return Vec3f{}
}

// FromSlice copies the first three elements of s. The caller guarantees len(s) >= 3.
func FromSlice(s []float32) Vec3f {
	return Vec3f{s[0], s[1], s[2]}
}

// Named accessors alias the indexed storage: X is v[0], Y is v[1], Z is v[2].
func (v Vec3f) X() float32 { return v[0] }
func (v Vec3f) Y() float32 { return v[1] }
func (v Vec3f) Z() float32 { return v[2] }

func (v *Vec3f) SetX(f float32) { v[0] = f }
func (v *Vec3f) SetY(f float32) { v[1] = f }
func (v *Vec3f) SetZ(f float32) { v[2] = f }

// At returns the i-th component. No range check beyond Go's own; i must be in [0,2].
func (v Vec3f) At(i int) float32 {
	return v[i]
}

// Set writes the i-th component. i must be in [0,2].
func (v *Vec3f) Set(i int, f float32) {
	v[i] = f
}

// Lookup is the checked form of At.
func (v Vec3f) Lookup(i int) (float32, bool) {
	if i < 0 || i > 2 {
		return 0, false
	}
	return v[i], true
}

// AddAssign adds o to v in place.
func (v *Vec3f) AddAssign(o Vec3f) *Vec3f {
	v[0] += o[0]
	v[1] += o[1]
	v[2] += o[2]
	return v
}

// SubAssign subtracts o from v in place.
func (v *Vec3f) SubAssign(o Vec3f) *Vec3f {
	v[0] -= o[0]
	v[1] -= o[1]
	v[2] -= o[2]
	return v
}

// MulAssign scales v by t in place.
func (v *Vec3f) MulAssign(t float32) *Vec3f {
	v[0] *= t
	v[1] *= t
	v[2] *= t
	return v
}

// DivAssign divides v by t in place. t == 0 yields Inf/NaN components.
func (v *Vec3f) DivAssign(t float32) *Vec3f {
	v[0] /= t
	v[1] /= t
	v[2] /= t
	return v
}

// Value ops return a new vector and leave their operands untouched.

func (v Vec3f) Neg() Vec3f {
	return Vec3f{-v[0], -v[1], -v[2]}
}

func (v Vec3f) Add(o Vec3f) Vec3f {
	return Vec3f{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3f) Sub(o Vec3f) Vec3f {
	return Vec3f{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3f) Mul(t float32) Vec3f {
	return Vec3f{v[0] * t, v[1] * t, v[2] * t}
}

func (v Vec3f) Div(t float32) Vec3f {
	return Vec3f{v[0] / t, v[1] / t, v[2] / t}
}

// Scale returns t × v, the scalar-first form of v.Mul(t).
func Scale(t float32, v Vec3f) Vec3f {
	return Vec3f{v[0] * t, v[1] * t, v[2] * t}
}

func (v Vec3f) Dot(o Vec3f) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3f) Cross(o Vec3f) Vec3f {
	return Vec3f{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3f) SquareLength() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3f) Length() float32 {
	return math32.Sqrt(v.SquareLength())
}

// Normalize scales v to unit length in place.
// Vectors with squared length <= 1e-6 are left unchanged.
func (v *Vec3f) Normalize() *Vec3f {
	sum := v.SquareLength()
	if sum > normalizeEpsilon {
		base := 1 / math32.Sqrt(sum)
		v[0] *= base
		v[1] *= base
		v[2] *= base
	}
	return v
}

// Normalized returns a normalized copy of v.
func (v Vec3f) Normalized() Vec3f {
	v.Normalize()
	return v
}

// Lerp returns v + (o-v)*t.
func (v Vec3f) Lerp(o Vec3f, t float32) Vec3f {
	return Vec3f{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
		v[2] + (o[2]-v[2])*t,
	}
}

// String renders v as "(x, y, z)".
func (v Vec3f) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

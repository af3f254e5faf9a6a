package kernel

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"vec3f/internal/mathutil"
)

// Stride is the std430 stride of a vec3 in float32 units (x, y, z, pad).
const Stride = 4

// PackVec4 widens each vector to x/image's f32.Vec4 with w = 0.
func PackVec4(vs []mathutil.Vec3f) []f32.Vec4 {
	out := make([]f32.Vec4, len(vs))
	for i, v := range vs {
		xyz := v.F32()
		out[i] = f32.Vec4{xyz[0], xyz[1], xyz[2], 0}
	}
	return out
}

// Pack lays vs out as a std430 vec3 array ready for a shader storage buffer.
func Pack(vs []mathutil.Vec3f) []float32 {
	buf := make([]float32, 0, len(vs)*Stride)
	for _, v4 := range PackVec4(vs) {
		buf = append(buf, v4[:]...)
	}
	return buf
}

// Unpack reads a std430 vec3 array. Padding lanes are ignored.
func Unpack(buf []float32) ([]mathutil.Vec3f, error) {
	if len(buf)%Stride != 0 {
		return nil, fmt.Errorf("kernel: unpack: length %d is not a multiple of %d", len(buf), Stride)
	}
	vs := make([]mathutil.Vec3f, len(buf)/Stride)
	for i := range vs {
		o := i * Stride
		vs[i] = mathutil.FromF32(f32.Vec3{buf[o], buf[o+1], buf[o+2]})
	}
	return vs, nil
}

package kernel

import (
	"context"
	"errors"
	"fmt"

	"vec3f/internal/mathutil"
)

// ErrLengthMismatch is returned when kernel operand slices differ in length.
var ErrLengthMismatch = errors.New("kernel: operand length mismatch")

func checkLen(op string, n int, others ...int) error {
	for _, m := range others {
		if m != n {
			return fmt.Errorf("%s: %d vs %d: %w", op, n, m, ErrLengthMismatch)
		}
	}
	return nil
}

// Normalize normalizes every vector of vs in place.
func (d *Device) Normalize(ctx context.Context, vs []mathutil.Vec3f) error {
	return d.Launch(ctx, len(vs), func(i int) {
		vs[i].Normalize()
	})
}

// Scale multiplies every vector of vs by t in place.
func (d *Device) Scale(ctx context.Context, t float32, vs []mathutil.Vec3f) error {
	return d.Launch(ctx, len(vs), func(i int) {
		vs[i].MulAssign(t)
	})
}

// Add writes a[i]+b[i] into out[i]. out may alias a or b.
func (d *Device) Add(ctx context.Context, a, b, out []mathutil.Vec3f) error {
	if err := checkLen("add", len(a), len(b), len(out)); err != nil {
		return err
	}
	return d.Launch(ctx, len(a), func(i int) {
		out[i] = a[i].Add(b[i])
	})
}

// Sub writes a[i]-b[i] into out[i]. out may alias a or b.
func (d *Device) Sub(ctx context.Context, a, b, out []mathutil.Vec3f) error {
	if err := checkLen("sub", len(a), len(b), len(out)); err != nil {
		return err
	}
	return d.Launch(ctx, len(a), func(i int) {
		out[i] = a[i].Sub(b[i])
	})
}

// Dot writes a[i]·b[i] into out[i].
func (d *Device) Dot(ctx context.Context, a, b []mathutil.Vec3f, out []float32) error {
	if err := checkLen("dot", len(a), len(b), len(out)); err != nil {
		return err
	}
	return d.Launch(ctx, len(a), func(i int) {
		out[i] = a[i].Dot(b[i])
	})
}

// Cross writes a[i]×b[i] into out[i]. out may alias a or b.
func (d *Device) Cross(ctx context.Context, a, b, out []mathutil.Vec3f) error {
	if err := checkLen("cross", len(a), len(b), len(out)); err != nil {
		return err
	}
	return d.Launch(ctx, len(a), func(i int) {
		out[i] = a[i].Cross(b[i])
	})
}

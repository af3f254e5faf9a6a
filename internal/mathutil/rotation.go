package mathutil

import "github.com/chewxy/math32"

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math32.Pi / 180
}

// RotateAround rotates v around axis by angle radians (Rodrigues' formula).
// axis need not be unit length; a near-zero axis leaves v unchanged.
func (v Vec3f) RotateAround(axis Vec3f, angle float32) Vec3f {
	if axis.SquareLength() <= normalizeEpsilon {
		return v
	}
	k := axis.Normalized()
	c, s := math32.Cos(angle), math32.Sin(angle)
	return v.Mul(c).
		Add(k.Cross(v).Mul(s)).
		Add(k.Mul(k.Dot(v) * (1 - c)))
}

// FromSpherical returns the unit direction for an azimuth around +Y
// (0° = +Z, 90° = +X) and an elevation above the XZ plane, both in degrees.
func FromSpherical(azimuthDeg, elevationDeg float32) Vec3f {
	az, el := Deg2Rad(azimuthDeg), Deg2Rad(elevationDeg)
	ce := math32.Cos(el)
	return Vec3f{
		ce * math32.Sin(az),
		math32.Sin(el),
		ce * math32.Cos(az),
	}
}

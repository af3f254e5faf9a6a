package mathutil

func XAxis() Vec3f { return Vec3f{1, 0, 0} }
func YAxis() Vec3f { return Vec3f{0, 1, 0} }
func ZAxis() Vec3f { return Vec3f{0, 0, 1} }

// Axis returns the unit vector for axis n (0=X, 1=Y, 2=Z).
// Any other n yields the zero vector.
func Axis(n int) Vec3f {
	switch n {
	case 0:
		return XAxis()
	case 1:
		return YAxis()
	case 2:
		return ZAxis()
	}
	return Vec3f{}
}

package motion

import "github.com/go-gl/mathgl/mgl32"

// LookRotation returns the rotation that turns the model's +Z axis from position toward
// target with +Y up. A zero-length direction faces +Z; a direction parallel to up is
// nudged so the basis stays orthonormal.
func LookRotation(position, target mgl32.Vec3) mgl32.Quat {
	up := mgl32.Vec3{0, 1, 0}
	z := target.Sub(position)
	if z.Len() == 0 {
		z = mgl32.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() == 0 {
		z[2] += 0.0001
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	m := mgl32.Mat3FromCols(x, y, z)
	return mgl32.Mat4ToQuat(m.Mat4()).Normalize()
}

// Turn moves current a fraction t of the way toward desired along the shorter arc.
func Turn(current, desired mgl32.Quat, t float32) mgl32.Quat {
	if current.Dot(desired) < 0 {
		desired = desired.Scale(-1)
	}
	return mgl32.QuatSlerp(current, desired, t).Normalize()
}

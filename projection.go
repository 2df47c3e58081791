package glm

import (
	"github.com/oliverbestmann/glm/scalar"
)

// Perspective returns the right-handed perspective projection with a depth
// range of -1 to 1. fovY is the full vertical field of view.
func Perspective[T scalar.Float](fovY Rad[T], aspect, near, far T) Mat4[T] {
	f := 1 / fovY.Scale(0.5).Tan()

	return Mat4Of([4][4]T{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), -1},
		{0, 0, (2 * far * near) / (near - far), 0},
	})
}

// Ortho returns the right-handed orthographic projection with a depth range
// of -1 to 1.
func Ortho[T scalar.Float](left, right, bottom, top, near, far T) Mat4[T] {
	return Mat4Of([4][4]T{
		{2 / (right - left), 0, 0, 0},
		{0, 2 / (top - bottom), 0, 0},
		{0, 0, -2 / (far - near), 0},
		{
			-(right + left) / (right - left),
			-(top + bottom) / (top - bottom),
			-(far + near) / (far - near),
			1,
		},
	})
}

// LookAt returns the right-handed view matrix placing the camera at eye,
// looking at center. The forward direction maps to -z.
func LookAt[T scalar.Float](eye, center, up Vec3[T]) Mat4[T] {
	f := (center.Sub(eye)).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4Of([4][4]T{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-eye.Dot(s), -eye.Dot(u), eye.Dot(f), 1},
	})
}

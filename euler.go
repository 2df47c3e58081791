package glm

import (
	"github.com/oliverbestmann/glm/scalar"
)

// Euler is a set of rotations about the fixed x, y and z axes. Conversions
// compose the three rotations as x·y·z, so the z rotation applies to a
// vector first. All conversions out of and into Euler agree on that order.
//
// Composing Euler values does not work like rotation composition, convert
// to Quaternion or Basis3 before combining rotations.
type Euler[T scalar.Float] struct {
	X, Y, Z Rad[T]
}

// Quat converts to the quaternion applying the same rotation.
func (lhs Euler[T]) Quat() Quaternion[T] {
	sx, cx := lhs.X.Scale(0.5).SinCos()
	sy, cy := lhs.Y.Scale(0.5).SinCos()
	sz, cz := lhs.Z.Scale(0.5).SinCos()

	return Quaternion[T]{
		S: -sx*sy*sz + cx*cy*cz,
		V: Vec3[T]{
			sx*cy*cz + sy*sz*cx,
			-sx*sz*cy + sy*cx*cz,
			sx*sy*cz + sz*cx*cy,
		},
	}
}

// Mat3 converts to the rotation matrix applying the same rotation.
func (lhs Euler[T]) Mat3() Mat3[T] {
	sx, cx := lhs.X.SinCos()
	sy, cy := lhs.Y.SinCos()
	sz, cz := lhs.Z.SinCos()

	return Mat3[T]{
		cy * cz, cx*sz + sx*sy*cz, sx*sz - cx*sy*cz,
		-cy * sz, cx*cz - sx*sy*sz, sx*cz + cx*sy*sz,
		sy, -sx * cy, cx * cy,
	}
}

func (lhs Euler[T]) Mat4() Mat4[T] {
	return lhs.Mat3().Mat4()
}

package glm

import (
	"github.com/oliverbestmann/glm/scalar"
)

// Decomposed2 is an affine transform split into uniform scale, rotation and
// displacement. Applying it to a point scales first, rotates second and
// translates last. The split form composes and inverts without touching a
// matrix and never accumulates shear.
//
// R is the rotation representation, usually Basis2.
type Decomposed2[T scalar.Float, R Rotation2[T, R]] struct {
	Scale T
	Rot   R
	Disp  Vec2[T]
}

// IdentityDecomposed2 returns the transform mapping every point to itself.
func IdentityDecomposed2[T scalar.Float, R Rotation2[T, R]]() Decomposed2[T, R] {
	var rot R
	return Decomposed2[T, R]{Scale: 1, Rot: rot.Identity()}
}

// Concat composes two transforms, rhs applies first. Like rotations and
// matrices, composition reads right to left.
func (lhs Decomposed2[T, R]) Concat(rhs Decomposed2[T, R]) Decomposed2[T, R] {
	return Decomposed2[T, R]{
		Scale: lhs.Scale * rhs.Scale,
		Rot:   lhs.Rot.Mul(rhs.Rot),
		Disp:  lhs.TransformPoint(rhs.Disp),
	}
}

// Invert returns the transform undoing lhs. A transform with scale zero
// collapses space and has no inverse, the identity transform is returned in
// that case.
func (lhs Decomposed2[T, R]) Invert() Decomposed2[T, R] {
	if lhs.Scale == 0 {
		return Decomposed2[T, R]{Scale: 1, Rot: lhs.Rot.Identity()}
	}

	s := 1 / lhs.Scale
	rot := lhs.Rot.Invert()
	return Decomposed2[T, R]{
		Scale: s,
		Rot:   rot,
		Disp:  rot.Rotate(lhs.Disp.Scale(s)).Neg(),
	}
}

// TransformPoint applies the full transform to a point.
func (lhs Decomposed2[T, R]) TransformPoint(p Vec2[T]) Vec2[T] {
	return lhs.Rot.Rotate(p.Scale(lhs.Scale)).Add(lhs.Disp)
}

// TransformVec applies scale and rotation to a direction, displacement does
// not apply.
func (lhs Decomposed2[T, R]) TransformVec(v Vec2[T]) Vec2[T] {
	return lhs.Rot.Rotate(v.Scale(lhs.Scale))
}

// Mat3 expands to the equivalent homogeneous matrix.
func (lhs Decomposed2[T, R]) Mat3() Mat3[T] {
	m := lhs.Rot.Mat2().MulScalar(lhs.Scale)
	return Mat3[T]{
		m[0], m[1], 0,
		m[2], m[3], 0,
		lhs.Disp[0], lhs.Disp[1], 1,
	}
}

// Decomposed3 is an affine transform split into uniform scale, rotation and
// displacement, see Decomposed2.
//
// R is the rotation representation, usually Quaternion or Basis3.
type Decomposed3[T scalar.Float, R Rotation3[T, R]] struct {
	Scale T
	Rot   R
	Disp  Vec3[T]
}

// IdentityDecomposed3 returns the transform mapping every point to itself.
func IdentityDecomposed3[T scalar.Float, R Rotation3[T, R]]() Decomposed3[T, R] {
	var rot R
	return Decomposed3[T, R]{Scale: 1, Rot: rot.Identity()}
}

// Concat composes two transforms, rhs applies first. Like rotations and
// matrices, composition reads right to left.
func (lhs Decomposed3[T, R]) Concat(rhs Decomposed3[T, R]) Decomposed3[T, R] {
	return Decomposed3[T, R]{
		Scale: lhs.Scale * rhs.Scale,
		Rot:   lhs.Rot.Mul(rhs.Rot),
		Disp:  lhs.TransformPoint(rhs.Disp),
	}
}

// Invert returns the transform undoing lhs. A transform with scale zero
// collapses space and has no inverse, the identity transform is returned in
// that case.
func (lhs Decomposed3[T, R]) Invert() Decomposed3[T, R] {
	if lhs.Scale == 0 {
		return Decomposed3[T, R]{Scale: 1, Rot: lhs.Rot.Identity()}
	}

	s := 1 / lhs.Scale
	rot := lhs.Rot.Invert()
	return Decomposed3[T, R]{
		Scale: s,
		Rot:   rot,
		Disp:  rot.Rotate(lhs.Disp.Scale(s)).Neg(),
	}
}

// TransformPoint applies the full transform to a point.
func (lhs Decomposed3[T, R]) TransformPoint(p Vec3[T]) Vec3[T] {
	return lhs.Rot.Rotate(p.Scale(lhs.Scale)).Add(lhs.Disp)
}

// TransformVec applies scale and rotation to a direction, displacement does
// not apply.
func (lhs Decomposed3[T, R]) TransformVec(v Vec3[T]) Vec3[T] {
	return lhs.Rot.Rotate(v.Scale(lhs.Scale))
}

// Mat3 expands scale and rotation to a matrix, displacement is dropped.
func (lhs Decomposed3[T, R]) Mat3() Mat3[T] {
	return lhs.Rot.Mat3().MulScalar(lhs.Scale)
}

// Mat4 expands to the equivalent homogeneous matrix.
func (lhs Decomposed3[T, R]) Mat4() Mat4[T] {
	m := lhs.Rot.Mat3().MulScalar(lhs.Scale)
	return Mat4[T]{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		lhs.Disp[0], lhs.Disp[1], lhs.Disp[2], 1,
	}
}

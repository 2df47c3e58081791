package glm

import (
	"errors"

	"github.com/oliverbestmann/glm/scalar"
)

var (
	// ErrZeroAxis reports a rotation axis of zero length.
	ErrZeroAxis = errors.New("glm: rotation axis has zero length")

	// ErrDegenerateLook reports look inputs that do not pin down a
	// rotation, a zero length direction or an up vector colinear with it.
	ErrDegenerateLook = errors.New("glm: look direction and up vector do not span a plane")
)

// Rotation2 is the capability shared by 2d rotation representations. The
// type parameter R is the implementing type itself, keeping compositions
// fully typed without boxing.
type Rotation2[T scalar.Float, R any] interface {
	// Rotate applies the rotation to a vector.
	Rotate(Vec2[T]) Vec2[T]
	// Invert returns the opposite rotation.
	Invert() R
	// Mul composes two rotations, the receiver applies second.
	Mul(R) R
	// Identity returns the identity rotation.
	Identity() R
	// Mat2 converts to the equivalent rotation matrix.
	Mat2() Mat2[T]
}

// Rotation3 is the capability shared by 3d rotation representations, see
// Rotation2.
type Rotation3[T scalar.Float, R any] interface {
	Rotate(Vec3[T]) Vec3[T]
	Invert() R
	Mul(R) R
	Identity() R
	Mat3() Mat3[T]
}

var (
	_ Rotation2[float32, Basis2[float32]]     = Basis2[float32]{}
	_ Rotation3[float64, Basis3[float64]]     = Basis3[float64]{}
	_ Rotation3[float32, Quaternion[float32]] = Quaternion[float32]{}
)

// Basis2 is a 2d rotation stored as an orthonormal matrix. Construct
// values through the Basis2 functions, they guarantee orthonormality. The
// zero value is the zero matrix, not a rotation.
type Basis2[T scalar.Float] struct {
	mat Mat2[T]
}

func IdentityBasis2[T scalar.Float]() Basis2[T] {
	return Basis2[T]{mat: IdentityMat2[T]()}
}

func Basis2FromAngle[T scalar.Float](angle Rad[T]) Basis2[T] {
	return Basis2[T]{mat: RotationMat2(angle)}
}

// Basis2FromMat2 adopts a rotation matrix, re-orthonormalizing it to repair
// drift from accumulated multiplications.
func Basis2FromMat2[T scalar.Float](m Mat2[T]) Basis2[T] {
	return Basis2[T]{mat: m.Orthonormalize()}
}

func (lhs Basis2[T]) Rotate(rhs Vec2[T]) Vec2[T] {
	return lhs.mat.Transform(rhs)
}

// Invert returns the opposite rotation. Orthonormality makes the transpose
// the inverse.
func (lhs Basis2[T]) Invert() Basis2[T] {
	return Basis2[T]{mat: lhs.mat.Transpose()}
}

func (lhs Basis2[T]) Mul(rhs Basis2[T]) Basis2[T] {
	return Basis2[T]{mat: lhs.mat.Mul(rhs.mat)}
}

// Identity returns the identity rotation.
func (Basis2[T]) Identity() Basis2[T] {
	return IdentityBasis2[T]()
}

// Mat2 returns the rotation matrix.
func (lhs Basis2[T]) Mat2() Mat2[T] {
	return lhs.mat
}

// Angle returns the rotation angle measured counter-clockwise.
func (lhs Basis2[T]) Angle() Rad[T] {
	return Atan2(lhs.mat[1], lhs.mat[0])
}

// ApproxEqual compares the underlying matrices element-wise within eps.
func (lhs Basis2[T]) ApproxEqual(rhs Basis2[T], eps T) bool {
	return lhs.mat.ApproxEqual(rhs.mat, eps)
}

// Basis3 is a 3d rotation stored as an orthonormal matrix. Construct
// values through the Basis3 functions, they guarantee orthonormality. The
// zero value is the zero matrix, not a rotation.
//
// Compared to Quaternion a Basis3 rotates vectors cheaper but composes
// more expensively and drifts faster, Basis3FromMat3 repairs drift.
type Basis3[T scalar.Float] struct {
	mat Mat3[T]
}

func IdentityBasis3[T scalar.Float]() Basis3[T] {
	return Basis3[T]{mat: IdentityMat3[T]()}
}

// Basis3FromAxisAngle returns the rotation by angle about the axis. The
// axis is normalized internally, a zero length axis yields ErrZeroAxis.
func Basis3FromAxisAngle[T scalar.Float](axis Vec3[T], angle Rad[T]) (Basis3[T], error) {
	m, err := AxisRotationMat3(axis, angle)
	if err != nil {
		return IdentityBasis3[T](), err
	}
	return Basis3[T]{mat: m}, nil
}

func Basis3FromEuler[T scalar.Float](e Euler[T]) Basis3[T] {
	return Basis3[T]{mat: e.Mat3()}
}

// Basis3FromQuaternion converts a unit quaternion.
func Basis3FromQuaternion[T scalar.Float](q Quaternion[T]) Basis3[T] {
	return Basis3[T]{mat: q.Mat3()}
}

// Basis3FromMat3 adopts a rotation matrix, re-orthonormalizing it to repair
// drift from accumulated multiplications.
func Basis3FromMat3[T scalar.Float](m Mat3[T]) Basis3[T] {
	return Basis3[T]{mat: m.Orthonormalize()}
}

// Basis3LookTo returns the rotation carrying the direction dir to the +z
// axis, with up resolving the roll about dir. Fails with ErrDegenerateLook
// when dir has zero length or up is colinear with dir.
func Basis3LookTo[T scalar.Float](dir, up Vec3[T]) (Basis3[T], error) {
	m, err := LookToMat3(dir, up)
	if err != nil {
		return IdentityBasis3[T](), err
	}
	return Basis3[T]{mat: m}, nil
}

func (lhs Basis3[T]) Rotate(rhs Vec3[T]) Vec3[T] {
	return lhs.mat.Transform(rhs)
}

// Invert returns the opposite rotation. Orthonormality makes the transpose
// the inverse.
func (lhs Basis3[T]) Invert() Basis3[T] {
	return Basis3[T]{mat: lhs.mat.Transpose()}
}

func (lhs Basis3[T]) Mul(rhs Basis3[T]) Basis3[T] {
	return Basis3[T]{mat: lhs.mat.Mul(rhs.mat)}
}

// Identity returns the identity rotation.
func (Basis3[T]) Identity() Basis3[T] {
	return IdentityBasis3[T]()
}

// Mat3 returns the rotation matrix.
func (lhs Basis3[T]) Mat3() Mat3[T] {
	return lhs.mat
}

// Quat converts to the quaternion applying the same rotation.
func (lhs Basis3[T]) Quat() Quaternion[T] {
	return QuatFromMat3(lhs.mat)
}

// ApproxEqual compares the underlying matrices element-wise within eps.
func (lhs Basis3[T]) ApproxEqual(rhs Basis3[T], eps T) bool {
	return lhs.mat.ApproxEqual(rhs.mat, eps)
}

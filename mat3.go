package glm

import (
	"unsafe"

	"github.com/oliverbestmann/glm/approx"
	"github.com/oliverbestmann/glm/scalar"
)

// Mat3 is a 3x3 matrix with column-major storage: element (row, col) sits
// at index col*3+row. It doubles as the homogeneous transform for 2d with
// the translation in the last column, see TranslationMat3 and Transform2.
type Mat3[T scalar.Float] [9]T

func IdentityMat3[T scalar.Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3Of builds a matrix from an array of columns.
func Mat3Of[T scalar.Float](cols [3][3]T) Mat3[T] {
	return Mat3[T]{
		cols[0][0], cols[0][1], cols[0][2],
		cols[1][0], cols[1][1], cols[1][2],
		cols[2][0], cols[2][1], cols[2][2],
	}
}

func Mat3FromCols[T scalar.Float](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		c0[0], c0[1], c0[2],
		c1[0], c1[1], c1[2],
		c2[0], c2[1], c2[2],
	}
}

func TranslationMat3[T scalar.Float](x, y T) Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

// RotationMat3 returns the rotation in the xy plane, this is the rotation
// about the z axis.
func RotationMat3[T scalar.Float](angle Rad[T]) Mat3[T] {
	s, c := angle.SinCos()

	return Mat3[T]{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

func RotationXMat3[T scalar.Float](angle Rad[T]) Mat3[T] {
	s, c := angle.SinCos()

	return Mat3[T]{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

func RotationYMat3[T scalar.Float](angle Rad[T]) Mat3[T] {
	s, c := angle.SinCos()

	return Mat3[T]{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// AxisRotationMat3 returns the rotation by angle about an arbitrary axis.
// The axis is normalized internally, a zero length axis yields ErrZeroAxis.
func AxisRotationMat3[T scalar.Float](axis Vec3[T], angle Rad[T]) (Mat3[T], error) {
	if axis.LengthSqr() == 0 {
		return IdentityMat3[T](), ErrZeroAxis
	}

	x, y, z := axis.Normalize().XYZ()
	s, c := angle.SinCos()
	c1 := 1 - c

	return Mat3[T]{
		c1*x*x + c, c1*x*y + s*z, c1*x*z - s*y,
		c1*x*y - s*z, c1*y*y + c, c1*y*z + s*x,
		c1*x*z + s*y, c1*y*z - s*x, c1*z*z + c,
	}, nil
}

// LookToMat3 returns the rotation carrying the direction dir to the +z
// axis, with up resolving the roll about dir. Fails with ErrDegenerateLook
// when dir has zero length or up is colinear with dir.
func LookToMat3[T scalar.Float](dir, up Vec3[T]) (Mat3[T], error) {
	if dir.LengthSqr() == 0 {
		return IdentityMat3[T](), ErrDegenerateLook
	}

	f := dir.Normalize()
	s := up.Cross(f)
	if s.LengthSqr() == 0 {
		return IdentityMat3[T](), ErrDegenerateLook
	}
	s = s.Normalize()
	u := f.Cross(s)

	// rows s, u and f, so f maps to +z
	return Mat3FromCols(s, u, f).Transpose(), nil
}

// ScaleMat3 returns the homogeneous 2d scale matrix.
func ScaleMat3[T scalar.Float](x, y T) Mat3[T] {
	return Mat3[T]{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// DiagonalMat3 returns the matrix scaling each axis of 3d space.
func DiagonalMat3[T scalar.Float](x, y, z T) Mat3[T] {
	return Mat3[T]{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	}
}

func (lhs Mat3[T]) Rotate(angle Rad[T]) Mat3[T] {
	return lhs.Mul(RotationMat3[T](angle))
}

func (lhs Mat3[T]) Scale(x, y T) Mat3[T] {
	return lhs.Mul(ScaleMat3(x, y))
}

func (lhs Mat3[T]) Translate(x, y T) Mat3[T] {
	return lhs.Mul(TranslationMat3(x, y))
}

func (lhs Mat3[T]) Mul(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{
		lhs[0]*rhs[0] + lhs[3]*rhs[1] + lhs[6]*rhs[2],
		lhs[1]*rhs[0] + lhs[4]*rhs[1] + lhs[7]*rhs[2],
		lhs[2]*rhs[0] + lhs[5]*rhs[1] + lhs[8]*rhs[2],
		lhs[0]*rhs[3] + lhs[3]*rhs[4] + lhs[6]*rhs[5],
		lhs[1]*rhs[3] + lhs[4]*rhs[4] + lhs[7]*rhs[5],
		lhs[2]*rhs[3] + lhs[5]*rhs[4] + lhs[8]*rhs[5],
		lhs[0]*rhs[6] + lhs[3]*rhs[7] + lhs[6]*rhs[8],
		lhs[1]*rhs[6] + lhs[4]*rhs[7] + lhs[7]*rhs[8],
		lhs[2]*rhs[6] + lhs[5]*rhs[7] + lhs[8]*rhs[8],
	}
}

func (lhs Mat3[T]) Transform(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0]*rhs[0] + lhs[3]*rhs[1] + lhs[6]*rhs[2],
		lhs[1]*rhs[0] + lhs[4]*rhs[1] + lhs[7]*rhs[2],
		lhs[2]*rhs[0] + lhs[5]*rhs[1] + lhs[8]*rhs[2],
	}
}

// Transform2 transforms a 2d point through the homogeneous matrix, w is
// taken as one and the projective row is ignored.
func (lhs Mat3[T]) Transform2(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0]*rhs[0] + lhs[3]*rhs[1] + lhs[6],
		lhs[1]*rhs[0] + lhs[4]*rhs[1] + lhs[7],
	}
}

func (lhs Mat3[T]) Add(rhs Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for i := range lhs {
		out[i] = lhs[i] + rhs[i]
	}
	return out
}

func (lhs Mat3[T]) MulScalar(s T) Mat3[T] {
	var out Mat3[T]
	for i := range lhs {
		out[i] = lhs[i] * s
	}
	return out
}

func (lhs Mat3[T]) IsZero() bool {
	return lhs == Mat3[T]{}
}

// IsFinite reports whether no element is NaN or an infinity.
func (lhs Mat3[T]) IsFinite() bool {
	for _, v := range lhs {
		if !scalar.IsFinite(v) {
			return false
		}
	}
	return true
}

// ApproxEqual compares element-wise within eps.
func (lhs Mat3[T]) ApproxEqual(rhs Mat3[T], eps T) bool {
	return approx.Floats(lhs[:], rhs[:], eps)
}

func (lhs Mat3[T]) Transpose() Mat3[T] {
	// original
	// 0  1  2
	// 3  4  5
	// 6  7  8

	// transposed
	// 0  3  6
	// 1  4  7
	// 2  5  8

	return Mat3[T]{
		lhs[0], lhs[3], lhs[6],
		lhs[1], lhs[4], lhs[7],
		lhs[2], lhs[5], lhs[8],
	}
}

func (lhs Mat3[T]) Det() T {
	return lhs[0]*(lhs[4]*lhs[8]-lhs[7]*lhs[5]) -
		lhs[3]*(lhs[1]*lhs[8]-lhs[7]*lhs[2]) +
		lhs[6]*(lhs[1]*lhs[5]-lhs[4]*lhs[2])
}

// Invert returns the inverse computed from the adjugate. A matrix with
// determinant zero has no inverse, the identity is returned in that case.
// Callers that need to detect the singular case check Det beforehand.
func (lhs Mat3[T]) Invert() Mat3[T] {
	det := lhs.Det()
	if det == 0 {
		return IdentityMat3[T]()
	}

	return Mat3[T]{
		lhs[4]*lhs[8] - lhs[7]*lhs[5],
		lhs[7]*lhs[2] - lhs[1]*lhs[8],
		lhs[1]*lhs[5] - lhs[4]*lhs[2],
		lhs[6]*lhs[5] - lhs[3]*lhs[8],
		lhs[0]*lhs[8] - lhs[6]*lhs[2],
		lhs[3]*lhs[2] - lhs[0]*lhs[5],
		lhs[3]*lhs[7] - lhs[6]*lhs[4],
		lhs[6]*lhs[1] - lhs[0]*lhs[7],
		lhs[0]*lhs[4] - lhs[3]*lhs[1],
	}.MulScalar(1 / det)
}

func (lhs Mat3[T]) Trace() T {
	return lhs[0] + lhs[4] + lhs[8]
}

// Orthonormalize re-orthogonalizes the columns with Gram-Schmidt. Use it to
// repair a rotation matrix that drifted after many multiplications.
func (lhs Mat3[T]) Orthonormalize() Mat3[T] {
	c0 := lhs.Col(0).Normalize()

	c1 := lhs.Col(1)
	c1 = c1.Sub(c0.Scale(c0.Dot(c1))).Normalize()

	c2 := lhs.Col(2)
	c2 = c2.Sub(c0.Scale(c0.Dot(c2)))
	c2 = c2.Sub(c1.Scale(c1.Dot(c2))).Normalize()

	return Mat3FromCols(c0, c1, c2)
}

func (lhs Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{
		lhs[i+0],
		lhs[i+3],
		lhs[i+6],
	}
}

func (lhs Mat3[T]) Col(i int) Vec3[T] {
	return Vec3[T]{
		lhs[i*3+0],
		lhs[i*3+1],
		lhs[i*3+2],
	}
}

func (lhs Mat3[T]) Columns() [3]Vec3[T] {
	return *(*[3]Vec3[T])(unsafe.Pointer(&lhs))
}

// Mat2 truncates to the upper left 2x2 matrix.
func (lhs Mat3[T]) Mat2() Mat2[T] {
	return Mat2[T]{
		lhs[0], lhs[1],
		lhs[3], lhs[4],
	}
}

// Mat4 embeds lhs into the upper left of a homogeneous 4x4 matrix.
func (lhs Mat3[T]) Mat4() Mat4[T] {
	return Mat4[T]{
		lhs[0], lhs[1], lhs[2], 0,
		lhs[3], lhs[4], lhs[5], 0,
		lhs[6], lhs[7], lhs[8], 0,
		0, 0, 0, 1,
	}
}

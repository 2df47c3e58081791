package glm

import (
	"unsafe"

	"github.com/oliverbestmann/glm/approx"
	"github.com/oliverbestmann/glm/scalar"
)

// Mat4 is a 4x4 matrix with column-major storage: element (row, col) sits
// at index col*4+row. The translation of a homogeneous transform lives in
// the last column.
type Mat4[T scalar.Float] [16]T

func Mat4FromQuaternion[T scalar.Float](quat Quaternion[T]) Mat4[T] {
	x2 := quat.V[0] + quat.V[0]
	y2 := quat.V[1] + quat.V[1]
	z2 := quat.V[2] + quat.V[2]

	xx2 := x2 * quat.V[0]
	xy2 := x2 * quat.V[1]
	xz2 := x2 * quat.V[2]

	yy2 := y2 * quat.V[1]
	yz2 := y2 * quat.V[2]
	zz2 := z2 * quat.V[2]

	sy2 := y2 * quat.S
	sz2 := z2 * quat.S
	sx2 := x2 * quat.S

	return Mat4[T]{
		1 - yy2 - zz2, xy2 + sz2, xz2 - sy2, 0,
		xy2 - sz2, 1 - xx2 - zz2, yz2 + sx2, 0,
		xz2 + sy2, yz2 - sx2, 1 - xx2 - yy2, 0,
		0, 0, 0, 1,
	}
}

func IdentityMat4[T scalar.Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Of builds a matrix from an array of columns.
func Mat4Of[T scalar.Float](cols [4][4]T) Mat4[T] {
	return Mat4[T]{
		cols[0][0], cols[0][1], cols[0][2], cols[0][3],
		cols[1][0], cols[1][1], cols[1][2], cols[1][3],
		cols[2][0], cols[2][1], cols[2][2], cols[2][3],
		cols[3][0], cols[3][1], cols[3][2], cols[3][3],
	}
}

func Mat4FromCols[T scalar.Float](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{
		c0[0], c0[1], c0[2], c0[3],
		c1[0], c1[1], c1[2], c1[3],
		c2[0], c2[1], c2[2], c2[3],
		c3[0], c3[1], c3[2], c3[3],
	}
}

func TranslationMat4[T scalar.Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func RotationXMat4[T scalar.Float](angle Rad[T]) Mat4[T] {
	s, c := angle.SinCos()

	return Mat4[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func RotationYMat4[T scalar.Float](angle Rad[T]) Mat4[T] {
	s, c := angle.SinCos()

	return Mat4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func RotationZMat4[T scalar.Float](angle Rad[T]) Mat4[T] {
	s, c := angle.SinCos()

	return Mat4[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// AxisRotationMat4 returns the rotation by angle about an arbitrary axis.
// The axis is normalized internally, a zero length axis yields ErrZeroAxis.
func AxisRotationMat4[T scalar.Float](axis Vec3[T], angle Rad[T]) (Mat4[T], error) {
	m, err := AxisRotationMat3(axis, angle)
	if err != nil {
		return IdentityMat4[T](), err
	}
	return m.Mat4(), nil
}

func ScaleMat4[T scalar.Float](x, y, z T) Mat4[T] {
	return Mat4[T]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

func (lhs Mat4[T]) RotateX(angle Rad[T]) Mat4[T] {
	return lhs.Mul(RotationXMat4[T](angle))
}

func (lhs Mat4[T]) RotateY(angle Rad[T]) Mat4[T] {
	return lhs.Mul(RotationYMat4[T](angle))
}

func (lhs Mat4[T]) RotateZ(angle Rad[T]) Mat4[T] {
	return lhs.Mul(RotationZMat4[T](angle))
}

func (lhs Mat4[T]) Scale(x, y, z T) Mat4[T] {
	return lhs.Mul(ScaleMat4(x, y, z))
}

func (lhs Mat4[T]) Translate(x, y, z T) Mat4[T] {
	return lhs.Mul(TranslationMat4(x, y, z))
}

func (lhs Mat4[T]) IsZero() bool {
	return lhs == Mat4[T]{}
}

// IsFinite reports whether no element is NaN or an infinity.
func (lhs Mat4[T]) IsFinite() bool {
	for _, v := range lhs {
		if !scalar.IsFinite(v) {
			return false
		}
	}
	return true
}

// ApproxEqual compares element-wise within eps.
func (lhs Mat4[T]) ApproxEqual(rhs Mat4[T], eps T) bool {
	return approx.Floats(lhs[:], rhs[:], eps)
}

func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{
		lhs[0]*rhs[0] + lhs[4]*rhs[1] + lhs[8]*rhs[2] + lhs[12]*rhs[3],
		lhs[1]*rhs[0] + lhs[5]*rhs[1] + lhs[9]*rhs[2] + lhs[13]*rhs[3],
		lhs[2]*rhs[0] + lhs[6]*rhs[1] + lhs[10]*rhs[2] + lhs[14]*rhs[3],
		lhs[3]*rhs[0] + lhs[7]*rhs[1] + lhs[11]*rhs[2] + lhs[15]*rhs[3],
		lhs[0]*rhs[4] + lhs[4]*rhs[5] + lhs[8]*rhs[6] + lhs[12]*rhs[7],
		lhs[1]*rhs[4] + lhs[5]*rhs[5] + lhs[9]*rhs[6] + lhs[13]*rhs[7],
		lhs[2]*rhs[4] + lhs[6]*rhs[5] + lhs[10]*rhs[6] + lhs[14]*rhs[7],
		lhs[3]*rhs[4] + lhs[7]*rhs[5] + lhs[11]*rhs[6] + lhs[15]*rhs[7],
		lhs[0]*rhs[8] + lhs[4]*rhs[9] + lhs[8]*rhs[10] + lhs[12]*rhs[11],
		lhs[1]*rhs[8] + lhs[5]*rhs[9] + lhs[9]*rhs[10] + lhs[13]*rhs[11],
		lhs[2]*rhs[8] + lhs[6]*rhs[9] + lhs[10]*rhs[10] + lhs[14]*rhs[11],
		lhs[3]*rhs[8] + lhs[7]*rhs[9] + lhs[11]*rhs[10] + lhs[15]*rhs[11],
		lhs[0]*rhs[12] + lhs[4]*rhs[13] + lhs[8]*rhs[14] + lhs[12]*rhs[15],
		lhs[1]*rhs[12] + lhs[5]*rhs[13] + lhs[9]*rhs[14] + lhs[13]*rhs[15],
		lhs[2]*rhs[12] + lhs[6]*rhs[13] + lhs[10]*rhs[14] + lhs[14]*rhs[15],
		lhs[3]*rhs[12] + lhs[7]*rhs[13] + lhs[11]*rhs[14] + lhs[15]*rhs[15],
	}
}

func (lhs Mat4[T]) Transform(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0]*rhs[0] + lhs[4]*rhs[1] + lhs[8]*rhs[2] + lhs[12]*rhs[3],
		lhs[1]*rhs[0] + lhs[5]*rhs[1] + lhs[9]*rhs[2] + lhs[13]*rhs[3],
		lhs[2]*rhs[0] + lhs[6]*rhs[1] + lhs[10]*rhs[2] + lhs[14]*rhs[3],
		lhs[3]*rhs[0] + lhs[7]*rhs[1] + lhs[11]*rhs[2] + lhs[15]*rhs[3],
	}
}

// TransformPoint3 transforms a 3d point with w taken as one. The result is
// divided by the transformed w, so projective matrices work as well.
func (lhs Mat4[T]) TransformPoint3(rhs Vec3[T]) Vec3[T] {
	out := lhs.Transform(rhs.Extend(1))
	if out[3] != 1 && out[3] != 0 {
		return out.Truncate().Scale(1 / out[3])
	}
	return out.Truncate()
}

// TransformVec3 transforms a 3d direction, translation does not apply.
func (lhs Mat4[T]) TransformVec3(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0]*rhs[0] + lhs[4]*rhs[1] + lhs[8]*rhs[2],
		lhs[1]*rhs[0] + lhs[5]*rhs[1] + lhs[9]*rhs[2],
		lhs[2]*rhs[0] + lhs[6]*rhs[1] + lhs[10]*rhs[2],
	}
}

func (lhs Mat4[T]) Add(rhs Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for i := range lhs {
		out[i] = lhs[i] + rhs[i]
	}
	return out
}

func (lhs Mat4[T]) MulScalar(s T) Mat4[T] {
	var out Mat4[T]
	for i := range lhs {
		out[i] = lhs[i] * s
	}
	return out
}

func (lhs Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		lhs[0], lhs[4], lhs[8], lhs[12],
		lhs[1], lhs[5], lhs[9], lhs[13],
		lhs[2], lhs[6], lhs[10], lhs[14],
		lhs[3], lhs[7], lhs[11], lhs[15],
	}
}

func (lhs Mat4[T]) Det() T {
	s0 := lhs[0]*lhs[5] - lhs[1]*lhs[4]
	s1 := lhs[0]*lhs[9] - lhs[1]*lhs[8]
	s2 := lhs[0]*lhs[13] - lhs[1]*lhs[12]
	s3 := lhs[4]*lhs[9] - lhs[5]*lhs[8]
	s4 := lhs[4]*lhs[13] - lhs[5]*lhs[12]
	s5 := lhs[8]*lhs[13] - lhs[9]*lhs[12]

	c5 := lhs[10]*lhs[15] - lhs[11]*lhs[14]
	c4 := lhs[6]*lhs[15] - lhs[7]*lhs[14]
	c3 := lhs[6]*lhs[11] - lhs[7]*lhs[10]
	c2 := lhs[2]*lhs[15] - lhs[3]*lhs[14]
	c1 := lhs[2]*lhs[11] - lhs[3]*lhs[10]
	c0 := lhs[2]*lhs[7] - lhs[3]*lhs[6]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Invert returns the inverse computed from the adjugate. A matrix with
// determinant zero has no inverse, the identity is returned in that case.
// Callers that need to detect the singular case check Det beforehand.
func (lhs Mat4[T]) Invert() Mat4[T] {
	var adj Mat4[T]

	adj[0] = lhs[5]*lhs[10]*lhs[15] - lhs[5]*lhs[11]*lhs[14] -
		lhs[9]*lhs[6]*lhs[15] + lhs[9]*lhs[7]*lhs[14] +
		lhs[13]*lhs[6]*lhs[11] - lhs[13]*lhs[7]*lhs[10]

	adj[4] = -lhs[4]*lhs[10]*lhs[15] + lhs[4]*lhs[11]*lhs[14] +
		lhs[8]*lhs[6]*lhs[15] - lhs[8]*lhs[7]*lhs[14] -
		lhs[12]*lhs[6]*lhs[11] + lhs[12]*lhs[7]*lhs[10]

	adj[8] = lhs[4]*lhs[9]*lhs[15] - lhs[4]*lhs[11]*lhs[13] -
		lhs[8]*lhs[5]*lhs[15] + lhs[8]*lhs[7]*lhs[13] +
		lhs[12]*lhs[5]*lhs[11] - lhs[12]*lhs[7]*lhs[9]

	adj[12] = -lhs[4]*lhs[9]*lhs[14] + lhs[4]*lhs[10]*lhs[13] +
		lhs[8]*lhs[5]*lhs[14] - lhs[8]*lhs[6]*lhs[13] -
		lhs[12]*lhs[5]*lhs[10] + lhs[12]*lhs[6]*lhs[9]

	adj[1] = -lhs[1]*lhs[10]*lhs[15] + lhs[1]*lhs[11]*lhs[14] +
		lhs[9]*lhs[2]*lhs[15] - lhs[9]*lhs[3]*lhs[14] -
		lhs[13]*lhs[2]*lhs[11] + lhs[13]*lhs[3]*lhs[10]

	adj[5] = lhs[0]*lhs[10]*lhs[15] - lhs[0]*lhs[11]*lhs[14] -
		lhs[8]*lhs[2]*lhs[15] + lhs[8]*lhs[3]*lhs[14] +
		lhs[12]*lhs[2]*lhs[11] - lhs[12]*lhs[3]*lhs[10]

	adj[9] = -lhs[0]*lhs[9]*lhs[15] + lhs[0]*lhs[11]*lhs[13] +
		lhs[8]*lhs[1]*lhs[15] - lhs[8]*lhs[3]*lhs[13] -
		lhs[12]*lhs[1]*lhs[11] + lhs[12]*lhs[3]*lhs[9]

	adj[13] = lhs[0]*lhs[9]*lhs[14] - lhs[0]*lhs[10]*lhs[13] -
		lhs[8]*lhs[1]*lhs[14] + lhs[8]*lhs[2]*lhs[13] +
		lhs[12]*lhs[1]*lhs[10] - lhs[12]*lhs[2]*lhs[9]

	adj[2] = lhs[1]*lhs[6]*lhs[15] - lhs[1]*lhs[7]*lhs[14] -
		lhs[5]*lhs[2]*lhs[15] + lhs[5]*lhs[3]*lhs[14] +
		lhs[13]*lhs[2]*lhs[7] - lhs[13]*lhs[3]*lhs[6]

	adj[6] = -lhs[0]*lhs[6]*lhs[15] + lhs[0]*lhs[7]*lhs[14] +
		lhs[4]*lhs[2]*lhs[15] - lhs[4]*lhs[3]*lhs[14] -
		lhs[12]*lhs[2]*lhs[7] + lhs[12]*lhs[3]*lhs[6]

	adj[10] = lhs[0]*lhs[5]*lhs[15] - lhs[0]*lhs[7]*lhs[13] -
		lhs[4]*lhs[1]*lhs[15] + lhs[4]*lhs[3]*lhs[13] +
		lhs[12]*lhs[1]*lhs[7] - lhs[12]*lhs[3]*lhs[5]

	adj[14] = -lhs[0]*lhs[5]*lhs[14] + lhs[0]*lhs[6]*lhs[13] +
		lhs[4]*lhs[1]*lhs[14] - lhs[4]*lhs[2]*lhs[13] -
		lhs[12]*lhs[1]*lhs[6] + lhs[12]*lhs[2]*lhs[5]

	adj[3] = -lhs[1]*lhs[6]*lhs[11] + lhs[1]*lhs[7]*lhs[10] +
		lhs[5]*lhs[2]*lhs[11] - lhs[5]*lhs[3]*lhs[10] -
		lhs[9]*lhs[2]*lhs[7] + lhs[9]*lhs[3]*lhs[6]

	adj[7] = lhs[0]*lhs[6]*lhs[11] - lhs[0]*lhs[7]*lhs[10] -
		lhs[4]*lhs[2]*lhs[11] + lhs[4]*lhs[3]*lhs[10] +
		lhs[8]*lhs[2]*lhs[7] - lhs[8]*lhs[3]*lhs[6]

	adj[11] = -lhs[0]*lhs[5]*lhs[11] + lhs[0]*lhs[7]*lhs[9] +
		lhs[4]*lhs[1]*lhs[11] - lhs[4]*lhs[3]*lhs[9] -
		lhs[8]*lhs[1]*lhs[7] + lhs[8]*lhs[3]*lhs[5]

	adj[15] = lhs[0]*lhs[5]*lhs[10] - lhs[0]*lhs[6]*lhs[9] -
		lhs[4]*lhs[1]*lhs[10] + lhs[4]*lhs[2]*lhs[9] +
		lhs[8]*lhs[1]*lhs[6] - lhs[8]*lhs[2]*lhs[5]

	det := lhs[0]*adj[0] + lhs[1]*adj[4] + lhs[2]*adj[8] + lhs[3]*adj[12]
	if det == 0 {
		return IdentityMat4[T]()
	}

	return adj.MulScalar(1 / det)
}

func (lhs Mat4[T]) Trace() T {
	return lhs[0] + lhs[5] + lhs[10] + lhs[15]
}

func (lhs Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T]{
		lhs[i+0],
		lhs[i+4],
		lhs[i+8],
		lhs[i+12],
	}
}

func (lhs Mat4[T]) Col(i int) Vec4[T] {
	return Vec4[T]{
		lhs[i*4+0],
		lhs[i*4+1],
		lhs[i*4+2],
		lhs[i*4+3],
	}
}

func (lhs Mat4[T]) Columns() [4]Vec4[T] {
	return *(*[4]Vec4[T])(unsafe.Pointer(&lhs))
}

// Mat3 truncates to the upper left 3x3 matrix.
func (lhs Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		lhs[0], lhs[1], lhs[2],
		lhs[4], lhs[5], lhs[6],
		lhs[8], lhs[9], lhs[10],
	}
}

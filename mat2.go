package glm

import (
	"unsafe"

	"github.com/oliverbestmann/glm/approx"
	"github.com/oliverbestmann/glm/scalar"
)

// Mat2 is a 2x2 matrix with column-major storage: element (row, col) sits
// at index col*2+row.
type Mat2[T scalar.Float] [4]T

func IdentityMat2[T scalar.Float]() Mat2[T] {
	return Mat2[T]{
		1, 0,
		0, 1,
	}
}

// Mat2Of builds a matrix from an array of columns.
func Mat2Of[T scalar.Float](cols [2][2]T) Mat2[T] {
	return Mat2[T]{
		cols[0][0], cols[0][1],
		cols[1][0], cols[1][1],
	}
}

func Mat2FromCols[T scalar.Float](c0, c1 Vec2[T]) Mat2[T] {
	return Mat2[T]{
		c0[0], c0[1],
		c1[0], c1[1],
	}
}

func RotationMat2[T scalar.Float](angle Rad[T]) Mat2[T] {
	s, c := angle.SinCos()

	return Mat2[T]{
		c, s,
		-s, c,
	}
}

func ScaleMat2[T scalar.Float](x, y T) Mat2[T] {
	return Mat2[T]{
		x, 0,
		0, y,
	}
}

func (lhs Mat2[T]) Rotate(angle Rad[T]) Mat2[T] {
	return lhs.Mul(RotationMat2[T](angle))
}

func (lhs Mat2[T]) Scale(x, y T) Mat2[T] {
	return lhs.Mul(ScaleMat2(x, y))
}

func (lhs Mat2[T]) Mul(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{
		lhs[0]*rhs[0] + lhs[2]*rhs[1],
		lhs[1]*rhs[0] + lhs[3]*rhs[1],
		lhs[0]*rhs[2] + lhs[2]*rhs[3],
		lhs[1]*rhs[2] + lhs[3]*rhs[3],
	}
}

func (lhs Mat2[T]) Transform(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0]*rhs[0] + lhs[2]*rhs[1],
		lhs[1]*rhs[0] + lhs[3]*rhs[1],
	}
}

func (lhs Mat2[T]) Add(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
		lhs[3] + rhs[3],
	}
}

func (lhs Mat2[T]) MulScalar(s T) Mat2[T] {
	return Mat2[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
		lhs[3] * s,
	}
}

func (lhs Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{
		lhs[0], lhs[2],
		lhs[1], lhs[3],
	}
}

func (lhs Mat2[T]) Det() T {
	return lhs[0]*lhs[3] - lhs[2]*lhs[1]
}

// Invert returns the inverse. A matrix with determinant zero has no
// inverse, the identity is returned in that case. Callers that need to
// detect the singular case check Det beforehand.
func (lhs Mat2[T]) Invert() Mat2[T] {
	det := lhs.Det()
	if det == 0 {
		return IdentityMat2[T]()
	}

	return Mat2[T]{
		lhs[3], -lhs[1],
		-lhs[2], lhs[0],
	}.MulScalar(1 / det)
}

func (lhs Mat2[T]) Trace() T {
	return lhs[0] + lhs[3]
}

// Orthonormalize re-orthogonalizes the columns with Gram-Schmidt. Use it to
// repair a rotation matrix that drifted after many multiplications.
func (lhs Mat2[T]) Orthonormalize() Mat2[T] {
	c0 := lhs.Col(0).Normalize()
	c1 := lhs.Col(1)
	c1 = c1.Sub(c0.Scale(c0.Dot(c1))).Normalize()
	return Mat2FromCols(c0, c1)
}

func (lhs Mat2[T]) IsZero() bool {
	return lhs == Mat2[T]{}
}

// IsFinite reports whether no element is NaN or an infinity.
func (lhs Mat2[T]) IsFinite() bool {
	for _, v := range lhs {
		if !scalar.IsFinite(v) {
			return false
		}
	}
	return true
}

// ApproxEqual compares element-wise within eps.
func (lhs Mat2[T]) ApproxEqual(rhs Mat2[T], eps T) bool {
	return approx.Floats(lhs[:], rhs[:], eps)
}

func (lhs Mat2[T]) Row(i int) Vec2[T] {
	return Vec2[T]{
		lhs[i+0],
		lhs[i+2],
	}
}

func (lhs Mat2[T]) Col(i int) Vec2[T] {
	return Vec2[T]{
		lhs[i*2+0],
		lhs[i*2+1],
	}
}

func (lhs Mat2[T]) Columns() [2]Vec2[T] {
	return *(*[2]Vec2[T])(unsafe.Pointer(&lhs))
}

// Mat3 embeds lhs into the upper left of a homogeneous 3x3 matrix.
func (lhs Mat2[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		lhs[0], lhs[1], 0,
		lhs[2], lhs[3], 0,
		0, 0, 1,
	}
}

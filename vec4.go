package glm

import (
	"github.com/oliverbestmann/glm/approx"
	"github.com/oliverbestmann/glm/scalar"
)

// Vec4 is a four component column vector.
type Vec4[T scalar.Float] [4]T

// SplatVec4 returns the vector with all components set to v.
func SplatVec4[T scalar.Float](v T) Vec4[T] {
	return Vec4[T]{v, v, v, v}
}

func UnitXVec4[T scalar.Float]() Vec4[T] {
	return Vec4[T]{1, 0, 0, 0}
}

func UnitYVec4[T scalar.Float]() Vec4[T] {
	return Vec4[T]{0, 1, 0, 0}
}

func UnitZVec4[T scalar.Float]() Vec4[T] {
	return Vec4[T]{0, 0, 1, 0}
}

func UnitWVec4[T scalar.Float]() Vec4[T] {
	return Vec4[T]{0, 0, 0, 1}
}

func (lhs Vec4[T]) Add(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
		lhs[3] + rhs[3],
	}
}

func (lhs Vec4[T]) Sub(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
		lhs[3] - rhs[3],
	}
}

func (lhs Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-lhs[0], -lhs[1], -lhs[2], -lhs[3]}
}

func (lhs Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
		lhs[3] * s,
	}
}

// Mul multiplies component-wise.
func (lhs Vec4[T]) Mul(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
		lhs[3] * rhs[3],
	}
}

// Div divides component-wise.
func (lhs Vec4[T]) Div(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
		lhs[2] / rhs[2],
		lhs[3] / rhs[3],
	}
}

// Recip returns the component-wise reciprocal.
func (lhs Vec4[T]) Recip() Vec4[T] {
	return Vec4[T]{
		1 / lhs[0],
		1 / lhs[1],
		1 / lhs[2],
		1 / lhs[3],
	}
}

func (lhs Vec4[T]) Dot(rhs Vec4[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1]) + (lhs[2] * rhs[2]) + (lhs[3] * rhs[3])
}

func (lhs Vec4[T]) Length() T {
	return scalar.Sqrt(lhs.Dot(lhs))
}

func (lhs Vec4[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec4[T]) Distance(rhs Vec4[T]) T {
	return lhs.Sub(rhs).Length()
}

func (lhs Vec4[T]) DistanceSqr(rhs Vec4[T]) T {
	return lhs.Sub(rhs).LengthSqr()
}

// Normalize scales lhs to unit length. The zero vector has no direction and
// normalizes to NaN components, callers must guard or use NormalizeOr.
func (lhs Vec4[T]) Normalize() Vec4[T] {
	return lhs.Scale(1 / lhs.Length())
}

// NormalizeOr is like Normalize but returns fallback for the zero vector.
func (lhs Vec4[T]) NormalizeOr(fallback Vec4[T]) Vec4[T] {
	if lhs.LengthSqr() == 0 {
		return fallback
	}
	return lhs.Normalize()
}

// Lerp interpolates linearly towards rhs. t=0 yields lhs, t=1 yields rhs.
func (lhs Vec4[T]) Lerp(rhs Vec4[T], t T) Vec4[T] {
	return lhs.Add(rhs.Sub(lhs).Scale(t))
}

func (lhs Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{
		scalar.Abs(lhs[0]),
		scalar.Abs(lhs[1]),
		scalar.Abs(lhs[2]),
		scalar.Abs(lhs[3]),
	}
}

// Min returns the component-wise minimum.
func (lhs Vec4[T]) Min(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		min(lhs[0], rhs[0]),
		min(lhs[1], rhs[1]),
		min(lhs[2], rhs[2]),
		min(lhs[3], rhs[3]),
	}
}

// Max returns the component-wise maximum.
func (lhs Vec4[T]) Max(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		max(lhs[0], rhs[0]),
		max(lhs[1], rhs[1]),
		max(lhs[2], rhs[2]),
		max(lhs[3], rhs[3]),
	}
}

// IsFinite reports whether no component is NaN or an infinity.
func (lhs Vec4[T]) IsFinite() bool {
	return scalar.IsFinite(lhs[0]) && scalar.IsFinite(lhs[1]) &&
		scalar.IsFinite(lhs[2]) && scalar.IsFinite(lhs[3])
}

// ApproxEqual compares component-wise within eps.
func (lhs Vec4[T]) ApproxEqual(rhs Vec4[T], eps T) bool {
	return approx.Equal(lhs[0], rhs[0], eps) &&
		approx.Equal(lhs[1], rhs[1], eps) &&
		approx.Equal(lhs[2], rhs[2], eps) &&
		approx.Equal(lhs[3], rhs[3], eps)
}

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], lhs[2]}
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	w = lhs[3]
	return
}

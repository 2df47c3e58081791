package glm

import (
	"github.com/oliverbestmann/glm/approx"
	"github.com/oliverbestmann/glm/scalar"
)

// Vec3 is a three component column vector.
type Vec3[T scalar.Float] [3]T

// SplatVec3 returns the vector with all components set to v.
func SplatVec3[T scalar.Float](v T) Vec3[T] {
	return Vec3[T]{v, v, v}
}

func UnitXVec3[T scalar.Float]() Vec3[T] {
	return Vec3[T]{1, 0, 0}
}

func UnitYVec3[T scalar.Float]() Vec3[T] {
	return Vec3[T]{0, 1, 0}
}

func UnitZVec3[T scalar.Float]() Vec3[T] {
	return Vec3[T]{0, 0, 1}
}

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
	}
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
	}
}

func (lhs Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-lhs[0], -lhs[1], -lhs[2]}
}

func (lhs Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
	}
}

// Mul multiplies component-wise.
func (lhs Vec3[T]) Mul(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
	}
}

// Div divides component-wise.
func (lhs Vec3[T]) Div(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
		lhs[2] / rhs[2],
	}
}

// Recip returns the component-wise reciprocal.
func (lhs Vec3[T]) Recip() Vec3[T] {
	return Vec3[T]{
		1 / lhs[0],
		1 / lhs[1],
		1 / lhs[2],
	}
}

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1]) + (lhs[2] * rhs[2])
}

func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[1]*rhs[2] - rhs[1]*lhs[2],
		lhs[2]*rhs[0] - rhs[2]*lhs[0],
		lhs[0]*rhs[1] - rhs[0]*lhs[1],
	}
}

func (lhs Vec3[T]) Length() T {
	return scalar.Sqrt(lhs.Dot(lhs))
}

func (lhs Vec3[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec3[T]) Distance(rhs Vec3[T]) T {
	return lhs.Sub(rhs).Length()
}

func (lhs Vec3[T]) DistanceSqr(rhs Vec3[T]) T {
	return lhs.Sub(rhs).LengthSqr()
}

// Normalize scales lhs to unit length. The zero vector has no direction and
// normalizes to NaN components, callers must guard or use NormalizeOr.
func (lhs Vec3[T]) Normalize() Vec3[T] {
	return lhs.Scale(1 / lhs.Length())
}

// NormalizeOr is like Normalize but returns fallback for the zero vector.
func (lhs Vec3[T]) NormalizeOr(fallback Vec3[T]) Vec3[T] {
	if lhs.LengthSqr() == 0 {
		return fallback
	}
	return lhs.Normalize()
}

// Lerp interpolates linearly towards rhs. t=0 yields lhs, t=1 yields rhs.
func (lhs Vec3[T]) Lerp(rhs Vec3[T], t T) Vec3[T] {
	return lhs.Add(rhs.Sub(lhs).Scale(t))
}

func (lhs Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{
		scalar.Abs(lhs[0]),
		scalar.Abs(lhs[1]),
		scalar.Abs(lhs[2]),
	}
}

// Min returns the component-wise minimum.
func (lhs Vec3[T]) Min(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		min(lhs[0], rhs[0]),
		min(lhs[1], rhs[1]),
		min(lhs[2], rhs[2]),
	}
}

// Max returns the component-wise maximum.
func (lhs Vec3[T]) Max(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		max(lhs[0], rhs[0]),
		max(lhs[1], rhs[1]),
		max(lhs[2], rhs[2]),
	}
}

// IsFinite reports whether no component is NaN or an infinity.
func (lhs Vec3[T]) IsFinite() bool {
	return scalar.IsFinite(lhs[0]) && scalar.IsFinite(lhs[1]) && scalar.IsFinite(lhs[2])
}

// ApproxEqual compares component-wise within eps.
func (lhs Vec3[T]) ApproxEqual(rhs Vec3[T], eps T) bool {
	return approx.Equal(lhs[0], rhs[0], eps) &&
		approx.Equal(lhs[1], rhs[1], eps) &&
		approx.Equal(lhs[2], rhs[2], eps)
}

func (lhs Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{lhs[0], lhs[1], lhs[2], w}
}

func (lhs Vec3[T]) Truncate() Vec2[T] {
	return Vec2[T]{lhs[0], lhs[1]}
}

func (lhs Vec3[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

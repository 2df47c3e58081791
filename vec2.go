package glm

import (
	"github.com/oliverbestmann/glm/approx"
	"github.com/oliverbestmann/glm/scalar"
)

// Vec2 is a two component column vector.
type Vec2[T scalar.Float] [2]T

// SplatVec2 returns the vector with all components set to v.
func SplatVec2[T scalar.Float](v T) Vec2[T] {
	return Vec2[T]{v, v}
}

func UnitXVec2[T scalar.Float]() Vec2[T] {
	return Vec2[T]{1, 0}
}

func UnitYVec2[T scalar.Float]() Vec2[T] {
	return Vec2[T]{0, 1}
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

func (lhs Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-lhs[0], -lhs[1]}
}

func (lhs Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] * s,
		lhs[1] * s,
	}
}

// Mul multiplies component-wise.
func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
	}
}

// Div divides component-wise.
func (lhs Vec2[T]) Div(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
	}
}

// Recip returns the component-wise reciprocal.
func (lhs Vec2[T]) Recip() Vec2[T] {
	return Vec2[T]{
		1 / lhs[0],
		1 / lhs[1],
	}
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1])
}

// PerpDot returns the z component of the cross product of the two vectors
// extended to 3d with z=0. The sign tells on which side of lhs the vector
// rhs lies.
func (lhs Vec2[T]) PerpDot(rhs Vec2[T]) T {
	return lhs[0]*rhs[1] - lhs[1]*rhs[0]
}

// Perp returns lhs rotated a quarter turn counter-clockwise.
func (lhs Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{-lhs[1], lhs[0]}
}

func (lhs Vec2[T]) Length() T {
	return scalar.Sqrt(lhs.Dot(lhs))
}

func (lhs Vec2[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec2[T]) Distance(rhs Vec2[T]) T {
	return lhs.Sub(rhs).Length()
}

func (lhs Vec2[T]) DistanceSqr(rhs Vec2[T]) T {
	return lhs.Sub(rhs).LengthSqr()
}

// Normalize scales lhs to unit length. The zero vector has no direction and
// normalizes to NaN components, callers must guard or use NormalizeOr.
func (lhs Vec2[T]) Normalize() Vec2[T] {
	return lhs.Scale(1 / lhs.Length())
}

// NormalizeOr is like Normalize but returns fallback for the zero vector.
func (lhs Vec2[T]) NormalizeOr(fallback Vec2[T]) Vec2[T] {
	if lhs.LengthSqr() == 0 {
		return fallback
	}
	return lhs.Normalize()
}

// Lerp interpolates linearly towards rhs. t=0 yields lhs, t=1 yields rhs.
func (lhs Vec2[T]) Lerp(rhs Vec2[T], t T) Vec2[T] {
	return lhs.Add(rhs.Sub(lhs).Scale(t))
}

func (lhs Vec2[T]) Abs() Vec2[T] {
	return Vec2[T]{
		scalar.Abs(lhs[0]),
		scalar.Abs(lhs[1]),
	}
}

// Min returns the component-wise minimum.
func (lhs Vec2[T]) Min(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		min(lhs[0], rhs[0]),
		min(lhs[1], rhs[1]),
	}
}

// Max returns the component-wise maximum.
func (lhs Vec2[T]) Max(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		max(lhs[0], rhs[0]),
		max(lhs[1], rhs[1]),
	}
}

// IsFinite reports whether no component is NaN or an infinity.
func (lhs Vec2[T]) IsFinite() bool {
	return scalar.IsFinite(lhs[0]) && scalar.IsFinite(lhs[1])
}

// ApproxEqual compares component-wise within eps.
func (lhs Vec2[T]) ApproxEqual(rhs Vec2[T], eps T) bool {
	return approx.Equal(lhs[0], rhs[0], eps) &&
		approx.Equal(lhs[1], rhs[1], eps)
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], z}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

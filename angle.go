package glm

import (
	"github.com/oliverbestmann/glm/scalar"
)

// Rad is an angle in radians. Carrying the unit in the type keeps degree
// values out of trigonometric code unless explicitly converted.
type Rad[T scalar.Float] struct {
	A T
}

// Deg is an angle in degrees.
type Deg[T scalar.Float] struct {
	A T
}

// Radians wraps a raw radians value into a typed angle.
func Radians[T scalar.Float](a T) Rad[T] {
	return Rad[T]{A: a}
}

// Degrees wraps a raw degrees value into a typed angle.
func Degrees[T scalar.Float](a T) Deg[T] {
	return Deg[T]{A: a}
}

// FullTurn returns the angle of one full rotation, 2π.
func FullTurn[T scalar.Float]() Rad[T] {
	return Rad[T]{A: scalar.Tau[T]()}
}

// HalfTurn returns the angle of half a rotation, π.
func HalfTurn[T scalar.Float]() Rad[T] {
	return Rad[T]{A: scalar.Pi[T]()}
}

func (lhs Rad[T]) Deg() Deg[T] {
	return Deg[T]{A: lhs.A * (180 / scalar.Pi[T]())}
}

func (lhs Rad[T]) Add(rhs Rad[T]) Rad[T] {
	return Rad[T]{A: lhs.A + rhs.A}
}

func (lhs Rad[T]) Sub(rhs Rad[T]) Rad[T] {
	return Rad[T]{A: lhs.A - rhs.A}
}

func (lhs Rad[T]) Neg() Rad[T] {
	return Rad[T]{A: -lhs.A}
}

func (lhs Rad[T]) Scale(s T) Rad[T] {
	return Rad[T]{A: lhs.A * s}
}

// Normalize returns the equivalent angle in the interval (-π, π].
func (lhs Rad[T]) Normalize() Rad[T] {
	pi := scalar.Pi[T]()
	a := scalar.Mod(lhs.A, scalar.Tau[T]())
	if a > pi {
		a -= scalar.Tau[T]()
	} else if a <= -pi {
		a += scalar.Tau[T]()
	}
	return Rad[T]{A: a}
}

func (lhs Rad[T]) Sin() T {
	return scalar.Sin(lhs.A)
}

func (lhs Rad[T]) Cos() T {
	return scalar.Cos(lhs.A)
}

func (lhs Rad[T]) SinCos() (sin, cos T) {
	return scalar.SinCos(lhs.A)
}

func (lhs Rad[T]) Tan() T {
	return scalar.Tan(lhs.A)
}

func (lhs Deg[T]) Rad() Rad[T] {
	return Rad[T]{A: lhs.A * (scalar.Pi[T]() / 180)}
}

func (lhs Deg[T]) Add(rhs Deg[T]) Deg[T] {
	return Deg[T]{A: lhs.A + rhs.A}
}

func (lhs Deg[T]) Sub(rhs Deg[T]) Deg[T] {
	return Deg[T]{A: lhs.A - rhs.A}
}

func (lhs Deg[T]) Neg() Deg[T] {
	return Deg[T]{A: -lhs.A}
}

func (lhs Deg[T]) Scale(s T) Deg[T] {
	return Deg[T]{A: lhs.A * s}
}

// Normalize returns the equivalent angle in the interval (-180, 180].
func (lhs Deg[T]) Normalize() Deg[T] {
	a := scalar.Mod(lhs.A, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return Deg[T]{A: a}
}

func (lhs Deg[T]) Sin() T {
	return lhs.Rad().Sin()
}

func (lhs Deg[T]) Cos() T {
	return lhs.Rad().Cos()
}

func (lhs Deg[T]) SinCos() (sin, cos T) {
	return lhs.Rad().SinCos()
}

func (lhs Deg[T]) Tan() T {
	return lhs.Rad().Tan()
}

// Asin returns the typed angle whose sine is x. The result is undefined
// when x is outside [-1, 1].
func Asin[T scalar.Float](x T) Rad[T] {
	return Rad[T]{A: scalar.Asin(x)}
}

// Acos returns the typed angle whose cosine is x. The result is undefined
// when x is outside [-1, 1].
func Acos[T scalar.Float](x T) Rad[T] {
	return Rad[T]{A: scalar.Acos(x)}
}

// Atan2 returns the typed angle of the point (x, y) measured from the
// positive x axis.
func Atan2[T scalar.Float](y, x T) Rad[T] {
	return Rad[T]{A: scalar.Atan2(y, x)}
}

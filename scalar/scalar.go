// Package scalar defines the numeric capability set the glm containers are
// generic over: the Float constraint plus the arithmetic and trigonometric
// helpers that evaluate in the precision of the instantiated type.
package scalar

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the scalar type constraint for all glm containers.
type Float interface {
	~float32 | ~float64
}

// Numeric admits any built-in numeric type. It is used by helpers that do
// not need field semantics, like Clamp.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// is32 reports whether T is a single-precision float. The check folds to a
// constant per instantiation.
func is32[T Float]() bool {
	return unsafe.Sizeof(T(0)) == 4
}

// Pi returns π in the precision of T.
func Pi[T Float]() T {
	return T(3.14159265358979323846264338327950288)
}

// Tau returns 2π in the precision of T.
func Tau[T Float]() T {
	return T(6.28318530717958647692528676655900577)
}

// Epsilon returns the machine epsilon of T: the difference between 1 and the
// smallest representable value greater than 1.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(1.1920929e-07)
	}
	return T(2.220446049250313e-16)
}

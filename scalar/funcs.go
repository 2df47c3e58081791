package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// The wrappers below pick the math32 implementation for single-precision
// instantiations so float32 code never takes the round trip through float64.
// The branch folds to a constant per instantiation.

func Sqrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func Sin[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

func Cos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

// SinCos returns Sin(x) and Cos(x) in a single call.
func SinCos[T Float](x T) (sin, cos T) {
	if is32[T]() {
		s, c := math32.Sincos(float32(x))
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

func Tan[T Float](x T) T {
	if is32[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

// Asin returns the arc sine of x. The result is undefined when x is
// outside [-1, 1].
func Asin[T Float](x T) T {
	if is32[T]() {
		return T(math32.Asin(float32(x)))
	}
	return T(math.Asin(float64(x)))
}

// Acos returns the arc cosine of x. The result is undefined when x is
// outside [-1, 1].
func Acos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Acos(float32(x)))
	}
	return T(math.Acos(float64(x)))
}

// Atan2 returns the arc tangent of y/x, using the signs of both to pick the
// quadrant.
func Atan2[T Float](y, x T) T {
	if is32[T]() {
		return T(math32.Atan2(float32(y), float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Mod returns the floating-point remainder of x/y. The result keeps the
// sign of x.
func Mod[T Float](x, y T) T {
	if is32[T]() {
		return T(math32.Mod(float32(x), float32(y)))
	}
	return T(math.Mod(float64(x), float64(y)))
}

func Abs[T Float](x T) T {
	if is32[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Float](x T) bool {
	if is32[T]() {
		f := float32(x)
		return !math32.IsNaN(f) && !math32.IsInf(f, 0)
	}
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp limits x to the interval [lo, hi].
func Clamp[T Numeric](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Lerp interpolates linearly from a to b. t=0 yields a, t=1 yields b, values
// outside [0, 1] extrapolate.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

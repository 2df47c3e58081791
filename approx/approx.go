// Package approx implements tolerance-based float comparison. Every
// predicate takes the tolerance from the caller; nothing in here guesses an
// epsilon on its own.
package approx

import (
	"github.com/oliverbestmann/glm/scalar"
)

// Equal reports whether a and b differ by at most eps.
func Equal[T scalar.Float](a, b, eps T) bool {
	return scalar.Abs(a-b) <= eps
}

// EqualRel compares relative to the larger magnitude of the two values,
// falling back to an absolute check near zero. Use this when the operands
// may span orders of magnitude.
func EqualRel[T scalar.Float](a, b, eps T) bool {
	diff := scalar.Abs(a - b)
	if diff <= eps {
		return true
	}
	return diff <= max(scalar.Abs(a), scalar.Abs(b))*eps
}

// Zero reports whether v is within eps of zero.
func Zero[T scalar.Float](v, eps T) bool {
	return scalar.Abs(v) <= eps
}

// Floats compares two slices element-wise with Equal. Slices of different
// length are never equal.
func Floats[T scalar.Float](a, b []T, eps T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

package scalar

import (
	"golang.org/x/mobile/exp/f32"
)

// FastSinCos returns FastSin(x) and FastCos(x).
func FastSinCos(x float32) (sin, cos float32) {
	return FastSin(x), FastCos(x)
}

// FastSin is a single-precision sine for throwaway effect math. It trades
// accuracy near the extremes for speed.
func FastSin(x float32) float32 {
	return f32.Sin(x)
}

// FastCos is a single-precision cosine, see FastSin.
func FastCos(x float32) float32 {
	return f32.Cos(x)
}

package glm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/glm"
)

func TestAngleUnits(t *testing.T) {
	t.Parallel()

	require.InDelta(t, math.Pi, glm.Degrees(180.0).Rad().A, 1e-15)
	require.InDelta(t, 90, glm.Radians(math.Pi/2).Deg().A, 1e-13)
	require.InDelta(t, 2*math.Pi, glm.FullTurn[float64]().A, 0)
	require.InDelta(t, math.Pi, glm.HalfTurn[float64]().A, 0)

	// the round trip keeps the value
	for _, deg := range []float64{0, 30, -45, 90, 123.456, 720} {
		require.InDelta(t, deg, glm.Degrees(deg).Rad().Deg().A, 1e-12)
	}
}

func TestAngleArithmetic(t *testing.T) {
	t.Parallel()

	a := glm.Radians(1.0)
	b := glm.Radians(0.5)

	require.Equal(t, glm.Radians(1.5), a.Add(b))
	require.Equal(t, glm.Radians(0.5), a.Sub(b))
	require.Equal(t, glm.Radians(-1.0), a.Neg())
	require.Equal(t, glm.Radians(3.0), a.Scale(3))

	d := glm.Degrees(90.0)
	require.Equal(t, glm.Degrees(135.0), d.Add(glm.Degrees(45.0)))
	require.Equal(t, glm.Degrees(60.0), d.Sub(glm.Degrees(30.0)))
	require.Equal(t, glm.Degrees(-90.0), d.Neg())
	require.Equal(t, glm.Degrees(45.0), d.Scale(0.5))
}

func TestRadNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi / 3, math.Pi / 3},
		{-math.Pi / 3, -math.Pi / 3},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{5 * math.Pi / 2, math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
		{7 * math.Pi, math.Pi},
	}

	for _, c := range cases {
		got := glm.Radians(c.in).Normalize()
		require.InDelta(t, c.want, got.A, 1e-12, "normalize %v", c.in)

		// a second pass changes nothing
		require.Equal(t, got, got.Normalize())
	}
}

func TestDegNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want float64 }{
		{0, 0},
		{30, 30},
		{180, 180},
		{540, 180},
		{-180, 180},
		{450, 90},
		{-450, -90},
		{720, 0},
	}

	for _, c := range cases {
		got := glm.Degrees(c.in).Normalize()
		require.InDelta(t, c.want, got.A, 1e-12, "normalize %v deg", c.in)
		require.Equal(t, got, got.Normalize())
	}
}

func TestAngleTrig(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 1, glm.Radians(math.Pi/2).Sin(), 1e-15)
	require.InDelta(t, -1, glm.Radians(math.Pi).Cos(), 1e-15)
	require.InDelta(t, 1, glm.Degrees(90.0).Sin(), 1e-15)
	require.InDelta(t, 0.5, glm.Degrees(60.0).Cos(), 1e-15)
	require.InDelta(t, 1, glm.Degrees(45.0).Tan(), 1e-15)
	require.InDelta(t, math.Tan(0.3), glm.Radians(0.3).Tan(), 1e-15)

	s, c := glm.Radians(0.7).SinCos()
	require.InDelta(t, math.Sin(0.7), s, 1e-15)
	require.InDelta(t, math.Cos(0.7), c, 1e-15)

	sd, cd := glm.Degrees(30.0).SinCos()
	require.InDelta(t, 0.5, sd, 1e-15)
	require.InDelta(t, math.Sqrt(3)/2, cd, 1e-15)
}

func TestArcConstructors(t *testing.T) {
	t.Parallel()

	require.InDelta(t, math.Pi/2, glm.Asin(1.0).A, 1e-15)
	require.InDelta(t, math.Pi/6, glm.Asin(0.5).A, 1e-15)
	require.InDelta(t, math.Pi/2, glm.Acos(0.0).A, 1e-15)
	require.InDelta(t, 0, glm.Acos(1.0).A, 0)
	require.InDelta(t, math.Pi/4, glm.Atan2(1.0, 1.0).A, 1e-15)
	require.InDelta(t, math.Pi, glm.Atan2(0.0, -1.0).A, 1e-15)
	require.InDelta(t, -math.Pi/2, glm.Atan2(-1.0, 0.0).A, 1e-15)
}

func TestAngleFloat32(t *testing.T) {
	t.Parallel()

	a := glm.Degrees[float32](90).Rad()
	require.InDelta(t, math.Pi/2, float64(a.A), 1e-6)
	require.InDelta(t, 1, float64(a.Sin()), 1e-6)
	require.InDelta(t, 0, float64(a.Cos()), 1e-6)

	require.InDelta(t, 180, float64(glm.Degrees[float32](-180).Normalize().A), 1e-4)
}

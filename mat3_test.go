package glm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/glm"
)

func TestMat3TranslationAndTransform2(t *testing.T) {
	t.Parallel()

	m := glm.TranslationMat3(3.0, -2.0)
	require.Equal(t, glm.Vec2d{4, 0}, m.Transform2(glm.Vec2d{1, 2}))

	// the full transform keeps the homogeneous coordinate
	require.Equal(t, glm.Vec3d{4, 0, 1}, m.Transform(glm.Vec3d{1, 2, 1}))

	// directions have w=0 and ignore translation
	require.Equal(t, glm.Vec3d{1, 2, 0}, m.Transform(glm.Vec3d{1, 2, 0}))
}

func TestMat3Rotations(t *testing.T) {
	t.Parallel()

	quarter := glm.RotationMat3(glm.Radians(math.Pi / 2))
	requireVec2InDelta(t, glm.Vec2d{0, 1}, quarter.Transform2(glm.Vec2d{1, 0}), 1e-15)

	x90 := glm.RotationXMat3(glm.Radians(math.Pi / 2))
	requireVec3InDelta(t, glm.Vec3d{0, 0, 1}, x90.Transform(glm.Vec3d{0, 1, 0}), 1e-15)

	y90 := glm.RotationYMat3(glm.Radians(math.Pi / 2))
	requireVec3InDelta(t, glm.Vec3d{0, 0, -1}, y90.Transform(glm.Vec3d{1, 0, 0}), 1e-15)

	// RotationMat3 is the rotation about the z axis
	requireVec3InDelta(t, glm.Vec3d{0, 1, 0}, quarter.Transform(glm.Vec3d{1, 0, 0}), 1e-15)
}

func TestMat3MulOrder(t *testing.T) {
	t.Parallel()

	a := glm.TranslationMat3(1.0, 0.0)
	b := glm.RotationMat3(glm.Radians(math.Pi / 2))
	p := glm.Vec2d{1, 0}

	// a.Mul(b) applies b first
	requireVec2InDelta(t, glm.Vec2d{1, 1}, a.Mul(b).Transform2(p), 1e-15)
	requireVec2InDelta(t, glm.Vec2d{0, 2}, b.Mul(a).Transform2(p), 1e-15)
}

func TestAxisRotationMat3(t *testing.T) {
	t.Parallel()

	m, err := glm.AxisRotationMat3(glm.Vec3d{0, 0, 1}, glm.Radians(math.Pi/2))
	require.NoError(t, err)
	requireVec3InDelta(t, glm.Vec3d{0, 1, 0}, m.Transform(glm.Vec3d{1, 0, 0}), 1e-6)

	// the axis length does not matter
	scaled, err := glm.AxisRotationMat3(glm.Vec3d{0, 0, 10}, glm.Radians(math.Pi/2))
	require.NoError(t, err)
	require.True(t, m.ApproxEqual(scaled, 1e-12))

	// agrees with the fixed axis constructors
	angle := glm.Radians(0.8)
	ax, err := glm.AxisRotationMat3(glm.Vec3d{1, 0, 0}, angle)
	require.NoError(t, err)
	require.True(t, ax.ApproxEqual(glm.RotationXMat3(angle), 1e-12))

	ay, err := glm.AxisRotationMat3(glm.Vec3d{0, 1, 0}, angle)
	require.NoError(t, err)
	require.True(t, ay.ApproxEqual(glm.RotationYMat3(angle), 1e-12))

	bad, err := glm.AxisRotationMat3(glm.Vec3d{}, angle)
	require.ErrorIs(t, err, glm.ErrZeroAxis)
	require.Equal(t, glm.IdentityMat3[float64](), bad)
}

func TestLookToMat3(t *testing.T) {
	t.Parallel()

	dir := glm.Vec3d{1, 2, 3}
	up := glm.Vec3d{0, 1, 0}

	m, err := glm.LookToMat3(dir, up)
	require.NoError(t, err)

	// the view direction lands on +z
	requireVec3InDelta(t, glm.Vec3d{0, 0, 1}, m.Transform(dir.Normalize()), 1e-12)

	// pure rotation
	require.InDelta(t, 1, m.Det(), 1e-12)
	require.True(t, m.Transpose().Mul(m).ApproxEqual(glm.IdentityMat3[float64](), 1e-12))

	// looking along +z is the identity
	ahead, err := glm.LookToMat3(glm.Vec3d{0, 0, 2}, up)
	require.NoError(t, err)
	require.True(t, ahead.ApproxEqual(glm.IdentityMat3[float64](), 1e-12))

	_, err = glm.LookToMat3(glm.Vec3d{}, up)
	require.ErrorIs(t, err, glm.ErrDegenerateLook)

	// up colinear with dir leaves the roll unresolved
	_, err = glm.LookToMat3(glm.Vec3d{0, 1, 0}, up)
	require.ErrorIs(t, err, glm.ErrDegenerateLook)
}

func TestMat3Det(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 6, glm.DiagonalMat3(1.0, 2.0, 3.0).Det(), 0)
	require.InDelta(t, 2, glm.ScaleMat3(1.0, 2.0).Det(), 0)
	require.InDelta(t, 1, glm.RotationXMat3(glm.Radians(1.1)).Det(), 1e-15)
	require.InDelta(t, 1, glm.TranslationMat3(4.0, -1.0).Det(), 0)

	// multiplicative
	a := glm.DiagonalMat3(2.0, 1.0, 0.5)
	b := glm.RotationYMat3(glm.Radians(0.4))
	require.InDelta(t, a.Det()*b.Det(), a.Mul(b).Det(), 1e-12)
}

func TestMat3Invert(t *testing.T) {
	t.Parallel()

	m := glm.TranslationMat3(2.0, -1.0).Rotate(glm.Radians(0.6)).Scale(3, 0.5)
	inv := m.Invert()

	require.True(t, m.Mul(inv).ApproxEqual(glm.IdentityMat3[float64](), 1e-12))
	require.True(t, inv.Mul(m).ApproxEqual(glm.IdentityMat3[float64](), 1e-12))

	p := glm.Vec2d{4, 7}
	requireVec2InDelta(t, p, inv.Transform2(m.Transform2(p)), 1e-12)

	singular := glm.Mat3FromCols(glm.Vec3d{1, 2, 3}, glm.Vec3d{2, 4, 6}, glm.Vec3d{0, 0, 1})
	require.InDelta(t, 0, singular.Det(), 0)
	require.Equal(t, glm.IdentityMat3[float64](), singular.Invert())
}

func TestMat3Orthonormalize(t *testing.T) {
	t.Parallel()

	rng := newRand()
	for range 20 {
		e := glm.Eulerd{
			X: glm.Radians(randUnit(rng) * 3),
			Y: glm.Radians(randUnit(rng) * 3),
			Z: glm.Radians(randUnit(rng) * 3),
		}
		m := e.Mat3()

		// drift the entries, then repair
		for i := range m {
			m[i] += randUnit(rng) * 0.05
		}
		fixed := m.Orthonormalize()

		gram := fixed.Transpose().Mul(fixed)
		require.True(t, gram.ApproxEqual(glm.IdentityMat3[float64](), 1e-12))
		require.InDelta(t, 1, fixed.Det(), 1e-12)
	}
}

func TestMat3Layout(t *testing.T) {
	t.Parallel()

	m := glm.Mat3FromCols(
		glm.Vec3d{1, 2, 3},
		glm.Vec3d{4, 5, 6},
		glm.Vec3d{7, 8, 9},
	)

	require.Equal(t, glm.Vec3d{4, 5, 6}, m.Col(1))
	require.Equal(t, glm.Vec3d{2, 5, 8}, m.Row(1))
	require.Equal(t, 15.0, m.Trace())
	require.Equal(t, m, m.Transpose().Transpose())
	require.Equal(t, m.Row(2), m.Transpose().Col(2))
	require.Equal(t, glm.Vec3d{7, 8, 9}, m.Columns()[2])

	m4 := m.Mat4()
	require.Equal(t, glm.Vec4d{4, 5, 6, 0}, m4.Col(1))
	require.Equal(t, glm.Vec4d{0, 0, 0, 1}, m4.Col(3))
	require.Equal(t, m, m4.Mat3())

	require.Equal(t, glm.Mat2FromCols(glm.Vec2d{1, 2}, glm.Vec2d{4, 5}), m.Mat2())
}

func TestMat3Scalar(t *testing.T) {
	t.Parallel()

	m := glm.DiagonalMat3(1.0, 2.0, 3.0)
	require.Equal(t, glm.DiagonalMat3(2.0, 4.0, 6.0), m.MulScalar(2))
	require.Equal(t, glm.DiagonalMat3(2.0, 4.0, 6.0), m.Add(m))

	require.True(t, glm.Mat3d{}.IsZero())
	require.False(t, m.IsZero())
	require.True(t, m.IsFinite())
	require.False(t, glm.Mat3d{0, math.NaN()}.IsFinite())
}

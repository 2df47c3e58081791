package glm_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/glm"
)

// newRand returns a seeded generator so failing runs reproduce.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0, 3))
}

func randUnit(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

func randVec2(rng *rand.Rand) glm.Vec2d {
	return glm.Vec2d{randUnit(rng) * 10, randUnit(rng) * 10}
}

func randVec3(rng *rand.Rand) glm.Vec3d {
	return glm.Vec3d{randUnit(rng) * 10, randUnit(rng) * 10, randUnit(rng) * 10}
}

// randQuat samples rotations roughly uniformly by normalizing points drawn
// from the unit ball.
func randQuat(rng *rand.Rand) glm.Quatd {
	for {
		q := glm.QuatOf(randUnit(rng), randUnit(rng), randUnit(rng), randUnit(rng))
		if l := q.LengthSqr(); l > 0.01 && l <= 1 {
			return q.Normalize()
		}
	}
}

func randDecomposed2(rng *rand.Rand) glm.Decomposed2d {
	return glm.Decomposed2d{
		Scale: rng.Float64()*3 + 0.25,
		Rot:   glm.Basis2FromAngle(glm.Radians(randUnit(rng) * math.Pi)),
		Disp:  randVec2(rng),
	}
}

func randDecomposed3(rng *rand.Rand) glm.Decomposed3d {
	return glm.Decomposed3d{
		Scale: rng.Float64()*3 + 0.25,
		Rot:   randQuat(rng),
		Disp:  randVec3(rng),
	}
}

func requireVec2InDelta(t *testing.T, want, got glm.Vec2d, eps float64) {
	t.Helper()
	require.InDelta(t, want[0], got[0], eps)
	require.InDelta(t, want[1], got[1], eps)
}

func requireVec3InDelta(t *testing.T, want, got glm.Vec3d, eps float64) {
	t.Helper()
	require.InDelta(t, want[0], got[0], eps)
	require.InDelta(t, want[1], got[1], eps)
	require.InDelta(t, want[2], got[2], eps)
}

func requireVec4InDelta(t *testing.T, want, got glm.Vec4d, eps float64) {
	t.Helper()
	require.InDelta(t, want[0], got[0], eps)
	require.InDelta(t, want[1], got[1], eps)
	require.InDelta(t, want[2], got[2], eps)
	require.InDelta(t, want[3], got[3], eps)
}

func requireQuatInDelta(t *testing.T, want, got glm.Quatd, eps float64) {
	t.Helper()
	require.InDelta(t, want.S, got.S, eps)
	require.InDelta(t, want.V[0], got.V[0], eps)
	require.InDelta(t, want.V[1], got.V[1], eps)
	require.InDelta(t, want.V[2], got.V[2], eps)
}

func requireMat3InDelta(t *testing.T, want, got glm.Mat3d, eps float64) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "entry %d", i)
	}
}

func requireMat4InDelta(t *testing.T, want, got glm.Mat4d, eps float64) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "entry %d", i)
	}
}

package glm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/glm"
)

func TestPerspective(t *testing.T) {
	t.Parallel()

	// a square 90 degree frustum, f works out to exactly 1
	p := glm.Perspective(glm.Radians(math.Pi/2), 1.0, 1, 10)

	// the near and far planes map to the -1..1 depth range
	requireVec3InDelta(t, glm.Vec3d{0, 0, -1}, p.TransformPoint3(glm.Vec3d{0, 0, -1}), 1e-12)
	requireVec3InDelta(t, glm.Vec3d{0, 0, 1}, p.TransformPoint3(glm.Vec3d{0, 0, -10}), 1e-12)

	// the frustum edge lands on the ndc border after the w divide
	edge := p.TransformPoint3(glm.Vec3d{-5, 0, -5})
	require.InDelta(t, -1, edge[0], 1e-12)

	// the top of the near plane maps to y of 1
	top := p.TransformPoint3(glm.Vec3d{0, 1, -1})
	require.InDelta(t, 1, top[1], 1e-12)

	// clip w carries the negated view depth
	require.InDelta(t, 2, p.Transform(glm.Vec4d{0, 0, -2, 1})[3], 1e-15)

	// a wider aspect stretches the x range
	wide := glm.Perspective(glm.Radians(math.Pi/2), 2.0, 1, 10)
	require.InDelta(t, 1, wide.TransformPoint3(glm.Vec3d{2, 0, -1})[0], 1e-12)

	// depth is not linear, the midpoint sits well past ndc zero
	mid := p.TransformPoint3(glm.Vec3d{0, 0, -5.5})
	require.Greater(t, mid[2], 0.5)
	require.Less(t, mid[2], 1.0)
}

func TestOrtho(t *testing.T) {
	t.Parallel()

	o := glm.Ortho(-2.0, 2, -1, 1, 0, 10)

	// the box corners land on the ndc corners, no divide happens
	require.Equal(t, glm.Vec3d{1, 1, 1}, o.TransformPoint3(glm.Vec3d{2, 1, -10}))
	require.Equal(t, glm.Vec3d{-1, -1, -1}, o.TransformPoint3(glm.Vec3d{-2, -1, 0}))
	require.Equal(t, glm.Vec3d{0, 0, -1}, o.TransformPoint3(glm.Vec3d{0, 0, 0}))

	// w stays 1 for any input
	require.InDelta(t, 1, o.Transform(glm.Vec4d{5, -3, 7, 1})[3], 0)

	// parallel projection keeps lateral distances
	a := o.TransformPoint3(glm.Vec3d{0.5, 0, -3})
	b := o.TransformPoint3(glm.Vec3d{1.5, 0, -9})
	require.InDelta(t, 0.5, b[0]-a[0], 1e-15)

	// an off-center box shifts the origin
	shifted := glm.Ortho(0.0, 4, 0, 2, 0, 10)
	requireVec3InDelta(t, glm.Vec3d{-1, -1, -1}, shifted.TransformPoint3(glm.Vec3d{0, 0, 0}), 1e-15)
	requireVec3InDelta(t, glm.Vec3d{0, 0, -1}, shifted.TransformPoint3(glm.Vec3d{2, 1, 0}), 1e-15)
}

func TestLookAt(t *testing.T) {
	t.Parallel()

	eye := glm.Vec3d{0, 0, 5}
	view := glm.LookAt(eye, glm.Vec3d{}, glm.Vec3d{0, 1, 0})

	// the camera position maps to the view space origin
	requireVec3InDelta(t, glm.Vec3d{}, view.TransformPoint3(eye), 0)

	// the look target sits straight ahead on the -z axis
	requireVec3InDelta(t, glm.Vec3d{0, 0, -5}, view.TransformPoint3(glm.Vec3d{}), 0)

	// world x and y keep their orientation for this camera
	requireVec3InDelta(t, glm.Vec3d{1, 0, -5}, view.TransformPoint3(glm.Vec3d{1, 0, 0}), 0)
	requireVec3InDelta(t, glm.Vec3d{0, 1, -5}, view.TransformPoint3(glm.Vec3d{0, 1, 0}), 0)

	// a rigid view transform preserves distances
	rng := newRand()
	off := glm.LookAt(glm.Vec3d{3, -2, 7}, glm.Vec3d{-1, 0.5, 2}, glm.Vec3d{0, 1, 0})
	for range 30 {
		p, q := randVec3(rng), randVec3(rng)
		dist := p.Sub(q).Length()
		require.InDelta(t, dist, off.TransformPoint3(p).Sub(off.TransformPoint3(q)).Length(), 1e-12)
	}

	// the linear block is a proper rotation
	require.InDelta(t, 1, off.Mat3().Det(), 1e-12)
}

func TestViewProjection(t *testing.T) {
	t.Parallel()

	eye := glm.Vec3d{4, 3, 8}
	center := glm.Vec3d{-2, 1, 0}
	vp := glm.Perspective(glm.Radians(1.2), 16.0/9, 0.1, 100).Mul(glm.LookAt(eye, center, glm.Vec3d{0, 1, 0}))

	// the look target projects onto the screen center
	ndc := vp.TransformPoint3(center)
	require.InDelta(t, 0, ndc[0], 1e-12)
	require.InDelta(t, 0, ndc[1], 1e-12)
	require.Greater(t, ndc[2], -1.0)
	require.Less(t, ndc[2], 1.0)

	// points behind the near plane leave the -1..1 depth range
	behind := vp.TransformPoint3(eye.Add(center.Sub(eye).Normalize().Scale(0.01)))
	require.Less(t, behind[2], -1.0)
}

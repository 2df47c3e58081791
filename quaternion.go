package glm

import (
	"github.com/oliverbestmann/glm/approx"
	"github.com/oliverbestmann/glm/scalar"
)

// Quaternion is a rotation in 3d space, stored as the vector part V and the
// scalar part S. Only unit quaternions represent rotations. Constructors
// other than QuatOf and QuatFromSV return unit quaternions, values built
// from raw components must be normalized by the caller before rotating.
//
// A quaternion and its negation apply the same rotation.
type Quaternion[T scalar.Float] struct {
	V Vec3[T]
	S T
}

func IdentityQuat[T scalar.Float]() Quaternion[T] {
	return Quaternion[T]{S: 1}
}

// QuatOf builds a quaternion from raw components, w is the scalar part.
func QuatOf[T scalar.Float](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{S: w, V: Vec3[T]{x, y, z}}
}

// QuatFromSV builds a quaternion from a scalar and a vector part.
func QuatFromSV[T scalar.Float](s T, v Vec3[T]) Quaternion[T] {
	return Quaternion[T]{S: s, V: v}
}

// QuatFromAxisAngle returns the rotation by angle about the axis. The axis
// is normalized internally, a zero length axis yields ErrZeroAxis.
func QuatFromAxisAngle[T scalar.Float](axis Vec3[T], angle Rad[T]) (Quaternion[T], error) {
	if axis.LengthSqr() == 0 {
		return IdentityQuat[T](), ErrZeroAxis
	}

	s, c := angle.Scale(0.5).SinCos()
	return Quaternion[T]{
		S: c,
		V: axis.Normalize().Scale(s),
	}, nil
}

// QuatFromEuler converts a set of fixed axis angles, see Euler.
func QuatFromEuler[T scalar.Float](e Euler[T]) Quaternion[T] {
	return e.Quat()
}

// QuatFromMat3 extracts the rotation from an orthonormal matrix. The branch
// on the largest diagonal element keeps the square root argument away from
// zero. The result for a non-orthonormal matrix is unspecified, repair such
// matrices with Orthonormalize first.
func QuatFromMat3[T scalar.Float](m Mat3[T]) Quaternion[T] {
	if trace := m.Trace(); trace >= 0 {
		ss := scalar.Sqrt(1 + trace)
		w := ss / 2
		ss = T(0.5) / ss
		return QuatOf(w, (m[5]-m[7])*ss, (m[6]-m[2])*ss, (m[1]-m[3])*ss)
	}

	switch {
	case m[0] > m[4] && m[0] > m[8]:
		ss := scalar.Sqrt(m[0] - m[4] - m[8] + 1)
		x := ss / 2
		ss = T(0.5) / ss
		return QuatOf((m[5]-m[7])*ss, x, (m[1]+m[3])*ss, (m[6]+m[2])*ss)

	case m[4] > m[8]:
		ss := scalar.Sqrt(m[4] - m[0] - m[8] + 1)
		y := ss / 2
		ss = T(0.5) / ss
		return QuatOf((m[6]-m[2])*ss, (m[1]+m[3])*ss, y, (m[5]+m[7])*ss)

	default:
		ss := scalar.Sqrt(m[8] - m[0] - m[4] + 1)
		z := ss / 2
		ss = T(0.5) / ss
		return QuatOf((m[1]-m[3])*ss, (m[6]+m[2])*ss, (m[5]+m[7])*ss, z)
	}
}

// QuatBetween returns the shortest arc rotation carrying the direction of
// from onto the direction of to. The inputs need not be unit length, a zero
// length input yields the identity. Antiparallel directions have no unique
// arc, a half turn about an arbitrary perpendicular axis is returned.
func QuatBetween[T scalar.Float](from, to Vec3[T]) Quaternion[T] {
	magAvg := scalar.Sqrt(from.LengthSqr() * to.LengthSqr())
	dot := from.Dot(to)
	eps := scalar.Epsilon[T]() * 4

	switch {
	case approx.EqualRel(dot, magAvg, eps):
		return IdentityQuat[T]()

	case approx.EqualRel(dot, -magAvg, eps):
		axis := UnitXVec3[T]().Cross(from)
		if approx.Zero(axis.LengthSqr(), eps) {
			axis = UnitYVec3[T]().Cross(from)
		}
		// half turn about a perpendicular axis
		return Quaternion[T]{V: axis.Normalize()}

	default:
		return QuatFromSV(magAvg+dot, from.Cross(to)).Normalize()
	}
}

// QuatLookTo returns the rotation carrying the direction dir to the +z
// axis, with up resolving the roll about dir. Fails with ErrDegenerateLook
// when dir has zero length or up is colinear with dir.
func QuatLookTo[T scalar.Float](dir, up Vec3[T]) (Quaternion[T], error) {
	m, err := LookToMat3(dir, up)
	if err != nil {
		return IdentityQuat[T](), err
	}
	return QuatFromMat3(m), nil
}

func (lhs Quaternion[T]) Add(rhs Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		S: lhs.S + rhs.S,
		V: lhs.V.Add(rhs.V),
	}
}

func (lhs Quaternion[T]) Sub(rhs Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		S: lhs.S - rhs.S,
		V: lhs.V.Sub(rhs.V),
	}
}

func (lhs Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{
		S: -lhs.S,
		V: lhs.V.Neg(),
	}
}

func (lhs Quaternion[T]) MulScalar(s T) Quaternion[T] {
	return Quaternion[T]{
		S: lhs.S * s,
		V: lhs.V.Scale(s),
	}
}

// Mul is the Hamilton product. The product applies rhs first and lhs
// second, matching matrix multiplication order.
func (lhs Quaternion[T]) Mul(rhs Quaternion[T]) Quaternion[T] {
	return QuatOf(
		lhs.S*rhs.S-lhs.V[0]*rhs.V[0]-lhs.V[1]*rhs.V[1]-lhs.V[2]*rhs.V[2],
		lhs.S*rhs.V[0]+lhs.V[0]*rhs.S+lhs.V[1]*rhs.V[2]-lhs.V[2]*rhs.V[1],
		lhs.S*rhs.V[1]+lhs.V[1]*rhs.S+lhs.V[2]*rhs.V[0]-lhs.V[0]*rhs.V[2],
		lhs.S*rhs.V[2]+lhs.V[2]*rhs.S+lhs.V[0]*rhs.V[1]-lhs.V[1]*rhs.V[0],
	)
}

func (lhs Quaternion[T]) Dot(rhs Quaternion[T]) T {
	return lhs.S*rhs.S + lhs.V.Dot(rhs.V)
}

func (lhs Quaternion[T]) Length() T {
	return scalar.Sqrt(lhs.Dot(lhs))
}

func (lhs Quaternion[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

// Normalize scales lhs to unit length. The zero quaternion normalizes to
// NaN components, callers must guard.
func (lhs Quaternion[T]) Normalize() Quaternion[T] {
	return lhs.MulScalar(1 / lhs.Length())
}

// Conjugate negates the vector part. For unit quaternions this is the
// inverse rotation.
func (lhs Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{
		S: lhs.S,
		V: lhs.V.Neg(),
	}
}

// Invert returns the multiplicative inverse, the conjugate divided by the
// squared length. Prefer Conjugate when lhs is known to be unit length.
func (lhs Quaternion[T]) Invert() Quaternion[T] {
	return lhs.Conjugate().MulScalar(1 / lhs.LengthSqr())
}

// Identity returns the identity rotation.
func (Quaternion[T]) Identity() Quaternion[T] {
	return IdentityQuat[T]()
}

// Rotate applies the rotation to a vector without building the full
// conjugation product.
func (lhs Quaternion[T]) Rotate(rhs Vec3[T]) Vec3[T] {
	tmp := lhs.V.Cross(rhs).Add(rhs.Scale(lhs.S))
	return lhs.V.Cross(tmp).Scale(2).Add(rhs)
}

// Mat3 converts to the rotation matrix applying the same rotation. lhs must
// be unit length.
func (lhs Quaternion[T]) Mat3() Mat3[T] {
	x2 := lhs.V[0] + lhs.V[0]
	y2 := lhs.V[1] + lhs.V[1]
	z2 := lhs.V[2] + lhs.V[2]

	xx2 := x2 * lhs.V[0]
	xy2 := x2 * lhs.V[1]
	xz2 := x2 * lhs.V[2]

	yy2 := y2 * lhs.V[1]
	yz2 := y2 * lhs.V[2]
	zz2 := z2 * lhs.V[2]

	sy2 := y2 * lhs.S
	sz2 := z2 * lhs.S
	sx2 := x2 * lhs.S

	return Mat3[T]{
		1 - yy2 - zz2, xy2 + sz2, xz2 - sy2,
		xy2 - sz2, 1 - xx2 - zz2, yz2 + sx2,
		xz2 + sy2, yz2 - sx2, 1 - xx2 - yy2,
	}
}

// Mat4 converts to the homogeneous rotation matrix. lhs must be unit
// length.
func (lhs Quaternion[T]) Mat4() Mat4[T] {
	return Mat4FromQuaternion(lhs)
}

// Euler extracts the fixed axis angles that rebuild lhs via Euler.Quat.
// Near the poles of the middle rotation the x and z angles degenerate into
// a single degree of freedom, the x angle is reported as zero there.
func (lhs Quaternion[T]) Euler() Euler[T] {
	qw, qx, qy, qz := lhs.S, lhs.V[0], lhs.V[1], lhs.V[2]

	sqx := qx * qx
	sqy := qy * qy
	sqz := qz * qz
	sqw := qw * qw

	unit := sqx + sqy + sqz + sqw
	test := qx*qz + qy*qw

	const sig = 0.499

	switch {
	case test > sig*unit:
		return Euler[T]{
			X: Radians[T](0),
			Y: Radians(scalar.Pi[T]() / 2),
			Z: Atan2(qx, qw).Scale(2),
		}

	case test < -sig*unit:
		return Euler[T]{
			X: Radians[T](0),
			Y: Radians(-scalar.Pi[T]() / 2),
			Z: Atan2(qx, qw).Scale(-2),
		}

	default:
		return Euler[T]{
			X: Atan2(2*(qx*qw-qy*qz), 1-2*(sqx+sqy)),
			Y: Asin(2 * (qx*qz + qy*qw)),
			Z: Atan2(2*(qz*qw-qx*qy), 1-2*(sqy+sqz)),
		}
	}
}

// Nlerp interpolates by blending the components and normalizing. It is
// cheap and keeps a constant blend speed, but the angular speed is not
// constant along the arc.
//
// A quaternion and its negation apply the same rotation but interpolate
// along different arcs, rhs is negated when needed so the short arc wins.
func (lhs Quaternion[T]) Nlerp(rhs Quaternion[T], t T) Quaternion[T] {
	if lhs.Dot(rhs) < 0 {
		rhs = rhs.Neg()
	}

	return lhs.MulScalar(1 - t).Add(rhs.MulScalar(t)).Normalize()
}

// Slerp interpolates along the arc with constant angular speed. Both
// operands must be unit length. Like Nlerp it negates rhs when the dot
// product is negative, so interpolation takes the short arc. Nearly
// aligned quaternions fall back to Nlerp, the sine weights degenerate
// there.
func (lhs Quaternion[T]) Slerp(rhs Quaternion[T], t T) Quaternion[T] {
	const dotThreshold = 0.9995

	dot := lhs.Dot(rhs)
	if dot < 0 {
		rhs = rhs.Neg()
		dot = -dot
	}

	if dot > dotThreshold {
		return lhs.Nlerp(rhs, t)
	}

	theta := scalar.Acos(scalar.Clamp(dot, -1, 1))
	scale1 := scalar.Sin(theta * (1 - t))
	scale2 := scalar.Sin(theta * t)

	return lhs.MulScalar(scale1).Add(rhs.MulScalar(scale2)).Normalize()
}

// IsFinite reports whether no component is NaN or an infinity.
func (lhs Quaternion[T]) IsFinite() bool {
	return scalar.IsFinite(lhs.S) && lhs.V.IsFinite()
}

// ApproxEqual compares component-wise within eps. Note that a quaternion
// and its negation compare unequal even though they apply the same
// rotation, use Equiv for that.
func (lhs Quaternion[T]) ApproxEqual(rhs Quaternion[T], eps T) bool {
	return approx.Equal(lhs.S, rhs.S, eps) && lhs.V.ApproxEqual(rhs.V, eps)
}

// Equiv reports whether both quaternions apply the same rotation, treating
// a quaternion and its negation as equal.
func (lhs Quaternion[T]) Equiv(rhs Quaternion[T], eps T) bool {
	return lhs.ApproxEqual(rhs, eps) || lhs.ApproxEqual(rhs.Neg(), eps)
}

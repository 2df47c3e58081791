package glm

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]
type Vec4f = Vec4[float32]

type Vec2d = Vec2[float64]
type Vec3d = Vec3[float64]
type Vec4d = Vec4[float64]

type Mat2f = Mat2[float32]
type Mat3f = Mat3[float32]
type Mat4f = Mat4[float32]

type Mat2d = Mat2[float64]
type Mat3d = Mat3[float64]
type Mat4d = Mat4[float64]

type Radf = Rad[float32]
type Radd = Rad[float64]

type Degf = Deg[float32]
type Degd = Deg[float64]

type Quatf = Quaternion[float32]
type Quatd = Quaternion[float64]

type Eulerf = Euler[float32]
type Eulerd = Euler[float64]

type Basis2f = Basis2[float32]
type Basis3f = Basis3[float32]

type Basis2d = Basis2[float64]
type Basis3d = Basis3[float64]

type Decomposed2f = Decomposed2[float32, Basis2f]
type Decomposed3f = Decomposed3[float32, Quatf]

type Decomposed2d = Decomposed2[float64, Basis2d]
type Decomposed3d = Decomposed3[float64, Quatd]

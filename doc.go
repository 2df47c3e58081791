// Package glm implements the linear algebra needed by real time graphics
// and simulation code: vectors, matrices, typed angles, quaternions and
// decomposed affine transforms, generic over float32 and float64.
//
// All types are small value types on flat arrays, cheap to copy and free of
// hidden state. Operations return new values, nothing mutates in place.
// Matrices store their elements column-major, so they can be handed to GPU
// apis directly via Columns.
//
// Rotation representations, Quaternion, Basis2 and Basis3, share the
// Rotation2 and Rotation3 interfaces and convert into each other. Products
// compose right to left: in a.Mul(b), b applies to a vector first.
//
// Angles are typed as Rad and Deg. Functions taking angles accept Rad only,
// converting a Deg explicitly via Rad keeps accidental degree values out of
// trigonometric code.
package glm

// Package transform implements a homogeneous-coordinate transformation
// algebra over 4×4 matrices.
//
// Convention: matrices are row-major and act on column vectors, so the
// translation occupies M[0][3], M[1][3], M[2][3] and (A∘B)(x) = A(B(x)) is the
// product A·B. The bottom row is [0 0 0 1] unless a perspective component is
// present.
//
// The package is organized leaf-first:
//
//	Mat4        fixed-size kernel: identity, product, transpose, determinant, inverse
//	Decompose   factor any matrix into scale, shear, rotation, translation, perspective
//	Transform   the value owning one Mat4, with composition, inversion and frame factories
//	families    Scale, Shear, Rotation, Translation, Projection: canonical
//	            factories plus round-trip validation of arbitrary matrices
//
// All operations are pure value computations with no shared mutable state.
// Decomposed components are never cached on a Transform; they are recomputed
// from the matrix on every call.
package transform

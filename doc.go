// Package xform is a small algebra of 3D homogeneous transforms: 4×4
// matrices that scale, shear, rotate, translate and project points, and the
// machinery to compose, invert and take them apart again.
//
// 🚀 What is in xform?
//
//	• Fixed 4×4 kernel: identity, product, transpose, closed-form determinant & inverse
//	• Decomposition: any matrix → scale, shear, Euler angles, translation, perspective
//	• Transform: one value type with composition, inversion, element access, equality
//	• Frames: from_frame, frame-to-frame and change-of-basis transforms
//	• Families: Scale, Shear, Rotation, Translation, Projection with validation
//	• Records: flat {matrix: [[...]]} documents in JSON and YAML
//
// ✨ Conventions
//
//   - Row-major storage, column vectors: translation lives in column 3.
//   - (A∘B)(x) = A(B(x)) is the product A·B; the right operand acts first.
//   - Euler angles are static-axes XYZ: R = Rz(γ)·Ry(β)·Rx(α).
//
// Packages:
//
//	matrix/     — general row-major Dense kernel: Mul, Transpose, LU, Determinant, Inverse
//	transform/  — Mat4, Decompose, Frame, Transform, constrained families, records
//	cmd/xform/  — command-line front end (decompose, compose, invert, basis, check)
//
// Quick example (scale ×2 along y around a frame at (2,5,0)):
//
//	(2, 5, 0)  → (2, 5, 0)    origin stays put
//	(2, 10, 0) → (2, 15, 0)   5 units out becomes 10
//
//	go get github.com/katalvlaran/xform/transform
package xform

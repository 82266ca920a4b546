// Package matrix is the general small-matrix kernel used by the transform
// algebra.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over 2-D float64 storage, and Dense, its
//     row-major implementation with bounds-checked At/Set.
//   - Mul, Transpose and MatVec for arbitrary (including non-square) shapes,
//     failing with ErrDimensionMismatch on incompatible operands.
//   - Determinant and Inverse built on an internal LU factorization with
//     partial pivoting, all in O(n³).
//   - NewDenseWithOptions, for storage that accepts non-finite entries when
//     built with WithNoValidateNaNInf.
//
// Fixed 4×4 homogeneous matrices live in package transform, which converts
// to and from Dense when it needs the general kernel.
package matrix

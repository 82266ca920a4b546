// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, matrix-vector product, and the LU-based
// determinant and inverse. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used by the transform algebra.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every factorization here is O(n³). Cofactor expansion is reserved for the
//     fixed 4×4 case in package transform.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exactly zero pivot.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opMatVec      = "MatVec"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b as a new Dense.
// Non-Dense operands are first copied into row-major scratch storage, so a
// single i→k→j kernel serves every Matrix implementation. The result does not
// validate NaN/Inf: IEEE propagation of the operands is preserved.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Rows.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := da.r, da.c, db.c
	out, err := newDenseWithPolicy(r, c, false)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		dst := out.data[i*c : (i+1)*c]
		for k = 0; k < n; k++ {
			aik = da.data[i*n+k]
			src := db.data[k*c : (k+1)*c]
			for j = range dst {
				dst[j] += aik * src[j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ as a new Dense; m is not modified.
// Errors: ErrNilMatrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out, err := newDenseWithPolicy(d.c, d.r, d.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for idx, v := range d.data {
		out.data[(idx%d.c)*d.r+idx/d.c] = v
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Determinant returns det(m) as the signed product of the LU pivots.
// A matrix with an exactly zero pivot column has determinant 0 (no error).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare/ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	f, err := factorize(m, ZeroPivot)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if f.singular {
		return 0, nil
	}

	n := f.lu.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}

	return det, nil
}

// Inverse computes A^{-1} by LU with partial pivoting and n triangular solves.
// The input must be non-nil and square. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: validate and factorize (P·A = L·U).
//   - Stage 2: for each canonical basis column e_col, forward solve L·y = P·e_col
//     then backward solve U·x = y, and write x into column col.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare/ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	f, err := factorize(m, o.eps)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if f.singular {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := f.lu.r
	inv, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		base      int
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
		lu        = f.lu.data
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			base = i * n
			for k = 0; k < i; k++ {
				sum += lu[base+k] * y[k]
			}
			if f.perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += lu[base+k] * x[k]
			}
			x[i] = (y[i] - sum) / lu[base+i]
		}
		for i = 0; i < n; i++ {
			if o.validateNaNInf && (math.IsNaN(x[i]) || math.IsInf(x[i], 0)) {
				return nil, matrixErrorf(opInverse, ErrNaNInf)
			}
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// luFactor is the compact result of factorize (P·A = L·U): L below the diagonal (unit
// diagonal implied), U on and above it.
type luFactor struct {
	lu       *Dense
	perm     []int
	sign     float64 // +1/-1 parity of perm
	singular bool
}

// factorize runs in-place Doolittle elimination with partial pivoting on a copy of m.
// A pivot p is rejected when |p| <= eps*scale, scale being the largest |a_ij|.
// Elimination stops at the first rejected pivot and reports singular.
func factorize(m Matrix, eps float64) (luFactor, error) {
	a, err := denseOf(m)
	if err != nil {
		return luFactor{}, err
	}
	a = a.Clone().(*Dense)
	n := a.r

	scale := 0.0
	for _, v := range a.data {
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	tol := eps * scale

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var i, j, k, p int
	var maxAbs, pivot, factor float64
	for k = 0; k < n; k++ {
		// Choose the pivot row.
		p, maxAbs = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs == ZeroPivot || maxAbs <= tol {
			return luFactor{lu: a, perm: perm, sign: sign, singular: true}, nil
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		pivot = a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / pivot
			a.data[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j]
			}
		}
	}

	return luFactor{lu: a, perm: perm, sign: sign}, nil
}

// denseOf returns m itself when it is a *Dense, otherwise a Dense copy read via At.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := newDenseWithPolicy(rows, cols, false)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// SPDX-License-Identifier: MIT

// Package transform - fixed 4×4 kernel.
//
// Purpose:
//   - Value-typed 4×4 matrix: assignment copies the whole array, so two
//     Mat4 values never share storage.
//   - Closed-form cofactor determinant and adjugate inverse (fixed size,
//     O(1)); general N×N work is delegated to package matrix (LU, O(n³)).
//
// Complexity quicksheet:
//   - Mul: 64 multiply-adds; Determinant: 12 2×2 minors; Inverse: minors + 16 cofactors.

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/xform/matrix"
)

// Size is the fixed dimension of a homogeneous 3D transform.
const Size = 4

// Tolerance is the absolute elementwise tolerance used by equality and by
// family round-trip validation.
const Tolerance = 1e-5

// SingularTolerance is the relative determinant threshold for Inverse:
// |det| <= SingularTolerance * Π‖row_i‖ is treated as singular. The row-norm
// product is Hadamard's bound on |det|, which keeps the test scale-invariant.
const SingularTolerance = 1e-9

// Mat4 is a row-major 4×4 matrix: Mat4[i][j] is row i, column j.
type Mat4 [Size][Size]float64

// Identity4 returns the 4×4 identity.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the product a·b.
// Applied to a column vector, b acts first and a second.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	var i, j, k int
	var sum float64
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			sum = 0
			for k = 0; k < Size; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// MulVec returns a·v for a homogeneous column vector v.
func (a Mat4) MulVec(v [Size]float64) [Size]float64 {
	var out [Size]float64
	for i := 0; i < Size; i++ {
		out[i] = a[i][0]*v[0] + a[i][1]*v[1] + a[i][2]*v[2] + a[i][3]*v[3]
	}

	return out
}

// Transpose returns aᵀ.
func (a Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[j][i] = a[i][j]
		}
	}

	return out
}

// minors holds the twelve 2×2 minors shared by Determinant and Inverse:
// s* from rows 0-1, c* from rows 2-3.
type minors struct {
	s0, s1, s2, s3, s4, s5 float64
	c0, c1, c2, c3, c4, c5 float64
}

func (a *Mat4) minors() minors {
	return minors{
		s0: a[0][0]*a[1][1] - a[1][0]*a[0][1],
		s1: a[0][0]*a[1][2] - a[1][0]*a[0][2],
		s2: a[0][0]*a[1][3] - a[1][0]*a[0][3],
		s3: a[0][1]*a[1][2] - a[1][1]*a[0][2],
		s4: a[0][1]*a[1][3] - a[1][1]*a[0][3],
		s5: a[0][2]*a[1][3] - a[1][2]*a[0][3],

		c5: a[2][2]*a[3][3] - a[3][2]*a[2][3],
		c4: a[2][1]*a[3][3] - a[3][1]*a[2][3],
		c3: a[2][1]*a[3][2] - a[3][1]*a[2][2],
		c2: a[2][0]*a[3][3] - a[3][0]*a[2][3],
		c1: a[2][0]*a[3][2] - a[3][0]*a[2][2],
		c0: a[2][0]*a[3][1] - a[3][0]*a[2][1],
	}
}

func (m minors) det() float64 {
	return m.s0*m.c5 - m.s1*m.c4 + m.s2*m.c3 + m.s3*m.c2 - m.s4*m.c1 + m.s5*m.c0
}

// Determinant returns det(a) by cofactor (Laplace) expansion over 2×2 minors.
func (a Mat4) Determinant() float64 {
	return a.minors().det()
}

// rowNormProduct returns Π‖row_i‖, Hadamard's upper bound on |det(a)|.
func (a *Mat4) rowNormProduct() float64 {
	p := 1.0
	for i := 0; i < Size; i++ {
		p *= math.Sqrt(a[i][0]*a[i][0] + a[i][1]*a[i][1] + a[i][2]*a[i][2] + a[i][3]*a[i][3])
	}

	return p
}

// Inverse returns a⁻¹ as adjugate / determinant.
// Errors: ErrSingular when |det| <= SingularTolerance * Π‖row_i‖.
func (a Mat4) Inverse() (Mat4, error) {
	m := a.minors()
	det := m.det()
	bound := a.rowNormProduct()
	if bound == 0 || math.IsNaN(det) || math.Abs(det) <= SingularTolerance*bound {
		return Mat4{}, transformErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}
	inv := 1 / det

	return Mat4{
		{
			(a[1][1]*m.c5 - a[1][2]*m.c4 + a[1][3]*m.c3) * inv,
			(-a[0][1]*m.c5 + a[0][2]*m.c4 - a[0][3]*m.c3) * inv,
			(a[3][1]*m.s5 - a[3][2]*m.s4 + a[3][3]*m.s3) * inv,
			(-a[2][1]*m.s5 + a[2][2]*m.s4 - a[2][3]*m.s3) * inv,
		},
		{
			(-a[1][0]*m.c5 + a[1][2]*m.c2 - a[1][3]*m.c1) * inv,
			(a[0][0]*m.c5 - a[0][2]*m.c2 + a[0][3]*m.c1) * inv,
			(-a[3][0]*m.s5 + a[3][2]*m.s2 - a[3][3]*m.s1) * inv,
			(a[2][0]*m.s5 - a[2][2]*m.s2 + a[2][3]*m.s1) * inv,
		},
		{
			(a[1][0]*m.c4 - a[1][1]*m.c2 + a[1][3]*m.c0) * inv,
			(-a[0][0]*m.c4 + a[0][1]*m.c2 - a[0][3]*m.c0) * inv,
			(a[3][0]*m.s4 - a[3][1]*m.s2 + a[3][3]*m.s0) * inv,
			(-a[2][0]*m.s4 + a[2][1]*m.s2 - a[2][3]*m.s0) * inv,
		},
		{
			(-a[1][0]*m.c3 + a[1][1]*m.c1 - a[1][2]*m.c0) * inv,
			(a[0][0]*m.c3 - a[0][1]*m.c1 + a[0][2]*m.c0) * inv,
			(-a[3][0]*m.s3 + a[3][1]*m.s1 - a[3][2]*m.s0) * inv,
			(a[2][0]*m.s3 - a[2][1]*m.s1 + a[2][2]*m.s0) * inv,
		},
	}, nil
}

// ApproxEqual reports whether every |a_ij - b_ij| <= tol.
// NaN entries never compare equal.
func (a Mat4) ApproxEqual(b Mat4, tol float64) bool {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if !(math.Abs(a[i][j]-b[i][j]) <= tol) {
				return false
			}
		}
	}

	return true
}

// Flatten returns the 16 entries in row-major order; translation lands at
// indices 3, 7 and 11.
func (a Mat4) Flatten() []float64 {
	out := make([]float64, 0, Size*Size)
	for i := 0; i < Size; i++ {
		out = append(out, a[i][:]...)
	}

	return out
}

// RowSlices returns the matrix as freshly allocated [][]float64 rows.
func (a Mat4) RowSlices() [][]float64 {
	out := make([][]float64, Size)
	for i := 0; i < Size; i++ {
		row := make([]float64, Size)
		copy(row, a[i][:])
		out[i] = row
	}

	return out
}

// Mat4FromList unflattens 16 row-major numbers.
// Errors: ErrDimensionMismatch when len(nums) != 16.
func Mat4FromList(nums []float64) (Mat4, error) {
	if len(nums) != Size*Size {
		return Mat4{}, transformErrorf(opFromList, fmt.Errorf("got %d numbers, want %d: %w", len(nums), Size*Size, ErrDimensionMismatch))
	}
	var out Mat4
	for i := 0; i < Size; i++ {
		copy(out[i][:], nums[i*Size:(i+1)*Size])
	}

	return out, nil
}

// Mat4FromRows copies a 4×4 [][]float64.
// Errors: ErrDimensionMismatch unless there are exactly 4 rows of 4 numbers.
func Mat4FromRows(rows [][]float64) (Mat4, error) {
	if len(rows) != Size {
		return Mat4{}, transformErrorf(opFromRows, fmt.Errorf("got %d rows, want %d: %w", len(rows), Size, ErrDimensionMismatch))
	}
	var out Mat4
	for i, row := range rows {
		if len(row) != Size {
			return Mat4{}, transformErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), Size, ErrDimensionMismatch))
		}
		copy(out[i][:], row)
	}

	return out, nil
}

// Dense converts to the general kernel's row-major Dense. Entries are copied
// as-is, non-finite values included.
func (a Mat4) Dense() *matrix.Dense {
	d, _ := matrix.NewDenseWithOptions(Size, Size, matrix.WithNoValidateNaNInf())
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			_ = d.Set(i, j, a[i][j]) // in bounds, policy accepts any value
		}
	}

	return d
}

// Mat4FromMatrix copies a general 4×4 Matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch for any other shape.
func Mat4FromMatrix(m matrix.Matrix) (Mat4, error) {
	if err := matrix.ValidateShape(m, Size, Size); err != nil {
		return Mat4{}, transformErrorf(opFromMatrix, err)
	}
	var out Mat4
	var err error
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return Mat4{}, transformErrorf(opFromMatrix, err)
			}
		}
	}

	return out, nil
}

// String renders the matrix one row per line.
func (a Mat4) String() string {
	return fmt.Sprintf("[%g %g %g %g]\n[%g %g %g %g]\n[%g %g %g %g]\n[%g %g %g %g]",
		a[0][0], a[0][1], a[0][2], a[0][3],
		a[1][0], a[1][1], a[1][2], a[1][3],
		a[2][0], a[2][1], a[2][2], a[2][3],
		a[3][0], a[3][1], a[3][2], a[3][3])
}

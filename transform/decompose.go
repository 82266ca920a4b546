// SPDX-License-Identifier: MIT

// Package transform - Decomposition Engine.
//
// Purpose:
//   - Factor an arbitrary homogeneous matrix M into
//     M ≅ P · T · R · Sh · S
//     (projection, translation, rotation, shear, scale), where ≅ is equality
//     after normalizing M[3][3] to 1.
//
// Convention notes:
//   - Column vectors act on the right, so the linear part is L = R·Sh·S and
//     its COLUMNS are R applied to the columns of the upper-triangular Sh·S.
//     Gram-Schmidt therefore runs over the columns of L; running it over the
//     rows would factor Lᵀ instead and break the round trip for any
//     asymmetric shear.
//   - Shear factors are stored normalized by the scale that follows them,
//     so ShearMatrix(shear) is the exact unit-triangular factor.
//   - Reflections: when det(L) < 0, scale.x and the first rotation column
//     are negated (and shear.xy, shear.xz with them, to keep R·Sh·S = L).

package transform

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/xform/matrix"
)

// degenerateTolerance is the relative size below which a basis length, the
// homogeneous weight or a pivot counts as zero. It is always scaled by the
// magnitude of the input, so uniformly small matrices decompose as well as
// unit-sized ones.
const degenerateTolerance = 1e-12

// Components are the factors recovered by Decompose.
type Components struct {
	Scale       [3]float64 // per-axis scale; Scale[0] carries the reflection sign
	Shear       [3]float64 // [xy, xz, yz]
	Angles      [3]float64 // static-axes XYZ Euler angles, radians
	Translation [3]float64
	Perspective [4]float64 // bottom row of the projection factor; [0 0 0 1] if affine
}

// Compose rebuilds P · T · R · Sh · S from c.
func Compose(c Components) Mat4 {
	return ProjectionMatrix(c.Perspective).
		Mul(TranslationMatrix(c.Translation)).
		Mul(RotationMatrix(c.Angles)).
		Mul(ShearMatrix(c.Shear)).
		Mul(ScaleMatrix(c.Scale))
}

// Decompose factors m into scale, shear, rotation, translation and perspective.
// Implementation:
//   - Stage 1: normalize by M[3][3]; split off perspective p = m₃ · A⁻¹,
//     A being m with its bottom row reset to [0 0 0 1]. p is computed in the
//     general kernel as A⁻ᵀ · m₃ᵀ.
//   - Stage 2: translation is column 3, rows 0..2.
//   - Stage 3: Gram-Schmidt over the columns c0, c1, c2 of the linear part,
//     collecting scale and shear.
//   - Stage 4: fix handedness from det[c0 c1 c2], then read Euler angles from
//     the orthonormal basis.
//
// Errors:
//   - ErrSingular when M[3][3] is zero relative to the largest entry, a basis
//     column collapses relative to the longest input column, or the affine
//     part is singular while perspective is present.
func Decompose(m Mat4) (Components, error) {
	var c Components

	// Stage 1: homogeneous normalization and perspective.
	w := m[3][3]
	if !(math.Abs(w) > degenerateTolerance*maxAbs(m)) {
		return c, transformErrorf(opDecompose, fmt.Errorf("M[3][3]=%g: %w", w, ErrSingular))
	}
	var n Mat4
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			n[i][j] = m[i][j] / w
		}
	}

	c.Perspective = [4]float64{0, 0, 0, 1}
	ptol := degenerateTolerance * maxAbs(n)
	if math.Abs(n[3][0]) > ptol || math.Abs(n[3][1]) > ptol || math.Abs(n[3][2]) > ptol {
		p, err := perspectiveRow(n)
		if err != nil {
			return Components{}, transformErrorf(opDecompose, err)
		}
		c.Perspective = p
	}

	// Stage 2: translation.
	c.Translation = [3]float64{n[0][3], n[1][3], n[2][3]}

	// Stage 3: Gram-Schmidt over the columns of the linear part.
	c0 := mgl64.Vec3{n[0][0], n[1][0], n[2][0]}
	c1 := mgl64.Vec3{n[0][1], n[1][1], n[2][1]}
	c2 := mgl64.Vec3{n[0][2], n[1][2], n[2][2]}
	tol := degenerateTolerance * math.Max(c0.Len(), math.Max(c1.Len(), c2.Len()))

	sx := c0.Len()
	if !(sx > tol) {
		return Components{}, transformErrorf(opDecompose, fmt.Errorf("x basis: %w", ErrSingular))
	}
	c0 = c0.Mul(1 / sx)

	xy := c0.Dot(c1)
	c1 = c1.Sub(c0.Mul(xy))
	sy := c1.Len()
	if !(sy > tol) {
		return Components{}, transformErrorf(opDecompose, fmt.Errorf("y basis: %w", ErrSingular))
	}
	c1 = c1.Mul(1 / sy)
	xy /= sy

	xz := c0.Dot(c2)
	c2 = c2.Sub(c0.Mul(xz))
	yz := c1.Dot(c2)
	c2 = c2.Sub(c1.Mul(yz))
	sz := c2.Len()
	if !(sz > tol) {
		return Components{}, transformErrorf(opDecompose, fmt.Errorf("z basis: %w", ErrSingular))
	}
	c2 = c2.Mul(1 / sz)
	xz /= sz
	yz /= sz

	// Stage 4: handedness, then angles.
	basis := Mat4{
		{c0[0], c1[0], c2[0], 0},
		{c0[1], c1[1], c2[1], 0},
		{c0[2], c1[2], c2[2], 0},
		{0, 0, 0, 1},
	}
	det, err := matrix.Determinant(basis.Dense())
	if err != nil {
		return Components{}, transformErrorf(opDecompose, err)
	}
	if det < 0 {
		sx = -sx
		c0 = c0.Mul(-1)
		xy, xz = -xy, -xz
		basis[0][0], basis[1][0], basis[2][0] = c0[0], c0[1], c0[2]
	}

	c.Scale = [3]float64{sx, sy, sz}
	c.Shear = [3]float64{xy, xz, yz}
	c.Angles = EulerAngles(basis)

	return c, nil
}

// perspectiveRow solves p · A = n₃ for p, A being n with its bottom row reset.
func perspectiveRow(n Mat4) ([4]float64, error) {
	var p [4]float64
	affine := n
	affine[3] = [4]float64{0, 0, 0, 1}

	inv, err := matrix.Inverse(affine.Dense(), matrix.WithEpsilon(degenerateTolerance))
	if err != nil {
		return p, err
	}
	invT, err := matrix.Transpose(inv)
	if err != nil {
		return p, err
	}
	y, err := matrix.MatVec(invT, n[3][:])
	if err != nil {
		return p, err
	}
	copy(p[:], y)

	return p, nil
}

// maxAbs returns the largest |m_ij|.
func maxAbs(m Mat4) float64 {
	var out float64
	for i := range m {
		for _, v := range m[i] {
			if av := math.Abs(v); av > out {
				out = av
			}
		}
	}

	return out
}

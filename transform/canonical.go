// SPDX-License-Identifier: MIT

package transform

import "math"

// gimbalTolerance bounds cos(β) below which the static-XYZ extraction treats
// the orientation as gimbal-locked.
const gimbalTolerance = 1e-9

// ScaleMatrix returns diag(f[0], f[1], f[2], 1).
func ScaleMatrix(f [3]float64) Mat4 {
	m := Identity4()
	m[0][0], m[1][1], m[2][2] = f[0], f[1], f[2]

	return m
}

// ShearMatrix returns the unit upper-triangular shear with entries
// [xy, xz, yz] at M[0][1], M[0][2], M[1][2].
func ShearMatrix(sh [3]float64) Mat4 {
	m := Identity4()
	m[0][1], m[0][2], m[1][2] = sh[0], sh[1], sh[2]

	return m
}

// TranslationMatrix returns the identity with v in column 3.
func TranslationMatrix(v [3]float64) Mat4 {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = v[0], v[1], v[2]

	return m
}

// ProjectionMatrix returns the identity with p as the bottom row.
func ProjectionMatrix(p [4]float64) Mat4 {
	m := Identity4()
	m[3] = p

	return m
}

// RotationMatrix returns the rotation for static-axes XYZ Euler angles
// (α about x first, then β about y, then γ about z, all fixed world axes):
// R = Rz(γ)·Ry(β)·Rx(α).
func RotationMatrix(angles [3]float64) Mat4 {
	sa, ca := math.Sincos(angles[0])
	sb, cb := math.Sincos(angles[1])
	sc, cc := math.Sincos(angles[2])

	return Mat4{
		{cb * cc, sa*sb*cc - ca*sc, ca*sb*cc + sa*sc, 0},
		{cb * sc, sa*sb*sc + ca*cc, ca*sb*sc - sa*cc, 0},
		{-sb, sa * cb, ca * cb, 0},
		{0, 0, 0, 1},
	}
}

// EulerAngles extracts static-axes XYZ angles from the upper-left 3×3 of r,
// which must be a proper rotation. β lies in [-π/2, π/2]. At gimbal lock
// (|cos β| below gimbalTolerance) γ is pinned to 0 and α absorbs the
// remaining rotation about the locked axis.
func EulerAngles(r Mat4) [3]float64 {
	cb := math.Hypot(r[0][0], r[1][0])
	b := math.Atan2(-r[2][0], cb)
	if cb > gimbalTolerance {
		return [3]float64{
			math.Atan2(r[2][1], r[2][2]),
			b,
			math.Atan2(r[1][0], r[0][0]),
		}
	}

	// R[1][2] = -sin(α∓γ) and R[1][1] = cos(α∓γ) for β = ±π/2.
	return [3]float64{math.Atan2(-r[1][2], r[1][1]), b, 0}
}

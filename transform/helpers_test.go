// SPDX-License-Identifier: MIT
// Package transform_test contains shared fixtures for the transform tests.

package transform_test

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/xform/transform"
	"github.com/stretchr/testify/require"
)

// approx compares float slices and arrays within an absolute margin.
var approx = cmpopts.EquateApprox(0, 1e-9)

// requireMat asserts want and got agree elementwise within tol.
func requireMat(t testing.TB, want, got transform.Mat4, tol float64) {
	t.Helper()
	require.Truef(t, want.ApproxEqual(got, tol), "want\n%s\ngot\n%s", want, got)
}

// requireVec asserts two vectors agree componentwise within 1e-9.
func requireVec(t testing.TB, want, got mgl64.Vec3) {
	t.Helper()
	require.Empty(t, cmp.Diff(want, got, approx))
}

// randomFrame builds an orthonormal frame from seeded random vectors.
func randomFrame(t testing.TB, rng *rand.Rand) transform.Frame {
	t.Helper()
	v := func() mgl64.Vec3 {
		return mgl64.Vec3{2*rng.Float64() - 1, 2*rng.Float64() - 1, 2*rng.Float64() - 1}
	}
	f, err := transform.NewFrame(v().Mul(10), v(), v())
	require.NoError(t, err)

	return f
}

// sample is a general affine matrix with every component populated.
func sample() transform.Components {
	return transform.Components{
		Scale:       [3]float64{0.123, 2, 0.5},
		Shear:       [3]float64{0.3, -0.2, 0.5},
		Angles:      [3]float64{-2.142, 1.141, -0.142},
		Translation: [3]float64{1, 2, 3},
		Perspective: [4]float64{0, 0, 0, 1},
	}
}

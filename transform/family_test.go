// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/xform/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleFromFactors(t *testing.T) {
	t.Parallel()

	s, err := transform.ScaleFromFactors([3]float64{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, transform.KindScale, s.Kind())
	requireMat(t, transform.Mat4{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 1},
	}, s.Matrix(), 0)
}

func TestScaleFromFactors_InFrame(t *testing.T) {
	t.Parallel()

	f, err := transform.NewFrame(mgl64.Vec3{2, 5, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	require.NoError(t, err)
	s, err := transform.ScaleFromFactors([3]float64{2, 2, 2}, &f)
	require.NoError(t, err)

	requireVec(t, mgl64.Vec3{2, 5, 0}, s.TransformPoint(mgl64.Vec3{2, 5, 0}))
	requireVec(t, mgl64.Vec3{2, 15, 0}, s.TransformPoint(mgl64.Vec3{2, 10, 0}))
	requireVec(t, mgl64.Vec3{4, 5, 0}, s.TransformPoint(mgl64.Vec3{3, 5, 0}))
}

func TestFamilies_InFrameFollowAxes(t *testing.T) {
	t.Parallel()

	// Frame rotated 90° about z: local x is world y.
	f, err := transform.NewFrame(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{-1, 0, 0})
	require.NoError(t, err)

	s, err := transform.ScaleFromFactors([3]float64{2, 1, 1}, &f)
	require.NoError(t, err)
	requireVec(t, mgl64.Vec3{1, 3, 1}, s.TransformPoint(mgl64.Vec3{1, 2, 1}))

	sh, err := transform.ShearFromEntries([3]float64{1, 0, 0}, &f)
	require.NoError(t, err)
	// Shear along rotated axes is not an upper-triangular shear matrix.
	assert.Equal(t, transform.KindGeneral, sh.Kind())
	// Local (0,1,0) shears to local (1,1,0): world (1,1,1)+(-1,0,0)+(0,1,0).
	requireVec(t, mgl64.Vec3{0, 2, 1}, sh.TransformPoint(mgl64.Vec3{0, 1, 1}))
}

func TestFamilies_FactoryKindMatchesValidation(t *testing.T) {
	t.Parallel()

	rotated, err := transform.NewFrame(mgl64.Vec3{}, mgl64.Vec3{1, 1, 0}, mgl64.Vec3{-1, 1, 0})
	require.NoError(t, err)
	offset, err := transform.NewFrame(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	require.NoError(t, err)
	pivot := mgl64.Vec3{1, 0, 0}

	build := func(tf transform.Transform, err error) transform.Transform {
		require.NoError(t, err)
		return tf
	}
	cases := []struct {
		name string
		tf   transform.Transform
		want transform.Kind
	}{
		{"mirror x", build(transform.ScaleFromFactors([3]float64{-1, 2, 3}, nil)), transform.KindScale},
		{"mirror y", build(transform.ScaleFromFactors([3]float64{1, -1, 1}, nil)), transform.KindGeneral},
		{"scale in rotated frame", build(transform.ScaleFromFactors([3]float64{2, 1, 1}, &rotated)), transform.KindGeneral},
		{"uniform scale in rotated frame", build(transform.ScaleFromFactors([3]float64{2, 2, 2}, &rotated)), transform.KindScale},
		{"scale about offset origin", build(transform.ScaleFromFactors([3]float64{2, 2, 2}, &offset)), transform.KindGeneral},
		{"shear", build(transform.ShearFromEntries([3]float64{0.1, 0.2, 0.3}, nil)), transform.KindShear},
		{"shear in rotated frame", build(transform.ShearFromEntries([3]float64{1, 0, 0}, &rotated)), transform.KindGeneral},
		{"euler", build(transform.RotationFromEulerAngles([3]float64{0.1, 0.2, 0.3}, &rotated)), transform.KindRotation},
		{"euler about offset origin", build(transform.RotationFromEulerAngles([3]float64{0, 0, 1}, &offset)), transform.KindGeneral},
		{"axis angle", build(transform.RotationFromAxisAndAngle(mgl64.Vec3{1, 2, 3}, 0.7, nil)), transform.KindRotation},
		{"axis angle about pivot", build(transform.RotationFromAxisAndAngle(mgl64.Vec3{0, 0, 1}, 1, &pivot)), transform.KindGeneral},
		{"projection", transform.ProjectionFromEntries([4]float64{1, 0, 0, 0}), transform.KindProjection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tf.Kind())
			if tc.tf.Kind() != transform.KindGeneral {
				_, err := transform.Validate(tc.tf.Kind(), tc.tf.Matrix())
				require.NoError(t, err)
			}

			inv, err := tc.tf.Inverted()
			if err != nil {
				return
			}
			if inv.Kind() != transform.KindGeneral {
				_, err = transform.Validate(inv.Kind(), inv.Matrix())
				require.NoError(t, err)
			}
		})
	}
}

func TestFamilies_ValidateRejectsNonFamilyKinds(t *testing.T) {
	t.Parallel()

	for _, kind := range []transform.Kind{transform.KindGeneral, transform.Kind(99)} {
		_, err := transform.Validate(kind, transform.Identity4())
		require.ErrorIs(t, err, transform.ErrInvalidTransform)
		assert.Contains(t, err.Error(), "transform.Validate")
		assert.NotContains(t, err.Error(), "NewGeneral")
	}

	_, err := transform.NewTranslation(transform.ScaleMatrix([3]float64{2, 1, 1}))
	require.ErrorIs(t, err, transform.ErrInvalidTransform)
	assert.Contains(t, err.Error(), "transform.NewTranslation")
}

func TestRotationFactories(t *testing.T) {
	t.Parallel()

	z := mgl64.Vec3{0, 0, 1}
	r, err := transform.RotationFromAxisAndAngle(z, math.Pi/2, nil)
	require.NoError(t, err)
	assert.Equal(t, transform.KindRotation, r.Kind())
	requireVec(t, mgl64.Vec3{0, 1, 0}, r.TransformPoint(mgl64.Vec3{1, 0, 0}))

	euler, err := transform.RotationFromEulerAngles([3]float64{0, 0, math.Pi / 2}, nil)
	require.NoError(t, err)
	assert.True(t, r.Equal(euler))

	pivot := mgl64.Vec3{1, 0, 0}
	around, err := transform.RotationFromAxisAndAngle(z.Mul(3), math.Pi/2, &pivot)
	require.NoError(t, err)
	requireVec(t, mgl64.Vec3{1, 1, 0}, around.TransformPoint(mgl64.Vec3{2, 0, 0}))
	requireVec(t, pivot, around.TransformPoint(pivot))

	f, err := transform.NewFrame(pivot, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})
	require.NoError(t, err)
	inFrame, err := transform.RotationFromEulerAngles([3]float64{0, 0, math.Pi / 2}, &f)
	require.NoError(t, err)
	assert.True(t, around.Equal(inFrame))

	_, err = transform.RotationFromAxisAndAngle(mgl64.Vec3{}, 1, nil)
	require.ErrorIs(t, err, transform.ErrSingular)
}

func TestFamilies_ValidateCanonical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		kind transform.Kind
		ctor func(transform.Mat4) (transform.Transform, error)
		m    transform.Mat4
	}{
		{"scale", transform.KindScale, transform.NewScale, transform.ScaleMatrix([3]float64{1, 2, 3})},
		{"mirror scale", transform.KindScale, transform.NewScale, transform.ScaleMatrix([3]float64{-1, 2, 3})},
		{"shear", transform.KindShear, transform.NewShear, transform.ShearMatrix([3]float64{0.1, 0.2, 0.3})},
		{"rotation", transform.KindRotation, transform.NewRotation, transform.RotationMatrix([3]float64{0.4, -0.5, 2})},
		{"translation", transform.KindTranslation, transform.NewTranslation, transform.TranslationMatrix([3]float64{1, -2, 3})},
		{"projection", transform.KindProjection, transform.NewProjection, transform.ProjectionMatrix([4]float64{0.1, 0.2, 0.3, 1})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.ctor(tc.m)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, got.Kind())
			requireMat(t, tc.m, got.Matrix(), 0)
		})
	}
}

func TestFamilies_RejectForeignMatrices(t *testing.T) {
	t.Parallel()

	sheared := transform.Compose(transform.Components{
		Scale:       [3]float64{1, 2, 3},
		Shear:       [3]float64{0.5, 0, 0},
		Perspective: [4]float64{0, 0, 0, 1},
	})
	_, err := transform.NewScale(sheared)
	require.ErrorIs(t, err, transform.ErrInvalidTransform)

	_, err = transform.NewRotation(transform.ScaleMatrix([3]float64{2, 2, 2}))
	require.ErrorIs(t, err, transform.ErrInvalidTransform)

	_, err = transform.NewRotation(transform.ScaleMatrix([3]float64{-1, 1, 1}))
	require.ErrorIs(t, err, transform.ErrInvalidTransform)

	_, err = transform.NewTranslation(transform.RotationMatrix([3]float64{0, 0, 1}))
	require.ErrorIs(t, err, transform.ErrInvalidTransform)

	_, err = transform.NewShear(transform.TranslationMatrix([3]float64{1, 0, 0}))
	require.ErrorIs(t, err, transform.ErrInvalidTransform)

	_, err = transform.NewProjection(transform.ScaleMatrix([3]float64{1, 1, 2}))
	require.ErrorIs(t, err, transform.ErrInvalidTransform)

	// Undecomposable input reports both causes.
	_, err = transform.NewScale(transform.Mat4{})
	require.ErrorIs(t, err, transform.ErrInvalidTransform)
	require.ErrorIs(t, err, transform.ErrSingular)
	assert.Contains(t, err.Error(), "NewScale")
}

func TestFamilies_SimpleFactories(t *testing.T) {
	t.Parallel()

	tr := transform.TranslationFromVector([3]float64{1, 2, 3})
	assert.Equal(t, transform.KindTranslation, tr.Kind())
	assert.Equal(t, [3]float64{1, 2, 3}, tr.Translation())

	p := transform.ProjectionFromEntries([4]float64{0, 0, 1, 0})
	assert.Equal(t, transform.KindProjection, p.Kind())
	assert.Equal(t, [4]float64{0, 0, 1, 0}, p.Matrix()[3])
}

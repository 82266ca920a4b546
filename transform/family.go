// SPDX-License-Identifier: MIT

// Package transform - constrained transform families.
//
// Each family has a canonical builder (ScaleMatrix, ShearMatrix, ...) and a
// validator. Validation runs the matrix through Decompose, rebuilds the
// canonical matrix from the family's own extracted parameters, and accepts
// only if the rebuild matches within Tolerance. A matrix with, say, non-zero
// shear therefore fails NewScale.

package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// constructorNames names the validating constructor of each family, for
// error messages.
var constructorNames = [...]string{
	KindScale:       "NewScale",
	KindShear:       "NewShear",
	KindRotation:    "NewRotation",
	KindTranslation: "NewTranslation",
	KindProjection:  "NewProjection",
}

// isFamily reports whether kind names one of the constrained families.
func isFamily(kind Kind) bool {
	return kind > KindGeneral && int(kind) < len(constructorNames)
}

// canonical rebuilds the family's matrix from decomposed components.
func canonical(kind Kind, c Components) Mat4 {
	switch kind {
	case KindScale:
		return ScaleMatrix(c.Scale)
	case KindShear:
		return ShearMatrix(c.Shear)
	case KindRotation:
		return RotationMatrix(c.Angles)
	default:
		return TranslationMatrix(c.Translation)
	}
}

// Validate checks that m belongs to family kind and returns it tagged.
// Projections are checked structurally (top three rows equal to the identity,
// any bottom row); the other families go through Decompose.
// Errors: ErrInvalidTransform (also wrapping the Decompose error when the
// matrix could not be factored at all), including for KindGeneral and
// unknown kinds.
func Validate(kind Kind, m Mat4) (Transform, error) {
	if !isFamily(kind) {
		return Transform{}, fmt.Errorf("transform.Validate: %q is not a transform family: %w", kind.String(), ErrInvalidTransform)
	}
	name := constructorNames[kind]
	if kind == KindProjection {
		if !ProjectionMatrix(m[3]).ApproxEqual(m, Tolerance) {
			return Transform{}, fmt.Errorf("transform.%s: matrix is not a proper %s: %w", name, kind, ErrInvalidTransform)
		}

		return Transform{m: m, kind: kind}, nil
	}

	c, err := Decompose(m)
	if err != nil {
		return Transform{}, fmt.Errorf("transform.%s: %w: %w", name, ErrInvalidTransform, err)
	}
	if !canonical(kind, c).ApproxEqual(m, Tolerance) {
		return Transform{}, fmt.Errorf("transform.%s: matrix is not a proper %s: %w", name, kind, ErrInvalidTransform)
	}

	return Transform{m: m, kind: kind}, nil
}

// tagFor returns kind when m passes Validate for it, KindGeneral otherwise.
// A family transform expressed in a rotated or offset frame is generally no
// longer in its family's canonical form.
func tagFor(kind Kind, m Mat4) Kind {
	if !isFamily(kind) {
		return KindGeneral
	}
	if _, err := Validate(kind, m); err != nil {
		return KindGeneral
	}

	return kind
}

// NewScale validates m as a pure scale.
func NewScale(m Mat4) (Transform, error) { return Validate(KindScale, m) }

// NewShear validates m as a pure shear.
func NewShear(m Mat4) (Transform, error) { return Validate(KindShear, m) }

// NewRotation validates m as a pure rotation.
func NewRotation(m Mat4) (Transform, error) { return Validate(KindRotation, m) }

// NewTranslation validates m as a pure translation.
func NewTranslation(m Mat4) (Transform, error) { return Validate(KindTranslation, m) }

// NewProjection validates m as a pure projection (identity with a custom
// bottom row normalized to M[3][3] = 1).
func NewProjection(m Mat4) (Transform, error) { return Validate(KindProjection, m) }

// ScaleFromFactors scales by factors along the axes of frame (world axes
// when frame is nil), keeping the frame origin fixed. The result is tagged
// KindScale only when its matrix passes NewScale; otherwise it is
// KindGeneral.
// Errors: ErrSingular for a degenerate frame.
func ScaleFromFactors(factors [3]float64, frame *Frame) (Transform, error) {
	m, err := inFrame(ScaleMatrix(factors), frame)
	if err != nil {
		return Transform{}, err
	}

	return Transform{m: m, kind: tagFor(KindScale, m)}, nil
}

// ShearFromEntries shears by [xy, xz, yz] in the local system of frame.
// Tagged KindShear only when the matrix passes NewShear.
// Errors: ErrSingular for a degenerate frame.
func ShearFromEntries(entries [3]float64, frame *Frame) (Transform, error) {
	m, err := inFrame(ShearMatrix(entries), frame)
	if err != nil {
		return Transform{}, err
	}

	return Transform{m: m, kind: tagFor(KindShear, m)}, nil
}

// RotationFromEulerAngles rotates by static-axes XYZ angles about the axes of
// frame. Tagged KindRotation only when the matrix passes NewRotation, which
// an offset frame origin breaks.
// Errors: ErrSingular for a degenerate frame.
func RotationFromEulerAngles(angles [3]float64, frame *Frame) (Transform, error) {
	m, err := inFrame(RotationMatrix(angles), frame)
	if err != nil {
		return Transform{}, err
	}

	return Transform{m: m, kind: tagFor(KindRotation, m)}, nil
}

// RotationFromAxisAndAngle rotates by angle radians about axis, through
// point when given (the origin otherwise). Positive angles follow the
// right-hand rule. A rotation through a point off the origin is
// KindGeneral.
// Errors: ErrSingular for a zero axis.
func RotationFromAxisAndAngle(axis mgl64.Vec3, angle float64, point *mgl64.Vec3) (Transform, error) {
	if !(axis.Len() > 0) {
		return Transform{}, fmt.Errorf("transform.RotationFromAxisAndAngle: zero axis: %w", ErrSingular)
	}
	r := FromMgl(mgl64.HomogRotate3D(angle, axis.Normalize())).m
	if point != nil {
		p := [3]float64{point[0], point[1], point[2]}
		r = TranslationMatrix(p).Mul(r).Mul(TranslationMatrix([3]float64{-p[0], -p[1], -p[2]}))
	}

	return Transform{m: r, kind: tagFor(KindRotation, r)}, nil
}

// TranslationFromVector translates by v.
func TranslationFromVector(v [3]float64) Transform {
	return Transform{m: TranslationMatrix(v), kind: KindTranslation}
}

// ProjectionFromEntries sets p as the bottom row of the identity.
func ProjectionFromEntries(p [4]float64) Transform {
	return Transform{m: ProjectionMatrix(p), kind: KindProjection}
}

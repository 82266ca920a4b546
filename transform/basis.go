// SPDX-License-Identifier: MIT

package transform

// FromFrame returns the transform mapping world XY onto frame f. Applied to
// the world origin and axes it yields f's origin and axes.
func FromFrame(f Frame) Transform {
	return Transform{m: f.Matrix()}
}

// FromFrameToFrame moves geometry placed relative to world XY at frame a to
// the same relative placement at frame b:
//
//	FromFrameToFrame(a, b) = FromFrame(b) ∘ FromFrame(a)⁻¹
//
// Errors: ErrSingular for a degenerate frame a.
func FromFrameToFrame(a, b Frame) (Transform, error) {
	inv, err := a.Matrix().Inverse()
	if err != nil {
		return Transform{}, transformErrorf(opFrameToFrom, err)
	}

	return Transform{m: b.Matrix().Mul(inv)}, nil
}

// ChangeBasis re-expresses coordinates given relative to frame a as
// coordinates relative to frame b; the point itself does not move:
//
//	ChangeBasis(a, b) = FromFrame(b)⁻¹ ∘ FromFrame(a)
//
// This is not the inverse of FromFrameToFrame(a, b) unless a == b.
// Errors: ErrSingular for a degenerate frame b.
func ChangeBasis(a, b Frame) (Transform, error) {
	inv, err := b.Matrix().Inverse()
	if err != nil {
		return Transform{}, transformErrorf(opChangeBasis, err)
	}

	return Transform{m: inv.Mul(a.Matrix())}, nil
}

// inFrame conjugates a canonical matrix into the local coordinate system of
// f: FromFrame(f) ∘ canon ∘ FromFrame(f)⁻¹. The frame origin is a fixed point
// and the canonical operation acts along f's axes.
func inFrame(canon Mat4, f *Frame) (Mat4, error) {
	if f == nil {
		return canon, nil
	}
	toWorld := f.Matrix()
	toLocal, err := toWorld.Inverse()
	if err != nil {
		return Mat4{}, transformErrorf(opFromFrame, err)
	}

	return toWorld.Mul(canon).Mul(toLocal), nil
}

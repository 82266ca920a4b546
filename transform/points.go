// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/xform/matrix"
)

// Mgl converts to mathgl's column-major Mat4.
func (t Transform) Mgl() mgl64.Mat4 {
	var out mgl64.Mat4
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[j*Size+i] = t.m[i][j]
		}
	}

	return out
}

// FromMgl converts from mathgl's column-major Mat4.
func FromMgl(m mgl64.Mat4) Transform {
	var out Mat4
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[i][j] = m[j*Size+i]
		}
	}

	return Transform{m: out}
}

// TransformPoint applies t to p with w = 1 and divides by the resulting w.
// A point sent to infinity (w = 0) is returned undivided.
func (t Transform) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	h := t.m.MulVec([4]float64{p[0], p[1], p[2], 1})
	if h[3] == 0 || h[3] == 1 {
		return mgl64.Vec3{h[0], h[1], h[2]}
	}

	return mgl64.Vec3{h[0] / h[3], h[1] / h[3], h[2] / h[3]}
}

// TransformVector applies the linear part of t to v (w = 0, translation ignored).
func (t Transform) TransformVector(v mgl64.Vec3) mgl64.Vec3 {
	h := t.m.MulVec([4]float64{v[0], v[1], v[2], 0})

	return mgl64.Vec3{h[0], h[1], h[2]}
}

// TransformPoints applies t to every point as a single 4×4 · 4×N product in
// the general kernel. Each result matches TransformPoint, non-finite entries
// included.
// Errors: ErrSingular when a point is sent to infinity (w = 0).
func (t Transform) TransformPoints(points []mgl64.Vec3) ([]mgl64.Vec3, error) {
	if len(points) == 0 {
		return nil, nil
	}
	hp, err := matrix.NewDenseWithOptions(Size, len(points), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, transformErrorf(opPoints, err)
	}
	for j, p := range points {
		for i := 0; i < 3; i++ {
			if err = hp.Set(i, j, p[i]); err != nil {
				return nil, transformErrorf(opPoints, err)
			}
		}
		_ = hp.Set(3, j, 1)
	}

	prod, err := matrix.Mul(t.m.Dense(), hp)
	if err != nil {
		return nil, transformErrorf(opPoints, err)
	}

	out := make([]mgl64.Vec3, len(points))
	var x, y, z, w float64
	for j := range points {
		x, _ = prod.At(0, j)
		y, _ = prod.At(1, j)
		z, _ = prod.At(2, j)
		w, _ = prod.At(3, j)
		if w == 0 {
			return nil, transformErrorf(opPoints, fmt.Errorf("point %d maps to infinity: %w", j, ErrSingular))
		}
		out[j] = mgl64.Vec3{x / w, y / w, z / w}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is a right-handed coordinate system: an origin plus the x and y basis
// vectors; z is x × y. The algebra only reads frames.
type Frame struct {
	Origin mgl64.Vec3
	XAxis  mgl64.Vec3
	YAxis  mgl64.Vec3
}

// WorldXY is the world frame: origin (0,0,0), x = (1,0,0), y = (0,1,0).
func WorldXY() Frame {
	return Frame{
		Origin: mgl64.Vec3{0, 0, 0},
		XAxis:  mgl64.Vec3{1, 0, 0},
		YAxis:  mgl64.Vec3{0, 1, 0},
	}
}

// NewFrame normalizes xaxis and makes yaxis orthonormal to it.
// Errors: ErrSingular when either axis is zero or the two are parallel.
func NewFrame(origin, xaxis, yaxis mgl64.Vec3) (Frame, error) {
	if !(xaxis.Len() > 0) {
		return Frame{}, fmt.Errorf("transform.NewFrame: zero x axis: %w", ErrSingular)
	}
	x := xaxis.Normalize()
	y := yaxis.Sub(x.Mul(x.Dot(yaxis)))
	if !(y.Len() > degenerateTolerance*yaxis.Len()) {
		return Frame{}, fmt.Errorf("transform.NewFrame: y axis parallel to x: %w", ErrSingular)
	}

	return Frame{Origin: origin, XAxis: x, YAxis: y.Normalize()}, nil
}

// ZAxis returns x × y.
func (f Frame) ZAxis() mgl64.Vec3 {
	return f.XAxis.Cross(f.YAxis)
}

// Matrix returns the matrix mapping world XY onto f: its columns are the
// x, y, z axes and the origin.
func (f Frame) Matrix() Mat4 {
	z := f.ZAxis()

	return Mat4{
		{f.XAxis[0], f.YAxis[0], z[0], f.Origin[0]},
		{f.XAxis[1], f.YAxis[1], z[1], f.Origin[1]},
		{f.XAxis[2], f.YAxis[2], z[2], f.Origin[2]},
		{0, 0, 0, 1},
	}
}

// FrameFromTransform places a frame by t: origin from the translation, axes
// from the rotation component. FrameFromTransform(FromFrame(f)) == f for
// orthonormal f.
func FrameFromTransform(t Transform) (Frame, error) {
	x, y, err := t.Basis()
	if err != nil {
		return Frame{}, err
	}
	tr := t.Translation()

	return Frame{Origin: mgl64.Vec3{tr[0], tr[1], tr[2]}, XAxis: x, YAxis: y}, nil
}

// ApproxEqual compares origin and axes componentwise within absolute tol.
func (f Frame) ApproxEqual(g Frame, tol float64) bool {
	return vecClose(f.Origin, g.Origin, tol) &&
		vecClose(f.XAxis, g.XAxis, tol) &&
		vecClose(f.YAxis, g.YAxis, tol)
}

func vecClose(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= tol) {
			return false
		}
	}

	return true
}

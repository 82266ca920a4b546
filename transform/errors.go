// SPDX-License-Identifier: MIT

// Package transform: sentinel error set.
// ErrDimensionMismatch, ErrSingular and ErrOutOfRange are the matrix package
// sentinels re-exported, so a single errors.Is works across both packages.

package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/xform/matrix"
)

var (
	// ErrDimensionMismatch: operand shapes incompatible (wrong-length flat list,
	// a record that is not 4×4, a general matrix that is not 4×4).
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrSingular: inverse requested on a matrix whose determinant is below
	// tolerance, or decomposition met a degenerate (zero-length) basis vector.
	ErrSingular = matrix.ErrSingular

	// ErrOutOfRange: element access outside [0,3]×[0,3].
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrInvalidTransform: a constrained-family constructor rejected a matrix
	// that does not reconstruct from its own family parameters.
	ErrInvalidTransform = errors.New("transform: invalid transform for family")
)

// Operation tags for error wrapping.
const (
	opInverse     = "Inverse"
	opDecompose   = "Decompose"
	opFromList    = "FromList"
	opFromRows    = "FromRows"
	opFromMatrix  = "FromMatrix"
	opFromFrame   = "FromFrame"
	opChangeBasis = "ChangeBasis"
	opFrameToFrom = "FromFrameToFrame"
	opAt          = "At"
	opSet         = "Set"
	opRecord      = "DecodeRecord"
	opPoints      = "TransformPoints"
)

// transformErrorf wraps err with an operation tag ("Op: underlying").
// Use only when err != nil.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("transform.%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT

package transform

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/xform/matrix"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Record is the flat persisted form of a Transform: the matrix as four rows
// of four numbers. Family tags are not persisted.
type Record struct {
	Matrix [][]float64 `json:"matrix" yaml:"matrix" mapstructure:"matrix"`
}

// Record returns the flat record of t.
func (t Transform) Record() Record {
	return Record{Matrix: t.m.RowSlices()}
}

// FromRecord rebuilds a general transform from r.
// Errors: ErrDimensionMismatch unless r.Matrix is 4×4.
func FromRecord(r Record) (Transform, error) {
	m, err := Mat4FromRows(r.Matrix)
	if err != nil {
		return Transform{}, err
	}

	return Transform{m: m}, nil
}

// DecodeRecord decodes a loosely typed document (typically the result of
// unmarshalling arbitrary YAML or JSON into map[string]any) into a transform.
// Integer entries are widened to float64. Non-numeric entries and unknown
// keys are rejected.
// Errors: ErrDimensionMismatch for a missing or non-4×4 matrix; the
// mapstructure error for values of the wrong type.
func DecodeRecord(doc map[string]any) (Transform, error) {
	var r Record
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &r,
		ErrorUnused: true,
	})
	if err != nil {
		return Transform{}, transformErrorf(opRecord, err)
	}
	if err = dec.Decode(doc); err != nil {
		return Transform{}, transformErrorf(opRecord, err)
	}
	if r.Matrix == nil {
		return Transform{}, transformErrorf(opRecord, fmt.Errorf("missing matrix: %w", ErrDimensionMismatch))
	}

	return FromRecord(r)
}

// MarshalJSON implements json.Marshaler.
func (t Transform) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Record())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Transform) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	out, err := FromRecord(r)
	if err != nil {
		return err
	}
	*t = out

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Transform) MarshalYAML() (interface{}, error) {
	return t.Record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Transform) UnmarshalYAML(node *yaml.Node) error {
	var r Record
	if err := node.Decode(&r); err != nil {
		return err
	}
	out, err := FromRecord(r)
	if err != nil {
		return err
	}
	*t = out

	return nil
}

// EqualMatrix compares t against a general matrix within Tolerance.
// Any shape other than 4×4 compares unequal.
func (t Transform) EqualMatrix(m matrix.Matrix) bool {
	other, err := Mat4FromMatrix(m)
	if err != nil {
		return false
	}

	return t.m.ApproxEqual(other, Tolerance)
}

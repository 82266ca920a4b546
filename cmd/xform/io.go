// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/xform/transform"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// readDoc loads the input document as a generic map. YAML is a superset of
// JSON, so one decoder serves both.
func (a *app) readDoc(cmd *cobra.Command) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if a.file == "" || a.file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(a.file)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var doc map[string]any
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("parse input: empty document")
	}
	a.log.Debug("input loaded", "file", a.file, "bytes", len(data))

	return doc, nil
}

// readTransform loads a {matrix: [[...]]} record.
func (a *app) readTransform(cmd *cobra.Command) (transform.Transform, error) {
	doc, err := a.readDoc(cmd)
	if err != nil {
		return transform.Transform{}, err
	}

	return transform.DecodeRecord(doc)
}

// decodeInto fills out from a generic map, widening integers to floats.
func decodeInto(in any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}

	return dec.Decode(in)
}

// write renders v to stdout in the selected format.
func (a *app) write(cmd *cobra.Command, v any) error {
	w := cmd.OutOrStdout()
	switch a.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}

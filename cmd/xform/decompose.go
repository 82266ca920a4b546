// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// componentsDoc is the document form of transform.Components.
type componentsDoc struct {
	Scale       [3]float64 `json:"scale" yaml:"scale,flow" mapstructure:"scale"`
	Shear       [3]float64 `json:"shear" yaml:"shear,flow" mapstructure:"shear"`
	Angles      [3]float64 `json:"angles" yaml:"angles,flow" mapstructure:"angles"`
	Translation [3]float64 `json:"translation" yaml:"translation,flow" mapstructure:"translation"`
	Perspective [4]float64 `json:"perspective" yaml:"perspective,flow" mapstructure:"perspective"`
}

func newDecomposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose",
		Short: "Factor a matrix record into scale, shear, rotation, translation and perspective",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTransform(cmd)
			if err != nil {
				return err
			}
			c, err := t.Decompose()
			if err != nil {
				a.log.Error("decompose failed", "error", err)
				return err
			}
			a.log.Debug("decomposed", "scale", c.Scale, "angles", c.Angles)

			return a.write(cmd, componentsDoc(c))
		},
	}
}

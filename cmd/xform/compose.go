// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/xform/transform"
	"github.com/spf13/cobra"
)

func newComposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compose",
		Short: "Build a matrix record from decomposed components",
		Long: `Reads scale, shear, angles, translation and perspective and prints the record of
P·T·R·Sh·S. Missing components default to the identity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDoc(cmd)
			if err != nil {
				return err
			}
			c := componentsDoc{
				Scale:       [3]float64{1, 1, 1},
				Perspective: [4]float64{0, 0, 0, 1},
			}
			if err = decodeInto(doc, &c); err != nil {
				return err
			}
			t := transform.FromMatrix(transform.Compose(transform.Components(c)))
			a.log.Debug("composed", "determinant", t.Determinant())

			return a.write(cmd, t.Record())
		},
	}
}

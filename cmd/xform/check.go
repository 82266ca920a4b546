// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/xform/transform"
	"github.com/spf13/cobra"
)

var kinds = map[string]transform.Kind{
	"scale":       transform.KindScale,
	"shear":       transform.KindShear,
	"rotation":    transform.KindRotation,
	"translation": transform.KindTranslation,
	"projection":  transform.KindProjection,
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "check KIND",
		Short:     "Verify that a matrix record belongs to a transform family",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"scale", "shear", "rotation", "translation", "projection"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := kinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}
			t, err := a.readTransform(cmd)
			if err != nil {
				return err
			}
			if _, err = transform.Validate(kind, t.Matrix()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", kind)

			return err
		},
	}
}

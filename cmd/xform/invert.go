// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newInvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invert",
		Short: "Print the inverse of a matrix record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTransform(cmd)
			if err != nil {
				return err
			}
			inv, err := t.Inverted()
			if err != nil {
				a.log.Error("invert failed", "error", err)
				return err
			}

			return a.write(cmd, inv.Record())
		},
	}
}

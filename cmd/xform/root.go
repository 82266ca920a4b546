// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/xform/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand after flag parsing.
type app struct {
	file     string
	format   string
	logLevel string
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}

	root := &cobra.Command{
		Use:          "xform",
		Short:        "xform works with 4x4 homogeneous transforms",
		Long:         `xform decomposes, composes, inverts and re-bases 4x4 homogeneous transforms stored as flat matrix records.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			switch a.format {
			case formatYAML, formatJSON:
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", a.format, formatYAML, formatJSON)
			}
			a.log = logging.New(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVarP(&a.file, "file", "f", "-", "input document, - for stdin")
	root.PersistentFlags().StringVar(&a.format, "format", formatYAML, "output format: yaml or json")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		newDecomposeCmd(a),
		newComposeCmd(a),
		newInvertCmd(a),
		newBasisCmd(a),
		newCheckCmd(a),
	)

	return root
}

// SPDX-License-Identifier: MIT

package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/xform/transform"
	"github.com/spf13/cobra"
)

type frameDoc struct {
	Origin [3]float64 `mapstructure:"origin"`
	XAxis  [3]float64 `mapstructure:"xaxis"`
	YAxis  [3]float64 `mapstructure:"yaxis"`
}

func (d frameDoc) frame() (transform.Frame, error) {
	return transform.NewFrame(mgl64.Vec3(d.Origin), mgl64.Vec3(d.XAxis), mgl64.Vec3(d.YAxis))
}

type basisDoc struct {
	From frameDoc `mapstructure:"from"`
	To   frameDoc `mapstructure:"to"`
}

func newBasisCmd(a *app) *cobra.Command {
	var changeBasis bool

	cmd := &cobra.Command{
		Use:   "basis",
		Short: "Print the transform between two frames",
		Long: `Reads {from: {origin, xaxis, yaxis}, to: {...}}. By default prints the transform
moving geometry from the first frame to the second; with --change-basis prints the
transform re-expressing coordinates given in the first frame in the second.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := a.readDoc(cmd)
			if err != nil {
				return err
			}
			var doc basisDoc
			if err = decodeInto(raw, &doc); err != nil {
				return err
			}
			from, err := doc.From.frame()
			if err != nil {
				return err
			}
			to, err := doc.To.frame()
			if err != nil {
				return err
			}

			var t transform.Transform
			if changeBasis {
				t, err = transform.ChangeBasis(from, to)
			} else {
				t, err = transform.FromFrameToFrame(from, to)
			}
			if err != nil {
				return err
			}
			a.log.Debug("basis computed", "change_basis", changeBasis)

			return a.write(cmd, t.Record())
		},
	}
	cmd.Flags().BoolVar(&changeBasis, "change-basis", false, "re-express coordinates instead of moving geometry")

	return cmd
}

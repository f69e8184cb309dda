// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) layoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "layout <scenario>",
		Short:   "Prints the circular drawing coordinates of every planet",
		Args:    cobra.ExactArgs(1),
		GroupID: "net",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, n, err := a.loadScenario(cmd, args[0], nil)
			if err != nil {
				return err
			}
			lay := a.circular(n)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tX\tY")
			for _, pl := range lay.Placements {
				fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\n", pl.Planet.ID, pl.Planet.Name, pl.Point.X(), pl.Point.Y())
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			b := lay.Bound()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "bound: (%.2f, %.2f) - (%.2f, %.2f)\n",
				b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())

			return err
		},
	}
}

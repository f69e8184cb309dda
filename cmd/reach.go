// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tradelanes/report"
)

func (a *app) reachCmd() *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:     "reach <scenario>",
		Short:   "Lists the planets reachable from a planet (default: the scenario source)",
		Args:    cobra.ExactArgs(1),
		GroupID: "net",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, n, err := a.loadScenario(cmd, args[0], nil)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("from") {
				from = s.Source
			}
			ids, err := n.ReachableFrom(from)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, report.PlanetName(n, id)); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "start planet ID")

	return cmd
}

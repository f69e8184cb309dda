// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tradelanes/batch"
	"github.com/katalvlaran/tradelanes/report"
)

func (a *app) tableCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:     "table <scenario>",
		Short:   "Computes expected costs between every ordered pair of planets",
		Args:    cobra.ExactArgs(1),
		GroupID: "route",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, n, err := a.loadScenario(cmd, args[0], nil)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}
			opts := []batch.Option{
				batch.WithOnResult(func(c batch.Cell) {
					a.log.Debugf("pair %d→%d: %s", c.Source, c.Destination, c.Result.Outcome)
				}),
			}
			if workers > 0 {
				opts = append(opts, batch.WithWorkers(workers))
			}

			tbl, err := batch.AllPairs(cmd.Context(), n, opts...)
			if err != nil {
				return err
			}
			a.log.Infof("table: %d pairs, %d reachable", tbl.Len(), tbl.Reachable())

			return report.Table(cmd.OutOrStdout(), n, tbl)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker pool size, 0 for one per CPU (default from [batch].workers)")

	return cmd
}

// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tradelanes/builder"
	"github.com/katalvlaran/tradelanes/netio"
)

type generateFlags struct {
	kind       string
	planets    int
	density    float64
	seed       int64
	minCost    float64
	maxCost    float64
	maxFailure float64
	format     string
	out        string
}

func (a *app) generateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generates a scenario file from a chain, ring or random network",
		Args:    cobra.NoArgs,
		GroupID: "net",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				f.seed = time.Now().UnixNano()
			}
			a.log.Debugf("generate %s: %d planets, seed %d", f.kind, f.planets, f.seed)

			var cons builder.Constructor
			switch f.kind {
			case "chain":
				cons = builder.Chain(f.planets)
			case "ring":
				cons = builder.Ring(f.planets)
			case "random":
				cons = builder.RandomSparse(f.planets, f.density)
			default:
				return fmt.Errorf("unknown network kind %q (chain, ring, random)", f.kind)
			}
			if f.minCost < 0 || f.maxCost < f.minCost {
				return fmt.Errorf("cost range [%v, %v) is invalid", f.minCost, f.maxCost)
			}
			if f.maxFailure < 0 || f.maxFailure > 1 {
				return fmt.Errorf("max failure %v is outside [0, 1]", f.maxFailure)
			}

			n, err := builder.Build([]builder.Option{
				builder.WithSeed(f.seed),
				builder.WithCostFn(builder.UniformCost(f.minCost, f.maxCost)),
				builder.WithFailureFn(builder.UniformFailure(f.maxFailure)),
			}, cons)
			if err != nil {
				return err
			}
			s := netio.FromNetwork(n, 0, f.planets-1)
			a.log.Infof("generated %d planets and %d routes", n.PlanetCount(), n.RouteCount())

			if f.out != "" && f.out != "-" {
				return netio.Save(f.out, s)
			}
			name := f.format
			if name == "" {
				name = a.cfg.Output.ScenarioFormat
			}
			format, err := netio.ParseFormat(name)
			if err != nil {
				return err
			}

			return netio.Encode(cmd.OutOrStdout(), s, format)
		},
	}
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "ring", "network shape: chain, ring or random")
	cmd.Flags().IntVarP(&f.planets, "planets", "n", 5, "number of planets")
	cmd.Flags().Float64Var(&f.density, "density", 0.3, "route probability per ordered pair (random only)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().Float64Var(&f.minCost, "min-cost", 1, "lowest route cost")
	cmd.Flags().Float64Var(&f.maxCost, "max-cost", 20, "highest route cost (exclusive)")
	cmd.Flags().Float64Var(&f.maxFailure, "max-failure", 0.3, "highest failure probability (exclusive)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "yaml, toml or json when writing to stdout (default from [output].scenario_format)")
	cmd.Flags().StringVarP(&f.out, "output", "o", "-", "scenario file; the extension picks the format")

	return cmd
}

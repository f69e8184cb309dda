// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tradelanes/expected"
	"github.com/katalvlaran/tradelanes/network"
)

type renderFlags struct {
	format string
	out    string
}

func (r *renderFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&r.format, "format", "f", "", "text, json, dot or svg (default from [output].format)")
	cmd.Flags().StringVarP(&r.out, "output", "o", "-", "output file, - for stdout")
}

func (a *app) routeCmd() *cobra.Command {
	var (
		q  query
		rf renderFlags
	)
	cmd := &cobra.Command{
		Use:     "route <scenario>",
		Aliases: []string{"r"},
		Short:   "Computes the lowest expected-cost route of a scenario",
		Args:    cobra.ExactArgs(1),
		GroupID: "route",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, n, err := a.loadScenario(cmd, args[0], &q)
			if err != nil {
				return err
			}
			return a.runRoute(cmd, rf, n, s.Source, s.Destination)
		},
	}
	q.bind(cmd)
	rf.bind(cmd)

	return cmd
}

func (a *app) sampleCmd() *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:     "sample",
		Short:   "Routes the built-in five-planet network from Earth to Zenith",
		Args:    cobra.NoArgs,
		GroupID: "route",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRoute(cmd, rf, network.Sample(), network.SampleSource, network.SampleDestination)
		},
	}
	rf.bind(cmd)

	return cmd
}

func (a *app) runRoute(cmd *cobra.Command, rf renderFlags, n *network.Network, source, destination int) (err error) {
	res, err := expected.ExpectedShortestPath(n, source, destination, a.hooks()...)
	if err != nil {
		return err
	}
	a.log.Infof("route %d→%d: %s, expected cost %.2f", source, destination, res.Outcome, res.ExpectedCost)

	format := rf.format
	if format == "" {
		format = a.cfg.Output.Format
	}
	w, closeFn, err := output(cmd, rf.out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return a.render(w, format, n, res, source, destination)
}

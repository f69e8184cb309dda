// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tradelanes/config"
	"github.com/katalvlaran/tradelanes/expected"
	"github.com/katalvlaran/tradelanes/layout"
	"github.com/katalvlaran/tradelanes/netio"
	"github.com/katalvlaran/tradelanes/network"
	"github.com/katalvlaran/tradelanes/report"
)

// query holds the --source/--destination overrides of a scenario.
type query struct {
	source      int
	destination int
}

func (q *query) bind(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&q.source, "source", "s", 0, "source planet ID (overrides the scenario)")
	cmd.Flags().IntVarP(&q.destination, "destination", "d", 0, "destination planet ID (overrides the scenario)")
}

// loadScenario reads path, applies the flag overrides that were set and
// validates the result.
func (a *app) loadScenario(cmd *cobra.Command, path string, q *query) (*netio.Scenario, *network.Network, error) {
	s, err := netio.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if q != nil {
		if cmd.Flags().Changed("source") {
			s.Source = q.source
		}
		if cmd.Flags().Changed("destination") {
			s.Destination = q.destination
		}
	}
	n, err := s.Resolve()
	if err != nil {
		return nil, nil, err
	}
	a.log.Debugf("scenario %s: %d planets, %d routes", path, n.PlanetCount(), n.RouteCount())

	return s, n, nil
}

// hooks forwards calculator events to the debug log.
func (a *app) hooks() []expected.Option {
	return []expected.Option{
		expected.WithOnSettle(func(id int, cost float64) {
			a.log.Debugf("settled planet %d at %.4f", id, cost)
		}),
		expected.WithOnRelax(func(from, to int, cost float64) {
			a.log.Debugf("relaxed %d→%d to %.4f", from, to, cost)
		}),
	}
}

// circular lays n out with the configured center and radius.
func (a *app) circular(n *network.Network) layout.Layout {
	return layout.Circular(n,
		layout.WithCenter(a.cfg.Layout.CenterX, a.cfg.Layout.CenterY),
		layout.WithRadius(a.cfg.Layout.Radius),
	)
}

// render writes res in format.
func (a *app) render(w io.Writer, format string, n *network.Network, res expected.Result, source, destination int) error {
	switch strings.ToLower(format) {
	case config.OutputText:
		return report.Text(w, n, res)
	case config.OutputJSON:
		return report.JSON(w, n, res)
	case config.OutputDOT:
		return report.DOT(w, n, res)
	case config.OutputSVG:
		return report.SVG(w, n, a.circular(n), res, source, destination)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// output opens path for writing, or returns cmd's stdout for "" and "-".
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

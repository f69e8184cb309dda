// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/tradelanes/batch"
	"github.com/katalvlaran/tradelanes/network"
)

// Table writes one aligned line per cell of tbl, ordered by source then
// destination. Unsuccessful cells show "-" as cost and the result message in
// place of the path.
func Table(w io.Writer, n *network.Network, tbl *batch.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	ew := &errWriter{w: tw}
	ew.printf("SOURCE\tDESTINATION\tEXPECTED COST\tPATH\n")
	for _, c := range tbl.Cells() {
		cost, route := "-", c.Result.Message
		if c.Result.Success() {
			cost = fmt.Sprintf("%.2f", c.Result.ExpectedCost)
			route = strings.Join(PathNames(n, c.Result.Path), " → ")
		}
		ew.printf("%s\t%s\t%s\t%s\n", PlanetName(n, c.Source), PlanetName(n, c.Destination), cost, route)
	}
	if ew.err != nil {
		return ew.err
	}

	return tw.Flush()
}

// SPDX-License-Identifier: MIT

package report

import (
	"io"
	"strconv"

	"github.com/katalvlaran/tradelanes/expected"
	"github.com/katalvlaran/tradelanes/network"
)

// DOT writes n as a Graphviz digraph. Planets on res.Path and the hops between
// them are drawn in the path colours; source and destination use their own.
// An unsuccessful res draws the plain network.
func DOT(w io.Writer, n *network.Network, res expected.Result) error {
	var path []int
	source, destination := -1, -1
	if res.Success() && len(res.Path) > 0 {
		path = res.Path
		source, destination = path[0], path[len(path)-1]
	}
	onPath := make(map[int]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}
	hops := pathEdges(path)

	ew := &errWriter{w: w}
	ew.printf("digraph tradelanes {\n")
	ew.printf("  rankdir=LR;\n")
	ew.printf("  node [shape=circle, style=filled, fontcolor=\"#FFFFFF\"];\n")
	for _, p := range n.Planets() {
		st := styleFor(p.ID, source, destination, onPath)
		ew.printf("  %d [label=%s, fillcolor=%q, color=%q];\n",
			p.ID, strconv.Quote(p.Name), st.fill, st.stroke)
	}
	for _, r := range n.Routes() {
		label := strconv.Quote(formatCost(r.Cost) + " (" + formatPercent(r.FailureProbability) + ")")
		if hops[[2]int{r.From, r.To}] {
			ew.printf("  %d -> %d [label=%s, color=%q, penwidth=3];\n", r.From, r.To, label, colorPathPlanet)
			continue
		}
		ew.printf("  %d -> %d [label=%s, color=%q];\n", r.From, r.To, label, colorRoute)
	}
	ew.printf("}\n")

	return ew.err
}

// formatCost prints a cost with the shortest exact representation.
func formatCost(c float64) string { return strconv.FormatFloat(c, 'f', -1, 64) }

// formatPercent prints a probability as a whole percentage.
func formatPercent(p float64) string { return strconv.FormatFloat(p*100, 'f', 0, 64) + "%" }

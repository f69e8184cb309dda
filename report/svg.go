// SPDX-License-Identifier: MIT

package report

import (
	"html"
	"io"

	"github.com/katalvlaran/tradelanes/expected"
	"github.com/katalvlaran/tradelanes/layout"
	"github.com/katalvlaran/tradelanes/network"
)

// Drawing colours.
const (
	colorSourceFill      = "#00EAD3"
	colorSource          = "#7AE582"
	colorDestinationFill = "#F9DC5C"
	colorDestination     = "#FF9F1C"
	colorPathPlanetFill  = "#A36AF9"
	colorPathPlanet      = "#D467FF"
	colorPlanetFill      = "#3A4A7B"
	colorPlanet          = "#5973C0"
	colorRoute           = "#3A4A7B"
	colorLabel           = "#8899BB"
	colorPathCost        = "#F9DC5C"
	colorPathFailure     = "#FF5E5B"
	colorText            = "#FFFFFF"
)

// Canvas size of the SVG viewBox. It matches the layout defaults.
const (
	canvasWidth  = 600
	canvasHeight = 600
)

type planetStyle struct {
	fill   string
	stroke string
	radius float64
}

// styleFor picks the planet colours: source, then destination, then path
// membership, then the plain style.
func styleFor(id, source, destination int, onPath map[int]bool) planetStyle {
	switch {
	case id == source:
		return planetStyle{colorSourceFill, colorSource, 25}
	case id == destination:
		return planetStyle{colorDestinationFill, colorDestination, 25}
	case onPath[id]:
		return planetStyle{colorPathPlanetFill, colorPathPlanet, 20}
	default:
		return planetStyle{colorPlanetFill, colorPlanet, 20}
	}
}

// SVG draws n on lay. Routes come first so planets cover their ends; each
// route carries its cost above the midpoint and its failure percentage below.
// Hops of a successful res are drawn wide with the path gradient. Routes or
// planets missing from lay are skipped.
func SVG(w io.Writer, n *network.Network, lay layout.Layout, res expected.Result, source, destination int) error {
	var path []int
	if res.Success() {
		path = res.Path
	}
	onPath := make(map[int]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}
	hops := pathEdges(path)

	ew := &errWriter{w: w}
	ew.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		canvasWidth, canvasHeight, canvasWidth, canvasHeight)
	ew.printf("  <defs>\n")
	ew.printf("    <linearGradient id=\"pathGradient\" x1=\"0%%\" y1=\"0%%\" x2=\"100%%\" y2=\"0%%\">\n")
	ew.printf("      <stop offset=\"0%%\" stop-color=\"%s\"/>\n", colorSourceFill)
	ew.printf("      <stop offset=\"100%%\" stop-color=\"%s\"/>\n", colorSource)
	ew.printf("    </linearGradient>\n")
	ew.printf("  </defs>\n")

	for _, r := range n.Routes() {
		from, okFrom := lay.Point(r.From)
		to, okTo := lay.Point(r.To)
		if !okFrom || !okTo {
			continue
		}
		mx, my := (from.X()+to.X())/2, (from.Y()+to.Y())/2
		ew.printf("  <g class=\"route\">\n")
		if hops[[2]int{r.From, r.To}] {
			ew.printf("    <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"url(#pathGradient)\" stroke-width=\"4\" stroke-opacity=\"1\"/>\n",
				from.X(), from.Y(), to.X(), to.Y())
			ew.printf("    <text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" fill=\"%s\" font-size=\"14\" font-weight=\"bold\">%s</text>\n",
				mx, my-10, colorPathCost, formatCost(r.Cost))
			ew.printf("    <text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" fill=\"%s\" font-size=\"12\">%s</text>\n",
				mx, my+10, colorPathFailure, formatPercent(r.FailureProbability))
		} else {
			ew.printf("    <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"2\" stroke-opacity=\"0.6\"/>\n",
				from.X(), from.Y(), to.X(), to.Y(), colorRoute)
			ew.printf("    <text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" fill=\"%s\" font-size=\"12\">%s</text>\n",
				mx, my-10, colorLabel, formatCost(r.Cost))
			ew.printf("    <text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" fill=\"%s\" font-size=\"12\">%s</text>\n",
				mx, my+10, colorLabel, formatPercent(r.FailureProbability))
		}
		ew.printf("  </g>\n")
	}

	for _, p := range n.Planets() {
		pt, ok := lay.Point(p.ID)
		if !ok {
			continue
		}
		st := styleFor(p.ID, source, destination, onPath)
		ew.printf("  <g class=\"planet\" id=\"planet-%d\">\n", p.ID)
		ew.printf("    <circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.0f\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			pt.X(), pt.Y(), st.radius, st.fill, st.stroke)
		ew.printf("    <text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" dy=\"0.3em\" fill=\"%s\" font-size=\"12\" font-weight=\"bold\">%d</text>\n",
			pt.X(), pt.Y(), colorText, p.ID)
		ew.printf("    <text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" fill=\"%s\" font-size=\"12\">%s</text>\n",
			pt.X(), pt.Y()+st.radius+15, colorText, html.EscapeString(p.Name))
		ew.printf("  </g>\n")
	}
	ew.printf("</svg>\n")

	return ew.err
}

// SPDX-License-Identifier: MIT

package report

import (
	"io"
	"strings"

	"github.com/katalvlaran/tradelanes/expected"
	"github.com/katalvlaran/tradelanes/network"
)

// Headlines used by Text.
const (
	HeadlineFound  = "Optimal Route Calculated"
	HeadlineFailed = "Route Calculation Failed"
)

// Text writes a human-readable summary of res:
//
//	Optimal Route Calculated
//	Expected Cost: 25.40
//	Path: Earth → Mars → Saturn → Zenith
//
// Unsuccessful results print HeadlineFailed followed by the result message.
func Text(w io.Writer, n *network.Network, res expected.Result) error {
	ew := &errWriter{w: w}
	if !res.Success() {
		ew.printf("%s\n%s\n", HeadlineFailed, res.Message)
		return ew.err
	}
	ew.printf("%s\n", HeadlineFound)
	ew.printf("Expected Cost: %.2f\n", res.ExpectedCost)
	ew.printf("Path: %s\n", strings.Join(PathNames(n, res.Path), " → "))

	return ew.err
}

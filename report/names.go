// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/tradelanes/network"
)

// PlanetName returns the display name of id, or "Unknown (id)" when n has no
// such planet.
func PlanetName(n *network.Network, id int) string {
	if p, ok := n.Planet(id); ok {
		return p.Name
	}
	return fmt.Sprintf("Unknown (%d)", id)
}

// PathNames maps every ID of path to its PlanetName.
func PathNames(n *network.Network, path []int) []string {
	names := make([]string, len(path))
	for i, id := range path {
		names[i] = PlanetName(n, id)
	}

	return names
}

// pathEdges returns the set of consecutive (from, to) hops of path.
func pathEdges(path []int) map[[2]int]bool {
	edges := make(map[[2]int]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		edges[[2]int{path[i], path[i+1]}] = true
	}

	return edges
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

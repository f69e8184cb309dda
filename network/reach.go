// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"
)

// ReachableFrom returns the IDs of every planet reachable from start by
// following routes forward, start included, sorted ascending.
//
// The walk is a plain breadth-first search over the adjacency index and ignores
// costs and failure probabilities: a route with FailureProbability close to 1
// still counts as a connection.
//
// Errors:
//   - ErrPlanetNotFound if start is not registered.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func (n *Network) ReachableFrom(start int) ([]int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.planets[start]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrPlanetNotFound, start)
	}

	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, k := range n.adjacency[cur] {
			to := n.routes[k].To
			if visited[to] {
				continue
			}
			visited[to] = true
			queue = append(queue, to)
		}
	}

	out := make([]int, 0, len(visited))
	for id := range visited {
		out = append(out, id)
	}
	sort.Ints(out)

	return out, nil
}

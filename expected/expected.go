// SPDX-License-Identifier: MIT

package expected

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tradelanes/network"
	"github.com/katalvlaran/tradelanes/pqueue"
)

// ExpectedShortestPath computes the path from source to destination that
// greedily minimises the sum of discounted route costs (1 - p) * cost.
//
// Preconditions and validation (in order):
//  1. n must be non-nil (ErrNilNetwork).
//  2. n must hold at least one planet (ErrEmptyNetwork).
//  3. source and destination must be planets of n (ErrPlanetNotFound).
//
// Source equal to destination is left to the caller; it yields a Found result
// with path [source] and cost 0.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func ExpectedShortestPath(n *network.Network, source, destination int, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input.
	if n == nil {
		return Result{}, ErrNilNetwork
	}
	if n.PlanetCount() == 0 {
		return Result{}, ErrEmptyNetwork
	}
	if !n.HasPlanet(source) {
		return Result{}, fmt.Errorf("%w: source %d", ErrPlanetNotFound, source)
	}
	if !n.HasPlanet(destination) {
		return Result{}, fmt.Errorf("%w: destination %d", ErrPlanetNotFound, destination)
	}

	// 3) Snapshot adjacency once; every later read is lock-free.
	adj := n.Adjacency()

	r := &runner{
		adj:         adj,
		source:      source,
		destination: destination,
		options:     cfg,
		dist:        make(map[int]float64, len(adj)),
		prev:        make(map[int]int, len(adj)),
		visited:     make(map[int]bool, len(adj)),
		pq:          pqueue.NewWithCapacity[int](len(adj)),
	}

	// 4) Run.
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single computation.
type runner struct {
	adj         map[int][]network.Route // planet ID → outgoing routes
	source      int
	destination int
	options     Options
	dist        map[int]float64 // best known expected distance from source
	prev        map[int]int     // predecessor on the best path; absent means none
	visited     map[int]bool    // distance finalised
	pq          *pqueue.Queue[int]
}

// init sets every distance to +∞ except the source and seeds the queue.
func (r *runner) init() {
	for id := range r.adj {
		r.dist[id] = math.Inf(1)
	}
	r.dist[r.source] = 0
	r.pq.Enqueue(r.source, 0)
}

// process pops planets in order of expected distance until the queue drains or
// the destination is settled.
func (r *runner) process() {
	for !r.pq.IsEmpty() {
		cur, _ := r.pq.Dequeue()

		// Stale duplicate from an earlier, worse relaxation.
		if r.visited[cur] {
			continue
		}
		r.visited[cur] = true
		r.options.OnSettle(cur, r.dist[cur])

		if cur == r.destination {
			return
		}
		r.relax(cur)
	}
}

// relax tries to improve every target of cur's outgoing routes.
func (r *runner) relax(cur int) {
	base := r.dist[cur]
	for _, route := range r.adj[cur] {
		candidate := base + route.DiscountedCost()
		if candidate >= r.dist[route.To] {
			continue
		}
		r.dist[route.To] = candidate
		r.prev[route.To] = cur
		r.options.OnRelax(cur, route.To, candidate)
		r.pq.Enqueue(route.To, candidate)
	}
}

// result turns the final state into a Result.
func (r *runner) result() Result {
	cost := r.dist[r.destination]
	if math.IsInf(cost, 1) {
		return unreachable()
	}

	path, ok := reconstruct(r.prev, r.source, r.destination)
	if !ok {
		return reconstructionFailed()
	}

	return Result{Outcome: Found, ExpectedCost: cost, Path: path}
}

// reconstruct walks prev backwards from destination to source and returns the
// path in source → destination order. It reports false when a planet other
// than the source has no predecessor, or when the chain loops.
func reconstruct(prev map[int]int, source, destination int) ([]int, bool) {
	path := []int{destination}
	cur := destination
	for steps := 0; cur != source; steps++ {
		if steps > len(prev) {
			return nil, false
		}
		p, ok := prev[cur]
		if !ok {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

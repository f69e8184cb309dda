// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Planet and route lifecycle plus read-only queries.
//
// Determinism:
//   - Planets() returns planets sorted by ascending ID.
//   - Routes() and Outgoing() return routes in insertion order.
//
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.
//   - Returned slices are fresh copies; callers may modify them freely.

package network

import (
	"fmt"
	"math"
	"sort"
)

// AddPlanet registers a planet.
//
// Implementation:
//   - Stage 1: Validate the ID domain (ErrNegativeID).
//   - Stage 2: Under the write lock, reject duplicates and insert.
//
// Errors:
//   - ErrNegativeID if id < 0.
//   - ErrDuplicatePlanet if id is already registered.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (n *Network) AddPlanet(id int, name string) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, id)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.planets[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicatePlanet, id)
	}
	n.planets[id] = Planet{ID: id, Name: name}

	return nil
}

// AddRoute appends a directed route.
//
// Implementation:
//   - Stage 1: Validate cost and failure probability (CheckRoute).
//   - Stage 2: Under the write lock, verify both endpoints exist, append the
//     route and index it under its origin planet.
//
// Behavior highlights:
//   - Parallel routes between the same ordered pair are kept independently.
//   - Self-loops are accepted.
//
// Errors:
//   - ErrBadCost, ErrNegativeCost, ErrBadProbability from CheckRoute.
//   - ErrPlanetNotFound if From or To is not a registered planet.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (n *Network) AddRoute(r Route) error {
	if err := CheckRoute(r); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.planets[r.From]; !ok {
		return fmt.Errorf("%w: route origin %d", ErrPlanetNotFound, r.From)
	}
	if _, ok := n.planets[r.To]; !ok {
		return fmt.Errorf("%w: route target %d", ErrPlanetNotFound, r.To)
	}

	n.routes = append(n.routes, r)
	n.adjacency[r.From] = append(n.adjacency[r.From], len(n.routes)-1)

	return nil
}

// CheckRoute validates the numeric fields of r without touching any Network.
// Endpoint existence is not checked here.
func CheckRoute(r Route) error {
	if math.IsNaN(r.Cost) || math.IsInf(r.Cost, 0) {
		return fmt.Errorf("%w: %d→%d cost=%v", ErrBadCost, r.From, r.To, r.Cost)
	}
	if r.Cost < 0 {
		return fmt.Errorf("%w: %d→%d cost=%g", ErrNegativeCost, r.From, r.To, r.Cost)
	}
	p := r.FailureProbability
	if math.IsNaN(p) || p < 0 || p >= 1 {
		return fmt.Errorf("%w: %d→%d p=%v", ErrBadProbability, r.From, r.To, p)
	}

	return nil
}

// Planet returns the planet registered under id.
func (n *Network) Planet(id int) (Planet, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	p, ok := n.planets[id]

	return p, ok
}

// HasPlanet reports whether id is a registered planet.
func (n *Network) HasPlanet(id int) bool {
	_, ok := n.Planet(id)
	return ok
}

// PlanetCount returns the number of planets.
func (n *Network) PlanetCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.planets)
}

// RouteCount returns the number of routes, parallel routes counted separately.
func (n *Network) RouteCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.routes)
}

// Planets returns all planets sorted by ascending ID.
// Complexity: O(V log V).
func (n *Network) Planets() []Planet {
	n.mu.RLock()
	out := make([]Planet, 0, len(n.planets))
	for _, p := range n.planets {
		out = append(out, p)
	}
	n.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Routes returns all routes in insertion order.
// Complexity: O(E).
func (n *Network) Routes() []Route {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Route, len(n.routes))
	copy(out, n.routes)

	return out
}

// Outgoing returns the routes leaving planet id, in insertion order.
// An unknown id yields ErrPlanetNotFound.
// Complexity: O(deg(id)).
func (n *Network) Outgoing(id int) ([]Route, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.planets[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrPlanetNotFound, id)
	}

	idx := n.adjacency[id]
	out := make([]Route, len(idx))
	for i, k := range idx {
		out[i] = n.routes[k]
	}

	return out, nil
}

// Adjacency returns a snapshot of every planet's outgoing routes, taken under a
// single read lock. Planets without outgoing routes map to an empty slice.
// Complexity: O(V + E).
func (n *Network) Adjacency() map[int][]Route {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make(map[int][]Route, len(n.planets))
	for id := range n.planets {
		idx := n.adjacency[id]
		routes := make([]Route, len(idx))
		for i, k := range idx {
			routes[i] = n.routes[k]
		}
		out[id] = routes
	}

	return out
}

// Clone returns a deep copy of the network.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	c := &Network{
		planets:   make(map[int]Planet, len(n.planets)),
		routes:    make([]Route, len(n.routes)),
		adjacency: make(map[int][]int, len(n.adjacency)),
	}
	for id, p := range n.planets {
		c.planets[id] = p
	}
	copy(c.routes, n.routes)
	for id, idx := range n.adjacency {
		c.adjacency[id] = append([]int(nil), idx...)
	}

	return c
}

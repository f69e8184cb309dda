// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network construction and queries.
var (
	// ErrNegativeID indicates a planet ID below zero.
	ErrNegativeID = errors.New("network: planet ID is negative")

	// ErrDuplicatePlanet indicates that a planet ID is already registered.
	ErrDuplicatePlanet = errors.New("network: duplicate planet ID")

	// ErrPlanetNotFound indicates an operation referenced a non-existent planet.
	ErrPlanetNotFound = errors.New("network: planet not found")

	// ErrNegativeCost indicates a route with a cost below zero.
	ErrNegativeCost = errors.New("network: route cost is negative")

	// ErrBadCost indicates a route cost that is NaN or infinite.
	ErrBadCost = errors.New("network: route cost is not a finite number")

	// ErrBadProbability indicates a failure probability outside [0, 1).
	ErrBadProbability = errors.New("network: failure probability must be in [0, 1)")
)

// Planet is a vertex of the network.
//
// Names carry no constraint: they may repeat or be empty.
type Planet struct {
	// ID uniquely identifies the planet within its Network.
	ID int

	// Name is the display name.
	Name string
}

// Route is a directed, lossy connection between two planets.
type Route struct {
	// From is the origin planet ID.
	From int

	// To is the target planet ID.
	To int

	// Cost is the non-negative traversal cost.
	Cost float64

	// FailureProbability is the chance the route fails, in [0, 1).
	FailureProbability float64
}

// SuccessProbability returns 1 - FailureProbability.
func (r Route) SuccessProbability() float64 { return 1 - r.FailureProbability }

// DiscountedCost returns the route's contribution to an expected cost:
// (1 - FailureProbability) * Cost.
func (r Route) DiscountedCost() float64 { return (1 - r.FailureProbability) * r.Cost }

// Network is the in-memory planet/route graph.
//
// mu guards every field below it. adjacency maps a planet ID to the indexes
// (into routes) of its outgoing routes, in insertion order.
type Network struct {
	mu sync.RWMutex

	planets   map[int]Planet
	routes    []Route
	adjacency map[int][]int
}

// New creates an empty Network.
// Complexity: O(1).
func New() *Network {
	return &Network{
		planets:   make(map[int]Planet),
		adjacency: make(map[int][]int),
	}
}

// SPDX-License-Identifier: MIT

// Package network defines the Planet, Route and Network types that every other
// tradelanes package computes on.
//
// A Network is a directed multigraph: planets are vertices identified by a
// small non-negative integer, routes are one-way edges carrying a
// non-negative Cost and a FailureProbability in [0, 1). A route from A to B
// never implies a route from B to A. Parallel routes and self-loops are
// allowed.
//
// Referential integrity is enforced at construction time: AddRoute rejects a
// route whose endpoints are not registered planets, so a *Network can never
// hold a dangling route. Algorithms downstream rely on that invariant.
//
// Concurrency:
//
//	All methods are safe for concurrent use. A single sync.RWMutex guards the
//	planet catalog, the route list and the adjacency index; readers (Planets,
//	Routes, Outgoing, ReachableFrom, ...) share the read lock, so any number of
//	path computations may run against one Network at the same time.
//
// Determinism:
//
//	Planets() is sorted by ascending ID. Routes() and Outgoing() preserve
//	insertion order, which makes every algorithm built on top reproducible for
//	a given construction sequence.
//
// Errors:
//
//	ErrNegativeID      - planet ID below zero.
//	ErrDuplicatePlanet - planet ID registered twice.
//	ErrPlanetNotFound  - referenced planet does not exist.
//	ErrNegativeCost    - route cost below zero.
//	ErrBadCost         - route cost is NaN or infinite.
//	ErrBadProbability  - failure probability outside [0, 1) or NaN.
package network

// SPDX-License-Identifier: MIT

// Package tradelanes finds the cheapest expected route across a network of
// planets whose routes can fail.
//
// Every route carries a traversal cost and a failure probability p. Its
// contribution to a journey is the discounted cost (1-p)·cost, and the
// expected cost of a path is the sum over its routes. The calculator is a
// Dijkstra search over discounted costs with a lazy-deletion priority queue.
//
// Packages:
//
//	pqueue/   – generic binary min-heap without decrease-key
//	network/  – Planet, Route and the thread-safe Network they form
//	expected/ – ExpectedShortestPath and its Result
//	builder/  – chain, ring and random network generators
//	netio/    – YAML, TOML and JSON scenario files
//	batch/    – all-pairs tables on a bounded worker pool
//	layout/   – circular drawing coordinates
//	report/   – text, JSON, DOT, SVG and table renderings
//	config/   – TOML configuration
//	logging/  – logrus setup with optional file rotation
//	cmd/      – the tradelanes command line
//
// Quick example, the built-in demo network (cost, failure probability):
//
//	Earth   → Mars     10, 10%      Mars    → Jupiter   5,  5%
//	Earth   → Jupiter  15, 20%      Jupiter → Zenith   20, 15%
//	Mars    → Saturn   12, 10%      Saturn  → Zenith    8, 30%
//
//	tradelanes sample
//	Optimal Route Calculated
//	Expected Cost: 25.40
//	Path: Earth → Mars → Saturn → Zenith
package tradelanes

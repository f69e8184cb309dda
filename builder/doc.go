// SPDX-License-Identifier: MIT

// Package builder generates planet networks for demos, fixtures and load
// tests.
//
// One orchestrator, Build, creates a fresh network.Network, resolves the
// functional options into an immutable config and applies Constructors in
// order. Constructors share planets: each one registers planets 0..n-1 only if
// they are missing, so Ring(6) followed by RandomSparse(6, 0.2) yields a ring
// with extra random shortcuts.
//
// Constructors:
//
//	Chain(n)          0→1→…→n-1
//	Ring(n)           0→1→…→n-1→0
//	RandomSparse(n,p) every ordered pair (i≠j) independently with probability p
//
// Determinism:
//
//	Planets are added in ascending index order and routes in a fixed trial
//	order, so equal options (including the seed) produce identical networks.
//
// Defaults: planets are named "Planet i" and
// every new route costs 10 with a failure probability of 0.1.
//
// Errors:
//
//	ErrTooFewPlanets   n < 2.
//	ErrInvalidDensity  p outside [0, 1] or NaN.
//	ErrNeedRandSource  stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed nil constructor.
//
// Network errors (bad cost or probability produced by a custom generator) are
// wrapped and returned unchanged in meaning.
package builder

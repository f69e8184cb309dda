// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"
)

// Option customizes a builderConfig before construction begins.
// Option constructors panic on meaningless input; Build never panics.
type Option func(*builderConfig)

// WithNameScheme sets the planet naming function. Panics on nil.
func WithNameScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) { c.nameFn = fn }
}

// WithRand attaches an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn sets the route cost generator. Panics on nil.
// The generator receives the configured RNG, which may be nil.
func WithCostFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) { c.costFn = fn }
}

// WithFailureFn sets the failure probability generator. Panics on nil.
// The generator receives the configured RNG, which may be nil.
func WithFailureFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithFailureFn(nil)")
	}
	return func(c *builderConfig) { c.failureFn = fn }
}

// UniformCost returns a cost generator drawing uniformly from [lo, hi).
// With a nil RNG it returns lo. Panics unless 0 ≤ lo ≤ hi and both are finite.
func UniformCost(lo, hi float64) func(*rand.Rand) float64 {
	if lo < 0 || hi < lo || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		panic("builder: UniformCost requires 0 <= lo <= hi < +Inf")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}
		return lo + r.Float64()*(hi-lo)
	}
}

// UniformFailure returns a failure generator drawing uniformly from [0, max).
// With a nil RNG it returns 0. Panics unless 0 ≤ max ≤ 1.
func UniformFailure(max float64) func(*rand.Rand) float64 {
	if max < 0 || max > 1 || math.IsNaN(max) {
		panic("builder: UniformFailure requires 0 <= max <= 1")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return 0
		}
		return r.Float64() * max
	}
}

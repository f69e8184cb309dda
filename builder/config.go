// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// Deterministic defaults.
const (
	defaultRouteCost    = 10.0
	defaultRouteFailure = 0.1
	minPlanets          = 2
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// nameFn maps a planet index to its display name.
	nameFn func(int) string
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
	// costFn draws a route cost.
	costFn func(*rand.Rand) float64
	// failureFn draws a route failure probability.
	failureFn func(*rand.Rand) float64
}

// defaultName is the name the route form gives new planets.
func defaultName(i int) string { return fmt.Sprintf("Planet %d", i) }

// newBuilderConfig applies opts, in order, over the deterministic defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		nameFn:    defaultName,
		costFn:    func(*rand.Rand) float64 { return defaultRouteCost },
		failureFn: func(*rand.Rand) float64 { return defaultRouteFailure },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

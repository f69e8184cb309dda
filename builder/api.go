// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/tradelanes/network"
)

// Constructor applies a deterministic mutation to n using the resolved config.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(n *network.Network, cfg builderConfig) error

// Build creates a new network, resolves opts and applies cons in order.
// The first constructor error is wrapped with "Build: " and returned; the
// partially built network is discarded.
func Build(opts []Option, cons ...Constructor) (*network.Network, error) {
	n := network.New()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return n, nil
}

// ensurePlanets registers planets 0..count-1 that are not present yet.
func ensurePlanets(n *network.Network, count int, cfg builderConfig) error {
	for i := 0; i < count; i++ {
		if n.HasPlanet(i) {
			continue
		}
		if err := n.AddPlanet(i, cfg.nameFn(i)); err != nil {
			return err
		}
	}

	return nil
}

// addRoute draws cost and failure probability from cfg and appends from→to.
func addRoute(n *network.Network, cfg builderConfig, from, to int) error {
	r := network.Route{
		From:               from,
		To:                 to,
		Cost:               cfg.costFn(cfg.rng),
		FailureProbability: cfg.failureFn(cfg.rng),
	}

	return n.AddRoute(r)
}

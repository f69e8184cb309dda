// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/tradelanes/network"
)

const (
	methodChain = "Chain"
	methodRing  = "Ring"
)

// Chain returns a Constructor for the one-way chain 0→1→…→n-1.
func Chain(n int) Constructor {
	return func(g *network.Network, cfg builderConfig) error {
		if n < minPlanets {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minPlanets, ErrTooFewPlanets)
		}
		if err := ensurePlanets(g, n, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodChain, err)
		}
		for i := 0; i+1 < n; i++ {
			if err := addRoute(g, cfg, i, i+1); err != nil {
				return fmt.Errorf("%s: route %d→%d: %w", methodChain, i, i+1, err)
			}
		}

		return nil
	}
}

// Ring returns a Constructor for the one-way ring 0→1→…→n-1→0.
func Ring(n int) Constructor {
	return func(g *network.Network, cfg builderConfig) error {
		if n < minPlanets {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minPlanets, ErrTooFewPlanets)
		}
		if err := ensurePlanets(g, n, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodRing, err)
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if err := addRoute(g, cfg, i, j); err != nil {
				return fmt.Errorf("%s: route %d→%d: %w", methodRing, i, j, err)
			}
		}

		return nil
	}
}

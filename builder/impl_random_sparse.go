// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like: each ordered pair (i, j), i ≠ j, receives a route
//     independently with probability p.
//   - Trial order is i ascending, then j ascending, so a fixed seed always
//     yields the same network.
//   - p == 0 adds no route and p == 1 adds every route; neither needs an RNG.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tradelanes/network"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor sampling a random directed network over n
// planets with route density p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *network.Network, cfg builderConfig) error {
		if n < minPlanets {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minPlanets, ErrTooFewPlanets)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v not in [0,1]: %w", methodRandomSparse, p, ErrInvalidDensity)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := ensurePlanets(g, n, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				switch {
				case p == 0:
					continue
				case p == 1:
				case cfg.rng.Float64() >= p:
					continue
				}
				if err := addRoute(g, cfg, i, j); err != nil {
					return fmt.Errorf("%s: route %d→%d: %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}

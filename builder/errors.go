// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewPlanets indicates that a constructor was asked for fewer than two
// planets.
var ErrTooFewPlanets = errors.New("builder: at least two planets are required")

// ErrInvalidDensity indicates a route probability outside [0, 1].
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed, such as a
// nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

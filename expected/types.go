// SPDX-License-Identifier: MIT

package expected

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tradelanes/network"
)

// Human-readable messages carried by unsuccessful results.
const (
	MessageUnreachable    = "No viable path exists to the destination."
	MessageReconstruction = "Path reconstruction error."
)

// Sentinel errors for out-of-contract input.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("expected: network is nil")

	// ErrEmptyNetwork indicates a network without planets.
	ErrEmptyNetwork = errors.New("expected: network has no planets")

	// ErrPlanetNotFound indicates that the source or destination is not a
	// planet of the network. It also matches network.ErrPlanetNotFound.
	ErrPlanetNotFound = fmt.Errorf("expected: %w", network.ErrPlanetNotFound)
)

// Outcome classifies a Result.
type Outcome int

const (
	// Found means a path was computed.
	Found Outcome = iota

	// Unreachable means no sequence of routes leads to the destination.
	Unreachable

	// ReconstructionFailed means the predecessor chain was inconsistent.
	ReconstructionFailed
)

// String returns a lower-case name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	case ReconstructionFailed:
		return "reconstruction-failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of one expected-cost path computation.
//
// On Found, Path starts with the source, ends with the destination and visits
// no planet twice; ExpectedCost is the sum of the discounted costs along it.
// Otherwise ExpectedCost is 0, Path is empty and Message explains why.
type Result struct {
	Outcome      Outcome
	ExpectedCost float64
	Path         []int
	Message      string
}

// Success reports whether a path was found.
func (r Result) Success() bool { return r.Outcome == Found }

// unreachable builds the Unreachable result.
func unreachable() Result {
	return Result{Outcome: Unreachable, Path: []int{}, Message: MessageUnreachable}
}

// reconstructionFailed builds the ReconstructionFailed result.
func reconstructionFailed() Result {
	return Result{Outcome: ReconstructionFailed, Path: []int{}, Message: MessageReconstruction}
}

// Options configures observation hooks. The computation itself has no knobs.
//
// OnSettle – called once per planet when its expected distance becomes final,
// in settle order. The destination is reported before the loop stops.
// OnRelax  – called for each strictly improving relaxation from→to with the
// new tentative distance of to.
type Options struct {
	OnSettle func(id int, cost float64)
	OnRelax  func(from, to int, cost float64)
}

// Option represents a functional option for ExpectedShortestPath.
type Option func(*Options)

// WithOnSettle registers a settle hook. A nil fn is ignored.
func WithOnSettle(fn func(id int, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a relaxation hook. A nil fn is ignored.
func WithOnRelax(fn func(from, to int, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnSettle: func(int, float64) {},
		OnRelax:  func(int, int, float64) {},
	}
}

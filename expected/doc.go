// SPDX-License-Identifier: MIT

// Package expected computes expected-cost shortest paths across a lossy
// planet network.
//
// Every route carries a Cost and a FailureProbability p. Its contribution to a
// path's expected cost is the discounted cost (1 - p) * Cost, and the expected
// cost of a path is the plain sum of its discounted costs. This is a heuristic
// weighting, not an expectation over failure and retry scenarios. It is kept
// exactly as stated, including its quirk that a route which almost always
// fails (p → 1) looks almost free.
//
// Algorithm:
//
//   - Single-source relaxation in the style of Dijkstra, driven by a
//     pqueue.Queue of planet IDs keyed by their tentative expected distance.
//   - The queue has no decrease-key. Every improvement re-enqueues the planet
//     and stale entries are discarded when popped for an already-settled planet
//     ("lazy deletion").
//   - Relaxation is strict (candidate < best), so among equal-cost
//     alternatives the first one discovered wins.
//   - The loop stops as soon as the destination is settled.
//   - The path is rebuilt by walking predecessors back from the destination.
//
// Complexity:
//
//   - Time:  O((V + E) log E). Each route can push one queue entry.
//   - Space: O(V + E).
//
// Outcomes (returned as data in Result, never as errors):
//
//   - Found:                 ExpectedCost and Path (source → destination inclusive).
//   - Unreachable:           MessageUnreachable, zero cost, empty path.
//   - ReconstructionFailed:  MessageReconstruction, zero cost, empty path. A
//     settled planet whose predecessor chain does not lead back to the source.
//     Unreachable for networks built through package network. Kept as a guard.
//
// Errors (out-of-contract input only):
//
//   - ErrNilNetwork      the network pointer is nil.
//   - ErrEmptyNetwork    the network has no planets.
//   - ErrPlanetNotFound  source or destination is not a registered planet.
//
// Thread safety:
//
//	ExpectedShortestPath holds no state between calls and reads the network
//	through one snapshot taken under its read lock. Concurrent calls against
//	the same network are safe.
//
// Example:
//
//	res, err := expected.ExpectedShortestPath(network.Sample(), 0, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Success() {
//	    fmt.Printf("%.2f via %v\n", res.ExpectedCost, res.Path)
//	}
package expected

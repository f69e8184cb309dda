// SPDX-License-Identifier: MIT

// Package batch computes expected-cost routes for every ordered pair of
// distinct planets in a network.
//
// AllPairs fans the pairs out to a bounded goroutine pool (ants) and collects
// one expected.Result per pair into a Table. Each computation is independent
// and reads the network under its read lock, so the pool size only bounds
// parallelism; the table is identical for any worker count.
//
// Cancellation:
//
//	When ctx is cancelled, no further pairs are submitted, pairs already
//	queued return without computing, and AllPairs returns ctx.Err() once every
//	worker has drained. The pool is always released before AllPairs returns.
//
// Complexity: P·(P-1) runs of ExpectedShortestPath for P planets.
package batch

// SPDX-License-Identifier: MIT

// Package pqueue provides a small generic binary min-heap keyed by a float64
// priority.
//
// The queue always yields the item with the lowest priority among the items it
// currently holds. Ties are broken arbitrarily: insertion order is NOT a stable
// tie-break.
//
// Complexity:
//
//   - Enqueue: O(log n) (append + sift up).
//   - Dequeue: O(log n) (move last to root + sift down).
//   - IsEmpty, Len, Peek: O(1).
//   - Space:   O(n), one dense slice.
//
// There is deliberately no decrease-key operation. Callers that need it use the
// "lazy deletion" pattern: enqueue the item again with its improved priority and
// discard stale entries when they are dequeued (see package expected).
//
// NaN priorities are outside the contract: the heap order is undefined once a
// NaN has been enqueued.
//
// Example:
//
//	q := pqueue.New[string]()
//	q.Enqueue("Mars", 9)
//	q.Enqueue("Earth", 0)
//	item, ok := q.Dequeue() // "Earth", true
package pqueue

// SPDX-License-Identifier: MIT

package pqueue

// entry pairs a stored item with its priority.
type entry[T any] struct {
	item     T
	priority float64
}

// Queue is a binary min-heap stored as a dense slice.
// The zero value is an empty queue ready to use.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	heap []entry[T]
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// NewWithCapacity returns an empty queue whose backing slice can hold
// capacity entries before growing.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{heap: make([]entry[T], 0, capacity)}
}

// Enqueue inserts item with the given priority.
// Complexity: O(log n).
func (q *Queue[T]) Enqueue(item T, priority float64) {
	q.heap = append(q.heap, entry[T]{item: item, priority: priority})
	q.siftUp(len(q.heap) - 1)
}

// Dequeue removes and returns the item with the lowest priority.
// The boolean is false (and the item is the zero T) when the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	n := len(q.heap)
	if n == 0 {
		return zero, false
	}

	top := q.heap[0].item
	last := q.heap[n-1]
	q.heap[n-1] = entry[T]{} // release the reference held by the vacated slot
	q.heap = q.heap[:n-1]

	if len(q.heap) > 0 {
		q.heap[0] = last
		q.siftDown(0)
	}

	return top, true
}

// Peek returns the minimum item and its priority without removing it.
func (q *Queue[T]) Peek() (T, float64, bool) {
	if len(q.heap) == 0 {
		var zero T
		return zero, 0, false
	}

	return q.heap[0].item, q.heap[0].priority, true
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return len(q.heap) == 0 }

// Len returns the number of items held, stale duplicates included.
func (q *Queue[T]) Len() int { return len(q.heap) }

// siftUp moves the element at index i towards the root while its priority is
// strictly lower than its parent's.
func (q *Queue[T]) siftUp(i int) {
	elem := q.heap[i]
	for i > 0 {
		parent := (i - 1) / 2
		if q.heap[parent].priority <= elem.priority {
			break
		}
		q.heap[i] = q.heap[parent]
		i = parent
	}
	q.heap[i] = elem
}

// siftDown moves the element at index i towards the leaves, always through the
// child with the strictly smaller priority, and stops when no child is smaller.
func (q *Queue[T]) siftDown(i int) {
	n := len(q.heap)
	elem := q.heap[i]
	for {
		left := 2*i + 1
		right := left + 1
		swap := -1

		if left < n && q.heap[left].priority < elem.priority {
			swap = left
		}
		if right < n {
			bound := elem.priority
			if swap != -1 {
				bound = q.heap[left].priority
			}
			if q.heap[right].priority < bound {
				swap = right
			}
		}

		if swap == -1 {
			break
		}
		q.heap[i] = q.heap[swap]
		i = swap
	}
	q.heap[i] = elem
}

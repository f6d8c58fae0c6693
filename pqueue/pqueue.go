// Package pqueue implements a binary min-heap priority queue keyed by a
// float64 priority, on top of container/heap.
//
// The queue supports the lazy-deletion pattern used by Dijkstra and A*:
// there is no decrease-key; a caller that finds a better priority for a value
// pushes it again and discards stale entries when they are popped.
//
// Entries with equal priority pop in insertion order, so searches built on
// the queue are deterministic.
//
// Complexity:
//
//   - Push, Pop: O(log n)
//   - Peek, Len: O(1)
package pqueue

import "container/heap"

// PriorityQueue is a min-heap of values ordered by priority.
// The zero value is ready to use.
type PriorityQueue[T any] struct {
	items entryHeap[T]
	seq   uint64
}

// New returns an empty queue with room for capacity entries.
func New[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{items: make(entryHeap[T], 0, capacity)}
}

// Len returns the number of queued entries, stale ones included.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// IsEmpty reports whether the queue holds no entries.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.items) == 0 }

// Push queues value with the given priority.
func (pq *PriorityQueue[T]) Push(value T, priority float64) {
	heap.Push(&pq.items, entry[T]{value: value, priority: priority, seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the entry with the lowest priority.
// ok is false when the queue is empty.
func (pq *PriorityQueue[T]) Pop() (value T, priority float64, ok bool) {
	if len(pq.items) == 0 {
		return value, 0, false
	}
	e := heap.Pop(&pq.items).(entry[T])

	return e.value, e.priority, true
}

// Peek returns the lowest-priority entry without removing it.
func (pq *PriorityQueue[T]) Peek() (value T, priority float64, ok bool) {
	if len(pq.items) == 0 {
		return value, 0, false
	}

	return pq.items[0].value, pq.items[0].priority, true
}

// Clear drops every entry.
func (pq *PriorityQueue[T]) Clear() {
	clear(pq.items)
	pq.items = pq.items[:0]
	pq.seq = 0
}

// entry is one queued value; seq breaks priority ties FIFO.
type entry[T any] struct {
	value    T
	priority float64
	seq      uint64
}

// entryHeap implements heap.Interface over entries, smallest priority first.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero
	*h = old[:n-1]

	return item
}

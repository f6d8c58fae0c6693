// Package queue provides a FIFO Queue adapter over linkedlist.List.
//
// Enqueue appends at the tail; Dequeue removes index 0 of the underlying list,
// which the list resolves from the head in O(1). Dequeue and Peek fail with
// ErrEmptyQueue on an empty queue; TryDequeue and TryPeek report absence
// with a boolean instead.
package queue

import (
	"errors"
	"iter"

	"github.com/tp-group5/algokit/linkedlist"
)

// ErrEmptyQueue is returned by Dequeue and Peek on an empty queue.
var ErrEmptyQueue = errors.New("queue: empty queue")

// Queue is a first-in, first-out sequence.
type Queue[T comparable] struct {
	list *linkedlist.List[T]
}

// New creates an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{list: linkedlist.New[T]()}
}

// From creates a queue whose front is values[0].
func From[T comparable](values ...T) *Queue[T] {
	return &Queue[T]{list: linkedlist.From(values...)}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.list.Len() }

// IsEmpty reports whether the queue is empty.
func (q *Queue[T]) IsEmpty() bool { return q.list.IsEmpty() }

// Enqueue adds item at the back.
func (q *Queue[T]) Enqueue(item T) { q.list.Add(item) }

// Dequeue removes and returns the front item.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.list.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.list.RemoveAt(0)
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (T, error) {
	v, ok := q.list.First()
	if !ok {
		return v, ErrEmptyQueue
	}

	return v, nil
}

// TryDequeue is Dequeue reporting emptiness as ok == false.
func (q *Queue[T]) TryDequeue() (T, bool) {
	v, err := q.Dequeue()

	return v, err == nil
}

// TryPeek is Peek reporting emptiness as ok == false.
func (q *Queue[T]) TryPeek() (T, bool) { return q.list.First() }

// Clear drops every item.
func (q *Queue[T]) Clear() { q.list.Clear() }

// ToSlice returns the items from front to back.
func (q *Queue[T]) ToSlice() []T { return q.list.ToSlice() }

// All yields the items from front to back without removing them.
func (q *Queue[T]) All() iter.Seq[T] { return q.list.All() }

// String renders the queue front to back.
func (q *Queue[T]) String() string { return q.list.String() }

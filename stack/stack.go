// Package stack provides a LIFO Stack adapter over dynarray.Array.
//
// Pop removes the last logical element by index, so duplicate values never
// cause a lower occurrence to be removed instead of the true top.
package stack

import (
	"errors"

	"github.com/tp-group5/algokit/dynarray"
)

// ErrEmptyStack is returned by Pop and Peek on an empty stack.
var ErrEmptyStack = errors.New("stack: empty stack")

// Stack is a last-in, first-out sequence.
type Stack[T comparable] struct {
	items *dynarray.Array[T]
}

// New creates an empty stack with the default backing capacity.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{items: dynarray.New[T](0)}
}

// Len returns the number of items.
func (s *Stack[T]) Len() int { return s.items.Len() }

// IsEmpty reports whether the stack is empty.
func (s *Stack[T]) IsEmpty() bool { return s.items.IsEmpty() }

// Push places item on top.
func (s *Stack[T]) Push(item T) { s.items.Add(item) }

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	if s.items.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items.RemoveAt(s.items.Len() - 1)
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.items.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items.Get(s.items.Len() - 1)
}

// TryPop is Pop reporting emptiness as ok == false.
func (s *Stack[T]) TryPop() (T, bool) {
	v, err := s.Pop()

	return v, err == nil
}

// TryPeek is Peek reporting emptiness as ok == false.
func (s *Stack[T]) TryPeek() (T, bool) {
	v, err := s.Peek()

	return v, err == nil
}

// Clear drops every item.
func (s *Stack[T]) Clear() { s.items.Clear() }

// ToSlice returns the items from bottom to top.
func (s *Stack[T]) ToSlice() []T { return s.items.ToSlice() }

// String renders the items bottom to top, joined with ", ".
func (s *Stack[T]) String() string { return s.items.String() }

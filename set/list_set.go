package set

import (
	"iter"

	"github.com/tp-group5/algokit/dynarray"
)

// ListSet is a Set stored in a dynarray.Array.
type ListSet[T comparable] struct {
	items *dynarray.Array[T]
}

// NewListSet creates an empty ListSet; capacity ≤ 0 selects the array default.
func NewListSet[T comparable](capacity int) *ListSet[T] {
	return &ListSet[T]{items: dynarray.New[T](capacity)}
}

// Add appends item to the backing array unless it is already present.
// It reports whether item was added.
func (s *ListSet[T]) Add(item T) bool {
	if s.items.Contains(item) {
		return false
	}
	s.items.Add(item)

	return true
}

// Remove deletes item and reports whether it was present.
func (s *ListSet[T]) Remove(item T) bool { return s.items.Remove(item) }

// Contains reports whether item is in the set. O(n).
func (s *ListSet[T]) Contains(item T) bool { return s.items.Contains(item) }

// Clear empties the set.
func (s *ListSet[T]) Clear() { s.items.Clear() }

// Cardinality returns the number of elements.
func (s *ListSet[T]) Cardinality() int { return s.items.Len() }

// IsEmpty reports whether the set has no elements.
func (s *ListSet[T]) IsEmpty() bool { return s.items.IsEmpty() }

// Values returns a copy of the elements in insertion order.
func (s *ListSet[T]) Values() []T { return s.items.ToSlice() }

// All yields the elements in insertion order.
func (s *ListSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// String renders the set as "{a, b, c}".
func (s *ListSet[T]) String() string { return format[T](s) }

// Union returns a new ListSet holding the elements of s and other.
func (s *ListSet[T]) Union(other Set[T]) Set[T] { return union[T](s, other) }

// Intersect returns a new ListSet holding the elements common to s and other.
func (s *ListSet[T]) Intersect(other Set[T]) Set[T] { return intersect[T](s, other) }

// Difference returns a new ListSet holding the elements of s not in other.
func (s *ListSet[T]) Difference(other Set[T]) Set[T] { return difference[T](s, other) }

func (s *ListSet[T]) cloneEmpty() Set[T] { return NewListSet[T](s.items.Len()) }

var (
	_ Set[int] = (*ArraySet[int])(nil)
	_ Set[int] = (*ListSet[int])(nil)
)

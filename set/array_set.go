package set

import "iter"

// defaultArrayCapacity is used when NewArraySet receives a capacity below 1.
const defaultArrayCapacity = 8

// ArraySet is a Set stored in a contiguous slice it grows itself.
type ArraySet[T comparable] struct {
	items []T
	count int
}

// NewArraySet creates an empty ArraySet.
func NewArraySet[T comparable](capacity int) *ArraySet[T] {
	if capacity < 1 {
		capacity = defaultArrayCapacity
	}

	return &ArraySet[T]{items: make([]T, capacity)}
}

func (s *ArraySet[T]) indexOf(item T) int {
	for i := 0; i < s.count; i++ {
		if s.items[i] == item {
			return i
		}
	}

	return -1
}

// Add appends item unless it is already present, doubling the backing
// slice when full. It reports whether item was added.
func (s *ArraySet[T]) Add(item T) bool {
	if s.indexOf(item) >= 0 {
		return false
	}
	if s.count == len(s.items) {
		grown := make([]T, max(len(s.items)*2, s.count+1))
		copy(grown, s.items[:s.count])
		s.items = grown
	}
	s.items[s.count] = item
	s.count++

	return true
}

// Remove deletes item, shifting later elements left to keep insertion order.
// It reports whether item was present.
func (s *ArraySet[T]) Remove(item T) bool {
	i := s.indexOf(item)
	if i < 0 {
		return false
	}
	copy(s.items[i:s.count-1], s.items[i+1:s.count])
	s.count--
	var zero T
	s.items[s.count] = zero

	return true
}

// Contains reports whether item is in the set. O(n).
func (s *ArraySet[T]) Contains(item T) bool { return s.indexOf(item) >= 0 }

// Clear zeroes the active slots and empties the set; capacity is kept.
func (s *ArraySet[T]) Clear() {
	var zero T
	for i := 0; i < s.count; i++ {
		s.items[i] = zero
	}
	s.count = 0
}

// Cardinality returns the number of elements.
func (s *ArraySet[T]) Cardinality() int { return s.count }

// IsEmpty reports whether the set has no elements.
func (s *ArraySet[T]) IsEmpty() bool { return s.count == 0 }

// Values returns a copy of the elements in insertion order.
func (s *ArraySet[T]) Values() []T {
	out := make([]T, s.count)
	copy(out, s.items[:s.count])

	return out
}

// All yields the elements in insertion order.
func (s *ArraySet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// String renders the set as "{a, b, c}".
func (s *ArraySet[T]) String() string { return format[T](s) }

// Union returns a new ArraySet holding the elements of s and other.
func (s *ArraySet[T]) Union(other Set[T]) Set[T] { return union[T](s, other) }

// Intersect returns a new ArraySet holding the elements common to s and other.
func (s *ArraySet[T]) Intersect(other Set[T]) Set[T] { return intersect[T](s, other) }

// Difference returns a new ArraySet holding the elements of s not in other.
func (s *ArraySet[T]) Difference(other Set[T]) Set[T] { return difference[T](s, other) }

func (s *ArraySet[T]) cloneEmpty() Set[T] { return NewArraySet[T](len(s.items)) }

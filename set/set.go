package set

import (
	"fmt"
	"iter"
	"strings"
)

// Set is a collection of unique comparable elements.
type Set[T comparable] interface {
	// Add inserts item and reports whether it was absent.
	Add(item T) bool
	// Remove deletes item and reports whether it was present.
	Remove(item T) bool
	Contains(item T) bool
	Clear()
	Cardinality() int
	IsEmpty() bool
	// Values returns a snapshot of the elements.
	Values() []T
	All() iter.Seq[T]
	String() string

	Union(other Set[T]) Set[T]
	Intersect(other Set[T]) Set[T]
	Difference(other Set[T]) Set[T]

	// cloneEmpty returns an empty set of the same backing type.
	cloneEmpty() Set[T]
}

// Of builds a ListSet holding items.
func Of[T comparable](items ...T) Set[T] {
	s := NewListSet[T](len(items))
	for _, it := range items {
		s.Add(it)
	}

	return s
}

// IsSubset reports whether every element of a is in b.
func IsSubset[T comparable](a, b Set[T]) bool {
	for v := range a.All() {
		if !b.Contains(v) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b hold the same elements.
func Equal[T comparable](a, b Set[T]) bool {
	return a.Cardinality() == b.Cardinality() && IsSubset(a, b)
}

func union[T comparable](s, other Set[T]) Set[T] {
	out := s.cloneEmpty()
	for v := range s.All() {
		out.Add(v)
	}
	if other != nil {
		for v := range other.All() {
			out.Add(v)
		}
	}

	return out
}

func intersect[T comparable](s, other Set[T]) Set[T] {
	out := s.cloneEmpty()
	if other == nil {
		return out
	}
	small, large := s, other
	if large.Cardinality() < small.Cardinality() {
		small, large = large, small
	}
	for v := range small.All() {
		if large.Contains(v) {
			out.Add(v)
		}
	}

	return out
}

func difference[T comparable](s, other Set[T]) Set[T] {
	out := s.cloneEmpty()
	for v := range s.All() {
		if other == nil || !other.Contains(v) {
			out.Add(v)
		}
	}

	return out
}

func format[T comparable](s Set[T]) string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte('}')

	return sb.String()
}

// Package compare defines the three-way comparer shared by the sortable
// containers of algokit, plus the natural ordering for built-in ordered types.
//
// A Comparer returns a negative number when a < b, zero when a == b and a
// positive number when a > b, the same contract as cmp.Compare.
package compare

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrNoComparer is returned by sort operations when neither the caller nor the
// container supplies a comparer.
var ErrNoComparer = errors.New("compare: no comparer available")

// Comparer orders two values of type T.
type Comparer[T any] func(a, b T) int

// Natural returns the ascending comparer for an ordered type.
// NaN sorts before every other float, matching cmp.Compare.
func Natural[T constraints.Ordered]() Comparer[T] {
	return func(a, b T) int {
		aNaN, bNaN := a != a, b != b
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return -1
		case bNaN:
			return 1
		case a < b:
			return -1
		case a > b:
			return 1
		}

		return 0
	}
}

// Reverse flips the order of c.
func Reverse[T any](c Comparer[T]) Comparer[T] {
	return func(a, b T) int { return c(b, a) }
}

// Resolve returns the first non-nil comparer, or ErrNoComparer.
func Resolve[T any](cs ...Comparer[T]) (Comparer[T], error) {
	for _, c := range cs {
		if c != nil {
			return c, nil
		}
	}

	return nil, ErrNoComparer
}

package dynarray

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/tp-group5/algokit/compare"
)

// DefaultCapacity is the backing size used when New receives a non-positive capacity.
const DefaultCapacity = 20

// ErrIndexOutOfRange indicates an index outside [0, Len()).
var ErrIndexOutOfRange = errors.New("dynarray: index out of range")

// Array is a resizable contiguous sequence of comparable values.
type Array[T comparable] struct {
	items []T
	count int
	cmp   compare.Comparer[T] // fallback comparer for the sort methods; may be nil
}

// New creates an empty Array with the given initial capacity.
// A capacity ≤ 0 selects DefaultCapacity.
func New[T comparable](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Array[T]{items: make([]T, capacity)}
}

// From creates an Array holding a copy of items, in order.
func From[T comparable](items []T) *Array[T] {
	a := New[T](len(items))
	a.AddRange(items...)

	return a
}

// NewOrdered creates an empty Array whose sort methods default to ascending order.
func NewOrdered[T constraints.Ordered](capacity int) *Array[T] {
	a := New[T](capacity)
	a.cmp = compare.Natural[T]()

	return a
}

// WithComparer attaches c as the fallback comparer and returns a for chaining.
func (a *Array[T]) WithComparer(c compare.Comparer[T]) *Array[T] {
	a.cmp = c

	return a
}

// Len returns the number of active elements.
func (a *Array[T]) Len() int { return a.count }

// Cap returns the size of the backing buffer.
func (a *Array[T]) Cap() int { return len(a.items) }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.count == 0 }

// Add appends item, growing the buffer if needed.
func (a *Array[T]) Add(item T) {
	a.ensureCapacity(a.count + 1)
	a.items[a.count] = item
	a.count++
}

// AddRange appends items in order with at most one reallocation.
func (a *Array[T]) AddRange(items ...T) {
	if len(items) == 0 {
		return
	}
	a.ensureCapacity(a.count + len(items))
	copy(a.items[a.count:], items)
	a.count += len(items)
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return a.items[i], nil
}

// Set replaces the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.items[i] = v

	return nil
}

// IndexOf returns the index of the first element equal to item, or -1.
func (a *Array[T]) IndexOf(item T) int {
	for i := 0; i < a.count; i++ {
		if a.items[i] == item {
			return i
		}
	}

	return -1
}

// Contains reports whether item is present.
func (a *Array[T]) Contains(item T) bool { return a.IndexOf(item) >= 0 }

// Remove deletes the first element equal to item, shifting the tail left.
// It reports whether an element was removed.
func (a *Array[T]) Remove(item T) bool {
	i := a.IndexOf(item)
	if i < 0 {
		return false
	}
	_, _ = a.RemoveAt(i)

	return true
}

// RemoveAt deletes and returns the element at index i.
func (a *Array[T]) RemoveAt(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	v := a.items[i]
	copy(a.items[i:a.count-1], a.items[i+1:a.count])
	var zero T
	a.items[a.count-1] = zero
	a.count--

	return v, nil
}

// Clear drops every element without shrinking the buffer.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.count; i++ {
		a.items[i] = zero
	}
	a.count = 0
}

// Sort orders the active elements in place in O(n log n).
// The order of equal elements is unspecified.
func (a *Array[T]) Sort(c compare.Comparer[T]) error {
	c, err := compare.Resolve(c, a.cmp)
	if err != nil {
		return fmt.Errorf("dynarray: sort: %w", err)
	}
	slices.SortFunc(a.items[:a.count], c)

	return nil
}

// BubbleSort orders the active elements with bubble sort, stopping early
// once a full pass performs no swap.
func (a *Array[T]) BubbleSort(c compare.Comparer[T]) error {
	c, err := compare.Resolve(c, a.cmp)
	if err != nil {
		return fmt.Errorf("dynarray: bubble sort: %w", err)
	}
	for end := a.count - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if c(a.items[i], a.items[i+1]) > 0 {
				a.items[i], a.items[i+1] = a.items[i+1], a.items[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return nil
}

// SelectionSort orders the active elements with selection sort.
func (a *Array[T]) SelectionSort(c compare.Comparer[T]) error {
	c, err := compare.Resolve(c, a.cmp)
	if err != nil {
		return fmt.Errorf("dynarray: selection sort: %w", err)
	}
	for i := 0; i < a.count-1; i++ {
		lowest := i
		for j := i + 1; j < a.count; j++ {
			if c(a.items[j], a.items[lowest]) < 0 {
				lowest = j
			}
		}
		if lowest != i {
			a.items[i], a.items[lowest] = a.items[lowest], a.items[i]
		}
	}

	return nil
}

// ToSlice returns a copy of the active elements.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.count)
	copy(out, a.items[:a.count])

	return out
}

// All yields index/value pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.count; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// String joins the elements with ", ".
func (a *Array[T]) String() string {
	var sb strings.Builder
	for i := 0; i < a.count; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, a.items[i])
	}

	return sb.String()
}

func (a *Array[T]) checkIndex(i int) error {
	if i < 0 || i >= a.count {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, a.count)
	}

	return nil
}

// ensureCapacity grows the buffer to max(2×cap, need) when cap < need.
func (a *Array[T]) ensureCapacity(need int) {
	if len(a.items) >= need {
		return
	}
	newCap := max(len(a.items)*2, need)
	grown := make([]T, newCap)
	copy(grown, a.items[:a.count])
	a.items = grown
}

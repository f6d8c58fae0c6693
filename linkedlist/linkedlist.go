package linkedlist

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/tp-group5/algokit/compare"
)

// Sentinel errors for list operations.
var (
	// ErrIndexOutOfRange indicates an index outside the valid range.
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")

	// ErrSelfSplice indicates SpliceFrom was called with the receiver itself.
	ErrSelfSplice = errors.New("linkedlist: cannot splice a list into itself")
)

// node is one link of the chain; the list owns every node it reaches.
type node[T any] struct {
	data T
	next *node[T]
	prev *node[T]
}

// List is a doubly linked list of comparable values.
type List[T comparable] struct {
	head  *node[T]
	tail  *node[T]
	count int
	cmp   compare.Comparer[T] // fallback comparer for Sort; may be nil
}

// New creates an empty list.
func New[T comparable]() *List[T] { return &List[T]{} }

// From creates a list holding values in order.
func From[T comparable](values ...T) *List[T] {
	l := New[T]()
	l.AddRange(values...)

	return l
}

// WithComparer attaches c as the fallback comparer for Sort and returns l.
func (l *List[T]) WithComparer(c compare.Comparer[T]) *List[T] {
	l.cmp = c

	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.count }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.count == 0 }

// First returns the head value.
func (l *List[T]) First() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.data, true
}

// Last returns the tail value.
func (l *List[T]) Last() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	return l.tail.data, true
}

// Add appends value at the tail.
func (l *List[T]) Add(value T) {
	n := &node[T]{data: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.count++
}

// AddRange appends values in order.
func (l *List[T]) AddRange(values ...T) {
	for _, v := range values {
		l.Add(v)
	}
}

// SpliceFrom moves all nodes of src to the end of l in O(1).
// src is left empty (Len() == 0); its former nodes now belong to l.
func (l *List[T]) SpliceFrom(src *List[T]) error {
	if src == l {
		return ErrSelfSplice
	}
	if src == nil || src.count == 0 {
		return nil
	}
	if l.count == 0 {
		l.head, l.tail = src.head, src.tail
	} else {
		l.tail.next = src.head
		src.head.prev = l.tail
		l.tail = src.tail
	}
	l.count += src.count
	src.head, src.tail, src.count = nil, nil, 0

	return nil
}

// Get returns the value at index i.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.count {
		var zero T
		return zero, l.indexError(i)
	}

	return l.nodeAt(i).data, nil
}

// Insert places value at index i, shifting later elements right.
// i == Len() appends.
func (l *List[T]) Insert(i int, value T) error {
	if i < 0 || i > l.count {
		return l.indexError(i)
	}
	switch {
	case i == l.count:
		l.Add(value)
	case i == 0:
		n := &node[T]{data: value, next: l.head}
		l.head.prev = n
		l.head = n
		l.count++
	default:
		next := l.nodeAt(i)
		n := &node[T]{data: value, next: next, prev: next.prev}
		next.prev.next = n
		next.prev = n
		l.count++
	}

	return nil
}

// RemoveAt unlinks and returns the value at index i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.count {
		var zero T
		return zero, l.indexError(i)
	}
	n := l.nodeAt(i)
	l.unlink(n)

	return n.data, nil
}

// Remove unlinks the first node holding value and reports whether one was found.
func (l *List[T]) Remove(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.data == value {
			l.unlink(n)
			return true
		}
	}

	return false
}

// Contains reports whether value is present.
func (l *List[T]) Contains(value T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.data == value {
			return true
		}
	}

	return false
}

// Clear breaks every link and empties the list.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		var zero T
		n.next, n.prev, n.data = nil, nil, zero
		n = next
	}
	l.head, l.tail, l.count = nil, nil, 0
}

// Sort orders the list with a stable merge sort.
// A nil comparer falls back to the one attached with WithComparer.
func (l *List[T]) Sort(c compare.Comparer[T]) error {
	c, err := compare.Resolve(c, l.cmp)
	if err != nil {
		return fmt.Errorf("linkedlist: sort: %w", err)
	}
	if l.count <= 1 {
		return nil
	}
	l.head = mergeSort(l.head, c)
	l.head.prev = nil
	t := l.head
	for t.next != nil {
		t = t.next
	}
	l.tail = t

	return nil
}

// ToSlice returns the values from head to tail.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.data)
	}

	return out
}

// All yields the values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.data) {
				return
			}
		}
	}
}

// String renders the list as "a -> b -> c".
func (l *List[T]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteString(" -> ")
		}
		fmt.Fprint(&sb, n.data)
	}

	return sb.String()
}

// nodeAt walks from whichever end is closer to i. i must be in range.
func (l *List[T]) nodeAt(i int) *node[T] {
	if i < l.count/2 {
		n := l.head
		for k := 0; k < i; k++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for k := l.count - 1; k > i; k-- {
		n = n.prev
	}

	return n
}

func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next, n.prev = nil, nil
	l.count--
}

func (l *List[T]) indexError(i int) error {
	return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, l.count)
}

package linkedlist

import "github.com/tp-group5/algokit/compare"

// mergeSort sorts the chain starting at head and returns the new head.
// The returned chain has consistent prev links except for head.prev.
func mergeSort[T any](head *node[T], c compare.Comparer[T]) *node[T] {
	if head == nil || head.next == nil {
		return head
	}
	mid := middle(head)
	right := mid.next
	mid.next = nil
	right.prev = nil

	return merge(mergeSort(head, c), mergeSort(right, c), c)
}

// middle returns the last node of the first half (slow/fast pointers).
func middle[T any](head *node[T]) *node[T] {
	slow, fast := head, head
	for fast.next != nil && fast.next.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	return slow
}

// merge interleaves two sorted chains, relinking prev as it goes.
// On ties the left chain wins, which keeps the sort stable.
func merge[T any](left, right *node[T], c compare.Comparer[T]) *node[T] {
	var sentinel node[T]
	tail := &sentinel
	for left != nil && right != nil {
		if c(left.data, right.data) <= 0 {
			tail.next, left.prev = left, tail
			left = left.next
		} else {
			tail.next, right.prev = right, tail
			right = right.next
		}
		tail = tail.next
	}
	rest := left
	if rest == nil {
		rest = right
	}
	tail.next = rest
	if rest != nil {
		rest.prev = tail
	}
	head := sentinel.next
	head.prev = nil

	return head
}

// Package linkedlist provides List, a doubly linked sequence with a stable
// merge sort and a consuming splice.
//
// Invariants:
//
//   - head.prev == nil and tail.next == nil.
//   - Len() equals the number of nodes reachable from head.
//
// Complexity:
//
//   - Add, AddRange (per value), First, Last: O(1)
//   - Get, Insert, RemoveAt: O(min(i, n-i)); the walk starts at the closer end
//   - Remove (by value): O(n)
//   - Sort: O(n log n) time, O(1) extra links
//   - SpliceFrom: O(1)
//
// Sort uses merge sort: random access is not available, so quicksort is a poor
// fit, and insertion/bubble sort are quadratic on average. The split uses the
// slow/fast pointer technique and ties keep the left run first (stable).
//
// SpliceFrom is a consuming merge. It moves every node of the source list to
// the end of the receiver and leaves the source empty. Callers must not expect
// the source to keep its elements.
//
// There is no positional setter; positions are read-only.
//
// Concurrency:
//
//	List is not safe for concurrent mutation; callers serialize writers.
package linkedlist

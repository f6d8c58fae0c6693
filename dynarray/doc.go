// Package dynarray provides Array, a growable contiguous sequence.
//
// What:
//
//   - Array[T] keeps a backing slice and a logical count (count ≤ capacity).
//   - Growth doubles the capacity, or jumps straight to the requested minimum
//     when that is larger.
//   - Vacated slots (Remove, RemoveAt, Clear) are reset to the zero value so
//     the array never retains stale references.
//
// Complexity:
//
//   - Add:            amortized O(1)
//   - AddRange:       O(k)
//   - Get / Set:      O(1), bounds-checked (ErrIndexOutOfRange)
//   - Remove:         O(n) scan + shift-left
//   - Sort:           O(n log n), in place over the active region only
//   - BubbleSort,
//     SelectionSort:  O(n²), kept for side-by-side comparison with Sort
//
// Comparers:
//
//	Sort, BubbleSort and SelectionSort accept a compare.Comparer. Passing nil
//	falls back to the comparer attached at construction (NewOrdered attaches
//	the natural order); with neither, compare.ErrNoComparer is returned.
//
// Concurrency:
//
//	Array is not safe for concurrent mutation; callers serialize writers.
package dynarray

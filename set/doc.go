// Package set provides an equality-based Set abstraction with two
// interchangeable backings and the Union, Intersect and Difference operations.
//
// Backings:
//
//   - ArraySet: manages its own contiguous slice (default capacity 8,
//     doubling on growth).
//   - ListSet: stores elements in a dynarray.Array.
//
// Neither backing hashes; membership is a linear scan, O(n). Elements are
// unordered from the caller's point of view, but both backings happen to
// iterate in insertion order.
//
// Set operations return a new set of the receiver's backing type:
//
//   - Union(other):      every element of the receiver, then of other.
//   - Intersect(other):  scans the smaller operand, probing the larger.
//   - Difference(other): receiver \ other.
package set

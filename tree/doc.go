// Package tree provides an ordered binary search tree (BST) and its AVL
// self-balancing variant.
//
// What:
//
//   - BST[T] orders values with a compare.Comparer; duplicates are ignored.
//   - AVL[T] embeds *BST[T] and runs a post-order rebalancing pass from the
//     root after every Insert and Delete, so |BalanceFactor| ≤ 1 holds at
//     every node once the call returns.
//   - Both satisfy the Tree[T] interface.
//
// Heights are node-based: an empty subtree has height 0 and a leaf has
// height 1. The balance factor of a node is height(left) − height(right).
//
// Delete:
//
//   - leaf: detached from its parent.
//   - one child: the child takes the node's place.
//   - two children: the node takes the value of its in-order predecessor
//     (maximum of the left subtree), which is then removed; the predecessor
//     has at most one child. Parents are found by descending from the root;
//     nodes carry no parent pointer.
//
// Complexity:
//
//   - BST Insert / Delete / Contains: O(h), h = tree height (O(n) worst case)
//   - AVL Insert / Delete: O(n) per call; the rebalancing pass visits the
//     whole tree rather than only the mutated path. The resulting shape is
//     the standard AVL shape.
//   - Traversals: O(n)
//
// Errors:
//
//   - ErrNotFound: Delete, Lookup or BalanceFactorOf on an absent value.
//
// Concurrency:
//
//	Trees are not safe for concurrent mutation; callers serialize writers.
package tree

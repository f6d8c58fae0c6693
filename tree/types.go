package tree

import "errors"

// ErrNotFound indicates that the requested value is not stored in the tree.
var ErrNotFound = errors.New("tree: data not found")

// Node is one tree node. Callers receive nodes for read-only inspection
// (rendering, level-order walks); mutating them breaks the tree invariants.
type Node[T any] struct {
	data        T
	left, right *Node[T]
}

// Data returns the value stored in n.
func (n *Node[T]) Data() T { return n.data }

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool { return n.left == nil && n.right == nil }

// Tree is the shared surface of BST and AVL.
type Tree[T any] interface {
	Insert(v T) bool
	Delete(v T) error
	Contains(v T) bool
	Len() int
	Root() *Node[T]
	Height() int
	BalanceFactor() int
	PreOrder(visit func(T))
	InOrder(visit func(T))
	PostOrder(visit func(T))
	LevelOrder(visit func(T))
	Values() []T
	Clear()
}

// NodeHeight returns the node-based height of the subtree rooted at n.
func NodeHeight[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(NodeHeight(n.left), NodeHeight(n.right))
}

// NodeBalance returns height(n.left) − height(n.right); 0 for nil.
func NodeBalance[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return NodeHeight(n.left) - NodeHeight(n.right)
}

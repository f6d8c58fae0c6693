package tree

import (
	"golang.org/x/exp/constraints"

	"github.com/tp-group5/algokit/compare"
)

// AVL is a BST that restores |balance factor| ≤ 1 after every mutation.
type AVL[T any] struct {
	*BST[T]
}

// NewAVL creates an empty AVL tree ordered ascending.
func NewAVL[T constraints.Ordered]() *AVL[T] {
	return &AVL[T]{BST: New[T]()}
}

// NewAVLFunc creates an empty AVL tree ordered by c. c must not be nil.
func NewAVLFunc[T any](c compare.Comparer[T]) *AVL[T] {
	return &AVL[T]{BST: NewFunc(c)}
}

// Insert adds v and rebalances. It reports whether v was new.
func (a *AVL[T]) Insert(v T) bool {
	if !a.BST.Insert(v) {
		return false
	}
	a.root = rebalance(a.root)

	return true
}

// Delete removes v and rebalances.
func (a *AVL[T]) Delete(v T) error {
	if err := a.BST.Delete(v); err != nil {
		return err
	}
	a.root = rebalance(a.root)

	return nil
}

// rebalance fixes the subtree rooted at n bottom-up and returns its new root.
func rebalance[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	n.left = rebalance(n.left)
	n.right = rebalance(n.right)

	switch bf := NodeBalance(n); {
	case bf > 1:
		if NodeBalance(n.left) < 0 { // LR
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n) // LL
	case bf < -1:
		if NodeBalance(n.right) > 0 { // RL
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n) // RR
	}

	return n
}

// rotateRight promotes n.left; its former right child becomes n's left child.
func rotateRight[T any](n *Node[T]) *Node[T] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	return pivot
}

// rotateLeft promotes n.right; its former left child becomes n's right child.
func rotateLeft[T any](n *Node[T]) *Node[T] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	return pivot
}

var (
	_ Tree[int] = (*BST[int])(nil)
	_ Tree[int] = (*AVL[int])(nil)
)

package tree

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/tp-group5/algokit/compare"
	"github.com/tp-group5/algokit/queue"
)

// BST is an unbalanced binary search tree without duplicates.
type BST[T any] struct {
	root  *Node[T]
	count int
	cmp   compare.Comparer[T]
}

// New creates an empty BST ordered ascending.
func New[T constraints.Ordered]() *BST[T] {
	return NewFunc(compare.Natural[T]())
}

// NewFunc creates an empty BST ordered by c. c must not be nil.
func NewFunc[T any](c compare.Comparer[T]) *BST[T] {
	if c == nil {
		panic(compare.ErrNoComparer.Error())
	}

	return &BST[T]{cmp: c}
}

// Len returns the number of stored values.
func (t *BST[T]) Len() int { return t.count }

// IsEmpty reports whether the tree holds no values.
func (t *BST[T]) IsEmpty() bool { return t.count == 0 }

// Root returns the root node, or nil for an empty tree.
func (t *BST[T]) Root() *Node[T] { return t.root }

// Insert adds v and reports whether it was new. Inserting a value that
// compares equal to a stored one is a no-op.
func (t *BST[T]) Insert(v T) bool {
	if t.root == nil {
		t.root = &Node[T]{data: v}
		t.count++
		return true
	}
	if !t.insertAt(t.root, v) {
		return false
	}
	t.count++

	return true
}

// insertAt descends from cur and hangs v on the first empty slot.
func (t *BST[T]) insertAt(cur *Node[T], v T) bool {
	c := t.cmp(v, cur.data)
	switch {
	case c == 0:
		return false
	case c < 0:
		if cur.left == nil {
			cur.left = &Node[T]{data: v}
			return true
		}
		return t.insertAt(cur.left, v)
	default:
		if cur.right == nil {
			cur.right = &Node[T]{data: v}
			return true
		}
		return t.insertAt(cur.right, v)
	}
}

// Contains reports whether v is stored.
func (t *BST[T]) Contains(v T) bool {
	_, n := t.find(v)

	return n != nil
}

// Lookup returns the node holding v.
func (t *BST[T]) Lookup(v T) (*Node[T], error) {
	_, n := t.find(v)
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, v)
	}

	return n, nil
}

// find returns the node holding v and its parent (nil for the root).
func (t *BST[T]) find(v T) (parent, n *Node[T]) {
	n = t.root
	for n != nil {
		c := t.cmp(v, n.data)
		if c == 0 {
			return parent, n
		}
		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	return nil, nil
}

// Delete removes v.
func (t *BST[T]) Delete(v T) error {
	parent, n := t.find(v)
	if n == nil {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	t.deleteNode(parent, n)
	t.count--

	return nil
}

func (t *BST[T]) deleteNode(parent, n *Node[T]) {
	if n.left != nil && n.right != nil {
		// in-order predecessor: rightmost node of the left subtree
		predParent, pred := n, n.left
		for pred.right != nil {
			predParent, pred = pred, pred.right
		}
		n.data = pred.data
		t.deleteNode(predParent, pred)
		return
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	switch {
	case parent == nil:
		t.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}
	n.left, n.right = nil, nil
}

// Height returns the node-based height of the whole tree.
func (t *BST[T]) Height() int { return NodeHeight(t.root) }

// BalanceFactor returns the balance factor of the root.
func (t *BST[T]) BalanceFactor() int { return NodeBalance(t.root) }

// BalanceFactorOf returns the balance factor of the node holding v.
func (t *BST[T]) BalanceFactorOf(v T) (int, error) {
	n, err := t.Lookup(v)
	if err != nil {
		return 0, err
	}

	return NodeBalance(n), nil
}

// IsBalanced reports whether every node has |balance factor| ≤ 1.
func (t *BST[T]) IsBalanced() bool {
	_, ok := balancedHeight(t.root)

	return ok
}

func balancedHeight[T any](n *Node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}
	hl, okl := balancedHeight(n.left)
	hr, okr := balancedHeight(n.right)
	if !okl || !okr || hl-hr > 1 || hr-hl > 1 {
		return 0, false
	}

	return 1 + max(hl, hr), true
}

// Min returns the smallest value.
func (t *BST[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.data, true
}

// Max returns the largest value.
func (t *BST[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.data, true
}

// PreOrder visits node, left subtree, right subtree.
func (t *BST[T]) PreOrder(visit func(T)) { preOrder(t.root, visit) }

// InOrder visits values in ascending comparer order.
func (t *BST[T]) InOrder(visit func(T)) { inOrder(t.root, visit) }

// PostOrder visits left subtree, right subtree, node.
func (t *BST[T]) PostOrder(visit func(T)) { postOrder(t.root, visit) }

// LevelOrder visits values breadth-first, left to right within a level.
func (t *BST[T]) LevelOrder(visit func(T)) {
	if t.root == nil {
		return
	}
	q := queue.From(t.root)
	for n, ok := q.TryDequeue(); ok; n, ok = q.TryDequeue() {
		visit(n.data)
		if n.left != nil {
			q.Enqueue(n.left)
		}
		if n.right != nil {
			q.Enqueue(n.right)
		}
	}
}

// Values returns the values in ascending order.
func (t *BST[T]) Values() []T {
	out := make([]T, 0, t.count)
	t.InOrder(func(v T) { out = append(out, v) })

	return out
}

// Clear detaches every node and empties the tree.
func (t *BST[T]) Clear() {
	detach(t.root)
	t.root = nil
	t.count = 0
}

func detach[T any](n *Node[T]) {
	if n == nil {
		return
	}
	detach(n.left)
	detach(n.right)
	n.left, n.right = nil, nil
}

func preOrder[T any](n *Node[T], visit func(T)) {
	if n == nil {
		return
	}
	visit(n.data)
	preOrder(n.left, visit)
	preOrder(n.right, visit)
}

func inOrder[T any](n *Node[T], visit func(T)) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n.data)
	inOrder(n.right, visit)
}

func postOrder[T any](n *Node[T], visit func(T)) {
	if n == nil {
		return
	}
	postOrder(n.left, visit)
	postOrder(n.right, visit)
	visit(n.data)
}

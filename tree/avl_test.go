package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/tp-group5/algokit/tree"
)

func TestAVL_RotationCases(t *testing.T) {
	cases := []struct {
		name   string
		insert []int
		pre    []int
	}{
		{"LL", []int{30, 20, 10}, []int{20, 10, 30}},
		{"RR", []int{10, 20, 30}, []int{20, 10, 30}},
		{"LR", []int{30, 10, 20}, []int{20, 10, 30}},
		{"RL", []int{10, 30, 20}, []int{20, 10, 30}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			avl := tree.NewAVL[int]()
			for _, v := range tc.insert {
				require.True(t, avl.Insert(v))
			}
			assert.Equal(t, tc.pre, collect(avl.PreOrder))
			assert.Equal(t, 2, avl.Height())
			assert.True(t, avl.IsBalanced())
		})
	}
}

func TestAVL_AscendingInsertStaysLogarithmic(t *testing.T) {
	avl := tree.NewAVL[int]()
	for i := 1; i <= 1023; i++ {
		avl.Insert(i)
	}
	assert.Equal(t, 1023, avl.Len())
	assert.Equal(t, 10, avl.Height(), "a perfect tree of 1023 nodes")
	assert.True(t, avl.IsBalanced())
}

func TestAVL_DeleteRebalances(t *testing.T) {
	avl := tree.NewAVL[int]()
	for _, v := range []int{20, 10, 30, 25, 40} {
		avl.Insert(v)
	}
	// removing 10 leaves 20 right-heavy by two
	require.NoError(t, avl.Delete(10))
	assert.True(t, avl.IsBalanced())
	assert.Equal(t, 30, avl.Root().Data())
	assert.Equal(t, []int{20, 25, 30, 40}, avl.Values())

	assert.ErrorIs(t, avl.Delete(10), tree.ErrNotFound)
}

// TestAVL_RandomMutationsStayBalanced checks the balance invariant after every call.
func TestAVL_RandomMutationsStayBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	avl := tree.NewAVL[int]()
	present := map[int]bool{}
	for step := 0; step < 1500; step++ {
		v := rng.Intn(400)
		if rng.Intn(3) == 0 {
			err := avl.Delete(v)
			if present[v] {
				require.NoError(t, err)
				delete(present, v)
			} else {
				require.ErrorIs(t, err, tree.ErrNotFound)
			}
		} else {
			assert.Equal(t, !present[v], avl.Insert(v))
			present[v] = true
		}
		require.True(t, avl.IsBalanced(), "step %d", step)
		require.Equal(t, len(present), avl.Len())
	}

	checkBalance(t, avl.Root())
	values := avl.Values()
	assert.True(t, slices.IsSorted(values))
	for v := range present {
		assert.True(t, avl.Contains(v))
	}
}

// checkBalance asserts |balance factor| ≤ 1 at every node.
func checkBalance(t *testing.T, n *tree.Node[int]) {
	t.Helper()
	if n == nil {
		return
	}
	bf := tree.NodeBalance(n)
	assert.True(t, bf >= -1 && bf <= 1, "node %d has balance factor %d", n.Data(), bf)
	checkBalance(t, n.Left())
	checkBalance(t, n.Right())
}

func TestTreeInterface(t *testing.T) {
	trees := map[string]tree.Tree[int]{
		"BST": tree.New[int](),
		"AVL": tree.NewAVL[int](),
	}
	for name, tr := range trees {
		t.Run(name, func(t *testing.T) {
			for _, v := range []int{5, 3, 8, 1} {
				tr.Insert(v)
			}
			assert.Equal(t, []int{1, 3, 5, 8}, tr.Values())
			tr.Clear()
			assert.Equal(t, 0, tr.Len())
		})
	}
}

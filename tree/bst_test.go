package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/tp-group5/algokit/compare"
	"github.com/tp-group5/algokit/tree"
)

// collect gathers the values produced by a traversal.
func collect[T any](walk func(func(T))) []T {
	var out []T
	walk(func(v T) { out = append(out, v) })

	return out
}

//         50
//       /    \
//     30      70
//    /  \    /
//   20  40  60
func sampleBST() *tree.BST[int] {
	t := tree.New[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60} {
		t.Insert(v)
	}

	return t
}

func TestBST_InsertAndDuplicates(t *testing.T) {
	bst := sampleBST()
	assert.Equal(t, 6, bst.Len())
	assert.False(t, bst.Insert(40), "duplicate insert must be a no-op")
	assert.Equal(t, 6, bst.Len())
	assert.True(t, bst.Contains(60))
	assert.False(t, bst.Contains(65))
}

func TestBST_Traversals(t *testing.T) {
	bst := sampleBST()
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60}, collect(bst.PreOrder))
	assert.Equal(t, []int{20, 30, 40, 50, 60, 70}, collect(bst.InOrder))
	assert.Equal(t, []int{20, 40, 30, 60, 70, 50}, collect(bst.PostOrder))
	assert.Equal(t, []int{50, 30, 70, 20, 40, 60}, collect(bst.LevelOrder))
	assert.Equal(t, []int{20, 30, 40, 50, 60, 70}, bst.Values())
}

func TestBST_HeightAndBalance(t *testing.T) {
	empty := tree.New[int]()
	assert.Equal(t, 0, empty.Height())
	assert.Equal(t, 0, empty.BalanceFactor())

	bst := sampleBST()
	assert.Equal(t, 3, bst.Height(), "node-based height")
	assert.Equal(t, 0, bst.BalanceFactor())

	bf, err := bst.BalanceFactorOf(70)
	require.NoError(t, err)
	assert.Equal(t, 1, bf)

	_, err = bst.BalanceFactorOf(99)
	assert.ErrorIs(t, err, tree.ErrNotFound)

	leaf, err := bst.Lookup(20)
	require.NoError(t, err)
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, 1, tree.NodeHeight(leaf))
}

func TestBST_Delete(t *testing.T) {
	cases := []struct {
		name    string
		del     int
		inorder []int
		root    int
	}{
		{"Leaf", 20, []int{30, 40, 50, 60, 70}, 50},
		{"OneChild", 70, []int{20, 30, 40, 50, 60}, 50},
		{"TwoChildren", 30, []int{20, 40, 50, 60, 70}, 50},
		{"RootTwoChildren", 50, []int{20, 30, 40, 60, 70}, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bst := sampleBST()
			require.NoError(t, bst.Delete(tc.del))
			assert.False(t, bst.Contains(tc.del))
			assert.Equal(t, tc.inorder, bst.Values())
			assert.Equal(t, 5, bst.Len())
			assert.Equal(t, tc.root, bst.Root().Data())
		})
	}

	bst := sampleBST()
	assert.ErrorIs(t, bst.Delete(1), tree.ErrNotFound)
	assert.Equal(t, 6, bst.Len())
}

func TestBST_DeleteDownToEmpty(t *testing.T) {
	bst := tree.New[int]()
	bst.Insert(1)
	bst.Insert(2)
	require.NoError(t, bst.Delete(1))
	assert.Equal(t, 2, bst.Root().Data())
	require.NoError(t, bst.Delete(2))
	assert.Nil(t, bst.Root())
	assert.True(t, bst.IsEmpty())
}

func TestBST_MinMaxClear(t *testing.T) {
	bst := sampleBST()
	lo, ok := bst.Min()
	assert.True(t, ok)
	assert.Equal(t, 20, lo)
	hi, ok := bst.Max()
	assert.True(t, ok)
	assert.Equal(t, 70, hi)

	bst.Clear()
	assert.Equal(t, 0, bst.Len())
	assert.Nil(t, bst.Root())
	_, ok = bst.Min()
	assert.False(t, ok)
	_, ok = bst.Max()
	assert.False(t, ok)
}

func TestBST_CustomComparer(t *testing.T) {
	bst := tree.NewFunc(compare.Reverse(compare.Natural[string]()))
	for _, s := range []string{"b", "c", "a"} {
		bst.Insert(s)
	}
	assert.Equal(t, []string{"c", "b", "a"}, bst.Values())
}

func TestNewFunc_NilComparerPanics(t *testing.T) {
	assert.Panics(t, func() { tree.NewFunc[int](nil) })
}

// TestBST_RandomInOrderSorted checks in-order output and membership after deletes.
func TestBST_RandomInOrderSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bst := tree.New[int]()
	present := map[int]bool{}
	for i := 0; i < 300; i++ {
		v := rng.Intn(200)
		assert.Equal(t, !present[v], bst.Insert(v))
		present[v] = true
	}
	for v := 0; v < 200; v += 3 {
		if present[v] {
			require.NoError(t, bst.Delete(v))
			delete(present, v)
		}
	}
	values := bst.Values()
	assert.True(t, slices.IsSorted(values))
	assert.Len(t, values, len(present))
	for v := range present {
		assert.True(t, bst.Contains(v))
	}
}

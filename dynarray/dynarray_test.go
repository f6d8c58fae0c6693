package dynarray_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/tp-group5/algokit/compare"
	"github.com/tp-group5/algokit/dynarray"
)

func TestNew_DefaultCapacity(t *testing.T) {
	a := dynarray.New[int](0)
	assert.Equal(t, dynarray.DefaultCapacity, a.Cap())
	assert.Equal(t, 0, a.Len())
	assert.True(t, a.IsEmpty())
}

func TestAdd_GrowthDoubles(t *testing.T) {
	a := dynarray.New[int](2)
	a.Add(1)
	a.Add(2)
	assert.Equal(t, 2, a.Cap())
	a.Add(3)
	assert.Equal(t, 4, a.Cap(), "capacity should double")
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice())
}

func TestAddRange_MeetsRequestedMinimum(t *testing.T) {
	a := dynarray.New[int](2)
	a.AddRange(1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, 7, a.Cap(), "capacity should jump to the requested minimum")
	assert.Equal(t, 7, a.Len())
	a.AddRange()
	assert.Equal(t, 7, a.Len())
}

func TestGetSet_Bounds(t *testing.T) {
	a := dynarray.From([]string{"a", "b"})

	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	require.NoError(t, a.Set(0, "z"))
	v, _ = a.Get(0)
	assert.Equal(t, "z", v)

	for _, i := range []int{-1, 2, 100} {
		_, err = a.Get(i)
		assert.ErrorIs(t, err, dynarray.ErrIndexOutOfRange)
		assert.ErrorIs(t, a.Set(i, "x"), dynarray.ErrIndexOutOfRange)
	}
}

func TestRemove(t *testing.T) {
	a := dynarray.From([]int{1, 2, 3, 2})
	assert.True(t, a.Remove(2))
	assert.Equal(t, []int{1, 3, 2}, a.ToSlice(), "only the first match is removed")
	assert.False(t, a.Remove(42))
	assert.Equal(t, 3, a.Len())
}

func TestRemoveAt(t *testing.T) {
	a := dynarray.From([]int{10, 20, 30})
	v, err := a.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 30, v)
	_, err = a.RemoveAt(2)
	assert.ErrorIs(t, err, dynarray.ErrIndexOutOfRange)
	assert.Equal(t, []int{10, 20}, a.ToSlice())
}

func TestClear_KeepsCapacity(t *testing.T) {
	a := dynarray.New[int](4)
	a.AddRange(1, 2, 3)
	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 4, a.Cap())
	a.Add(9)
	assert.Equal(t, []int{9}, a.ToSlice())
}

func TestToSlice_IsSnapshot(t *testing.T) {
	a := dynarray.From([]int{1, 2})
	snap := a.ToSlice()
	snap[0] = 99
	v, _ := a.Get(0)
	assert.Equal(t, 1, v)
}

func TestSorts_MatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sorts := map[string]func(*dynarray.Array[int]) error{
		"Sort":          func(a *dynarray.Array[int]) error { return a.Sort(nil) },
		"BubbleSort":    func(a *dynarray.Array[int]) error { return a.BubbleSort(nil) },
		"SelectionSort": func(a *dynarray.Array[int]) error { return a.SelectionSort(nil) },
	}
	for name, run := range sorts {
		t.Run(name, func(t *testing.T) {
			for n := 0; n < 40; n++ {
				a := dynarray.NewOrdered[int](1)
				ref := make([]int, 0, n)
				for i := 0; i < n; i++ {
					v := rng.Intn(20)
					a.Add(v)
					ref = append(ref, v)
				}
				require.NoError(t, run(a))
				slices.Sort(ref)
				assert.Equal(t, ref, a.ToSlice())
			}
		})
	}
}

func TestSort_CustomComparer(t *testing.T) {
	a := dynarray.From([]int{3, 1, 2})
	require.NoError(t, a.Sort(compare.Reverse(compare.Natural[int]())))
	assert.Equal(t, []int{3, 2, 1}, a.ToSlice())
}

func TestSort_NoComparer(t *testing.T) {
	a := dynarray.From([]int{2, 1})
	assert.ErrorIs(t, a.Sort(nil), compare.ErrNoComparer)
	assert.ErrorIs(t, a.BubbleSort(nil), compare.ErrNoComparer)
	assert.ErrorIs(t, a.SelectionSort(nil), compare.ErrNoComparer)

	a.WithComparer(compare.Natural[int]())
	require.NoError(t, a.Sort(nil))
	assert.Equal(t, []int{1, 2}, a.ToSlice())
}

// TestRandomOps_MatchReference drives Add/Remove/Clear against a plain slice.
func TestRandomOps_MatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := dynarray.New[int](1)
	var ref []int
	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(10); {
		case op < 6:
			v := rng.Intn(50)
			a.Add(v)
			ref = append(ref, v)
		case op < 9:
			v := rng.Intn(50)
			removed := a.Remove(v)
			idx := -1
			for i, x := range ref {
				if x == v {
					idx = i
					break
				}
			}
			assert.Equal(t, idx >= 0, removed)
			if idx >= 0 {
				ref = append(ref[:idx], ref[idx+1:]...)
			}
		default:
			a.Clear()
			ref = ref[:0]
		}
		require.Equal(t, len(ref), a.Len())
	}
	for i, want := range ref {
		got, err := a.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAllAndString(t *testing.T) {
	a := dynarray.From([]int{4, 5, 6})
	var seen []int
	for i, v := range a.All() {
		seen = append(seen, i*10+v)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{4, 15}, seen)
	assert.Equal(t, "4, 5, 6", a.String())
	assert.Equal(t, "", dynarray.New[int](0).String())
}

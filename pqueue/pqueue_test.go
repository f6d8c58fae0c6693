package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/tp-group5/algokit/pqueue"
)

func TestPopOrder(t *testing.T) {
	pq := pqueue.New[string](4)
	pq.Push("c", 3)
	pq.Push("a", 1)
	pq.Push("b", 2)

	for _, want := range []string{"a", "b", "c"} {
		v, _, ok := pq.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, _, ok := pq.Pop()
	assert.False(t, ok)
}

func TestTiesAreFIFO(t *testing.T) {
	var pq pqueue.PriorityQueue[int]
	for i := 0; i < 5; i++ {
		pq.Push(i, 1)
	}
	for i := 0; i < 5; i++ {
		v, p, ok := pq.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
		assert.Equal(t, 1.0, p)
	}
}

func TestPeekAndClear(t *testing.T) {
	pq := pqueue.New[int](0)
	_, _, ok := pq.Peek()
	assert.False(t, ok)

	pq.Push(7, 0.5)
	pq.Push(8, 0.25)
	v, p, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, 8, v)
	assert.Equal(t, 0.25, p)
	assert.Equal(t, 2, pq.Len())

	pq.Clear()
	assert.True(t, pq.IsEmpty())
}

func TestRandomPrioritiesPopSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pq := pqueue.New[int](256)
	want := make([]float64, 256)
	for i := range want {
		want[i] = rng.Float64() * 100
		pq.Push(i, want[i])
	}
	slices.Sort(want)

	got := make([]float64, 0, len(want))
	for !pq.IsEmpty() {
		_, p, _ := pq.Pop()
		got = append(got, p)
	}
	assert.Equal(t, want, got)
}

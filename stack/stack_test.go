package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tp-group5/algokit/stack"
)

func TestStack_LIFO(t *testing.T) {
	s := stack.New[int]()
	for i := 1; i <= 25; i++ { // crosses the default capacity
		s.Push(i)
	}
	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 25, top)

	for want := 25; want >= 1; want-- {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
}

// TestStack_PopWithDuplicates guards against removing a lower duplicate.
func TestStack_PopWithDuplicates(t *testing.T) {
	s := stack.New[string]()
	s.Push("a")
	s.Push("b")
	s.Push("a")

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"a", "b"}, s.ToSlice(), "the top occurrence must be the one removed")
}

func TestStack_Empty(t *testing.T) {
	s := stack.New[int]()
	_, err := s.Pop()
	assert.ErrorIs(t, err, stack.ErrEmptyStack)
	_, err = s.Peek()
	assert.ErrorIs(t, err, stack.ErrEmptyStack)
	_, ok := s.TryPop()
	assert.False(t, ok)
	_, ok = s.TryPeek()
	assert.False(t, ok)
}

func TestStack_TryAndClear(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	v, ok := s.TryPeek()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = s.TryPop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, "1", s.String())
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

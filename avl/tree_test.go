package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNilComparator(t *testing.T) {
	tr, err := New[int](nil)
	assert.ErrorIs(t, err, ErrNilComparator)
	assert.Nil(t, tr)
}

func TestCountAndIsEmpty(t *testing.T) {
	tr := newIntTree(t)

	assert.True(t, tr.IsEmpty())
	assert.Zero(t, tr.Count())

	for i := 1; i <= 10; i++ {
		_, _, err := tr.Put(i)
		require.NoError(t, err)
		assert.Equal(t, i, tr.Count())
		assert.False(t, tr.IsEmpty())
	}

	// Replacement must not bump the count.
	_, replaced, err := tr.Put(5)
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, 10, tr.Count())
}

func TestClear(t *testing.T) {
	tr := newIntTree(t, 5, 3, 8, 1, 4)

	destroyed := make(map[int]int)
	tr.Clear(func(v int) {
		destroyed[v]++
	})

	assert.True(t, tr.IsEmpty())
	assert.Zero(t, tr.Count())

	require.Len(t, destroyed, 5)
	for _, v := range []int{1, 3, 4, 5, 8} {
		assert.Equal(t, 1, destroyed[v], "value %d", v)
	}

	// The cleared tree is ready for reuse.
	_, _, err := tr.Put(42)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Count())
	require.NoError(t, tr.Check())
}

func TestClearNilDestructor(t *testing.T) {
	tr := newIntTree(t, 2, 1, 3)

	tr.Clear(nil)

	assert.True(t, tr.IsEmpty())
}

func TestEachStopsEarly(t *testing.T) {
	tr := newIntTree(t, 1, 2, 3, 4, 5, 6, 7)

	var visited []int
	tr.Each(func(v int) bool {
		visited = append(visited, v)
		return v < 4
	})

	assert.Equal(t, []int{1, 2, 3, 4}, visited)
}

func TestComparatorClosureContext(t *testing.T) {
	// The user context of the C-style comparator callback becomes a
	// closure capture: this comparator orders by a lookup table.
	rank := map[string]int{"low": 1, "mid": 2, "high": 3}

	tr, err := New(func(a, b string) int {
		return intcmp(rank[a], rank[b])
	})
	require.NoError(t, err)

	for _, s := range []string{"high", "low", "mid"} {
		_, _, err := tr.Put(s)
		require.NoError(t, err)
	}
	require.NoError(t, tr.Check())

	var got []string
	tr.Each(func(s string) bool {
		got = append(got, s)
		return true
	})
	assert.Equal(t, []string{"low", "mid", "high"}, got)
}

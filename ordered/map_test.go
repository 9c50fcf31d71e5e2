package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPutGet(t *testing.T) {
	m := NewMap[string, int]()

	for i, k := range []string{"pear", "apple", "quince", "fig"} {
		_, replaced, err := m.Put(k, i)
		require.NoError(t, err)
		assert.False(t, replaced)
	}

	assert.Equal(t, 4, m.Len())

	v, ok := m.Get("apple")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m.Get("banana")
	assert.False(t, ok)

	prev, replaced, err := m.Put("apple", 99)
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 4, m.Len())

	v, _ = m.Get("apple")
	assert.Equal(t, 99, v)
}

func TestMapOrder(t *testing.T) {
	m := NewMap[int, string]()

	for _, k := range []int{5, 3, 8, 1, 4} {
		_, _, err := m.Put(k, "")
		require.NoError(t, err)
	}

	var keys []int
	m.Each(func(k int, _ string) bool {
		keys = append(keys, k)
		return true
	})

	assert.Equal(t, []int{1, 3, 4, 5, 8}, keys)
}

func TestMapDelete(t *testing.T) {
	m := NewMap[int, string]()

	_, _, err := m.Put(1, "one")
	require.NoError(t, err)
	_, _, err = m.Put(2, "two")
	require.NoError(t, err)

	old, ok := m.Delete(1)
	assert.True(t, ok)
	assert.Equal(t, "one", old)
	assert.Equal(t, 1, m.Len())

	_, ok = m.Delete(1)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestMapNeighbors(t *testing.T) {
	m := NewMap[int, string]()

	for _, k := range []int{10, 20, 30} {
		_, _, err := m.Put(k, "")
		require.NoError(t, err)
	}

	k, _, ok := m.Ceiling(15)
	assert.True(t, ok)
	assert.Equal(t, 20, k)

	k, _, ok = m.Floor(15)
	assert.True(t, ok)
	assert.Equal(t, 10, k)

	k, _, ok = m.Higher(20)
	assert.True(t, ok)
	assert.Equal(t, 30, k)

	k, _, ok = m.Lower(20)
	assert.True(t, ok)
	assert.Equal(t, 10, k)

	_, _, ok = m.Higher(30)
	assert.False(t, ok)
	_, _, ok = m.Lower(10)
	assert.False(t, ok)

	k, _, ok = m.Min()
	assert.True(t, ok)
	assert.Equal(t, 10, k)

	k, _, ok = m.Max()
	assert.True(t, ok)
	assert.Equal(t, 30, k)
}

func TestMapClear(t *testing.T) {
	m := NewMap[int, string]()

	_, _, err := m.Put(1, "one")
	require.NoError(t, err)
	_, _, err = m.Put(2, "two")
	require.NoError(t, err)

	destroyed := make(map[int]string)
	m.Clear(func(k int, v string) {
		destroyed[k] = v
	})

	assert.Zero(t, m.Len())
	assert.Equal(t, map[int]string{1: "one", 2: "two"}, destroyed)

	_, ok := m.Get(1)
	assert.False(t, ok)
}

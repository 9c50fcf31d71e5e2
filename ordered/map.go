// Package ordered provides a sorted map over naturally ordered keys,
// built on the balanced tree in the avl package. It trades the avl
// package's single-value comparator flexibility for a familiar
// key-value surface: use it when the key ordering is just <.
package ordered

import (
	"go.lepak.sg/avltree/avl"
	"golang.org/x/exp/constraints"
)

type entry[K constraints.Ordered, V any] struct {
	key   K
	value V
}

// Map is a key-value map sorted by its keys. Like the tree under it,
// a Map is not safe for concurrent mutation.
type Map[K constraints.Ordered, V any] struct {
	t *avl.Tree[entry[K, V]]
}

// NewMap returns an empty Map ready for use.
func NewMap[K constraints.Ordered, V any]() *Map[K, V] {
	t, err := avl.New(func(a, b entry[K, V]) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		default:
			return 0
		}
	})
	if err != nil {
		// New only fails on a nil comparator
		panic("impossible")
	}

	return &Map[K, V]{t: t}
}

// Put stores value under key. If the key was already present, its
// previous value is returned with replaced true.
// Put returns avl.ErrTreeTooLarge if the map has outgrown the tree's
// supported height; the map is unchanged in that case.
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced bool, err error) {
	e, replaced, err := m.t.Put(entry[K, V]{key: key, value: value})
	return e.value, replaced, err
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	e, ok := m.t.Get(entry[K, V]{key: key})
	return e.value, ok
}

// Delete removes key and returns the value that was stored under it.
// If the key was not present, ok is false and the map is unchanged.
func (m *Map[K, V]) Delete(key K) (old V, ok bool) {
	e, err := m.t.Delete(entry[K, V]{key: key})
	if err != nil {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Ceiling returns the smallest entry with a key at or above key.
func (m *Map[K, V]) Ceiling(key K) (k K, v V, ok bool) {
	return unpack(m.t.GetGreaterOrEqual(entry[K, V]{key: key}))
}

// Floor returns the greatest entry with a key at or below key.
func (m *Map[K, V]) Floor(key K) (k K, v V, ok bool) {
	return unpack(m.t.GetLessOrEqual(entry[K, V]{key: key}))
}

// Higher returns the smallest entry with a key strictly above key.
func (m *Map[K, V]) Higher(key K) (k K, v V, ok bool) {
	return unpack(m.t.GetGreaterThan(entry[K, V]{key: key}))
}

// Lower returns the greatest entry with a key strictly below key.
func (m *Map[K, V]) Lower(key K) (k K, v V, ok bool) {
	return unpack(m.t.GetLessThan(entry[K, V]{key: key}))
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (k K, v V, ok bool) {
	return unpack(m.t.GetSmallest())
}

// Max returns the entry with the greatest key.
func (m *Map[K, V]) Max() (k K, v V, ok bool) {
	return unpack(m.t.GetGreatest())
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.t.Count()
}

// Clear empties the map. If destroy is not nil it is called exactly
// once per stored value.
func (m *Map[K, V]) Clear(destroy func(key K, value V)) {
	if destroy == nil {
		m.t.Clear(nil)
		return
	}

	m.t.Clear(func(e entry[K, V]) {
		destroy(e.key, e.value)
	})
}

// Each applies f to every entry in increasing key order. If f
// returns false, the visit stops early.
func (m *Map[K, V]) Each(f func(key K, value V) bool) {
	m.t.Each(func(e entry[K, V]) bool {
		return f(e.key, e.value)
	})
}

func unpack[K constraints.Ordered, V any](e entry[K, V], ok bool) (K, V, bool) {
	return e.key, e.value, ok
}

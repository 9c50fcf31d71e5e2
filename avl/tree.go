// Package avl provides a height-balanced binary search tree ordered
// by a user-supplied comparator. Insert, delete, exact lookup and the
// ordered neighbor queries (floor, ceiling, strict predecessor and
// successor, min, max) all run in O(log n).
//
// The tree is intrusive in the sense that it stores single values,
// not key-value pairs: the comparator decides which part of a value
// is "the key". Inserting a value that compares equal to a stored one
// overwrites the stored value in place. For a ready-made key-value
// facade over ordered keys, see the ordered package.
//
// A Tree is not safe for concurrent mutation, or mutation during
// reads, from multiple goroutines. Callers needing that must
// serialize access themselves, e.g. with a sync.RWMutex per tree.
package avl

import "errors"

var (
	// ErrNilComparator is returned by New when no comparator is given.
	ErrNilComparator = errors.New("avl: comparator must not be nil")
	// ErrNotFound is returned by Delete when no stored value compares
	// equal to the given one.
	ErrNotFound = errors.New("avl: no such value")
	// ErrTreeTooLarge is returned by Put and Delete when the tree is
	// taller than MaxHeight. The failed operation changes nothing.
	ErrTreeTooLarge = errors.New("avl: tree exceeds maximum supported height")
)

// Tree is a self-balancing binary search tree.
//
// Invariants:
//   - At any node N, all values in the subtree rooted at N's left
//     child are ordered before N's value, and all values in the
//     subtree rooted at N's right child are ordered after it.
//   - For every possible value there is at most one node comparing
//     equal to it (no duplicates).
//   - At any node, the heights of the two subtrees differ by at most
//     one.
//
// A failed operation leaves the tree exactly as it was.
type Tree[T any] struct {
	root  *node[T]
	cmp   Comparator[T]
	count int
}

// New creates an empty tree ordered by cmp.
func New[T any](cmp Comparator[T]) (*Tree[T], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}

	return &Tree[T]{cmp: cmp}, nil
}

// Count returns the number of values in the tree.
func (t *Tree[T]) Count() int {
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Clear removes every value from the tree, calling destroy exactly
// once per value. destroy may be nil, in which case the values are
// simply dropped. The visit order is unspecified.
func (t *Tree[T]) Clear(destroy Destructor[T]) {
	clearNode(t.root, destroy)
	t.root = nil
	t.count = 0
}

func clearNode[T any](n *node[T], destroy Destructor[T]) {
	if n == nil {
		return
	}

	clearNode(n.left, destroy)
	clearNode(n.right, destroy)

	if destroy != nil {
		destroy(n.value)
	}
	n.left, n.right = nil, nil
}

// Each applies f to every value in order. If f returns false, the
// visit stops early. The tree must not be mutated by f.
func (t *Tree[T]) Each(f func(value T) bool) {
	eachNode(t.root, f)
}

func eachNode[T any](n *node[T], f func(value T) bool) bool {
	if n == nil {
		return true
	}

	return eachNode(n.left, f) && f(n.value) && eachNode(n.right, f)
}

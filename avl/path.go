package avl

// MaxHeight is the tallest tree this package supports. AVL trees are
// height-bounded by 1.44*log2(n), so 48 levels is enough for well over
// two billion values. Put and Delete return ErrTreeTooLarge rather
// than descend past this depth.
const MaxHeight = 48

// pathEntry records one level of a mutating descent.
// slot points at the child link inside the parent (or at the tree
// root link), not at the node itself: a rotation replaces which node
// occupies the link, and going through the slot keeps the recorded
// path valid when that happens.
type pathEntry[T any] struct {
	slot *(*node[T])
	left bool
}

// path is the update path of a single Put or Delete: every (slot,
// direction) pair visited on the way down, replayed bottom-up to fix
// balance factors. It is a fixed-size LIFO so that descending
// allocates nothing.
type path[T any] struct {
	entries [MaxHeight]pathEntry[T]
	top     int
}

// push records one descent step. It returns false if the path is
// full, meaning the tree is taller than MaxHeight.
func (p *path[T]) push(slot *(*node[T]), left bool) bool {
	if p.top == len(p.entries) {
		return false
	}
	p.entries[p.top] = pathEntry[T]{slot: slot, left: left}
	p.top++
	return true
}

// pop returns the most recently recorded step, deepest first.
func (p *path[T]) pop() (pathEntry[T], bool) {
	if p.top == 0 {
		return pathEntry[T]{}, false
	}
	p.top--
	return p.entries[p.top], true
}

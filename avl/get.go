package avl

// Get returns the stored value comparing equal to key.
// If there is none, ok is false and value is the zero T.
func (t *Tree[T]) Get(key T) (value T, ok bool) {
	n := t.root
	for n != nil {
		cmp := t.cmp(key, n.value)
		switch {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n.value, true
		}
	}

	return
}

// GetGreaterOrEqual returns the smallest stored value that is
// ordered at or after key (the ceiling of key).
func (t *Tree[T]) GetGreaterOrEqual(key T) (value T, ok bool) {
	// Whenever the descent overshoots to the left, the node it left
	// behind is the best ceiling candidate so far.
	var best *node[T]

	n := t.root
	for n != nil {
		cmp := t.cmp(key, n.value)
		switch {
		case cmp < 0:
			best = n
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n.value, true
		}
	}

	if best != nil {
		return best.value, true
	}
	return
}

// GetLessOrEqual returns the greatest stored value that is ordered
// at or before key (the floor of key).
func (t *Tree[T]) GetLessOrEqual(key T) (value T, ok bool) {
	var best *node[T]

	n := t.root
	for n != nil {
		cmp := t.cmp(key, n.value)
		switch {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			best = n
			n = n.right
		default:
			return n.value, true
		}
	}

	if best != nil {
		return best.value, true
	}
	return
}

// GetGreaterThan returns the smallest stored value ordered strictly
// after key. If key matches the greatest stored value, or the tree is
// empty, ok is false.
func (t *Tree[T]) GetGreaterThan(key T) (value T, ok bool) {
	var best *node[T]

	n := t.root
	for n != nil {
		cmp := t.cmp(key, n.value)
		switch {
		case cmp < 0:
			best = n
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			// Exact hit: the strict successor is the leftmost node of
			// the right subtree, or failing that the nearest ancestor
			// we overshot on the way down.
			if n.right == nil {
				n = nil
				break
			}
			n = n.right
			for n.left != nil {
				n = n.left
			}
			return n.value, true
		}
	}

	if best != nil {
		return best.value, true
	}
	return
}

// GetLessThan returns the greatest stored value ordered strictly
// before key. If key matches the smallest stored value, or the tree
// is empty, ok is false.
func (t *Tree[T]) GetLessThan(key T) (value T, ok bool) {
	var best *node[T]

	n := t.root
	for n != nil {
		cmp := t.cmp(key, n.value)
		switch {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			best = n
			n = n.right
		default:
			if n.left == nil {
				n = nil
				break
			}
			n = n.left
			for n.right != nil {
				n = n.right
			}
			return n.value, true
		}
	}

	if best != nil {
		return best.value, true
	}
	return
}

// GetSmallest returns the first value in order.
// If the tree is empty, ok is false.
func (t *Tree[T]) GetSmallest() (value T, ok bool) {
	n := t.root
	if n == nil {
		return
	}

	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// GetGreatest returns the last value in order.
// If the tree is empty, ok is false.
func (t *Tree[T]) GetGreatest() (value T, ok bool) {
	n := t.root
	if n == nil {
		return
	}

	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

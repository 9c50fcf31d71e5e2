package avl

// Put inserts value into the tree. If a stored value compares equal
// to it, only that value is overwritten: the previous value is
// returned with replaced true, and the tree structure is untouched.
// Otherwise a new node is attached and the tree is rebalanced;
// replaced is false and prev is the zero T.
//
// Put returns ErrTreeTooLarge, having changed nothing, if the
// descent would exceed MaxHeight.
func (t *Tree[T]) Put(value T) (prev T, replaced bool, err error) {
	var p path[T]

	slot := &t.root
	for *slot != nil {
		cmp := t.cmp(value, (*slot).value)
		if cmp == 0 {
			prev = (*slot).value
			(*slot).value = value
			return prev, true, nil
		}

		left := cmp < 0
		if !p.push(slot, left) {
			return prev, false, ErrTreeTooLarge
		}
		if left {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}

	*slot = &node[T]{value: value}
	t.count++

	// Walk back up the recorded path, nearest ancestor first. Each
	// ancestor learns that the subtree on the descent side is one
	// level taller than it believed.
	for {
		e, ok := p.pop()
		if !ok {
			break
		}
		n := *e.slot

		if e.left {
			n.balance--
			if n.balance < -1 {
				// The left child cannot be evenly balanced here: an
				// insertion below it could not have both grown it and
				// left it even.
				if n.left.balance > 0 {
					rotateLeft(&n.left)
				}
				rotateRight(e.slot)
				// A rotation restores the subtree to its pre-insert
				// height, so nothing above needs adjusting.
				break
			}
			if n.balance >= 0 {
				// The new level filled a short side; subtree height
				// is unchanged.
				break
			}
			// balance went 0 -> -1: the subtree grew, keep going up.
		} else {
			n.balance++
			if n.balance > 1 {
				if n.right.balance < 0 {
					rotateRight(&n.right)
				}
				rotateLeft(e.slot)
				break
			}
			if n.balance <= 0 {
				break
			}
		}
	}

	return prev, false, nil
}

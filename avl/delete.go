package avl

// Delete removes the stored value comparing equal to key and returns
// it. Ownership of the returned value passes to the caller; the
// tree's destructor is never involved.
//
// Delete returns ErrNotFound if no stored value compares equal to
// key, and ErrTreeTooLarge if the descent would exceed MaxHeight.
// Either way the tree is left exactly as it was.
func (t *Tree[T]) Delete(key T) (old T, err error) {
	var p path[T]

	slot := &t.root
	for *slot != nil {
		cmp := t.cmp(key, (*slot).value)
		if cmp == 0 {
			break
		}

		left := cmp < 0
		if !p.push(slot, left) {
			return old, ErrTreeTooLarge
		}
		if left {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}

	del := *slot
	if del == nil {
		return old, ErrNotFound
	}

	switch {
	case del.balance <= 0 && del.right == nil:
		// At most a left child: splice it into our place.
		old = del.value
		*slot = del.left

	case del.balance >= 0 && del.left == nil:
		old = del.value
		*slot = del.right

	case del.balance < 0:
		// Two children, left-heavy: overwrite with the in-order
		// predecessor (rightmost of the left subtree) and splice that
		// node out instead. Taking the neighbor from the taller side
		// keeps the rebalancing path short.
		if !p.push(slot, true) {
			return old, ErrTreeTooLarge
		}
		slot = &del.left
		for (*slot).right != nil {
			if !p.push(slot, false) {
				return old, ErrTreeTooLarge
			}
			slot = &(*slot).right
		}

		old = del.value
		del.value = (*slot).value
		*slot = (*slot).left

	default:
		// Two children, even or right-heavy: use the in-order
		// successor (leftmost of the right subtree).
		if !p.push(slot, false) {
			return old, ErrTreeTooLarge
		}
		slot = &del.right
		for (*slot).left != nil {
			if !p.push(slot, true) {
				return old, ErrTreeTooLarge
			}
			slot = &(*slot).left
		}

		old = del.value
		del.value = (*slot).value
		*slot = (*slot).right
	}

	t.count--

	// Walk back up. Each ancestor learns that the subtree on the
	// descent side shrank by one level. Unlike insertion, a rotation
	// here may itself shrink the subtree, so unwinding can continue
	// past it.
	for {
		e, ok := p.pop()
		if !ok {
			break
		}
		n := *e.slot

		if e.left {
			n.balance++
			if n.balance > 1 {
				if n.right.balance < 0 {
					rotateRight(&n.right)
				}
				rotateLeft(e.slot)

				n = *e.slot
				if n.balance <= 0 && n.left.balance > 0 {
					// Post-rotation balances say the subtree kept its
					// height; stop here.
					break
				}
				// The rotation shrank the subtree by one; keep going.
			} else if n.balance > 0 {
				// The left side was the short one; height unchanged.
				break
			}
			// balance is now 0 or negative with no rotation: the
			// subtree shrank, keep going up.
		} else {
			n.balance--
			if n.balance < -1 {
				if n.left.balance > 0 {
					rotateLeft(&n.left)
				}
				rotateRight(e.slot)

				n = *e.slot
				if n.balance >= 0 && n.right.balance < 0 {
					break
				}
			} else if n.balance < 0 {
				break
			}
		}
	}

	return old, nil
}

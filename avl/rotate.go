package avl

// rotateRight re-roots the subtree in slot at its left child:
//	   -> n            l
//	     / \          / \
//	    l   o   ->   k   n
//	   / \              / \
//	  k   m            m   o
// The slot is updated to point at l. The ordering invariant
// k < l < m < n < o is preserved.
//
// Balance factors are fixed up in O(1) from the pre-rotation
// balances, not by remeasuring subtree heights. n loses the layer
// that k contributed, so its balance rises by one, and by a further
// -l.balance if l was left-heavy (k was deeper still). l gains n as a
// right child, so its balance rises by one, plus n's new balance if n
// is now right-heavy (o sticks out below).
func rotateRight[T any](slot *(*node[T])) {
	oldRoot := *slot
	newRoot := oldRoot.left

	*slot = newRoot
	oldRoot.left = newRoot.right
	newRoot.right = oldRoot

	nrb := newRoot.balance

	oldRoot.balance++
	if nrb < 0 {
		oldRoot.balance -= nrb
	}

	newRoot.balance++
	if oldRoot.balance > 0 {
		newRoot.balance += oldRoot.balance
	}
}

// rotateLeft is the mirror image of rotateRight:
//	   -> n            r
//	     / \          / \
//	    m   r   ->   n   q
//	       / \      / \
//	      o   q    m   o
func rotateLeft[T any](slot *(*node[T])) {
	oldRoot := *slot
	newRoot := oldRoot.right

	*slot = newRoot
	oldRoot.right = newRoot.left
	newRoot.left = oldRoot

	nrb := newRoot.balance

	oldRoot.balance--
	if nrb > 0 {
		oldRoot.balance -= nrb
	}

	newRoot.balance--
	if oldRoot.balance < 0 {
		newRoot.balance += oldRoot.balance
	}
}

package avl

import "fmt"

// Check audits the structural invariants of the whole tree: every
// stored balance factor must equal the height difference of the
// node's subtrees measured from scratch, no height difference may
// exceed one, values must be in strictly increasing order, and the
// node count must match Count. It returns nil if all hold.
//
// Check revisits every node, so it is O(n); it is meant for tests
// and debugging, not for production paths.
func (t *Tree[T]) Check() error {
	counted, _, err := checkNode(t.root, t.cmp)
	if err != nil {
		return err
	}
	if counted != t.count {
		return fmt.Errorf("avl: count is %d but %d nodes are reachable", t.count, counted)
	}
	return nil
}

// Height measures the height of the tree by walking it: an empty
// tree has height 0, a single node height 1. Like Check, this is
// O(n) and intended for tests and debugging.
func (t *Tree[T]) Height() int {
	return measure(t.root)
}

func measure[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	lh, rh := measure(n.left), measure(n.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// checkNode measures n's subtree from scratch, returning its node
// count and height.
func checkNode[T any](n *node[T], cmp Comparator[T]) (count, height int, err error) {
	if n == nil {
		return 0, 0, nil
	}

	lc, lh, err := checkNode(n.left, cmp)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := checkNode(n.right, cmp)
	if err != nil {
		return 0, 0, err
	}

	if got, want := int(n.balance), rh-lh; got != want {
		return 0, 0, fmt.Errorf(
			"avl: node %v has balance %+d, but subtree heights are left=%d right=%d",
			n.value, got, lh, rh)
	}
	if n.balance < -1 || n.balance > 1 {
		return 0, 0, fmt.Errorf("avl: node %v has balance %+d outside [-1, +1]", n.value, n.balance)
	}

	if n.left != nil {
		if max, ok := rightmost(n.left); !ok || cmp(max.value, n.value) >= 0 {
			return 0, 0, fmt.Errorf("avl: node %v is not greater than its left subtree", n.value)
		}
	}
	if n.right != nil {
		if min, ok := leftmost(n.right); !ok || cmp(n.value, min.value) >= 0 {
			return 0, 0, fmt.Errorf("avl: node %v is not less than its right subtree", n.value)
		}
	}

	height = lh
	if rh > height {
		height = rh
	}
	return lc + rc + 1, height + 1, nil
}

func leftmost[T any](n *node[T]) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	for n.left != nil {
		n = n.left
	}
	return n, true
}

func rightmost[T any](n *node[T]) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	for n.right != nil {
		n = n.right
	}
	return n, true
}

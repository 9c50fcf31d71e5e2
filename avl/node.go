package avl

// Comparator defines a strict total order over T. It must return a
// negative number if a is ordered before b, zero if they are equal,
// and a positive number if a is ordered after b.
// A Comparator must be consistent for the lifetime of the tree it
// orders. If the order depends on external state, capture that state
// in the closure; mutating it while the tree holds values will ruin
// the tree invariants.
type Comparator[T any] func(a, b T) int

// Destructor is called once per stored value when the tree is cleared.
// See Tree.Clear.
type Destructor[T any] func(value T)

// node is a vertex of the tree. Nodes are never shared: a node owns
// its children, the tree owns its root.
type node[T any] struct {
	left, right *node[T]

	// balance is height(right subtree) - height(left subtree).
	// Between operations it is always -1, 0 or +1. During rebalancing
	// the node at the imbalance may transiently hit ±2.
	balance int8

	value T
}

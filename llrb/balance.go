package llrb

// rotateLeft rotates h left around its right child x, which must carry a
// red incoming link. x becomes the new subtree root with h as its left
// child; x inherits h's color and h becomes red, preserving the number of
// black links on every path through the subtree.
func rotateLeft[K comparable, V any](h *Node[K, V]) *Node[K, V] {
	x := h.Right
	h.Right = x.Left
	x.Left = h
	x.color = h.color
	h.color = red

	return x
}

// rotateRight is the mirror of rotateLeft: h's left child x, which must
// carry a red incoming link, becomes the new subtree root with h as its
// right child.
func rotateRight[K comparable, V any](h *Node[K, V]) *Node[K, V] {
	x := h.Left
	h.Left = x.Right
	x.Right = h
	x.color = h.color
	h.color = red

	return x
}

// flipColors toggles the color of h and both of its children.
//
// insertMode pushes a split 4-node up: both children turn black and h turns
// red. Deletion mode borrows a link back down from the parent: both
// children turn red and h turns black. Both children must be non-nil before
// calling flipColors — the caller is responsible for that precondition.
func flipColors[K comparable, V any](h *Node[K, V], insertMode bool) {
	h.color = !h.color
	h.Left.color = !h.Left.color
	h.Right.color = !h.Right.color
}

// balance restores the three LLRB shape invariants on the way back up the
// recursion, after either an insertion or a deletion may have disturbed
// them locally at h:
//
//  1. A right-leaning red link is rotated left.
//  2. Two red links in a row, leaning left, are rotated right.
//  3. A node with two red children pushes its split upward via flipColors.
func balance[K comparable, V any](h *Node[K, V]) *Node[K, V] {
	if isRed(h.Right) && !isRed(h.Left) {
		h = rotateLeft(h)
	}

	if isRed(h.Left) && isRed(h.Left.Left) {
		h = rotateRight(h)
	}

	if isRed(h.Left) && isRed(h.Right) {
		flipColors(h, true)
	}

	return h
}

// moveRedLeft borrows a red link from h's right sibling so that the descent
// can continue safely into h.Left, which is about to be deleted from or
// descended through.
//
// Precondition: h is red, and neither h.Left nor h.Left.Left is red.
func moveRedLeft[K comparable, V any](h *Node[K, V]) *Node[K, V] {
	flipColors(h, false)

	if isRed(h.Right.Left) {
		h.Right = rotateRight(h.Right)
		h = rotateLeft(h)
		flipColors(h, false)
	}

	return h
}

// moveRedRight is the mirror of moveRedLeft, borrowing a red link from h's
// left sibling before descending into h.Right.
//
// Precondition: h is red, and neither h.Right nor h.Right.Left is red.
func moveRedRight[K comparable, V any](h *Node[K, V]) *Node[K, V] {
	flipColors(h, false)

	if isRed(h.Left.Left) {
		h = rotateRight(h)
		flipColors(h, false)
	}

	return h
}

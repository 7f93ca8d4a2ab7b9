package llrb

// Delete removes the pair keyed by key, if present, rebalancing the tree on
// the way back up.
//
// Returns the removed pair and true if key was found, or the zero Pair and
// false otherwise. The returned pair is a full "shallow extraction" — the
// caller now owns it outright, and Clear's evict callback is never invoked
// for pairs removed this way (see WithEvict). Panics if key is incompatible
// with the bound comparator.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) Delete(key K) (Pair[K, V], bool) {
	t.validateKey(key)

	// The deletion descent assumes key is present; an absent key is
	// reported before the tree is touched.
	if t.lookup(key) == nil {
		return Pair[K, V]{}, false
	}

	t.seedRedRoot()

	var out Pair[K, V]

	root, found := t.delete(t.root, key, &out)
	t.root = root
	t.paintRootBlack()

	if !found {
		return Pair[K, V]{}, false
	}

	return out, true
}

// DeleteMin removes and returns the pair with the smallest key.
//
// Returns false if the tree is empty.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) DeleteMin() (Pair[K, V], bool) {
	if t.root == nil {
		return Pair[K, V]{}, false
	}

	t.seedRedRoot()

	var out Pair[K, V]

	t.root = t.deleteMin(t.root, &out)
	t.paintRootBlack()

	return out, true
}

// DeleteMax removes and returns the pair with the largest key.
//
// Returns false if the tree is empty.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) DeleteMax() (Pair[K, V], bool) {
	if t.root == nil {
		return Pair[K, V]{}, false
	}

	t.seedRedRoot()

	var out Pair[K, V]

	t.root = t.deleteMax(t.root, &out)
	t.paintRootBlack()

	return out, true
}

// seedRedRoot flips the root red if both of its children are black
// (treating a nil child as black). This is the standard LLRB device that
// seeds the deletion descent with the invariant "the current node or its
// left child is red", shared by all three deletion entry points.
func (t *Tree[K, V]) seedRedRoot() {
	if !isRed(t.root.Left) && !isRed(t.root.Right) {
		t.root.color = red
	}
}

// paintRootBlack restores the invariant that the root's color is always
// black at quiescence, after a deletion descent. Shared by all three
// deletion entry points.
func (t *Tree[K, V]) paintRootBlack() {
	if t.root != nil {
		t.root.color = black
	}
}

// deleteMin recursively descends h's left spine. When the left child is
// nil, h itself is the minimum: its pair is captured into out, the node is
// discarded, and size is decremented at this exact site.
// Otherwise moveRedLeft ensures a red link to descend through, and balance
// restores shape on the way back up.
func (t *Tree[K, V]) deleteMin(h *Node[K, V], out *Pair[K, V]) *Node[K, V] {
	if h.Left == nil {
		*out = Pair[K, V]{Key: h.Key, Value: h.Value}
		t.len--

		return nil
	}

	if !isRed(h.Left) && !isRed(h.Left.Left) {
		h = moveRedLeft(h)
	}

	h.Left = t.deleteMin(h.Left, out)

	return balance(h)
}

// deleteMax recursively descends h's right spine. A red left child is
// rotated right first, since an LLRB tree may never look right past a red
// left link. When the right child is nil, h itself is the maximum: capture,
// discard, decrement size. Otherwise moveRedRight ensures a red link to
// descend through.
func (t *Tree[K, V]) deleteMax(h *Node[K, V], out *Pair[K, V]) *Node[K, V] {
	if isRed(h.Left) {
		h = rotateRight(h)
	}

	if h.Right == nil {
		*out = Pair[K, V]{Key: h.Key, Value: h.Value}
		t.len--

		return nil
	}

	if !isRed(h.Right) && !isRed(h.Right.Left) {
		h = moveRedRight(h)
	}

	h.Right = t.deleteMax(h.Right, out)

	return balance(h)
}

// delete recursively descends toward key, reporting through found whether
// key was present, and capturing the removed pair into out:
//
//   - key < h.Key: ensure a red link to descend through on the left, then
//     recurse left.
//   - key >= h.Key: rotate a red left link out of the way first; if key
//     equals the (possibly rotated) node's key and it has no right child,
//     it is a red leaf by LLRB structure at this point — extract it
//     directly. Otherwise ensure a red link to descend through on the
//     right; if key still equals this node's key, splice it out by its
//     in-order successor (deleteMin of the right subtree), capturing the
//     original pair into out before the overwrite; otherwise recurse right.
func (t *Tree[K, V]) delete(h *Node[K, V], key K, out *Pair[K, V]) (*Node[K, V], bool) {
	if h == nil {
		return nil, false
	}

	var found bool

	if t.compare(key, h.Key) < 0 {
		if !isRed(h.Left) && !isRed(h.Left.Left) {
			h = moveRedLeft(h)
		}

		h.Left, found = t.delete(h.Left, key, out)
	} else {
		if isRed(h.Left) {
			h = rotateRight(h)
		}

		if t.compare(key, h.Key) == 0 && h.Right == nil {
			*out = Pair[K, V]{Key: h.Key, Value: h.Value}
			t.len--

			return nil, true
		}

		if !isRed(h.Right) && !isRed(h.Right.Left) {
			h = moveRedRight(h)
		}

		if t.compare(key, h.Key) == 0 {
			*out = Pair[K, V]{Key: h.Key, Value: h.Value}

			var successor Pair[K, V]

			h.Right = t.deleteMin(h.Right, &successor)
			h.Key, h.Value = successor.Key, successor.Value
			found = true
		} else {
			h.Right, found = t.delete(h.Right, key, out)
		}
	}

	return balance(h), found
}

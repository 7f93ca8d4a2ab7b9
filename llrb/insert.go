package llrb

// Put inserts key and value into the tree if and only if no node already
// holds an equal key. Returns ErrKeyExists, leaving the tree unchanged, if
// key is already present.
//
// This is an insert-only operation: unlike a plain map's put, an existing
// key's value is never overwritten here — use ReplaceValue for that.
// Panics if key is incompatible with the bound comparator.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) Put(key K, value V) error {
	t.validateKey(key)

	root, inserted := t.insert(t.root, key, value)
	if !inserted {
		return ErrKeyExists
	}

	root.color = black
	t.root = root
	t.len++

	return nil
}

// insert recursively descends the subtree rooted at h, creating a new red
// leaf where the search falls off the tree, and rebalancing on the way back
// up:
//
//  1. A nil link is where key belongs: allocate a red leaf and report
//     success.
//  2. An equal key already occupies this node: report failure, propagating
//     the unchanged subtree back up unharmed.
//  3. Otherwise recurse into the side key belongs on, and balance before
//     returning.
func (t *Tree[K, V]) insert(h *Node[K, V], key K, value V) (*Node[K, V], bool) {
	if h == nil {
		return newNode(key, value), true
	}

	var inserted bool

	switch c := t.compare(key, h.Key); {
	case c == 0:
		return h, false
	case c < 0:
		h.Left, inserted = t.insert(h.Left, key, value)
	default:
		h.Right, inserted = t.insert(h.Right, key, value)
	}

	if !inserted {
		return h, false
	}

	return balance(h), true
}

package llrb

// lookup descends the tree comparing key against each node's key, moving
// left on "<", right on ">", returning the matching node or nil.
// Logarithmic expected and worst-case depth, since
// the LLRB invariants bound the tree's height at 2*log2(n+1).
func (t *Tree[K, V]) lookup(key K) *Node[K, V] {
	t.validateKey(key)

	n := t.root
	for n != nil {
		switch c := t.compare(key, n.Key); {
		case c == 0:
			return n
		case c < 0:
			n = n.Left
		default:
			n = n.Right
		}
	}

	return nil
}

// Get retrieves the value stored under key.
//
// Returns the value and true if key is present, the zero value and false
// otherwise. Panics if key is incompatible with the bound comparator.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) Get(key K) (value V, found bool) {
	if n := t.lookup(key); n != nil {
		return n.Value, true
	}

	return value, false
}

// ContainsKey reports whether key is present.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) ContainsKey(key K) bool {
	return t.lookup(key) != nil
}

// GetKey performs a full traversal, returning the first key (in ascending
// order) whose value is equal to value under the tree's value-equality
// function.
//
// Returns the key and true if a match exists, the zero value and false
// otherwise. This never overloads a sentinel node with "not found" — the
// explicit bool result means a match at the root is indistinguishable from
// any other match, so there is no ambiguity about a hit at the root.
//
// Time complexity: O(n).
func (t *Tree[K, V]) GetKey(value V) (key K, found bool) {
	n := findByValue(t.root, value, t.equal)
	if n == nil {
		return key, false
	}

	return n.Key, true
}

// ContainsValue reports whether any stored value is equal to value under the
// tree's value-equality function.
//
// Time complexity: O(n).
func (t *Tree[K, V]) ContainsValue(value V) bool {
	return findByValue(t.root, value, t.equal) != nil
}

// findByValue performs an in-order traversal (left, self, right) looking
// for the first node whose value satisfies equal.
func findByValue[K comparable, V any](n *Node[K, V], value V, equal func(a, b V) bool) *Node[K, V] {
	if n == nil {
		return nil
	}

	if found := findByValue(n.Left, value, equal); found != nil {
		return found
	}

	if equal(n.Value, value) {
		return n
	}

	return findByValue(n.Right, value, equal)
}

// minNode descends strictly left until the left child is nil; the reached
// node holds the smallest key in the subtree.
func minNode[K comparable, V any](n *Node[K, V]) *Node[K, V] {
	for n.Left != nil {
		n = n.Left
	}

	return n
}

// maxNode descends strictly right until the right child is nil; the reached
// node holds the largest key in the subtree.
func maxNode[K comparable, V any](n *Node[K, V]) *Node[K, V] {
	for n.Right != nil {
		n = n.Right
	}

	return n
}

// Min returns the pair with the smallest key.
//
// Returns false if the tree is empty.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) Min() (Pair[K, V], bool) {
	if t.root == nil {
		return Pair[K, V]{}, false
	}

	n := minNode(t.root)

	return Pair[K, V]{Key: n.Key, Value: n.Value}, true
}

// Max returns the pair with the largest key.
//
// Returns false if the tree is empty.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) Max() (Pair[K, V], bool) {
	if t.root == nil {
		return Pair[K, V]{}, false
	}

	n := maxNode(t.root)

	return Pair[K, V]{Key: n.Key, Value: n.Value}, true
}

// Ceiling returns the pair with the smallest stored key greater than or
// equal to key: walk from the root keeping a
// best-so-far candidate; recording it whenever the current node's key is
// greater, never when it is smaller.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) Ceiling(key K) (Pair[K, V], bool) {
	t.validateKey(key)

	var best *Node[K, V]

	n := t.root
	for n != nil {
		switch c := t.compare(key, n.Key); {
		case c == 0:
			return Pair[K, V]{Key: n.Key, Value: n.Value}, true
		case c < 0:
			best = n
			n = n.Left
		default:
			n = n.Right
		}
	}

	if best == nil {
		return Pair[K, V]{}, false
	}

	return Pair[K, V]{Key: best.Key, Value: best.Value}, true
}

// Floor returns the pair with the largest stored key less than or equal to
// key; the mirror of Ceiling.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) Floor(key K) (Pair[K, V], bool) {
	t.validateKey(key)

	var best *Node[K, V]

	n := t.root
	for n != nil {
		switch c := t.compare(key, n.Key); {
		case c == 0:
			return Pair[K, V]{Key: n.Key, Value: n.Value}, true
		case c > 0:
			best = n
			n = n.Right
		default:
			n = n.Left
		}
	}

	if best == nil {
		return Pair[K, V]{}, false
	}

	return Pair[K, V]{Key: best.Key, Value: best.Value}, true
}

// Higher returns the pair with the smallest stored key strictly greater
// than key. Identical to Ceiling except the equality case continues
// rightward without recording a match, since a match on equality is not
// accepted here.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) Higher(key K) (Pair[K, V], bool) {
	t.validateKey(key)

	var best *Node[K, V]

	n := t.root
	for n != nil {
		if c := t.compare(key, n.Key); c < 0 {
			best = n
			n = n.Left
		} else {
			n = n.Right
		}
	}

	if best == nil {
		return Pair[K, V]{}, false
	}

	return Pair[K, V]{Key: best.Key, Value: best.Value}, true
}

// Lower returns the pair with the largest stored key strictly less than
// key; the mirror of Higher.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) Lower(key K) (Pair[K, V], bool) {
	t.validateKey(key)

	var best *Node[K, V]

	n := t.root
	for n != nil {
		if c := t.compare(key, n.Key); c > 0 {
			best = n
			n = n.Right
		} else {
			n = n.Left
		}
	}

	if best == nil {
		return Pair[K, V]{}, false
	}

	return Pair[K, V]{Key: best.Key, Value: best.Value}, true
}

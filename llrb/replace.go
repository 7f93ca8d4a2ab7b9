package llrb

// ReplaceValue overwrites the value stored under key with value, without
// altering the tree's shape or its size.
//
// Returns ErrKeyNotFound if key is absent. Panics if key is incompatible
// with the bound comparator.
//
// Time complexity: O(log n).
func (t *Tree[K, V]) ReplaceValue(key K, value V) error {
	n := t.lookup(key)
	if n == nil {
		return ErrKeyNotFound
	}

	n.Value = value

	return nil
}

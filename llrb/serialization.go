// This file extends Tree with methods to convert to and from JSON,
// implementing the container.JSONCodec interface.
package llrb

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Predefined errors for JSON operations.
var (
	ErrMarshalJSONFailure   = errors.New("failed to marshal tree to JSON")
	ErrUnmarshalJSONFailure = errors.New("failed to unmarshal JSON into tree")
)

// ToJSON serializes the tree into a JSON object whose keys are the tree's
// keys and whose values are their corresponding values.
//
// Time complexity: O(n).
func (t *Tree[K, V]) ToJSON() ([]byte, error) {
	elems := make(map[K]V, t.len)

	keys, values := t.KeysAndValues()
	for i, k := range keys {
		elems[k] = values[i]
	}

	data, err := json.Marshal(elems)
	if err != nil {
		return nil, fmt.Errorf("llrb: %w: %w", ErrMarshalJSONFailure, err)
	}

	return data, nil
}

// FromJSON populates the tree from a JSON object, clearing any existing
// pairs first. Insertion order follows the decoded map's iteration order;
// it can change the tree's internal shape, but not its pairs or their key
// order, since the decoded keys are distinct.
//
// Time complexity: O(n log n).
func (t *Tree[K, V]) FromJSON(data []byte) error {
	var elems map[K]V
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("llrb: %w: %w", ErrUnmarshalJSONFailure, err)
	}

	t.Clear()

	for k, v := range elems {
		_ = t.Put(k, v)
	}

	return nil
}

// MarshalJSON implements json.Marshaler by delegating to ToJSON.
func (t *Tree[K, V]) MarshalJSON() ([]byte, error) {
	return t.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler by delegating to FromJSON.
func (t *Tree[K, V]) UnmarshalJSON(data []byte) error {
	return t.FromJSON(data)
}

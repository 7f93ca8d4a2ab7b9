// This file extends Set with methods to convert to and from JSON,
// implementing container.JSONCodec.
package llrbset

import (
	"encoding/json"
	"fmt"
)

// ToJSON serializes the set's elements into a JSON array, in ascending
// order.
func (s *Set[T]) ToJSON() ([]byte, error) {
	data, err := json.Marshal(s.Values())
	if err != nil {
		return nil, fmt.Errorf("llrbset: failed to marshal set to JSON: %w", err)
	}

	return data, nil
}

// FromJSON populates the set from a JSON array, clearing any existing
// elements first.
func (s *Set[T]) FromJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("llrbset: failed to unmarshal JSON into set: %w", err)
	}

	s.Clear()
	s.Add(values...)

	return nil
}

// MarshalJSON implements json.Marshaler by delegating to ToJSON.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return s.ToJSON()
}

// UnmarshalJSON implements json.Unmarshaler by delegating to FromJSON.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	return s.FromJSON(data)
}

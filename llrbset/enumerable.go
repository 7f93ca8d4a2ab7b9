// This file extends Set with the Ruby-inspired Each/Any/All/Find methods,
// implementing container.EnumerableWithIndex.
package llrbset

// Each invokes fn once for every element, in ascending order, passing the
// element's position and value.
func (s *Set[T]) Each(fn func(index int, value T)) {
	for i, v := range s.Values() {
		fn(i, v)
	}
}

// Any reports whether fn returns true for at least one element, stopping at
// the first match.
func (s *Set[T]) Any(fn func(index int, value T) bool) bool {
	for i, v := range s.Values() {
		if fn(i, v) {
			return true
		}
	}

	return false
}

// All reports whether fn returns true for every element, stopping at the
// first failure.
func (s *Set[T]) All(fn func(index int, value T) bool) bool {
	for i, v := range s.Values() {
		if !fn(i, v) {
			return false
		}
	}

	return true
}

// Find returns the position and value of the first element satisfying fn.
//
// Returns -1 and the zero value of T if no element matches.
func (s *Set[T]) Find(fn func(index int, value T) bool) (int, T) {
	for i, v := range s.Values() {
		if fn(i, v) {
			return i, v
		}
	}

	var zero T

	return -1, zero
}

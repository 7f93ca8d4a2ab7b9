package llrbset

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"github.com/qntx/llrbmap/llrb"
	"github.com/qntx/llrbmap/util"
)

// present is the sentinel value stored for every member; a set is a tree
// that only ever cares about its keys.
var present = struct{}{}

// Set is a red-black tree-based set of comparable elements, kept in sorted
// order by the bound comparator.
type Set[T comparable] struct {
	tree *llrb.Tree[T, struct{}]
}

// New creates a set for an ordered type, using T's natural order, with
// optional initial values.
func New[T cmp.Ordered](values ...T) *Set[T] {
	return NewWith(cmp.Compare[T], values...)
}

// NewWith creates a set using a custom comparator, with optional initial
// values. Panics if compare is nil.
func NewWith[T comparable](compare util.Comparator[T], values ...T) *Set[T] {
	s := &Set[T]{tree: llrb.NewWith[T, struct{}](compare)}
	s.Add(values...)

	return s
}

// Add inserts one or more elements into the set. Already-present elements
// are left untouched.
func (s *Set[T]) Add(values ...T) {
	for _, v := range values {
		_ = s.tree.Put(v, present)
	}
}

// Remove deletes one or more elements from the set, ignoring elements that
// are not present.
func (s *Set[T]) Remove(values ...T) {
	for _, v := range values {
		s.tree.Delete(v)
	}
}

// Contains reports whether every given element is present. Returns true for
// an empty argument list, since every set contains the empty set.
func (s *Set[T]) Contains(values ...T) bool {
	for _, v := range values {
		if !s.tree.ContainsKey(v) {
			return false
		}
	}

	return true
}

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool {
	return s.tree.Empty()
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Size is an alias for Len, satisfying container.Container[T].
func (s *Set[T]) Size() int {
	return s.tree.Len()
}

// Clear removes every element from the set.
func (s *Set[T]) Clear() {
	s.tree.Clear()
}

// Values returns every element in ascending order.
func (s *Set[T]) Values() []T {
	return s.tree.Keys()
}

// Comparator returns the comparator the set was constructed with.
func (s *Set[T]) Comparator() util.Comparator[T] {
	return s.tree.Comparator()
}

// String returns a string representation of the set, suitable for debugging.
func (s *Set[T]) String() string {
	var sb strings.Builder

	sb.WriteString("LLRBSet\n")

	for i, v := range s.Values() {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%v", v)
	}

	return sb.String()
}

// sameComparator reports whether s and other share the identical comparator
// function, comparing function pointers since util.Comparator values are not
// otherwise comparable.
func sameComparator[T comparable](s, other *Set[T]) bool {
	return reflect.ValueOf(s.Comparator()).Pointer() == reflect.ValueOf(other.Comparator()).Pointer()
}

// Union returns a new set containing every element present in s or other.
//
// Returns an empty set if s and other were built with different
// comparators, since there is then no single order to place the result in.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	res := NewWith(s.Comparator())

	if !sameComparator(s, other) {
		return res
	}

	res.Add(s.Values()...)
	res.Add(other.Values()...)

	return res
}

// Intersection returns a new set containing the elements present in both s
// and other.
//
// Returns an empty set if s and other were built with different
// comparators.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	res := NewWith(s.Comparator())

	if !sameComparator(s, other) {
		return res
	}

	src, dst := s, other
	if s.Len() > other.Len() {
		src, dst = other, s
	}

	for _, v := range src.Values() {
		if dst.Contains(v) {
			res.Add(v)
		}
	}

	return res
}

// Difference returns a new set containing the elements of s that are not in
// other.
//
// Returns an empty set if s and other were built with different
// comparators.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	res := NewWith(s.Comparator())

	if !sameComparator(s, other) {
		return res
	}

	for _, v := range s.Values() {
		if !other.Contains(v) {
			res.Add(v)
		}
	}

	return res
}

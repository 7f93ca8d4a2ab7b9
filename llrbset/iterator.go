package llrbset

import "github.com/qntx/llrbmap/llrb"

// Iterator provides forward and reverse traversal over a Set's elements in
// ascending order. It is a thin wrapper over the underlying tree's iterator,
// exposing the key half of each pair as the element.
type Iterator[T comparable] struct {
	it *llrb.Iterator[T, struct{}]
}

// Iterator creates a new iterator positioned before the first element.
func (s *Set[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{it: s.tree.Iterator()}
}

// Next advances the iterator to the next element in ascending order.
func (it *Iterator[T]) Next() bool {
	return it.it.Next()
}

// Prev moves the iterator to the previous element in ascending order.
func (it *Iterator[T]) Prev() bool {
	return it.it.Prev()
}

// Value returns the current element.
//
// Panics if the iterator is not positioned at a valid element.
func (it *Iterator[T]) Value() T {
	return it.it.Key()
}

// Begin resets the iterator to before the first element.
func (it *Iterator[T]) Begin() {
	it.it.Begin()
}

// End moves the iterator past the last element.
func (it *Iterator[T]) End() {
	it.it.End()
}

// First moves the iterator to the first element, returning true if the set
// is non-empty.
func (it *Iterator[T]) First() bool {
	return it.it.First()
}

// Last moves the iterator to the last element, returning true if the set is
// non-empty.
func (it *Iterator[T]) Last() bool {
	return it.it.Last()
}

// NextTo advances to the next element satisfying fn, returning true if one
// is found before the end.
func (it *Iterator[T]) NextTo(fn func(value T) bool) bool {
	return it.it.NextTo(func(key T, _ struct{}) bool { return fn(key) })
}

// PrevTo moves to the previous element satisfying fn, returning true if one
// is found before the beginning.
func (it *Iterator[T]) PrevTo(fn func(value T) bool) bool {
	return it.it.PrevTo(func(key T, _ struct{}) bool { return fn(key) })
}

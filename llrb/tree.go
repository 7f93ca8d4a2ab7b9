package llrb

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/qntx/llrbmap/util"
)

// Tree manages a left-leaning red-black tree of key/value pairs.
//
// K must be comparable and compatible with the bound comparator. V can be
// any type; value-based queries (ContainsValue, GetKey) additionally
// require a value-equality function, bound at construction alongside the
// comparator (see New, NewWith, NewFunc).
type Tree[K comparable, V any] struct {
	root    *Node[K, V]
	len     int
	compare util.Comparator[K]
	equal   func(a, b V) bool
	onEvict func(key K, value V)
}

// New creates an empty tree ordered by K's natural order (via cmp.Compare)
// and with value equality defined by Go's built-in ==.
//
// Time complexity: O(1).
func New[K cmp.Ordered, V comparable]() *Tree[K, V] {
	return &Tree[K, V]{
		compare: cmp.Compare[K],
		equal:   func(a, b V) bool { return a == b },
	}
}

// NewWith creates an empty tree ordered by the given comparator, with value
// equality defined by Go's built-in ==. Panics if compare is nil.
//
// Time complexity: O(1).
func NewWith[K comparable, V comparable](compare util.Comparator[K]) *Tree[K, V] {
	if compare == nil {
		panic("llrb: comparator must not be nil")
	}

	return &Tree[K, V]{
		compare: compare,
		equal:   func(a, b V) bool { return a == b },
	}
}

// NewFunc creates an empty tree ordered by the given comparator, with value
// equality defined by the given function. Use this constructor when V is
// not a comparable type (e.g. a slice-valued record). Panics if compare or
// equal is nil.
//
// Time complexity: O(1).
func NewFunc[K comparable, V any](compare util.Comparator[K], equal func(a, b V) bool) *Tree[K, V] {
	if compare == nil {
		panic("llrb: comparator must not be nil")
	}

	if equal == nil {
		panic("llrb: value-equality function must not be nil")
	}

	return &Tree[K, V]{compare: compare, equal: equal}
}

// WithEvict registers a callback invoked once per node destroyed by Clear,
// and returns the tree for chaining. Clear discards every node at once
// without handing any of them back to the caller, so it is the one
// operation that needs this hook (Delete, DeleteMin, and DeleteMax always
// return the removed pair directly instead).
func (t *Tree[K, V]) WithEvict(onEvict func(key K, value V)) *Tree[K, V] {
	t.onEvict = onEvict

	return t
}

// Comparator returns the key-comparison function the tree was constructed
// with.
//
// Time complexity: O(1).
func (t *Tree[K, V]) Comparator() util.Comparator[K] {
	return t.compare
}

// Len returns the number of key/value pairs stored in the tree.
//
// Time complexity: O(1).
func (t *Tree[K, V]) Len() int {
	return t.len
}

// Size is an alias for Len, satisfying container.Container[V].
//
// Time complexity: O(1).
func (t *Tree[K, V]) Size() int {
	return t.len
}

// Empty reports whether the tree holds no pairs.
//
// Time complexity: O(1).
func (t *Tree[K, V]) Empty() bool {
	return t.len == 0
}

// Clear removes every node from the tree, invoking the evict callback (if
// any) once per destroyed node, then resets the tree to empty.
//
// Time complexity: O(n).
func (t *Tree[K, V]) Clear() {
	if t.onEvict != nil {
		clearSubtree(t.root, t.onEvict)
	}

	t.root = nil
	t.len = 0
}

func clearSubtree[K comparable, V any](n *Node[K, V], onEvict func(key K, value V)) {
	if n == nil {
		return
	}

	clearSubtree(n.Left, onEvict)
	clearSubtree(n.Right, onEvict)
	onEvict(n.Key, n.Value)
}

// Keys returns every key in ascending order.
//
// Time complexity: O(n).
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.len)

	var walk func(n *Node[K, V])

	walk = func(n *Node[K, V]) {
		if n == nil {
			return
		}

		walk(n.Left)
		keys = append(keys, n.Key)
		walk(n.Right)
	}

	walk(t.root)

	return keys
}

// Values returns every value in ascending key order.
//
// Time complexity: O(n).
func (t *Tree[K, V]) Values() []V {
	values := make([]V, 0, t.len)

	var walk func(n *Node[K, V])

	walk = func(n *Node[K, V]) {
		if n == nil {
			return
		}

		walk(n.Left)
		values = append(values, n.Value)
		walk(n.Right)
	}

	walk(t.root)

	return values
}

// KeysAndValues returns every key and its value in ascending key order,
// more efficient than calling Keys and Values separately since it traverses
// the tree only once.
//
// Time complexity: O(n).
func (t *Tree[K, V]) KeysAndValues() ([]K, []V) {
	keys := make([]K, 0, t.len)
	values := make([]V, 0, t.len)

	var walk func(n *Node[K, V])

	walk = func(n *Node[K, V]) {
		if n == nil {
			return
		}

		walk(n.Left)
		keys = append(keys, n.Key)
		values = append(values, n.Value)
		walk(n.Right)
	}

	walk(t.root)

	return keys, values
}

// String returns a tree-shaped string representation, suitable for
// debugging — not for parsing.
//
// Time complexity: O(n).
func (t *Tree[K, V]) String() string {
	if t.Empty() {
		return "LLRBTree[]"
	}

	var sb strings.Builder

	sb.WriteString("LLRBTree\n")
	output(t.root, "", true, &sb)

	return sb.String()
}

func output[K comparable, V any](n *Node[K, V], prefix string, isTail bool, sb *strings.Builder) {
	if n.Right != nil {
		output(n.Right, prefix+ternary(isTail, "│   ", "    "), false, sb)
	}

	sb.WriteString(prefix)
	sb.WriteString(ternary(isTail, "└── ", "┌── "))
	fmt.Fprintf(sb, "%v\n", n.Key)

	if n.Left != nil {
		output(n.Left, prefix+ternary(isTail, "    ", "│   "), true, sb)
	}
}

func ternary[T any](cond bool, trueVal, falseVal T) T {
	if cond {
		return trueVal
	}

	return falseVal
}

// validateKey ensures key is compatible with the bound comparator,
// panicking with ErrInvalidKeyType wrapped context if it is not.
func (t *Tree[K, V]) validateKey(key K) {
	if _, err := safeCompare(t.compare, key, key); err != nil {
		panic(fmt.Errorf("llrb: %w", err))
	}
}

package llrb

import (
	"errors"
	"slices"
	"testing"
)

func TestIteratorForward(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, map[int]string{3: "c", 1: "a", 2: "b"})

	var got []int

	it := tree.Iterator()
	for it.Next() {
		got = append(got, it.Key())
	}

	want := []int{1, 2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("forward iteration = %v, want %v", got, want)
	}

	if it.Next() {
		t.Errorf("Next() past the end returned true")
	}
}

func TestIteratorReverse(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, map[int]string{3: "c", 1: "a", 2: "b"})

	var got []int

	it := tree.Iterator()
	it.End()

	for it.Prev() {
		got = append(got, it.Key())
	}

	want := []int{3, 2, 1}
	if !slices.Equal(got, want) {
		t.Errorf("reverse iteration = %v, want %v", got, want)
	}
}

func TestIteratorFirstLast(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, map[int]string{3: "c", 1: "a", 2: "b"})

	it := tree.Iterator()
	if !it.First() || it.Key() != 1 {
		t.Errorf("First() landed on key %d, want 1", it.Key())
	}

	if !it.Last() || it.Key() != 3 {
		t.Errorf("Last() landed on key %d, want 3", it.Key())
	}
}

func TestIteratorKeyValuePanicAtInvalidPosition(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, map[int]string{1: "a"})
	it := tree.Iterator()

	assertPanics := func(name string, fn func()) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%s did not panic at invalid position", name)
			} else if err, ok := r.(error); !ok || !errors.Is(err, ErrInvalidIteratorPosition) {
				t.Errorf("%s panicked with %v, want ErrInvalidIteratorPosition", name, r)
			}
		}()

		fn()
	}

	assertPanics("Key()", func() { it.Key() })
	assertPanics("Value()", func() { it.Value() })
}

func TestIteratorEmptyTree(t *testing.T) {
	t.Parallel()

	tree := New[int, string]()
	it := tree.Iterator()

	if it.Next() {
		t.Errorf("Next() on empty tree returned true")
	}

	if it.First() {
		t.Errorf("First() on empty tree returned true")
	}
}

func TestIteratorNextToPrevTo(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, map[int]string{1: "a", 2: "b", 3: "c", 4: "d"})

	it := tree.Iterator()
	if !it.NextTo(func(key int, _ string) bool { return key == 3 }) {
		t.Fatalf("NextTo did not find key 3")
	}

	if it.Key() != 3 {
		t.Errorf("NextTo landed on key %d, want 3", it.Key())
	}

	if !it.PrevTo(func(key int, _ string) bool { return key == 1 }) {
		t.Fatalf("PrevTo did not find key 1")
	}

	if it.Key() != 1 {
		t.Errorf("PrevTo landed on key %d, want 1", it.Key())
	}
}

package llrb

import "testing"

const defaultBenchSize = 5000

func BenchmarkLLRBTree(b *testing.B) {
	b.Run("Insert", func(b *testing.B) {
		for b.Loop() {
			tree := New[int, struct{}]()
			for i := range defaultBenchSize {
				_ = tree.Put(i, struct{}{})
			}
		}
	})

	tree := New[int, struct{}]()
	for i := range defaultBenchSize {
		_ = tree.Put(i, struct{}{})
	}

	b.Run("Keys", func(b *testing.B) {
		b.ResetTimer()

		for b.Loop() {
			_ = tree.Keys()
		}
	})
}

func benchmarkGet(b *testing.B, tree *Tree[int, struct{}], size int) {
	b.Helper()

	for b.Loop() {
		for n := range size {
			tree.Get(n)
		}
	}
}

func benchmarkPut(b *testing.B, tree *Tree[int, struct{}], size int) {
	b.Helper()

	for b.Loop() {
		for n := range size {
			_ = tree.Put(n, struct{}{})
		}
	}
}

func benchmarkDelete(b *testing.B, tree *Tree[int, struct{}], size int) {
	b.Helper()

	for b.Loop() {
		for n := range size {
			tree.Delete(n)
		}
	}
}

func BenchmarkLLRBTreeGet100(b *testing.B) {
	b.StopTimer()

	size := 100
	tree := New[int, struct{}]()

	for n := range size {
		_ = tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkGet(b, tree, size)
}

func BenchmarkLLRBTreeGet1000(b *testing.B) {
	b.StopTimer()

	size := 1000
	tree := New[int, struct{}]()

	for n := range size {
		_ = tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkGet(b, tree, size)
}

func BenchmarkLLRBTreeGet10000(b *testing.B) {
	b.StopTimer()

	size := 10000
	tree := New[int, struct{}]()

	for n := range size {
		_ = tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkGet(b, tree, size)
}

func BenchmarkLLRBTreePut100(b *testing.B) {
	b.StopTimer()

	size := 100
	tree := New[int, struct{}]()

	b.StartTimer()
	benchmarkPut(b, tree, size)
}

func BenchmarkLLRBTreePut1000(b *testing.B) {
	b.StopTimer()

	size := 1000
	tree := New[int, struct{}]()

	b.StartTimer()
	benchmarkPut(b, tree, size)
}

func BenchmarkLLRBTreePut10000(b *testing.B) {
	b.StopTimer()

	size := 10000
	tree := New[int, struct{}]()

	b.StartTimer()
	benchmarkPut(b, tree, size)
}

func BenchmarkLLRBTreeDelete100(b *testing.B) {
	b.StopTimer()

	size := 100
	tree := New[int, struct{}]()

	for n := range size {
		_ = tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkDelete(b, tree, size)
}

func BenchmarkLLRBTreeDelete1000(b *testing.B) {
	b.StopTimer()

	size := 1000
	tree := New[int, struct{}]()

	for n := range size {
		_ = tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkDelete(b, tree, size)
}

func BenchmarkLLRBTreeDelete10000(b *testing.B) {
	b.StopTimer()

	size := 10000
	tree := New[int, struct{}]()

	for n := range size {
		_ = tree.Put(n, struct{}{})
	}

	b.StartTimer()
	benchmarkDelete(b, tree, size)
}

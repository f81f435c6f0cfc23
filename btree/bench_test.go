package btree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vigraph/btree"
)

// buildTree inserts n distinct random keys and returns the tree.
func buildTree(b *testing.B, n int) *btree.Tree[int, int] {
	b.Helper()
	tr, err := btree.New[int, int](btree.Ordered[int]())
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewSource(11))
	for _, k := range rng.Perm(n) {
		if err = tr.Insert(k, k); err != nil {
			b.Fatalf("Insert: %v", err)
		}
	}

	return tr
}

// BenchmarkInsert measures insertion throughput on shuffled keys.
func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(13))
	keys := rng.Perm(b.N)
	tr, err := btree.New[int, int](btree.Ordered[int]())
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.ResetTimer()
	for _, k := range keys {
		_ = tr.Insert(k, k)
	}
}

// BenchmarkSearch measures point lookups on a 100k-key tree.
func BenchmarkSearch(b *testing.B) {
	const n = 100_000
	tr := buildTree(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Search(i % n); err != nil {
			b.Fatalf("Search: %v", err)
		}
	}
}

// BenchmarkInOrder measures the full sorted export of a 100k-key tree.
func BenchmarkInOrder(b *testing.B) {
	const n = 100_000
	tr := buildTree(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.InOrder(); err != nil {
			b.Fatalf("InOrder: %v", err)
		}
	}
}

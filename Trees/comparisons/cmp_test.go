package comparisons

import (
	"cmp"
	"io"
	"log/slog"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/bintree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkItemCount = 1 << 12

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func cmpInt(a, b *int) int {
	return cmp.Compare(*a, *b)
}

// compares ordered containers: google/btree, petar/GoLLRB and the gods red-black tree.
// compares point lookups with https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap,
// which are unordered and only serve as a lower bound.
func setupRB(b *testing.B) *Trees.BinTree[int, uint32] {
	b.Helper()
	p := Trees.NewPool[int, uint32](benchmarkItemCount)
	t := Trees.New(p, cmpInt, p.Free, Trees.WithLogger(quiet))
	for i := range benchmarkItemCount {
		t.Insert(p.Alloc(i))
	}
	return t
}

func setupTreap(b *testing.B) *Trees.BinTree[int, uint32] {
	b.Helper()
	p := Trees.NewPool[int, uint32](benchmarkItemCount)
	t := Trees.NewTreap(p, cmpInt, p.Free, 1, Trees.WithLogger(quiet))
	for i := range benchmarkItemCount {
		t.Insert(p.Alloc(i))
	}
	return t
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewG[int](32, func(a, b int) bool { return a < b })
	for i := range benchmarkItemCount {
		t.ReplaceOrInsert(i)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for i := range benchmarkItemCount {
		t.ReplaceOrInsert(llrb.Int(i))
	}
	return t
}

func setupGods(b *testing.B) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWith(utils.IntComparator)
	for i := range benchmarkItemCount {
		t.Put(i, struct{}{})
	}
	return t
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, struct{}] {
	b.Helper()
	m := haxmap.New[int, struct{}]()
	for i := range benchmarkItemCount {
		m.Set(i, struct{}{})
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int, struct{}] {
	b.Helper()
	m := hashmap.New[int, struct{}]()
	for i := range benchmarkItemCount {
		m.Set(i, struct{}{})
	}
	return m
}

func BenchmarkReadRB(b *testing.B) {
	t := setupRB(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := range benchmarkItemCount {
				if !t.Contains(&i) {
					b.Fail()
				}
			}
		}
	})
}

func BenchmarkReadTreap(b *testing.B) {
	t := setupTreap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := range benchmarkItemCount {
				if !t.Contains(&i) {
					b.Fail()
				}
			}
		}
	})
}

func BenchmarkReadBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := range benchmarkItemCount {
				if !t.Has(i) {
					b.Fail()
				}
			}
		}
	})
}

func BenchmarkReadLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := range benchmarkItemCount {
				if !t.Has(llrb.Int(i)) {
					b.Fail()
				}
			}
		}
	})
}

func BenchmarkReadGods(b *testing.B) {
	t := setupGods(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := range benchmarkItemCount {
				if _, found := t.Get(i); !found {
					b.Fail()
				}
			}
		}
	})
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := range benchmarkItemCount {
				if _, ok := m.Get(i); !ok {
					b.Fail()
				}
			}
		}
	})
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := range benchmarkItemCount {
				if _, ok := m.Get(i); !ok {
					b.Fail()
				}
			}
		}
	})
}

func BenchmarkChurnRB(b *testing.B) {
	t := setupRB(b)
	p := t.Pool()
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			t.Delete(&i)
			t.Insert(p.Alloc(i))
		}
	}
}

func BenchmarkChurnTreap(b *testing.B) {
	t := setupTreap(b)
	p := t.Pool()
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			t.Delete(&i)
			t.Insert(p.Alloc(i))
		}
	}
}

func BenchmarkChurnBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			t.Delete(i)
			t.ReplaceOrInsert(i)
		}
	}
}

func BenchmarkChurnLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			t.Delete(llrb.Int(i))
			t.ReplaceOrInsert(llrb.Int(i))
		}
	}
}

func BenchmarkChurnGods(b *testing.B) {
	t := setupGods(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			t.Remove(i)
			t.Put(i, struct{}{})
		}
	}
}

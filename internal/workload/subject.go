package workload

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/bintree/Trees"
)

// ErrUnknownSubject is returned by NewSubject for names not in Subjects.
var ErrUnknownSubject = errors.New("unknown subject")

// Subjects that can be measured.
var Subjects = []string{"rb", "treap", "btree", "llrb", "gods"}

// Subject is an ordered set of ints under measurement.
type Subject interface {
	Insert(k int) bool
	Delete(k int) bool
	Contains(k int) bool
	Len() int
	// Height of the tree, -1 if the container doesn't expose it.
	Height() int
	// Close releases everything the subject holds.
	Close() error
}

// NewSubject by name. hint is the expected number of keys.
func NewSubject(name string, hint int, seed uint64, log *slog.Logger) (Subject, error) {
	switch name {
	case "rb", "treap":
		s := &intrusive{pool: Trees.NewPool[int, uint32](hint)}
		s.pool.SetLogger(log)
		opts := []Trees.Option{Trees.WithLogger(log), Trees.WithName(name)}
		if name == "rb" {
			s.tree = Trees.New(s.pool, compareInts, s.pool.Free, opts...)
		} else {
			s.tree = Trees.NewTreap(s.pool, compareInts, s.pool.Free, seed, opts...)
		}
		return s, nil
	case "btree":
		return &bTree{btree.NewG[int](32, func(a, b int) bool { return a < b })}, nil
	case "llrb":
		return &llrbTree{llrb.New()}, nil
	case "gods":
		return &godsTree{redblacktree.NewWith(utils.IntComparator)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, name)
}

func compareInts(a, b *int) int {
	return cmp.Compare(*a, *b)
}

type intrusive struct {
	pool *Trees.Pool[int, uint32]
	tree *Trees.BinTree[int, uint32]
}

func (s *intrusive) Insert(k int) bool {
	h := s.pool.Alloc(k)
	if h == 0 {
		return false
	}
	return s.tree.Insert(h)
}

func (s *intrusive) Delete(k int) bool {
	return s.tree.Delete(&k)
}

func (s *intrusive) Contains(k int) bool {
	return s.tree.Contains(&k)
}

func (s *intrusive) Len() int {
	return int(s.tree.Size())
}

func (s *intrusive) Height() int {
	return int(s.tree.MaxDepth())
}

func (s *intrusive) Close() error {
	s.tree.Destroy()
	return s.pool.Close()
}

type bTree struct {
	t *btree.BTreeG[int]
}

func (s *bTree) Insert(k int) bool {
	_, had := s.t.ReplaceOrInsert(k)
	return !had
}

func (s *bTree) Delete(k int) bool {
	_, had := s.t.Delete(k)
	return had
}

func (s *bTree) Contains(k int) bool { return s.t.Has(k) }
func (s *bTree) Len() int            { return s.t.Len() }
func (s *bTree) Height() int         { return -1 }

func (s *bTree) Close() error {
	s.t.Clear(false)
	return nil
}

type llrbTree struct {
	t *llrb.LLRB
}

func (s *llrbTree) Insert(k int) bool {
	return s.t.ReplaceOrInsert(llrb.Int(k)) == nil
}

func (s *llrbTree) Delete(k int) bool {
	return s.t.Delete(llrb.Int(k)) != nil
}

func (s *llrbTree) Contains(k int) bool { return s.t.Has(llrb.Int(k)) }
func (s *llrbTree) Len() int            { return s.t.Len() }
func (s *llrbTree) Height() int         { return -1 }

func (s *llrbTree) Close() error {
	s.t = llrb.New()
	return nil
}

type godsTree struct {
	t *redblacktree.Tree
}

func (s *godsTree) Insert(k int) bool {
	if _, found := s.t.Get(k); found {
		return false
	}
	s.t.Put(k, struct{}{})
	return true
}

func (s *godsTree) Delete(k int) bool {
	if _, found := s.t.Get(k); !found {
		return false
	}
	s.t.Remove(k)
	return true
}

func (s *godsTree) Contains(k int) bool {
	_, found := s.t.Get(k)
	return found
}

func (s *godsTree) Len() int    { return s.t.Size() }
func (s *godsTree) Height() int { return -1 }

func (s *godsTree) Close() error {
	s.t.Clear()
	return nil
}

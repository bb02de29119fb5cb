package Trees

import (
	"log/slog"

	"golang.org/x/exp/constraints"
)

// BinTree is an intrusive balanced binary search tree over the handles of a
// Pool. The tree owns the linkage of its resident handles, never their
// memory: payloads stay in the pool and handles stay valid across
// rotations and deletions of other elements.
// The balancing strategy is chosen at construction, see RedBlack and Treap.
type BinTree[T any, S constraints.Unsigned] struct {
	frame[S]
	pool    *Pool[T, S]
	Cmp     Comparator[T]
	destroy Destroyer[S]
	bal     Balancer[S]
	size    S
	log     *slog.Logger
}

var _ Tree[int, uint32] = (*BinTree[int, uint32])(nil)

// New red-black tree over pool. cmp and destroy mustn't be nil.
func New[T any, S constraints.Unsigned](pool *Pool[T, S], cmp Comparator[T], destroy Destroyer[S], opts ...Option) *BinTree[T, S] {
	return NewWith(pool, cmp, destroy, RedBlack[S](), opts...)
}

// NewTreap creates a treap over pool whose priorities are drawn from a
// generator seeded with seed.
func NewTreap[T any, S constraints.Unsigned](pool *Pool[T, S], cmp Comparator[T], destroy Destroyer[S], seed uint64, opts ...Option) *BinTree[T, S] {
	return NewWith(pool, cmp, destroy, Treap[S](seed), opts...)
}

// NewWith creates a tree balanced by bal. A Balancer value belongs to one tree.
func NewWith[T any, S constraints.Unsigned](pool *Pool[T, S], cmp Comparator[T], destroy Destroyer[S], bal Balancer[S], opts ...Option) *BinTree[T, S] {
	if pool == nil || cmp == nil || destroy == nil || bal == nil {
		panic(corrupt("NewWith", 0, "nil pool, comparator, destroyer or balancer"))
	}
	o := buildOptions(opts)
	return &BinTree[T, S]{
		frame:   frame[S]{arena: &pool.arena},
		pool:    pool,
		Cmp:     cmp,
		destroy: destroy,
		bal:     bal,
		log:     o.log.With(slog.String("balancer", bal.String())),
	}
}

// Size returns the number of resident handles.
// Time: O(1); Space: O(1)
func (u *BinTree[T, S]) Size() S {
	return u.size
}

// Root handle, 0 if empty.
func (u *BinTree[T, S]) Root() S {
	return u.root
}

// Pool the tree's handles come from.
func (u *BinTree[T, S]) Pool() *Pool[T, S] {
	return u.pool
}

// Balancer in use.
func (u *BinTree[T, S]) Balancer() Balancer[S] {
	return u.bal
}

// MaxDepth is the number of nodes on the longest root to leaf path.
// Time: O(n); Space: O(D)
func (u *BinTree[T, S]) MaxDepth() S {
	type item struct{ i, d S }
	var d S
	st := make([]item, 0, 64)
	if u.root != 0 {
		st = append(st, item{u.root, 1})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		d = max(d, top.d)
		if n := &u.ns[top.i]; n.l != 0 {
			st = append(st, item{n.l, top.d + 1})
		}
		if n := &u.ns[top.i]; n.r != 0 {
			st = append(st, item{n.r, top.d + 1})
		}
	}
	return d
}

// Insert [Tree.Insert]. Inserting a handle that is free or already linked
// panics with a *CorruptError.
// Time: O(D)
func (u *BinTree[T, S]) Insert(h S) bool {
	if int(h) >= len(u.ns) || u.ns[h].state != detached {
		panic(corrupt("Insert", uint64(h), "handle is not a detached allocation"))
	}
	v := u.pool.Get(h)
	var p S
	order := 0
	for curI := u.root; curI != 0; {
		p = curI
		if order = u.Cmp(v, u.pool.Get(curI)); order < 0 {
			curI = u.ns[curI].l
		} else if order > 0 {
			curI = u.ns[curI].r
		} else {
			u.log.Error("attempted to insert a value that already exists", slog.Uint64("handle", uint64(h)), slog.Uint64("resident", uint64(curI)))
			u.destroy(h)
			return false
		}
	}
	n := &u.ns[h]
	n.l, n.r, n.p, n.phantom, n.state = 0, 0, p, false, linked
	u.bal.prepare(&u.frame, h)
	if p == 0 {
		u.root = h
	} else if order < 0 {
		u.ns[p].l = h
	} else {
		u.ns[p].r = h
	}
	u.size++
	u.bal.inserted(&u.frame, h)
	return true
}

// Delete [Tree.Delete]
// Time: O(D)
func (u *BinTree[T, S]) Delete(q *T) bool {
	h := u.Find(q)
	if h == 0 {
		u.log.Warn("attempted to delete a value that doesn't exist")
		return false
	}
	u.bal.remove(&u.frame, h)
	u.ns[h] = node[S]{state: detached}
	u.size--
	u.destroy(h)
	return true
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *BinTree[T, S]) Contains(q *T) bool {
	return u.Find(q) != 0
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BinTree[T, S]) Find(q *T) S {
	for curI := u.root; curI != 0; {
		if order := u.Cmp(q, u.pool.Get(curI)); order < 0 {
			curI = u.ns[curI].l
		} else if order > 0 {
			curI = u.ns[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BinTree[T, S]) Minimum() S {
	return u.minimum(u.root)
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BinTree[T, S]) Maximum() S {
	return u.maximum(u.root)
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BinTree[T, S]) Predecessor(q *T, strict bool) (p S) {
	for curI := u.root; curI != 0; {
		if order := u.Cmp(q, u.pool.Get(curI)); order < 0 || (strict && order == 0) {
			curI = u.ns[curI].l
		} else {
			p = curI
			curI = u.ns[curI].r
		}
	}
	return
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BinTree[T, S]) Successor(q *T, strict bool) (p S) {
	for curI := u.root; curI != 0; {
		if order := u.Cmp(q, u.pool.Get(curI)); order > 0 || (strict && order == 0) {
			curI = u.ns[curI].r
		} else {
			p = curI
			curI = u.ns[curI].l
		}
	}
	return
}

// InOrder [Tree.InOrder]. Stack based, the links are only read.
// Time: O(n); Space: O(D)
func (u *BinTree[T, S]) InOrder(f func(S, *T) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ns[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(curI, u.pool.Get(curI)) {
			break
		}
		for curI = u.ns[curI].r; curI != 0; curI = u.ns[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// InOrderR [Tree.InOrderR]
// Time: O(n); Space: O(D)
func (u *BinTree[T, S]) InOrderR(f func(S, *T) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ns[curI].r {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(curI, u.pool.Get(curI)) {
			break
		}
		for curI = u.ns[curI].l; curI != 0; curI = u.ns[curI].r {
			st = append(st, curI)
		}
	}
	return st
}

// Destroy [Tree.Destroy]. Post-order with an explicit stack, so the depth of
// the tree never reaches the goroutine stack.
// Time: O(n); Space: O(D)
func (u *BinTree[T, S]) Destroy() {
	var count S
	st := make([]S, 0, 64)
	if u.root != 0 {
		st = append(st, u.root)
	}
	var last S
	for len(st) > 0 {
		curI := st[len(st)-1]
		cur := &u.ns[curI]
		if cur.l != 0 && last != cur.l && (cur.r == 0 || last != cur.r) {
			st = append(st, cur.l)
		} else if cur.r != 0 && last != cur.r {
			st = append(st, cur.r)
		} else {
			st = st[:len(st)-1]
			*cur = node[S]{state: detached}
			u.destroy(curI)
			count++
			last = curI
		}
	}
	u.root, u.size = 0, 0
	u.log.Debug("tree destroyed", slog.Uint64("destroyed", uint64(count)))
}

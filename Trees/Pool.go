package Trees

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/constraints"
)

// Pool is the allocator behind one or more trees. Every slot pairs a
// payload of type T with the linkage a tree needs, so a handle returned by
// Alloc is the caller's "node embedding structure". Handles are stable
// for the lifetime of the allocation; freed handles are reused first.
// Handle 0 is never returned by a successful Alloc.
// A handle may be resident in at most one tree at a time.
// The zero value isn't usable, create pools with NewPool.
type Pool[T any, S constraints.Unsigned] struct {
	arena[S]
	vs  []T // vs[i] belongs to ns[i]; vs[0] is unused.
	log *slog.Logger
}

// NewPool with capacity for hint handles before growing.
func NewPool[T any, S constraints.Unsigned](hint int) *Pool[T, S] {
	u := &Pool[T, S]{
		arena: arena[S]{ns: make([]node[S], 1, hint+1)},
		vs:    make([]T, 1, hint+1),
		log:   slog.Default(),
	}
	u.ns[0].state = released
	return u
}

// SetLogger used for leak diagnostics.
func (u *Pool[T, S]) SetLogger(l *slog.Logger) {
	u.log = l
}

// Alloc a handle holding v. Returns 0 if every value of S is in use.
func (u *Pool[T, S]) Alloc(v T) S {
	h := u.free
	if h != 0 {
		u.free = u.ns[h].l
	} else {
		h = S(len(u.ns))
		if int(h) != len(u.ns) || h == 0 { // S wrapped around
			return 0
		}
		u.ns = append(u.ns, node[S]{})
		u.vs = append(u.vs, v)
	}
	u.ns[h] = node[S]{state: detached}
	u.vs[h] = v
	u.live++
	return h
}

// Get the payload of h. The pointer is valid until the next Alloc that
// grows the pool; don't retain it across allocations.
func (u *Pool[T, S]) Get(h S) *T {
	return &u.vs[h]
}

// Free returns h to the pool. Freeing the nil handle, a free handle, or a
// handle still linked into a tree panics.
func (u *Pool[T, S]) Free(h S) {
	if int(h) >= len(u.ns) {
		panic(corrupt("Free", uint64(h), "handle out of range"))
	}
	switch u.ns[h].state {
	case linked:
		panic(corrupt("Free", uint64(h), "handle is still linked into a tree"))
	case released:
		panic(corrupt("Free", uint64(h), "handle is already free"))
	}
	u.vs[h] = *new(T)
	u.ns[h] = node[S]{l: u.free, state: released}
	u.free = h
	u.live--
}

// Live number of allocated handles.
func (u *Pool[T, S]) Live() S {
	return u.live
}

// Cap is the number of slots currently backing the pool, including free ones.
func (u *Pool[T, S]) Cap() int {
	return len(u.ns) - 1
}

// Close reports handles that were never freed. The pool stays usable.
func (u *Pool[T, S]) Close() error {
	if u.live == 0 {
		return nil
	}
	u.log.Warn("pool closed with live handles", slog.Uint64("live", uint64(u.live)), slog.Int("slots", u.Cap()))
	return fmt.Errorf("%w: %d", ErrLeaked, u.live)
}

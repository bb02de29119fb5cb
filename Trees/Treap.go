package Trees

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// treap orders the tree by key and keeps it a max-heap on a random
// priority per node, giving an expected height of O(log n).
// Priorities come from the treap's own seeded generator so that a given
// seed and operation sequence always produce the same shape.
type treap[S constraints.Unsigned] struct {
	rg *rand.Rand
}

// Treap balancing with priorities drawn from a PCG generator seeded with seed.
// The returned Balancer must not be shared between trees.
func Treap[S constraints.Unsigned](seed uint64) Balancer[S] {
	return &treap[S]{rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (*treap[S]) String() string {
	return "treap"
}

func (u *treap[S]) prepare(f *frame[S], n S) {
	f.ns[n].prio = u.rg.Uint32()
}

// inserted rotates the new leaf up while it outranks its parent.
func (*treap[S]) inserted(f *frame[S], n S) {
	for p := f.ns[n].p; p != 0 && f.ns[p].prio < f.ns[n].prio; p = f.ns[n].p {
		if f.ns[p].l == n {
			f.rotateRight(p)
		} else {
			f.rotateLeft(p)
		}
	}
}

// remove rotates n down toward its higher priority child until it has at
// most one child, then splices it out.
func (*treap[S]) remove(f *frame[S], n S) {
	for {
		cur := &f.ns[n]
		if cur.l == 0 {
			f.replaceChild(cur.p, n, cur.r)
			return
		} else if cur.r == 0 {
			f.replaceChild(cur.p, n, cur.l)
			return
		}
		if f.ns[cur.l].prio > f.ns[cur.r].prio {
			f.rotateRight(n)
		} else {
			f.rotateLeft(n)
		}
	}
}

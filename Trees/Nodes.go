package Trees

import "golang.org/x/exp/constraints"

// residency of a handle.
const (
	detached uint8 = iota // allocated, not in any tree
	linked                // resident in a tree
	released              // on the pool's free list
)

// node is the linkage record paired with every payload in a Pool.
// Handle 0 is the nil loopback: its zero value is black, childless and
// parentless, and it is never written to.
type node[S constraints.Unsigned] struct {
	l, r, p S      // p is a back reference only, never followed for destruction.
	prio    uint32 // heap key, treap only.
	red     bool
	phantom bool // black leaf kept in place while the deletion fixup runs; a second remove of it panics.
	state   uint8
}

// arena holds the linkage records. ns[0] is the nil loopback.
// free is the head of the free list; node.l is used as next.
type arena[S constraints.Unsigned] struct {
	ns         []node[S]
	free, live S
}

// frame is the part of a tree that a Balancer restructures: the shared
// arena and the root handle.
type frame[S constraints.Unsigned] struct {
	*arena[S]
	root S
}

func (u *frame[S]) at(i S) *node[S] {
	return &u.ns[i]
}

func (u *frame[S]) isRed(i S) bool {
	return u.ns[i].red
}

// replaceChild points the slot of p that held old at nw. p==0 means old was the root.
func (u *frame[S]) replaceChild(p, old, nw S) {
	if p == 0 {
		u.root = nw
	} else if pn := &u.ns[p]; pn.l == old {
		pn.l = nw
	} else if pn.r == old {
		pn.r = nw
	} else {
		panic(corrupt("replaceChild", uint64(old), "node is not a child of its parent"))
	}
	if nw != 0 {
		u.ns[nw].p = p
	}
}

// rotateLeft lifts the right child of x into x's position.
// Time: O(1); Space: O(1)
func (u *frame[S]) rotateLeft(x S) {
	n := &u.ns[x]
	y := n.r
	if y == 0 {
		panic(corrupt("rotateLeft", uint64(x), "no right child"))
	}
	p := n.p
	if n.r = u.ns[y].l; n.r != 0 {
		u.ns[n.r].p = x
	}
	u.ns[y].l = x
	n.p = y
	u.replaceChild(p, x, y)
}

// rotateRight lifts the left child of x into x's position.
// Time: O(1); Space: O(1)
func (u *frame[S]) rotateRight(x S) {
	n := &u.ns[x]
	y := n.l
	if y == 0 {
		panic(corrupt("rotateRight", uint64(x), "no left child"))
	}
	p := n.p
	if n.l = u.ns[y].r; n.l != 0 {
		u.ns[n.l].p = x
	}
	u.ns[y].r = x
	n.p = y
	u.replaceChild(p, x, y)
}

// sibling of i under its parent. Panics when i isn't a child of its parent.
func (u *frame[S]) sibling(i S) S {
	p := &u.ns[u.ns[i].p]
	if p.l == i {
		return p.r
	} else if p.r == i {
		return p.l
	}
	panic(corrupt("sibling", uint64(i), "node is not a child of its parent"))
}

func (u *frame[S]) minimum(i S) S {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

func (u *frame[S]) maximum(i S) S {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// swapWithSuccessor exchanges the positions and colors of a, which must have
// two children, and its in-order successor. Handles keep their payloads.
// Afterwards a has no left child.
func (u *frame[S]) swapWithSuccessor(a S) S {
	an := &u.ns[a]
	s := u.minimum(an.r)
	sn := &u.ns[s]
	ap, al, ar := an.p, an.l, an.r
	sp, sr := sn.p, sn.r
	an.red, sn.red = sn.red, an.red

	u.replaceChild(ap, a, s)
	sn.l = al
	u.ns[al].p = s
	if sp == a {
		sn.r = a
		an.p = s
	} else {
		sn.r = ar
		u.ns[ar].p = s
		u.ns[sp].l = a
		an.p = sp
	}
	an.l, an.r = 0, sr
	if sr != 0 {
		u.ns[sr].p = a
	}
	return s
}

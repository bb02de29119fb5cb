package Trees

import "golang.org/x/exp/constraints"

// redBlack keeps the tree a red-black tree: the root is black, a red node
// has no red child and every path from a node to a leaf passes the same
// number of black nodes. The height is at most 2*log2(n+1).
// It holds no state, one value may be shared.
type redBlack[S constraints.Unsigned] struct{}

// RedBlack balancing. At most 2 rotations per insertion and 3 per deletion.
func RedBlack[S constraints.Unsigned]() Balancer[S] {
	return redBlack[S]{}
}

func (redBlack[S]) String() string {
	return "red-black"
}

func (redBlack[S]) prepare(f *frame[S], n S) {
	f.ns[n].red = true
}

// inserted walks from the new red leaf toward the root until no red node
// has a red parent.
func (redBlack[S]) inserted(f *frame[S], n S) {
	for {
		p := f.ns[n].p
		if p == 0 {
			f.ns[n].red = false
			return
		}
		if !f.isRed(p) {
			return
		}
		g := f.ns[p].p
		if g == 0 {
			f.ns[p].red = false
			return
		}
		if un := f.sibling(p); f.isRed(un) {
			f.ns[p].red, f.ns[un].red, f.ns[g].red = false, false, true
			n = g
			continue
		}
		if p == f.ns[g].l {
			if n == f.ns[p].r {
				f.rotateLeft(p)
				p = n
			}
			f.rotateRight(g)
		} else {
			if n == f.ns[p].l {
				f.rotateRight(p)
				p = n
			}
			f.rotateLeft(g)
		}
		f.ns[p].red, f.ns[g].red = false, true
		return
	}
}

// remove reduces n to at most one child by trading places with its
// successor, then splices it out. A black leaf stays in place as a
// phantom while the black deficit is pushed up, then it is detached.
func (b redBlack[S]) remove(f *frame[S], n S) {
	if f.ns[n].phantom {
		panic(corrupt("remove", uint64(n), "node is already being removed"))
	}
	if f.ns[n].l != 0 && f.ns[n].r != 0 {
		f.swapWithSuccessor(n)
	}
	cur := &f.ns[n]
	child := cur.l
	if child == 0 {
		child = cur.r
	}
	if child != 0 {
		f.replaceChild(cur.p, n, child)
		if !cur.red {
			if f.isRed(child) {
				f.ns[child].red = false
			} else {
				panic(corrupt("remove", uint64(n), "black node has a single black child"))
			}
		}
		return
	}
	if cur.red {
		f.replaceChild(cur.p, n, 0)
		return
	}
	cur.phantom = true
	b.removed(f, n)
	if pn := &f.ns[n]; !pn.phantom || pn.l != 0 || pn.r != 0 {
		panic(corrupt("remove", uint64(n), "phantom leaf changed during the fixup"))
	}
	f.replaceChild(f.ns[n].p, n, 0)
	f.ns[n].phantom = false
}

// removed restores the black-height after a black node on the path of n
// lost one black.
func (redBlack[S]) removed(f *frame[S], n S) {
	for n != f.root {
		p := f.ns[n].p
		s := f.sibling(n)
		if s == 0 {
			panic(corrupt("remove", uint64(n), "black node has no sibling"))
		}
		left := n == f.ns[p].l
		if f.isRed(s) {
			f.ns[s].red, f.ns[p].red = false, true
			if left {
				f.rotateLeft(p)
				s = f.ns[p].r
			} else {
				f.rotateRight(p)
				s = f.ns[p].l
			}
		}
		sn := &f.ns[s]
		if !f.isRed(sn.l) && !f.isRed(sn.r) {
			sn.red = true
			if f.isRed(p) {
				f.ns[p].red = false
				return
			}
			n = p
			continue
		}
		if left && !f.isRed(sn.r) {
			f.ns[sn.l].red, sn.red = false, true
			f.rotateRight(s)
			s = f.ns[p].r
		} else if !left && !f.isRed(sn.l) {
			f.ns[sn.r].red, sn.red = false, true
			f.rotateLeft(s)
			s = f.ns[p].l
		}
		sn = &f.ns[s]
		sn.red, f.ns[p].red = f.ns[p].red, false
		if left {
			f.ns[sn.r].red = false
			f.rotateLeft(p)
		} else {
			f.ns[sn.l].red = false
			f.rotateRight(p)
		}
		return
	}
	f.ns[n].red = false
}

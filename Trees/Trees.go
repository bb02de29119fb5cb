package Trees

import "golang.org/x/exp/constraints"

// Comparator returns a negative number if *a < *b, 0 if they are equal and a
// positive number if *a > *b. See cmp.Compare for an example. It must be a
// strict total order and must not change while either value is resident.
type Comparator[T any] func(a, b *T) int

// Destroyer releases a handle and its payload, usually by calling Pool.Free.
// A tree calls it exactly once per handle it took: on Delete, on Destroy,
// or right away when Insert rejects the handle as a duplicate.
type Destroyer[S constraints.Unsigned] func(h S)

// Tree is an intrusive ordered set of pool handles.
// Queries take a *T that doesn't need to live in the pool; only the
// Comparator is used to find the equivalent resident handle.
// Methods returning a handle return 0 when there is no such element.
// Nothing here is synchronized: readers may run together, but never
// together with Insert, Delete or Destroy.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert the detached handle h. Returns false if an equal element is
	//already resident, in which case h has been destroyed.
	Insert(h S) bool
	//Delete the element equal to q and destroy its handle. Returns false
	//if there is none.
	Delete(q *T) bool
	//Contains an element equal to q.
	Contains(q *T) bool
	//Find the handle of the element equal to q.
	Find(q *T) S
	//Minimum element of the tree.
	Minimum() S
	//Maximum element of the tree.
	Maximum() S
	//Predecessor of q. If strict, result<q; otherwise result<=q.
	Predecessor(q *T, strict bool) S
	//Successor of q. If strict, result>q; otherwise result>=q.
	Successor(q *T, strict bool) S
	//InOrder calls f on every element in ascending order until f returns
	//false. st is an optional stack buffer which is returned for reuse.
	InOrder(f func(S, *T) bool, st []S) []S
	//InOrderR is InOrder in descending order.
	InOrderR(f func(S, *T) bool, st []S) []S
	//Size of the tree.
	Size() S
	//Destroy every resident handle. The tree is empty afterwards.
	Destroy()
}

// Balancer is the strategy that keeps a BinTree shallow. Its methods are
// sealed; use RedBlack or Treap.
type Balancer[S constraints.Unsigned] interface {
	String() string
	// prepare a detached node right before it is attached as a leaf.
	prepare(f *frame[S], n S)
	// inserted rebalances after the leaf n has been attached.
	inserted(f *frame[S], n S)
	// remove unlinks the resident n and rebalances.
	remove(f *frame[S], n S)
}

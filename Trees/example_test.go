package Trees_test

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/bintree/Trees"
)

type timer struct {
	name     string
	deadline int
}

func byDeadline(a, b *timer) int {
	if c := a.deadline - b.deadline; c != 0 {
		return c
	}
	return strings.Compare(a.name, b.name)
}

func Example() {
	pool := Trees.NewPool[timer, uint32](8)
	tree := Trees.New(pool, byDeadline, pool.Free)

	for _, t := range []timer{{"flush", 30}, {"gc", 10}, {"tick", 20}} {
		tree.Insert(pool.Alloc(t))
	}
	gc := timer{"gc", 10}
	fmt.Println(tree.Contains(&gc))
	tree.Delete(&gc)

	tree.InOrder(func(h uint32, t *timer) bool {
		fmt.Println(t.name, t.deadline)
		return true
	}, nil)
	tree.Destroy()
	fmt.Println(pool.Live())
	// Output:
	// true
	// tick 20
	// flush 30
	// 0
}

func ExampleNewTreap() {
	pool := Trees.NewPool[int, uint16](0)
	tree := Trees.NewTreap(pool, func(a, b *int) int { return *a - *b }, pool.Free, 42)
	for _, v := range []int{3, 1, 2} {
		tree.Insert(pool.Alloc(v))
	}
	q := 0
	fmt.Println(*pool.Get(tree.Successor(&q, true)), tree.Size(), tree.Balancer())
	// Output: 1 3 treap
}

package rbtree

import (
	"fmt"
	"math/rand"

	tp "github.com/xlab/treeprint"
)

// ---------------------------------------------------------------------------

func printTree[T any](tree Tree[T]) string {
	header := fmt.Sprintf("\nTree(black-height=%d)\n", blackHeight(tree))
	p := tp.New()
	ppt(p, tree)
	return header + p.String() + "\n"
}

func ppt[T any](p tp.Tree, tree Tree[T]) {
	n, ok := tree.(*Node[T])
	if !ok {
		p.AddNode("·")
		return
	}
	label := fmt.Sprintf("%s:%v ⟨%d⟩", n.color, n.value, n.height)
	if n.isLeaf() {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	ppt(branch, n.left)
	ppt(branch, n.right)
}

func treeOf(values ...int) Tree[int] {
	t := Immutable[int]()
	for _, v := range values {
		t = t.Add(v)
	}
	return t
}

func collect[T any](t Tree[T]) []T {
	var r []T
	for v := range t.All() {
		r = append(r, v)
	}
	return r
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// randomTree builds a tree from n distinct values out of [0, 4n), in random order.
func randomTree(rnd *rand.Rand, n int) (Tree[int], []int) {
	perm := rnd.Perm(4 * n)[:n]
	return treeOf(perm...), perm
}

// expectPanic runs f and reports whether it panicked, together with the panic message.
func expectPanic(f func()) (msg string, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			msg, panicked = fmt.Sprintf("%v", r), true
		}
	}()
	f()
	return
}

package rbtree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/samber/lo"
)

func TestIteratorOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	tree := treeOf(lo.Shuffle(lo.Range(500))...)
	it := tree.Iterator()
	expected := 0
	for it.HasNext() {
		if v := it.Next(); v != expected {
			t.Fatalf("expected %d, is %d", expected, v)
		}
		expected++
	}
	if expected != 500 {
		t.Errorf("expected 500 elements, have %d", expected)
	}
	n := tree.(*Node[int])
	if cap(tree.Iterator().stack) < 2*int(n.BlackHeight()) {
		t.Errorf("expected stack to be pre-allocated for the height of the tree")
	}
}

func TestIteratorExhausted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	it := Of(1).Iterator()
	it.Next()
	msg, panicked := expectPanic(func() { it.Next() })
	if !panicked || !strings.Contains(msg, "exhausted") {
		t.Errorf("expected Next on exhausted iterator to panic, is %q", msg)
	}
	if _, panicked = expectPanic(func() { Immutable[int]().Iterator().Next() }); !panicked {
		t.Errorf("expected Next on iterator of empty tree to panic")
	}
}

func TestIteratorsAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	tree := treeOf(3, 1, 2)
	it1, it2 := tree.Iterator(), tree.Iterator()
	it1.Next()
	it1.Next()
	if v := it2.Next(); v != 1 {
		t.Errorf("expected second iterator to start at 1, is %d", v)
	}
	if v := it1.Next(); v != 3 {
		t.Errorf("expected first iterator to continue with 3, is %d", v)
	}
	// an iterator keeps walking the version it was created from
	it := tree.Iterator()
	_ = tree.Delete(2)
	r := []int{}
	for it.HasNext() {
		r = append(r, it.Next())
	}
	if !equalInts(r, []int{1, 2, 3}) {
		t.Errorf("expected 1 2 3, is %v", r)
	}
}

func TestAllBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.rbtree")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	tree := treeOf(lo.Range(100)...)
	sum := 0
	for v := range tree.All() {
		if v == 10 {
			break
		}
		sum += v
	}
	if sum != 45 {
		t.Errorf("expected sum of 0…9 = 45, is %d", sum)
	}
	if len(collect(Immutable[int]())) != 0 {
		t.Errorf("expected empty tree to yield nothing")
	}
}

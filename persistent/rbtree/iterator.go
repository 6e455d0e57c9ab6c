package rbtree

import "iter"

// Iterator walks the elements of a tree in ascending order. It keeps the
// path of pending ancestors on an explicit stack, thus skewed or large trees
// do not affect the call stack.
//
// An Iterator is finite and may not be restarted. It is not safe for
// concurrent use, but any number of iterators may walk the same tree
// concurrently.
//
//     it := tree.Iterator()
//     for it.HasNext() {
//         v := it.Next()
//         …
//     }
//
type Iterator[T any] struct {
	stack []*Node[T]
}

func newIterator[T any](t Tree[T]) *Iterator[T] {
	it := &Iterator[T]{}
	if n, ok := t.(*Node[T]); ok {
		it.stack = make([]*Node[T], 0, 2*n.height)
	}
	it.pushLeftSpine(t)
	return it
}

// HasNext is true if Next will return another element.
func (it *Iterator[T]) HasNext() bool {
	return len(it.stack) > 0
}

// Next returns the next element. Calling Next on an exhausted iterator panics.
func (it *Iterator[T]) Next() T {
	assertThat(it.HasNext(), "next() on exhausted iterator")
	top := len(it.stack) - 1
	node := it.stack[top]
	it.stack[top] = nil
	it.stack = it.stack[:top]
	it.pushLeftSpine(node.right)
	return node.value
}

func (it *Iterator[T]) pushLeftSpine(t Tree[T]) {
	for {
		n, ok := t.(*Node[T])
		if !ok {
			return
		}
		it.stack = append(it.stack, n)
		t = n.left
	}
}

// all adapts a fresh iterator to a range-over-func sequence.
func all[T any](t Tree[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := newIterator(t)
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

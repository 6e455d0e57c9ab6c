package rbtree

import "fmt"

/*
Deletion follows Kahrs. Recursive deletion returns the new subtree together
with a flag telling whether the black-height of the subtree decreased by one
(a “deficit”). The parent repairs a deficit on one side by re-balancing with
the sibling on the other side (unbalancedLeft/unbalancedRight), which either
absorbs the deficit or hands it further up.
*/

func del[T any](tree Tree[T], value T) (Tree[T], bool) {
	switch t := tree.(type) {
	case *Empty[T]:
		return t, false
	case *Node[T]:
		c := t.empty.order(value, t.value)
		switch {
		case c < 0:
			l, deficit := del(t.left, value)
			if deficit {
				n, d := unbalancedRight(t.color, t.height-1, l, t.value, t.right, t.empty)
				return n, d
			}
			if l == t.left { // value not found
				return t, false
			}
			return newNode(t.color, t.height, l, t.value, t.right, t.empty), false
		case c > 0:
			r, deficit := del(t.right, value)
			if deficit {
				n, d := unbalancedLeft(t.color, t.height-1, t.left, t.value, r, t.empty)
				return n, d
			}
			if r == t.right {
				return t, false
			}
			return newNode(t.color, t.height, t.left, t.value, r, t.empty), false
		}
		// found value at t
		if t.right.IsEmpty() {
			if t.color == Black {
				return blackify(t.left)
			}
			return t.left, false
		}
		r, deficit, m := deleteMin(mustNode(t.right, "delete"))
		if deficit {
			n, d := unbalancedLeft(t.color, t.height-1, t.left, m, r, t.empty)
			return n, d
		}
		return newNode(t.color, t.height, t.left, m, r, t.empty), false
	}
	panic(fmt.Sprintf("rbtree: delete from unknown tree variant %T", tree))
}

// deleteMin removes the leftmost node of a subtree and returns the remaining
// subtree, the deficit flag and the removed value.
func deleteMin[T any](node *Node[T]) (Tree[T], bool, T) {
	l, ok := node.left.(*Node[T])
	if !ok {
		switch {
		case node.color == Red:
			return node.right, false, node.value
		case node.right.IsEmpty():
			return node.empty, true, node.value
		}
		return mustNode(node.right, "deleteMin").withColor(Black), false, node.value
	}
	t, deficit, m := deleteMin(l)
	if deficit {
		n, d := unbalancedRight(node.color, node.height-1, t, node.value, node.right, node.empty)
		return n, d, m
	}
	return newNode(node.color, node.height, t, node.value, node.right, node.empty), false, m
}

// blackify turns a red root black, which compensates for a removed black
// node. Otherwise the subtree has a deficit.
func blackify[T any](t Tree[T]) (Tree[T], bool) {
	if n, ok := t.(*Node[T]); ok && n.color == Red {
		return n.withColor(Black), false
	}
	return t, true
}

// unbalancedLeft re-balances a node whose right subtree has a black-height one
// less than its left subtree. h is the stored height of the node minus one.
func unbalancedLeft[T any](color Color, h uint32, left Tree[T], value T, right Tree[T], e *Empty[T]) (*Node[T], bool) {
	if ln, ok := left.(*Node[T]); ok {
		if ln.color == Black {
			n := balanceLeft(Black, h, Tree[T](ln.withColor(Red)), value, right, e)
			return n, color == Black
		}
		if color == Black {
			if lrn, ok := ln.right.(*Node[T]); ok && lrn.color == Black {
				newRight := balanceLeft(Black, h, Tree[T](lrn.withColor(Red)), value, right, e)
				return newNode(Black, ln.height, ln.left, ln.value, Tree[T](newRight), e), false
			}
		}
	}
	panic(fmt.Sprintf("rbtree: unbalancedLeft(%s, %d, %v, %v, %v)", color, h, left, value, right))
}

// unbalancedRight re-balances a node whose left subtree has a black-height one
// less than its right subtree. h is the stored height of the node minus one.
func unbalancedRight[T any](color Color, h uint32, left Tree[T], value T, right Tree[T], e *Empty[T]) (*Node[T], bool) {
	if rn, ok := right.(*Node[T]); ok {
		if rn.color == Black {
			n := balanceRight(Black, h, left, value, Tree[T](rn.withColor(Red)), e)
			return n, color == Black
		}
		if color == Black {
			if rln, ok := rn.left.(*Node[T]); ok && rln.color == Black {
				newLeft := balanceRight(Black, h, left, value, Tree[T](rln.withColor(Red)), e)
				return newNode(Black, rn.height, Tree[T](newLeft), rn.value, rn.right, e), false
			}
		}
	}
	panic(fmt.Sprintf("rbtree: unbalancedRight(%s, %d, %v, %v, %v)", color, h, left, value, right))
}

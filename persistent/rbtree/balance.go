package rbtree

import "fmt"

/*
Re-balancing is done in the style of Okasaki: a candidate node is passed to
balanceLeft or balanceRight, which check for the two shapes of a red-red
violation on the respective side and rotate them into a red node with two
black children, one level up. If the candidate node is not black or there is
no violation, the primitives just construct the node. Insertion, deletion and
joining call them unconditionally.

        B(z)                B(x)                      R(y)
       /    \              /    \                   /      \
     R(y)    d    or      a     R(y)     ⇒       B(x)      B(z)
     /  \                       /  \             /  \      /  \
   R(x)  c                     b   R(z)          a    b    c    d
   /  \                            /  \
  a    b                          c    d

(plus the two zig-zag shapes, where the red grandchild is an inner child).
*/

func balanceLeft[T any](color Color, h uint32, left Tree[T], value T, right Tree[T], e *Empty[T]) *Node[T] {
	if color == Black {
		if ln, ok := left.(*Node[T]); ok && ln.color == Red {
			if lln, ok := ln.left.(*Node[T]); ok && lln.color == Red {
				newLeft := newNode(Black, h, lln.left, lln.value, lln.right, e)
				newRight := newNode(Black, h, ln.right, value, right, e)
				return newNode(Red, h+1, Tree[T](newLeft), ln.value, Tree[T](newRight), e)
			}
			if lrn, ok := ln.right.(*Node[T]); ok && lrn.color == Red {
				newLeft := newNode(Black, h, ln.left, ln.value, lrn.left, e)
				newRight := newNode(Black, h, lrn.right, value, right, e)
				return newNode(Red, h+1, Tree[T](newLeft), lrn.value, Tree[T](newRight), e)
			}
		}
	}
	return newNode(color, h, left, value, right, e)
}

func balanceRight[T any](color Color, h uint32, left Tree[T], value T, right Tree[T], e *Empty[T]) *Node[T] {
	if color == Black {
		if rn, ok := right.(*Node[T]); ok && rn.color == Red {
			if rrn, ok := rn.right.(*Node[T]); ok && rrn.color == Red {
				newLeft := newNode(Black, h, left, value, rn.left, e)
				newRight := newNode(Black, h, rrn.left, rrn.value, rrn.right, e)
				return newNode(Red, h+1, Tree[T](newLeft), rn.value, Tree[T](newRight), e)
			}
			if rln, ok := rn.left.(*Node[T]); ok && rln.color == Red {
				newLeft := newNode(Black, h, left, value, rln.left, e)
				newRight := newNode(Black, h, rln.right, rn.value, rn.right, e)
				return newNode(Red, h+1, Tree[T](newLeft), rln.value, Tree[T](newRight), e)
			}
		}
	}
	return newNode(color, h, left, value, right, e)
}

// --- Insertion -------------------------------------------------------------

// insert descends to the position of value and re-balances on the way back up.
// If value is already present, the original node is returned, and every
// ancestor short-circuits to itself as well. The result may have a red root.
func insert[T any](tree Tree[T], value T) *Node[T] {
	switch t := tree.(type) {
	case *Empty[T]:
		return newNode(Red, 1, tree, value, tree, t)
	case *Node[T]:
		c := t.empty.order(value, t.value)
		switch {
		case c < 0:
			newLeft := insert(t.left, value)
			if Tree[T](newLeft) == t.left {
				return t
			}
			return balanceLeft(t.color, t.height, newLeft, t.value, t.right, t.empty)
		case c > 0:
			newRight := insert(t.right, value)
			if Tree[T](newRight) == t.right {
				return t
			}
			return balanceRight(t.color, t.height, t.left, t.value, newRight, t.empty)
		}
		return t
	}
	panic(fmt.Sprintf("rbtree: insert into unknown tree variant %T", tree))
}

package rbtree

import (
	"fmt"
	"strings"
)

// String returns a Lisp-like representation of a tree, e.g.
//
//     (B:4 (R:2 B:1 B:3) B:6)
//
// A node with two empty subtrees renders as (B:1) on top level, without
// parentheses otherwise. Empty subtrees are omitted.
func (n *Node[T]) String() string {
	if n.isLeaf() {
		return "(" + n.color.String() + ":" + fmt.Sprintf("%v", n.value) + ")"
	}
	var sb strings.Builder
	writeLisp[T](&sb, n)
	return sb.String()
}

func writeLisp[T any](sb *strings.Builder, t Tree[T]) {
	n, ok := t.(*Node[T])
	if !ok {
		return
	}
	if n.isLeaf() {
		sb.WriteString(n.color.String())
		sb.WriteByte(':')
		fmt.Fprintf(sb, "%v", n.value)
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.color.String())
	sb.WriteByte(':')
	fmt.Fprintf(sb, "%v", n.value)
	if !n.left.IsEmpty() {
		sb.WriteByte(' ')
		writeLisp(sb, n.left)
	}
	if !n.right.IsEmpty() {
		sb.WriteByte(' ')
		writeLisp(sb, n.right)
	}
	sb.WriteByte(')')
}

package rbtree

import (
	"errors"
	"fmt"
)

// Errors reported by Validate.
var (
	ErrRedRoot        = errors.New("root is red")
	ErrRedViolation   = errors.New("red node has red child")
	ErrBlackViolation = errors.New("paths differ in number of black nodes")
	ErrHeightMismatch = errors.New("stored black-height does not match subtrees")
	ErrOrderViolation = errors.New("elements not in strictly ascending order")
)

// Validate checks the red-black invariants of a tree: the root is black, no red
// node has a red child, all paths to a leaf contain the same number of black
// nodes, the stored black-heights are consistent, and an in-order walk
// produces strictly ascending elements. It returns the first violation found,
// wrapping one of the Err… values.
//
// Validate is meant for tests and debugging. It visits every node.
func Validate[T any](t Tree[T]) error {
	if isRed(t) {
		return fmt.Errorf("%w: %v", ErrRedRoot, t)
	}
	if _, err := validateNode(t); err != nil {
		return err
	}
	order := t.Comparator()
	var prev T
	first := true
	for v := range t.All() {
		if !first && order(prev, v) >= 0 {
			return fmt.Errorf("%w: %v before %v", ErrOrderViolation, prev, v)
		}
		prev, first = v, false
	}
	return nil
}

// validateNode returns the black-height of t, counting t itself if black.
func validateNode[T any](t Tree[T]) (uint32, error) {
	n, ok := t.(*Node[T])
	if !ok {
		return 0, nil
	}
	if n.color == Red && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("%w: %v", ErrRedViolation, n)
	}
	lh, err := validateNode(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := validateNode(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: %d vs. %d at %v", ErrBlackViolation, lh, rh, n)
	}
	if n.height != lh+1 {
		return 0, fmt.Errorf("%w: stored %d, subtrees %d at %v", ErrHeightMismatch, n.height, lh, n)
	}
	if n.color == Black {
		return lh + 1, nil
	}
	return lh, nil
}

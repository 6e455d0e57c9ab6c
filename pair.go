/*
Package fpset provides immutable persistent ordered collections.

The workhorse is a purely functional red-black tree (package persistent/rbtree),
wrapped by an ordered set (persistent/treeset) and an ordered map
(persistent/treemap). This root package holds small data carriers shared
between them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fpset

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a 2-tuple of arbitrary types.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P is a shortcut to create a Pair, letting type inference do its job:
//
//     p := fpset.P(1, "one")    // Pair[int, string]
//
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("%v: %v", p.Left, p.Right)
}

// OnLeft lifts a comparison of A to a comparison of pairs, ignoring the right component.
func OnLeft[A, B any](cmp func(A, A) int) func(Pair[A, B], Pair[A, B]) int {
	return func(p, q Pair[A, B]) int {
		return cmp(p.Left, q.Left)
	}
}

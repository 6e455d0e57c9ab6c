/*
Package rbtree implements a purely functional, persistent red-black tree.

Every “modification” of a tree (insertion, deletion, union, intersection,
difference) returns a new incarnation of the tree in O(log n) time and space,
leaving the original fully intact and usable. Only the path from the root to
the point of modification is rebuilt, all other subtrees are shared between
the old and the new version.

A tree is either an Empty sentinel, which carries the ordering of the tree, or
a Node. Both variants implement the Tree interface; algorithms pattern-match on
the variants with type switches.

    t := rbtree.Immutable[int]()
    t = t.Add(4).Add(2).Add(6)
    u := t.Delete(2)             // t still contains 2
    for v := range u.All() {
        fmt.Println(v)           // 4, 6
    }

Nodes are never mutated after construction, which makes trees inherently
safe for concurrent readers without any locking.

The implementation follows

■ Chris Okasaki: “Red-Black Trees in a Functional Setting”,
Journal of Functional Programming, 9(4), pp 471-477, July 1999 (insertion),

■ Stefan Kahrs: “Red-black trees with types”,
Journal of Functional Programming, 11(4), pp 425-432, July 2001 (deletion),

■ Kazu Yamamoto's Haskell package llrbtree (join, split and merge for set operations).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.rbtree")
}

// assertThat panics if an internal invariant of a tree is broken. There is
// no local recovery from this, continuing would silently corrupt trees.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rbtree: "+msg, msgargs...)
		tracer().Errorf("%s", msg)
		panic(msg)
	}
}

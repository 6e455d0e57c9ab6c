/*
Package treeset implements a persistent sorted set, backed by a red-black tree.

A Set is a small value type. Adding or removing elements returns a new set,
sharing most of its structure with the original one:

    s1 := treeset.Of(3, 1, 2)
    s2 := s1.Add(4)
    fmt.Println(s1, s2)     // TreeSet(1, 2, 3) TreeSet(1, 2, 3, 4)

The zero value of Set behaves like an empty set without an order: it may be
queried, but adding to it panics. Create sets with Empty, EmptyWith, Of, OfWith
or FromSlice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treeset

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.treeset'.
func tracer() tracing.Trace {
	return tracing.Select("fp.treeset")
}

// assertThat panics with a 'treeset: ' prefixed message if that is false.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("treeset: "+msg, msgargs...)
		tracer().Errorf("%s", msg)
		panic(msg)
	}
}

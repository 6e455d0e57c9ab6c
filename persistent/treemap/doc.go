/*
Package treemap implements a persistent sorted map, backed by a red-black tree
of key/value pairs ordered by key.

    m := treemap.Empty[int, string]().Put(2, "b").Put(1, "a")
    fmt.Println(m)                        // TreeMap(1: a, 2: b)
    v := m.Get(3).WithDefault("none")     // "none"

The zero value of Map behaves like an empty map: it may be queried, but putting
into it panics, as it has no key order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treemap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.treemap'.
func tracer() tracing.Trace {
	return tracing.Select("fp.treemap")
}

// assertThat panics with a 'treemap: ' prefixed message if that is false.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("treemap: "+msg, msgargs...)
		tracer().Errorf("%s", msg)
		panic(msg)
	}
}

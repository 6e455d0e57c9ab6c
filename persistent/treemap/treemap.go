package treemap

import (
	"cmp"
	"iter"
	"strings"

	"github.com/npillmayer/fpset"
	"github.com/npillmayer/fpset/maybe"
	"github.com/npillmayer/fpset/persistent/rbtree"
)

// Map is a persistent map from keys to values, sorted by key.
type Map[K, V any] struct {
	tree  rbtree.Tree[fpset.Pair[K, V]]
	order rbtree.Comparator[K]
	size  int
}

// Empty creates an empty map ordered by the natural order of K.
func Empty[K cmp.Ordered, V any]() Map[K, V] {
	return EmptyWith[K, V](rbtree.Natural[K]())
}

// EmptyWith creates an empty map with keys ordered by order.
func EmptyWith[K, V any](order rbtree.Comparator[K]) Map[K, V] {
	assertThat(order != nil, "key order is nil")
	return Map[K, V]{
		tree:  rbtree.ImmutableWith(rbtree.Comparator[fpset.Pair[K, V]](fpset.OnLeft[K, V](order))),
		order: order,
	}
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	return m.size
}

func (m Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Put returns a map with key mapped to value. An existing mapping of key is
// replaced. The zero Map has no key order, thus putting into it panics.
func (m Map[K, V]) Put(key K, value V) Map[K, V] {
	assertThat(m.tree != nil, "cannot put %v into zero Map, create maps with Empty or EmptyWith", key)
	entry := fpset.P(key, value)
	t, size := m.tree, m.size
	if t.Contains(entry) {
		tracer().Debugf("replacing value for key %v", key)
		t = t.Delete(entry)
	} else {
		size++
	}
	return Map[K, V]{tree: t.Add(entry), order: m.order, size: size}
}

// PutAll returns a map with all entries of other put into m. Mappings of other
// win over mappings of m with the same key.
func (m Map[K, V]) PutAll(other Map[K, V]) Map[K, V] {
	if m.tree == nil {
		return other
	}
	for k, v := range other.All() {
		m = m.Put(k, v)
	}
	return m
}

// Get returns the value mapped to key, if any.
func (m Map[K, V]) Get(key K) maybe.Maybe[V] {
	e, ok := m.lookup(key)
	return maybe.Of(e.Right, ok)
}

func (m Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.lookup(key)
	return ok
}

// Remove returns a map without a mapping for key. If key is not mapped, m is
// returned.
func (m Map[K, V]) Remove(key K) Map[K, V] {
	if m.tree == nil {
		return m
	}
	var zero V
	t := m.tree.Delete(fpset.P(key, zero))
	if t == m.tree {
		return m
	}
	return Map[K, V]{tree: t, order: m.order, size: m.size - 1}
}

// Keys returns a sequence of the keys in ascending order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.Entries() {
			if !yield(e.Left) {
				return
			}
		}
	}
}

// Values returns a sequence of the values, in ascending order of their keys.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range m.Entries() {
			if !yield(e.Right) {
				return
			}
		}
	}
}

// All returns a sequence of key/value pairs in ascending order of keys.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.Entries() {
			if !yield(e.Left, e.Right) {
				return
			}
		}
	}
}

// Entries returns a sequence of the entries in ascending order of keys.
func (m Map[K, V]) Entries() iter.Seq[fpset.Pair[K, V]] {
	if m.tree == nil {
		return func(func(fpset.Pair[K, V]) bool) {}
	}
	return m.tree.All()
}

func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("TreeMap(")
	first := true
	for e := range m.Entries() {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
		first = false
	}
	sb.WriteByte(')')
	return sb.String()
}

// lookup walks the backing tree to find the entry for key.
func (m Map[K, V]) lookup(key K) (fpset.Pair[K, V], bool) {
	t := m.tree
	for {
		n, ok := t.(*rbtree.Node[fpset.Pair[K, V]])
		if !ok {
			return fpset.Pair[K, V]{}, false
		}
		c := m.order(key, n.Value().Left)
		switch {
		case c < 0:
			t = n.Left()
		case c > 0:
			t = n.Right()
		default:
			return n.Value(), true
		}
	}
}

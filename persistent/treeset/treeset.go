package treeset

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/fpset/maybe"
	"github.com/npillmayer/fpset/persistent/rbtree"
	"github.com/samber/lo"
)

// Set is a persistent set of elements, ordered by a comparator.
type Set[T any] struct {
	tree rbtree.Tree[T]
	size int // -1 = unknown
}

// Empty creates an empty set ordered by the natural order of T.
func Empty[T cmp.Ordered]() Set[T] {
	return Set[T]{tree: rbtree.Immutable[T]()}
}

// EmptyWith creates an empty set ordered by order. Options are handed to
// the backing tree, e.g. rbtree.WithOrderKey to name the order.
func EmptyWith[T any](order rbtree.Comparator[T], opts ...rbtree.Option[T]) Set[T] {
	return Set[T]{tree: rbtree.ImmutableWith(order, opts...)}
}

// Of creates a set of the given elements, using the natural order of T.
func Of[T cmp.Ordered](elements ...T) Set[T] {
	return Empty[T]().addAll(elements)
}

// OfWith creates a set of the given elements, ordered by order.
func OfWith[T any](order rbtree.Comparator[T], elements ...T) Set[T] {
	return EmptyWith(order).addAll(elements)
}

// FromSlice creates a set from a slice of elements, using the natural order
// of T. Duplicates are dropped.
func FromSlice[T cmp.Ordered](elements []T) Set[T] {
	return Empty[T]().addAll(elements)
}

func (s Set[T]) addAll(elements []T) Set[T] {
	return lo.Reduce(elements, func(acc Set[T], x T, _ int) Set[T] {
		return acc.Add(x)
	}, s)
}

// --- API -------------------------------------------------------------------

// Tree returns the red-black tree backing the set, or nil for the zero Set.
func (s Set[T]) Tree() rbtree.Tree[T] {
	return s.tree
}

// Len returns the number of elements. After set algebra the size is not known
// upfront; Len will then count the elements, which is O(n).
func (s Set[T]) Len() int {
	if s.size >= 0 {
		return s.size
	}
	n := 0
	for range s.All() {
		n++
	}
	return n
}

func (s Set[T]) IsEmpty() bool {
	return s.tree == nil || s.tree.IsEmpty()
}

func (s Set[T]) Contains(x T) bool {
	return s.tree != nil && s.tree.Contains(x)
}

// Add returns a set including x. If x is already an element, s is returned.
// The zero Set has no order, thus adding to it panics.
func (s Set[T]) Add(x T) Set[T] {
	assertThat(s.tree != nil, "cannot add %v to zero Set, create sets with Empty, EmptyWith, Of or OfWith", x)
	t := s.tree.Add(x)
	if t == s.tree {
		return s
	}
	return Set[T]{tree: t, size: inc(s.size, 1)}
}

// Remove returns a set without x. If x is not an element, s is returned.
func (s Set[T]) Remove(x T) Set[T] {
	if s.tree == nil {
		return s
	}
	t := s.tree.Delete(x)
	if t == s.tree {
		return s
	}
	return Set[T]{tree: t, size: inc(s.size, -1)}
}

// Union returns a set of the elements of s and other.
// Both sets have to share the same order.
func (s Set[T]) Union(other Set[T]) Set[T] {
	tracer().Debugf("union of %d and %d elements", s.size, other.size)
	switch {
	case other.IsEmpty():
		return s
	case s.IsEmpty():
		return other
	}
	return Set[T]{tree: s.tree.Union(other.tree), size: -1}
}

// Intersection returns a set of the elements present in both s and other.
// Both sets have to share the same order.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	tracer().Debugf("intersection of %d and %d elements", s.size, other.size)
	switch {
	case s.IsEmpty():
		return Set[T]{tree: s.tree}
	case other.IsEmpty():
		return Set[T]{tree: s.tree.Clear()}
	}
	return Set[T]{tree: s.tree.Intersection(other.tree), size: -1}
}

// Difference returns a set of the elements of s which are not in other.
// Both sets have to share the same order.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	tracer().Debugf("difference of %d and %d elements", s.size, other.size)
	if s.IsEmpty() || other.IsEmpty() {
		return s
	}
	return Set[T]{tree: s.tree.Difference(other.tree), size: -1}
}

func (s Set[T]) Min() maybe.Maybe[T] {
	if s.tree == nil {
		return maybe.Nothing[T]()
	}
	return s.tree.Min()
}

func (s Set[T]) Max() maybe.Maybe[T] {
	if s.tree == nil {
		return maybe.Nothing[T]()
	}
	return s.tree.Max()
}

// Filter returns a set of the elements for which pred is true.
func (s Set[T]) Filter(pred func(T) bool) Set[T] {
	if s.tree == nil {
		return s
	}
	r := Set[T]{tree: s.tree.Clear()}
	for x := range s.tree.All() {
		if pred(x) {
			r.tree = r.tree.Add(x)
			r.size++
		}
	}
	return r
}

// All returns a sequence of the elements in ascending order.
func (s Set[T]) All() iter.Seq[T] {
	if s.tree == nil {
		return func(func(T) bool) {}
	}
	return s.tree.All()
}

// Values returns the elements in ascending order.
func (s Set[T]) Values() []T {
	r := make([]T, 0, max(s.size, 0))
	for x := range s.All() {
		r = append(r, x)
	}
	return r
}

// Equal is true if s and other contain the same elements. In contrast to
// Tree.Equal, the shape of the backing trees does not matter.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return s.IsEmpty() && other.IsEmpty()
	}
	if s.tree == other.tree {
		return true
	}
	if s.size >= 0 && other.size >= 0 && s.size != other.size {
		return false
	}
	order := s.tree.Comparator()
	it1, it2 := s.tree.Iterator(), other.tree.Iterator()
	for it1.HasNext() && it2.HasNext() {
		if order(it1.Next(), it2.Next()) != 0 {
			return false
		}
	}
	return !it1.HasNext() && !it2.HasNext()
}

func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("TreeSet(")
	first := true
	for x := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
		first = false
	}
	sb.WriteByte(')')
	return sb.String()
}

func inc(size, delta int) int {
	if size < 0 {
		return size
	}
	return size + delta
}

package rbtree

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/fpset/maybe"
)

// Color is the color of a tree node.
type Color uint8

// A node is either red or black.
const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// Comparator defines a total order on values of type T. It returns a negative
// number if a < b, zero if a == b, and a positive number if a > b.
//
// A comparator which is not a consistent total order breaks the ordering of
// a tree silently; this is not checked.
type Comparator[T any] func(a, b T) int

// Natural returns the natural order of an ordered type.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns the reverse order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Tree is a persistent red-black tree. A Tree is either an *Empty or a *Node.
// All operations leave the receiver unchanged.
type Tree[T any] interface {
	// IsEmpty is true for the empty tree.
	IsEmpty() bool
	// Comparator returns the order the tree was created with.
	Comparator() Comparator[T]
	// Contains checks if value is an element of the tree.
	Contains(value T) bool
	// Clear returns the empty tree with the same order.
	Clear() *Empty[T]
	// Add returns a tree with value inserted. Adding a value already present
	// is a no-op.
	Add(value T) Tree[T]
	// Delete returns a tree without value. Deleting an absent value is a no-op.
	Delete(value T) Tree[T]
	// Union returns a tree with the elements of both trees.
	Union(other Tree[T]) Tree[T]
	// Intersection returns a tree with elements present in both trees.
	Intersection(other Tree[T]) Tree[T]
	// Difference returns a tree with elements of this tree which are not in other.
	Difference(other Tree[T]) Tree[T]
	// Min returns the smallest element.
	Min() maybe.Maybe[T]
	// Max returns the largest element.
	Max() maybe.Maybe[T]
	// Iterator returns a fresh in-order iterator.
	Iterator() *Iterator[T]
	// All returns a sequence of all elements in ascending order.
	All() iter.Seq[T]
	// Equal compares the shape and values of two trees, ignoring colors. Values
	// are compared with the order of the receiver.
	Equal(other Tree[T]) bool
	// Hash returns a hash code for the shape and values of a tree, ignoring colors.
	// Equal trees have equal hashes, see WithHasher.
	Hash() uint64
	// String returns a Lisp-like representation of the tree.
	String() string
	//
	sentinel() *Empty[T]
}

// --- Construction ----------------------------------------------------------

// Option is a type to help initializing trees at creation time.
type Option[T any] func(*Empty[T])

// WithHasher is an option to set the hash function for values, used by Tree.Hash.
// Equal compares values with the comparator of a tree, thus h has to agree with
// it: whenever order(a, b) == 0, h(a) must equal h(b).
//
// Trees in natural order hash the fmt-representation (%v) of values by default.
// For any other order the default hasher ignores values, and the hash of a tree
// depends on its shape only.
//
//     tree := rbtree.Immutable[int](rbtree.WithHasher(func(n int) uint64 { return uint64(n) }))
//
func WithHasher[T any](h func(T) uint64) Option[T] {
	return func(e *Empty[T]) {
		if h != nil {
			e.hasher = h
		}
	}
}

// WithOrderKey is an option to name the order of a tree. Union, intersection and
// difference of trees which do not derive from the same empty tree check that
// both orders carry the same key. key has to be comparable.
//
//     desc := rbtree.Reverse(rbtree.Natural[int]())
//     t1 := rbtree.ImmutableWith(desc, rbtree.WithOrderKey[int]("desc"))
//     t2 := rbtree.ImmutableWith(desc, rbtree.WithOrderKey[int]("desc"))
//
// Trees created with Immutable or Of share a predefined key for the natural order.
func WithOrderKey[T any](key any) Option[T] {
	assertThat(key != nil && reflect.TypeOf(key).Comparable(), "order key %v is not comparable", key)
	return func(e *Empty[T]) {
		e.key = key
	}
}

// naturalOrder is the order key of trees created with Immutable or Of.
type naturalOrder struct{}

func (naturalOrder) String() string { return "natural" }

// Immutable creates an empty tree ordered by the natural order of T.
func Immutable[T cmp.Ordered](opts ...Option[T]) Tree[T] {
	return newNaturalEmpty(opts)
}

// ImmutableWith creates an empty tree ordered by order. order may not be nil.
//
// The order of the tree remains anonymous, unless it is named with WithOrderKey.
// Combining trees with anonymous orders which do not derive from the same
// empty tree is undefined if the orders differ.
func ImmutableWith[T any](order Comparator[T], opts ...Option[T]) Tree[T] {
	return newEmpty(order, opts)
}

// Of creates a tree containing a single value, using the natural order of T.
func Of[T cmp.Ordered](value T, opts ...Option[T]) Tree[T] {
	e := newNaturalEmpty(opts)
	return newNode(Black, 1, Tree[T](e), value, Tree[T](e), e)
}

// OfWith creates a tree containing a single value, ordered by order.
func OfWith[T any](value T, order Comparator[T], opts ...Option[T]) Tree[T] {
	e := newEmpty(order, opts)
	return newNode(Black, 1, Tree[T](e), value, Tree[T](e), e)
}

func newEmpty[T any](order Comparator[T], opts []Option[T]) *Empty[T] {
	if order == nil {
		panic("rbtree: comparator is nil")
	}
	e := &Empty[T]{order: order, hasher: shapeHasher[T]}
	for _, option := range opts {
		option(e)
	}
	return e
}

func newNaturalEmpty[T cmp.Ordered](opts []Option[T]) *Empty[T] {
	e := &Empty[T]{order: Natural[T](), hasher: naturalHasher[T], key: naturalOrder{}}
	for _, option := range opts {
		option(e)
	}
	return e
}

// naturalHasher hashes the fmt-representation of a value. cmp.Compare treats
// -0.0 and 0.0 as equal, thus zero values are normalized first.
func naturalHasher[T cmp.Ordered](value T) uint64 {
	var zero T
	if value == zero {
		value = zero
	}
	return xxhash.Sum64String(fmt.Sprintf("%v", value))
}

func shapeHasher[T any](T) uint64 {
	return 0
}

// --- Empty -----------------------------------------------------------------

// Empty is the empty tree. It carries the order of a tree and is shared by all
// nodes derived from it. Empty trees compare equal regardless of their order.
type Empty[T any] struct {
	order  Comparator[T]
	hasher func(T) uint64
	key    any // names the order, nil = anonymous
}

func (e *Empty[T]) sentinel() *Empty[T] { return e }
func (e *Empty[T]) IsEmpty() bool { return true }
func (e *Empty[T]) Comparator() Comparator[T] { return e.order }
func (e *Empty[T]) Contains(T) bool { return false }
func (e *Empty[T]) Clear() *Empty[T] { return e }
func (e *Empty[T]) Min() maybe.Maybe[T] { return maybe.Nothing[T]() }
func (e *Empty[T]) Max() maybe.Maybe[T] { return maybe.Nothing[T]() }
func (e *Empty[T]) Hash() uint64 { return 1 }
func (e *Empty[T]) String() string { return "()" }
func (e *Empty[T]) Iterator() *Iterator[T] { return newIterator[T](e) }
func (e *Empty[T]) All() iter.Seq[T] { return all[T](e) }
func (e *Empty[T]) Add(value T) Tree[T] { return add[T](e, value) }
func (e *Empty[T]) Delete(value T) Tree[T] { return e }
func (e *Empty[T]) Union(t Tree[T]) Tree[T] { return Union[T](e, t) }
func (e *Empty[T]) Intersection(t Tree[T]) Tree[T] { return Intersection[T](e, t) }
func (e *Empty[T]) Difference(t Tree[T]) Tree[T] { return Difference[T](e, t) }

func (e *Empty[T]) Equal(other Tree[T]) bool {
	return other != nil && other.IsEmpty()
}

// --- Node ------------------------------------------------------------------

// Node is a non-empty tree. Nodes are immutable.
//
// The stored black-height of a node is one more than the number of black nodes
// on any path from one of its children down to a leaf, i.e. the black-height
// the node would have if it were black. Re-coloring a node therefore never
// changes its stored height.
type Node[T any] struct {
	color  Color
	height uint32
	left   Tree[T]
	value  T
	right  Tree[T]
	empty  *Empty[T]
	hash   atomic.Uint64 // memoized, 0 = not yet computed
}

func newNode[T any](color Color, height uint32, left Tree[T], value T, right Tree[T], empty *Empty[T]) *Node[T] {
	return &Node[T]{
		color:  color,
		height: height,
		left:   left,
		value:  value,
		right:  right,
		empty:  empty,
	}
}

// Color returns the color of the node.
func (n *Node[T]) Color() Color { return n.color }

// BlackHeight returns the stored black-height of the node.
func (n *Node[T]) BlackHeight() uint32 { return n.height }

// Left returns the left subtree.
func (n *Node[T]) Left() Tree[T] { return n.left }

// Right returns the right subtree.
func (n *Node[T]) Right() Tree[T] { return n.right }

// Value returns the value held by the node.
func (n *Node[T]) Value() T { return n.value }

func (n *Node[T]) sentinel() *Empty[T] { return n.empty }
func (n *Node[T]) IsEmpty() bool { return false }
func (n *Node[T]) Comparator() Comparator[T] { return n.empty.order }
func (n *Node[T]) Clear() *Empty[T] { return n.empty }
func (n *Node[T]) Iterator() *Iterator[T] { return newIterator[T](n) }
func (n *Node[T]) All() iter.Seq[T] { return all[T](n) }

func (n *Node[T]) Contains(value T) bool {
	var t Tree[T] = n
	for {
		node, ok := t.(*Node[T])
		if !ok {
			return false
		}
		c := n.empty.order(value, node.value)
		switch {
		case c < 0:
			t = node.left
		case c > 0:
			t = node.right
		default:
			return true
		}
	}
}

func (n *Node[T]) Add(value T) Tree[T] {
	return add[T](n, value)
}

func (n *Node[T]) Delete(value T) Tree[T] {
	tracer().Debugf("delete %v", value)
	t, _ := del[T](n, value)
	return paint(t, Black)
}

func (n *Node[T]) Union(t Tree[T]) Tree[T] { return Union[T](n, t) }
func (n *Node[T]) Intersection(t Tree[T]) Tree[T] { return Intersection[T](n, t) }
func (n *Node[T]) Difference(t Tree[T]) Tree[T] { return Difference[T](n, t) }

func (n *Node[T]) Min() maybe.Maybe[T] {
	return maybe.Just(minimum(n))
}

func (n *Node[T]) Max() maybe.Maybe[T] {
	node := n
	for {
		r, ok := node.right.(*Node[T])
		if !ok {
			return maybe.Just(node.value)
		}
		node = r
	}
}

func (n *Node[T]) Equal(other Tree[T]) bool {
	return equal(n, other, n.empty.order)
}

func (n *Node[T]) Hash() uint64 {
	if h := n.hash.Load(); h != 0 {
		return h
	}
	h := uint64(1)
	h = 31*h + n.empty.hasher(n.value)
	h = 31*h + n.left.Hash()
	h = 31*h + n.right.Hash()
	if h == 0 {
		h = 1
	}
	n.hash.Store(h) // racing stores write the same value
	return h
}

func (n *Node[T]) isLeaf() bool {
	return n.left.IsEmpty() && n.right.IsEmpty()
}

// withColor returns n if it already has color c, a re-colored copy otherwise.
func (n *Node[T]) withColor(c Color) *Node[T] {
	if n.color == c {
		return n
	}
	return newNode(c, n.height, n.left, n.value, n.right, n.empty)
}

// --- Helpers ---------------------------------------------------------------

func add[T any](t Tree[T], value T) Tree[T] {
	tracer().Debugf("add %v", value)
	return insert(t, value).withColor(Black)
}

func equal[T any](a, b Tree[T], order Comparator[T]) bool {
	if a == b {
		return true
	}
	na, okA := a.(*Node[T])
	nb, okB := b.(*Node[T])
	if !okA || !okB {
		return !okA && !okB && b != nil
	}
	return order(na.value, nb.value) == 0 &&
		equal(na.left, nb.left, order) &&
		equal(na.right, nb.right, order)
}

func minimum[T any](n *Node[T]) T {
	for {
		l, ok := n.left.(*Node[T])
		if !ok {
			return n.value
		}
		n = l
	}
}

// paint re-colors the root of a non-empty tree.
func paint[T any](t Tree[T], c Color) Tree[T] {
	if n, ok := t.(*Node[T]); ok {
		return n.withColor(c)
	}
	return t
}

func isRed[T any](t Tree[T]) bool {
	n, ok := t.(*Node[T])
	return ok && n.color == Red
}

// blackHeight is the real black-height of a tree, counting its root only if
// it is black.
func blackHeight[T any](t Tree[T]) uint32 {
	n, ok := t.(*Node[T])
	switch {
	case !ok:
		return 0
	case n.color == Red:
		return n.height - 1
	}
	return n.height
}

// mustNode asserts that t is a node. Callers rely on the black-height
// invariant to guarantee this.
func mustNode[T any](t Tree[T], where string) *Node[T] {
	n, ok := t.(*Node[T])
	assertThat(ok, "%s: expected a non-empty subtree, have %v", where, t)
	return n
}

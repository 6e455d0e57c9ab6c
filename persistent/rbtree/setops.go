package rbtree

// --- Set algebra -----------------------------------------------------------

// Union returns a tree containing all elements of t1 and t2.
// Both trees have to share the same order; a mismatch of named orders panics.
//
// Complexity is O(m log(n/m + 1)), with m ≤ n being the sizes of the trees.
func Union[T any](t1, t2 Tree[T]) Tree[T] {
	assertSameOrder(t1, t2, "union")
	tracer().Debugf("union")
	return union(t1, t2)
}

// Intersection returns a tree containing the elements present in both t1 and t2.
// Both trees have to share the same order; a mismatch of named orders panics.
func Intersection[T any](t1, t2 Tree[T]) Tree[T] {
	assertSameOrder(t1, t2, "intersection")
	tracer().Debugf("intersection")
	return intersection(t1, t2)
}

// Difference returns a tree containing the elements of t1 which are not in t2.
// Both trees have to share the same order; a mismatch of named orders panics.
func Difference[T any](t1, t2 Tree[T]) Tree[T] {
	assertSameOrder(t1, t2, "difference")
	tracer().Debugf("difference")
	return difference(t1, t2)
}

func union[T any](t1, t2 Tree[T]) Tree[T] {
	n2, ok := t2.(*Node[T])
	if !ok {
		return t1
	}
	if t1.IsEmpty() {
		return n2.withColor(Black)
	}
	l, r, _ := split(t1, n2.value)
	return join(union(l, n2.left), n2.value, union(r, n2.right))
}

func intersection[T any](t1, t2 Tree[T]) Tree[T] {
	if t1.IsEmpty() {
		return t1
	}
	n2, ok := t2.(*Node[T])
	if !ok {
		return t2
	}
	l, r, found := split(t1, n2.value)
	il, ir := intersection(l, n2.left), intersection(r, n2.right)
	if found {
		return join(il, n2.value, ir)
	}
	return merge(il, ir)
}

func difference[T any](t1, t2 Tree[T]) Tree[T] {
	n2, ok := t2.(*Node[T])
	if t1.IsEmpty() || !ok {
		return t1
	}
	l, r, _ := split(t1, n2.value)
	return merge(difference(l, n2.left), difference(r, n2.right))
}

// assertSameOrder checks that two trees use the same order. Trees derived
// from the same empty tree trivially do. Otherwise both orders have to carry the
// same key (see WithOrderKey). An anonymous order cannot be compared to any
// other order; combining it with a tree of a different order is undefined.
func assertSameOrder[T any](t1, t2 Tree[T], op string) {
	assertThat(t1 != nil && t2 != nil, "%s: tree is nil", op)
	e1, e2 := t1.sentinel(), t2.sentinel()
	if e1 == e2 || e1.key == nil || e2.key == nil {
		return
	}
	assertThat(e1.key == e2.key, "%s: trees have different orders (%v vs. %v)", op, e1.key, e2.key)
}

// --- Split, join and merge -------------------------------------------------

// split partitions a tree into the elements less than value and the elements
// greater than value. found tells if value itself has been present.
// Both partitions have black roots.
func split[T any](tree Tree[T], value T) (less, greater Tree[T], found bool) {
	t, ok := tree.(*Node[T])
	if !ok {
		return tree, tree, false
	}
	c := t.empty.order(value, t.value)
	switch {
	case c < 0:
		l, r, found := split(t.left, value)
		return l, join(r, t.value, paint(t.right, Black)), found
	case c > 0:
		l, r, found := split(t.right, value)
		return join(paint(t.left, Black), t.value, l), r, found
	}
	return paint(t.left, Black), paint(t.right, Black), true
}

// join builds a tree from t1, value and t2, where value has to be greater than
// all elements of t1 and less than all elements of t2. The shallower tree is
// hung into the taller one at a node of equal black-height. Complexity is
// proportional to the difference of the heights.
func join[T any](t1 Tree[T], value T, t2 Tree[T]) Tree[T] {
	n1, ok1 := t1.(*Node[T])
	n2, ok2 := t2.(*Node[T])
	switch {
	case !ok1:
		return insert(t2, value).withColor(Black)
	case !ok2:
		return insert(t1, value).withColor(Black)
	}
	n1, n2 = n1.withColor(Black), n2.withColor(Black)
	switch {
	case n1.height < n2.height:
		return joinLT(n1, value, n2, n1.height).withColor(Black)
	case n1.height > n2.height:
		return joinGT(n1, value, n2, n2.height).withColor(Black)
	}
	return newNode(Black, n1.height+1, Tree[T](n1), value, Tree[T](n2), n1.empty)
}

// joinLT walks down the left spine of the taller n2 until it finds a (black)
// node of height h1.
func joinLT[T any](n1 *Node[T], value T, n2 *Node[T], h1 uint32) *Node[T] {
	if n2.height == h1 {
		return newNode(Red, h1+1, Tree[T](n1), value, Tree[T](n2), n1.empty)
	}
	l := joinLT(n1, value, mustNode(n2.left, "joinLT"), h1)
	return balanceLeft(n2.color, n2.height, Tree[T](l), n2.value, n2.right, n2.empty)
}

// joinGT walks down the right spine of the taller n1 until it finds a (black)
// node of height h2.
func joinGT[T any](n1 *Node[T], value T, n2 *Node[T], h2 uint32) *Node[T] {
	if n1.height == h2 {
		return newNode(Red, h2+1, Tree[T](n1), value, Tree[T](n2), n1.empty)
	}
	r := joinGT(mustNode(n1.right, "joinGT"), value, n2, h2)
	return balanceRight(n1.color, n1.height, n1.left, n1.value, Tree[T](r), n1.empty)
}

// merge concatenates t1 and t2, where all elements of t1 have to be less than
// all elements of t2. It is a join without a separating value: the minimum of
// the right operand takes this role.
func merge[T any](t1, t2 Tree[T]) Tree[T] {
	n1, ok1 := t1.(*Node[T])
	n2, ok2 := t2.(*Node[T])
	switch {
	case !ok1:
		return t2
	case !ok2:
		return t1
	}
	n1, n2 = n1.withColor(Black), n2.withColor(Black)
	switch {
	case n1.height < n2.height:
		return mergeLT(n1, n2, n1.height).withColor(Black)
	case n1.height > n2.height:
		return mergeGT(n1, n2, n2.height).withColor(Black)
	}
	return mergeEQ(n1, n2).withColor(Black)
}

func mergeLT[T any](n1, n2 *Node[T], h1 uint32) *Node[T] {
	if n2.height == h1 {
		return mergeEQ(n1, n2)
	}
	l := mergeLT(n1, mustNode(n2.left, "mergeLT"), h1)
	return balanceLeft(n2.color, n2.height, Tree[T](l), n2.value, n2.right, n2.empty)
}

func mergeGT[T any](n1, n2 *Node[T], h2 uint32) *Node[T] {
	if n1.height == h2 {
		return mergeEQ(n1, n2)
	}
	r := mergeGT(mustNode(n1.right, "mergeGT"), n2, h2)
	return balanceRight(n1.color, n1.height, n1.left, n1.value, Tree[T](r), n1.empty)
}

// mergeEQ merges two black nodes of equal height h. The minimum m of n2 is
// removed from n2 and becomes the connecting value. The remainder of n2 (with
// its root turned black) has a black-height of either h or h-1. The result has
// a black-height of h and may have a red root, but never a red-red violation.
func mergeEQ[T any](n1, n2 *Node[T]) *Node[T] {
	h, e := n1.height, n1.empty
	rest, _, m := deleteMin(n2)
	rest = paint(rest, Black)
	hrest := blackHeight(rest)
	assertThat(hrest == h || hrest+1 == h, "mergeEQ: remainder of height %d cannot be merged at height %d",
		hrest, h)
	switch {
	case hrest == h:
		return newNode(Red, h+1, Tree[T](n1), m, rest, e)
	case isRed(n1.left):
		r := newNode(Black, h, n1.right, m, rest, e)
		return newNode(Red, h+1, paint(n1.left, Black), n1.value, Tree[T](r), e)
	case isRed(n1.right):
		rn := n1.right.(*Node[T])
		l := newNode(Red, h, n1.left, n1.value, rn.left, e)
		r := newNode(Red, h, rn.right, m, rest, e)
		return newNode(Black, h, Tree[T](l), rn.value, Tree[T](r), e)
	}
	return newNode(Black, h, Tree[T](n1.withColor(Red)), m, rest, e)
}

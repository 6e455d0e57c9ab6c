package treeset

import (
	"slices"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/npillmayer/fpset/persistent/rbtree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.treeset")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	s := Of(3, 1, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "TreeSet(1, 2, 3)", s.String())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(4))
	assert.Equal(t, "TreeSet()", Empty[int]().String())
	assert.True(t, Empty[int]().IsEmpty())
	assert.Equal(t, 1, s.Min().WithDefault(0))
	assert.Equal(t, 3, s.Max().WithDefault(0))
	//
	s2 := s.Add(4)
	assert.Equal(t, 4, s2.Len())
	assert.Equal(t, 3, s.Len(), "original set has to be unchanged")
	assert.Equal(t, s.Values(), s.Add(2).Values(), "adding an element twice is a no-op")
	assert.Equal(t, 3, s.Add(2).Len())
	s3 := s2.Remove(1)
	assert.Equal(t, []int{2, 3, 4}, s3.Values())
	assert.Equal(t, s3.Values(), s3.Remove(1).Values(), "removing an absent element is a no-op")
	assert.NoError(t, rbtree.Validate(s3.Tree()))
}

func TestSetAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.treeset")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	a, b := Of(1, 3, 5), Of(2, 3, 4)
	u, i, d := a.Union(b), a.Intersection(b), a.Difference(b)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, u.Values())
	assert.Equal(t, 5, u.Len())
	assert.Equal(t, []int{3}, i.Values())
	assert.Equal(t, 1, i.Len())
	assert.Equal(t, []int{1, 5}, d.Values())
	assert.Equal(t, 3, d.Add(7).Len())
	//
	e := Empty[int]()
	assert.True(t, a.Intersection(e).IsEmpty())
	assert.Equal(t, 0, a.Intersection(e).Len())
	assert.True(t, a.Union(e).Equal(a))
	assert.True(t, e.Union(a).Equal(a))
	assert.True(t, a.Difference(e).Equal(a))
}

func TestSetEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.treeset")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	// same elements, differently shaped trees
	a := FromSlice(lo.Range(50))
	b := FromSlice(lo.Reverse(lo.Range(50)))
	assert.True(t, a.Equal(b))
	assert.True(t, a.Union(b).Equal(b))
	assert.False(t, a.Equal(b.Remove(25)))
	assert.False(t, a.Remove(49).Equal(b.Remove(25)))
	assert.False(t, a.Union(Of(99)).Equal(a))
}

func TestSetFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.treeset")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	s := FromSlice(lo.Range(20))
	even := s.Filter(func(x int) bool { return x%2 == 0 })
	assert.Equal(t, 10, even.Len())
	assert.Equal(t, lo.Filter(lo.Range(20), func(x int, _ int) bool { return x%2 == 0 }), even.Values())
	assert.NoError(t, rbtree.Validate(even.Tree()))
	assert.True(t, s.Filter(func(int) bool { return false }).IsEmpty())
}

func TestSetOfWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.treeset")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	faker := gofakeit.New(42)
	words := make([]string, 300)
	for i := range words {
		words[i] = faker.Word()
	}
	s := FromSlice(words)
	expected := lo.Uniq(words)
	slices.Sort(expected)
	require.Equal(t, len(expected), s.Len())
	assert.Equal(t, expected, s.Values())
	require.NoError(t, rbtree.Validate(s.Tree()))
	//
	half := FromSlice(words[:150])
	rest := s.Difference(half)
	assert.True(t, rest.Union(half).Equal(s))
	assert.True(t, rest.Intersection(half).IsEmpty())
	for _, w := range words[:150] {
		assert.False(t, rest.Contains(w))
	}
}

func TestSetCaseInsensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.treeset")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	fold := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	s := OfWith(fold, "Go", "go", "GO", "rust")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("gO"))
	assert.Equal(t, "TreeSet(Go, rust)", s.String())
	// sets with differently named orders may not be combined
	named := EmptyWith(fold, rbtree.WithOrderKey[string]("fold")).Add("Go")
	assert.Panics(t, func() { named.Union(Of("x")) })
	assert.Panics(t, func() { named.Intersection(Of("x")) })
	assert.Equal(t, "TreeSet(go, rust)", named.Add("RUST").Union(EmptyWith(fold,
		rbtree.WithOrderKey[string]("fold")).Add("go").Add("rust")).String())
}

func TestSetMixedConstructors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.treeset")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	natural := rbtree.Natural[int]()
	sets := []Set[int]{
		Of(1, 2, 3),
		FromSlice([]int{2, 3, 4}),
		Empty[int]().Add(3).Add(5),
		EmptyWith(natural).Add(3).Add(6),
		OfWith(natural, 0, 3),
	}
	for i, a := range sets {
		for j, b := range sets {
			var u, x, d Set[int]
			require.NotPanics(t, func() {
				u, x, d = a.Union(b), a.Intersection(b), a.Difference(b)
			}, "sets #%d and #%d", i, j)
			assert.Equal(t, sortedCopy(lo.Uniq(append(a.Values(), b.Values()...))), u.Values(), "union #%d, #%d", i, j)
			assert.Equal(t, sortedCopy(lo.Intersect(a.Values(), b.Values())), x.Values(), "intersection #%d, #%d", i, j)
			assert.Equal(t, sortedCopy(lo.Without(a.Values(), b.Values()...)), d.Values(), "difference #%d, #%d", i, j)
			for _, r := range []Set[int]{u, x, d} {
				require.NoError(t, rbtree.Validate(r.Tree()))
			}
		}
	}
	assert.Equal(t, "TreeSet(0, 1, 2, 3, 4, 5, 6)", lo.Reduce(sets, func(acc Set[int], s Set[int], _ int) Set[int] {
		return acc.Union(s)
	}, Set[int]{}).String())
}

func TestZeroSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.treeset")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	var z Set[int]
	assert.True(t, z.IsEmpty())
	assert.Equal(t, 0, z.Len())
	assert.False(t, z.Contains(1))
	assert.True(t, z.Min().IsNothing())
	assert.Equal(t, "TreeSet()", z.String())
	assert.Empty(t, z.Values())
	assert.True(t, z.Remove(1).IsEmpty())
	assert.True(t, z.Equal(Empty[int]()))
	assert.True(t, z.Filter(func(int) bool { return true }).IsEmpty())
	assert.Equal(t, []int{1, 2}, z.Union(Of(1, 2)).Values())
	assert.True(t, z.Intersection(Of(1, 2)).IsEmpty())
	assert.True(t, Of(1, 2).Intersection(z).IsEmpty())
	assert.Equal(t, []int{1, 2}, Of(1, 2).Difference(z).Values())
	assert.PanicsWithValue(t, "treeset: cannot add 1 to zero Set, create sets with Empty, EmptyWith, Of or OfWith",
		func() { z.Add(1) })
}

func sortedCopy(s []int) []int {
	r := slices.Clone(s)
	slices.Sort(r)
	return r
}

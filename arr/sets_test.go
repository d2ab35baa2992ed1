package arr_test

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underscore/arr"
)

func TestWithoutDifference(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, arr.Without([]int{1, 2, 1, 0, 3, 1, 4}, 0, 1))
	assert.Equal(t, []int{1, 3, 4}, arr.Difference([]int{1, 2, 3, 4, 5}, []int{5, 2, 10}))
	assert.Equal(t, []int{1, 1}, arr.Difference([]int{1, 1, 2}, []int{2}), "duplicates are kept")
}

func TestUnionIntersection(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 101, 10},
		arr.Union([]int{1, 2, 3}, []int{101, 2, 1, 10}, []int{2, 1}))
	assert.Equal(t, []int{1, 2},
		arr.Intersection([]int{1, 2, 3}, []int{101, 2, 1, 10}, []int{2, 1}))
	assert.Equal(t, []int{1}, arr.Intersection([]int{1, 1}, []int{1}))
	assert.Equal(t, []int{}, arr.Intersection[[]int]())
}

func TestSetOpsOnUnhashableValues(t *testing.T) {
	a := [][]int{{1}, {2}, {1}}
	assert.Equal(t, [][]int{{1}, {2}}, arr.Uniq(a))
	assert.Equal(t, [][]int{{2}}, arr.Without(a, []int{1}))

	ms := []map[string]int{{"a": 1}, {"a": 1}, {"a": 2}}
	assert.Len(t, arr.Uniq(ms), 2)
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 3}, arr.Uniq([]int{1, 2, 1, 4, 1, 3}))
	got := arr.UniqBy([]string{"a", "B", "A", "b", "c"}, strings.ToLower)
	assert.Equal(t, []string{"a", "B", "c"}, got)
}

func TestUniqSortedMatchesUniq(t *testing.T) {
	inputs := [][]int{
		{},
		{1},
		{1, 1, 2, 3, 3, 3, 4},
		{-5, -5, 0, 0, 7},
	}
	for _, in := range inputs {
		assert.Equal(t, arr.Uniq(in), arr.UniqSorted(in), "input %v", in)
	}

	words := []string{"a", "A", "b", "B", "c"}
	assert.Equal(t, []string{"a", "b", "c"}, arr.UniqSortedBy(words, strings.ToLower))
}

// ─── Pairs ────────────────────────────────────────────────────────────────────

func TestZip(t *testing.T) {
	got := arr.Zip([]any{"moe", "larry", "curly"}, []any{30, 40, 50}, []any{true, false, false})
	assert.Equal(t, [][]any{{"moe", 30, true}, {"larry", 40, false}, {"curly", 50, false}}, got)

	assert.Equal(t, [][]int{{1, 3}}, arr.Zip([]int{1, 2}, []int{3}))
	assert.Equal(t, [][]int{}, arr.Zip[[]int]())
}

func TestZipPairsObject(t *testing.T) {
	pairs := arr.ZipPairs([]string{"moe", "larry"}, []int{30, 40, 50})
	assert.Equal(t, []arr.Pair[string, int]{
		{First: "moe", Second: 30},
		{First: "larry", Second: 40},
	}, pairs)
	assert.Equal(t, "(moe, 30)", pairs[0].String())

	assert.Equal(t, map[string]int{"moe": 30, "larry": 40}, arr.ObjectFromPairs(pairs))
	assert.Equal(t, map[string]int{"moe": 30, "larry": 40},
		arr.Object([]string{"moe", "larry", "curly"}, []int{30, 40}))
}

// ─── Iterables ────────────────────────────────────────────────────────────────

func TestSeqVariants(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	evens := arr.FilterSeq(maps.Values(m), isEven)
	assert.Equal(t, []int{2}, evens)
	assert.ElementsMatch(t, []int{1, 3}, arr.RejectSeq(maps.Values(m), isEven))
	assert.ElementsMatch(t, []int{10, 20, 30}, arr.MapSeq(maps.Values(m), func(n int) int { return n * 10 }))

	v, ok := arr.FindSeq(slices.Values([]int{1, 4, 6}), isEven)
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	assert.True(t, arr.SomeSeq(maps.Values(m), isEven))
	assert.False(t, arr.EverySeq(maps.Values(m), isEven))
	assert.True(t, arr.EverySeq(slices.Values([]int{1, 2}), nil))

	var sum int
	arr.EachSeq(maps.Values(m), func(n int) { sum += n })
	assert.Equal(t, 6, sum)

	assert.Equal(t, []int{}, arr.ToArray(slices.Values([]int(nil))))
	assert.Equal(t, []int{0, 1, 2}, arr.ToArray(slices.Values([]int{0, 1, 2})))
}

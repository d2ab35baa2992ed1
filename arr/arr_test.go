package arr_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/dispatch"
)

type stooge struct {
	Name string
	Age  int
}

var stooges = []stooge{{"moe", 40}, {"larry", 50}, {"curly", 60}}

func isEven(n int) bool { return n%2 == 0 }

// ─── Traversal ────────────────────────────────────────────────────────────────

func TestEach(t *testing.T) {
	var got []string
	out := arr.Each([]string{"a", "b"}, func(s string, i int, all []string) {
		got = append(got, strings.Repeat(s, i+1)+"/"+all[len(all)-1])
	})
	assert.Equal(t, []string{"a/b", "bb/b"}, got)
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestMap(t *testing.T) {
	src := []int{1, 2, 3}
	got := arr.Map(src, func(n, _ int, _ []int) int { return n * 3 })
	assert.Equal(t, []int{3, 6, 9}, got)
	assert.Equal(t, []int{1, 2, 3}, src, "input must not be mutated")
}

func TestReduce(t *testing.T) {
	sum := arr.Reduce([]int{1, 2, 3}, func(memo, n, _ int, _ []int) int { return memo + n }, 0)
	assert.Equal(t, 6, sum)

	joined := arr.Reduce([]int{1, 2}, func(memo string, n, i int, _ []int) string {
		return memo + strings.Repeat("x", n+i)
	}, ">")
	assert.Equal(t, ">xxxx", joined)
}

func TestReduceFirst(t *testing.T) {
	sum, err := arr.ReduceFirst([]int{1, 2, 3}, func(memo, n, _ int, _ []int) int { return memo + n })
	require.NoError(t, err)
	assert.Equal(t, 6, sum)

	_, err = arr.ReduceFirst([]int{}, func(memo, n, _ int, _ []int) int { return memo + n })
	assert.ErrorIs(t, err, dispatch.ErrEmptyReduction)
}

func TestFindFilterReject(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5, 6}

	v, ok := arr.Find(nums, isEven)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = arr.Find(nums, func(n int) bool { return n > 10 })
	assert.False(t, ok)

	assert.Equal(t, []int{2, 4, 6}, arr.Filter(nums, isEven))
	assert.Equal(t, []int{1, 3, 5}, arr.Reject(nums, isEven))
	assert.Equal(t, []int{}, arr.Filter([]int(nil), isEven))
}

func TestEverySome(t *testing.T) {
	assert.True(t, arr.Every([]int{2, 4}, isEven))
	assert.False(t, arr.Every([]int{2, 3}, isEven))
	assert.True(t, arr.Every([]int{}, isEven))

	assert.True(t, arr.Some([]int{1, 2}, isEven))
	assert.False(t, arr.Some([]int{}, isEven))

	assert.False(t, arr.Every([]any{1, 0, "x"}, nil))
	assert.True(t, arr.Some([]any{0, "", nil, "x"}, nil))
}

func TestEveryStopsAtFirstFailure(t *testing.T) {
	calls := 0
	arr.Every([]int{1, 2, 3}, func(int) bool { calls++; return false })
	assert.Equal(t, 1, calls)
}

func TestContains(t *testing.T) {
	assert.True(t, arr.Contains([]int{1, 2, 3}, 3))
	assert.False(t, arr.Contains([]int{1, 2, 3}, 4))
	assert.True(t, arr.Contains([][]int{{1}, {2, 3}}, []int{2, 3}))
}

// ─── Matching ─────────────────────────────────────────────────────────────────

func TestWhere(t *testing.T) {
	plays := []map[string]any{
		{"title": "Cymbeline", "author": "Shakespeare", "year": 1611},
		{"title": "The Tempest", "author": "Shakespeare", "year": 1611},
		{"title": "Hamlet", "author": "Shakespeare", "year": 1603},
	}
	got := arr.Where(plays, map[string]any{"author": "Shakespeare", "year": 1611})
	require.Len(t, got, 2)
	assert.Equal(t, "Cymbeline", got[0]["title"])
	assert.Equal(t, "The Tempest", got[1]["title"])

	first, ok := arr.FindWhere(plays, map[string]any{"year": 1603})
	assert.True(t, ok)
	assert.Equal(t, "Hamlet", first["title"])

	_, ok = arr.FindWhere(plays, map[string]any{"year": 2000})
	assert.False(t, ok)
}

// ─── Selection & ranking ──────────────────────────────────────────────────────

func TestPluck(t *testing.T) {
	people := []map[string]any{{"name": "moe", "age": 40}, {"name": "larry", "age": 50}}
	names, err := arr.Pluck(people, "name")
	require.NoError(t, err)
	assert.Equal(t, []any{"moe", "larry"}, names)

	_, err = arr.Pluck(people, "missing")
	assert.ErrorIs(t, err, dispatch.ErrKeyLookup)
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, 1000.0, arr.Max([]int{10, 5, 100, 2, 1000}))
	assert.Equal(t, 2.0, arr.Min([]int{10, 5, 100, 2, 1000}))
	assert.True(t, math.IsInf(arr.Max([]int{}), 1))
	assert.True(t, math.IsInf(arr.Min([]float64{}), -1))
}

func TestMaxByMinBy(t *testing.T) {
	age := func(s stooge) int { return s.Age }

	oldest, ok := arr.MaxBy(stooges, age)
	assert.True(t, ok)
	assert.Equal(t, "curly", oldest.Name)

	youngest, _ := arr.MinBy(stooges, age)
	assert.Equal(t, "moe", youngest.Name)

	tied := []stooge{{"a", 1}, {"b", 1}}
	first, _ := arr.MaxBy(tied, age)
	assert.Equal(t, "a", first.Name, "ties keep the first element")

	_, ok = arr.MinBy([]stooge{}, age)
	assert.False(t, ok)
}

func TestSortByIsStable(t *testing.T) {
	words := []string{"bb", "a", "cc", "d", "aa"}
	got := arr.SortBy(words, func(s string) int { return len(s) })
	assert.Equal(t, []string{"a", "d", "bb", "cc", "aa"}, got)
	assert.Equal(t, []string{"bb", "a", "cc", "d", "aa"}, words)
}

func TestSortByIdempotent(t *testing.T) {
	key := func(f float64) float64 { return math.Sin(f) }
	once := arr.SortBy([]float64{1, 2, 3, 4, 5, 6}, key)
	assert.Equal(t, once, arr.SortBy(once, key))
	assert.Equal(t, []float64{5, 4, 6, 3, 1, 2}, once)
}

func TestGroupIndexCount(t *testing.T) {
	floor := func(f float64) float64 { return math.Floor(f) }
	groups := arr.GroupBy([]float64{1.3, 2.1, 2.4}, floor)
	assert.Equal(t, map[float64][]float64{1: {1.3}, 2: {2.1, 2.4}}, groups)

	length := func(s string) int { return len(s) }
	assert.Equal(t, map[int][]string{3: {"one", "two"}, 5: {"three"}},
		arr.GroupBy([]string{"one", "two", "three"}, length))

	byName := arr.IndexBy([]stooge{{"moe", 40}, {"moe", 99}}, func(s stooge) string { return s.Name })
	assert.Equal(t, 40, byName["moe"].Age, "first element wins")

	parity := arr.CountBy([]int{1, 2, 3, 4, 5}, func(n int) string {
		if isEven(n) {
			return "even"
		}
		return "odd"
	})
	assert.Equal(t, map[string]int{"odd": 3, "even": 2}, parity)
}

func TestPartition(t *testing.T) {
	pass, fail := arr.Partition([]int{0, 1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, pass)
	assert.Equal(t, []int{0, 2, 4}, fail)

	tp, tf := arr.Partition(dispatch.Tuple[int]{1, 2}, isEven)
	assert.IsType(t, dispatch.Tuple[int]{}, tp)
	assert.Equal(t, dispatch.Tuple[int]{2}, tp)
	assert.Equal(t, dispatch.Tuple[int]{1}, tf)
}

// ─── Random ───────────────────────────────────────────────────────────────────

func TestShuffleIsPermutation(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := arr.Shuffle(src)
	assert.ElementsMatch(t, src, got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, src)
}

func TestSample(t *testing.T) {
	v, err := arr.Sample([]int{7, 8, 9})
	require.NoError(t, err)
	assert.Contains(t, []int{7, 8, 9}, v)

	_, err = arr.Sample([]int{})
	assert.ErrorIs(t, err, dispatch.ErrInvalidArgument)

	some, err := arr.SampleN([]int{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Len(t, some, 3)
	assert.Len(t, arr.Uniq(some), 3, "positions are distinct")
	assert.Subset(t, []int{1, 2, 3, 4, 5}, some)

	_, err = arr.SampleN([]int{1}, 2)
	assert.ErrorIs(t, err, dispatch.ErrInvalidArgument)
	_, err = arr.SampleN([]int{1}, -1)
	assert.ErrorIs(t, err, dispatch.ErrInvalidArgument)
}

package underscore_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/dispatch"
	u "github.com/hasbyte1/go-underscore/underscore"
)

// ─── Head & tail ──────────────────────────────────────────────────────────────

func TestHeadAndTail(t *testing.T) {
	nums := []int{5, 4, 3, 2, 1}
	cases := []struct {
		name string
		call func() (any, error)
		want any
	}{
		{"first", func() (any, error) { return u.First(nums) }, 5},
		{"first n", func() (any, error) { return u.First(nums, 2) }, []int{5, 4}},
		{"first empty", func() (any, error) { return u.First([]int{}) }, nil},
		{"initial", func() (any, error) { return u.Initial(nums) }, []int{5, 4, 3, 2}},
		{"initial n", func() (any, error) { return u.Initial(nums, 3) }, []int{5, 4}},
		{"initial zero", func() (any, error) { return u.Initial(nums, 0) }, []int{}},
		{"last", func() (any, error) { return u.Last(nums) }, 1},
		{"last n", func() (any, error) { return u.Last(nums, 2) }, []int{2, 1}},
		{"last zero", func() (any, error) { return u.Last(nums, 0) }, []int{5, 4, 3, 2, 1}},
		{"last empty", func() (any, error) { return u.Last([]string{}) }, nil},
		{"rest", func() (any, error) { return u.Rest(nums) }, []int{4, 3, 2, 1}},
		{"rest n", func() (any, error) { return u.Rest(nums, 3) }, []int{2, 1}},
		{"rest tuple", func() (any, error) { return u.Rest(dispatch.Tuple[int]{1, 2, 3}) }, dispatch.Tuple[int]{2, 3}},
		{"rest array", func() (any, error) { return u.Rest([3]int{1, 2, 3}) }, []int{2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.call()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, nums)
}

func TestArrayOperationsRejectMappings(t *testing.T) {
	m := map[string]int{"a": 1}
	_, err := u.First(m)
	assert.ErrorIs(t, err, dispatch.ErrTypeMismatch)
	_, err = u.Compact(m)
	assert.ErrorIs(t, err, dispatch.ErrTypeMismatch)
	_, err = u.Union([]int{1}, m)
	assert.ErrorIs(t, err, dispatch.ErrTypeMismatch)
	_, err = u.IndexOf(m, 1)
	assert.ErrorIs(t, err, dispatch.ErrTypeMismatch)
}

// ─── Reshaping ────────────────────────────────────────────────────────────────

func TestCompact(t *testing.T) {
	got, err := u.Compact([]any{0, 1, false, 2, "", 3, nil, math.NaN(), []int{}})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, []int{}}, got)

	got, err = u.Compact([]string{"a", "", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFlatten(t *testing.T) {
	nested := []any{1, []any{2}, []any{3, []any{[]any{4}}}}

	got, err := u.Flatten(nested)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4}, got)

	got, err = u.Flatten(nested, true)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, []any{[]any{4}}}, got)

	got, err = u.Flatten([]any{1, dispatch.Tuple[any]{2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []any{1, dispatch.Tuple[any]{2, 3}}, got)
}

func TestZip(t *testing.T) {
	got, err := u.Zip([]string{"moe", "larry", "curly"}, []int{30, 40, 50}, []bool{true, false})
	require.NoError(t, err)
	assert.Equal(t, []any{
		[]any{"moe", 30, true},
		[]any{"larry", 40, false},
	}, got)

	got, err = u.Zip(dispatch.Tuple[string]{"a"}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []any{dispatch.Tuple[any]{"a", 1}}, got)

	got, err = u.Zip()
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestObject(t *testing.T) {
	got, err := u.Object([]string{"moe", "larry", "curly"}, []int{30, 40})
	require.NoError(t, err)
	assert.Equal(t, map[any]any{"moe": 30, "larry": 40}, got)

	got, err = u.Object([]any{[]any{"moe", 30}, dispatch.Tuple[any]{"larry", 40}})
	require.NoError(t, err)
	assert.Equal(t, map[any]any{"moe": 30, "larry": 40}, got)

	_, err = u.Object([]any{[]any{"moe"}})
	assert.ErrorIs(t, err, dispatch.ErrInvalidArgument)

	_, err = u.Object([]any{[]int{1}}, []int{2})
	assert.ErrorIs(t, err, dispatch.ErrTypeMismatch)
}

// ─── Set algebra ──────────────────────────────────────────────────────────────

func TestWithout(t *testing.T) {
	got, err := u.Without([]int{1, 2, 1, 0, 3, 1, 4}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, got)

	got, err = u.Without([]any{[]int{1}, []int{2}}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []any{[]int{2}}, got)
}

func TestUnionIntersectionDifference(t *testing.T) {
	union, err := u.Union([]int{1, 2, 3}, []int{101, 2, 1, 10}, []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 101, 10}, union)

	inter, err := u.Intersection([]int{1, 2, 3, 1}, []int{101, 2, 1, 10}, []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, inter)

	diff, err := u.Difference([]int{1, 2, 3, 4, 5, 3}, []int{5, 2, 10})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 3}, diff)

	union, err = u.Union([]any{[]int{1}}, []any{[]int{1}, map[string]int{"a": 1}})
	require.NoError(t, err)
	assert.Equal(t, []any{[]int{1}, map[string]int{"a": 1}}, union, "unhashable values compare structurally")
}

func TestUniq(t *testing.T) {
	got, err := u.Uniq([]int{1, 2, 1, 4, 1, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 3}, got)

	got, err = u.Uniq([]string{"a", "B", "b", "A"}, strings.ToLower)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B"}, got)

	got, err = u.Uniq(people(), "role")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = u.Uniq([]float64{0, math.Copysign(0, -1)}, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1, "signed zeros are one value")

	got, err = u.Uniq([]any{[]float64{0}, []float64{math.Copysign(0, -1)}}, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUniqSortedMatchesUniqOnSortedInput(t *testing.T) {
	inputs := []struct {
		array    any
		iteratee any
	}{
		{[]int{1, 1, 2, 3, 3, 3, 4}, nil},
		{[]string{"a", "a", "b", "c", "c"}, nil},
		{[]float64{1.1, 1.9, 2.2, 2.5, 3.0}, math.Floor},
		{stooges, "Age"},
		{[]int{}, nil},
	}
	for _, in := range inputs {
		want, err := u.Uniq(in.array, in.iteratee)
		require.NoError(t, err)
		got, err := u.UniqSorted(in.array, in.iteratee)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%v", in.array)
	}
}

// ─── Search ───────────────────────────────────────────────────────────────────

func TestIndexOf(t *testing.T) {
	nums := []int{1, 2, 3, 1, 2, 3}
	cases := []struct {
		name   string
		last   bool
		value  any
		bounds []int
		want   int
	}{
		{"first match", false, 2, nil, 1},
		{"from start", false, 2, []int{2}, 4},
		{"negative start", false, 1, []int{-3}, 3},
		{"within window", false, 3, []int{0, 2}, -1},
		{"missing", false, 9, nil, -1},
		{"out of range", false, 1, []int{100}, -1},
		{"last match", true, 2, nil, 4},
		{"last within window", true, 2, []int{0, 3}, 1},
		{"last missing", true, 9, nil, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			search := u.IndexOf
			if tc.last {
				search = u.LastIndexOf
			}
			got, err := search(nums, tc.value, tc.bounds...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindIndex(t *testing.T) {
	odd := func(n int) bool { return n%2 == 1 }

	i, err := u.FindIndex([]int{4, 6, 7, 12, 9}, odd, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = u.FindLastIndex([]int{4, 6, 7, 12, 9}, odd, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	i, err = u.FindIndex([]int{4, 6, 7, 12, 9}, odd, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	i, err = u.FindLastIndex([]int{4, 6, 7, 12, 9}, odd, nil, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = u.FindIndex([]int{4, 6}, odd, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	i, err = u.FindIndex([]int{1, 5, 10}, func(limit, n int) bool { return n > limit }, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = u.FindIndex(people(), "missing", nil)
	assert.ErrorIs(t, err, dispatch.ErrKeyLookup)
	assert.Equal(t, -1, i)
}

func TestSortedIndex(t *testing.T) {
	nums := []int{10, 20, 30, 40, 50}
	for value, want := range map[int]int{35: 3, 55: 5, 30: 2, 5: 0} {
		i, err := u.SortedIndex(nums, value, nil)
		require.NoError(t, err)
		assert.Equal(t, want, i, "insert %d", value)
	}

	i, err := u.SortedIndex(stooges, stooge{"shemp", 45}, "Age")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = u.SortedIndex([]string{"a", "b"}, 1, nil)
	assert.ErrorIs(t, err, dispatch.ErrTypeMismatch)
}

// ─── Generation ───────────────────────────────────────────────────────────────

func TestRange(t *testing.T) {
	cases := []struct {
		args []any
		want []int
	}{
		{[]any{10}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{[]any{1, 11, 3}, []int{1, 4, 7, 10}},
		{[]any{0, -5, -1}, []int{0, -1, -2, -3, -4}},
		{[]any{0}, []int{}},
		{[]any{2.0}, []int{0, 1}},
	}
	for _, tc := range cases {
		got, err := u.Range(tc.args...)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v", tc.args)
	}

	_, err := u.Range(1, 2, 0)
	assert.ErrorIs(t, err, dispatch.ErrInvalidArgument)
	_, err = u.Range("ten")
	assert.ErrorIs(t, err, dispatch.ErrInvalidArgument)
	_, err = u.Range(1.5)
	assert.ErrorIs(t, err, dispatch.ErrInvalidArgument)
}

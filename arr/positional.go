package arr

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false if items is empty.
func First[S ~[]T, T any](items S) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// FirstN returns a copy of the first n elements. A negative n counts from the
// end, so FirstN(s, -1) drops the last element.
func FirstN[S ~[]T, T any](items S, n int) S {
	return window(items, 0, n)
}

// Initial returns every element except the last n (default 1). It is the
// slice items[:-n], so Initial(s, 0) is empty and a negative n keeps the
// first -n elements.
func Initial[S ~[]T, T any](items S, n ...int) S {
	return window(items, 0, -optional(n, 1))
}

// Last returns the last element.
// Returns the zero value and false if items is empty.
func Last[S ~[]T, T any](items S) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a copy of the last n elements. It is the slice items[-n:],
// so LastN(s, 0) is the whole sequence and a negative n drops the first -n
// elements.
func LastN[S ~[]T, T any](items S, n int) S {
	return window(items, -n, len(items))
}

// Rest returns every element from index n (default 1). A negative n counts
// from the end.
func Rest[S ~[]T, T any](items S, n ...int) S {
	return window(items, optional(n, 1), len(items))
}

func window[S ~[]T, T any](items S, start, end int) S {
	lo, hi := dispatch.Window(len(items), start, end)
	out := make(S, hi-lo)
	copy(out, items[lo:hi])
	return out
}

func optional(n []int, def int) int {
	if len(n) > 0 {
		return n[0]
	}
	return def
}

// ─────────────────────────────────────────────────────────────────────────────
// Reshaping
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns the truthy elements. nil, false, "", numeric zero and NaN
// are removed.
func Compact[S ~[]T, T any](items S) S {
	return Filter(items, func(item T) bool { return dispatch.Truthy(item) })
}

// Flatten collapses nested slices into a single []any. Tuples and other
// non-slice values are kept as elements. With shallow set only one level is
// removed.
//
//	Flatten([]any{1, []any{2, []any{3}}}, false) // → [1 2 3]
//	Flatten([]any{1, []any{2, []any{3}}}, true)  // → [1 2 [3]]
func Flatten[S ~[]T, T any](items S, shallow bool) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = flattenInto(out, item, shallow, 0)
	}
	return out
}

func flattenInto(out []any, v any, shallow bool, depth int) []any {
	if dispatch.KindOf(v) != dispatch.KindSequence || (shallow && depth > 0) {
		return append(out, v)
	}
	s, _ := dispatch.AsSeq(v)
	for i := 0; i < s.Len(); i++ {
		out = flattenInto(out, s.At(i), shallow, depth+1)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the first index of value within the optional [start, end)
// bounds, or -1.
func IndexOf[S ~[]T, T any](items S, value T, bounds ...int) int {
	return FindIndex(items, func(item T) bool { return dispatch.Equal(item, value) }, bounds...)
}

// LastIndexOf returns the last index of value within the optional bounds,
// or -1.
func LastIndexOf[S ~[]T, T any](items S, value T, bounds ...int) int {
	return FindLastIndex(items, func(item T) bool { return dispatch.Equal(item, value) }, bounds...)
}

// FindIndex returns the first index within the optional bounds whose element
// satisfies pred, or -1.
func FindIndex[S ~[]T, T any](items S, pred func(T) bool, bounds ...int) int {
	lo, hi := dispatch.Bounds(len(items), bounds...)
	for i := lo; i < hi; i++ {
		if pred(items[i]) {
			return i
		}
	}
	return -1
}

// FindLastIndex returns the last index within the optional bounds whose
// element satisfies pred, or -1.
func FindLastIndex[S ~[]T, T any](items S, pred func(T) bool, bounds ...int) int {
	lo, hi := dispatch.Bounds(len(items), bounds...)
	for i := hi - 1; i >= lo; i-- {
		if pred(items[i]) {
			return i
		}
	}
	return -1
}

// SortedIndex returns the lowest index at which value could be inserted into
// the ascending items while keeping it sorted.
func SortedIndex[S ~[]T, T cmp.Ordered](items S, value T) int {
	i, _ := slices.BinarySearch(items, value)
	return i
}

// SortedIndexBy is [SortedIndex] with elements and value compared by key.
func SortedIndexBy[S ~[]T, T any, K cmp.Ordered](items S, value T, key func(T) K) int {
	target := key(value)
	i, _ := slices.BinarySearchFunc(items, target, func(item T, t K) int {
		return cmp.Compare(key(item), t)
	})
	return i
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Range produces integer progressions:
//
//	Range(5)        // → [0 1 2 3 4]
//	Range(1, 5)     // → [1 2 3 4]
//	Range(0, 10, 3) // → [0 3 6 9]
//	Range(5, 0, -2) // → [5 3 1]
//
// A step of zero, or more than three arguments, fails with ErrInvalidArgument.
func Range(args ...int) ([]int, error) {
	start, stop, step := 0, 0, 1
	switch len(args) {
	case 1:
		stop = args[0]
	case 2:
		start, stop = args[0], args[1]
	case 3:
		start, stop, step = args[0], args[1], args[2]
	default:
		return nil, fmt.Errorf("%w: range takes 1 to 3 arguments, got %d", dispatch.ErrInvalidArgument, len(args))
	}
	if step == 0 {
		return nil, fmt.Errorf("%w: range step must not be zero", dispatch.ErrInvalidArgument)
	}

	// Counted in uint64 so progressions near the int limits end without
	// the index wrapping around.
	var count uint64
	switch {
	case step > 0 && start < stop:
		count = (uint64(stop)-uint64(start)-1)/uint64(step) + 1
	case step < 0 && start > stop:
		mag := uint64(-(step + 1)) + 1
		count = (uint64(start)-uint64(stop)-1)/mag + 1
	}
	out := make([]int, 0, count)
	for k := range count {
		out = append(out, int(uint64(start)+k*uint64(step)))
	}
	return out, nil
}

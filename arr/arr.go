package arr

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// Number is satisfied by every integer and floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index, items) for every element in order and returns
// items for chaining.
func Each[S ~[]T, T any](items S, fn func(T, int, S)) S {
	for i, item := range items {
		fn(item, i, items)
	}
	return items
}

// Map applies fn(item, index, items) to each element and returns a new slice.
func Map[S ~[]T, T, R any](items S, fn func(T, int, S) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item, i, items)
	}
	return out
}

// Reduce folds items into memo, calling fn(memo, item, index, items) for
// every element from the first.
func Reduce[S ~[]T, T, M any](items S, fn func(M, T, int, S) M, memo M) M {
	for i, item := range items {
		memo = fn(memo, item, i, items)
	}
	return memo
}

// ReduceFirst folds items using the first element as the memo, starting
// from the second. It returns ErrEmptyReduction when items is empty.
func ReduceFirst[S ~[]T, T any](items S, fn func(T, T, int, S) T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, dispatch.ErrEmptyReduction
	}
	memo := items[0]
	for i := 1; i < len(items); i++ {
		memo = fn(memo, items[i], i, items)
	}
	return memo, nil
}

// Find returns the first element satisfying pred.
// Returns the zero value and false when nothing matches.
func Find[S ~[]T, T any](items S, pred func(T) bool) (T, bool) {
	for _, item := range items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the elements for which pred returns true.
func Filter[S ~[]T, T any](items S, pred func(T) bool) S {
	out := make(S, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which pred returns false.
func Reject[S ~[]T, T any](items S, pred func(T) bool) S {
	return Filter(items, func(item T) bool { return !pred(item) })
}

// Every reports whether pred holds for every element, stopping at the first
// failure. A nil pred tests truthiness (see [dispatch.IsFalsy]).
func Every[S ~[]T, T any](items S, pred func(T) bool) bool {
	pred = orTruthy(pred)
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element, stopping at the
// first match. A nil pred tests truthiness.
func Some[S ~[]T, T any](items S, pred func(T) bool) bool {
	pred = orTruthy(pred)
	for _, item := range items {
		if pred(item) {
			return true
		}
	}
	return false
}

func orTruthy[T any](pred func(T) bool) func(T) bool {
	if pred != nil {
		return pred
	}
	return func(item T) bool { return dispatch.Truthy(item) }
}

// Contains reports whether items holds an element structurally equal to value.
func Contains[S ~[]T, T any](items S, value T) bool {
	return slices.ContainsFunc(items, func(item T) bool { return dispatch.Equal(item, value) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Matching
// ─────────────────────────────────────────────────────────────────────────────

// Where returns the mappings holding every key of props with an equal value.
func Where[S ~[]M, M ~map[K]V, K comparable, V any](items S, props map[K]V) S {
	return Filter(items, func(m M) bool { return matches(m, props) })
}

// FindWhere returns the first mapping matching props.
func FindWhere[S ~[]M, M ~map[K]V, K comparable, V any](items S, props map[K]V) (M, bool) {
	return Find(items, func(m M) bool { return matches(m, props) })
}

func matches[M ~map[K]V, K comparable, V any](m M, props map[K]V) bool {
	for k, want := range props {
		got, ok := m[k]
		if !ok || !dispatch.Equal(got, want) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection & ranking
// ─────────────────────────────────────────────────────────────────────────────

// Pluck extracts key from every mapping. It fails with ErrKeyLookup when a
// mapping lacks the key.
func Pluck[S ~[]M, M ~map[K]V, K comparable, V any](items S, key K) ([]V, error) {
	out := make([]V, len(items))
	for i, m := range items {
		v, ok := m[key]
		if !ok {
			return nil, fmt.Errorf("%w: %v at index %d", dispatch.ErrKeyLookup, key, i)
		}
		out[i] = v
	}
	return out, nil
}

// Max returns the largest element as a float64, or +Inf when items is empty.
func Max[S ~[]T, T Number](items S) float64 {
	if len(items) == 0 {
		return math.Inf(1)
	}
	return float64(slices.Max(items))
}

// Min returns the smallest element as a float64, or -Inf when items is empty.
func Min[S ~[]T, T Number](items S) float64 {
	if len(items) == 0 {
		return math.Inf(-1)
	}
	return float64(slices.Min(items))
}

// MaxBy returns the first element with the largest key.
// Returns the zero value and false if items is empty.
func MaxBy[S ~[]T, T any, K cmp.Ordered](items S, key func(T) K) (T, bool) {
	return extreme(items, key, 1)
}

// MinBy returns the first element with the smallest key.
// Returns the zero value and false if items is empty.
func MinBy[S ~[]T, T any, K cmp.Ordered](items S, key func(T) K) (T, bool) {
	return extreme(items, key, -1)
}

func extreme[S ~[]T, T any, K cmp.Ordered](items S, key func(T) K, sign int) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best, bestKey := items[0], key(items[0])
	for _, item := range items[1:] {
		if k := key(item); cmp.Compare(k, bestKey) == sign {
			best, bestKey = item, k
		}
	}
	return best, true
}

// SortBy returns a copy of items sorted ascending by key. The sort is
// stable: elements with equal keys keep their relative order.
func SortBy[S ~[]T, T any, K cmp.Ordered](items S, key func(T) K) S {
	out := slices.Clone(items)
	if out == nil {
		out = S{}
	}
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return out
}

// GroupBy buckets items by key. Within a bucket the source order is kept.
func GroupBy[S ~[]T, T any, K comparable](items S, key func(T) K) map[K]S {
	return group(items, key)
}

// IndexBy maps each key to the first element producing it.
func IndexBy[S ~[]T, T any, K comparable](items S, key func(T) K) map[K]T {
	groups := group(items, key)
	out := make(map[K]T, len(groups))
	for k, bucket := range groups {
		out[k] = bucket[0]
	}
	return out
}

// CountBy counts the elements producing each key.
func CountBy[S ~[]T, T any, K comparable](items S, key func(T) K) map[K]int {
	groups := group(items, key)
	out := make(map[K]int, len(groups))
	for k, bucket := range groups {
		out[k] = len(bucket)
	}
	return out
}

func group[S ~[]T, T any, K comparable](items S, key func(T) K) map[K]S {
	groups := make(map[K]S)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Partition splits items into those satisfying pred and the rest, both in
// source order. The halves have the type of items, so a Tuple stays a Tuple.
func Partition[S ~[]T, T any](items S, pred func(T) bool) (S, S) {
	pass := make(S, 0)
	fail := make(S, 0)
	for _, item := range items {
		if pred(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

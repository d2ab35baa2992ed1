package arr

import (
	"cmp"
	"slices"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// Membership in this file is structural equality (see [dispatch.Equal]), so
// slices, maps and structs can be compared as values.

// Without returns items with every occurrence of values removed.
func Without[S ~[]T, T any](items S, values ...T) S {
	drop := newSet(values)
	return Reject(items, func(item T) bool { return drop.Contains(item) })
}

// Difference returns the elements of items present in none of others.
// Duplicates in items are kept.
func Difference[S ~[]T, T any](items S, others ...S) S {
	drop := dispatch.NewSet()
	for _, other := range others {
		for _, v := range other {
			drop.Add(v)
		}
	}
	return Reject(items, func(item T) bool { return drop.Contains(item) })
}

// Union returns the distinct elements of all arrays in order of first
// occurrence.
func Union[S ~[]T, T any](arrays ...S) S {
	seen := dispatch.NewSet()
	out := make(S, 0)
	for _, a := range arrays {
		for _, v := range a {
			if seen.Add(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

// Intersection returns the distinct elements of the first array present in
// every other array, in first-array order.
func Intersection[S ~[]T, T any](arrays ...S) S {
	if len(arrays) == 0 {
		return S{}
	}
	others := make([]*dispatch.Set, len(arrays)-1)
	for i, a := range arrays[1:] {
		others[i] = newSet(a)
	}
	seen := dispatch.NewSet()
	out := make(S, 0)
	for _, v := range arrays[0] {
		if !seen.Add(v) {
			continue
		}
		if !slices.ContainsFunc(others, func(s *dispatch.Set) bool { return !s.Contains(v) }) {
			out = append(out, v)
		}
	}
	return out
}

// Uniq returns the distinct elements of items in order of first occurrence.
func Uniq[S ~[]T, T any](items S) S {
	return UniqBy(items, func(item T) T { return item })
}

// UniqBy returns the elements of items whose key has not been seen before.
func UniqBy[S ~[]T, T, K any](items S, key func(T) K) S {
	seen := dispatch.NewSet()
	out := make(S, 0)
	for _, item := range items {
		if seen.Add(key(item)) {
			out = append(out, item)
		}
	}
	return out
}

// UniqSorted is [Uniq] for input already sorted ascending. Seen keys are kept
// sorted and searched by binary search. On sorted input the result is
// identical to Uniq.
func UniqSorted[S ~[]T, T cmp.Ordered](items S) S {
	return UniqSortedBy(items, func(item T) T { return item })
}

// UniqSortedBy is [UniqBy] for input sorted ascending by key.
func UniqSortedBy[S ~[]T, T any, K cmp.Ordered](items S, key func(T) K) S {
	seen := make([]K, 0, len(items))
	out := make(S, 0)
	for _, item := range items {
		k := key(item)
		i, found := slices.BinarySearch(seen, k)
		if found {
			continue
		}
		seen = slices.Insert(seen, i, k)
		out = append(out, item)
	}
	return out
}

func newSet[T any](values []T) *dispatch.Set {
	s := dispatch.NewSet()
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Package arr provides typed, generic helpers for Go slices in the style of
// the underscore collection and array catalogs.
//
// Every helper takes a plain slice (any type whose underlying type is []T)
// and returns a new value; inputs are never mutated:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	byLen  := arr.GroupBy([]string{"one", "two", "three"}, func(s string) int { return len(s) })
//	sorted := arr.SortBy(users, func(u User) string { return u.Name })
//
// Callbacks of the traversal family (Each, Map, Reduce) receive the element,
// its index and the whole slice. Predicates receive the element only.
//
// Equality-based helpers (Contains, IndexOf, Uniq, Union, Intersection,
// Difference, Without) compare structurally, so they work on slices, maps
// and structs as well as on comparable types.
//
// Selections keep the slice type of their input, which means a
// [dispatch.Tuple] stays a Tuple through Filter, Partition or FirstN.
//
// For untyped data and callable-or-key iteratees use the underscore package.
package arr

package arr

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [ZipPairs] and consumed by
// [ObjectFromPairs].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip merges arrays position-wise: the i-th result holds the i-th element of
// every input. The result has the length of the shortest input.
//
//	Zip([]any{"moe", "larry"}, []any{30, 40}) // → [[moe 30] [larry 40]]
func Zip[S ~[]T, T any](arrays ...S) []S {
	if len(arrays) == 0 {
		return []S{}
	}
	n := len(arrays[0])
	for _, a := range arrays[1:] {
		n = min(n, len(a))
	}
	out := make([]S, n)
	for i := range out {
		row := make(S, len(arrays))
		for j, a := range arrays {
			row[j] = a[i]
		}
		out[i] = row
	}
	return out
}

// ZipPairs merges two slices of different element types into pairs,
// truncated to the shorter.
func ZipPairs[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Object builds a map from parallel key and value slices, truncated to the
// shorter. Later duplicate keys overwrite earlier ones.
func Object[K comparable, V any](keys []K, values []V) map[K]V {
	n := min(len(keys), len(values))
	out := make(map[K]V, n)
	for i := range n {
		out[keys[i]] = values[i]
	}
	return out
}

// ObjectFromPairs builds a map from key/value pairs.
func ObjectFromPairs[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[p.First] = p.Second
	}
	return out
}

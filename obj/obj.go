package obj

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mitchellh/copystructure"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/dispatch"
)

// ─────────────────────────────────────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of m in unspecified order.
func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	out := make([]K, 0, len(m))
	return slices.AppendSeq(out, maps.Keys(m))
}

// Values returns the values of m in unspecified order.
func Values[M ~map[K]V, K comparable, V any](m M) []V {
	out := make([]V, 0, len(m))
	return slices.AppendSeq(out, maps.Values(m))
}

// Pairs returns the entries of m as key/value pairs in unspecified order.
func Pairs[M ~map[K]V, K comparable, V any](m M) []arr.Pair[K, V] {
	out := make([]arr.Pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, arr.Pair[K, V]{First: k, Second: v})
	}
	return out
}

// MapObject transforms every value of m with fn(value, key, m), keeping the
// keys.
func MapObject[M ~map[K]V, K comparable, V, R any](m M, fn func(V, K, M) R) map[K]R {
	out := make(map[K]R, len(m))
	for k, v := range m {
		out[k] = fn(v, k, m)
	}
	return out
}

// Invert swaps keys and values. When values repeat, which key survives is
// unspecified.
func Invert[M ~map[K]V, K, V comparable](m M) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// FindKey returns a key whose value satisfies pred.
// Returns the zero value and false if no value matches.
func FindKey[M ~map[K]V, K comparable, V any](m M, pred func(V) bool) (K, bool) {
	for k, v := range m {
		if pred(v) {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// Has reports whether key is present in m.
func Has[M ~map[K]V, K comparable, V any](m M, key K) bool {
	_, ok := m[key]
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
//
// Extend, ExtendOwn and Defaults write into dst and return it. A nil dst is
// replaced by a new map, since nil maps cannot be written.
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every entry of sources into dst in order, so later sources
// override earlier ones.
func Extend[M ~map[K]V, K comparable, V any](dst M, sources ...M) M {
	dst = writable(dst)
	for _, src := range sources {
		maps.Copy(dst, src)
	}
	return dst
}

// ExtendOwn is [Extend] restricted to keys already present in dst.
func ExtendOwn[M ~map[K]V, K comparable, V any](dst M, sources ...M) M {
	dst = writable(dst)
	for _, src := range sources {
		for k, v := range src {
			if _, ok := dst[k]; ok {
				dst[k] = v
			}
		}
	}
	return dst
}

// Defaults fills keys absent from dst with the first value found in
// defaults.
func Defaults[M ~map[K]V, K comparable, V any](dst M, defaults ...M) M {
	dst = writable(dst)
	for _, def := range defaults {
		for k, v := range def {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return dst
}

func writable[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return make(M)
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a copy of m holding only the listed keys.
func Pick[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := make(M, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// PickBy returns a copy of m holding the entries for which
// pred(value, key, m) is true.
func PickBy[M ~map[K]V, K comparable, V any](m M, pred func(V, K, M) bool) M {
	out := make(M)
	for k, v := range m {
		if pred(v, k, m) {
			out[k] = v
		}
	}
	return out
}

// Omit returns a copy of m without the listed keys.
func Omit[M ~map[K]V, K comparable, V any](m M, keys ...K) M {
	out := Clone(m)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// OmitBy returns a copy of m without the entries for which
// pred(value, key, m) is true.
func OmitBy[M ~map[K]V, K comparable, V any](m M, pred func(V, K, M) bool) M {
	return PickBy(m, func(v V, k K, all M) bool { return !pred(v, k, all) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a shallow copy of m: nested maps and slices are shared.
func Clone[M ~map[K]V, K comparable, V any](m M) M {
	out := make(M, len(m))
	maps.Copy(out, m)
	return out
}

// CloneDeep returns a fully independent copy of v, duplicating nested maps,
// slices and pointers recursively. Unexported struct fields are not copied.
func CloneDeep[T any](v T) (T, error) {
	var zero T
	c, err := copystructure.Copy(v)
	if err != nil {
		return zero, fmt.Errorf("deep clone %T: %w", v, err)
	}
	if c == nil {
		return zero, nil
	}
	out, ok := c.(T)
	if !ok {
		return zero, fmt.Errorf("%w: deep clone of %T produced %T", dispatch.ErrTypeMismatch, v, c)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors & matchers
// ─────────────────────────────────────────────────────────────────────────────

// Property returns a function reading key from any map.
//
//	name := obj.Property[string, any]("name")
//	v, ok := name(user)
func Property[K comparable, V any](key K) func(map[K]V) (V, bool) {
	return func(m map[K]V) (V, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// PropertyOf returns a function reading any key from m.
func PropertyOf[M ~map[K]V, K comparable, V any](m M) func(K) (V, bool) {
	return func(key K) (V, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Matcher returns a predicate reporting whether a map holds every entry of
// attrs with a structurally equal value.
func Matcher[K comparable, V any](attrs map[K]V) func(map[K]V) bool {
	return func(m map[K]V) bool { return IsMatch(m, attrs) }
}

// IsMatch reports whether m holds every entry of props with a structurally
// equal value. Every map matches empty props.
func IsMatch[M ~map[K]V, K comparable, V any](m M, props map[K]V) bool {
	for k, want := range props {
		got, ok := m[k]
		if !ok || !dispatch.Equal(got, want) {
			return false
		}
	}
	return true
}

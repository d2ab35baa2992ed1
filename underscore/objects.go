package underscore

import (
	"github.com/hasbyte1/go-underscore/dispatch"
	"github.com/hasbyte1/go-underscore/is"
	"github.com/hasbyte1/go-underscore/obj"
)

// The functions in this file accept mappings (any map type) and fail with
// ErrTypeMismatch on anything else. Results that are maps keep the source
// map type unless documented otherwise. Key order is the map's own,
// which Go leaves unspecified.

// ─────────────────────────────────────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of a mapping.
func Keys(object any) ([]any, error) {
	m, err := mapping("keys", object)
	if err != nil {
		return nil, err
	}
	return m.Keys(), nil
}

// Values returns the values of a mapping.
func Values(object any) ([]any, error) {
	if _, err := mapping("values", object); err != nil {
		return nil, err
	}
	return project("values", object, dispatch.Identity())
}

// MapObject transforms every value with iteratee(value, key, object). The
// result keeps the key type and holds values of type any.
func MapObject(object, iteratee any, context ...any) (any, error) {
	const op = "mapObject"
	m, err := mapping(op, object)
	if err != nil {
		return nil, err
	}
	it, err := resolve(op, iteratee, context)
	if err != nil {
		return nil, err
	}
	out := m.EmptyOf()
	_, err = walk(op, object, func(v, k, owner any) (bool, error) {
		r, err := it.Invoke3(v, k, owner)
		if err == nil {
			err = out.Set(k, r)
		}
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// Pairs returns the entries as [key, value] rows, as Tuple[any] when tuple
// is true and []any otherwise.
func Pairs(object any, tuple ...bool) ([]any, error) {
	m, err := mapping("pairs", object)
	if err != nil {
		return nil, err
	}
	asTuple := len(tuple) > 0 && tuple[0]
	out := make([]any, 0, m.Len())
	m.Range(func(k, v any) bool {
		if asTuple {
			out = append(out, dispatch.Tuple[any]{k, v})
		} else {
			out = append(out, []any{k, v})
		}
		return true
	})
	return out, nil
}

// Invert swaps keys and values into a map[any]any. Every value must be
// comparable.
func Invert(object any) (map[any]any, error) {
	const op = "invert"
	m, err := mapping(op, object)
	if err != nil {
		return nil, err
	}
	out := make(map[any]any, m.Len())
	m.Range(func(k, v any) bool {
		if !hashable(v) {
			err = unhashable(op, v)
			return false
		}
		out[v] = k
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindKey returns a key whose value passes predicate(value, key, object).
func FindKey(object, predicate any, context ...any) (key any, found bool, err error) {
	const op = "findKey"
	if _, err := mapping(op, object); err != nil {
		return nil, false, err
	}
	it, err := resolve(op, predicate, context)
	if err != nil {
		return nil, false, err
	}
	_, err = walk(op, object, func(v, k, owner any) (bool, error) {
		ok, err := passes(it, v, k, owner)
		if ok {
			key, found = k, true
		}
		return !ok && err == nil, err
	})
	if err != nil {
		return nil, false, err
	}
	return key, found, nil
}

// Has reports whether key is present in a mapping.
func Has(object, key any) (bool, error) {
	m, err := mapping("has", object)
	if err != nil {
		return false, err
	}
	return m.Has(key), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every entry of sources into destination, later sources
// overriding earlier ones, and returns destination. Entries must fit the
// destination's key and value types.
func Extend(destination any, sources ...any) (any, error) {
	return merge("extend", destination, sources, func(bool) bool { return true })
}

// ExtendOwn is [Extend] restricted to keys already present in destination.
func ExtendOwn(destination any, sources ...any) (any, error) {
	return merge("extendOwn", destination, sources, func(present bool) bool { return present })
}

// Defaults fills keys absent from destination with the first value found
// among defaults, and returns destination.
func Defaults(destination any, defaults ...any) (any, error) {
	return merge("defaults", destination, defaults, func(present bool) bool { return !present })
}

func merge(op string, destination any, sources []any, write func(present bool) bool) (any, error) {
	dst, err := mapping(op, destination)
	if err != nil {
		return nil, err
	}
	for _, source := range sources {
		src, err := mapping(op, source)
		if err != nil {
			return nil, err
		}
		src.Range(func(k, v any) bool {
			if write(dst.Has(k)) {
				err = dst.Set(k, v)
			}
			return err == nil
		})
		if err != nil {
			return nil, opError(op, err)
		}
	}
	return destination, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a copy holding only the selected entries. The selection is
// either a list of keys, where slice arguments are expanded, or a single
// predicate(value, key, object) optionally followed by its context.
//
//	Pick(user, "name", "age")
//	Pick(user, []string{"name", "age"})
//	Pick(user, func(v any) bool { return is.Number(v) })
func Pick(object any, keysOrPredicate ...any) (any, error) {
	return selectEntries("pick", object, keysOrPredicate, true)
}

// Omit returns a copy without the selected entries. It accepts the same
// selections as [Pick].
func Omit(object any, keysOrPredicate ...any) (any, error) {
	return selectEntries("omit", object, keysOrPredicate, false)
}

func selectEntries(op string, object any, selector []any, keep bool) (any, error) {
	if _, err := mapping(op, object); err != nil {
		return nil, err
	}
	var it dispatch.Iteratee
	if len(selector) > 0 && is.Function(selector[0]) {
		it = dispatch.Fn(selector[0]).WithContext(optional(selector[1:]))
	} else {
		keys := dispatch.NewSet(expandKeys(selector)...)
		it = dispatch.Fn(func(_, k any) bool { return keys.Contains(k) })
	}
	sel := newSelection(object)
	_, err := walk(op, object, func(v, k, owner any) (bool, error) {
		ok, err := passes(it, v, k, owner)
		if err == nil && ok == keep {
			sel.add(v, k)
		}
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	return sel.result()
}

func expandKeys(args []any) []any {
	var keys []any
	for _, a := range args {
		if seq, err := dispatch.AsSeq(a); err == nil && !is.String(a) {
			keys = append(keys, seq.Items()...)
			continue
		}
		keys = append(keys, a)
	}
	return keys
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying
// ─────────────────────────────────────────────────────────────────────────────

// Clone copies a mapping or sequence. The copy is deep unless deep is given
// as false, in which case only the top level is duplicated. Other values
// are returned unchanged by a shallow clone.
func Clone(value any, deep ...bool) (any, error) {
	if len(deep) == 0 || deep[0] {
		out, err := obj.CloneDeep(value)
		return out, opError("clone", err)
	}
	switch dispatch.KindOf(value) {
	case dispatch.KindSequence, dispatch.KindTuple:
		seq, _ := dispatch.AsSeq(value)
		return seq.Slice(0, seq.Len()), nil
	case dispatch.KindMapping:
		m, _ := dispatch.AsMap(value)
		out := m.Empty()
		var err error
		m.Range(func(k, v any) bool {
			err = out.Set(k, v)
			return err == nil
		})
		return out.Value(), opError("clone", err)
	}
	return value, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors & matchers
// ─────────────────────────────────────────────────────────────────────────────

// Property returns a function reading key from its argument. A missing key
// fails with ErrKeyLookup.
//
//	Map(stooges, Property("name")) // same result as Pluck(stooges, "name")
func Property(key any) func(object any) (any, error) {
	return func(object any) (any, error) {
		return dispatch.Lookup(object, key)
	}
}

// PropertyOf returns a function reading any key from object.
func PropertyOf(object any) func(key any) (any, error) {
	return func(key any) (any, error) {
		return dispatch.Lookup(object, key)
	}
}

// Matcher returns a predicate reporting whether its argument is a mapping
// holding every entry of attrs. attrs must be a mapping.
func Matcher(attrs any) (func(object any) bool, error) {
	if _, err := mapping("matcher", attrs); err != nil {
		return nil, err
	}
	return func(object any) bool { return dispatch.MatchesAll(object, attrs) }, nil
}

// IsMatch reports whether object holds every entry of properties. A
// non-mapping object never matches.
func IsMatch(object, properties any) (bool, error) {
	if _, err := mapping("isMatch", properties); err != nil {
		return false, err
	}
	return dispatch.MatchesAll(object, properties), nil
}

package underscore

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"unicode/utf8"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/dispatch"
)

// The functions in this file accept a sequence (slice, array or Tuple), a
// mapping or a generic iterable (iter.Seq[any]). Iteratees are called with
// (value, position, list): the index for sequences, the key for mappings and
// nil for iterables, whose list argument is nil as well. A string iteratee
// projects that key out of every element.

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Each calls iteratee for every element and returns list. Over a generic
// iterable it returns nil, since the iterable may not be traversable twice.
func Each(list, iteratee any, context ...any) (any, error) {
	const op = "each"
	it, err := resolve(op, iteratee, context)
	if err != nil {
		return nil, err
	}
	kind, err := walk(op, list, func(v, pos, owner any) (bool, error) {
		_, err := it.Invoke3(v, pos, owner)
		return err == nil, err
	})
	if err != nil || kind == dispatch.KindIterable {
		return nil, err
	}
	return list, nil
}

// Map produces a new []any by passing every element through iteratee.
//
//	Map([]int{1, 2, 3}, func(n int) int { return n * 3 }) // → [3 6 9]
func Map(list, iteratee any, context ...any) ([]any, error) {
	const op = "map"
	it, err := resolve(op, iteratee, context)
	if err != nil {
		return nil, err
	}
	return project(op, list, it)
}

func project(op string, list any, it dispatch.Iteratee) ([]any, error) {
	out := []any{}
	_, err := walk(op, list, func(v, pos, owner any) (bool, error) {
		r, err := it.Invoke3(v, pos, owner)
		out = append(out, r)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reduce folds list into a single value with iteratee(memo, value,
// position, list). The optional trailing arguments are the initial memo and
// the context, in that order:
//
//	Reduce(list, f)               // memo seeded from the first element
//	Reduce(list, f, memo)
//	Reduce(list, f, memo, context)
//	Reduce(list, f, nil, context) // seeded from the first element, bound
//
// A nil memo counts as no memo. Without a memo an empty list fails with
// ErrEmptyReduction. Generic iterables are rejected with ErrTypeMismatch.
func Reduce(list, iteratee any, memoAndContext ...any) (any, error) {
	const op = "reduce"
	var context []any
	if len(memoAndContext) > 1 {
		context = memoAndContext[1:]
	}
	it, err := resolve(op, iteratee, context)
	if err != nil {
		return nil, err
	}
	switch dispatch.KindOf(list) {
	case dispatch.KindIterable, dispatch.KindUnknown:
		return nil, fmt.Errorf("%s: %w: %T is not a sequence or mapping", op, dispatch.ErrTypeMismatch, list)
	}

	var memo any
	seeded := len(memoAndContext) > 0 && memoAndContext[0] != nil
	if seeded {
		memo = memoAndContext[0]
	}
	_, err = walk(op, list, func(v, pos, owner any) (bool, error) {
		if !seeded {
			memo, seeded = v, true
			return true, nil
		}
		var err error
		memo, err = it.Invoke4(memo, v, pos, owner)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	if !seeded {
		return nil, opError(op, dispatch.ErrEmptyReduction)
	}
	return memo, nil
}

// Find returns the first element passing predicate. found is false when no
// element passes.
func Find(list, predicate any, context ...any) (value any, found bool, err error) {
	const op = "find"
	it, err := resolve(op, predicate, context)
	if err != nil {
		return nil, false, err
	}
	return firstMatch(op, list, it)
}

func firstMatch(op string, list any, it dispatch.Iteratee) (value any, found bool, err error) {
	_, err = walk(op, list, func(v, pos, owner any) (bool, error) {
		ok, err := passes(it, v, pos, owner)
		if ok {
			value, found = v, true
		}
		return !ok && err == nil, err
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}

func passes(it dispatch.Iteratee, v, pos, owner any) (bool, error) {
	r, err := it.Invoke3(v, pos, owner)
	if err != nil {
		return false, err
	}
	return dispatch.Truthy(r), nil
}

// Filter returns the elements passing predicate. Sequences keep their type,
// mappings keep the entries whose value passes, iterables yield []any.
func Filter(list, predicate any, context ...any) (any, error) {
	return keepIf("filter", list, predicate, context, true)
}

// Reject is the opposite of [Filter].
func Reject(list, predicate any, context ...any) (any, error) {
	return keepIf("reject", list, predicate, context, false)
}

func keepIf(op string, list, predicate any, context []any, want bool) (any, error) {
	it, err := resolve(op, predicate, context)
	if err != nil {
		return nil, err
	}
	sel := newSelection(list)
	_, err = walk(op, list, func(v, pos, owner any) (bool, error) {
		ok, err := passes(it, v, pos, owner)
		if err == nil && ok == want {
			sel.add(v, pos)
		}
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	return sel.result()
}

// Every reports whether every element passes predicate, stopping at the
// first failure. A nil predicate tests the elements' truthiness.
func Every(list, predicate any, context ...any) (bool, error) {
	const op = "every"
	it, err := resolve(op, predicate, context)
	if err != nil {
		return false, err
	}
	all := true
	_, err = walk(op, list, func(v, pos, owner any) (bool, error) {
		ok, err := passes(it, v, pos, owner)
		all = ok
		return ok && err == nil, err
	})
	if err != nil {
		return false, err
	}
	return all, nil
}

// Some reports whether any element passes predicate, stopping at the first
// match. A nil predicate tests the elements' truthiness.
func Some(list, predicate any, context ...any) (bool, error) {
	const op = "some"
	it, err := resolve(op, predicate, context)
	if err != nil {
		return false, err
	}
	_, found, err := firstMatch(op, list, it)
	return found, err
}

// Contains reports whether list holds a value structurally equal to value.
// For mappings the values are searched.
func Contains(list, value any) (bool, error) {
	found := false
	_, err := walk("contains", list, func(v, _, _ any) (bool, error) {
		found = dispatch.Equal(v, value)
		return !found, nil
	})
	return found, err
}

// ─────────────────────────────────────────────────────────────────────────────
// Matching
// ─────────────────────────────────────────────────────────────────────────────

// Where returns the elements that are mappings holding every key/value pair
// of properties.
func Where(list, properties any) (any, error) {
	const op = "where"
	if _, err := mapping(op, properties); err != nil {
		return nil, err
	}
	sel := newSelection(list)
	_, err := walk(op, list, func(v, pos, _ any) (bool, error) {
		if dispatch.MatchesAll(v, properties) {
			sel.add(v, pos)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return sel.result()
}

// FindWhere returns the first element matching properties.
func FindWhere(list, properties any) (any, bool, error) {
	if _, err := mapping("findWhere", properties); err != nil {
		return nil, false, err
	}
	return firstMatch("findWhere", list, dispatch.Fn(func(v any) bool {
		return dispatch.MatchesAll(v, properties)
	}))
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection & ranking
// ─────────────────────────────────────────────────────────────────────────────

// Pluck extracts key from every element. A missing key fails with
// ErrKeyLookup.
func Pluck(list, key any) ([]any, error) {
	return project("pluck", list, dispatch.Key(key))
}

// Max returns the element with the largest value, or the largest projection
// through iteratee when one is given. Ties keep the first element. An empty
// list yields +Inf.
func Max(list, iteratee any, context ...any) (any, error) {
	return extreme("max", list, iteratee, context, 1)
}

// Min returns the element with the smallest value or projection. An empty
// list yields -Inf.
func Min(list, iteratee any, context ...any) (any, error) {
	return extreme("min", list, iteratee, context, -1)
}

func extreme(op string, list, iteratee any, context []any, sign int) (any, error) {
	it, err := resolve(op, iteratee, context)
	if err != nil {
		return nil, err
	}
	var best, bestKey any
	seen := false
	_, err = walk(op, list, func(v, pos, owner any) (bool, error) {
		k, err := it.Invoke3(v, pos, owner)
		if err != nil {
			return false, err
		}
		if !seen {
			best, bestKey, seen = v, k, true
			return true, nil
		}
		c, err := dispatch.Compare(k, bestKey)
		if c == sign {
			best, bestKey = v, k
		}
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}
	if !seen {
		return math.Inf(sign), nil
	}
	return best, nil
}

// SortBy returns the elements ordered ascending by their projection through
// iteratee (the elements themselves when iteratee is nil). The sort is
// stable. Sequences keep their type; mappings and iterables yield []any.
// Projections that cannot be ordered against each other fail with
// ErrTypeMismatch.
func SortBy(list, iteratee any, context ...any) (any, error) {
	const op = "sortBy"
	it, err := resolve(op, iteratee, context)
	if err != nil {
		return nil, err
	}
	type entry struct {
		pos        int
		value, key any
	}
	var entries []entry
	kind, err := walk(op, list, func(v, pos, owner any) (bool, error) {
		k, err := it.Invoke3(v, pos, owner)
		entries = append(entries, entry{pos: len(entries), value: v, key: k})
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}

	var cmpErr error
	slices.SortStableFunc(entries, func(a, b entry) int {
		c, err := dispatch.Compare(a.key, b.key)
		if err != nil && cmpErr == nil {
			cmpErr = err
		}
		return c
	})
	if cmpErr != nil {
		return nil, opError(op, cmpErr)
	}

	if kind == dispatch.KindSequence || kind == dispatch.KindTuple {
		seq, _ := dispatch.AsSeq(list)
		return seq.Pick(arr.Map(entries, func(e entry, _ int, _ []entry) int { return e.pos })), nil
	}
	return arr.Map(entries, func(e entry, _ int, _ []entry) any { return e.value }), nil
}

// GroupBy buckets the elements by their projection through iteratee,
// preserving source order within each bucket.
func GroupBy(list, iteratee any, context ...any) (map[any][]any, error) {
	_, groups, err := group("groupBy", list, iteratee, context)
	return groups, err
}

// IndexBy maps each projection to the first element producing it.
func IndexBy(list, iteratee any, context ...any) (map[any]any, error) {
	_, groups, err := group("indexBy", list, iteratee, context)
	if err != nil {
		return nil, err
	}
	out := make(map[any]any, len(groups))
	for k, bucket := range groups {
		out[k] = bucket[0]
	}
	return out, nil
}

// CountBy counts the elements producing each projection.
func CountBy(list, iteratee any, context ...any) (map[any]int, error) {
	_, groups, err := group("countBy", list, iteratee, context)
	if err != nil {
		return nil, err
	}
	out := make(map[any]int, len(groups))
	for k, bucket := range groups {
		out[k] = len(bucket)
	}
	return out, nil
}

// group is the single bucketing pass behind GroupBy, IndexBy and CountBy.
// keys lists the projections in order of first appearance.
func group(op string, list, iteratee any, context []any) (keys []any, groups map[any][]any, err error) {
	it, err := resolve(op, iteratee, context)
	if err != nil {
		return nil, nil, err
	}
	groups = make(map[any][]any)
	_, err = walk(op, list, func(v, pos, owner any) (bool, error) {
		k, err := it.Invoke3(v, pos, owner)
		if err != nil {
			return false, err
		}
		if !hashable(k) {
			return false, unhashable(op, k)
		}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], v)
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return keys, groups, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Random
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a uniformly shuffled copy of a sequence.
func Shuffle(list any) (any, error) {
	seq, err := sequence("shuffle", list)
	if err != nil {
		return nil, err
	}
	return seq.Pick(arr.Shuffle(indices(seq.Len()))), nil
}

// Sample returns one random element of a sequence, or, given n, a copy of n
// elements at distinct random positions. An empty sequence, or n outside
// [0, len], fails with ErrInvalidArgument.
func Sample(list any, n ...int) (any, error) {
	const op = "sample"
	seq, err := sequence(op, list)
	if err != nil {
		return nil, err
	}
	positions := indices(seq.Len())
	if len(n) == 0 {
		i, err := arr.Sample(positions)
		if err != nil {
			return nil, opError(op, err)
		}
		return seq.At(i), nil
	}
	picked, err := arr.SampleN(positions, n[0])
	if err != nil {
		return nil, opError(op, err)
	}
	return seq.Pick(picked), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Partition & shape
// ─────────────────────────────────────────────────────────────────────────────

// Partition splits list into the elements for which predicate returns
// exactly true and all the others, both in source order. Each half has the
// container kind of list.
func Partition(list, predicate any, context ...any) (pass, fail any, err error) {
	const op = "partition"
	it, err := resolve(op, predicate, context)
	if err != nil {
		return nil, nil, err
	}
	yes, no := newSelection(list), newSelection(list)
	_, err = walk(op, list, func(v, pos, owner any) (bool, error) {
		r, err := it.Invoke3(v, pos, owner)
		if err != nil {
			return false, err
		}
		if b, ok := r.(bool); ok && b {
			yes.add(v, pos)
		} else {
			no.add(v, pos)
		}
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	if pass, err = yes.result(); err != nil {
		return nil, nil, err
	}
	if fail, err = no.result(); err != nil {
		return nil, nil, err
	}
	return pass, fail, nil
}

// Size returns the number of elements of a sequence, mapping or iterable,
// or the number of characters of a string.
func Size(list any) (int, error) {
	if s, ok := stringValue(list); ok {
		return utf8.RuneCountInString(s), nil
	}
	n := 0
	_, err := walk("size", list, func(_, _, _ any) (bool, error) {
		n++
		return true, nil
	})
	return n, err
}

// ToArray copies the elements of a sequence, the values of a mapping, the
// items of an iterable or the characters of a string into a new []any.
func ToArray(list any) ([]any, error) {
	if s, ok := stringValue(list); ok {
		out := make([]any, 0, len(s))
		for _, r := range s {
			out = append(out, string(r))
		}
		return out, nil
	}
	return project("toArray", list, dispatch.Identity())
}

func stringValue(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

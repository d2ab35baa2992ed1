package underscore

import (
	"fmt"
	"slices"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/dispatch"
)

// The functions in this file accept sequences only (slices, arrays and
// Tuples) and fail with ErrTypeMismatch on anything else. Selections are
// computed over element positions with the typed arr helpers and then
// picked out of the source, so the result keeps the input's slice type.

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, or nil for an empty sequence. Given n it
// returns a copy of the first n elements instead.
func First(array any, n ...int) (any, error) {
	seq, err := sequence("first", array)
	if err != nil {
		return nil, err
	}
	idx := indices(seq.Len())
	if len(n) > 0 {
		return seq.Pick(arr.FirstN(idx, n[0])), nil
	}
	if i, ok := arr.First(idx); ok {
		return seq.At(i), nil
	}
	return nil, nil
}

// Initial returns everything but the last n elements (default 1).
func Initial(array any, n ...int) (any, error) {
	seq, err := sequence("initial", array)
	if err != nil {
		return nil, err
	}
	return seq.Pick(arr.Initial(indices(seq.Len()), n...)), nil
}

// Last returns the last element, or nil for an empty sequence. Given n it
// returns a copy of the last n elements instead.
func Last(array any, n ...int) (any, error) {
	seq, err := sequence("last", array)
	if err != nil {
		return nil, err
	}
	idx := indices(seq.Len())
	if len(n) > 0 {
		return seq.Pick(arr.LastN(idx, n[0])), nil
	}
	if i, ok := arr.Last(idx); ok {
		return seq.At(i), nil
	}
	return nil, nil
}

// Rest returns everything from index n on (default 1).
func Rest(array any, n ...int) (any, error) {
	seq, err := sequence("rest", array)
	if err != nil {
		return nil, err
	}
	return seq.Pick(arr.Rest(indices(seq.Len()), n...)), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Reshaping
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns a copy without the falsy elements: nil, false, "", zero
// and NaN.
func Compact(array any) (any, error) {
	seq, err := sequence("compact", array)
	if err != nil {
		return nil, err
	}
	return seq.Pick(arr.Filter(indices(seq.Len()), func(i int) bool {
		return dispatch.Truthy(seq.At(i))
	})), nil
}

// Flatten collapses nested sequences to any depth, or one level when
// shallow is true. Tuples nested inside are kept as elements.
func Flatten(array any, shallow ...bool) ([]any, error) {
	seq, err := sequence("flatten", array)
	if err != nil {
		return nil, err
	}
	return arr.Flatten(seq.Items(), len(shallow) > 0 && shallow[0]), nil
}

// Zip merges sequences position-wise into rows, truncated to the shortest
// input. Rows are Tuple[any] when the first input is a Tuple and []any
// otherwise.
//
//	Zip([]string{"moe", "larry"}, []int{30, 40}) // → [[moe 30] [larry 40]]
func Zip(arrays ...any) ([]any, error) {
	seqs := make([][]any, len(arrays))
	for i, a := range arrays {
		seq, err := sequence("zip", a)
		if err != nil {
			return nil, err
		}
		seqs[i] = seq.Items()
	}
	rows := arr.Zip(seqs...)
	tuple := len(arrays) > 0 && dispatch.IsTuple(arrays[0])
	return arr.Map(rows, func(row []any, _ int, _ [][]any) any {
		if tuple {
			return dispatch.Tuple[any](row)
		}
		return row
	}), nil
}

// Object converts sequences into a map[any]any. With values, list holds the
// keys and values the matching values (truncated to the shorter). Without,
// list holds [key, value] pairs.
func Object(list any, values ...any) (map[any]any, error) {
	const op = "object"
	seq, err := sequence(op, list)
	if err != nil {
		return nil, err
	}
	var keys, vals []any
	if len(values) > 0 && values[0] != nil {
		other, err := sequence(op, values[0])
		if err != nil {
			return nil, err
		}
		keys, vals = seq.Items(), other.Items()
	} else {
		for i, p := range seq.Items() {
			pair, err := dispatch.AsSeq(p)
			if err != nil || pair.Len() != 2 {
				return nil, fmt.Errorf("%s: %w: element %d is not a [key, value] pair", op, dispatch.ErrInvalidArgument, i)
			}
			keys, vals = append(keys, pair.At(0)), append(vals, pair.At(1))
		}
	}
	for _, k := range keys {
		if !hashable(k) {
			return nil, unhashable(op, k)
		}
	}
	return arr.Object(keys, vals), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
// ─────────────────────────────────────────────────────────────────────────────

// Without returns a copy with every occurrence of values removed.
func Without(array any, values ...any) (any, error) {
	seq, err := sequence("without", array)
	if err != nil {
		return nil, err
	}
	drop := dispatch.NewSet(values...)
	return seq.Pick(arr.Reject(indices(seq.Len()), func(i int) bool {
		return drop.Contains(seq.At(i))
	})), nil
}

// Union returns the distinct elements of all arrays as a []any, in order of
// first occurrence.
func Union(arrays ...any) ([]any, error) {
	items, err := itemsOf("union", arrays)
	if err != nil {
		return nil, err
	}
	return arr.Union(items...), nil
}

// Intersection returns the distinct elements of array present in every
// other, in array's order.
func Intersection(array any, others ...any) (any, error) {
	const op = "intersection"
	seq, err := sequence(op, array)
	if err != nil {
		return nil, err
	}
	rest, err := itemsOf(op, others)
	if err != nil {
		return nil, err
	}
	sets := arr.Map(rest, func(o []any, _ int, _ [][]any) *dispatch.Set { return dispatch.NewSet(o...) })
	seen := dispatch.NewSet()
	return seq.Pick(arr.Filter(indices(seq.Len()), func(i int) bool {
		v := seq.At(i)
		return seen.Add(v) && arr.Every(sets, func(s *dispatch.Set) bool { return s.Contains(v) })
	})), nil
}

// Difference returns the elements of array present in none of others.
// Duplicates within array are kept.
func Difference(array any, others ...any) (any, error) {
	const op = "difference"
	seq, err := sequence(op, array)
	if err != nil {
		return nil, err
	}
	rest, err := itemsOf(op, others)
	if err != nil {
		return nil, err
	}
	drop := dispatch.NewSet(slices.Concat(rest...)...)
	return seq.Pick(arr.Reject(indices(seq.Len()), func(i int) bool {
		return drop.Contains(seq.At(i))
	})), nil
}

// Uniq returns a duplicate-free copy in order of first occurrence. A non-nil
// iteratee computes the comparison key.
func Uniq(array, iteratee any, context ...any) (any, error) {
	const op = "uniq"
	seq, keys, err := keyed(op, array, iteratee, context)
	if err != nil {
		return nil, err
	}
	return seq.Pick(arr.UniqBy(indices(seq.Len()), func(i int) any { return keys[i] })), nil
}

// UniqSorted is [Uniq] for a sequence already sorted ascending by key. Seen
// keys are looked up by binary search; on sorted input the result equals
// Uniq's.
func UniqSorted(array, iteratee any, context ...any) (any, error) {
	const op = "uniq"
	seq, keys, err := keyed(op, array, iteratee, context)
	if err != nil {
		return nil, err
	}
	var seen []any
	kept := []int{}
	for i, k := range keys {
		at, found, err := search(seen, k)
		if err != nil {
			return nil, opError(op, err)
		}
		if !found {
			seen = slices.Insert(seen, at, k)
			kept = append(kept, i)
		}
	}
	return seq.Pick(kept), nil
}

// keyed projects every element of a sequence through iteratee.
func keyed(op string, array, iteratee any, context []any) (dispatch.Seq, []any, error) {
	seq, err := sequence(op, array)
	if err != nil {
		return seq, nil, err
	}
	it, err := resolve(op, iteratee, context)
	if err != nil {
		return seq, nil, err
	}
	keys, err := project(op, array, it)
	return seq, keys, err
}

// search is a binary search over ascending keys ordered by dispatch.Compare.
func search(sorted []any, target any) (int, bool, error) {
	var cmpErr error
	i, found := slices.BinarySearchFunc(sorted, target, func(k, t any) int {
		c, err := dispatch.Compare(k, t)
		if err != nil && cmpErr == nil {
			cmpErr = err
		}
		return c
	})
	return i, found, cmpErr
}

func itemsOf(op string, arrays []any) ([][]any, error) {
	out := make([][]any, len(arrays))
	for i, a := range arrays {
		seq, err := sequence(op, a)
		if err != nil {
			return nil, err
		}
		out[i] = seq.Items()
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the first index of value within the optional [start, end)
// bounds, or -1. Bounds follow slice rules for negative values and are
// clamped, so they never fail.
func IndexOf(array, value any, bounds ...int) (int, error) {
	seq, err := sequence("indexOf", array)
	if err != nil {
		return -1, err
	}
	return arr.IndexOf(seq.Items(), value, bounds...), nil
}

// LastIndexOf returns the last index of value within the optional bounds,
// or -1.
func LastIndexOf(array, value any, bounds ...int) (int, error) {
	seq, err := sequence("lastIndexOf", array)
	if err != nil {
		return -1, err
	}
	return arr.LastIndexOf(seq.Items(), value, bounds...), nil
}

// FindIndex returns the first index within the optional bounds whose
// element passes predicate, or -1. Pass a nil context to leave predicate
// unbound.
func FindIndex(array, predicate, context any, bounds ...int) (int, error) {
	return findIndex("findIndex", array, predicate, context, bounds, arr.FindIndex[[]int, int])
}

// FindLastIndex is [FindIndex] searching from the end.
func FindLastIndex(array, predicate, context any, bounds ...int) (int, error) {
	return findIndex("findLastIndex", array, predicate, context, bounds, arr.FindLastIndex[[]int, int])
}

func findIndex(op string, array, predicate, context any, bounds []int, search func([]int, func(int) bool, ...int) int) (int, error) {
	seq, err := sequence(op, array)
	if err != nil {
		return -1, err
	}
	it, err := resolve(op, predicate, []any{context})
	if err != nil {
		return -1, err
	}
	var testErr error
	i := search(indices(seq.Len()), func(i int) bool {
		ok, err := passes(it, seq.At(i), i, array)
		if err != nil {
			testErr = err
			return true
		}
		return ok
	}, bounds...)
	if testErr != nil {
		return -1, opError(op, testErr)
	}
	return i, nil
}

// SortedIndex returns the lowest index at which value could be inserted
// into the ascending array while keeping it sorted. A non-nil iteratee
// projects both the elements and value before comparing.
//
//	SortedIndex([]int{10, 20, 30, 40, 50}, 35, nil) // → 3
func SortedIndex(array, value, iteratee any, context ...any) (int, error) {
	const op = "sortedIndex"
	_, keys, err := keyed(op, array, iteratee, context)
	if err != nil {
		return -1, err
	}
	it, _ := resolve(op, iteratee, context)
	target, err := it.Invoke1(value)
	if err != nil {
		return -1, opError(op, err)
	}
	i, _, err := search(keys, target)
	if err != nil {
		return -1, opError(op, err)
	}
	return i, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Range produces an integer progression from one to three integer-valued
// arguments: stop, start and stop, or start, stop and step.
func Range(args ...any) ([]int, error) {
	ints := make([]int, len(args))
	for i, a := range args {
		n, err := dispatch.AsInt(a)
		if err != nil {
			return nil, opError("range", err)
		}
		ints[i] = n
	}
	out, err := arr.Range(ints...)
	return out, opError("range", err)
}

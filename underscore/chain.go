package underscore

import (
	"fmt"

	"go.uber.org/zap"
)

type state uint8

const (
	open state = iota
	closed
)

func (s state) String() string {
	if s == closed {
		return "closed"
	}
	return "open"
}

// Wrapper threads a value through a sequence of named operations.
//
// # Lifecycle
//
// A Wrapper starts open. Every forwarded call replaces the current value
// with the operation's result, called with the current value as its first
// argument. [Wrapper.Value] closes the wrapper and returns the value; after
// that every forwarded call fails with ErrChainClosed.
//
//	v, err := underscore.Chain([]int{1, 2, 3, 200}).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Map(func(n int) int { return n * n }).
//	    Value() // → [4 40000]
//
// The fluent methods record the first failure, skip every later call and
// report it from Value and Err. [Wrapper.Call] returns errors directly.
//
// A Wrapper does not copy its value and is not safe for concurrent use.
type Wrapper struct {
	value any
	state state
	err   error
	ops   *Registry
	log   *zap.Logger
}

// Chain opens a Wrapper over v.
func Chain(v any, opts ...Option) *Wrapper {
	w := &Wrapper{value: v, ops: defaultRegistry, log: zap.NewNop()}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Call forwards the named operation to the current value and stores its
// result. It fails with ErrChainClosed once the wrapper is closed and with
// ErrUnknownOperation when name is not registered. A failed call leaves the
// current value unchanged.
func (w *Wrapper) Call(name string, args ...any) (*Wrapper, error) {
	if w.state == closed {
		err := fmt.Errorf("%s: %w", name, ErrChainClosed)
		w.trace(name, err)
		return w, err
	}
	out, err := w.ops.Call(name, w.value, args...)
	w.trace(name, err)
	if err != nil {
		return w, err
	}
	w.value = out
	return w, nil
}

func (w *Wrapper) trace(name string, err error) {
	w.log.Debug("chain call",
		zap.String("op", name),
		zap.Stringer("state", w.state),
		zap.Error(err),
	)
}

// Tap calls fn with the current value for its side effects and returns w
// unchanged. On a closed wrapper fn is not called.
func (w *Wrapper) Tap(fn func(any)) *Wrapper {
	if w.state == open && w.err == nil {
		fn(w.value)
	}
	return w
}

// Value closes the wrapper and returns the current value, or the first
// error recorded by a fluent method. Calling it again returns the value
// together with ErrChainClosed.
func (w *Wrapper) Value() (any, error) {
	if w.state == closed {
		return w.value, ErrChainClosed
	}
	w.state = closed
	w.log.Debug("chain value", zap.Stringer("state", w.state), zap.Error(w.err))
	if w.err != nil {
		return nil, w.err
	}
	return w.value, nil
}

// Err returns the first error recorded by a fluent method.
func (w *Wrapper) Err() error { return w.err }

// then runs a forwarded call on behalf of a fluent method.
func (w *Wrapper) then(name string, args ...any) *Wrapper {
	if w.err != nil {
		return w
	}
	if _, err := w.Call(name, args...); err != nil {
		w.err = err
	}
	return w
}

// ─────────────────────────────────────────────────────────────────────────────
// Fluent methods
//
// Each method forwards to the registered operation of the same name with
// the arguments of the matching package function, minus the first.
// ─────────────────────────────────────────────────────────────────────────────

// Each calls iteratee for every element and keeps the value.
func (w *Wrapper) Each(iteratee any, context ...any) *Wrapper {
	return w.then("each", append([]any{iteratee}, context...)...)
}

// Map replaces the value with the results of iteratee.
func (w *Wrapper) Map(iteratee any, context ...any) *Wrapper {
	return w.then("map", append([]any{iteratee}, context...)...)
}

// Reduce replaces the value with the folded result; see [Reduce].
func (w *Wrapper) Reduce(iteratee any, memoAndContext ...any) *Wrapper {
	return w.then("reduce", append([]any{iteratee}, memoAndContext...)...)
}

// Find replaces the value with the first passing element, or nil.
func (w *Wrapper) Find(predicate any, context ...any) *Wrapper {
	return w.then("find", append([]any{predicate}, context...)...)
}

// Filter keeps the elements passing predicate.
func (w *Wrapper) Filter(predicate any, context ...any) *Wrapper {
	return w.then("filter", append([]any{predicate}, context...)...)
}

// Reject drops the elements passing predicate.
func (w *Wrapper) Reject(predicate any, context ...any) *Wrapper {
	return w.then("reject", append([]any{predicate}, context...)...)
}

// Every replaces the value with whether all elements pass.
func (w *Wrapper) Every(predicate any, context ...any) *Wrapper {
	return w.then("every", append([]any{predicate}, context...)...)
}

// Some replaces the value with whether any element passes.
func (w *Wrapper) Some(predicate any, context ...any) *Wrapper {
	return w.then("some", append([]any{predicate}, context...)...)
}

// Contains replaces the value with whether it holds value.
func (w *Wrapper) Contains(value any) *Wrapper { return w.then("contains", value) }

// Where keeps the elements matching properties.
func (w *Wrapper) Where(properties any) *Wrapper { return w.then("where", properties) }

// FindWhere replaces the value with the first element matching properties.
func (w *Wrapper) FindWhere(properties any) *Wrapper { return w.then("findWhere", properties) }

// Pluck replaces the value with every element's key.
func (w *Wrapper) Pluck(key any) *Wrapper { return w.then("pluck", key) }

// Max replaces the value with its largest element.
func (w *Wrapper) Max(iteratee any, context ...any) *Wrapper {
	return w.then("max", append([]any{iteratee}, context...)...)
}

// Min replaces the value with its smallest element.
func (w *Wrapper) Min(iteratee any, context ...any) *Wrapper {
	return w.then("min", append([]any{iteratee}, context...)...)
}

// SortBy stably sorts a copy by iteratee.
func (w *Wrapper) SortBy(iteratee any, context ...any) *Wrapper {
	return w.then("sortBy", append([]any{iteratee}, context...)...)
}

// GroupBy groups the elements by iteratee.
func (w *Wrapper) GroupBy(iteratee any, context ...any) *Wrapper {
	return w.then("groupBy", append([]any{iteratee}, context...)...)
}

// IndexBy indexes the elements by iteratee.
func (w *Wrapper) IndexBy(iteratee any, context ...any) *Wrapper {
	return w.then("indexBy", append([]any{iteratee}, context...)...)
}

// CountBy counts the elements per iteratee result.
func (w *Wrapper) CountBy(iteratee any, context ...any) *Wrapper {
	return w.then("countBy", append([]any{iteratee}, context...)...)
}

// Shuffle replaces the value with a shuffled copy.
func (w *Wrapper) Shuffle() *Wrapper { return w.then("shuffle") }

// Sample picks one element, or n of them.
func (w *Wrapper) Sample(n ...int) *Wrapper { return w.then("sample", ints(n)...) }

// Partition replaces the value with a two-element []any (or Tuple) holding
// the passing and failing halves.
func (w *Wrapper) Partition(predicate any, context ...any) *Wrapper {
	return w.then("partition", append([]any{predicate}, context...)...)
}

// Size replaces the value with its element count.
func (w *Wrapper) Size() *Wrapper { return w.then("size") }

// ToArray converts the value to a []any.
func (w *Wrapper) ToArray() *Wrapper { return w.then("toArray") }

// First takes the first element, or the first n.
func (w *Wrapper) First(n ...int) *Wrapper { return w.then("first", ints(n)...) }

// Initial drops the last element, or the last n.
func (w *Wrapper) Initial(n ...int) *Wrapper { return w.then("initial", ints(n)...) }

// Last takes the last element, or the last n.
func (w *Wrapper) Last(n ...int) *Wrapper { return w.then("last", ints(n)...) }

// Rest drops the first element, or the first n.
func (w *Wrapper) Rest(n ...int) *Wrapper { return w.then("rest", ints(n)...) }

// Compact drops the falsy elements.
func (w *Wrapper) Compact() *Wrapper { return w.then("compact") }

// Flatten collapses nested sequences.
func (w *Wrapper) Flatten(shallow ...bool) *Wrapper {
	if len(shallow) > 0 {
		return w.then("flatten", shallow[0])
	}
	return w.then("flatten")
}

// Without drops every occurrence of values.
func (w *Wrapper) Without(values ...any) *Wrapper { return w.then("without", values...) }

// Union merges the value with arrays, keeping distinct elements.
func (w *Wrapper) Union(arrays ...any) *Wrapper { return w.then("union", arrays...) }

// Intersection keeps the elements present in every array.
func (w *Wrapper) Intersection(arrays ...any) *Wrapper { return w.then("intersection", arrays...) }

// Difference keeps the elements present in none of arrays.
func (w *Wrapper) Difference(arrays ...any) *Wrapper { return w.then("difference", arrays...) }

// Uniq removes duplicates; see [Uniq] and [UniqSorted].
func (w *Wrapper) Uniq(isSorted bool, iteratee any, context ...any) *Wrapper {
	return w.then("uniq", append([]any{isSorted, iteratee}, context...)...)
}

// Zip merges the value with arrays position-wise.
func (w *Wrapper) Zip(arrays ...any) *Wrapper { return w.then("zip", arrays...) }

// Object builds a map from the value; see [Object].
func (w *Wrapper) Object(values ...any) *Wrapper { return w.then("object", values...) }

// IndexOf replaces the value with the index of value, or -1.
func (w *Wrapper) IndexOf(value any, bounds ...int) *Wrapper {
	return w.then("indexOf", append([]any{value}, ints(bounds)...)...)
}

// Keys replaces a mapping with its keys.
func (w *Wrapper) Keys() *Wrapper { return w.then("keys") }

// Values replaces a mapping with its values.
func (w *Wrapper) Values() *Wrapper { return w.then("values") }

// MapObject transforms each mapping value with iteratee.
func (w *Wrapper) MapObject(iteratee any, context ...any) *Wrapper {
	return w.then("mapObject", append([]any{iteratee}, context...)...)
}

// Pairs converts a mapping to [key, value] pairs.
func (w *Wrapper) Pairs() *Wrapper { return w.then("pairs") }

// Invert swaps the keys and values of a mapping.
func (w *Wrapper) Invert() *Wrapper { return w.then("invert") }

// Extend copies the properties of sources into the value.
func (w *Wrapper) Extend(sources ...any) *Wrapper { return w.then("extend", sources...) }

// Defaults fills keys the value lacks from defaults.
func (w *Wrapper) Defaults(defaults ...any) *Wrapper { return w.then("defaults", defaults...) }

// Pick keeps the listed keys, or the entries passing a predicate.
func (w *Wrapper) Pick(keysOrPredicate ...any) *Wrapper { return w.then("pick", keysOrPredicate...) }

// Omit is the opposite of [Wrapper.Pick].
func (w *Wrapper) Omit(keysOrPredicate ...any) *Wrapper { return w.then("omit", keysOrPredicate...) }

// Clone replaces the value with a deep copy.
func (w *Wrapper) Clone() *Wrapper { return w.then("clone") }

func ints(n []int) []any {
	out := make([]any, len(n))
	for i, v := range n {
		out[i] = v
	}
	return out
}

package underscore

import (
	"github.com/hasbyte1/go-underscore/fn"
	"github.com/hasbyte1/go-underscore/is"
	"github.com/hasbyte1/go-underscore/util"
)

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Placeholder marks a [Partial] argument filled at call time.
var Placeholder = fn.Placeholder

// Kwargs carries keyword-style arguments through [Partial].
type Kwargs = fn.Kwargs

// Partial fixes leading arguments of f; see [fn.Partial].
func Partial(f any, bound ...any) fn.Func { return fn.Partial(f, bound...) }

// Before allows count calls of f, then keeps returning the last result.
func Before(count int, f any) *fn.BeforeFunc { return fn.Before(count, f) }

// After ignores the first count calls and calls f from then on.
func After(count int, f any) *fn.AfterFunc { return fn.After(count, f) }

// Once is Before(1, f).
func Once(f any) *fn.BeforeFunc { return fn.Once(f) }

// Wrap passes f as the first argument to wrapper.
func Wrap(f, wrapper any) fn.Func { return fn.Wrap(f, wrapper) }

// Negate returns the negated truthiness of predicate(args...), or of
// predicate itself when it is not a function.
func Negate(predicate any, args ...any) (bool, error) { return fn.Negate(predicate, args...) }

// Compose returns the right-to-left composition of fns.
func Compose(fns ...any) fn.Func { return fn.ComposeAll(fns...) }

// ─────────────────────────────────────────────────────────────────────────────
// Type predicates
// ─────────────────────────────────────────────────────────────────────────────

// IsFunction reports whether v is a non-nil function value.
func IsFunction(v any) bool { return is.Function(v) }

// IsCallable reports whether v is a function or has a Call method.
func IsCallable(v any) bool { return is.Callable(v) }

// IsString reports whether v is a string, named string types included.
func IsString(v any) bool { return is.String(v) }

// IsNumber reports whether v is an integer or float of any kind. NaN counts.
func IsNumber(v any) bool { return is.Number(v) }

// IsFinite reports whether v is a number other than NaN or an infinity.
func IsFinite(v any) bool { return is.Finite(v) }

// IsNaN reports whether v is a floating-point NaN.
func IsNaN(v any) bool { return is.NaN(v) }

// IsBoolean reports whether v is a bool.
func IsBoolean(v any) bool { return is.Boolean(v) }

// IsArray reports whether v is a slice or array. Tuples are not arrays.
func IsArray(v any) bool { return is.Array(v) }

// IsTuple reports whether v is a [dispatch.Tuple].
func IsTuple(v any) bool { return is.Tuple(v) }

// IsObject reports whether v is a map.
func IsObject(v any) bool { return is.Object(v) }

// IsEmpty reports whether v is nil or has no elements; see [is.Empty].
func IsEmpty(v any) bool { return is.Empty(v) }

// IsError reports whether v implements error.
func IsError(v any) bool { return is.Error(v) }

// IsNone reports whether v is nil or a nil reference; see [is.None].
func IsNone(v any) bool { return is.None(v) }

// IsEqual reports structural equality.
func IsEqual(a, b any) bool { return is.Equal(a, b) }

// ─────────────────────────────────────────────────────────────────────────────
// Utilities
// ─────────────────────────────────────────────────────────────────────────────

// Identity returns v.
func Identity(v any) any { return v }

// Constant returns a function always returning v.
func Constant(v any) func(...any) any { return fn.Constant(v) }

// Noop accepts anything and does nothing.
func Noop(args ...any) { fn.Noop(args...) }

// Times calls iteratee with 0 through n-1 and collects the results.
//
//	Times(3, func(i int) int { return i * i }) // → [0 1 4]
func Times(n int, iteratee any, context ...any) ([]any, error) {
	const op = "times"
	it, err := resolve(op, iteratee, context)
	if err != nil {
		return nil, err
	}
	var callErr error
	out := fn.Times(max(n, 0), func(i int) any {
		if callErr != nil {
			return nil
		}
		r, err := it.Invoke1(i)
		callErr = err
		return r
	})
	if callErr != nil {
		return nil, opError(op, callErr)
	}
	return out, nil
}

// Random returns a pseudo-random integer in [0, bound], or in
// [bound, upper] when upper is given.
func Random(bound int, upper ...int) (int, error) {
	n, err := util.Random(bound, upper...)
	return n, opError("random", err)
}

// UniqueID returns the optional prefix followed by a fresh UUID.
func UniqueID(prefix ...string) (string, error) {
	p := ""
	if len(prefix) > 0 {
		p = prefix[0]
	}
	return util.UniqueID(p)
}

// Now returns the current Unix time in seconds.
func Now() int64 { return util.Now() }

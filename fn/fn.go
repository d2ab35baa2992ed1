package fn

import (
	"fmt"
	"maps"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// Func is the dynamic calling convention produced by the combinators in this
// package. Arguments are adapted to the wrapped function's arity (see
// [dispatch.Call]).
type Func func(args ...any) (any, error)

// Placeholder marks a bound argument of [Partial] that is filled at call
// time by the next leading call argument.
var Placeholder = placeholder{}

type placeholder struct{}

func (placeholder) String() string { return "_" }

// Kwargs carries keyword-style arguments. A function receives them as its
// last parameter, declared with type Kwargs.
type Kwargs map[string]any

// ─────────────────────────────────────────────────────────────────────────────
// Partial application
// ─────────────────────────────────────────────────────────────────────────────

// Partial fixes leading arguments of f. Bound arguments equal to
// [Placeholder] are filled left to right by the call arguments; the
// remaining call arguments are appended.
//
//	sub := func(a, b int) int { return b - a }
//	fn.Partial(sub, 5)(20)                   // → 15
//	fn.Partial(sub, fn.Placeholder, 20)(5)   // → 15
//
// A trailing [Kwargs] among the bound or call arguments is merged, call-time
// keys overriding bound ones, and passed to f as its last argument.
func Partial(f any, bound ...any) Func {
	boundArgs, boundKw := splitKwargs(bound)
	return func(args ...any) (any, error) {
		callArgs, callKw := splitKwargs(args)
		combined, err := fillPlaceholders(boundArgs, callArgs)
		if err != nil {
			return nil, err
		}
		if boundKw != nil || callKw != nil {
			merged := make(Kwargs, len(boundKw)+len(callKw))
			maps.Copy(merged, boundKw)
			maps.Copy(merged, callKw)
			combined = append(combined, merged)
		}
		return dispatch.Call(f, combined...)
	}
}

func splitKwargs(args []any) ([]any, Kwargs) {
	if n := len(args); n > 0 {
		if kw, ok := args[n-1].(Kwargs); ok {
			return args[:n-1], kw
		}
	}
	return args, nil
}

func fillPlaceholders(bound, args []any) ([]any, error) {
	out := make([]any, 0, len(bound)+len(args))
	for i, b := range bound {
		if b != Placeholder {
			out = append(out, b)
			continue
		}
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: no argument for placeholder at position %d", dispatch.ErrInvalidArgument, i)
		}
		out = append(out, args[0])
		args = args[1:]
	}
	return append(out, args...), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Adapters
// ─────────────────────────────────────────────────────────────────────────────

// Wrap returns a function calling wrapper(f, args...). The wrapper decides
// whether and how to call f.
func Wrap(f, wrapper any) Func {
	return func(args ...any) (any, error) {
		return dispatch.Call(wrapper, append([]any{f}, args...)...)
	}
}

// Negate calls pred with args and returns the negation of the result's
// truthiness. A non-function pred is negated as a value.
func Negate(pred any, args ...any) (bool, error) {
	if n, _ := dispatch.Arity(pred); n < 0 {
		return dispatch.IsFalsy(pred), nil
	}
	r, err := dispatch.Call(pred, args...)
	if err != nil {
		return false, err
	}
	return dispatch.IsFalsy(r), nil
}

// Not returns the negation of a typed predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// Compose returns x -> f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(x A) C { return f(g(x)) }
}

// ComposeAll composes any number of functions right to left: the last one
// receives the call arguments and every preceding one receives the result
// of its successor.
//
//	greet := func(name string) string { return "hi: " + name }
//	exclaim := func(s string) string { return strings.ToUpper(s) + "!" }
//	fn.ComposeAll(greet, exclaim)("moe") // → "hi: MOE!"
func ComposeAll(fns ...any) Func {
	return func(args ...any) (any, error) {
		if len(fns) == 0 {
			return nil, fmt.Errorf("%w: compose needs at least one function", dispatch.ErrInvalidArgument)
		}
		next, err := dispatch.Call(fns[len(fns)-1], args...)
		if err != nil {
			return nil, err
		}
		for i := len(fns) - 2; i >= 0; i-- {
			if next, err = dispatch.Call(fns[i], next); err != nil {
				return nil, err
			}
		}
		return next, nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Function utilities
// ─────────────────────────────────────────────────────────────────────────────

// Identity returns v.
func Identity[T any](v T) T { return v }

// Constant returns a function that ignores its arguments and returns v.
func Constant[T any](v T) func(...any) T {
	return func(...any) T { return v }
}

// Noop ignores its arguments.
func Noop(...any) {}

// Times calls f with 0..n-1 and collects the results. A non-positive n
// yields an empty slice.
func Times[R any](n int, f func(int) R) []R {
	out := make([]R, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, f(i))
	}
	return out
}

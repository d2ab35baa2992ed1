// Package is classifies dynamic values. Every predicate accepts any value,
// nil included, and never panics.
package is

import (
	"math"
	"reflect"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// Function reports whether v is a non-nil function value.
func Function(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// Callable reports whether v can be invoked through [dispatch.Call]: a
// function, or a value with a Call method such as the limiters of package
// fn.
func Callable(v any) bool {
	n, _ := dispatch.Arity(v)
	return n >= 0
}

// String reports whether v is a string, named string types included.
func String(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.String
}

// Number reports whether v is an integer or floating-point value. Booleans
// are not numbers.
func Number(v any) bool {
	_, ok := dispatch.AsFloat(v)
	return ok
}

// Finite reports whether v is a number that is neither infinite nor NaN.
func Finite(v any) bool {
	f, ok := dispatch.AsFloat(v)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// NaN reports whether v is a floating-point NaN.
func NaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// Boolean reports whether v is a bool.
func Boolean(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

// Array reports whether v is a mutable sequence: a slice or array that is
// not a [dispatch.Tuple].
func Array(v any) bool {
	return dispatch.KindOf(v) == dispatch.KindSequence
}

// Tuple reports whether v is a [dispatch.Tuple].
func Tuple(v any) bool {
	return dispatch.IsTuple(v)
}

// Object reports whether v is a map.
func Object(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Map
}

// Empty reports whether v has no elements. Strings, slices, arrays, maps and
// channels are empty at length zero; nil is empty; any other value is not.
func Empty(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// Equal reports structural equality (see [dispatch.Equal]).
func Equal(a, b any) bool {
	return dispatch.Equal(a, b)
}

// Error reports whether v implements error.
func Error(v any) bool {
	_, ok := v.(error)
	return ok
}

// None reports whether v is nil or a nil pointer, map, slice, function,
// channel or interface.
func None(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Falsy reports whether v is nil, false, "", numeric zero or NaN.
func Falsy(v any) bool {
	return dispatch.IsFalsy(v)
}

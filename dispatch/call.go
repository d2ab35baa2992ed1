package dispatch

import (
	"fmt"
	"reflect"
)

var (
	anyType   = reflect.TypeOf((*any)(nil)).Elem()
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// callMethod is the method name that makes a non-function value callable.
const callMethod = "Call"

// Call invokes f, adapting args to its declared arity: surplus trailing
// arguments are dropped, nil arguments become the zero value of the
// parameter, and variadic functions receive everything. f is a function or
// a value with a Call method, such as the limiters of package fn.
// A trailing error result is returned as the error; other results after the
// first are discarded.
func Call(f any, args ...any) (any, error) {
	fv, ok := funcValue(f)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not callable", ErrTypeMismatch, f)
	}
	return callValue(fv, args)
}

// Arity returns the number of fixed parameters f declares and whether it is
// variadic. For a value with a Call method the method's signature counts.
// Values that are not callable report -1.
func Arity(f any) (int, bool) {
	fv, ok := funcValue(f)
	if !ok {
		return -1, false
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return ft.NumIn() - 1, true
	}
	return ft.NumIn(), false
}

// funcValue returns f itself when it is a non-nil function, or its bound
// Call method.
func funcValue(f any) (reflect.Value, bool) {
	fv := reflect.ValueOf(f)
	switch fv.Kind() {
	case reflect.Invalid:
		return fv, false
	case reflect.Func:
		return fv, !fv.IsNil()
	case reflect.Pointer, reflect.Interface:
		if fv.IsNil() {
			return reflect.Value{}, false
		}
	}
	m := fv.MethodByName(callMethod)
	return m, m.IsValid()
}

func callValue(fv reflect.Value, args []any) (any, error) {
	ft := fv.Type()
	n := ft.NumIn()
	fixed := n
	if ft.IsVariadic() {
		fixed = n - 1
	} else if len(args) > n {
		args = args[:n]
	}
	if len(args) < fixed {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrTypeMismatch, ft, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := variadicParam(ft, i, fixed)
		av, err := argValue(a, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = av
	}
	return results(ft, fv.Call(in))
}

func variadicParam(ft reflect.Type, i, fixed int) reflect.Type {
	if ft.IsVariadic() && i >= fixed {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}

func argValue(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(pt), nil
	}
	av := reflect.ValueOf(a)
	if !av.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%w: cannot use %T as %s", ErrTypeMismatch, a, pt)
	}
	return av, nil
}

func results(ft reflect.Type, out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	last := len(out) - 1
	if ft.Out(last) == errorType {
		if err, _ := out[last].Interface().(error); err != nil {
			return nil, err
		}
		if last == 0 {
			return nil, nil
		}
	}
	return out[0].Interface(), nil
}

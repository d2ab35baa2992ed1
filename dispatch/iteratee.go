package dispatch

import (
	"fmt"
	"reflect"
)

type iterateeKind uint8

const (
	identityIteratee iterateeKind = iota
	keyIteratee
	pathIteratee
	fnIteratee
)

// Iteratee is a caller-supplied per-element transform or predicate,
// resolved once into one of three forms: a key projection, a dot-notation
// path projection, or a function. The zero value is the identity.
//
// Functions are invoked with as many leading arguments as they declare, so
// func(v), func(v, i) and func(v, i, list) all work with every operation.
// When a context receiver is bound it is passed before those arguments.
type Iteratee struct {
	kind  iterateeKind
	key   any
	path  string
	fn    reflect.Value
	ctx   any
	bound bool
}

// Identity returns the iteratee that yields its element unchanged.
func Identity() Iteratee { return Iteratee{} }

// Key returns an iteratee projecting element[k].
func Key(k any) Iteratee { return Iteratee{kind: keyIteratee, key: k} }

// Path returns an iteratee projecting a dot-notation path such as
// "address.city" or "tags.0".
func Path(dotted string) Iteratee { return Iteratee{kind: pathIteratee, path: dotted} }

// Fn returns an iteratee calling f, a function or a value with a Call
// method. Invoking it fails with ErrTypeMismatch when f is neither.
func Fn(f any) Iteratee {
	fv, _ := funcValue(f)
	return Iteratee{kind: fnIteratee, fn: fv}
}

// Resolve normalizes the callable-or-key union accepted throughout the
// library: nil is the identity, a string is a key projection, an Iteratee
// is returned as is and a callable is wrapped with [Fn].
func Resolve(fnOrKey any) (Iteratee, error) {
	switch f := fnOrKey.(type) {
	case nil:
		return Identity(), nil
	case Iteratee:
		return f, nil
	case string:
		return Key(f), nil
	}
	fv, ok := funcValue(fnOrKey)
	if !ok {
		return Iteratee{}, fmt.Errorf("%w: %T is neither a function nor a key", ErrTypeMismatch, fnOrKey)
	}
	return Iteratee{kind: fnIteratee, fn: fv}, nil
}

// WithContext binds ctx as the implicit first argument of every function
// invocation. A nil ctx leaves the iteratee unbound.
func (it Iteratee) WithContext(ctx any) Iteratee {
	it.ctx, it.bound = ctx, ctx != nil
	return it
}

// IsProjection reports whether the iteratee is a key or path projection.
func (it Iteratee) IsProjection() bool {
	return it.kind == keyIteratee || it.kind == pathIteratee
}

// Invoke1 applies the iteratee to a single value.
func (it Iteratee) Invoke1(value any) (any, error) {
	if it.kind != fnIteratee {
		return it.project(value)
	}
	return it.call(value)
}

// Invoke3 applies the iteratee with the three-argument convention.
func (it Iteratee) Invoke3(value, position, container any) (any, error) {
	if it.kind != fnIteratee {
		return it.project(value)
	}
	return it.call(value, position, container)
}

// Invoke4 applies a reduce-family iteratee. Projections are rejected.
func (it Iteratee) Invoke4(memo, value, position, container any) (any, error) {
	if it.kind != fnIteratee {
		return nil, fmt.Errorf("%w: reduce requires a function iteratee", ErrTypeMismatch)
	}
	return it.call(memo, value, position, container)
}

// Test applies the iteratee as a predicate and reports its truthiness.
func (it Iteratee) Test(value any) (bool, error) {
	r, err := it.Invoke1(value)
	if err != nil {
		return false, err
	}
	return Truthy(r), nil
}

func (it Iteratee) project(value any) (any, error) {
	switch it.kind {
	case keyIteratee:
		return Lookup(value, it.key)
	case pathIteratee:
		return LookupPath(value, it.path)
	}
	return value, nil
}

func (it Iteratee) call(args ...any) (any, error) {
	if it.fn.Kind() != reflect.Func || it.fn.IsNil() {
		return nil, fmt.Errorf("%w: iteratee is not callable", ErrTypeMismatch)
	}
	if it.bound {
		return callValue(it.fn, append([]any{it.ctx}, args...))
	}
	switch f := it.fn.Interface().(type) {
	case func(any) any:
		return f(args[0]), nil
	case func(any) bool:
		return f(args[0]), nil
	case func(any, any, any) any:
		if len(args) == 3 {
			return f(args[0], args[1], args[2]), nil
		}
	}
	return callValue(it.fn, args)
}

// Invoke1 resolves fnOrKey, binds context and applies it to value.
func Invoke1(fnOrKey, context, value any) (any, error) {
	it, err := Resolve(fnOrKey)
	if err != nil {
		return nil, err
	}
	return it.WithContext(context).Invoke1(value)
}

// Invoke3 is the three-argument form of [Invoke1].
func Invoke3(fnOrKey, context, value, position, container any) (any, error) {
	it, err := Resolve(fnOrKey)
	if err != nil {
		return nil, err
	}
	return it.WithContext(context).Invoke3(value, position, container)
}

// Invoke4 is the reduce-family form of [Invoke1].
func Invoke4(fnOrKey, context, memo, value, position, container any) (any, error) {
	it, err := Resolve(fnOrKey)
	if err != nil {
		return nil, err
	}
	return it.WithContext(context).Invoke4(memo, value, position, container)
}

// Package dispatch is the core every operation of the module is built on.
//
// It decides whether a value is an ordered sequence, a key-value mapping or
// a position-less iterable ([KindOf], [Walk]), and it invokes caller
// iteratees uniformly through [Iteratee]: a key projection, a dot-notation
// path projection or a function of any arity, optionally bound to a context
// receiver.
//
//	it, _ := dispatch.Resolve("name")            // key projection
//	it, _ = dispatch.Resolve(func(v, i any) any { // function, arity 2
//	    return i
//	})
//	it = dispatch.Path("address.city").WithContext(nil)
//
// The package also defines the error kinds shared by the module, structural
// equality ([Equal], [Set]), dynamic ordering ([Compare]) and the closed
// falsy-value predicate used by compact ([IsFalsy]).
package dispatch

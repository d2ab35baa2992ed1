// Package fn provides function combinators: partial application with
// placeholders, call-count limiters (Before, After, Once), wrapping,
// negation and composition, plus small function utilities.
//
// Combinators accept functions of any signature and produce a [Func]; call
// arguments are adapted to the wrapped function's declared arity, and a
// trailing error result of the wrapped function is returned as the error.
// Typed helpers (Compose, Not, Identity, Constant, Times) are provided where
// the signature is known at compile time.
package fn

// Package underscore is the dynamic face of the library: every operation
// accepts values of any type and decides at run time whether it is a
// sequence (slice, array or [dispatch.Tuple]), a mapping (any map) or a
// generic iterable (iter.Seq[any]).
//
// # Iteratees
//
// Operations that take an iteratee or predicate accept:
//
//   - nil, the identity;
//   - a string, projecting that key out of every element;
//   - a [dispatch.Iteratee], such as dispatch.Path("address.city");
//   - any function. It receives as many of (value, position, list) as it
//     declares, so func(n int) bool and func(v any, i int, list []int) any
//     both work.
//
// An optional trailing context is passed as the function's first argument:
//
//	underscore.Filter(nums, func(limit, n int) bool { return n < limit }, 10)
//
// # Results
//
// Selections (Filter, Reject, Where, First, Rest, Uniq, ...) keep the
// input's slice or map type. Newly produced sequences are []any.
//
// # Chaining
//
// [Chain] wraps a value and forwards named operations to it until
// [Wrapper.Value] materializes the result:
//
//	underscore.Chain(stooges).SortBy("age").Map(underscore.Property("name")).First().Value()
//
// Operations are looked up in a [Registry], which can be extended with
// [Register] or replaced per chain with [WithOperations].
//
// For statically typed code prefer packages arr, obj and fn.
package underscore

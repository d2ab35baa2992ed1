package underscore

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// Operation is the uniform signature of a registered operation. value is
// the primary argument (the chained value, when called through a
// [Wrapper]) and args are the remaining arguments in their usual order.
type Operation func(value any, args ...any) (any, error)

// Registry is a goroutine-safe table mapping operation names to
// implementations. [NewRegistry] returns one holding every operation of
// this package under its camelCase name plus the aliases.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// NewRegistry returns a registry preloaded with the built-in operations.
func NewRegistry() *Registry {
	r := &Registry{ops: make(map[string]Operation, len(builtins))}
	maps.Copy(r.ops, builtins)
	return r
}

// Register adds op under name, replacing any operation already registered
// under that name.
//
// Example – register an operation that keeps only even integers:
//
//	r.Register("evens", func(v any, _ ...any) (any, error) {
//	    return underscore.Filter(v, func(n int) bool { return n%2 == 0 })
//	})
//	underscore.Chain(nums, underscore.WithOperations(r)).Call("evens")
func (r *Registry) Register(name string, op Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[name] = op
}

// Has reports whether an operation is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	return op, ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Call invokes the operation registered under name. An unknown name fails
// with ErrUnknownOperation.
func (r *Registry) Call(name string, value any, args ...any) (any, error) {
	op, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op(value, args...)
}

// defaultRegistry backs [Register], [Invoke] and chains built without
// [WithOperations].
var defaultRegistry *Registry

// Register adds op to the package registry, making it available to every
// chain that does not use its own registry.
func Register(name string, op Operation) { defaultRegistry.Register(name, op) }

// Invoke calls a package-registry operation by name.
func Invoke(name string, value any, args ...any) (any, error) {
	return defaultRegistry.Call(name, value, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in table
// ─────────────────────────────────────────────────────────────────────────────

var builtins = map[string]Operation{
	// collections
	"each":      withIteratee(Each),
	"map":       withIteratee(Map),
	"reduce":    func(v any, args ...any) (any, error) { return Reduce(v, arg(args, 0), tail(args, 1)...) },
	"find":      findOp(Find),
	"filter":    withIteratee(Filter),
	"reject":    withIteratee(Reject),
	"every":     withIteratee(Every),
	"some":      withIteratee(Some),
	"contains":  func(v any, args ...any) (any, error) { return Contains(v, arg(args, 0)) },
	"where":     func(v any, args ...any) (any, error) { return Where(v, arg(args, 0)) },
	"findWhere": findOp(findWhere),
	"pluck":     func(v any, args ...any) (any, error) { return Pluck(v, arg(args, 0)) },
	"max":       withIteratee(Max),
	"min":       withIteratee(Min),
	"sortBy":    withIteratee(SortBy),
	"groupBy":   withIteratee(GroupBy),
	"indexBy":   withIteratee(IndexBy),
	"countBy":   withIteratee(CountBy),
	"shuffle":   unary(Shuffle),
	"sample":    withInts(Sample),
	"partition": partitionOp,
	"size":      unary(Size),
	"toArray":   unary(ToArray),

	// arrays
	"first":         withInts(First),
	"initial":       withInts(Initial),
	"last":          withInts(Last),
	"rest":          withInts(Rest),
	"compact":       unary(Compact),
	"flatten":       withBool(Flatten),
	"without":       variadic(Without),
	"union":         spread(Union),
	"intersection":  variadic(Intersection),
	"difference":    variadic(Difference),
	"uniq":          uniqOp,
	"zip":           spread(Zip),
	"object":        variadic(Object),
	"indexOf":       indexOp(IndexOf),
	"lastIndexOf":   indexOp(LastIndexOf),
	"sortedIndex":   sortedIndexOp,
	"findIndex":     findIndexOp(FindIndex),
	"findLastIndex": findIndexOp(FindLastIndex),
	"range":         spread(Range),

	// objects
	"keys":       unary(Keys),
	"values":     unary(Values),
	"mapObject":  withIteratee(MapObject),
	"pairs":      withBool(Pairs),
	"invert":     unary(Invert),
	"findKey":    findOp(FindKey),
	"extend":     variadic(Extend),
	"extendOwn":  variadic(ExtendOwn),
	"defaults":   variadic(Defaults),
	"pick":       variadic(Pick),
	"omit":       variadic(Omit),
	"clone":      withBool(Clone),
	"has":        func(v any, args ...any) (any, error) { return Has(v, arg(args, 0)) },
	"property":   func(v any, _ ...any) (any, error) { return Property(v), nil },
	"propertyOf": func(v any, _ ...any) (any, error) { return PropertyOf(v), nil },
	"matcher":    func(v any, _ ...any) (any, error) { return Matcher(v) },
	"isMatch":    func(v any, args ...any) (any, error) { return IsMatch(v, arg(args, 0)) },

	// functions
	"partial": func(v any, args ...any) (any, error) { return Partial(v, args...), nil },
	"before":  countedOp(func(n int, f any) any { return Before(n, f) }),
	"after":   countedOp(func(n int, f any) any { return After(n, f) }),
	"once":    func(v any, _ ...any) (any, error) { return Once(v), nil },
	"wrap":    func(v any, args ...any) (any, error) { return Wrap(v, arg(args, 0)), nil },
	"negate":  func(v any, args ...any) (any, error) { return Negate(v, args...) },
	"compose": func(v any, args ...any) (any, error) { return Compose(append([]any{v}, args...)...), nil },

	// predicates
	"isFunction": predicate(IsFunction),
	"isCallable": predicate(IsCallable),
	"isString":   predicate(IsString),
	"isNumber":   predicate(IsNumber),
	"isFinite":   predicate(IsFinite),
	"isNaN":      predicate(IsNaN),
	"isBoolean":  predicate(IsBoolean),
	"isArray":    predicate(IsArray),
	"isTuple":    predicate(IsTuple),
	"isObject":   predicate(IsObject),
	"isEmpty":    predicate(IsEmpty),
	"isError":    predicate(IsError),
	"isNone":     predicate(IsNone),
	"isEqual":    func(v any, args ...any) (any, error) { return IsEqual(v, arg(args, 0)), nil },

	// utilities
	"identity": func(v any, _ ...any) (any, error) { return v, nil },
	"constant": func(v any, _ ...any) (any, error) { return Constant(v), nil },
	"noop":     func(any, ...any) (any, error) { return nil, nil },
	"times":    timesOp,
	"random": func(v any, args ...any) (any, error) {
		ints, err := intArgs(append([]any{v}, args...))
		if err != nil {
			return nil, opError("random", err)
		}
		return Random(ints[0], ints[1:]...)
	},
	"uniqueId": func(v any, _ ...any) (any, error) {
		prefix, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("uniqueId: %w: %v", ErrInvalidArgument, err)
		}
		return UniqueID(prefix)
	},
	"now": func(any, ...any) (any, error) { return Now(), nil },
}

func init() {
	for alias, name := range map[string]string{
		"forEach":       "each",
		"collect":       "map",
		"collectObject": "mapObject",
		"inject":        "reduce",
		"detect":        "find",
		"select":        "filter",
		"any":           "some",
		"include":       "contains",
		"unique":        "uniq",
		"attribute":     "property",
		"attributeOf":   "propertyOf",
	} {
		builtins[alias] = builtins[name]
	}
	defaultRegistry = NewRegistry()
}

// ─────────────────────────────────────────────────────────────────────────────
// Adapters
// ─────────────────────────────────────────────────────────────────────────────

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func tail(args []any, i int) []any {
	if i < len(args) {
		return args[i:]
	}
	return nil
}

func intArgs(args []any) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := dispatch.AsInt(a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func result[R any](r R, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

func withIteratee[R any](f func(any, any, ...any) (R, error)) Operation {
	return func(v any, args ...any) (any, error) {
		return result(f(v, arg(args, 0), tail(args, 1)...))
	}
}

func unary[R any](f func(any) (R, error)) Operation {
	return func(v any, _ ...any) (any, error) { return result(f(v)) }
}

func variadic[R any](f func(any, ...any) (R, error)) Operation {
	return func(v any, args ...any) (any, error) { return result(f(v, args...)) }
}

// spread passes the chained value as the first of f's variadic arguments.
func spread[R any](f func(...any) (R, error)) Operation {
	return func(v any, args ...any) (any, error) {
		return result(f(append([]any{v}, args...)...))
	}
}

func withInts[R any](f func(any, ...int) (R, error)) Operation {
	return func(v any, args ...any) (any, error) {
		n, err := intArgs(args)
		if err != nil {
			return nil, err
		}
		return result(f(v, n...))
	}
}

func withBool[R any](f func(any, ...bool) (R, error)) Operation {
	return func(v any, args ...any) (any, error) {
		if len(args) == 0 || args[0] == nil {
			return result(f(v))
		}
		b, err := cast.ToBoolE(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return result(f(v, b))
	}
}

func predicate(f func(any) bool) Operation {
	return func(v any, _ ...any) (any, error) { return f(v), nil }
}

// findOp drops the found flag: a miss yields nil.
func findOp(f func(any, any, ...any) (any, bool, error)) Operation {
	return func(v any, args ...any) (any, error) {
		r, _, err := f(v, arg(args, 0), tail(args, 1)...)
		return r, err
	}
}

func findWhere(list, properties any, _ ...any) (any, bool, error) {
	return FindWhere(list, properties)
}

func indexOp(f func(any, any, ...int) (int, error)) Operation {
	return func(v any, args ...any) (any, error) {
		bounds, err := intArgs(tail(args, 1))
		if err != nil {
			return nil, err
		}
		return result(f(v, arg(args, 0), bounds...))
	}
}

func findIndexOp(f func(any, any, any, ...int) (int, error)) Operation {
	return func(v any, args ...any) (any, error) {
		bounds, err := intArgs(tail(args, 2))
		if err != nil {
			return nil, err
		}
		return result(f(v, arg(args, 0), arg(args, 1), bounds...))
	}
}

func countedOp(f func(int, any) any) Operation {
	return func(v any, args ...any) (any, error) {
		n, err := dispatch.AsInt(v)
		if err != nil {
			return nil, err
		}
		return f(n, arg(args, 0)), nil
	}
}

// partitionOp returns both halves as one pair, a Tuple when the input is
// one.
func partitionOp(v any, args ...any) (any, error) {
	pass, fail, err := Partition(v, arg(args, 0), tail(args, 1)...)
	if err != nil {
		return nil, err
	}
	if dispatch.IsTuple(v) {
		return dispatch.Tuple[any]{pass, fail}, nil
	}
	return []any{pass, fail}, nil
}

// uniqOp accepts an optional leading isSorted flag before the iteratee.
func uniqOp(v any, args ...any) (any, error) {
	if sorted, ok := arg(args, 0).(bool); ok {
		if sorted {
			return UniqSorted(v, arg(args, 1), tail(args, 2)...)
		}
		args = args[1:]
	}
	return Uniq(v, arg(args, 0), tail(args, 1)...)
}

func sortedIndexOp(v any, args ...any) (any, error) {
	return SortedIndex(v, arg(args, 0), arg(args, 1), tail(args, 2)...)
}

func timesOp(v any, args ...any) (any, error) {
	n, err := dispatch.AsInt(v)
	if err != nil {
		return nil, opError("times", err)
	}
	return result(Times(n, arg(args, 0), tail(args, 1)...))
}

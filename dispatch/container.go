package dispatch

import (
	"fmt"
	"iter"
	"reflect"
)

// Kind classifies a value by the container discipline operations apply to it.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindSequence is any slice or array that is not a Tuple.
	KindSequence
	// KindTuple is an instantiation of [Tuple].
	KindTuple
	// KindMapping is any map.
	KindMapping
	// KindIterable is an iter.Seq[any]; it has no positions.
	KindIterable
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindTuple:
		return "tuple"
	case KindMapping:
		return "mapping"
	case KindIterable:
		return "iterable"
	}
	return "unknown"
}

// Tuple is the immutable sequence representation. Operations that select
// elements from a Tuple return a Tuple of the same element type.
type Tuple[T any] []T

func (Tuple[T]) tuple() {}

type tupleMarker interface{ tuple() }

var tupleMarkerType = reflect.TypeOf((*tupleMarker)(nil)).Elem()

// IsTuple reports whether v is an instantiation of [Tuple].
func IsTuple(v any) bool {
	_, ok := v.(tupleMarker)
	return ok
}

// KindOf classifies v.
func KindOf(v any) Kind {
	if _, ok := AsIter(v); ok {
		return KindIterable
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		if IsTuple(v) {
			return KindTuple
		}
		return KindSequence
	case reflect.Map:
		return KindMapping
	}
	return KindUnknown
}

// AsIter returns v as an iterator when it is a generic iterable.
func AsIter(v any) (iter.Seq[any], bool) {
	switch it := v.(type) {
	case iter.Seq[any]:
		return it, it != nil
	case func(func(any) bool):
		return it, it != nil
	}
	return nil, false
}

// Seq is a read-only view over any slice, array or Tuple value.
type Seq struct {
	v reflect.Value
}

// AsSeq wraps v, which must be a slice, an array or a Tuple.
func AsSeq(v any) (Seq, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return Seq{v: rv}, nil
	}
	return Seq{}, fmt.Errorf("%w: %T is not a sequence", ErrTypeMismatch, v)
}

// Len returns the number of elements.
func (s Seq) Len() int { return s.v.Len() }

// At returns the element at index i.
func (s Seq) At(i int) any { return s.v.Index(i).Interface() }

// Value returns the wrapped container.
func (s Seq) Value() any { return s.v.Interface() }

// IsTuple reports whether the wrapped container is a Tuple.
func (s Seq) IsTuple() bool { return s.v.Type().Implements(tupleMarkerType) }

// Items copies every element into a []any.
func (s Seq) Items() []any {
	out := make([]any, s.v.Len())
	for i := range out {
		out[i] = s.v.Index(i).Interface()
	}
	return out
}

func (s Seq) sliceType() reflect.Type {
	if s.v.Kind() == reflect.Array {
		return reflect.SliceOf(s.v.Type().Elem())
	}
	return s.v.Type()
}

// Pick returns a new slice of the wrapped type holding the elements at the
// given indices, in that order. Arrays produce a slice of their element type.
func (s Seq) Pick(indices []int) any {
	out := reflect.MakeSlice(s.sliceType(), len(indices), len(indices))
	for j, i := range indices {
		out.Index(j).Set(s.v.Index(i))
	}
	return out.Interface()
}

// Slice returns a copy of the elements in [lo, hi) as a new slice of the
// wrapped type.
func (s Seq) Slice(lo, hi int) any {
	if hi < lo {
		hi = lo
	}
	out := reflect.MakeSlice(s.sliceType(), hi-lo, hi-lo)
	reflect.Copy(out, s.v.Slice(lo, hi))
	return out.Interface()
}

// Map is a view over any map value.
type Map struct {
	v reflect.Value
}

// AsMap wraps v, which must be a map.
func AsMap(v any) (Map, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return Map{}, fmt.Errorf("%w: %T is not a mapping", ErrTypeMismatch, v)
	}
	return Map{v: rv}, nil
}

// Len returns the number of entries.
func (m Map) Len() int { return m.v.Len() }

// Value returns the wrapped map.
func (m Map) Value() any { return m.v.Interface() }

// Keys returns the keys in the map's own iteration order.
func (m Map) Keys() []any {
	keys := make([]any, 0, m.v.Len())
	it := m.v.MapRange()
	for it.Next() {
		keys = append(keys, it.Key().Interface())
	}
	return keys
}

// Range calls fn for every entry until fn returns false.
func (m Map) Range(fn func(key, value any) bool) {
	it := m.v.MapRange()
	for it.Next() {
		if !fn(it.Key().Interface(), it.Value().Interface()) {
			return
		}
	}
}

// Get returns the value stored under key. Keys that cannot be stored in the
// map are reported as absent.
func (m Map) Get(key any) (any, bool) {
	kv, err := argValue(key, m.v.Type().Key())
	if err != nil {
		return nil, false
	}
	v := m.v.MapIndex(kv)
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

// Has reports whether key is present.
func (m Map) Has(key any) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key, mutating the wrapped map.
func (m Map) Set(key, value any) error {
	if m.v.IsNil() {
		return fmt.Errorf("%w: assignment to nil %s", ErrInvalidArgument, m.v.Type())
	}
	kv, err := argValue(key, m.v.Type().Key())
	if err != nil {
		return err
	}
	vv, err := argValue(value, m.v.Type().Elem())
	if err != nil {
		return err
	}
	m.v.SetMapIndex(kv, vv)
	return nil
}

// Empty returns a new, empty map of the wrapped type.
func (m Map) Empty() Map {
	return Map{v: reflect.MakeMapWithSize(m.v.Type(), m.v.Len())}
}

// EmptyOf returns a new, empty map with the wrapped key type and values of
// type any.
func (m Map) EmptyOf() Map {
	t := reflect.MapOf(m.v.Type().Key(), anyType)
	return Map{v: reflect.MakeMapWithSize(t, m.v.Len())}
}

// Walk visits every element of a sequence, mapping or generic iterable with
// the three-argument convention: the element, its position (index for
// sequences, key for mappings, nil for iterables) and its owner (nil for
// iterables). Walk stops when visit returns false or an error.
func Walk(container any, visit func(value, position, owner any) (bool, error)) (Kind, error) {
	if it, ok := AsIter(container); ok {
		var err error
		for v := range it {
			var more bool
			if more, err = visit(v, nil, nil); err != nil || !more {
				break
			}
		}
		return KindIterable, err
	}
	switch kind := KindOf(container); kind {
	case KindSequence, KindTuple:
		s, _ := AsSeq(container)
		for i := 0; i < s.Len(); i++ {
			more, err := visit(s.At(i), i, container)
			if err != nil || !more {
				return kind, err
			}
		}
		return kind, nil
	case KindMapping:
		m, _ := AsMap(container)
		var err error
		m.Range(func(k, v any) bool {
			var more bool
			more, err = visit(v, k, container)
			return err == nil && more
		})
		return kind, err
	}
	return KindUnknown, fmt.Errorf("%w: %T is not iterable", ErrTypeMismatch, container)
}

package dispatch

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/hashstructure/v2"
)

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports structural equality: nested sequences, mappings and structs
// (unexported fields included) are compared element by element, types must
// match, and NaN is never equal to anything.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

// Set is a membership index over arbitrary, possibly unhashable values
// compared with [Equal]. Values are bucketed by a structural hash. Values
// that cannot be hashed share a linearly scanned bucket: functions,
// channels, types with their own Equal method, and composites holding
// floats. A top-level zero float hashes as +0.
//
// A Set is not safe for concurrent use.
type Set struct {
	hasher  *xxhash.Digest
	buckets map[uint64][]any
	loose   []any
	size    int
}

// NewSet returns a Set holding values.
func NewSet(values ...any) *Set {
	s := &Set{
		hasher:  xxhash.New(),
		buckets: make(map[uint64][]any, len(values)),
	}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Len returns the number of distinct values held.
func (s *Set) Len() int { return s.size }

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v any) bool {
	h, ok := s.hash(v)
	if !ok {
		if containsEqual(s.loose, v) {
			return false
		}
		s.loose = append(s.loose, v)
		s.size++
		return true
	}
	if containsEqual(s.buckets[h], v) {
		return false
	}
	s.buckets[h] = append(s.buckets[h], v)
	s.size++
	return true
}

// Contains reports whether a value equal to v has been added.
func (s *Set) Contains(v any) bool {
	h, ok := s.hash(v)
	if !ok {
		return containsEqual(s.loose, v)
	}
	return containsEqual(s.buckets[h], v)
}

const equalerMethod = "Equal"

func (s *Set) hash(v any) (uint64, bool) {
	if t := reflect.TypeOf(v); t != nil {
		if _, custom := t.MethodByName(equalerMethod); custom {
			return 0, false
		}
		switch rv := reflect.ValueOf(v); t.Kind() {
		case reflect.Float32, reflect.Float64:
			if rv.Float() == 0 {
				v = reflect.Zero(t).Interface()
			}
		default:
			if holdsFloat(rv, map[uintptr]bool{}) {
				return 0, false
			}
		}
	}
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, &hashstructure.HashOptions{Hasher: s.hasher})
	if err != nil {
		return 0, false
	}
	return h, true
}

// holdsFloat reports whether rv is or contains a float or complex number.
// Those hash by bit pattern, so -0 and +0 land in different buckets while
// Equal treats them as the same value.
func holdsFloat(rv reflect.Value, seen map[uintptr]bool) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Interface:
		return !rv.IsNil() && holdsFloat(rv.Elem(), seen)
	case reflect.Pointer:
		if rv.IsNil() || seen[rv.Pointer()] {
			return false
		}
		seen[rv.Pointer()] = true
		return holdsFloat(rv.Elem(), seen)
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if holdsFloat(rv.Index(i), seen) {
				return true
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if holdsFloat(iter.Key(), seen) || holdsFloat(iter.Value(), seen) {
				return true
			}
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if holdsFloat(rv.Field(i), seen) {
				return true
			}
		}
	}
	return false
}

func containsEqual(values []any, v any) bool {
	for _, candidate := range values {
		if Equal(candidate, v) {
			return true
		}
	}
	return false
}

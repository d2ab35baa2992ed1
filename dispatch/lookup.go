package dispatch

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Lookup returns container[key]. Maps are indexed by key, slices and arrays
// by an integer position (negative positions count from the end) and
// structs by exported field name. Anything else, and any absent key, fails
// with ErrKeyLookup.
func Lookup(container, key any) (any, error) {
	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: %v in nil %s", ErrKeyLookup, key, rv.Type())
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if v, ok := (Map{v: rv}).Get(key); ok {
			return v, nil
		}
	case reflect.Slice, reflect.Array:
		kv := reflect.ValueOf(key)
		if kv.CanInt() {
			i := int(kv.Int())
			if i < 0 {
				i += rv.Len()
			}
			if i >= 0 && i < rv.Len() {
				return rv.Index(i).Interface(), nil
			}
		}
	case reflect.Struct:
		if name, ok := key.(string); ok {
			if f, found := rv.Type().FieldByName(name); found && f.IsExported() {
				return rv.FieldByIndex(f.Index).Interface(), nil
			}
		}
	case reflect.Invalid:
		return nil, fmt.Errorf("%w: %v in nil", ErrKeyLookup, key)
	}
	return nil, fmt.Errorf("%w: %v in %s", ErrKeyLookup, key, rv.Type())
}

// LookupPath walks a dot-notation path through nested maps, sequences and
// structs. Numeric segments address sequence positions.
//
//	LookupPath(m, "user.address.city")
//	LookupPath(m, "user.tags.0")
func LookupPath(container any, path string) (any, error) {
	current := container
	for _, seg := range strings.Split(path, ".") {
		var key any = seg
		switch KindOf(current) {
		case KindSequence, KindTuple:
			if n, err := strconv.Atoi(seg); err == nil {
				key = n
			}
		}
		v, err := Lookup(current, key)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", path, err)
		}
		current = v
	}
	return current, nil
}

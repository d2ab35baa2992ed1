package dispatch

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Compare orders two dynamic values: numbers of any kind numerically,
// strings lexically, booleans false before true, and sequences
// lexicographically element by element. Values of unrelated kinds fail with
// ErrTypeMismatch.
func Compare(a, b any) (int, error) {
	if x, ok := AsFloat(a); ok {
		if y, ok := AsFloat(b); ok {
			return cmp.Compare(x, y), nil
		}
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		return strings.Compare(ra.String(), rb.String()), nil
	case ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool:
		return cmp.Compare(boolRank(ra.Bool()), boolRank(rb.Bool())), nil
	}

	sa, errA := AsSeq(a)
	sb, errB := AsSeq(b)
	if errA == nil && errB == nil {
		for i := 0; i < sa.Len() && i < sb.Len(); i++ {
			c, err := Compare(sa.At(i), sb.At(i))
			if err != nil || c != 0 {
				return c, err
			}
		}
		return cmp.Compare(sa.Len(), sb.Len()), nil
	}
	return 0, fmt.Errorf("%w: cannot order %T and %T", ErrTypeMismatch, a, b)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AsFloat converts any integer or floating-point value, including named
// numeric types, to float64. Booleans, strings and everything else are
// rejected.
func AsFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// AsInt converts an integer argument. Integer kinds convert exactly and
// integral floats are accepted. Strings, booleans, fractional values and
// values outside the int range fail with ErrInvalidArgument.
func AsInt(v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := rv.Int(); n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n := rv.Uint(); n <= math.MaxInt {
			return int(n), nil
		}
	case reflect.Float32, reflect.Float64:
		// float64(math.MaxInt) rounds up to 2^63, hence the strict bound.
		if f := rv.Float(); f == math.Trunc(f) && f >= math.MinInt && f < math.MaxInt {
			return int(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %v (%T) is not an integer", ErrInvalidArgument, v, v)
}

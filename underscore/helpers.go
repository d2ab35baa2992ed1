package underscore

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// opError prefixes err with the operation name.
func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func optional(args []any) any {
	if len(args) > 0 {
		return args[0]
	}
	return nil
}

// resolve normalizes a callable-or-key and binds the optional context.
func resolve(op string, fnOrKey any, context []any) (dispatch.Iteratee, error) {
	it, err := dispatch.Resolve(fnOrKey)
	if err != nil {
		return it, opError(op, err)
	}
	return it.WithContext(optional(context)), nil
}

func sequence(op string, v any) (dispatch.Seq, error) {
	switch dispatch.KindOf(v) {
	case dispatch.KindSequence, dispatch.KindTuple:
		return dispatch.AsSeq(v)
	}
	return dispatch.Seq{}, fmt.Errorf("%s: %w: %T is not a sequence", op, dispatch.ErrTypeMismatch, v)
}

func mapping(op string, v any) (dispatch.Map, error) {
	m, err := dispatch.AsMap(v)
	if err != nil {
		return m, opError(op, err)
	}
	return m, nil
}

func walk(op string, list any, visit func(value, position, owner any) (bool, error)) (dispatch.Kind, error) {
	kind, err := dispatch.Walk(list, visit)
	return kind, opError(op, err)
}

// hashable reports whether v can be used as a key of a map[any]V.
func hashable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

func unhashable(op string, key any) error {
	return fmt.Errorf("%s: %w: key %v (%T) is not comparable", op, dispatch.ErrTypeMismatch, key, key)
}

// selection records which elements of a container an operation keeps and
// rebuilds a container of the same kind: sequences keep their slice type
// (Tuple included), mappings their map type, and iterables become []any.
type selection struct {
	src     any
	kind    dispatch.Kind
	indices []int
	keys    []any
	values  []any
}

func newSelection(src any) *selection {
	return &selection{src: src, kind: dispatch.KindOf(src)}
}

func (s *selection) add(value, position any) {
	switch s.kind {
	case dispatch.KindSequence, dispatch.KindTuple:
		s.indices = append(s.indices, position.(int))
	case dispatch.KindMapping:
		s.keys = append(s.keys, position)
	default:
		s.values = append(s.values, value)
	}
}

func (s *selection) result() (any, error) {
	switch s.kind {
	case dispatch.KindSequence, dispatch.KindTuple:
		seq, err := dispatch.AsSeq(s.src)
		if err != nil {
			return nil, err
		}
		return seq.Pick(s.indices), nil
	case dispatch.KindMapping:
		m, err := dispatch.AsMap(s.src)
		if err != nil {
			return nil, err
		}
		out := m.Empty()
		for _, k := range s.keys {
			v, _ := m.Get(k)
			if err := out.Set(k, v); err != nil {
				return nil, err
			}
		}
		return out.Value(), nil
	}
	if s.values == nil {
		return []any{}, nil
	}
	return s.values, nil
}

// indices returns [0, n).
func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

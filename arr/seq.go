package arr

import (
	"iter"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Generic iterables
//
// The helpers below accept any iter.Seq, traverse it once and materialize
// their results. Elements have no position, so callbacks take the value only.
// ─────────────────────────────────────────────────────────────────────────────

// EachSeq calls fn for every element of seq.
func EachSeq[T any](seq iter.Seq[T], fn func(T)) {
	for v := range seq {
		fn(v)
	}
}

// MapSeq applies fn to every element of seq.
func MapSeq[T, R any](seq iter.Seq[T], fn func(T) R) []R {
	out := []R{}
	for v := range seq {
		out = append(out, fn(v))
	}
	return out
}

// FilterSeq returns the elements of seq satisfying pred.
func FilterSeq[T any](seq iter.Seq[T], pred func(T) bool) []T {
	out := []T{}
	for v := range seq {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// RejectSeq returns the elements of seq not satisfying pred.
func RejectSeq[T any](seq iter.Seq[T], pred func(T) bool) []T {
	return FilterSeq(seq, func(v T) bool { return !pred(v) })
}

// FindSeq returns the first element of seq satisfying pred.
func FindSeq[T any](seq iter.Seq[T], pred func(T) bool) (T, bool) {
	for v := range seq {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// EverySeq reports whether every element of seq satisfies pred.
func EverySeq[T any](seq iter.Seq[T], pred func(T) bool) bool {
	pred = orTruthy(pred)
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// SomeSeq reports whether any element of seq satisfies pred.
func SomeSeq[T any](seq iter.Seq[T], pred func(T) bool) bool {
	pred = orTruthy(pred)
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// ToArray collects seq into a slice.
func ToArray[T any](seq iter.Seq[T]) []T {
	out := slices.Collect(seq)
	if out == nil {
		return []T{}
	}
	return out
}

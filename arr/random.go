package arr

import (
	"fmt"
	"math/rand/v2"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// Shuffle returns a uniformly shuffled copy of items (Fisher-Yates).
func Shuffle[S ~[]T, T any](items S) S {
	out := make(S, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns one element chosen uniformly at random.
// It fails with ErrInvalidArgument when items is empty.
func Sample[S ~[]T, T any](items S) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: sample from an empty sequence", dispatch.ErrInvalidArgument)
	}
	return items[rand.IntN(len(items))], nil
}

// SampleN returns n distinct positions of items chosen uniformly at random,
// in random order. It fails with ErrInvalidArgument when n is negative or
// larger than len(items).
func SampleN[S ~[]T, T any](items S, n int) (S, error) {
	if n < 0 || n > len(items) {
		return nil, fmt.Errorf("%w: sample size %d out of range [0, %d]", dispatch.ErrInvalidArgument, n, len(items))
	}
	out := make(S, n)
	for i, p := range rand.Perm(len(items))[:n] {
		out[i] = items[p]
	}
	return out, nil
}

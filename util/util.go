// Package util holds the non-function utilities: bounded random integers,
// unique identifiers and timestamps.
package util

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// Random returns a pseudo-random integer in [bound, upper], both inclusive.
// Without upper the range is [0, bound]. An empty range fails with
// ErrInvalidArgument. The source is not suitable for security purposes.
func Random(bound int, upper ...int) (int, error) {
	lo, hi := 0, bound
	if len(upper) > 0 {
		lo, hi = bound, upper[0]
	}
	if hi < lo {
		return 0, fmt.Errorf("%w: empty range [%d, %d]", dispatch.ErrInvalidArgument, lo, hi)
	}
	// The span is taken in uint64 so ranges wider than MaxInt do not overflow.
	span := uint64(hi) - uint64(lo)
	var off uint64
	if span == math.MaxUint64 {
		off = rand.Uint64()
	} else {
		off = rand.Uint64N(span + 1)
	}
	return int(uint64(lo) + off), nil
}

// UniqueID returns prefix followed by a time-based (version 1) UUID.
func UniqueID(prefix string) (string, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return "", fmt.Errorf("unique id: %w", err)
	}
	return prefix + id.String(), nil
}

// Now returns the current Unix time in whole seconds.
func Now() int64 {
	return time.Now().Unix()
}

package underscore

import (
	"errors"

	"github.com/hasbyte1/go-underscore/dispatch"
)

// Sentinel errors returned by this package. They are the same values as the
// ones in package dispatch, so errors.Is works with either name.
var (
	ErrTypeMismatch    = dispatch.ErrTypeMismatch
	ErrKeyLookup       = dispatch.ErrKeyLookup
	ErrEmptyReduction  = dispatch.ErrEmptyReduction
	ErrInvalidArgument = dispatch.ErrInvalidArgument
	ErrChainClosed     = dispatch.ErrChainClosed

	// ErrUnknownOperation is returned when a chain or registry call names an
	// operation that is not registered.
	ErrUnknownOperation = errors.New("underscore: unknown operation")
)

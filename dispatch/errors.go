package dispatch

import "errors"

// Sentinel errors shared by every package of the module.
// Callers match them with errors.Is; the concrete error usually wraps the
// sentinel with the offending operation or value.
var (
	// ErrTypeMismatch is returned when the primary argument does not follow
	// the container discipline an operation requires (for example a mapping
	// handed to an array-only operation), or when an iteratee cannot accept
	// the values it is invoked with.
	ErrTypeMismatch = errors.New("underscore: type mismatch")

	// ErrKeyLookup is returned by property-shorthand iteratees and direct
	// key access when the key is absent.
	ErrKeyLookup = errors.New("underscore: key not found")

	// ErrEmptyReduction is returned by reduce on an empty container when no
	// initial memo was supplied.
	ErrEmptyReduction = errors.New("underscore: reduce of empty container with no initial memo")

	// ErrInvalidArgument is returned for malformed optional arguments.
	ErrInvalidArgument = errors.New("underscore: invalid argument")

	// ErrChainClosed is returned when an operation is forwarded to a chain
	// wrapper whose value has already been materialized.
	ErrChainClosed = errors.New("underscore: chained value already retrieved")
)

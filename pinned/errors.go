package pinned

import "errors"

var (
	// ErrInvalidSize indicates a size spec that cannot be normalized: a
	// negative count, a zero-sized element type, or arithmetic that
	// overflows the address-space-representable range.
	ErrInvalidSize = errors.New("pinned: invalid size")

	// ErrCapacityExceeded indicates a request to hold more elements than
	// the max length fixed at construction. The ceiling is never raised
	// silently.
	ErrCapacityExceeded = errors.New("pinned: capacity exceeded")

	// ErrPointerElement indicates an element type that contains pointers
	// (including strings, slices, maps, channels, funcs and interfaces).
	// Vector memory lives outside the Go heap where the garbage collector
	// cannot see it, so pointer-bearing types are rejected outright.
	ErrPointerElement = errors.New("pinned: element type contains pointers")
)

package vm

import "errors"

var (
	// ErrOutOfAddressSpace indicates the OS could not reserve a contiguous
	// address range of the requested length.
	ErrOutOfAddressSpace = errors.New("vm: out of address space")

	// ErrOutOfMemory indicates the OS could not provide physical backing
	// for a commit request.
	ErrOutOfMemory = errors.New("vm: out of memory")

	// ErrReleased indicates an operation on a reservation whose range has
	// already been released (or moved away).
	ErrReleased = errors.New("vm: reservation released")

	// ErrBadRange indicates a commit or decommit request that falls outside
	// the reservation or is not page aligned.
	ErrBadRange = errors.New("vm: bad range")
)

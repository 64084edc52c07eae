package vm

import (
	"os"
	"sync"
)

// System is the virtual-memory capability. Reserve hands out address space
// with no physical backing; Commit and Decommit operate on page-aligned
// sub-slices of a reserved range; Release returns the whole range.
//
// Implementations must tolerate Commit being called for an already
// committed sub-range (re-committing a prefix is a no-op in effect).
// Release must be called at most once per reserved range; Reservation
// enforces that.
type System interface {
	// PageSize returns the commit granularity in bytes. Positive power of
	// two, constant for the process lifetime.
	PageSize() int

	// Reserve claims n bytes of contiguous address space. The returned
	// slice covers the full range but is inaccessible until committed.
	// Errors wrap ErrOutOfAddressSpace.
	Reserve(n int) ([]byte, error)

	// Commit makes the sub-range b readable and writable. b must be a
	// page-aligned sub-slice of a slice returned by Reserve. Errors wrap
	// ErrOutOfMemory.
	Commit(b []byte) error

	// Decommit returns the physical pages backing b to the OS while
	// keeping the addresses reserved. Never fails for a valid, page
	// aligned sub-range of a live reservation.
	Decommit(b []byte) error

	// Release returns the entire reserved range b to the OS. b must be
	// exactly the slice returned by Reserve.
	Release(b []byte) error
}

var pageSize = sync.OnceValue(os.Getpagesize)

// OS returns the process-wide System backed by the platform's
// virtual-memory syscalls. Safe for concurrent use.
func OS() System {
	return osSystem{}
}

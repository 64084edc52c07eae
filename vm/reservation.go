package vm

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/vmvec/internal/pagealign"
)

// Reservation owns one reserved address range and tracks how much of its
// prefix is committed. It is a single-owner resource: exactly one holder
// releases it, exactly once. Reservation does no locking; callers
// serialize access the same way they would for any container.
//
// Invariants: 0 <= committed <= len(full); both are multiples of the page
// size; the base address of full never changes until Release.
type Reservation struct {
	sys       System
	full      []byte // entire reserved range; nil once released
	committed int    // bytes committed from the base
	page      int
}

// NewReservation reserves maxBytes of address space with nothing
// committed. maxBytes must be a positive multiple of the system page size;
// size-spec normalization upstream guarantees that for container callers.
func NewReservation(sys System, maxBytes int) (*Reservation, error) {
	page := sys.PageSize()
	if maxBytes <= 0 || !pagealign.IsAligned(maxBytes, page) {
		return nil, fmt.Errorf("%w: reservation of %d bytes (page %d)", ErrBadRange, maxBytes, page)
	}
	full, err := sys.Reserve(maxBytes)
	if err != nil {
		return nil, err
	}
	return &Reservation{sys: sys, full: full, page: page}, nil
}

// GrowTo commits whole pages until at least target bytes are committed.
// It is a no-op when target is already covered. On failure the committed
// length is unchanged.
func (r *Reservation) GrowTo(target int) error {
	if r.full == nil {
		return ErrReleased
	}
	target = pagealign.Up(target, r.page)
	if target <= r.committed {
		return nil
	}
	if target > len(r.full) {
		return fmt.Errorf("%w: grow to %d of %d reserved", ErrBadRange, target, len(r.full))
	}
	if err := r.sys.Commit(r.full[r.committed:target]); err != nil {
		return err
	}
	r.committed = target
	return nil
}

// ShrinkTo decommits whole pages above target bytes, rounding target down
// to a page boundary. Shrinking never fails for a live reservation; a
// decommit refused by the OS leaves the pages committed, which is safe.
func (r *Reservation) ShrinkTo(target int) {
	if r.full == nil {
		return
	}
	if target < 0 {
		target = 0
	}
	target = pagealign.Down(target, r.page)
	if target >= r.committed {
		return
	}
	if err := r.sys.Decommit(r.full[target:r.committed]); err != nil {
		return
	}
	r.committed = target
}

// Release returns the whole address range to the OS. Further calls are
// no-ops, as are calls on a zero Reservation.
func (r *Reservation) Release() error {
	if r == nil || r.full == nil {
		return nil
	}
	full := r.full
	r.full = nil
	r.committed = 0
	return r.sys.Release(full)
}

// Base returns the start of the reserved range. It is stable for the life
// of the reservation. Nil once released.
func (r *Reservation) Base() unsafe.Pointer {
	if r == nil || r.full == nil {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(r.full))
}

// Committed returns the committed prefix as a byte slice.
func (r *Reservation) Committed() []byte {
	if r == nil || r.full == nil {
		return nil
	}
	return r.full[:r.committed]
}

// CommittedBytes returns the committed length in bytes.
func (r *Reservation) CommittedBytes() int {
	if r == nil {
		return 0
	}
	return r.committed
}

// ReservedBytes returns the total reserved length in bytes, zero once
// released.
func (r *Reservation) ReservedBytes() int {
	if r == nil {
		return 0
	}
	return len(r.full)
}

// System returns the capability this reservation was made against, for
// callers that need sibling reservations (deep copies, for one).
func (r *Reservation) System() System {
	if r == nil || r.sys == nil {
		return OS()
	}
	return r.sys
}

// PageSize returns the page size this reservation rounds with.
func (r *Reservation) PageSize() int {
	if r == nil || r.page == 0 {
		return pageSize()
	}
	return r.page
}

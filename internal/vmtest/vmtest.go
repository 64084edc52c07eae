// Package vmtest provides a heap-backed fake vm.System for tests. It
// lets tests drive out-of-memory and out-of-address-space paths on
// demand and verifies release discipline (every reservation released,
// none released twice).
package vmtest

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/vmvec/vm"
)

// Fake implements vm.System on the Go heap. The zero value is not usable;
// call New.
type Fake struct {
	page int

	// FailReserve makes every subsequent Reserve fail with
	// vm.ErrOutOfAddressSpace.
	FailReserve bool

	// CommitsBeforeFail, when >= 0, allows that many Commit calls to
	// succeed and fails every one after with vm.ErrOutOfMemory.
	CommitsBeforeFail int

	// Call counters for assertions.
	Reserves  int
	Commits   int
	Decommits int
	Releases  int

	live map[uintptr]int // base address -> reserved length
}

// New returns a Fake with the given page size and no failure injection.
func New(page int) *Fake {
	return &Fake{
		page:              page,
		CommitsBeforeFail: -1,
		live:              make(map[uintptr]int),
	}
}

// Live returns the number of reservations that have not been released.
func (f *Fake) Live() int {
	return len(f.live)
}

func (f *Fake) PageSize() int {
	return f.page
}

func (f *Fake) Reserve(n int) ([]byte, error) {
	f.Reserves++
	if f.FailReserve {
		return nil, fmt.Errorf("%w: fake reserve of %d bytes", vm.ErrOutOfAddressSpace, n)
	}
	b := make([]byte, n)
	f.live[base(b)] = n
	return b, nil
}

func (f *Fake) Commit(b []byte) error {
	f.Commits++
	if f.CommitsBeforeFail >= 0 && f.Commits > f.CommitsBeforeFail {
		return fmt.Errorf("%w: fake commit of %d bytes", vm.ErrOutOfMemory, len(b))
	}
	return nil
}

func (f *Fake) Decommit(b []byte) error {
	f.Decommits++
	// Match the mmap systems: a decommitted page reads as zero when
	// committed again.
	clear(b)
	return nil
}

func (f *Fake) Release(b []byte) error {
	f.Releases++
	addr := base(b)
	if _, ok := f.live[addr]; !ok {
		return fmt.Errorf("vmtest: release of unknown or already released range %#x", addr)
	}
	delete(f.live, addr)
	return nil
}

func base(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

var _ vm.System = (*Fake)(nil)

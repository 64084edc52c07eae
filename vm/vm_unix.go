//go:build unix

package vm

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// osSystem implements System with anonymous mappings. Reservation maps the
// range PROT_NONE with MAP_NORESERVE so no swap is charged; commit flips
// page protections rather than remapping, which keeps the base address
// fixed for the life of the reservation.
type osSystem struct{}

func (osSystem) PageSize() int {
	return pageSize()
}

func (osSystem) Reserve(n int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, n, unix.PROT_NONE,
		unix.MAP_ANON|unix.MAP_PRIVATE|unix.MAP_NORESERVE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrOutOfAddressSpace, n, err)
	}
	return b, nil
}

func (osSystem) Commit(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if err := unix.Mprotect(b, unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return fmt.Errorf("%w: mprotect %d bytes: %v", ErrOutOfMemory, len(b), err)
	}
	return nil
}

func (osSystem) Decommit(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	// Replace the sub-range with a fresh PROT_NONE mapping in place. This
	// releases the physical pages, keeps the addresses reserved, and
	// guarantees zero-filled pages on the next commit; madvise alone
	// promises neither on every platform.
	addr := unsafe.Pointer(unsafe.SliceData(b))
	_, err := unix.MmapPtr(-1, 0, addr, uintptr(len(b)), unix.PROT_NONE,
		unix.MAP_ANON|unix.MAP_PRIVATE|unix.MAP_FIXED|unix.MAP_NORESERVE)
	if err != nil {
		return fmt.Errorf("vm: remap %d bytes: %w", len(b), err)
	}
	return nil
}

func (osSystem) Release(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("vm: munmap %d bytes: %w", len(b), err)
	}
	return nil
}

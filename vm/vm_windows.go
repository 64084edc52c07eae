//go:build windows

package vm

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// osSystem implements System with VirtualAlloc/VirtualFree. Reservation
// uses MEM_RESERVE with PAGE_NOACCESS; commit and decommit act on
// page-aligned sub-ranges of the reserved block, which VirtualAlloc
// supports natively.
type osSystem struct{}

func (osSystem) PageSize() int {
	return pageSize()
}

func (osSystem) Reserve(n int) ([]byte, error) {
	base, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return nil, fmt.Errorf("%w: VirtualAlloc(MEM_RESERVE) %d bytes: %v",
			ErrOutOfAddressSpace, n, err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(base)), n), nil
}

func (osSystem) Commit(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if _, err := windows.VirtualAlloc(addr, uintptr(len(b)),
		windows.MEM_COMMIT, windows.PAGE_READWRITE); err != nil {
		return fmt.Errorf("%w: VirtualAlloc(MEM_COMMIT) %d bytes: %v",
			ErrOutOfMemory, len(b), err)
	}
	return nil
}

func (osSystem) Decommit(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if err := windows.VirtualFree(addr, uintptr(len(b)), windows.MEM_DECOMMIT); err != nil {
		return fmt.Errorf("vm: VirtualFree(MEM_DECOMMIT) %d bytes: %w", len(b), err)
	}
	return nil
}

func (osSystem) Release(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	// dwSize must be 0 with MEM_RELEASE; the whole reserved block goes.
	if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("vm: VirtualFree(MEM_RELEASE): %w", err)
	}
	return nil
}

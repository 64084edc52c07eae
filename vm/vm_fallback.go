//go:build !unix && !windows

package vm

// osSystem is the portable fallback for platforms without usable
// virtual-memory syscalls. The "reservation" is ordinary heap memory, so
// physical pages are consumed up front and commit/decommit are no-ops.
// Pointer stability still holds: the slice is allocated once and never
// moved.
type osSystem struct{}

func (osSystem) PageSize() int {
	return pageSize()
}

func (osSystem) Reserve(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func (osSystem) Commit(b []byte) error {
	return nil
}

func (osSystem) Decommit(b []byte) error {
	// Zero instead of unmapping so a re-commit sees fresh pages, matching
	// the mmap implementations.
	clear(b)
	return nil
}

func (osSystem) Release(b []byte) error {
	return nil
}

// Package vm abstracts the operating system's virtual-memory facilities:
// reserving address space without physical backing, committing and
// decommitting pages inside a reservation, and releasing the range.
//
// # System
//
// The System interface is the capability through which everything in this
// module touches the OS. OS() returns the platform implementation:
//
//   - unix: anonymous PROT_NONE mmap for reservation, mprotect to commit,
//     mprotect+madvise to decommit, munmap to release
//   - windows: VirtualAlloc MEM_RESERVE/MEM_COMMIT, VirtualFree
//     MEM_DECOMMIT/MEM_RELEASE
//   - anything else: a heap-backed fallback where commit and decommit are
//     no-ops
//
// Tests inject their own System to drive failure paths without exhausting
// real memory.
//
// # Reservation
//
// Reservation is the single-owner resource over one reserved range. It
// tracks the committed prefix, grows and shrinks it in whole pages, and
// guarantees the range is released exactly once. The base address of a
// reservation never changes, which is what gives containers built on top
// of it their pointer stability.
package vm

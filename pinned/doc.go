// Package pinned provides Vector, a dynamic array built on virtual-memory
// reservation instead of reallocate-and-copy growth.
//
// A Vector reserves address space for its maximum length when constructed
// and commits physical pages only for the portion in use. Growing commits
// more pages at the same addresses, so pointers and slices into the
// vector stay valid across any amount of growth — the property a
// conventional slice-backed container cannot offer.
//
// # Sizing
//
// Every constructor takes a SizeSpec fixing the vector's maximum length
// for its whole life. The spec is given in one of three units:
//
//	pinned.Elems(100_000) // that many elements of T
//	pinned.Bytes(1 << 30) // a gigabyte of address space
//	pinned.Pages(256)     // whole OS pages
//
// Whatever the unit, the reservation is rounded up to whole pages, so the
// effective maximum (MaxLen) can be slightly larger than asked for.
// Address space is cheap on 64-bit systems; reserving generously costs no
// physical memory.
//
// # Element types
//
// Elements live outside the Go heap, invisible to the garbage collector.
// The element type must therefore contain no pointers; constructors
// reject pointer-bearing types with ErrPointerElement.
//
// # Errors
//
// ErrCapacityExceeded reports an attempt to hold more than MaxLen
// elements. vm.ErrOutOfMemory surfaces when the OS refuses to commit
// more pages; the vector is always left in its prior valid state.
package pinned

package pinned

import (
	"fmt"
	"math"

	"github.com/joshuapare/vmvec/internal/pagealign"
)

// SizeSpec names the maximum size of a vector in one of three units:
// elements, bytes, or whole pages. The three are distinct on purpose —
// they are never interchangeable implicitly, and a single normalization
// step converts whichever was given into a page-aligned reservation
// length.
type SizeSpec struct {
	kind sizeKind
	n    int
}

type sizeKind uint8

const (
	inElems sizeKind = iota
	inBytes
	inPages
)

// Elems specifies capacity for n elements of the vector's element type.
func Elems(n int) SizeSpec {
	return SizeSpec{kind: inElems, n: n}
}

// Bytes specifies capacity as a raw byte count, independent of element
// size.
func Bytes(n int) SizeSpec {
	return SizeSpec{kind: inBytes, n: n}
}

// Pages specifies capacity as a number of whole OS pages.
func Pages(n int) SizeSpec {
	return SizeSpec{kind: inPages, n: n}
}

func (s SizeSpec) String() string {
	switch s.kind {
	case inBytes:
		return fmt.Sprintf("%d bytes", s.n)
	case inPages:
		return fmt.Sprintf("%d pages", s.n)
	default:
		return fmt.Sprintf("%d elems", s.n)
	}
}

// reserveBytes converts the spec into a page-aligned reservation length
// for the given element and page size:
//
//	elements n -> alignUp(n*elemSize, page)
//	bytes b    -> alignUp(b, page)
//	pages k    -> k * page
//
// elemSize must be positive and page a power of two. Overflow of the
// intermediate products fails with ErrInvalidSize rather than wrapping.
func (s SizeSpec) reserveBytes(elemSize, page int) (int, error) {
	if elemSize <= 0 {
		return 0, fmt.Errorf("%w: element size %d", ErrInvalidSize, elemSize)
	}
	if s.n < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidSize, s)
	}

	var bytes int
	switch s.kind {
	case inElems:
		if s.n > (math.MaxInt-page+1)/elemSize {
			return 0, fmt.Errorf("%w: %s of %d-byte elements overflows", ErrInvalidSize, s, elemSize)
		}
		bytes = s.n * elemSize
	case inBytes:
		if s.n > math.MaxInt-page+1 {
			return 0, fmt.Errorf("%w: %s overflows", ErrInvalidSize, s)
		}
		bytes = s.n
	case inPages:
		if s.n > math.MaxInt/page {
			return 0, fmt.Errorf("%w: %s of %d-byte pages overflows", ErrInvalidSize, s, page)
		}
		return s.n * page, nil
	}
	return pagealign.Up(bytes, page), nil
}

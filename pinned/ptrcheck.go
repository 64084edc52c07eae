package pinned

import (
	"fmt"
	"reflect"
	"unsafe"
)

// layout returns the element size for T after validating that T is usable
// as a pinned element: nonzero size and no pointer-bearing fields. The
// reflect walk runs once per constructed vector, which is cheap next to
// the reservation syscall.
func layout[T any]() (int, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return 0, fmt.Errorf("%w: zero-sized element type %T", ErrInvalidSize, zero)
	}
	t := reflect.TypeOf(zero)
	if hasPointers(t) {
		return 0, fmt.Errorf("%w: %s", ErrPointerElement, t)
	}
	return size, nil
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, String, Slice, Map, Chan, Func,
		// Interface: all carry pointers the GC must be able to see.
		return true
	}
}

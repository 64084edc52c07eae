package pinned

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HasPointers(t *testing.T) {
	type flat struct {
		A int32
		B [8]byte
		C float64
	}
	type nested struct {
		F flat
		G [4]flat
	}
	type withString struct {
		A int
		S string
	}
	type withSlice struct {
		B []byte
	}
	type withPtr struct {
		P *int
	}

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"int", int(0), false},
		{"uint64", uint64(0), false},
		{"float array", [16]float32{}, false},
		{"flat struct", flat{}, false},
		{"nested struct", nested{}, false},
		{"string", "", true},
		{"struct with string", withString{}, true},
		{"struct with slice", withSlice{}, true},
		{"struct with pointer", withPtr{}, true},
		{"map", map[int]int(nil), true},
		{"chan", (chan int)(nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasPointers(reflect.TypeOf(tt.v)))
		})
	}
}

func Test_Layout_RejectsZeroSized(t *testing.T) {
	_, err := layout[struct{}]()
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func Test_Layout_RejectsPointerBearing(t *testing.T) {
	_, err := layout[string]()
	assert.ErrorIs(t, err, ErrPointerElement)
}

func Test_Layout_AcceptsFlatTypes(t *testing.T) {
	size, err := layout[int64]()
	assert.NoError(t, err)
	assert.Equal(t, 8, size)
}

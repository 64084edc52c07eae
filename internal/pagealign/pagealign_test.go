package pagealign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Up(t *testing.T) {
	tests := []struct {
		name string
		n    int
		page int
		want int
	}{
		{"zero stays zero", 0, 4096, 0},
		{"one byte rounds to a page", 1, 4096, 4096},
		{"exact multiple unchanged", 4096, 4096, 4096},
		{"one over rounds up", 4097, 4096, 8192},
		{"large page", 5, 65536, 65536},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Up(tt.n, tt.page))
		})
	}
}

func Test_Down(t *testing.T) {
	tests := []struct {
		name string
		n    int
		page int
		want int
	}{
		{"zero stays zero", 0, 4096, 0},
		{"just under a page drops to zero", 4095, 4096, 0},
		{"exact multiple unchanged", 4096, 4096, 4096},
		{"just under two pages drops to one", 8191, 4096, 4096},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Down(tt.n, tt.page))
		})
	}
}

func Test_Pages(t *testing.T) {
	assert.Equal(t, 0, Pages(0, 4096))
	assert.Equal(t, 1, Pages(1, 4096))
	assert.Equal(t, 1, Pages(4096, 4096))
	assert.Equal(t, 2, Pages(4097, 4096))
}

func Test_IsAligned(t *testing.T) {
	assert.True(t, IsAligned(0, 4096))
	assert.True(t, IsAligned(8192, 4096))
	assert.False(t, IsAligned(1, 4096))
	assert.False(t, IsAligned(4095, 4096))
}

func Test_PowerOfTwo(t *testing.T) {
	assert.True(t, PowerOfTwo(1))
	assert.True(t, PowerOfTwo(4096))
	assert.True(t, PowerOfTwo(65536))
	assert.False(t, PowerOfTwo(0))
	assert.False(t, PowerOfTwo(-4096))
	assert.False(t, PowerOfTwo(12288))
}

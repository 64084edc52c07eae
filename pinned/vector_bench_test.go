package pinned_test

import (
	"testing"

	"github.com/joshuapare/vmvec/pinned"
)

func BenchmarkAppend(b *testing.B) {
	v, err := pinned.New[uint64](pinned.Bytes(1 << 30))
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if v.Len() == v.MaxLen() {
			v.Clear()
		}
		if err := v.Append(uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAppendSlice is the stdlib baseline for comparison: same
// workload through append(), which relocates on growth.
func BenchmarkAppendSlice(b *testing.B) {
	var s []uint64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = append(s, uint64(i))
	}
	_ = s
}

func BenchmarkAt(b *testing.B) {
	v, err := pinned.NewLen[uint64](pinned.Elems(1<<16), 1<<16)
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()

	b.ResetTimer()
	var sum uint64
	for i := 0; i < b.N; i++ {
		sum += *v.At(i & (1<<16 - 1))
	}
	_ = sum
}

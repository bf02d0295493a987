package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvblocks/vector"
)

// BenchmarkPushBack measures amortized append cost including doubling.
func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	v := vector.New[int]()
	for i := 0; i < b.N; i++ {
		_ = v.PushBack(i)
	}
}

// BenchmarkPushPopCycle measures a fill/drain cycle, exercising both the
// growth and the per-pop shrink reallocations.
func BenchmarkPushPopCycle(b *testing.B) {
	b.ReportAllocs()
	v := vector.New[int]()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 64; j++ {
			_ = v.PushBack(j)
		}
		for v.Len() > 0 {
			v.PopBack()
		}
	}
}

// BenchmarkCursorScan measures a full traversal through a cursor.
func BenchmarkCursorScan(b *testing.B) {
	v, _ := vector.NewFilled(1<<12, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for it := v.Begin(); it.NotEqual(v.End()); it.Inc() {
			sum += it.Value()
		}
		_ = sum
	}
}

package tqdm

import (
	"io"
	"testing"
	"time"
)

func BenchmarkRenderLine(b *testing.B) {
	stats := NewStats(3*time.Second, 500, 1000)
	for i := 0; i < b.N; i++ {
		_ = RenderLine("", 500, 1000, 120, stats)
	}
}

func BenchmarkBar(b *testing.B) {
	bar := Wrap(Range(b.N), WithWriter(io.Discard), WithWidth(FixedWidth(120)))
	b.ResetTimer()
	for bar.Next() {
		_ = bar.Value()
	}
}

package logger

import (
	"path/filepath"
	"testing"
)

func benchLogger(b *testing.B, opts Options) *Logger {
	b.Helper()
	if opts.OutputFile == "" {
		opts.OutputFile = filepath.Join(b.TempDir(), "bench.log")
	}
	l, err := New(opts)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { l.Close() })
	return l
}

func BenchmarkLog(b *testing.B) {
	l := benchLogger(b, Options{})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "benchmark message\n")
	}
}

func BenchmarkLogParallel(b *testing.B) {
	l := benchLogger(b, Options{RingSize: 4096})

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Log(LevelInfo, "benchmark message\n")
		}
	})
}

func BenchmarkLogFormatted(b *testing.B) {
	l := benchLogger(b, Options{})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "benchmark %d of %d\n", i, b.N)
	}
}

func BenchmarkLogFiltered(b *testing.B) {
	l := benchLogger(b, Options{MinLevel: LevelError})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Log(LevelDebug, "filtered out\n")
	}
}

func BenchmarkRingPushPop(b *testing.B) {
	r := NewRing(1024)
	s := slotWithMsg(LevelInfo, "benchmark payload")
	var out Slot

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Push(&s)
		r.TryPop(&out)
	}
}

func BenchmarkAppendRecord(b *testing.B) {
	s := slotWithMsg(LevelInfo, "benchmark payload\n")
	s.sec = 1700000000
	buf := make([]byte, 0, recordMax)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = appendRecord(buf[:0], &s, false)
	}
}

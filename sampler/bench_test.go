package sampler_test

import (
	"testing"

	"github.com/katalvlaran/chotto/arrange"
	"github.com/katalvlaran/chotto/sampler"
	"github.com/katalvlaran/chotto/shufflebag"
)

// benchmarkRun generates count arrangements from a pool of n values at
// length k; the universe is enumerated once outside the timed loop.
func benchmarkRun(b *testing.B, n, k, count int) {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i + 1
	}
	universe, err := arrange.Enumerate(pool, k)
	if err != nil {
		b.Fatalf("Enumerate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := sampler.New(universe, count, shufflebag.FromSeed(int64(i+1)))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if res := s.Run(); len(res.Accepted) != count {
			b.Fatalf("short run: got %d of %d", len(res.Accepted), count)
		}
	}
}

// BenchmarkRun_SmallBatch mirrors a modest print run on a reduced pool.
func BenchmarkRun_SmallBatch(b *testing.B) {
	benchmarkRun(b, 9, 5, 50)
}

// BenchmarkRun_ProductionColumn draws 100 sheets (the launcher default)
// from the real column universe, P(15,5)=360360.
func BenchmarkRun_ProductionColumn(b *testing.B) {
	benchmarkRun(b, 15, 5, 100)
}

// BenchmarkRun_Escalating forces repeated tolerance escalation by asking
// for five times the universe size.
func BenchmarkRun_Escalating(b *testing.B) {
	benchmarkRun(b, 4, 2, 60)
}

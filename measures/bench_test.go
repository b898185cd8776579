package measures_test

import (
	"testing"

	"github.com/katalvlaran/spikelab/measures"
)

func benchSpikes(n int, dt float64) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * dt
	}

	return times
}

func BenchmarkDistance(b *testing.B) {
	a := benchSpikes(500, 0.021)
	c := benchSpikes(500, 0.019)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := measures.Distance(a, c, 1.0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTimesToTrain(b *testing.B) {
	times := benchSpikes(2_000, 0.013)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := measures.TimesToTrain(times, 1000); err != nil {
			b.Fatal(err)
		}
	}
}

package freqz

import "testing"

func BenchmarkFIR(b *testing.B) {
	h := make([]float64, 64)
	for i := range h {
		h[i] = 1 / float64(i+1)
	}

	b.ResetTimer()

	for range b.N {
		_, _ = FIR(h, 1024)
	}
}

func BenchmarkRational(b *testing.B) {
	num := []float64{1, -0.95}
	den := []float64{1, -0.5, 0.1}

	b.ResetTimer()

	for range b.N {
		_, _ = Rational(num, den, 1024)
	}
}

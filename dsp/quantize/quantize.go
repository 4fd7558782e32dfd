// Package quantize maps continuous amplitudes onto uniform discrete levels.
package quantize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	minBits = 1
	maxBits = 32
)

// upperEdge is the top bin boundary. It sits slightly above 1 so that a
// sample at exactly the peak (1.0 after normalization) stays inside the
// last bin instead of being pushed out by rounding.
const upperEdge = 1.01

// Quantize applies uniform bits-bit quantization to x and returns a new
// slice; the input is never mutated.
//
// The signal is peak-normalized to [-1, 1] on an internal copy, the range
// is partitioned into 2^bits equal-width bins, and each sample maps to the
// midpoint of its bin. The output therefore takes at most 2^bits distinct
// values, all within [-1, 1].
func Quantize(x []float64, bits int) ([]float64, error) {
	if bits < minBits || bits > maxBits {
		return nil, fmt.Errorf("quantize: bits must be in [%d, %d]: %d", minBits, maxBits, bits)
	}

	if len(x) == 0 {
		return nil, fmt.Errorf("quantize: input must not be empty")
	}

	out := make([]float64, len(x))
	copy(out, x)

	peak := math.Max(math.Abs(floats.Max(out)), math.Abs(floats.Min(out)))
	if peak != 0 {
		for i := range out {
			out[i] /= peak
		}
	}

	levels := 1 << bits
	width := 2.0 / float64(levels)

	for i, v := range out {
		idx := int(math.Floor((v + 1) / width))
		if idx < 0 {
			idx = 0
		}

		if idx >= levels && v < upperEdge {
			idx = levels - 1
		}

		out[i] = -1 + width*(float64(idx)+0.5)
	}

	return out, nil
}

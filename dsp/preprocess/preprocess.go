// Package preprocess holds the signal conditioning steps applied before
// corpus sampling: pre-emphasis, dithering, and peak normalization. All
// functions return new slices and never mutate their input.
package preprocess

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-sig/dsp/filter/fir"
)

// PreEmphasis applies the first-order high-pass
//
//	y[n] = x[n] - alpha*x[n-1]
//
// by running an FIR filter with taps [1, -alpha].
// Typical alpha for speech is 0.95 to 0.97.
func PreEmphasis(x []float64, alpha float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	fir.New([]float64{1, -alpha}).ProcessBlockTo(out, x)

	return out
}

// Dither adds independent standard-normal noise scaled by scale to every
// sample. A nil rng falls back to the shared global source; pass a seeded
// generator for reproducible output.
func Dither(rng *rand.Rand, x []float64, scale float64) []float64 {
	draw := rand.NormFloat64
	if rng != nil {
		draw = rng.NormFloat64
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v + draw()*scale
	}

	return out
}

// Normalize scales x so its peak magnitude is 1. An all-zero input comes
// back unchanged.
func Normalize(x []float64) []float64 {
	peak := 0.0
	for _, v := range x {
		if av := math.Abs(v); av > peak {
			peak = av
		}
	}

	out := make([]float64, len(x))
	if peak == 0 {
		copy(out, x)
		return out
	}

	for i, v := range x {
		out[i] = v / peak
	}

	return out
}

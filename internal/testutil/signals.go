package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicSine generates a sine wave with a fixed phase origin.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// GaussianNoise generates standard-normal noise with a fixed seed for
// reproducibility, scaled by amplitude.
func GaussianNoise(seed uint64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed))

	out := make([]float64, length)
	for i := range out {
		out[i] = rng.NormFloat64() * amplitude
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}

// Ramp returns [0, 1, 2, ...] of length n, handy for checking that sampled
// windows stay contiguous and aligned.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

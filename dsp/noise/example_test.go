package noise_test

import (
	"fmt"

	"github.com/cwbudde/algo-sig/dsp/noise"
)

func ExampleSynthesizer_Add() {
	s := noise.New(noise.WithSeed(1))

	clean := []float64{1, 0, -1, 0, 1, 0, -1, 0}

	// Noiseless leaves the signal untouched; NoiseOnly drops it entirely.
	same := s.Add(clean, []float64{0.5, -0.5}, noise.Noiseless())
	only := s.Add(clean, []float64{0.5, -0.5}, noise.NoiseOnly())

	fmt.Println(same)
	fmt.Println(only)
	// Output:
	// [1 0 -1 0 1 0 -1 0]
	// [0.5 -0.5 0.5 -0.5 0.5 -0.5 0.5 -0.5]
}

func ExampleSNR_String() {
	fmt.Println(noise.SNRdB(10), noise.Noiseless(), noise.NoiseOnly())
	// Output:
	// 10dB noiseless noise-only
}

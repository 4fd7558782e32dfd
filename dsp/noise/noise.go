package noise

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sig/dsp/core"
)

// Synthesizer generates white noise and mixes noise into clean signals at a
// target SNR. All randomness comes from the instance's own source; nothing
// is reseeded internally.
type Synthesizer struct {
	rng *rand.Rand
}

// Option configures a [Synthesizer].
type Option func(*Synthesizer)

// WithSeed seeds the internal generator for reproducible output.
func WithSeed(seed uint64) Option {
	return func(s *Synthesizer) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(s *Synthesizer) {
		s.rng = rng
	}
}

// New creates a Synthesizer. Without options the generator is seeded from
// the global source once at construction.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return s
}

// White returns n independent standard-normal samples.
func (s *Synthesizer) White(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.NormFloat64()
	}

	return out
}

// ScaleToSNR length-matches noise to signal and scales it so that mixing it
// into signal yields the target SNR:
//
//	scaled = noise * sqrt(Es / 10^(db/10) / En)
//
// with Es and En the signal and (length-matched) noise energies. Shorter
// noise is tiled periodically to cover the signal, longer noise is
// truncated; this happens for the [NoiseOnly] sentinel too. [Noiseless]
// returns all zeros shaped like signal, [NoiseOnly] the length-matched
// noise unscaled. The inputs are never mutated.
func (s *Synthesizer) ScaleToSNR(signal, noise []float64, snr SNR) []float64 {
	if snr.IsNoiseless() {
		return make([]float64, len(signal))
	}

	nn := fitLength(noise, len(signal))
	if snr.IsNoiseOnly() {
		return nn
	}

	db, _ := snr.Finite()
	scaleInPlace(signal, nn, db)

	return nn
}

// Add mixes noise into signal at the target SNR and returns the mixture as
// a new slice. For [NoiseOnly] the result is the scaled term alone; for
// [Noiseless] it equals signal exactly.
func (s *Synthesizer) Add(signal, noise []float64, snr SNR) []float64 {
	scaled := s.ScaleToSNR(signal, noise, snr)
	if snr.IsNoiseOnly() {
		return scaled
	}

	vecmath.AddBlockInPlace(scaled, signal)

	return scaled
}

// AddWithPolicy is [Add] with the SNR drawn from policy.
func (s *Synthesizer) AddWithPolicy(signal, noise []float64, policy Policy) []float64 {
	return s.Add(signal, noise, policy.Resolve(s.rng))
}

// AddWhite generates white noise shaped like signal and mixes it in at the
// target SNR.
func (s *Synthesizer) AddWhite(signal []float64, snr SNR) []float64 {
	return s.Add(signal, s.White(len(signal)), snr)
}

// AddWhiteWithPolicy is [AddWhite] with the SNR drawn from policy.
func (s *Synthesizer) AddWhiteWithPolicy(signal []float64, policy Policy) []float64 {
	return s.AddWhite(signal, policy.Resolve(s.rng))
}

// AddWhiteRandom mixes in white noise at an SNR drawn per [DefaultPolicy],
// uniformly from [-5, 15] dB.
func (s *Synthesizer) AddWhiteRandom(signal []float64) []float64 {
	return s.AddWhiteWithPolicy(signal, DefaultPolicy)
}

// WhiteAtSNR returns only the scaled white-noise term for signal, without
// mixing it in. The noise already matches the signal shape, so no tiling
// takes place. Sentinels behave as in [ScaleToSNR].
func (s *Synthesizer) WhiteAtSNR(signal []float64, snr SNR) []float64 {
	n := s.White(len(signal))

	if snr.IsNoiseless() {
		return make([]float64, len(signal))
	}

	if snr.IsNoiseOnly() {
		return n
	}

	db, _ := snr.Finite()
	scaleInPlace(signal, n, db)

	return n
}

// scaleInPlace rescales noise so that its energy relative to signal matches
// the given ratio in dB.
func scaleInPlace(signal, noise []float64, db float64) {
	es := floats.Dot(signal, signal)
	en := floats.Dot(noise, noise)
	k := math.Sqrt(es / math.Pow(10, db/10) / en)

	vecmath.ScaleBlock(noise, noise, k)
}

// fitLength returns a fresh slice of length n covered by periodic
// repetitions of noise, truncated to exactly n samples.
func fitLength(noise []float64, n int) []float64 {
	out := make([]float64, n)
	if len(noise) == 0 {
		return out
	}

	for off := 0; off < n; {
		off += core.CopyInto(out[off:], noise)
	}

	return out
}

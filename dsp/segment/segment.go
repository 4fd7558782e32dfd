// Package segment draws random fixed-length windows from signals.
package segment

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Sampler draws windows at random offsets from one or two aligned signals.
// Offsets are independent between draws, so windows may overlap or repeat.
//
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// Option configures a [Sampler].
type Option func(*Sampler)

// WithSeed seeds the internal generator for reproducible sampling.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(s *Sampler) {
		s.rng = rng
	}
}

// New creates a Sampler. Without options the generator is seeded from the
// global source once at construction.
func New(opts ...Option) *Sampler {
	s := &Sampler{}

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

// Segments draws count windows of the given length from x. The returned
// slices are views into x, not copies.
//
// The signal must be at least length samples long; a shorter signal is a
// caller error. Start offsets are drawn as continuous values over
// [0, len(x)-length] and rounded to the nearest integer, which gives the
// two extreme offsets half the probability mass of interior ones.
func (s *Sampler) Segments(x []float64, length, count int) ([][]float64, error) {
	if length < 1 {
		return nil, fmt.Errorf("segment: window length must be >= 1: %d", length)
	}

	if count < 0 {
		return nil, fmt.Errorf("segment: count must be >= 0: %d", count)
	}

	if len(x) < length {
		return nil, fmt.Errorf("segment: window length %d exceeds signal length %d", length, len(x))
	}

	maxStart := float64(len(x) - length)

	segs := make([][]float64, count)
	for i := range segs {
		start := s.drawStart(maxStart)
		segs[i] = x[start : start+length]
	}

	return segs, nil
}

// Pairs draws count time-aligned window pairs from x and y: each draw uses
// one offset to slice both signals. The offset range is bounded by the
// shorter of the two signals, which must be at least length samples long.
func (s *Sampler) Pairs(x, y []float64, length, count int) (xsegs, ysegs [][]float64, err error) {
	if length < 1 {
		return nil, nil, fmt.Errorf("segment: window length must be >= 1: %d", length)
	}

	if count < 0 {
		return nil, nil, fmt.Errorf("segment: count must be >= 0: %d", count)
	}

	shorter := min(len(x), len(y))
	if shorter < length {
		return nil, nil, fmt.Errorf("segment: window length %d exceeds shorter signal length %d", length, shorter)
	}

	maxStart := float64(shorter - length)

	xsegs = make([][]float64, count)
	ysegs = make([][]float64, count)

	for i := range count {
		start := s.drawStart(maxStart)
		xsegs[i] = x[start : start+length]
		ysegs[i] = y[start : start+length]
	}

	return xsegs, ysegs, nil
}

func (s *Sampler) drawStart(maxStart float64) int {
	return int(math.Round(s.rng.Float64() * maxStart))
}

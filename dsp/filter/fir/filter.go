package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sig/dsp/core"
)

// Filter is a direct-form FIR filter over a circular delay line.
type Filter struct {
	taps  []float64
	state []float64
	head  int
}

// New creates a filter from the given taps. The slice is copied; the
// filter order is len(taps)-1.
func New(taps []float64) *Filter {
	t := make([]float64, len(taps))
	copy(t, taps)

	return &Filter{
		taps:  t,
		state: make([]float64, len(taps)),
	}
}

// ProcessSample pushes one input sample and returns the filtered output
//
//	y[n] = sum_k taps[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.taps)

	f.state[f.head] = x

	y := 0.0
	idx := f.head

	for _, t := range f.taps {
		y += t * f.state[idx]

		idx--
		if idx < 0 {
			idx = n - 1
		}
	}

	f.head++
	if f.head == n {
		f.head = 0
	}

	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. The slices must have equal length
// and may alias.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	core.Zero(f.state)
	f.head = 0
}

// Order returns the filter order, len(taps)-1.
func (f *Filter) Order() int {
	return len(f.taps) - 1
}

// Taps returns a copy of the tap vector.
func (f *Filter) Taps() []float64 {
	t := make([]float64, len(f.taps))
	copy(t, f.taps)

	return t
}

// ResponseAt evaluates the complex frequency response at the normalized
// frequency w, in units of pi rad/sample (so w=1 is Nyquist), matching the
// grid convention of dsp/freqz.
func (f *Filter) ResponseAt(w float64) complex128 {
	omega := math.Pi * w

	var h complex128
	for k, t := range f.taps {
		h += complex(t, 0) * cmplx.Exp(complex(0, -omega*float64(k)))
	}

	return h
}

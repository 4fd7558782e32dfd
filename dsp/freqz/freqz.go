package freqz

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// DefaultCeiling is the finite magnitude substituted for bins where the
// denominator polynomial evaluates to exactly zero.
const DefaultCeiling = 1e5

// Response holds a frequency response sampled on a uniform grid.
//
// Frequencies covers [0, 2) in units of pi rad/sample, so for even lengths
// the midpoint is the Nyquist frequency and the upper half mirrors the
// lower. Values has the same length as Frequencies.
type Response struct {
	Frequencies []float64
	Values      []complex128
}

type config struct {
	ceiling float64
}

// Option configures [IIR] and [Rational] evaluation.
type Option func(*config) error

// WithCeiling sets the substitute magnitude for zero-denominator bins
// (default [DefaultCeiling]).
func WithCeiling(c float64) Option {
	return func(cfg *config) error {
		if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("freqz: ceiling must be > 0 and finite: %f", c)
		}

		cfg.ceiling = c

		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := config{ceiling: DefaultCeiling}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// FIR returns the frequency response of an FIR filter with coefficients h,
// evaluated at nfft uniformly spaced points.
//
// The transform zero-pads or truncates h to nfft samples, so nfft may be
// smaller than, equal to, or larger than len(h).
func FIR(h []float64, nfft int) (*Response, error) {
	if nfft < 1 {
		return nil, fmt.Errorf("freqz: nfft must be >= 1: %d", nfft)
	}

	return &Response{
		Frequencies: grid(nfft),
		Values:      transform(h, nfft),
	}, nil
}

// IIR returns the frequency response of the all-pole filter 1/H(z), where h
// holds the denominator polynomial coefficients.
//
// The denominator transform is inverted per bin. A bin where it comes out
// exactly zero (both parts, not a magnitude threshold) would be undefined;
// such bins are set to the configured ceiling instead, representing an
// infinite-gain pole clipped to a large finite magnitude.
func IIR(h []float64, nfft int, opts ...Option) (*Response, error) {
	if nfft < 1 {
		return nil, fmt.Errorf("freqz: nfft must be >= 1: %d", nfft)
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	inv := transform(h, nfft)
	for i, v := range inv {
		if v == 0 {
			inv[i] = complex(cfg.ceiling, 0)
			continue
		}

		inv[i] = 1 / v
	}

	return &Response{
		Frequencies: grid(nfft),
		Values:      inv,
	}, nil
}

// Rational returns the frequency response of numerator(z)/denominator(z) as
// the elementwise product of [FIR] of the numerator and [IIR] of the
// denominator. Composing the two keeps zero-denominator handling in one
// place rather than dividing transforms directly.
func Rational(numerator, denominator []float64, nfft int, opts ...Option) (*Response, error) {
	numer, err := FIR(numerator, nfft)
	if err != nil {
		return nil, err
	}

	denom, err := IIR(denominator, nfft, opts...)
	if err != nil {
		return nil, err
	}

	for i, v := range denom.Values {
		denom.Values[i] = numer.Values[i] * v
	}

	return denom, nil
}

// NextPow2 returns the smallest power of two greater than or equal to n.
// It is defined for n >= 1; smaller arguments return 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// grid returns nfft frequencies uniformly spaced over [0, 2), in units of
// pi rad/sample.
func grid(nfft int) []float64 {
	ww := make([]float64, nfft)
	step := 2.0 / float64(nfft)
	for i := range ww {
		ww[i] = step * float64(i)
	}

	return ww
}

// transform evaluates the DFT of h at nfft points, zero-padding or
// truncating h as needed.
func transform(h []float64, nfft int) []complex128 {
	in := make([]complex128, nfft)
	for i, v := range h {
		if i >= nfft {
			break
		}
		in[i] = complex(v, 0)
	}

	return fft.FFT(in)
}

package spectrum

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sig/dsp/freqz"
	"github.com/cwbudde/algo-sig/dsp/window"
)

type config struct {
	fftSize int
	window  window.Type
}

// Option configures [OfSignal].
type Option func(*config) error

// WithFFTSize fixes the transform size instead of the default
// next-power-of-two of the signal length. The size must be a power of two.
func WithFFTSize(n int) Option {
	return func(cfg *config) error {
		if n < 1 || n != freqz.NextPow2(n) {
			return fmt.Errorf("spectrum: fft size must be a power of two: %d", n)
		}

		cfg.fftSize = n

		return nil
	}
}

// WithWindow selects the analysis window (default rectangular).
func WithWindow(t window.Type) Option {
	return func(cfg *config) error {
		if !t.Valid() {
			return fmt.Errorf("spectrum: invalid window type: %d", t)
		}

		cfg.window = t

		return nil
	}
}

// OfSignal returns the complex spectrum of x.
//
// The signal is windowed, zero-padded to the transform size (by default
// freqz.NextPow2(len(x))), and run through a forward FFT. Signals longer
// than the configured size are truncated.
func OfSignal(x []float64, opts ...Option) ([]complex128, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("spectrum: input must not be empty")
	}

	cfg := config{window: window.TypeRectangular}
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	fftSize := cfg.fftSize
	if fftSize == 0 {
		fftSize = freqz.NextPow2(len(x))
	}

	frame := make([]float64, min(len(x), fftSize))
	copy(frame, x)
	window.Apply(cfg.window, frame)

	in := make([]complex128, fftSize)
	for i, v := range frame {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return out, nil
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im := split(in)

	out := make([]float64, len(in))
	vecmath.Magnitude(out, re, im)

	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	re, im := split(in)

	out := make([]float64, len(in))
	vecmath.Power(out, re, im)

	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin, in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}

	return out
}

func split(in []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(in))
	re, im = buf[:len(in)], buf[len(in):]

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im
}

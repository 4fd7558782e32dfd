// Package window generates analysis window functions for spectral framing.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman

	typeCount // sentinel for validation
)

var typeNames = [typeCount]string{
	"Rectangular", "Hann", "Hamming", "Blackman",
}

// String returns the name of the window type.
func (t Type) String() string {
	if t >= 0 && t < typeCount {
		return typeNames[t]
	}

	return fmt.Sprintf("Type(%d)", t)
}

// Valid reports whether t is a known window type.
func (t Type) Valid() bool {
	return t >= 0 && t < typeCount
}

// Make returns periodic window coefficients of the given length, suited for
// FFT framing. Unknown types and non-positive lengths return nil.
func Make(t Type, length int) []float64 {
	if length <= 0 || !t.Valid() {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		x := float64(i) / float64(length)
		out[i] = eval(t, x)
	}

	return out
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}

	coeffs := Make(t, len(buf))
	if coeffs == nil {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

func eval(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	default:
		return 1
	}
}

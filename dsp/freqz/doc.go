// Package freqz evaluates frequency responses of rational filters.
//
// Filters are described by real coefficient slices in ascending powers of
// z^-1 (index 0 is the zero-delay tap). [FIR] evaluates a numerator-only
// polynomial, [IIR] the reciprocal of a denominator polynomial, and
// [Rational] the quotient of the two. All three sample the response on the
// same uniform grid of nfft normalized frequencies covering [0, 2) in units
// of pi rad/sample.
//
// The transform length nfft is unrestricted; it does not need to be a power
// of two. [NextPow2] is provided for callers that want power-of-two sizes
// for a downstream FFT stage.
package freqz

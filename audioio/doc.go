// Package audioio decodes audio files into per-channel float64 signals.
//
// Container and codec handling is delegated entirely to decoding
// libraries; this package only de-interleaves their PCM output, scales it
// to [-1, 1], and optionally resamples to a caller-chosen rate. The
// resulting channel slices are valid inputs to every routine in the dsp
// packages.
package audioio

// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] convolves an input stream with a fixed tap vector. It backs
// the time-domain pre-processing stages of this library (pre-emphasis in
// particular) and stays small on purpose: coefficient design is out of
// scope, and full-grid frequency analysis lives in dsp/freqz.
// [Filter.ResponseAt] probes a single frequency only.
package fir

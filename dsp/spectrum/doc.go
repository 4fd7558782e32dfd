// Package spectrum provides frequency-domain views of real signals.
//
// [OfSignal] frames a time-domain signal through an analysis window and a
// power-of-two FFT; the bin helpers ([Magnitude], [Power], [Phase]) extract
// real-valued views from complex spectra, including the responses produced
// by dsp/freqz.
package spectrum

package noise

import (
	"fmt"
	"math/rand/v2"
)

type snrKind int

const (
	snrFinite snrKind = iota
	snrNoiseless
	snrNoiseOnly
)

// SNR is a target signal-to-noise ratio for noise injection. The zero value
// is a finite ratio of 0 dB.
type SNR struct {
	kind snrKind
	db   float64
}

// SNRdB returns a finite target ratio in decibels.
func SNRdB(db float64) SNR {
	return SNR{kind: snrFinite, db: db}
}

// Noiseless returns the sentinel for a clean mixture: the additive noise
// term is exactly zero.
func Noiseless() SNR {
	return SNR{kind: snrNoiseless}
}

// NoiseOnly returns the sentinel for a pure-noise mixture: the output is
// the (length-matched) noise itself, unscaled, and the signal contributes
// nothing.
func NoiseOnly() SNR {
	return SNR{kind: snrNoiseOnly}
}

// Finite returns the ratio in decibels and true when the SNR is finite.
func (s SNR) Finite() (float64, bool) {
	return s.db, s.kind == snrFinite
}

// IsNoiseless reports whether s is the [Noiseless] sentinel.
func (s SNR) IsNoiseless() bool {
	return s.kind == snrNoiseless
}

// IsNoiseOnly reports whether s is the [NoiseOnly] sentinel.
func (s SNR) IsNoiseOnly() bool {
	return s.kind == snrNoiseOnly
}

// String returns "<db>dB" for finite ratios and the sentinel name otherwise.
func (s SNR) String() string {
	switch s.kind {
	case snrNoiseless:
		return "noiseless"
	case snrNoiseOnly:
		return "noise-only"
	default:
		return fmt.Sprintf("%gdB", s.db)
	}
}

// Policy decides the target SNR for calls that do not fix one up front.
type Policy struct {
	fixed  bool
	snr    SNR
	lowDb  float64
	highDb float64
}

// DefaultPolicy draws the ratio uniformly from [-5, 15] dB per call.
var DefaultPolicy = UniformSNR(-5, 15)

// FixedSNR always resolves to snr.
func FixedSNR(snr SNR) Policy {
	return Policy{fixed: true, snr: snr}
}

// UniformSNR resolves to a finite ratio drawn uniformly from
// [lowDb, highDb].
func UniformSNR(lowDb, highDb float64) Policy {
	if highDb < lowDb {
		lowDb, highDb = highDb, lowDb
	}

	return Policy{lowDb: lowDb, highDb: highDb}
}

// Resolve draws a concrete SNR from the policy using rng.
func (p Policy) Resolve(rng *rand.Rand) SNR {
	if p.fixed {
		return p.snr
	}

	return SNRdB(p.lowDb + rng.Float64()*(p.highDb-p.lowDb))
}

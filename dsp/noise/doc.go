// Package noise synthesizes additive noise at a target signal-to-noise
// ratio.
//
// A [Synthesizer] owns its pseudo-random source, so independent instances
// can be seeded for reproducible corpora. The target ratio is an [SNR]
// tagged value rather than a raw float: [Noiseless] and [NoiseOnly] make
// the two degenerate mixing modes explicit instead of relying on infinity
// comparisons. Calls that want the ratio drawn per call use a [Policy].
//
// A Synthesizer is not safe for concurrent use. Use one per goroutine or
// synchronize externally.
package noise

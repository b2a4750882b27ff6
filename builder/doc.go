// Package builder provides “functional‐options”‐style constructors that produce
// discrete series: an incremental point-by-point builder and deterministic
// sample sequences for tests, demos and fixtures.
//
// The package offers the following key components:
//
//   - Incremental builder:
//     – Discrete[V]:       stages Put(at, value) updates on top of a base
//     series, extending the tracked domain minimally (interval
//     ExtendToPoint), and finalizes them with Series().
//   - Sample sequences (*series.Discrete[float64], sample i at origin+i*step):
//     – Pulse:             rectangular pulse train.
//     – Chirp:             linear frequency sweep.
//     – OHLC:              open/high/low/close candles from a GBM path.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed, WithRand, WithAmplitude, WithFrequency, WithTrend, WithNoise,
//     WithStep, WithOrigin, WithLogger.
//   - Validation helpers:
//     – validateMin:       ensure integer ≥ minimum.
//     – validateGrid:      ensure sample positions stay finite and increasing.
//
// Guarantees:
//
//   - Determinism: for a fixed seed and options, every sequence is identical.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors (builderErrorf) wrapping ErrBadSize and
//     ErrOptionViolation with the constructor name.
//   - Staged updates never mutate the base series.
//
// The Discrete builder logs through github.com/sgostarter/i/l at Debug level
// when a Put extends the domain or overrides a breakpoint.
package builder

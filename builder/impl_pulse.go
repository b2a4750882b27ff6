// SPDX-License-Identifier: MIT
// Package: lvseries/builder
//
// impl_pulse.go — deterministic rectangular pulse train as a step series.
//
// Purpose (single responsibility):
//   • Provide a reproducible pulse series for tests, demos and fixtures.
//   • Rectangular shape with a fixed duty cycle; optional linear trend and
//     additive Gaussian noise, both deterministic.
//
// Contract:
//   • Pulse(n, seed, opts...) returns a discrete series of n samples placed at
//     origin + i*step, or ErrBadSize for n < MinSequenceLen.
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and O(n) memory.
//
// Options:
//   • WithAmplitude → A, WithFrequency → f0, WithTrend → per-sample slope,
//     WithNoise → sigma, WithStep/WithOrigin → sample placement.

package builder

import (
	"math"

	"github.com/katalvlaran/lvseries/series"
)

// -----------------------------------------------------------------------------
// File-local defaults (cohesive to the pulse generator).
// -----------------------------------------------------------------------------

const (
	defBaseFreq = 0.125 // Default base frequency f0 in cycles/sample (>0). Period ≈ 8.
	defDuty     = 0.5   // Rectangular duty cycle in [0,1].
)

// seqPulseParams holds all resolved knobs for the pulse generator.
type seqPulseParams struct {
	amp   float64 // amplitude > 0
	f0    float64 // base frequency > 0 (cycles/sample)
	duty  float64 // rectangular duty in [0,1]
	sigma float64 // Gaussian noise sigma ≥ 0
	trend float64 // linear trend increment per sample
}

// extractPulseParams maps builderConfig → seqPulseParams.
func extractPulseParams(cfg builderConfig) seqPulseParams {
	p := seqPulseParams{
		amp:   cfg.amplitude,
		f0:    defBaseFreq,
		duty:  defDuty,
		sigma: cfg.noiseSigma,
		trend: cfg.trendK,
	}
	if cfg.frequency > 0 {
		p.f0 = cfg.frequency
	}

	return p
}

// Pulse returns an n-sample rectangular pulse train with optional trend and noise.
// Shape:
//   - y ∈ {0, A} chosen by phase fraction (i*f0 mod 1) < duty.
//
// Additions:
//   - Linear trend: y += trend * i.
//   - Gaussian noise: y += sigma * N(0,1) (deterministic per seed).
//
// Consecutive samples with equal value stay separate breakpoints; call
// Compute on the result to keep only the edges of each pulse.
//
// Complexity:
//   - O(n) time, O(n) memory.
func Pulse(n int, seed int64, opts ...BuilderOption) (*series.Discrete[float64], error) {
	if err := validateMin(MethodPulse, n, MinSequenceLen); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	p := extractPulseParams(cfg)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)

	var (
		frac float64 // phase fraction in [0,1)
		base float64 // base waveform before trend/noise
	)

	for i := 0; i < n; i++ {
		frac = math.Mod(float64(i)*p.f0, unitOne)
		if frac < p.duty {
			base = p.amp
		} else {
			base = unitZero
		}

		base += p.trend * float64(i)

		// Noise only if enabled (sigma>0 keeps default paths clean).
		if p.sigma > 0 {
			base += p.sigma * rng.NormFloat64()
		}

		out[i] = base
	}

	return toDiscrete(MethodPulse, cfg, out)
}

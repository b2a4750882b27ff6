// SPDX-License-Identifier: MIT
// Package: lvseries/builder
//
// impl_chirp.go - deterministic linear chirp as a sampled series.
//
// Purpose:
//   - Produce a linear chirp (frequency sweep from f0 to f1) for tests/demos.
//   - Optional linear trend and Gaussian noise.
//   - Strict determinism with the same policy as Pulse.
//
// Contract:
//   - Chirp(n, seed, opts...) returns a discrete series of n samples, or
//     ErrBadSize for n < MinSequenceLen.
//   - O(n) time, O(n) memory. No panics. No global state.
//
// Determinism policy (aligned with builders):
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithSeed(...)).
//   - Else → rng := rand.New(rand.NewSource(seed)).
//
// Chirps are smooth: wrap the result with series.Interpolate to evaluate
// between samples.

package builder

import (
	"math"

	"github.com/katalvlaran/lvseries/series"
)

const (
	defChirpF0 = 0.02 // start frequency (cycles/sample) > 0
	defChirpF1 = 0.25 // end   frequency (cycles/sample) > 0
)

const tau = 2.0 * math.Pi // τ = 2π

type seqChirpParams struct {
	amp   float64 // amplitude > 0
	f0    float64 // start freq > 0
	f1    float64 // end   freq > 0
	sigma float64 // noise sigma ≥ 0
	trend float64 // linear trend increment per sample
}

// extractChirpParams maps builderConfig → seqChirpParams. WithFrequency moves
// the start of the sweep; the end frequency stays fixed.
func extractChirpParams(cfg builderConfig) seqChirpParams {
	p := seqChirpParams{
		amp:   cfg.amplitude,
		f0:    defChirpF0,
		f1:    defChirpF1,
		sigma: cfg.noiseSigma,
		trend: cfg.trendK,
	}
	if cfg.frequency > 0 {
		p.f0 = cfg.frequency
	}

	return p
}

// Chirp returns an n-sample linear chirp: f sweeps from f0 to f1.
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π)
//   - yᵢ  = A * sin(θᵢ₊₁) + trend*i + noise
//
// Sample i sits at origin + i*step.
func Chirp(n int, seed int64, opts ...BuilderOption) (*series.Discrete[float64], error) {
	if err := validateMin(MethodChirp, n, MinSequenceLen); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	p := extractChirpParams(cfg)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	theta := unitZero

	var (
		t   float64 // normalized position in [0,1]
		fi  float64 // instantaneous frequency at sample i
		val float64 // sample value before store
	)

	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		} else {
			t = unitZero
		}

		fi = p.f0 + (p.f1-p.f0)*t
		theta += tau * fi

		val = p.amp * math.Sin(theta)
		val += p.trend * float64(i)
		if p.sigma > 0 {
			val += p.sigma * rng.NormFloat64()
		}

		out[i] = val
	}

	return toDiscrete(MethodChirp, cfg, out)
}

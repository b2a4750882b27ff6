// SPDX-License-Identifier: MIT
// Package: lvseries/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • amplitude   = 1.0
//   • frequency   = 0                   (each sequence picks its own default)
//   • trendK      = 0.0
//   • noiseSigma  = 0.0
//   • step        = 1.0
//   • origin      = 0.0
//   • logger      = l.NewNopLoggerWrapper()

package builder

import (
	"math/rand" // RNG for noisy sequences

	"github.com/sgostarter/i/l"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “seed argument decides”.
	rng *rand.Rand

	// Sequence dataset controls (Pulse/Chirp/OHLC).
	amplitude  float64 // >0
	frequency  float64 // >0 when set; 0 selects the per-sequence default
	trendK     float64 // any real
	noiseSigma float64 // >=0

	// Sample placement on the float axis: origin + i*step.
	step   float64 // >0
	origin float64 // finite

	logger l.Wrapper
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 1.0 // sequence amplitude
	defaultFrequency  = 0.0 // unset: Pulse/Chirp fall back to their own f0
	defaultTrend      = 0.0 // linear trend coefficient
	defaultNoiseSigma = 0.0 // Gaussian noise stdev
	defaultStep       = 1.0 // one sample per unit
	defaultOrigin     = 0.0 // first sample at 0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. A nil logger left by WithLogger(nil) is resolved to the
// no-op logger here to keep downstream code branch-free.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
		step:       defaultStep,
		origin:     defaultOrigin,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = l.NewNopLoggerWrapper()
	}

	return cfg
}

// SPDX-License-Identifier: MIT
// Package: lvseries/builder
//
// sequence_primitives.go - shared defaults and helpers for sequence builders.
//
// Purpose:
//   - Hold cross-sequence defaults (noise/trend).
//   - Provide deterministic RNG selection with cfg.rng priority.
//   - Place raw samples on the float axis as a discrete series.
//
// Contract:
//   - Pure helpers (no global state). Used by impl_pulse.go / impl_chirp.go / impl_ohlc.go.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvseries/series"
)

// -----------------------------
// Tiny numeric named constants.
// -----------------------------
const (
	unitZero = 0.0 // named zero to avoid magic 0.0
	unitOne  = 1.0 // named one to avoid magic 1.0
)

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// samplePoints places values[i] at cfg.origin + i*cfg.step.
func samplePoints(cfg builderConfig, values []float64) []series.Point[float64] {
	pts := make([]series.Point[float64], len(values))
	for i, v := range values {
		pts[i] = series.Point[float64]{At: cfg.origin + float64(i)*cfg.step, Value: v}
	}

	return pts
}

// toDiscrete turns raw samples into a step series whose domain is the closed
// span of the sample positions.
func toDiscrete(method string, cfg builderConfig, values []float64) (*series.Discrete[float64], error) {
	if err := validateGrid(method, cfg, len(values)); err != nil {
		return nil, err
	}

	s, err := series.NewDiscrete(samplePoints(cfg, values))
	if err != nil {
		return nil, builderErrorf(method, ErrOptionViolation, "%v", err)
	}

	return s, nil
}

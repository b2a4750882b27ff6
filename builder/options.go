// SPDX-License-Identifier: MIT
// Package: lvseries/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// Notes:
//   • WithStep/WithOrigin place sample i of a sequence at origin + i*step on
//     the float axis; the incremental Discrete builder ignores them.
//   • WithLogger is observed by the incremental Discrete builder only.

package builder

import (
	"math"
	"math/rand" // RNG source for noisy sequences

	"github.com/sgostarter/i/l"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for noisy sequences.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// The stream is shared by every sequence built with the same option value.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets the sequence amplitude A (>0) for datasets (Pulse/Chirp/OHLC).
// For OHLC it scales the initial price.
// Panics if A <= 0 to avoid degenerate outputs.
// Complexity: O(1) time, O(1) space.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 (>0, cycles/sample) for pulses and
// the start frequency of chirps.
// Panics if f0 <= 0.
// Complexity: O(1) time, O(1) space.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}
	return func(c *builderConfig) {
		c.frequency = f0
	}
}

// WithTrend sets the linear trend coefficient k for sequences.
// Any real value is accepted (including 0). For OHLC it is added to the
// daily drift.
// Complexity: O(1) time, O(1) space.
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) {
		c.trendK = k
	}
}

// WithNoise sets Gaussian noise sigma (>=0) for sequences; for OHLC a positive
// sigma replaces the daily volatility.
// Panics if sigma < 0. Noise draws are seeded by c.rng.
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		// 0 means noiseless.
		c.noiseSigma = sigma
	}
}

// WithStep sets the spacing (>0, finite) between consecutive samples on the
// float axis.
// Panics on a non-positive or non-finite step.
// Complexity: O(1) time, O(1) space.
func WithStep(step float64) BuilderOption {
	if !(step > 0) || math.IsInf(step, 0) {
		panic("builder: WithStep(step<=0 or inf)")
	}
	return func(c *builderConfig) {
		c.step = step
	}
}

// WithOrigin sets the position of the first sample on the float axis.
// Panics on NaN or infinity.
// Complexity: O(1) time, O(1) space.
func WithOrigin(x float64) BuilderOption {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) {
		c.origin = x
	}
}

// WithLogger attaches a logger to the incremental Discrete builder.
// A nil logger selects the no-op logger.
// Complexity: O(1) time, O(1) space.
func WithLogger(logger l.Wrapper) BuilderOption {
	return func(c *builderConfig) {
		c.logger = logger
	}
}

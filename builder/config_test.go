// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sgostarter/i/l"
)

// TestDefaults verifies the deterministic defaults of newBuilderConfig.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.amplitude != defaultAmplitude || cfg.frequency != defaultFrequency {
		t.Errorf("default amplitude/frequency: got %v/%v", cfg.amplitude, cfg.frequency)
	}
	if cfg.trendK != defaultTrend || cfg.noiseSigma != defaultNoiseSigma {
		t.Errorf("default trend/noise: got %v/%v", cfg.trendK, cfg.noiseSigma)
	}
	if cfg.step != defaultStep || cfg.origin != defaultOrigin {
		t.Errorf("default step/origin: got %v/%v", cfg.step, cfg.origin)
	}
	if cfg.logger == nil {
		t.Error("default logger: expected no-op logger, got nil")
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. WithRand should set rng
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 2. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1 := cfgSeed1.rng.Int63()
	b1 := cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2 := cfgSeed2.rng.Int63()
	b2 := cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}

	// 3. rngFrom prefers the configured stream over the seed argument
	if got := rngFrom(cfgWithRand, 7); got != expRNG {
		t.Errorf("rngFrom: expected configured rng, got %v", got)
	}
	if got := rngFrom(newBuilderConfig(), 7); got == nil {
		t.Error("rngFrom: expected a seeded rng, got nil")
	}
}

// TestSequenceOptions verifies last-wins application of the numeric options.
func TestSequenceOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithAmplitude(2), WithAmplitude(3),
		WithFrequency(0.5),
		WithTrend(-1),
		WithNoise(0.25),
		WithStep(0.5),
		WithOrigin(-4),
	)
	if cfg.amplitude != 3 {
		t.Errorf("WithAmplitude override: expected 3, got %v", cfg.amplitude)
	}
	if cfg.frequency != 0.5 || cfg.trendK != -1 || cfg.noiseSigma != 0.25 {
		t.Errorf("frequency/trend/noise: got %v/%v/%v", cfg.frequency, cfg.trendK, cfg.noiseSigma)
	}
	if cfg.step != 0.5 || cfg.origin != -4 {
		t.Errorf("step/origin: got %v/%v", cfg.step, cfg.origin)
	}
}

// TestLoggerOption verifies that a nil logger resolves to the no-op logger.
func TestLoggerOption(t *testing.T) {
	t.Parallel()

	if cfg := newBuilderConfig(WithLogger(nil)); cfg.logger == nil {
		t.Error("WithLogger(nil): expected no-op logger, got nil")
	}

	if cfg := newBuilderConfig(WithLogger(l.NewConsoleLoggerWrapper())); cfg.logger == nil {
		t.Error("WithLogger: expected the supplied logger, got nil")
	}
}

// TestOptionPanics verifies that option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithAmplitude(0)":  func() { WithAmplitude(0) },
		"WithFrequency(-1)": func() { WithFrequency(-1) },
		"WithNoise(-0.1)":   func() { WithNoise(-0.1) },
		"WithStep(0)":       func() { WithStep(0) },
		"WithStep(NaN)":     func() { WithStep(math.NaN()) },
		"WithStep(+Inf)":    func() { WithStep(math.Inf(1)) },
		"WithOrigin(-Inf)":  func() { WithOrigin(math.Inf(-1)) },
		"WithOrigin(NaN)":   func() { WithOrigin(math.NaN()) },
	}
	for name, fn := range cases {
		name, fn := name, fn
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		})
	}
}

// TestValidateGrid verifies detection of overflowing and vanishing steps.
func TestValidateGrid(t *testing.T) {
	t.Parallel()

	if err := validateGrid(MethodPulse, newBuilderConfig(), 10); err != nil {
		t.Errorf("default grid: unexpected error %v", err)
	}
	if err := validateGrid(MethodPulse, newBuilderConfig(WithOrigin(1e16), WithStep(0.5)), 2); err == nil {
		t.Error("vanishing step: expected error")
	}
	if err := validateGrid(MethodPulse, newBuilderConfig(WithOrigin(math.MaxFloat64), WithStep(math.MaxFloat64)), 3); err == nil {
		t.Error("overflowing grid: expected error")
	}
}

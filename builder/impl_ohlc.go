// SPDX-License-Identifier: MIT
// Package: lvseries/builder
//
// impl_ohlc.go - deterministic OHLC series via discrete-time GBM with intraday steps.
//
// Purpose:
//   - Emit reproducible open/high/low/close step series for 'days' trading days
//     using a GBM-like path.
//   - Use a small fixed number of intraday steps to form realistic wicks (high/low).
//   - Strict determinism: prefer cfg.rng if present; otherwise fall back to 'seed'.
//
// Contract:
//   - OHLC(days, seed, opts...) → four discrete series sharing one domain;
//     day d sits at origin + d*step.
//   - days < MinOHLCDays ⇒ ErrBadSize; never panics.
//   - O(days * steps) time; O(days) memory; steps is a tiny constant.
//
// Invariants (by construction after each day):
//   - low ≤ min(open, close) ≤ max(open, close) ≤ high.
//
// Options:
//   - WithAmplitude scales S0, WithTrend is added to μ, WithNoise (>0) replaces σ.

package builder

import (
	"math"

	"github.com/katalvlaran/lvseries/series"
)

const (
	defOHLCStart     = 100.0  // Initial price S0 at amplitude 1 (>0)
	defOHLCDailyMu   = 0.0005 // Default daily drift μ
	defOHLCDailyVol  = 0.02   // Default daily volatility σ (≥0)
	defIntradaySteps = 8      // Fixed intraday steps per day (small constant)
)

// seqOHLCParams groups resolved knobs for the OHLC generator.
type seqOHLCParams struct {
	S0    float64 // initial price > 0
	mu    float64 // daily drift
	vol   float64 // daily volatility ≥ 0
	steps int     // intraday steps per day ≥ 1
}

// extractOHLCParams maps builderConfig → seqOHLCParams.
func extractOHLCParams(cfg builderConfig) seqOHLCParams {
	p := seqOHLCParams{
		S0:    defOHLCStart * cfg.amplitude,
		mu:    defOHLCDailyMu + cfg.trendK,
		vol:   defOHLCDailyVol,
		steps: defIntradaySteps,
	}
	if cfg.noiseSigma > 0 {
		p.vol = cfg.noiseSigma
	}

	return p
}

// OHLC returns deterministic open/high/low/close step series for 'days'
// trading days.
// Model (discrete GBM per intraday step with Δt = 1/steps):
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²)Δt + σ√Δt * Z),  Z ~ N(0,1).
func OHLC(days int, seed int64, opts ...BuilderOption) (open, high, low, close *series.Discrete[float64], err error) {
	if err = validateMin(MethodOHLC, days, MinOHLCDays); err != nil {
		return nil, nil, nil, nil, err
	}

	cfg := newBuilderConfig(opts...)
	p := extractOHLCParams(cfg)
	rng := rngFrom(cfg, seed)

	opens := make([]float64, days)
	highs := make([]float64, days)
	lows := make([]float64, days)
	closes := make([]float64, days)

	S := p.S0

	dt := 1.0 / float64(p.steps)        // time step
	driftTerm := p.mu - 0.5*p.vol*p.vol // (μ - 0.5 σ²), reused
	noiseScale := p.vol * math.Sqrt(dt) // σ √Δt, reused

	var dayHigh, dayLow float64 // running extrema for the day

	for d := 0; d < days; d++ {
		opens[d] = S
		dayHigh, dayLow = S, S

		for s := 0; s < p.steps; s++ {
			S *= math.Exp(driftTerm*dt + noiseScale*rng.NormFloat64())
			dayHigh = math.Max(dayHigh, S)
			dayLow = math.Min(dayLow, S)
		}

		// Open seeded the extrema and close is the last step, so both are inside.
		closes[d] = S
		highs[d] = dayHigh
		lows[d] = dayLow
	}

	if open, err = toDiscrete(MethodOHLC, cfg, opens); err != nil {
		return nil, nil, nil, nil, err
	}
	// Same grid: the remaining conversions cannot fail once open succeeded.
	high, _ = toDiscrete(MethodOHLC, cfg, highs)
	low, _ = toDiscrete(MethodOHLC, cfg, lows)
	close, _ = toDiscrete(MethodOHLC, cfg, closes)

	return open, high, low, close, nil
}

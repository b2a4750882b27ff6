// Package lvseries is an in-memory toolkit for piecewise-defined functions of a
// real variable: step series, interpolated series, periodic series and their
// combinations, with the valid domain of every result tracked for you.
//
// 🚀 What is in lvseries?
//
//	A pure, immutable library that brings together:
//		• Intervals: open/closed ends, containment, intersection, union, notation "<0;1)"
//		• Domains: single intervals, point sets and patchworks of disjoint pieces
//		• Series: function-backed, discrete (step), linear interpolation, modulo
//		• Combinators: apply, translate, slice, join, bundle, discretize
//		• Merge-join of step series with boundary-correct tie-breaking
//		• Builders: incremental put/finalize, synthetic pulse/chirp/OHLC datasets
//		• Time axes: index any series by time.Time
//
// ✨ Why choose lvseries?
//
//   - Every evaluation is checked against the domain; errors say where and why
//   - Lazy views share their parents, eager joins produce compact step series
//   - Generic over the value type: numbers, slices, structs
//
// Packages:
//
//	interval/ — Interval value type, notation parsing, set operations, YAML/text encoding
//	domain/   — Domain variants (Empty, Single, PointSet, Patchwork) and their algebra
//	series/   — Series[V] variants, views, JoinDiscrete, bundles
//	builder/  — incremental Discrete builder, deterministic sample sequences
//	timeaxis/ — time.Time ↔ float axis mapping, time-indexed series
//	examples/ — runnable walkthroughs
//
// Quick ASCII example:
//
//	  2 ┤      ┌──────●
//	  1 ┤ ●────┘
//	    └─┬────┬──────┬──
//	      0    1      2
//
//	is series.MustDiscrete([(0,1) (1,2)], "<0;2>"): right-continuous steps.
//
//	go get github.com/katalvlaran/lvseries
package lvseries

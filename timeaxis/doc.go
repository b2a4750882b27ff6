// Package timeaxis indexes series by time.Time instead of float positions.
//
// An Axis is a bijection between instants and the float axis: an instant t
// maps to (t - epoch) / unit. Any series.Series can be put Over an axis and
// then queried, sliced and joined with instants; the float series underneath
// stays reachable through Inner.
//
//	ax, _ := timeaxis.NewAxis(day0, time.Hour)
//	load := timeaxis.Over[float64](hourly, ax)
//	v, err := load.At(day0.Add(90 * time.Minute))   // hourly.At(1.5)
//
// Slice takes a half-open range <from;to); a zero time on either side leaves
// that side unbounded. Join re-expresses the second operand on the axis of
// the first, which requires both axes to share a unit.
package timeaxis

// Package interval implements immutable intervals of the real line with
// independently closed or open ends.
//
// What is an Interval?
//
//	A value {start, stop, leftClosed, rightClosed} with start ≤ stop that
//	denotes one contiguous subset of ℝ. Either end may be closed (the bound
//	belongs to the set) or open (it does not). Infinite bounds are always open.
//
// Notation:
//
//	Intervals are written as "<a;b>", where each bracket is chosen
//	independently: '<' or '(' on the left, '>' or ')' on the right.
//	'<' and '>' are closed ends, '(' and ')' are open ends. Bounds are decimal
//	floats or "inf" / "-inf":
//
//	  <0;1>      closed unit interval
//	  (-inf;2)   everything below 2
//	  <1;1>      the single point 1
//	  (0;0)      the empty interval
//
// Key operations:
//   - Contains / ContainsInterval — boundary-exact membership and inclusion.
//   - Intersection                — always defined, possibly empty.
//   - Union                       — defined only when the result is contiguous.
//   - ExtendToPoint, Translate    — derive enlarged or shifted intervals.
//
// Emptiness:
//
//	An interval with start == stop is empty unless both ends are closed, in
//	which case it is the degenerate single point. All empty intervals compare
//	equal and hash identically regardless of their stored bounds.
//
// Errors:
//
//	ErrInvalidBounds — malformed notation, start > stop, NaN bounds, or a
//	closed end placed on an infinite bound.
package interval

// Package domain generalizes interval.Interval to subsets of the real line
// that need not be contiguous.
//
// A Domain is one of four variants, fixed by this package:
//
//   - Empty:     the empty set.
//   - Single:    one non-empty interval, e.g. <0;1).
//   - PointSet:  a sorted, de-duplicated set of isolated finite points, e.g. {0;2.5;7}.
//   - Patchwork: a sorted list of Single / PointSet members, e.g. <0;1) + {3}.
//
// The interface is sealed: only the variants above implement it, so the
// cross-variant rules below are exhaustive.
//
// Intersection (∩):
//
//	Empty ∩ X          = Empty
//	Single ∩ Single    = Single or Empty (interval intersection)
//	PointSet ∩ X       = points of the set contained in X (symmetric)
//	Patchwork ∩ Single = ErrUnsupportedOperation
//	Patchwork ∩ Patchwork = ErrUnsupportedOperation
//
// Union (+):
//
//	Empty + X          = X
//	Single + Single    = Single when contiguous, otherwise a two-member Patchwork
//	Single + PointSet  = Patchwork (points are never absorbed)
//	PointSet + PointSet = PointSet
//	X + Patchwork      = Patchwork of both flattened member lists, re-sorted;
//	                     overlapping members are kept as they are.
//
// Ordering:
//
// Domains are ordered by StartsAt only (see Less and Compare). Two domains
// starting at the same point compare equal even if they differ otherwise;
// this keeps Patchwork construction stable, it is not a total order.
//
// Textual form:
//
//	Single     "<0;1)"             (interval notation)
//	PointSet   "{0;2.5;7}"
//	Patchwork  "<0;1) + {3} + (4;inf)"
//	Empty      "(0;0)"
//
// Parse reads every form; Coerce additionally accepts Domain, interval
// values and []float64 point lists.
package domain

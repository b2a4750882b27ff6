// Package series models piecewise-defined functions of a real variable and
// composes them while tracking where the result is defined.
//
// A Series[V] pairs a domain.Domain with an evaluation rule. At(p) fails with
// *NotInDomainError outside the domain and delegates to the rule otherwise.
// Series values are immutable; combinators return new values that share their
// parents.
//
// Variants:
//
//   - Function            fn(p) over an arbitrary domain.
//   - Discrete            right-continuous step function over sorted breakpoints.
//   - LinearInterpolation interpolates between the breakpoints of a Discrete.
//   - Modulo              repeats a bounded series over the whole real line.
//   - Bundle              evaluates several series together ([]V per point).
//   - DiscreteBundle      a Bundle of Discrete members that can be composed.
//
// Lazy views (no data is copied, every query re-evaluates the parents):
//
//	Apply(s, fn)      fn(p, s(p))                   domain of s
//	Translate(s, x)   s(p - x)                      domain of s shifted by x
//	Slice(s, sub)     s(p)                          sub, which must be within s
//	Join(a, b, fn)    fn(p, a(p), b(p))             a ∩ b
//
// Eager operations materialize a Discrete:
//
//	JoinDiscrete(a, b, fn)   merge-join over both breakpoint lists
//	(*Discrete).Compute      collapse runs of equal values
//	(*Discrete).Translate    shift the breakpoints
//	(*Discrete).Apply        map the values
//	Discretize(s, points)    sample s at points
//	(*DiscreteBundle).Compose
//
// Domain-like arguments (the dom of NewFunction and NewDiscreteOn, the sub of
// Slice, ...) accept anything domain.Coerce accepts, including the interval
// notation "<0;1)".
//
// Errors:
//
//	ErrNotInDomain (*NotInDomainError), ErrTypeConstraint, ErrTypeMismatch,
//	ErrInvalidPeriod, ErrInvalidBreakpoints; domain intersections may also
//	return domain.ErrUnsupportedOperation.
//
// The package is single-threaded by construction: values are immutable and
// safe to share between goroutines, nothing blocks.
package series

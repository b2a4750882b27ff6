// SPDX-License-Identifier: MIT
// Package: lvseries/interval
//
// notation.go — the "<a;b>" textual form of an interval.
//
// Grammar:
//   notation := left bound ';' bound right
//   left     := '<' (closed) | '(' (open)
//   right    := '>' (closed) | ')' (open)
//   bound    := decimal float | "inf" | "-inf" (surrounding spaces allowed)
//
// String and Parse round-trip exactly for every finite bound: bounds are
// rendered with the shortest representation that parses back to the same
// float64.

package interval

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

const (
	closedLeft  = '<'
	openLeft    = '('
	closedRight = '>'
	openRight   = ')'
	separator   = ";"
)

// Parse reads an interval from its notation, e.g. "<-10;2)".
//
// Returns ErrInvalidBounds if the notation does not start with '<' or '(',
// does not end with '>' or ')', does not contain exactly one ';', has an
// unparsable bound, or describes an invalid interval (see New).
func Parse(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return Interval{}, boundsErrorf("notation %q is too short", s)
	}

	first, last := s[0], s[len(s)-1]
	if first != closedLeft && first != openLeft {
		return Interval{}, boundsErrorf("notation %q must start with %q or %q", s, closedLeft, openLeft)
	}
	if last != closedRight && last != openRight {
		return Interval{}, boundsErrorf("notation %q must end with %q or %q", s, closedRight, openRight)
	}

	body := s[1 : len(s)-1]
	if strings.Count(body, separator) != 1 {
		return Interval{}, boundsErrorf("notation %q needs exactly one %q separator", s, separator)
	}

	lo, hi, _ := strings.Cut(body, separator)

	start, err := parseBound(lo)
	if err != nil {
		return Interval{}, boundsErrorf("notation %q: start: %v", s, err)
	}
	stop, err := parseBound(hi)
	if err != nil {
		return Interval{}, boundsErrorf("notation %q: stop: %v", s, err)
	}

	return New(start, stop, first == closedLeft, last == closedRight)
}

// MustParse is like Parse but panics on error.
// Intended for package-level fixtures and tests.
func MustParse(s string) Interval {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return i
}

// String renders the interval in notation form, e.g. "<1;2)".
func (i Interval) String() string {
	var sb strings.Builder

	if i.leftClosed {
		sb.WriteByte(closedLeft)
	} else {
		sb.WriteByte(openLeft)
	}
	sb.WriteString(formatBound(i.start))
	sb.WriteString(separator)
	sb.WriteString(formatBound(i.stop))
	if i.rightClosed {
		sb.WriteByte(closedRight)
	} else {
		sb.WriteByte(openRight)
	}

	return sb.String()
}

// Coerce converts an interval-like value into an Interval.
//
// Accepted inputs: Interval, *Interval (nil is the empty interval), and any
// value that spf13/cast renders as a string (string, []byte, fmt.Stringer...),
// which is then parsed as notation.
func Coerce(v any) (Interval, error) {
	switch x := v.(type) {
	case Interval:
		return x, nil
	case *Interval:
		if x == nil {
			return Empty(), nil
		}

		return *x, nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return Interval{}, boundsErrorf("cannot coerce %T to an interval", v)
	}

	return Parse(s)
}

// parseBound reads one bound; strconv accepts "inf", "+inf" and "-inf".
func parseBound(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, strconv.ErrSyntax
	}

	return f, nil
}

// formatBound renders a bound in the shortest round-trippable form.
func formatBound(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

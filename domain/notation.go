// SPDX-License-Identifier: MIT
// Package: lvseries/domain
//
// notation.go — parsing and coercion of domain-like values.
//
// Grammar:
//   domain   := member { '+' member }
//   member   := interval | pointset
//   interval := see package interval ("<a;b)", "(-inf;0>", ...)
//   pointset := '{' [ float { ';' float } ] '}'

package domain

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/katalvlaran/lvseries/interval"
)

// Parse reads a domain from its textual form.
//
// A single interval notation yields Single (or Empty for an empty interval),
// braces yield a PointSet and '+'-joined members yield a Patchwork.
// Returns an error wrapping interval.ErrInvalidBounds on malformed input.
func Parse(s string) (Domain, error) {
	rest := strings.TrimSpace(s)
	if rest == "" {
		return nil, notationErrorf("empty domain notation")
	}

	var members []Domain
	for {
		end := memberEnd(rest)
		if end < 0 {
			return nil, notationErrorf("domain %q: unterminated member %q", s, rest)
		}

		m, err := parseMember(rest[:end+1])
		if err != nil {
			return nil, err
		}
		members = append(members, m)

		rest = strings.TrimSpace(rest[end+1:])
		if rest == "" {
			break
		}
		if rest[0] != '+' {
			return nil, notationErrorf("domain %q: expected '+' before %q", s, rest)
		}
		rest = strings.TrimSpace(rest[1:])
		if rest == "" {
			return nil, notationErrorf("domain %q: dangling '+'", s)
		}
	}

	return NewPatchwork(members...), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Domain {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Coerce converts a domain-like value into a Domain.
//
// Accepted inputs: Domain, interval.Interval, *interval.Interval, []float64
// (a point set) and any value spf13/cast renders as a string, parsed as notation.
func Coerce(v any) (Domain, error) {
	switch x := v.(type) {
	case Domain:
		return x, nil
	case interval.Interval:
		return FromInterval(x), nil
	case *interval.Interval:
		if x == nil {
			return Empty{}, nil
		}

		return FromInterval(*x), nil
	case []float64:
		return NewPointSet(x...), nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, notationErrorf("cannot coerce %T to a domain", v)
	}

	return Parse(s)
}

// memberEnd returns the index of the character closing the first member.
func memberEnd(s string) int {
	if strings.HasPrefix(s, "{") {
		return strings.IndexByte(s, '}')
	}

	return strings.IndexAny(s, ">)")
}

func parseMember(s string) (Domain, error) {
	if !strings.HasPrefix(s, "{") {
		iv, err := interval.Parse(s)
		if err != nil {
			return nil, err
		}

		return FromInterval(iv), nil
	}

	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return Empty{}, nil
	}

	fields := strings.Split(body, ";")
	points := make([]float64, 0, len(fields))
	for _, f := range fields {
		p, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, notationErrorf("point set %q: %v", s, err)
		}
		points = append(points, p)
	}

	return NewPointSet(points...), nil
}

// SPDX-License-Identifier: MIT
// Package: lvseries/domain
//
// errors.go — sentinel errors for the domain package.
//
// Callers branch with errors.Is; context is attached with %w.
// Notation errors reuse interval.ErrInvalidBounds.

package domain

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvseries/interval"
)

// ErrUnsupportedOperation indicates a variant combination the algebra does
// not define, e.g. the intersection of two patchworks.
// Usage: if errors.Is(err, ErrUnsupportedOperation) { /* split the operands */ }.
var ErrUnsupportedOperation = errors.New("domain: unsupported operation")

// unsupportedf wraps ErrUnsupportedOperation with the operand pair.
func unsupportedf(op string, a, b Domain) error {
	return fmt.Errorf("%w: %s %s %s", ErrUnsupportedOperation, a, op, b)
}

// notationErrorf wraps interval.ErrInvalidBounds for malformed domain notation.
func notationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", interval.ErrInvalidBounds, fmt.Sprintf(format, args...))
}

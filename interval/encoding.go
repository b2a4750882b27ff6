// SPDX-License-Identifier: MIT
// Package: lvseries/interval
//
// encoding.go — text and YAML encodings, both through the notation.

package interval

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interval) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler: an interval is a scalar notation string.
func (i Interval) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Interval) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml line %d: expected a scalar notation", ErrInvalidBounds, node.Line)
	}

	return i.UnmarshalText([]byte(node.Value))
}

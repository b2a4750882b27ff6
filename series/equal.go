// SPDX-License-Identifier: MIT
// Package: lvseries/series
//
// equal.go — value equality used by compaction and merge de-duplication.

package series

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets cmp descend into unexported fields of user value types.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// valuesEqual reports deep equality of two series values. Types with an
// Equal(T) bool method (time.Time, ...) are compared through it; functions
// are equal only when both are nil. exportAll keeps cmp from panicking on
// unexported fields, so the comparison never panics.
func valuesEqual[V any](a, b V) bool {
	if eq, ok := any(a).(interface{ Equal(V) bool }); ok {
		return eq.Equal(b)
	}

	return cmp.Equal(a, b, exportAll)
}

// Released under an MIT license. See LICENSE.

// Package literal defines the interface for alc types whose literal
// representation differs from their display representation.
package literal

import (
	"github.com/alc-lisp/alc/internal/common/interface/object"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal representation of an object, if it has one,
// and its display representation otherwise.
func String(o object.I) string {
	l, ok := o.(I)
	if !ok {
		return o.String()
	}

	return l.Literal()
}

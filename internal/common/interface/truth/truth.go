// Released under an MIT license. See LICENSE.

// Package truth defines the interface for alc types that have a truth value.
package truth

import (
	"github.com/alc-lisp/alc/internal/common/interface/object"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for an object.
// Objects without a truth value are true.
func Value(o object.I) bool {
	b, ok := o.(I)
	if !ok {
		return true
	}

	return b.Bool()
}

// Released under an MIT license. See LICENSE.

// Package null provides alc's null value.
package null

import (
	"github.com/alc-lisp/alc/internal/common/interface/object"
)

const name = "null"

// T (null) is the type of the null value.
type T struct{}

// Null is the only value of type T.
var Null = &T{} //nolint:gochecknoglobals

// Equal returns true if c is null.
func (n *T) Equal(c object.I) bool {
	return Is(c)
}

// Name returns the type name for null.
func (n *T) Name() string {
	return name
}

// String returns the text of null.
func (n *T) String() string {
	return name
}

// Is returns true if c is null.
func Is(c object.I) bool {
	_, ok := c.(*T)
	return ok
}

// Released under an MIT license. See LICENSE.

// Package str provides alc's string type.
package str

import (
	"github.com/alc-lisp/alc/internal/common/interface/object"
)

const name = "string"

// T (string) wraps Go's string type.
type T string

// New creates a new string object.
func New(v string) *T {
	s := T(v)
	return &s
}

// The string type is an object.

// Equal returns true if the object c wraps the same string and false otherwise.
func (s *T) Equal(c object.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the name of the string type.
func (s *T) Name() string {
	return name
}

// The string type is a boolean.

// Bool returns the boolean value of the string s.
func (s *T) Bool() bool {
	return s.String() != ""
}

// The string type has a literal representation.

// Literal returns the string s as it would appear in source code.
func (s *T) Literal() string {
	return `"` + string(*s) + `"`
}

// The string type is a stringer.

// String returns the text of the string s.
func (s *T) String() string {
	return string(*s)
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c object.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c object.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

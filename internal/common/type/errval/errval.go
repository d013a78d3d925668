// Released under an MIT license. See LICENSE.

// Package errval provides alc's first-class error value.
//
// An error value is an ordinary result until something decides to treat
// it as fatal. Because it also satisfies Go's error interface it can be
// wrapped when that happens.
package errval

import (
	"fmt"

	"github.com/alc-lisp/alc/internal/common/interface/object"
)

const name = "error"

// T (errval) is an error value.
type T struct {
	message string
}

// New creates a new error value with the message m.
func New(m string) *T {
	return &T{message: m}
}

// Newf creates a new error value with a formatted message.
func Newf(format string, a ...any) *T {
	return New(fmt.Sprintf(format, a...))
}

// Equal returns true if c is an error value with the same message.
func (e *T) Equal(c object.I) bool {
	return Is(c) && e.message == To(c).message
}

// Error returns the message for e. It makes e a Go error.
func (e *T) Error() string {
	return e.message
}

// Message returns the message for e.
func (e *T) Message() string {
	return e.message
}

// Name returns the type name for e.
func (e *T) Name() string {
	return name
}

// String returns the display text of e.
func (e *T) String() string {
	return name + ": " + e.message
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c object.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c object.I) *T {
	if e, ok := c.(*T); ok {
		return e
	}

	panic("not an " + name)
}

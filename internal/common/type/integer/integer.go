// Released under an MIT license. See LICENSE.

// Package integer provides alc's signed integer type.
package integer

import (
	"strconv"

	"github.com/alc-lisp/alc/internal/common/interface/object"
)

const name = "integer"

// T (integer) wraps Go's int64 type.
type T int64

// New creates a new integer.
func New(i int64) *T {
	v := T(i)
	return &v
}

// Parse creates a new integer from its decimal representation.
func Parse(s string) (*T, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}

	return New(i), nil
}

// The integer type is an object.

// Equal returns true if c is an integer with the same value as n.
func (n *T) Equal(c object.I) bool {
	return Is(c) && *n == *To(c)
}

// Name returns the type name for the integer n.
func (n *T) Name() string {
	return name
}

// The integer type is a boolean.

// Bool returns false if n is zero and true otherwise.
func (n *T) Bool() bool {
	return *n != 0
}

// Int returns the value of n.
func (n *T) Int() int64 {
	return int64(*n)
}

// String returns the text of the integer n.
func (n *T) String() string {
	return strconv.FormatInt(int64(*n), 10)
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c object.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c object.I) *T {
	if n, ok := c.(*T); ok {
		return n
	}

	panic("not an " + name)
}

// Released under an MIT license. See LICENSE.

// Package boolean provides alc's boolean value type.
package boolean

import (
	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the shared boolean for the bool b.
func Bool(b bool) *T {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c object.I) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is an object.
	_ = object.I(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c object.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c object.I) *T {
	if b, ok := c.(*T); ok {
		return b
	}

	panic("not a " + name)
}

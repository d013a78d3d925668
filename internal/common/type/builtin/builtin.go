// Released under an MIT license. See LICENSE.

// Package builtin provides alc's native function type.
package builtin

import (
	"io"

	"github.com/alc-lisp/alc/internal/common/interface/object"
)

const name = "builtin"

// Evaluator is the view of the evaluator given to native functions.
type Evaluator interface {
	// Apply calls a builtin or user-defined function.
	Apply(fn object.I, args []object.I) (object.I, error)

	// Output is where printing builtins write.
	Output() io.Writer
}

// Func is the signature of a native function. A Func signals failure by
// returning an error value, not by panicking.
type Func func(e Evaluator, args []object.I) object.I

// T (builtin) is a named native function.
type T struct {
	fn   Func
	name string
}

// New creates a new builtin.
func New(n string, fn Func) *T {
	return &T{fn: fn, name: n}
}

// Call invokes the builtin b.
func (b *T) Call(e Evaluator, args []object.I) object.I {
	return b.fn(e, args)
}

// Equal returns true if c is the same builtin as b.
func (b *T) Equal(c object.I) bool {
	return Is(c) && b == To(c)
}

// Function returns the name b was created with.
func (b *T) Function() string {
	return b.name
}

// Name returns the type name for the builtin b.
func (b *T) Name() string {
	return name
}

// String returns the display text of the builtin b.
func (b *T) String() string {
	return "<" + name + " " + b.name + ">"
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

// Released under an MIT license. See LICENSE.

// Package function provides alc's closure type.
package function

import (
	"strings"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/reader/ast"
	"github.com/alc-lisp/alc/internal/type/env"
)

const name = "function"

// T (function) pairs parameters and a body with the environment
// that was active where the function was defined.
type T struct {
	body   ast.Node
	env    *env.T
	params []string
}

// New creates a new function. The environment e is shared, not copied.
func New(e *env.T, params []string, body ast.Node) *T {
	return &T{body: body, env: e, params: params}
}

// Body returns the body of the function f.
func (f *T) Body() ast.Node {
	return f.body
}

// Env returns the environment captured by the function f.
func (f *T) Env() *env.T {
	return f.env
}

// Equal returns true if c is the same function as f.
func (f *T) Equal(c object.I) bool {
	return Is(c) && f == To(c)
}

// Name returns the type name for the function f.
func (f *T) Name() string {
	return name
}

// Params returns the parameter names of the function f.
func (f *T) Params() []string {
	return f.params
}

// String returns the display text of the function f.
func (f *T) String() string {
	return "<fn (" + strings.Join(f.params, " ") + ")>"
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c object.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c object.I) *T {
	if f, ok := c.(*T); ok {
		return f
	}

	panic("not a " + name)
}

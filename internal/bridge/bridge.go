// Released under an MIT license. See LICENSE.

// Package bridge connects alc to the programs that host it.
//
// It converts values between alc and Go, runs source text against a set of
// globals, and serves evaluation sessions over a websocket.
package bridge

import (
	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/engine"
	"github.com/alc-lisp/alc/internal/engine/commands"
	"github.com/alc-lisp/alc/internal/reader"
	"github.com/alc-lisp/alc/internal/type/env"
)

// Globals creates a global environment whose parent holds the generic builtins.
func Globals() *env.T {
	builtins := env.New(nil)
	commands.Register(builtins)

	return env.New(builtins)
}

// Run reads and evaluates source against globals.
func Run(source string, globals *env.T, options ...engine.Option) (object.I, error) {
	r, err := reader.Read(source)
	if err != nil {
		return nil, err
	}

	return engine.New(globals, options...).Eval(r.Root())
}

// Released under an MIT license. See LICENSE.

// Package commands provides the builtins available to every alc host.
package commands

import (
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/type/env"
)

// Prefix is prepended to every builtin name to form its alias.
const Prefix = "std/"

// Functions returns a mapping of names to the generic builtins.
func Functions() map[string]builtin.Func {
	return map[string]builtin.Func{
		"!=":        notEqual,
		"*":         mul,
		"+":         add,
		"-":         sub,
		"/":         div,
		"<":         lt,
		"<=":        le,
		"=":         eq,
		"==":        eqeq,
		">":         gt,
		">=":        ge,
		"abs":       abs,
		"and":       and,
		"concat":    concat,
		"error":     makeError,
		"filter":    filter,
		"first":     first,
		"head":      head,
		"is_error":  isError,
		"join":      join,
		"len":       length,
		"lines":     lines,
		"list":      makeList,
		"lower":     lower,
		"map":       mapList,
		"match":     match,
		"mod":       mod,
		"not":       not,
		"nth":       nth,
		"or":        or,
		"parse_int": parseInt,
		"print":     display,
		"println":   displayLine,
		"push":      push,
		"range":     makeRange,
		"reduce":    reduce,
		"rest":      rest,
		"reverse":   reverse,
		"slice":     slice,
		"sort":      sortList,
		"split":     split,
		"str":       makeString,
		"tail":      tail,
		"type":      typeName,
		"upper":     upper,
	}
}

// Define binds each function in fs in e under its name and its std/ alias.
func Define(e *env.T, fs map[string]builtin.Func) {
	for name, fn := range fs {
		b := builtin.New(name, fn)

		e.Define(name, b)
		e.Define(Prefix+name, b)
	}
}

// Register binds the generic builtins in e.
func Register(e *env.T) {
	Define(e, Functions())
}

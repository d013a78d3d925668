// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to builtins.
//
// Each check returns nil when the arguments are acceptable and an error
// value describing the problem otherwise. Builtins return that error value
// as their result.
package validate

import (
	"fmt"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/function"
	"github.com/alc-lisp/alc/internal/common/type/integer"
	"github.com/alc-lisp/alc/internal/common/type/list"
	"github.com/alc-lisp/alc/internal/common/type/str"
)

// AtLeast checks that at least min arguments were passed.
func AtLeast(name string, args []object.I, min int) *errval.T {
	if len(args) < min {
		return errval.Newf(
			"%s: expected at least %s, got %d",
			name, Count(min, "argument", "s"), len(args),
		)
	}

	return nil
}

// Callable checks that argument i is a builtin or a function.
func Callable(name string, args []object.I, i int) *errval.T {
	if builtin.Is(args[i]) || function.Is(args[i]) {
		return nil
	}

	return mismatch(name, i, "function", args[i])
}

// Count returns n and label, pluralized with p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Exactly checks that exactly n arguments were passed.
func Exactly(name string, args []object.I, n int) *errval.T {
	if len(args) != n {
		return errval.Newf(
			"%s: expected %s, got %d",
			name, Count(n, "argument", "s"), len(args),
		)
	}

	return nil
}

// Integer returns argument i as an int64.
func Integer(name string, args []object.I, i int) (int64, *errval.T) {
	n, ok := args[i].(*integer.T)
	if !ok {
		return 0, mismatch(name, i, "integer", args[i])
	}

	return n.Int(), nil
}

// Integers returns every argument as an int64.
func Integers(name string, args []object.I) ([]int64, *errval.T) {
	ns := make([]int64, len(args))

	for i := range args {
		n, e := Integer(name, args, i)
		if e != nil {
			return nil, e
		}

		ns[i] = n
	}

	return ns, nil
}

// List returns argument i as a list.
func List(name string, args []object.I, i int) (*list.T, *errval.T) {
	l, ok := args[i].(*list.T)
	if !ok {
		return nil, mismatch(name, i, "list", args[i])
	}

	return l, nil
}

// Range checks that between min and max arguments were passed.
func Range(name string, args []object.I, min, max int) *errval.T {
	if len(args) < min || len(args) > max {
		return errval.Newf(
			"%s: expected %d to %d arguments, got %d",
			name, min, max, len(args),
		)
	}

	return nil
}

// String returns argument i as a Go string.
func String(name string, args []object.I, i int) (string, *errval.T) {
	s, ok := args[i].(*str.T)
	if !ok {
		return "", mismatch(name, i, "string", args[i])
	}

	return s.String(), nil
}

func mismatch(name string, i int, expected string, actual object.I) *errval.T {
	return errval.Newf(
		"%s: argument %d: expected %s, got %s",
		name, i+1, expected, actual.Name(),
	)
}

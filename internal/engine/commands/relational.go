// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/boolean"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/validate"
)

func eq(_ builtin.Evaluator, args []object.I) object.I {
	return equal("=", args)
}

func eqeq(_ builtin.Evaluator, args []object.I) object.I {
	return equal("==", args)
}

func ge(_ builtin.Evaluator, args []object.I) object.I {
	return chain(">=", args, func(a, b int64) bool { return a >= b })
}

func gt(_ builtin.Evaluator, args []object.I) object.I {
	return chain(">", args, func(a, b int64) bool { return a > b })
}

func le(_ builtin.Evaluator, args []object.I) object.I {
	return chain("<=", args, func(a, b int64) bool { return a <= b })
}

func lt(_ builtin.Evaluator, args []object.I) object.I {
	return chain("<", args, func(a, b int64) bool { return a < b })
}

func notEqual(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("!=", args, 2); e != nil {
		return e
	}

	return boolean.Bool(!args[0].Equal(args[1]))
}

func equal(name string, args []object.I) object.I {
	if e := validate.AtLeast(name, args, 2); e != nil {
		return e
	}

	for _, v := range args[1:] {
		if !args[0].Equal(v) {
			return boolean.False
		}
	}

	return boolean.True
}

// chain checks that cmp holds for each adjacent pair of arguments.
func chain(name string, args []object.I, cmp func(a, b int64) bool) object.I {
	v, e := numbers(name, args, 2)
	if e != nil {
		return e
	}

	for i := 1; i < len(v); i++ {
		if !cmp(v[i-1], v[i]) {
			return boolean.False
		}
	}

	return boolean.True
}

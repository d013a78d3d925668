// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/interface/truth"
	"github.com/alc-lisp/alc/internal/common/type/boolean"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/validate"
)

func and(_ builtin.Evaluator, args []object.I) object.I {
	for _, v := range args {
		if !truth.Value(v) {
			return boolean.False
		}
	}

	return boolean.True
}

func not(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("not", args, 1); e != nil {
		return e
	}

	return boolean.Bool(!truth.Value(args[0]))
}

func or(_ builtin.Evaluator, args []object.I) object.I {
	for _, v := range args {
		if truth.Value(v) {
			return boolean.True
		}
	}

	return boolean.False
}

// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"strings"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/boolean"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/null"
	"github.com/alc-lisp/alc/internal/common/type/str"
	"github.com/alc-lisp/alc/internal/common/validate"
)

func display(e builtin.Evaluator, args []object.I) object.I {
	fmt.Fprint(e.Output(), strings.Join(strs(args), " "))

	return null.Null
}

func displayLine(e builtin.Evaluator, args []object.I) object.I {
	fmt.Fprintln(e.Output(), strings.Join(strs(args), " "))

	return null.Null
}

func isError(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("is_error", args, 1); e != nil {
		return e
	}

	return boolean.Bool(errval.Is(args[0]))
}

func makeError(_ builtin.Evaluator, args []object.I) object.I {
	s, e := oneString("error", args)
	if e != nil {
		return e
	}

	return errval.New(s)
}

func typeName(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("type", args, 1); e != nil {
		return e
	}

	return str.New(args[0].Name())
}

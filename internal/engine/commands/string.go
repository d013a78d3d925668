// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/boolean"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/list"
	"github.com/alc-lisp/alc/internal/common/type/str"
	"github.com/alc-lisp/alc/internal/common/validate"
	"github.com/michaelmacinnis/adapted"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func join(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("join", args, 2); e != nil {
		return e
	}

	l, e := validate.List("join", args, 0)
	if e != nil {
		return e
	}

	sep, e := validate.String("join", args, 1)
	if e != nil {
		return e
	}

	return str.New(strings.Join(strs(l.Elements()), sep))
}

func lines(_ builtin.Evaluator, args []object.I) object.I {
	s, e := oneString("lines", args)
	if e != nil {
		return e
	}

	return strList(strings.Split(s, "\n"))
}

func lower(_ builtin.Evaluator, args []object.I) object.I {
	s, e := oneString("lower", args)
	if e != nil {
		return e
	}

	return str.New(cases.Lower(language.Und).String(s))
}

// match reports whether a string matches a shell pattern.
func match(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("match", args, 2); e != nil {
		return e
	}

	pattern, e := validate.String("match", args, 0)
	if e != nil {
		return e
	}

	s, e := validate.String("match", args, 1)
	if e != nil {
		return e
	}

	ok, err := adapted.Match(pattern, s)
	if err != nil {
		return errval.New("match: " + err.Error())
	}

	return boolean.Bool(ok)
}

func makeString(_ builtin.Evaluator, args []object.I) object.I {
	return str.New(strings.Join(strs(args), ""))
}

func split(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("split", args, 2); e != nil {
		return e
	}

	s, e := validate.String("split", args, 0)
	if e != nil {
		return e
	}

	sep, e := validate.String("split", args, 1)
	if e != nil {
		return e
	}

	return strList(strings.Split(s, sep))
}

func upper(_ builtin.Evaluator, args []object.I) object.I {
	s, e := oneString("upper", args)
	if e != nil {
		return e
	}

	return str.New(cases.Upper(language.Und).String(s))
}

// Helper functions.

func oneString(name string, args []object.I) (string, *errval.T) {
	if e := validate.Exactly(name, args, 1); e != nil {
		return "", e
	}

	return validate.String(name, args, 0)
}

func strList(s []string) *list.T {
	elements := make([]object.I, len(s))
	for i, p := range s {
		elements[i] = str.New(p)
	}

	return list.New(elements...)
}

func strs(v []object.I) []string {
	s := make([]string, len(v))
	for i, o := range v {
		s[i] = o.String()
	}

	return s
}

// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"strconv"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/integer"
	"github.com/alc-lisp/alc/internal/common/validate"
)

func abs(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("abs", args, 1); e != nil {
		return e
	}

	n, e := validate.Integer("abs", args, 0)
	if e != nil {
		return e
	}

	switch {
	case n == math.MinInt64:
		return errval.Newf("abs: %d has no positive counterpart", n)
	case n < 0:
		return integer.New(-n)
	}

	return args[0]
}

func add(_ builtin.Evaluator, args []object.I) object.I {
	v, e := numbers("+", args, 1)
	if e != nil {
		return e
	}

	sum := int64(0)
	for _, n := range v {
		sum += n
	}

	return integer.New(sum)
}

func div(_ builtin.Evaluator, args []object.I) object.I {
	v, e := numbers("/", args, 2)
	if e != nil {
		return e
	}

	quotient := v[0]

	for _, n := range v[1:] {
		if n == 0 {
			return errval.New("/: division by zero")
		}

		quotient /= n
	}

	return integer.New(quotient)
}

func mod(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("mod", args, 2); e != nil {
		return e
	}

	v, e := validate.Integers("mod", args)
	if e != nil {
		return e
	}

	if v[1] == 0 {
		return errval.New("mod: division by zero")
	}

	return integer.New(v[0] % v[1])
}

func mul(_ builtin.Evaluator, args []object.I) object.I {
	v, e := numbers("*", args, 1)
	if e != nil {
		return e
	}

	product := int64(1)
	for _, n := range v {
		product *= n
	}

	return integer.New(product)
}

func parseInt(_ builtin.Evaluator, args []object.I) object.I {
	s, e := oneString("parse_int", args)
	if e != nil {
		return e
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errval.Newf("parse_int: could not parse %q as an integer", s)
	}

	return integer.New(n)
}

func sub(_ builtin.Evaluator, args []object.I) object.I {
	v, e := numbers("-", args, 1)
	if e != nil {
		return e
	}

	if len(v) == 1 {
		return integer.New(-v[0])
	}

	difference := v[0]
	for _, n := range v[1:] {
		difference -= n
	}

	return integer.New(difference)
}

func numbers(name string, args []object.I, min int) ([]int64, *errval.T) {
	if e := validate.AtLeast(name, args, min); e != nil {
		return nil, e
	}

	return validate.Integers(name, args)
}

// Released under an MIT license. See LICENSE.

package commands

import (
	"sort"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/interface/truth"
	"github.com/alc-lisp/alc/internal/common/order"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/integer"
	"github.com/alc-lisp/alc/internal/common/type/list"
	"github.com/alc-lisp/alc/internal/common/type/null"
	"github.com/alc-lisp/alc/internal/common/type/str"
	"github.com/alc-lisp/alc/internal/common/validate"
)

// The largest list range will build.
const maxRange = 1 << 24

func concat(_ builtin.Evaluator, args []object.I) object.I {
	elements := []object.I{}

	for i := range args {
		l, e := validate.List("concat", args, i)
		if e != nil {
			return e
		}

		elements = append(elements, l.Elements()...)
	}

	return list.New(elements...)
}

func filter(e builtin.Evaluator, args []object.I) object.I {
	fn, l, ev := callableAndList("filter", args)
	if ev != nil {
		return ev
	}

	kept := []object.I{}

	for _, v := range l.Elements() {
		r, ev := apply(e, "filter", fn, v)
		if ev != nil {
			return ev
		}

		if truth.Value(r) {
			kept = append(kept, v)
		}
	}

	return list.New(kept...)
}

func first(_ builtin.Evaluator, args []object.I) object.I {
	return firstOf("first", args)
}

func head(_ builtin.Evaluator, args []object.I) object.I {
	return firstOf("head", args)
}

func length(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("len", args, 1); e != nil {
		return e
	}

	switch v := args[0].(type) {
	case *list.T:
		return integer.New(int64(v.Len()))
	case *str.T:
		return integer.New(int64(len([]rune(v.String()))))
	}

	return errval.Newf("len: argument 1: expected list or string, got %s", args[0].Name())
}

func makeList(_ builtin.Evaluator, args []object.I) object.I {
	return list.New(append([]object.I(nil), args...)...)
}

func makeRange(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Range("range", args, 1, 2); e != nil {
		return e
	}

	v, e := validate.Integers("range", args)
	if e != nil {
		return e
	}

	start, end := int64(0), v[0]
	if len(v) == 2 {
		start, end = v[0], v[1]
	}

	if end > start && uint64(end)-uint64(start) > maxRange {
		return errval.Newf("range: more than %d elements", maxRange)
	}

	elements := []object.I{}
	for i := start; i < end; i++ {
		elements = append(elements, integer.New(i))
	}

	return list.New(elements...)
}

func mapList(e builtin.Evaluator, args []object.I) object.I {
	fn, l, ev := callableAndList("map", args)
	if ev != nil {
		return ev
	}

	mapped := make([]object.I, 0, l.Len())

	for _, v := range l.Elements() {
		r, ev := apply(e, "map", fn, v)
		if ev != nil {
			return ev
		}

		mapped = append(mapped, r)
	}

	return list.New(mapped...)
}

func nth(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("nth", args, 2); e != nil {
		return e
	}

	l, e := validate.List("nth", args, 0)
	if e != nil {
		return e
	}

	i, e := validate.Integer("nth", args, 1)
	if e != nil {
		return e
	}

	if v, ok := l.Nth(int(i)); ok && i == int64(int(i)) {
		return v
	}

	return errval.Newf("nth: index %d out of range for list of length %d", i, l.Len())
}

func push(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("push", args, 2); e != nil {
		return e
	}

	l, e := validate.List("push", args, 0)
	if e != nil {
		return e
	}

	return l.Append(args[1])
}

func reduce(e builtin.Evaluator, args []object.I) object.I {
	if ev := validate.Exactly("reduce", args, 3); ev != nil {
		return ev
	}

	if ev := validate.Callable("reduce", args, 0); ev != nil {
		return ev
	}

	l, ev := validate.List("reduce", args, 2)
	if ev != nil {
		return ev
	}

	acc := args[1]

	for _, v := range l.Elements() {
		r, err := e.Apply(args[0], []object.I{acc, v})
		if err != nil {
			return errval.New("reduce: " + err.Error())
		}

		if errval.Is(r) {
			return r
		}

		acc = r
	}

	return acc
}

func rest(_ builtin.Evaluator, args []object.I) object.I {
	return restOf("rest", args)
}

func tail(_ builtin.Evaluator, args []object.I) object.I {
	return restOf("tail", args)
}

func reverse(_ builtin.Evaluator, args []object.I) object.I {
	l, e := oneList("reverse", args)
	if e != nil {
		return e
	}

	v := l.Elements()
	reversed := make([]object.I, len(v))

	for i, o := range v {
		reversed[len(v)-1-i] = o
	}

	return list.New(reversed...)
}

// slice returns the elements from start up to end, or the end of the list.
// Indices past the end are clamped.
func slice(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Range("slice", args, 2, 3); e != nil {
		return e
	}

	l, e := validate.List("slice", args, 0)
	if e != nil {
		return e
	}

	start, e := validate.Integer("slice", args, 1)
	if e != nil {
		return e
	}

	end := int64(l.Len())
	if len(args) == 3 {
		if end, e = validate.Integer("slice", args, 2); e != nil {
			return e
		}
	}

	if start < 0 || end < start {
		return errval.Newf("slice: invalid range %d to %d", start, end)
	}

	n := int64(l.Len())
	start, end = min(start, n), min(end, n)

	return l.Slice(int(start), int(end))
}

func sortList(_ builtin.Evaluator, args []object.I) object.I {
	l, e := oneList("sort", args)
	if e != nil {
		return e
	}

	sorted := append([]object.I(nil), l.Elements()...)

	sort.SliceStable(sorted, func(i, j int) bool {
		return order.Less(sorted[i], sorted[j])
	})

	return list.New(sorted...)
}

// Helper functions.

func apply(e builtin.Evaluator, name string, fn, v object.I) (object.I, *errval.T) {
	r, err := e.Apply(fn, []object.I{v})
	if err != nil {
		return nil, errval.New(name + ": " + err.Error())
	}

	if ev, ok := r.(*errval.T); ok {
		return nil, ev
	}

	return r, nil
}

func callableAndList(name string, args []object.I) (object.I, *list.T, *errval.T) {
	if e := validate.Exactly(name, args, 2); e != nil {
		return nil, nil, e
	}

	if e := validate.Callable(name, args, 0); e != nil {
		return nil, nil, e
	}

	l, e := validate.List(name, args, 1)
	if e != nil {
		return nil, nil, e
	}

	return args[0], l, nil
}

func firstOf(name string, args []object.I) object.I {
	l, e := oneList(name, args)
	if e != nil {
		return e
	}

	if v, ok := l.Nth(0); ok {
		return v
	}

	return null.Null
}

func restOf(name string, args []object.I) object.I {
	l, e := oneList(name, args)
	if e != nil {
		return e
	}

	if l.Len() == 0 {
		return l
	}

	return l.Slice(1, l.Len())
}

func oneList(name string, args []object.I) (*list.T, *errval.T) {
	if e := validate.Exactly(name, args, 1); e != nil {
		return nil, e
	}

	return validate.List(name, args, 0)
}

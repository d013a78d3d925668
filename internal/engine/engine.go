// Released under an MIT license. See LICENSE.

// Package engine provides a tree-walking evaluator for parsed alc code.
package engine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/interface/truth"
	"github.com/alc-lisp/alc/internal/common/type/boolean"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/function"
	"github.com/alc-lisp/alc/internal/common/type/list"
	"github.com/alc-lisp/alc/internal/common/type/null"
	"github.com/alc-lisp/alc/internal/common/type/str"
	"github.com/alc-lisp/alc/internal/reader/ast"
	"github.com/alc-lisp/alc/internal/system/cache"
	"github.com/alc-lisp/alc/internal/type/env"
	"github.com/alc-lisp/alc/internal/type/frame"
)

// ErrNotCallable is returned when calling a value that is not a function
// with arguments. Without arguments the value itself is the result.
var ErrNotCallable = errors.New("cannot call value")

// T (engine) evaluates syntax trees against a call stack.
type T struct {
	numbers *cache.T
	output  io.Writer
	stack   *frame.T
}

type engine = T

// Option configures a T.
type Option func(*T)

// WithDepth sets the maximum depth of the call stack.
func WithDepth(n int) Option {
	return func(e *T) {
		e.stack = frame.New(e.stack.Global(), n)
	}
}

// WithNumbers shares the number literal cache c.
func WithNumbers(c *cache.T) Option {
	return func(e *T) {
		e.numbers = c
	}
}

// WithOutput sets where printing builtins write.
func WithOutput(w io.Writer) Option {
	return func(e *T) {
		e.output = w
	}
}

// New creates a new T with global as the outermost frame.
func New(global *env.T, options ...Option) *T {
	e := &engine{
		numbers: cache.New(),
		output:  os.Stdout,
		stack:   frame.New(global, frame.DefaultDepth),
	}

	for _, o := range options {
		o(e)
	}

	return e
}

// Apply calls fn with args.
// Builtins and functions return error values for bad arguments.
// Calling null returns null.
func (e *engine) Apply(fn object.I, args []object.I) (object.I, error) {
	switch fn := fn.(type) {
	case *builtin.T:
		return fn.Call(e, args), nil

	case *function.T:
		params := fn.Params()
		if len(args) != len(params) {
			return errval.Newf(
				"function expected %d arguments, got %d", len(params), len(args),
			), nil
		}

		scope := fn.Env().Copy()
		for i, name := range params {
			scope.Define(name, args[i])
		}

		if err := e.stack.Push(scope); err != nil {
			return nil, err
		}
		defer e.stack.Pop()

		return e.Eval(fn.Body())

	case *null.T:
		return null.Null, nil
	}

	return nil, fmt.Errorf("%w of type %s", ErrNotCallable, fn.Name())
}

// Depth returns the current depth of the call stack.
func (e *engine) Depth() int {
	return e.stack.Depth()
}

// Eval evaluates n as a sequence of statements.
// An error value produced by any statement is fatal.
func (e *engine) Eval(n ast.Node) (object.I, error) {
	x, ok := n.(*ast.Expression)
	if !ok {
		return e.Expression(n)
	}

	if len(x.Children) > 0 {
		if _, ok := x.Children[0].(*ast.Word); ok {
			return e.call(x)
		}
	}

	if len(x.Children) == 1 {
		return e.Expression(x.Children[0])
	}

	var v object.I = null.Null

	for _, c := range x.Children {
		r, err := e.Expression(c)
		if err != nil {
			return nil, context(c, err)
		}

		if ev, ok := r.(*errval.T); ok {
			return nil, context(c, ev)
		}

		v = r
	}

	return v, nil
}

// Expression evaluates the single expression n.
func (e *engine) Expression(n ast.Node) (object.I, error) {
	switch n := n.(type) {
	case *ast.BooleanLiteral:
		return boolean.Bool(n.Bool()), nil

	case *ast.Expression:
		return e.call(n)

	case *ast.FunctionLiteral:
		return e.function(n)

	case *ast.Invalid:
		return errval.Newf("invalid token %q at %s", n.Value(), n.Start()), nil

	case *ast.List:
		elements := make([]object.I, 0, len(n.Children))

		for _, c := range n.Children {
			r, err := e.Expression(c)
			if err != nil {
				return nil, context(c, err)
			}

			if ev, ok := r.(*errval.T); ok {
				return nil, context(c, ev)
			}

			elements = append(elements, r)
		}

		return list.New(elements...), nil

	case *ast.NumberLiteral:
		i, err := e.numbers.Integer(n.Value())
		if err != nil {
			return nil, fmt.Errorf(
				"invalid number %q at %s: %w", n.Value(), n.Start(), err,
			)
		}

		return i, nil

	case *ast.StringLiteral:
		s := n.Value()

		return str.New(s[1 : len(s)-1]), nil

	case *ast.Word:
		if v, ok := e.stack.Lookup(n.Value()); ok {
			return v, nil
		}

		return null.Null, nil
	}

	return nil, fmt.Errorf("unexpected node %T", n)
}

// Global returns the outermost environment.
func (e *engine) Global() *env.T {
	return e.stack.Global()
}

// Output returns where printing builtins write.
func (e *engine) Output() io.Writer {
	return e.output
}

func (e *engine) call(x *ast.Expression) (object.I, error) {
	if len(x.Children) == 0 {
		return null.Null, nil
	}

	first, args := x.Children[0], x.Children[1:]

	if w, ok := first.(*ast.Word); ok {
		switch w.Value() {
		case "def", "define":
			return e.define(w, args)
		case "do":
			return e.do(w, args)
		case "if":
			return e.conditional(w, args)
		}
	}

	// A lone literal in parentheses is just that value.
	if len(args) == 0 && literal(first) {
		return e.Expression(first)
	}

	callee, err := e.Expression(first)
	if err != nil {
		return nil, context(first, err)
	}

	if ev, ok := callee.(*errval.T); ok {
		return nil, fmt.Errorf("error in call at %s: %w", first.Start(), ev)
	}

	values := make([]object.I, 0, len(args))

	for i, a := range args {
		v, err := e.Expression(a)
		if err != nil {
			if located(err) {
				return nil, err
			}

			return nil, fmt.Errorf(
				"error in argument %d at %s: %w", i+1, a.Start(), err,
			)
		}

		if ev, ok := v.(*errval.T); ok {
			return nil, fmt.Errorf(
				"error in argument %d at %s: %w", i+1, a.Start(), ev,
			)
		}

		values = append(values, v)
	}

	switch callee.(type) {
	case *builtin.T, *function.T, *null.T:
		r, err := e.Apply(callee, values)
		if err != nil {
			return nil, context(x, err)
		}

		return r, nil
	}

	// So is a lone name that is not bound to a function.
	if len(values) == 0 {
		return callee, nil
	}

	return nil, context(x, fmt.Errorf("%w of type %s", ErrNotCallable, callee.Name()))
}

func (e *engine) conditional(w *ast.Word, args []ast.Node) (object.I, error) {
	if len(args) != 2 && len(args) != 3 {
		return errval.Newf(
			"if at %s: expected 2 or 3 arguments, got %d", w.Start(), len(args),
		), nil
	}

	c, err := e.Expression(args[0])
	if err != nil {
		return nil, context(args[0], err)
	}

	if truth.Value(c) {
		return e.Expression(args[1])
	}

	if len(args) == 3 {
		return e.Expression(args[2])
	}

	return null.Null, nil
}

func (e *engine) define(w *ast.Word, args []ast.Node) (object.I, error) {
	if len(args) != 2 {
		return errval.Newf(
			"%s at %s: expected 2 arguments, got %d",
			w.Value(), w.Start(), len(args),
		), nil
	}

	name, ok := args[0].(*ast.Word)
	if !ok {
		return errval.Newf(
			"%s at %s: expected a name, got %s",
			w.Value(), w.Start(), args[0],
		), nil
	}

	v, err := e.Expression(args[1])
	if err != nil {
		return nil, context(args[1], err)
	}

	if errval.Is(v) {
		return v, nil
	}

	e.stack.Top().Define(name.Value(), v)

	return null.Null, nil
}

func (e *engine) do(w *ast.Word, args []ast.Node) (object.I, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf(
			"do at %s: expected 1 argument, got %d", w.Start(), len(args),
		)
	}

	return e.Eval(args[0])
}

func (e *engine) function(f *ast.FunctionLiteral) (object.I, error) {
	params := make([]string, len(f.Arguments))

	for i, a := range f.Arguments {
		w, ok := a.(*ast.Word)
		if !ok {
			return nil, fmt.Errorf(
				"fn at %s: argument %d is not an identifier", f.Start(), i+1,
			)
		}

		params[i] = w.Value()
	}

	return function.New(e.stack.Top(), params, f.Body), nil
}

// overflow is a stack overflow that already records where it happened.
type overflow struct {
	error
}

func (o *overflow) Unwrap() error {
	return o.error
}

func context(n ast.Node, err error) error {
	if located(err) {
		return err
	}

	err = fmt.Errorf("error in expression at %s: %w", n.Start(), err)

	if errors.Is(err, frame.ErrStackDepthExceeded) {
		return &overflow{err}
	}

	return err
}

func literal(n ast.Node) bool {
	switch n.(type) {
	case *ast.Expression, *ast.Word:
		return false
	}

	return true
}

func located(err error) bool {
	var o *overflow

	return errors.As(err, &o)
}

// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the alc language.
package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/alc-lisp/alc/internal/common/struct/loc"
	"github.com/alc-lisp/alc/internal/common/struct/token"
	"github.com/alc-lisp/alc/internal/reader/ast"
)

// Structural errors. These cannot be recovered from.
var (
	ErrInvalidArguments       = errors.New("invalid arguments")
	ErrTrailingTokens         = errors.New("not all tokens consumed")
	ErrUnexpectedEOF          = errors.New("unexpected end of input")
	ErrUnexpectedRParen       = errors.New("trying to parse a RParen")
	ErrUnexpectedRSquare      = errors.New("trying to parse a RSquare")
	ErrUnterminatedExpression = errors.New("unterminated expression")
	ErrUnterminatedList       = errors.New("unterminated list")
)

// T holds the state of the parser.
type T struct {
	errors   []ast.Path // Positions of Invalid nodes.
	position ast.Path   // Position of the node being parsed.
	tokens   []*token.T // Remaining tokens, last to first.
}

// New creates a new parser for tokens.
func New(tokens []*token.T) *T {
	reversed := make([]*token.T, len(tokens))
	for i, t := range tokens {
		reversed[len(tokens)-1-i] = t
	}

	return &T{tokens: reversed}
}

// Errors returns the tree positions of all Invalid nodes found so far.
func (p *T) Errors() []ast.Path {
	return p.errors
}

// HasErrors returns true if any Invalid nodes were found.
func (p *T) HasErrors() bool {
	return len(p.errors) > 0
}

// Diagnostics describes each Invalid node in the tree root.
func (p *T) Diagnostics(root ast.Node) []string {
	d := make([]string, 0, len(p.errors))

	for _, path := range p.errors {
		n, ok := ast.NodeAt(root, path)
		if !ok {
			d = append(d, "no node at "+path.String())

			continue
		}

		d = append(d, fmt.Sprintf(
			"invalid token %q at %s", n.String(), n.Start(),
		))
	}

	return d
}

// PrintErrors writes the diagnostics for the tree root to w.
func (p *T) PrintErrors(w io.Writer, root ast.Node) {
	for _, s := range p.Diagnostics(root) {
		fmt.Fprintln(w, s)
	}
}

// Parse consumes all tokens and returns the root of the syntax tree.
// The root is an *ast.Expression containing each top-level expression.
func (p *T) Parse() (root ast.Node, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok {
			panic(r)
		}

		root, err = nil, e
	}()

	children := []ast.Node{}

	p.position = ast.Path{0}

	for p.skipComments(); p.peek() != nil; p.skipComments() {
		children = append(children, p.expression())

		p.next()
	}

	if len(p.tokens) > 0 {
		panic(fmt.Errorf("%w: %d remaining", ErrTrailingTokens, len(p.tokens)))
	}

	e := &ast.Expression{Children: children}
	if len(children) > 0 {
		e.From = children[0].Start()
		e.To = children[len(children)-1].End()
	}

	return e, nil
}

func (p *T) descend() {
	p.position = append(p.position, 0)
}

func (p *T) ascend() {
	p.position = p.position[:len(p.position)-1]
}

func (p *T) next() {
	p.position[len(p.position)-1]++
}

func (p *T) peek() *token.T {
	if len(p.tokens) == 0 {
		return nil
	}

	return p.tokens[len(p.tokens)-1]
}

func (p *T) pop() *token.T {
	t := p.peek()
	if t == nil {
		panic(ErrUnexpectedEOF)
	}

	p.tokens = p.tokens[:len(p.tokens)-1]

	return t
}

func (p *T) skipComments() {
	for p.peek().Is(token.Comment) {
		p.pop()
	}
}

// T state functions.

func (p *T) expression() ast.Node {
	t := p.pop()

	switch t.Class() {
	case token.Comment:
		return p.expression()

	case token.LParen:
		children, end := p.sequence(token.RParen, ErrUnterminatedExpression)

		return &ast.Expression{Children: children, From: t.Start(), To: end}

	case token.LSquare:
		children, end := p.sequence(token.RSquare, ErrUnterminatedList)

		return &ast.List{Children: children, From: t.Start(), To: end}

	case token.RParen:
		panic(fmt.Errorf("%w at %s", ErrUnexpectedRParen, t.Start()))

	case token.RSquare:
		panic(fmt.Errorf("%w at %s", ErrUnexpectedRSquare, t.Start()))

	case token.NumberLiteral:
		return ast.NewNumberLiteral(t)

	case token.StringLiteral:
		return ast.NewStringLiteral(t)

	case token.Word:
		switch t.Value() {
		case "fn":
			return p.function(t)
		case "false", "true":
			return ast.NewBooleanLiteral(t)
		}

		return ast.NewWord(t)
	}

	p.errors = append(p.errors, p.position.Clone())

	return ast.NewInvalid(t)
}

// <function> ::= fn ( '(' | '[' ) Word* ( ')' | ']' ) <expression>
func (p *T) function(t *token.T) ast.Node {
	p.descend()
	defer p.ascend()

	p.skipComments()

	var arguments []ast.Node

	switch a := p.expression().(type) {
	case *ast.List:
		arguments = a.Children
	case *ast.Expression:
		arguments = a.Children
	default:
		panic(fmt.Errorf("%w for fn at %s", ErrInvalidArguments, t.Start()))
	}

	for _, a := range arguments {
		if _, ok := a.(*ast.Word); !ok {
			panic(fmt.Errorf(
				"%w for fn at %s: arguments should only be identifiers",
				ErrInvalidArguments, t.Start(),
			))
		}
	}

	p.next()

	mark := len(p.errors)
	depth := len(p.position)

	p.skipComments()

	body := p.expression()
	if _, ok := body.(*ast.Expression); !ok {
		body = &ast.Expression{
			Children: []ast.Node{body},
			From:     body.Start(),
			To:       body.End(),
		}

		// Anything found while parsing the body is now one level deeper.
		for i, path := range p.errors[mark:] {
			moved := append(path[:depth:depth], 0)
			p.errors[mark+i] = append(moved, path[depth:]...)
		}
	}

	return &ast.FunctionLiteral{Token: t, Arguments: arguments, Body: body}
}

func (p *T) sequence(closer token.Class, unterminated error) ([]ast.Node, loc.T) {
	p.descend()
	defer p.ascend()

	children := []ast.Node{}

	var end loc.T

	for {
		p.skipComments()

		t := p.peek()
		if t == nil {
			panic(fmt.Errorf("%w: last child ends at %s", unterminated, end))
		}

		if t.Is(closer) {
			p.pop()

			return children, t.End()
		}

		c := p.expression()
		children = append(children, c)
		end = c.End()

		p.next()
	}
}

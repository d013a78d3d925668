// Released under an MIT license. See LICENSE.

// Package ast defines the syntax tree built by the alc parser.
package ast

import (
	"strconv"
	"strings"

	"github.com/alc-lisp/alc/internal/common/struct/loc"
	"github.com/alc-lisp/alc/internal/common/struct/token"
)

// Node is an element of the syntax tree. The set of nodes is closed.
type Node interface {
	End() loc.T
	Start() loc.T
	String() string

	node()
}

// BooleanLiteral is true or false.
type BooleanLiteral struct{ leaf }

// Expression is a parenthesized form or the synthetic root of a program.
type Expression struct {
	Children []Node
	From     loc.T
	To       loc.T
}

// FunctionLiteral is an (fn (arguments...) body) form.
// Body is always an *Expression.
type FunctionLiteral struct {
	Token     *token.T
	Arguments []Node
	Body      Node
}

// Invalid is an unrecognized token preserved in place.
type Invalid struct{ leaf }

// List is a square bracketed form.
type List struct {
	Children []Node
	From     loc.T
	To       loc.T
}

// NumberLiteral carries the number's source text.
type NumberLiteral struct{ leaf }

// StringLiteral carries the string's source text, quotes included.
type StringLiteral struct{ leaf }

// Word is an identifier or operator.
type Word struct{ leaf }

type leaf struct {
	Token *token.T
}

// NewBooleanLiteral creates a BooleanLiteral from t.
func NewBooleanLiteral(t *token.T) *BooleanLiteral {
	return &BooleanLiteral{leaf{t}}
}

// NewInvalid creates an Invalid node from t.
func NewInvalid(t *token.T) *Invalid {
	return &Invalid{leaf{t}}
}

// NewNumberLiteral creates a NumberLiteral from t.
func NewNumberLiteral(t *token.T) *NumberLiteral {
	return &NumberLiteral{leaf{t}}
}

// NewStringLiteral creates a StringLiteral from t.
func NewStringLiteral(t *token.T) *StringLiteral {
	return &StringLiteral{leaf{t}}
}

// NewWord creates a Word from t.
func NewWord(t *token.T) *Word {
	return &Word{leaf{t}}
}

func (l leaf) End() loc.T {
	return l.Token.End()
}

func (l leaf) Start() loc.T {
	return l.Token.Start()
}

func (l leaf) String() string {
	return l.Token.Value()
}

// Value returns the text of the leaf's token.
func (l leaf) Value() string {
	return l.Token.Value()
}

func (l leaf) node() {}

// Bool returns the value of the literal b.
func (b *BooleanLiteral) Bool() bool {
	return b.Token.Value() == "true"
}

func (e *Expression) End() loc.T {
	return e.To
}

func (e *Expression) Start() loc.T {
	return e.From
}

func (e *Expression) String() string {
	return "(" + join(e.Children) + ")"
}

func (e *Expression) node() {}

func (f *FunctionLiteral) End() loc.T {
	return f.Body.End()
}

func (f *FunctionLiteral) Start() loc.T {
	return f.Token.Start()
}

func (f *FunctionLiteral) String() string {
	return "(fn (" + join(f.Arguments) + ") " + f.Body.String() + ")"
}

func (f *FunctionLiteral) node() {}

func (l *List) End() loc.T {
	return l.To
}

func (l *List) Start() loc.T {
	return l.From
}

func (l *List) String() string {
	return "[" + join(l.Children) + "]"
}

func (l *List) node() {}

// Path is the position of a node in the tree, as child indices from the root.
// For a FunctionLiteral, index 1 is its body. Its arguments are not addressable.
type Path []int

// Clone returns a copy of p that does not share storage with p.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

func (p Path) String() string {
	s := make([]string, len(p))
	for i, n := range p {
		s[i] = strconv.Itoa(n)
	}

	return "[" + strings.Join(s, " ") + "]"
}

// NodeAt returns the node at path p in the tree rooted at n.
func NodeAt(n Node, p Path) (Node, bool) {
	for _, i := range p {
		var children []Node

		switch n := n.(type) {
		case *Expression:
			children = n.Children
		case *List:
			children = n.Children
		case *FunctionLiteral:
			if i != 1 {
				return nil, false
			}

			children = []Node{nil, n.Body}
		default:
			return nil, false
		}

		if i < 0 || i >= len(children) {
			return nil, false
		}

		n = children[i]
	}

	return n, n != nil
}

// Walk calls visit for n and each of its addressable descendants, in order.
// If visit returns false the node's descendants are skipped.
func Walk(n Node, visit func(Node, Path) bool) {
	walk(n, Path{}, visit)
}

func walk(n Node, p Path, visit func(Node, Path) bool) {
	if !visit(n, p) {
		return
	}

	var children []Node

	switch n := n.(type) {
	case *Expression:
		children = n.Children
	case *List:
		children = n.Children
	case *FunctionLiteral:
		walk(n.Body, append(p.Clone(), 1), visit)

		return
	}

	for i, c := range children {
		walk(c, append(p.Clone(), i), visit)
	}
}

func join(nodes []Node) string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.String()
	}

	return strings.Join(s, " ")
}

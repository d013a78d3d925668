// Released under an MIT license. See LICENSE.

// Package reader encapsulates the alc lexer and parser.
package reader

import (
	"io"

	"github.com/alc-lisp/alc/internal/common/struct/token"
	"github.com/alc-lisp/alc/internal/reader/ast"
	"github.com/alc-lisp/alc/internal/reader/lexer"
	"github.com/alc-lisp/alc/internal/reader/parser"
)

// T (reader) holds the result of reading source text.
type T struct {
	parser *parser.T
	root   ast.Node
	tokens []*token.T
}

type reader = T

// Read lexes and parses source.
func Read(source string) (*T, error) {
	tokens, err := lexer.Parse(source)
	if err != nil {
		return nil, err
	}

	p := parser.New(tokens)

	root, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return &T{parser: p, root: root, tokens: tokens}, nil
}

// Diagnostics describes each unrecognized token found while parsing.
func (r *reader) Diagnostics() []string {
	return r.parser.Diagnostics(r.root)
}

// HasErrors returns true if any unrecognized tokens were found while parsing.
func (r *reader) HasErrors() bool {
	return r.parser.HasErrors()
}

// PrintErrors writes the reader's diagnostics to w.
func (r *reader) PrintErrors(w io.Writer) {
	r.parser.PrintErrors(w, r.root)
}

// Root returns the root of the syntax tree.
func (r *reader) Root() ast.Node {
	return r.root
}

// Tokens returns the tokens read, including comments.
func (r *reader) Tokens() []*token.T {
	return r.tokens
}

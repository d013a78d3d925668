// Released under an MIT license. See LICENSE.

// Package token is shared by the alc lexer and parser.
package token

import (
	"strconv"

	"github.com/alc-lisp/alc/internal/common/struct/loc"
)

// Class is a token's type.
type Class int

// T (token) is a lexical item returned by the scanner.
type T struct {
	class Class
	start loc.T
	end   loc.T
	value string
}

type token = T

// Token classes.
const (
	Unknown Class = iota

	Comment
	LParen
	LSquare
	NumberLiteral
	RParen
	RSquare
	SingleQuote
	StringLiteral
	Word
)

// New creates a new token.
func New(class Class, value string, start, end loc.T) *token {
	return &token{
		class: class,
		start: start,
		end:   end,
		value: value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Unknown:
		return "Unknown"
	case Comment:
		return "Comment"
	case LParen:
		return "LParen"
	case LSquare:
		return "LSquare"
	case NumberLiteral:
		return "NumberLiteral"
	case RParen:
		return "RParen"
	case RSquare:
		return "RSquare"
	case SingleQuote:
		return "SingleQuote"
	case StringLiteral:
		return "StringLiteral"
	case Word:
		return "Word"
	}

	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// End returns the position just past the token's last character.
func (t *token) End() loc.T {
	return t.end
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Start returns the position of the token's first character.
func (t *token) Start() loc.T {
	return t.start
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.start.String() + "-" +
		t.end.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}

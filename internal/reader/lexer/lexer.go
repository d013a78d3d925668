// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the alc language.
//
// Like oh's lexer, it adapts the state function approach used by Go's
// text/template lexer and described in Rob Pike's talk "Lexical Scanning
// in Go". See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alc-lisp/alc/internal/common/struct/loc"
	"github.com/alc-lisp/alc/internal/common/struct/token"
)

// ErrUnterminatedString is returned when a string literal has no closing quote.
var ErrUnterminatedString = errors.New("unterminated string literal")

// Characters, other than letters and digits, that may appear in a word.
const symbols = "+-/*_=?!<>"

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.

	current loc.T // Position of the current byte.
	start   loc.T // Position of the current token's first byte.

	err    error
	tokens []*token.T
}

// New creates a new T for scanning source.
func New(source string) *T {
	origin := loc.T{Line: 1, Col: 1}

	return &T{
		bytes:   source,
		current: origin,
		start:   origin,
	}
}

// Parse scans all of source and returns its tokens in source order.
func Parse(source string) ([]*token.T, error) {
	return New(source).Tokens()
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Tokens runs the scanner to completion.
func (l *T) Tokens() ([]*token.T, error) {
	for state := action(skipWhitespace); state != nil; {
		state = state(l)
	}

	return l.tokens, l.err
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.current.Line++
		l.current.Col = 1
	} else {
		l.current.Col++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.start, l.current))
	l.skip()
}

func (l *T) fail(err error) action {
	l.err = err

	return nil
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.current
}

// T states.

func afterSign(l *T) action {
	r, _ := l.peek()
	if isDigit(r) {
		return scanNumber
	}

	return scanWord
}

func scanComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof, '\n':
			l.emit(token.Comment)
			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanNumber(l *T) action {
	for {
		r, w := l.peek()
		if !isAlphanumeric(r) {
			l.emit(token.NumberLiteral)
			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	start := l.start

	for {
		switch l.next() {
		case eof:
			return l.fail(fmt.Errorf("%w starting at %s", ErrUnterminatedString, start))
		case '"':
			l.emit(token.StringLiteral)
			return skipWhitespace
		}
	}
}

func scanWord(l *T) action {
	for {
		r, w := l.peek()
		if !isAlphanumeric(r) && !isSymbol(r) {
			l.emit(token.Word)
			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ':
			l.skip()
			continue
		case '(':
			l.emit(token.LParen)
		case ')':
			l.emit(token.RParen)
		case '[':
			l.emit(token.LSquare)
		case ']':
			l.emit(token.RSquare)
		case '\'':
			l.emit(token.SingleQuote)
		case '"':
			return scanString
		case ';':
			return scanComment
		case '+', '-':
			return afterSign
		default:
			switch {
			case isDigit(r):
				return scanNumber
			case unicode.IsLetter(r) || isSymbol(r):
				return scanWord
			}

			l.emit(token.Unknown)
		}
	}
}

// Helper functions.

func isAlphanumeric(r rune) bool {
	return r != eof && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbol(r rune) bool {
	return r != eof && strings.ContainsRune(symbols, r)
}

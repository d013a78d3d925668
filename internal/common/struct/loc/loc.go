// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track the source position of tokens.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Line int // Line number (row), starting at 1.
	Col  int // Column, counted in code points, starting at 1.
}

type loc = T

// Before returns true if l comes before m in the source.
func (l loc) Before(m loc) bool {
	if l.Line != m.Line {
		return l.Line < m.Line
	}

	return l.Col < m.Col
}

func (l loc) String() string {
	return strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Col)
}

// Released under an MIT license. See LICENSE.

// Package order defines the total order over alc values used for sorting.
//
// Values of different types are ordered by type:
//
//	null < boolean < integer < string < list < builtin < function < error
//
// Values of the same type are ordered by value. Lists are ordered by length
// only, not by their elements. Builtins and functions of the same type are
// considered equal.
package order

import (
	"strings"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/boolean"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/function"
	"github.com/alc-lisp/alc/internal/common/type/integer"
	"github.com/alc-lisp/alc/internal/common/type/list"
	"github.com/alc-lisp/alc/internal/common/type/null"
	"github.com/alc-lisp/alc/internal/common/type/str"
)

// Rank returns the position of o's type in the order of types.
func Rank(o object.I) int {
	switch o.(type) {
	case *null.T:
		return 0
	case *boolean.T:
		return 1
	case *integer.T:
		return 2
	case *str.T:
		return 3
	case *list.T:
		return 4
	case *builtin.T:
		return 5
	case *function.T:
		return 6
	case *errval.T:
		return 7
	}

	return 8
}

// Compare returns -1 if a < b, 0 if a and b are equivalent, and 1 if a > b.
func Compare(a, b object.I) int {
	if r := compareInt(int64(Rank(a)), int64(Rank(b))); r != 0 {
		return r
	}

	switch a := a.(type) {
	case *boolean.T:
		return compareBool(a.Bool(), boolean.To(b).Bool())
	case *integer.T:
		return compareInt(a.Int(), integer.To(b).Int())
	case *str.T:
		return strings.Compare(a.String(), str.To(b).String())
	case *list.T:
		return compareInt(int64(a.Len()), int64(list.To(b).Len()))
	case *errval.T:
		return strings.Compare(a.Message(), errval.To(b).Message())
	}

	return 0
}

// Less returns true if a comes before b.
func Less(a, b object.I) bool {
	return Compare(a, b) < 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}

	return 1
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

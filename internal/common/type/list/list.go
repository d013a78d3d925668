// Released under an MIT license. See LICENSE.

// Package list provides alc's list type. Lists are immutable once built.
// Operations that change a list return a new list.
package list

import (
	"strings"

	"github.com/alc-lisp/alc/internal/common/interface/literal"
	"github.com/alc-lisp/alc/internal/common/interface/object"
)

const name = "list"

// T (list) is an ordered sequence of shared elements.
type T struct {
	elements []object.I
}

// New creates a new list composed of all of the elements in elements.
// The list takes ownership of the slice.
func New(elements ...object.I) *T {
	return &T{elements: elements}
}

// Append returns a new list with elements added to the end of l.
func (l *T) Append(elements ...object.I) *T {
	n := make([]object.I, 0, len(l.elements)+len(elements))
	n = append(n, l.elements...)

	return New(append(n, elements...)...)
}

// Bool returns false if the list l is empty and true otherwise.
func (l *T) Bool() bool {
	return len(l.elements) > 0
}

// Elements returns the elements of l. The slice must not be modified.
func (l *T) Elements() []object.I {
	return l.elements
}

// Equal returns true if c is a list with equal elements in the same order.
func (l *T) Equal(c object.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(o.elements) != len(l.elements) {
		return false
	}

	for i, e := range l.elements {
		if !e.Equal(o.elements[i]) {
			return false
		}
	}

	return true
}

// Len returns the number of elements in l.
func (l *T) Len() int {
	return len(l.elements)
}

// Name returns the type name for the list l.
func (l *T) Name() string {
	return name
}

// Nth returns the element at index i of l.
func (l *T) Nth(i int) (object.I, bool) {
	if i < 0 || i >= len(l.elements) {
		return nil, false
	}

	return l.elements[i], true
}

// Slice returns a new list of the elements in l from start up to end.
func (l *T) Slice(start, end int) *T {
	return New(l.elements[start:end:end]...)
}

// String returns the display text of the list l.
func (l *T) String() string {
	s := make([]string, len(l.elements))
	for i, e := range l.elements {
		s[i] = literal.String(e)
	}

	return "[" + strings.Join(s, " ") + "]"
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c object.I) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c object.I) *T {
	if l, ok := c.(*T); ok {
		return l
	}

	panic("not a " + name)
}

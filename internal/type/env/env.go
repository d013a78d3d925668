// Released under an MIT license. See LICENSE.

// Package env provides alc's environment: a shared mapping of names to values.
//
// An environment is a handle. Closures that capture the same environment see
// each other's definitions. Access is synchronized so that environments, and
// in particular the table of builtins, can be shared between evaluators.
package env

import (
	"sort"
	"sync"

	"github.com/alc-lisp/alc/internal/common/interface/object"
)

// T (env) maps names to values. Names not found are looked up in the parent.
type T struct {
	mu     sync.RWMutex
	parent *T
	values map[string]object.I
}

type env = T

// New creates a new env. The parent may be nil.
func New(parent *T) *T {
	return &env{
		parent: parent,
		values: map[string]object.I{},
	}
}

// Copy creates a new env with the same bindings as e.
// The copy shares e's parent.
func (e *env) Copy() *T {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c := &env{
		parent: e.parent,
		values: make(map[string]object.I, len(e.values)+1),
	}

	for k, v := range e.values {
		c.values[k] = v
	}

	return c
}

// Define associates the name k with the value v in the env e.
func (e *env) Define(k string, v object.I) {
	e.mu.Lock()
	e.values[k] = v
	e.mu.Unlock()
}

// Lookup retrieves the value associated with the name k in e or its parents.
func (e *env) Lookup(k string) (object.I, bool) {
	for ; e != nil; e = e.parent {
		e.mu.RLock()
		v, ok := e.values[k]
		e.mu.RUnlock()

		if ok {
			return v, true
		}
	}

	return nil, false
}

// Names returns the sorted, distinct names visible in e, including its parents.
func (e *env) Names() []string {
	seen := map[string]struct{}{}

	for ; e != nil; e = e.parent {
		e.mu.RLock()
		for k := range e.values {
			seen[k] = struct{}{}
		}
		e.mu.RUnlock()
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Parent returns the enclosing env.
func (e *env) Parent() *T {
	return e.parent
}

// Size returns the number of names bound directly in e.
func (e *env) Size() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.values)
}

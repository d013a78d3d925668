// Released under an MIT license. See LICENSE.

// Package cache memoizes the integers built from number literals.
//
// Integers are immutable so a cached value is never invalidated. One cache
// is created per process and handed to every evaluator that should share it.
package cache

import (
	"sync"

	"github.com/alc-lisp/alc/internal/common/type/integer"
)

// T (cache) maps a number literal's source text to its integer.
type T struct {
	mu      sync.RWMutex
	numbers map[string]*integer.T
}

type cache = T

// New creates a new, empty cache.
func New() *T {
	return &cache{numbers: map[string]*integer.T{}}
}

// Integer returns the integer for the literal s, parsing it if necessary.
// Literals that fail to parse are not cached.
func (c *cache) Integer(s string) (*integer.T, error) {
	c.mu.RLock()
	n, ok := c.numbers[s]
	c.mu.RUnlock()

	if ok {
		return n, nil
	}

	n, err := integer.Parse(s)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if existing, ok := c.numbers[s]; ok {
		n = existing
	} else {
		c.numbers[s] = n
	}
	c.mu.Unlock()

	return n, nil
}

// Len returns the number of cached literals.
func (c *cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.numbers)
}

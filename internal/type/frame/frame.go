// Released under an MIT license. See LICENSE.

// Package frame provides alc's call stack.
package frame

import (
	"errors"
	"fmt"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/type/env"
)

// DefaultDepth is the maximum number of frames used when none is given.
const DefaultDepth = 10000

// ErrStackDepthExceeded is returned when a push would exceed the maximum depth.
var ErrStackDepthExceeded = errors.New("stack depth exceeded")

// T (frame) is a stack of environments.
// Frame 0 is the global environment. It is never popped.
type T struct {
	frames []*env.T
	max    int
}

type stack = T

// New creates a new stack with global as frame 0.
// A depth of zero or less means DefaultDepth.
func New(global *env.T, depth int) *T {
	if depth <= 0 {
		depth = DefaultDepth
	}

	return &stack{frames: []*env.T{global}, max: depth}
}

// Clone creates a new stack holding the same environments as s.
// The environments themselves are shared, not copied.
func (s *stack) Clone() *T {
	return &stack{frames: append([]*env.T(nil), s.frames...), max: s.max}
}

// Depth returns the number of frames on the stack s.
func (s *stack) Depth() int {
	return len(s.frames)
}

// Global returns frame 0.
func (s *stack) Global() *env.T {
	return s.frames[0]
}

// Lookup searches for k from the innermost frame to the global frame.
func (s *stack) Lookup(k string) (object.I, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].Lookup(k); ok {
			return v, true
		}
	}

	return nil, false
}

// Max returns the maximum depth of the stack s.
func (s *stack) Max() int {
	return s.max
}

// Pop removes the innermost frame. The global frame is never removed.
func (s *stack) Pop() {
	if len(s.frames) > 1 {
		s.frames[len(s.frames)-1] = nil
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Push adds e as the innermost frame.
func (s *stack) Push(e *env.T) error {
	if len(s.frames) >= s.max {
		return fmt.Errorf("%w: maximum is %d", ErrStackDepthExceeded, s.max)
	}

	s.frames = append(s.frames, e)

	return nil
}

// Top returns the innermost frame.
func (s *stack) Top() *env.T {
	return s.frames[len(s.frames)-1]
}

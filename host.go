// Released under an MIT license. See LICENSE.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alc-lisp/alc/internal/bridge"
	"github.com/alc-lisp/alc/internal/common/struct/token"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/null"
	"github.com/alc-lisp/alc/internal/engine"
	"github.com/alc-lisp/alc/internal/engine/native"
	"github.com/alc-lisp/alc/internal/reader"
	"github.com/alc-lisp/alc/internal/reader/ast"
	"github.com/alc-lisp/alc/internal/system/cache"
	"github.com/alc-lisp/alc/internal/type/env"
	"github.com/docker/go-units"
)

// host reads, evaluates and prints for the command line and the REPL.
type host struct {
	ast      bool
	builtins *env.T
	comments bool
	depth    int
	engine   *engine.T
	numbers  *cache.T
	stderr   io.Writer
	stdout   io.Writer
	timed    bool
	tokens   bool
}

func newHost(depth int, stdout, stderr io.Writer) *host {
	globals := bridge.Globals()
	native.Register(globals.Parent())

	h := &host{
		builtins: globals.Parent(),
		depth:    depth,
		numbers:  cache.New(),
		stderr:   stderr,
		stdout:   stdout,
	}

	h.reset()

	return h
}

// Evaluate evaluates what was read and prints the result.
func (h *host) Evaluate(r *reader.T) {
	h.evaluate(r)
}

// Names returns the names visible at the top level.
func (h *host) Names() []string {
	return h.engine.Global().Names()
}

func (h *host) evaluate(r *reader.T) bool {
	r.PrintErrors(h.stderr)

	start := time.Now()

	v, err := h.engine.Eval(r.Root())

	if h.timed {
		elapsed := time.Since(start)
		fmt.Fprintf(h.stderr, "time: %s (%s)\n", elapsed, units.HumanDuration(elapsed))
	}

	if err != nil {
		fmt.Fprintf(h.stderr, "error: %v\n", err)
		return false
	}

	if v != null.Null {
		fmt.Fprintln(h.stdout, v)
	}

	return !errval.Is(v)
}

// file reads and runs the script at path with a fresh set of globals.
func (h *host) file(path string) bool {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(h.stderr, "error: %v\n", err)
		return false
	}

	h.reset()

	return h.run(string(b))
}

func (h *host) printAST(root ast.Node) {
	ast.Walk(root, func(n ast.Node, p ast.Path) bool {
		kind := strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
		indent := strings.Repeat("  ", len(p))

		if l, ok := n.(interface{ Value() string }); ok {
			fmt.Fprintf(h.stdout, "%s%s %s %q %s\n", indent, p, kind, l.Value(), n.Start())
		} else {
			fmt.Fprintf(h.stdout, "%s%s %s %s\n", indent, p, kind, n.Start())
		}

		return true
	})
}

func (h *host) printTokens(tokens []*token.T) {
	for _, t := range tokens {
		if t.Is(token.Comment) && !h.comments {
			continue
		}

		fmt.Fprintln(h.stdout, t)
	}
}

func (h *host) reset() {
	h.engine = engine.New(
		env.New(h.builtins),
		engine.WithDepth(h.depth),
		engine.WithNumbers(h.numbers),
		engine.WithOutput(h.stdout),
	)
}

// run reads and evaluates source. It returns false if anything failed.
func (h *host) run(source string) bool {
	r, err := reader.Read(source)
	if err != nil {
		fmt.Fprintf(h.stderr, "error: %v\n", err)
		return false
	}

	switch {
	case h.tokens:
		h.printTokens(r.Tokens())
		return true

	case h.ast:
		h.printAST(r.Root())
		return !r.HasErrors()
	}

	return h.evaluate(r)
}

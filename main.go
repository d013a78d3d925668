// Released under an MIT license. See LICENSE.

/*
Alc evaluates alc-lisp programs.

	alc script.alc
	alc -c '(+ 1 2)'
	echo '(println "hello")' | alc
	alc --serve=localhost:8080

With no script or command, and a terminal on stdin, alc starts an
interactive session. See alc -h for all options.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/alc-lisp/alc/internal/bridge"
	"github.com/alc-lisp/alc/internal/system/config"
	"github.com/alc-lisp/alc/internal/system/options"
	"github.com/alc-lisp/alc/internal/system/watch"
	"github.com/alc-lisp/alc/internal/ui"
)

func main() {
	if err := options.Parse(nil); err != nil {
		fatal(err)
	}

	c, err := config.Load(options.Config())
	if err != nil {
		fatal(err)
	}

	depth := c.MaxDepth
	if options.MaxDepth() > 0 {
		depth = options.MaxDepth()
	}

	h := newHost(depth, os.Stdout, os.Stderr)
	h.ast = options.AST()
	h.comments = c.ShowComments
	h.timed = options.Time()
	h.tokens = options.Tokens()

	switch {
	case options.Serve() != "":
		log.Printf("serving on %s", options.Serve())

		err = http.ListenAndServe(options.Serve(), bridge.NewServer(bridge.Globals(), depth))

	case options.Watch():
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err = watch.File(ctx, options.Script(), func() {
			h.file(options.Script())
		})

	case options.Interactive():
		err = ui.Run(h, c.Prompt, c.HistoryPath())

	case options.Command() != "":
		if !h.run(options.Command()) {
			os.Exit(1)
		}

	case options.Script() != "":
		if !h.file(options.Script()) {
			os.Exit(1)
		}

	default:
		b, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			fatal(rerr)
		}

		if !h.run(string(b)) {
			os.Exit(1)
		}
	}

	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

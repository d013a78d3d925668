// Released under an MIT license. See LICENSE.

// Package ui provides alc's interactive read-eval-print loop.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alc-lisp/alc/internal/reader"
	"github.com/alc-lisp/alc/internal/reader/lexer"
	"github.com/alc-lisp/alc/internal/reader/parser"
	"github.com/alc-lisp/alc/internal/system/history"
	"github.com/peterh/liner"
)

// Continuation is the prompt shown while an expression is incomplete.
const Continuation = "... "

// Evaluator is the interface for things that want to process what was read.
type Evaluator interface {
	Evaluate(r *reader.T)
	Names() []string
}

// Run prompts for input until EOF and sends each complete read to e.
// History is loaded from and saved to the file at path.
func Run(e Evaluator, prompt, path string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	if err := history.Load(path, cli.ReadHistory); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}

	defer func() {
		if err := history.Save(path, cli.WriteHistory); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}()

	pending := ""

	for {
		p := prompt
		if pending != "" {
			p = Continuation
		}

		line, err := cli.Prompt(p)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			pending = ""
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		default:
			return err
		}

		source := pending + line + "\n"

		r, err := reader.Read(source)
		if incomplete(err) {
			pending = source
			continue
		}

		pending = ""

		if s := strings.Join(strings.Fields(source), " "); s != "" {
			cli.AppendHistory(s)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		e.Evaluate(r)
	}
}

func completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (head string, cs []string, tail string) {
		r := []rune(line)
		head, tail = string(r[:pos]), string(r[pos:])

		start := strings.LastIndexAny(head, " \t()[]\"") + 1
		word := head[start:]

		if word == "" {
			return head, nil, tail
		}

		for _, name := range e.Names() {
			if strings.HasPrefix(name, word) {
				cs = append(cs, name)
			}
		}

		sort.Strings(cs)

		return head[:start], cs, tail
	}
}

// incomplete returns true if err means more input could complete the source.
func incomplete(err error) bool {
	return errors.Is(err, lexer.ErrUnterminatedString) ||
		errors.Is(err, parser.ErrUnterminatedExpression) ||
		errors.Is(err, parser.ErrUnterminatedList) ||
		errors.Is(err, parser.ErrUnexpectedEOF)
}

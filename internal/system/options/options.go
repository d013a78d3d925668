// Released under an MIT license. See LICENSE.

// Package options parses alc's command line.
package options

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by alc -v.
const Version = "alc 0.1.0"

var (
	// ErrWatchWithoutScript is returned when --watch is given without a SCRIPT.
	ErrWatchWithoutScript = errors.New("--watch requires a SCRIPT")

	errMaxDepth = errors.New("--max-depth must be a positive integer")
)

//nolint:gochecknoglobals
var (
	ast         bool
	command     string
	config      string
	interactive bool
	maxDepth    int
	script      string
	serve       string
	timed       bool
	tokens      bool
	watch       bool
	usage       = `alc

Usage:
  alc [options] [SCRIPT]
  alc [options] -c COMMAND
  alc [options] --serve=ADDR
  alc -h
  alc -v

Arguments:
  SCRIPT  Path to an alc script. If not given, read from stdin.

Options:
  -c, --command=COMMAND  Evaluate COMMAND.
  -w, --watch            Evaluate SCRIPT again each time it changes.
  -t, --time             Print how long evaluation took.
  -d, --max-depth=N      Limit the call stack to N frames.
  --config=FILE          Read settings from FILE instead of ~/.alc.yaml.
  --tokens               Print the tokens read and exit.
  --ast                  Print the syntax tree and exit.
  --serve=ADDR           Serve evaluation sessions over a websocket at ADDR.
  -h, --help             Display this help.
  -v, --version          Print alc version.

If alc's stdin is a TTY and no SCRIPT, COMMAND or ADDR was given, alc
starts an interactive session.
`
)

// AST returns true if the syntax tree should be printed instead of evaluated.
func AST() bool {
	return ast
}

func Command() string {
	return command
}

// Config returns the path of the configuration file, if one was given.
func Config() string {
	return config
}

func Interactive() bool {
	return interactive
}

// MaxDepth returns the requested call stack limit or zero if none was given.
func MaxDepth() int {
	return maxDepth
}

// Parse parses argv. If argv is nil, os.Args[1:] is used.
// Requests for help or the version, and malformed command lines, print
// a message and exit.
func Parse(argv []string) error {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		return err
	}

	ast, _ = opts.Bool("--ast")
	command, _ = opts.String("--command")
	config, _ = opts.String("--config")
	script, _ = opts.String("SCRIPT")
	serve, _ = opts.String("--serve")
	timed, _ = opts.Bool("--time")
	tokens, _ = opts.Bool("--tokens")
	watch, _ = opts.Bool("--watch")

	maxDepth = 0

	if s, _ := opts.String("--max-depth"); s != "" {
		maxDepth, err = strconv.Atoi(s)
		if err != nil || maxDepth <= 0 {
			return fmt.Errorf("%w, got %q", errMaxDepth, s)
		}
	}

	if watch && script == "" {
		return ErrWatchWithoutScript
	}

	interactive = script == "" && command == "" && serve == "" && terminal()

	return nil
}

func Script() string {
	return script
}

// Serve returns the address to serve sessions on, if one was given.
func Serve() string {
	return serve
}

func Time() bool {
	return timed
}

func Tokens() bool {
	return tokens
}

func Watch() bool {
	return watch
}

func terminal() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

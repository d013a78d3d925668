// Released under an MIT license. See LICENSE.

// Package native provides the builtins that reach outside the evaluator:
// files, the environment, the clock and the working directory.
//
// Only hosts that run trusted code register these.
package native

import (
	"math"
	"os"
	"time"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/null"
	"github.com/alc-lisp/alc/internal/common/type/str"
	"github.com/alc-lisp/alc/internal/common/validate"
	"github.com/alc-lisp/alc/internal/engine/commands"
	"github.com/alc-lisp/alc/internal/system/process"
	"github.com/alc-lisp/alc/internal/type/env"
	"github.com/google/uuid"
)

// The longest sleep, in milliseconds, that fits in a time.Duration.
const maxSleep = math.MaxInt64 / int64(time.Millisecond)

// Functions returns a mapping of names to the native builtins.
func Functions() map[string]builtin.Func {
	return map[string]builtin.Func{
		"getenv":    getenv,
		"open":      readFile("open"),
		"pwd":       pwd,
		"read_file": readFile("read_file"),
		"sleep":     sleep,
		"uuid":      newUUID,
	}
}

// Register binds the native builtins in e.
func Register(e *env.T) {
	commands.Define(e, Functions())
}

func getenv(_ builtin.Evaluator, args []object.I) object.I {
	k, e := oneString("getenv", args)
	if e != nil {
		return e
	}

	return str.New(os.Getenv(k))
}

func newUUID(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("uuid", args, 0); e != nil {
		return e
	}

	u, err := uuid.NewRandom()
	if err != nil {
		return errval.New("uuid: " + err.Error())
	}

	return str.New(u.String())
}

func pwd(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("pwd", args, 0); e != nil {
		return e
	}

	wd, err := process.Getwd()
	if err != nil {
		return errval.New("pwd: " + err.Error())
	}

	return str.New(wd)
}

func readFile(name string) builtin.Func {
	return func(_ builtin.Evaluator, args []object.I) object.I {
		path, e := oneString(name, args)
		if e != nil {
			return e
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return errval.New(name + ": " + err.Error())
		}

		return str.New(string(b))
	}
}

func sleep(_ builtin.Evaluator, args []object.I) object.I {
	if e := validate.Exactly("sleep", args, 1); e != nil {
		return e
	}

	ms, e := validate.Integer("sleep", args, 0)
	if e != nil {
		return e
	}

	if ms < 0 {
		return errval.Newf("sleep: expected a non-negative duration, got %d", ms)
	}

	if ms > maxSleep {
		return errval.Newf("sleep: %d milliseconds is longer than %d", ms, maxSleep)
	}

	if err := process.Sleep(time.Duration(ms) * time.Millisecond); err != nil {
		return errval.New("sleep: " + err.Error())
	}

	return null.Null
}

func oneString(name string, args []object.I) (string, *errval.T) {
	if e := validate.Exactly(name, args, 1); e != nil {
		return "", e
	}

	return validate.String(name, args, 0)
}

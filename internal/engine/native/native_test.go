package native

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/integer"
	"github.com/alc-lisp/alc/internal/common/type/null"
	"github.com/alc-lisp/alc/internal/common/type/str"
	"github.com/alc-lisp/alc/internal/engine/commands"
	"github.com/alc-lisp/alc/internal/type/env"
	"github.com/google/uuid"
)

func call(t *testing.T, name string, args ...object.I) object.I {
	t.Helper()

	fn, ok := Functions()[name]
	if !ok {
		t.Fatalf("No builtin named %q", name)
	}

	return fn(nil, args)
}

func message(t *testing.T, v object.I) string {
	t.Helper()

	if !errval.Is(v) {
		t.Fatalf("Expected an error value; got %v", v)
	}

	return errval.To(v).Message()
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.alc")

	if err := os.WriteFile(path, []byte("(+ 1 2)\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"open", "read_file"} {
		v := call(t, name, str.New(path))
		if !str.Is(v) || v.String() != "(+ 1 2)\n" {
			t.Fatalf("%s: unexpected contents %q", name, v)
		}

		m := message(t, call(t, name, str.New(path+".missing")))
		if !strings.HasPrefix(m, name+": ") {
			t.Fatalf("%s: unexpected message %q", name, m)
		}
	}

	if m := message(t, call(t, "open")); m != "open: expected 1 argument, got 0" {
		t.Fatalf("Unexpected message %q", m)
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("ALC_NATIVE_TEST", "value")

	if v := call(t, "getenv", str.New("ALC_NATIVE_TEST")); v.String() != "value" {
		t.Fatalf("Expected value; got %v", v)
	}

	m := message(t, call(t, "getenv", integer.New(1)))
	if m != "getenv: argument 1: expected string, got integer" {
		t.Fatalf("Unexpected message %q", m)
	}
}

func TestPwd(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Skip(err)
	}

	if v := call(t, "pwd"); v.String() != wd {
		t.Fatalf("Expected %s; got %v", wd, v)
	}
}

func TestSleep(t *testing.T) {
	if v := call(t, "sleep", integer.New(1)); v != null.Null {
		t.Fatalf("Expected null; got %v", v)
	}

	m := message(t, call(t, "sleep", integer.New(-1)))
	if m != "sleep: expected a non-negative duration, got -1" {
		t.Fatalf("Unexpected message %q", m)
	}

	m = message(t, call(t, "sleep", integer.New(math.MaxInt64)))
	if !strings.HasPrefix(m, "sleep: 9223372036854775807 milliseconds is longer than ") {
		t.Fatalf("Unexpected message %q", m)
	}
}

func TestUUID(t *testing.T) {
	a := call(t, "uuid")
	b := call(t, "uuid")

	if _, err := uuid.Parse(a.String()); err != nil {
		t.Fatalf("%v is not a UUID: %v", a, err)
	}

	if a.Equal(b) {
		t.Fatal("Expected distinct UUIDs")
	}
}

func TestRegister(t *testing.T) {
	e := env.New(nil)
	Register(e)

	for _, name := range []string{"open", commands.Prefix + "pwd", "uuid"} {
		if _, ok := e.Lookup(name); !ok {
			t.Fatalf("%s not defined", name)
		}
	}
}

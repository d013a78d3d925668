package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExamples(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("examples", "*.alc"))
	if err != nil {
		t.Fatal(err)
	}

	if len(paths) == 0 {
		t.Fatal("No examples found")
	}

	for _, path := range paths {
		expected, err := os.ReadFile(strings.TrimSuffix(path, ".alc") + ".out")
		if err != nil {
			t.Fatal(err)
		}

		var stdout, stderr bytes.Buffer

		h := newHost(0, &stdout, &stderr)
		if !h.file(path) {
			t.Fatalf("%s: %s", path, stderr.String())
		}

		if stdout.String() != string(expected) {
			t.Fatalf("%s: expected:\n%s\ngot:\n%s", path, expected, stdout.String())
		}
	}
}

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer

	h := newHost(0, &stdout, &stderr)

	if h.run("(define x 1) (/ 1 0)") {
		t.Fatal("Expected failure")
	}

	if stderr.String() != "error: error in expression at 1:14: /: division by zero\n" {
		t.Fatalf("Unexpected error %q", stderr.String())
	}

	stderr.Reset()

	if h.run("(/ 1 0)") {
		t.Fatal("Expected an error value to fail")
	}

	if stdout.String() != "error: /: division by zero\n" || stderr.Len() != 0 {
		t.Fatalf("Unexpected output %q %q", stdout.String(), stderr.String())
	}

	stdout.Reset()

	if h.run("(list x @)") {
		t.Fatal("Expected an invalid argument to fail the call")
	}

	if !strings.Contains(stderr.String(), `invalid token "@" at 1:9`) {
		t.Fatalf("Expected a diagnostic; got %q", stderr.String())
	}

	if !strings.Contains(stderr.String(), "error in argument 2 at 1:9") {
		t.Fatalf("Expected the failing argument; got %q", stderr.String())
	}

	if h.run(`(+ 1 "2`) {
		t.Fatal("Expected failure")
	}
}

func TestPersistentEngine(t *testing.T) {
	var stdout, stderr bytes.Buffer

	h := newHost(0, &stdout, &stderr)

	h.run("(define x 41)")
	h.run("(+ x 1)")

	if stdout.String() != "42\n" {
		t.Fatalf("Expected 42; got %q", stdout.String())
	}
}

func TestTokens(t *testing.T) {
	var stdout, stderr bytes.Buffer

	h := newHost(0, &stdout, &stderr)
	h.tokens = true

	if !h.run("(+ 1 2) ; sum") {
		t.Fatal(stderr.String())
	}

	if n := strings.Count(stdout.String(), "\n"); n != 5 {
		t.Fatalf("Expected 5 tokens; got %d", n)
	}

	stdout.Reset()
	h.comments = true

	h.run("(+ 1 2) ; sum")

	if n := strings.Count(stdout.String(), "\n"); n != 6 {
		t.Fatalf("Expected 6 tokens; got %d", n)
	}
}

func TestAST(t *testing.T) {
	var stdout, stderr bytes.Buffer

	h := newHost(0, &stdout, &stderr)
	h.ast = true

	if !h.run("(fn (x) (+ x 1))") {
		t.Fatal(stderr.String())
	}

	for _, kind := range []string{"Expression", "FunctionLiteral", `Word "+"`, `NumberLiteral "1"`} {
		if !strings.Contains(stdout.String(), kind) {
			t.Fatalf("Expected %s in:\n%s", kind, stdout.String())
		}
	}
}

func TestTime(t *testing.T) {
	var stdout, stderr bytes.Buffer

	h := newHost(0, &stdout, &stderr)
	h.timed = true

	h.run("(+ 1 2)")

	if !strings.HasPrefix(stderr.String(), "time: ") {
		t.Fatalf("Expected a time; got %q", stderr.String())
	}
}

func TestNames(t *testing.T) {
	var stdout, stderr bytes.Buffer

	h := newHost(0, &stdout, &stderr)
	h.run("(define answer 42)")

	names := strings.Join(h.Names(), " ")

	for _, name := range []string{"answer", "map", "std/map", "pwd", "std/uuid"} {
		if !strings.Contains(" "+names+" ", " "+name+" ") {
			t.Fatalf("Expected %s in %s", name, names)
		}
	}
}

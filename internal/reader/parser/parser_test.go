package parser

import (
	"errors"
	"testing"

	"github.com/alc-lisp/alc/internal/reader/ast"
	"github.com/alc-lisp/alc/internal/reader/lexer"
)

func parse(t *testing.T, s string) (*T, ast.Node, error) {
	t.Helper()

	tokens, err := lexer.Parse(s)
	if err != nil {
		t.Fatalf("Unexpected lexer error: %v", err)
	}

	p := New(tokens)
	root, err := p.Parse()

	return p, root, err
}

func check(t *testing.T, s, expected string) {
	t.Helper()

	p, root, err := parse(t, s)
	if err != nil {
		t.Fatalf("Parsing %q: %v", s, err)
	}

	if p.HasErrors() {
		t.Fatalf("Parsing %q: unexpected invalid tokens: %v", s, p.Errors())
	}

	if actual := root.String(); actual != expected {
		t.Fatalf("Parsing %q: expected %s; got %s", s, expected, actual)
	}

	// Parsing the printed tree should give the same tree.
	_, reparsed, err := parse(t, root.String())
	if err != nil {
		t.Fatalf("Reparsing %q: %v", root.String(), err)
	}

	if reparsed.String() != expected {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", expected, reparsed)
	}
}

func TestSimpleCall(t *testing.T) {
	_, root, err := parse(t, "(+ 1 2)")
	if err != nil {
		t.Fatal(err)
	}

	e := root.(*ast.Expression).Children[0].(*ast.Expression)
	if len(e.Children) != 3 {
		t.Fatalf("Expected 3 children; got %d", len(e.Children))
	}

	if w, ok := e.Children[0].(*ast.Word); !ok || w.Value() != "+" {
		t.Fatalf("Expected word +; got %v", e.Children[0])
	}

	for _, c := range e.Children[1:] {
		if _, ok := c.(*ast.NumberLiteral); !ok {
			t.Fatalf("Expected number literal; got %T", c)
		}
	}
}

func TestForms(t *testing.T) {
	for _, tc := range []struct{ source, expected string }{
		{"", "()"},
		{"(+ 1 2)", "((+ 1 2))"},
		{"(a) (b)", "((a) (b))"},
		{"[1 [2 3] \"x\"]", "([1 [2 3] \"x\"])"},
		{"(if true 1 false)", "((if true 1 false))"},
		{"; leading\n(a ; inner\n b) ; trailing", "((a b))"},
		{"()", "(())"},
		{"(fn (x) (+ x 1))", "(((fn (x) (+ x 1))))"},
		{"(fn [x y] x)", "(((fn (x y) (x))))"},
		{"(fn () 5)", "(((fn () (5))))"},
	} {
		check(t, tc.source, tc.expected)
	}
}

func TestFunctionBodyIsExpression(t *testing.T) {
	_, root, err := parse(t, "(fn (x) x)")
	if err != nil {
		t.Fatal(err)
	}

	n, ok := ast.NodeAt(root, ast.Path{0, 0})
	if !ok {
		t.Fatal("Expected a node at [0 0]")
	}

	f, ok := n.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("Expected function literal; got %T", n)
	}

	if _, ok := f.Body.(*ast.Expression); !ok {
		t.Fatalf("Expected expression body; got %T", f.Body)
	}
}

func TestStructuralErrors(t *testing.T) {
	for _, tc := range []struct {
		source   string
		expected error
	}{
		{"(+ 1", ErrUnterminatedExpression},
		{"(", ErrUnterminatedExpression},
		{"[1 2", ErrUnterminatedList},
		{")", ErrUnexpectedRParen},
		{"(a ]", ErrUnexpectedRSquare},
		{"(fn 1 2)", ErrInvalidArguments},
		{"(fn (1) 2)", ErrInvalidArguments},
		{"(fn (x)", ErrUnexpectedEOF},
	} {
		_, _, err := parse(t, tc.source)
		if !errors.Is(err, tc.expected) {
			t.Fatalf("Parsing %q: expected %v; got %v", tc.source, tc.expected, err)
		}
	}
}

func TestUnterminatedPosition(t *testing.T) {
	_, _, err := parse(t, "(+ 1")
	if err == nil || err.Error() != "unterminated expression: last child ends at 1:5" {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, _, err = parse(t, "(")
	if err == nil || err.Error() != "unterminated expression: last child ends at 0:0" {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestInvalidRecovery(t *testing.T) {
	for _, tc := range []struct {
		source string
		paths  []ast.Path
	}{
		{"@", []ast.Path{{0}}},
		{"(a @)", []ast.Path{{0, 1}}},
		{"(a @) (b (c @ d) @)", []ast.Path{{0, 1}, {1, 1, 1}, {1, 2}}},
		{"[1 'x]", []ast.Path{{0, 1}}},
		{"(fn (x) @)", []ast.Path{{0, 0, 1, 0}}},
		{"(fn (x) [x @])", []ast.Path{{0, 0, 1, 0, 1}}},
		{"(fn (x) (x @))", []ast.Path{{0, 0, 1, 1}}},
		{"(a ; @\n @)", []ast.Path{{0, 1}}},
	} {
		p, root, err := parse(t, tc.source)
		if err != nil {
			t.Fatalf("Parsing %q: %v", tc.source, err)
		}

		errs := p.Errors()
		if len(errs) != len(tc.paths) {
			t.Fatalf("Parsing %q: expected %v; got %v", tc.source, tc.paths, errs)
		}

		for i, path := range tc.paths {
			if errs[i].String() != path.String() {
				t.Fatalf("Parsing %q: expected %v; got %v", tc.source, path, errs[i])
			}

			n, ok := ast.NodeAt(root, path)
			if !ok {
				t.Fatalf("Parsing %q: no node at %v", tc.source, path)
			}

			if _, ok := n.(*ast.Invalid); !ok {
				t.Fatalf("Parsing %q: expected invalid node at %v; got %T", tc.source, path, n)
			}
		}

		// Every Invalid node in the tree has been recorded.
		count := 0
		ast.Walk(root, func(n ast.Node, _ ast.Path) bool {
			if _, ok := n.(*ast.Invalid); ok {
				count++
			}

			return true
		})

		if count != len(errs) {
			t.Fatalf("Parsing %q: found %d invalid nodes, recorded %d", tc.source, count, len(errs))
		}
	}
}

func TestDiagnostics(t *testing.T) {
	p, root, err := parse(t, "(a @)")
	if err != nil {
		t.Fatal(err)
	}

	d := p.Diagnostics(root)
	if len(d) != 1 || d[0] != `invalid token "@" at 1:4` {
		t.Fatalf("Unexpected diagnostics: %v", d)
	}
}

package bridge

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alc-lisp/alc/internal/engine"
	"github.com/alc-lisp/alc/internal/engine/commands"
	"github.com/alc-lisp/alc/internal/type/frame"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

func TestRun(t *testing.T) {
	v, err := Run("(define sq (fn (x) (* x x))) (sq 12)", Globals())
	if err != nil {
		t.Fatal(err)
	}

	if v.String() != "144" {
		t.Fatalf("Expected 144; got %v", v)
	}

	_, err = Run(`(+ 1 "unterminated`, Globals())
	if err == nil {
		t.Fatal("Expected an error")
	}
}

func TestRunDepth(t *testing.T) {
	_, err := Run("(define f (fn () (f))) (f)", Globals(), engine.WithDepth(20))
	if !errors.Is(err, frame.ErrStackDepthExceeded) {
		t.Fatalf("Expected %v; got %v", frame.ErrStackDepthExceeded, err)
	}
}

type client struct {
	t  *testing.T
	ws *websocket.Conn
}

func dial(t *testing.T, s *httptest.Server) *client {
	t.Helper()

	url := "ws" + strings.TrimPrefix(s.URL, "http")

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { ws.Close() })

	return &client{t: t, ws: ws}
}

func (c *client) eval(source string) *Message {
	c.t.Helper()

	if err := c.ws.WriteJSON(&Message{Source: source}); err != nil {
		c.t.Fatal(err)
	}

	return c.read()
}

func (c *client) read() *Message {
	c.t.Helper()

	m := &Message{}
	if err := c.ws.ReadJSON(m); err != nil {
		c.t.Fatal(err)
	}

	return m
}

func TestServer(t *testing.T) {
	s := httptest.NewServer(NewServer(Globals(), 0))
	defer s.Close()

	c := dial(t, s)

	m := c.eval("(+ 1 2)")
	if m.Value != 3.0 || m.Display != "3" || m.Error != "" {
		t.Fatalf("Unexpected reply %+v", m)
	}

	if _, err := uuid.Parse(m.Session); err != nil {
		t.Fatalf("Expected a UUID session; got %q", m.Session)
	}

	session := m.Session

	if m = c.eval("(define x 2)"); m.Display != "null" {
		t.Fatalf("Unexpected reply %+v", m)
	}

	if m = c.eval("(* x 21)"); m.Display != "42" || m.Session != session {
		t.Fatalf("Unexpected reply %+v", m)
	}

	if m = c.eval("(list 1 \"a\")"); m.Display != `[1 "a"]` {
		t.Fatalf("Unexpected reply %+v", m)
	}

	if m = c.eval("(/ 1 0)"); m.Display != "error: /: division by zero" {
		t.Fatalf("Unexpected reply %+v", m)
	}

	m = c.eval("(define y 1) (/ 1 0)")
	if !strings.Contains(m.Error, "division by zero") {
		t.Fatalf("Unexpected reply %+v", m)
	}

	m = c.eval("(list 1 @)")
	if len(m.Diagnostics) != 1 || m.Diagnostics[0] != `invalid token "@" at 1:9` {
		t.Fatalf("Unexpected reply %+v", m)
	}

	m = c.eval(`"unterminated`)
	if m.Error == "" {
		t.Fatalf("Unexpected reply %+v", m)
	}

	other := dial(t, s)

	m = other.eval("x")
	if m.Display != "null" || m.Session == session {
		t.Fatalf("Sessions should not share definitions: %+v", m)
	}
}

func TestServerOutput(t *testing.T) {
	s := httptest.NewServer(NewServer(Globals(), 0))
	defer s.Close()

	c := dial(t, s)

	m := c.eval(`(println "hello" 1)`)
	if m.Output != "hello 1\n" {
		t.Fatalf("Expected output; got %+v", m)
	}

	if m = c.read(); m.Display != "null" {
		t.Fatalf("Unexpected reply %+v", m)
	}
}

func TestServerInvalidRequest(t *testing.T) {
	s := httptest.NewServer(NewServer(Globals(), 0))
	defer s.Close()

	c := dial(t, s)

	if err := c.ws.WriteMessage(websocket.TextMessage, []byte("{")); err != nil {
		t.Fatal(err)
	}

	if m := c.read(); !strings.HasPrefix(m.Error, "invalid request: ") {
		t.Fatalf("Unexpected reply %+v", m)
	}

	if m := c.eval("(std/+ 1 1)"); m.Display != "2" {
		t.Fatalf("Unexpected reply %+v", m)
	}
}

func TestGlobalsHaveBuiltins(t *testing.T) {
	g := Globals()

	if _, ok := g.Lookup(commands.Prefix + "map"); !ok {
		t.Fatal("Expected builtins to be visible from the globals")
	}

	if g.Size() != 0 {
		t.Fatalf("Expected empty globals; got %d names", g.Size())
	}
}

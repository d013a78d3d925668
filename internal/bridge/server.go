// Released under an MIT license. See LICENSE.

package bridge

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/alc-lisp/alc/internal/engine"
	"github.com/alc-lisp/alc/internal/reader"
	"github.com/alc-lisp/alc/internal/system/cache"
	"github.com/alc-lisp/alc/internal/type/env"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is sent in both directions over a session's websocket.
// Clients send Source. The server replies with the remaining fields.
type Message struct {
	Source string `json:"source,omitempty"`

	Session     string   `json:"session,omitempty"`
	Value       any      `json:"value"`
	Display     string   `json:"display,omitempty"`
	Error       string   `json:"error,omitempty"`
	Diagnostics []string `json:"diagnostics,omitempty"`
	Output      string   `json:"output,omitempty"`
}

// Server evaluates the source sent by websocket clients.
//
// Every connection is a session with its own definitions. Sessions share
// the server's globals and number literal cache.
type Server struct {
	depth    int
	globals  *env.T
	numbers  *cache.T
	upgrader websocket.Upgrader
}

// NewServer creates a new Server. A depth of zero or less means the default.
func NewServer(globals *env.T, depth int) *Server {
	return &Server{
		depth:   depth,
		globals: globals,
		numbers: cache.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request to a websocket and runs a session on it.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("bridge: upgrade: %v", err)
		return
	}
	defer ws.Close()

	c := &session{id: uuid.NewString(), ws: ws}

	e := engine.New(
		env.New(s.globals),
		engine.WithDepth(s.depth),
		engine.WithNumbers(s.numbers),
		engine.WithOutput(c),
	)

	for {
		_, b, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("bridge: session %s: %v", c.id, err)
			}

			return
		}

		var m Message

		if err := json.Unmarshal(b, &m); err != nil {
			err = c.send(&Message{Error: "invalid request: " + err.Error()})
		} else {
			err = c.send(evaluate(e, m.Source))
		}

		if err != nil {
			log.Printf("bridge: session %s: %v", c.id, err)
			return
		}
	}
}

func evaluate(e *engine.T, source string) *Message {
	r, err := reader.Read(source)
	if err != nil {
		return &Message{Error: err.Error()}
	}

	m := &Message{Diagnostics: r.Diagnostics()}

	v, err := e.Eval(r.Root())
	if err != nil {
		m.Error = err.Error()
		return m
	}

	m.Value = ToHost(v)
	m.Display = v.String()

	return m
}

type session struct {
	sync.Mutex

	id string
	ws *websocket.Conn
}

func (c *session) send(m *Message) error {
	c.Lock()
	defer c.Unlock()

	m.Session = c.id

	return c.ws.WriteJSON(m)
}

// Write sends p to the client as output.
func (c *session) Write(p []byte) (int, error) {
	if err := c.send(&Message{Output: string(p)}); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Package devserver optionally broadcasts an interpreter's live cursor
// position and top-of-stack value over a websocket, for a browser-side
// visualizer to watch a run in progress. Adapted from the teacher's
// internal/network/websocket_server.go: same accept-loop-plus-broadcast
// shape, narrowed to one-directional (server-to-client) diagnostic
// frames instead of the teacher's bidirectional command channel, since
// funge98 has no remote-control surface to expose.
package devserver

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Snapshot is one tick's worth of state worth showing a live viewer.
type Snapshot struct {
	Seq      int64  `json:"seq"`
	X        int64  `json:"x"`
	Y        int64  `json:"y"`
	DX       int64  `json:"dx"`
	DY       int64  `json:"dy"`
	StackTop string `json:"stackTop"`
	Halted   bool   `json:"halted"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Server accepts websocket connections on /trace and broadcasts every
// Snapshot passed to Broadcast to all currently-connected clients.
// Client messages are read only to notice disconnects and are discarded:
// this is a one-directional diagnostics feed, not a control channel.
type Server struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewServer returns a Server ready to be registered on an *http.ServeMux.
func NewServer() *Server {
	return &Server{clients: make(map[*websocket.Conn]struct{})}
}

// Handler upgrades a GET /trace request to a websocket and registers the
// connection for broadcasts until it closes.
func (s *Server) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("devserver: upgrade failed: %v", err)
		return
	}
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Drain and discard anything the client sends, just to notice when it
	// disconnects; this channel never carries instructions back in.
	go func() {
		defer s.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) remove(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// Broadcast sends snap as JSON to every connected client, dropping any
// connection whose write fails. Writes have no deadline, so a client
// that stops reading can block the call.
func (s *Server) Broadcast(snap Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(s.clients, conn)
			conn.Close()
		}
	}
}

// Close disconnects every client.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
}

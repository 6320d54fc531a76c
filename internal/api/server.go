// Package api serves a live view of a decoded event stream over HTTP and
// WebSocket.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"inputwire/internal/protocol"
)

// Server publishes decoded events to WebSocket clients
type Server struct {
	token string
	hub   *Hub

	seq    atomic.Uint64
	mu     sync.Mutex
	counts map[protocol.MessageType]uint64
	srv    *http.Server
}

// Status is the body of /api/status
type Status struct {
	Frames  uint64                          `json:"frames"`
	Clients int                             `json:"clients"`
	ByType  map[protocol.MessageType]uint64 `json:"by_type"`
}

// NewServer creates a monitor server. An empty token disables auth.
func NewServer(token string) *Server {
	s := &Server{
		token:  token,
		hub:    newHub(),
		counts: make(map[protocol.MessageType]uint64),
	}
	go s.hub.run()
	return s
}

// Handler returns the HTTP handler with all routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.hub.handleWebSocket)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/health", s.handleHealth)
	return s.authMiddleware(s.recoverMiddleware(mux))
}

// Start serves on the given port. It blocks until the server stops.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Printf("Monitor: Failed to listen on %s: %v", addr, err)
		return err
	}

	s.mu.Lock()
	s.srv = &http.Server{Handler: s.Handler()}
	srv := s.srv
	s.mu.Unlock()

	log.Printf("Monitor: Serving on http://%s (ws: /ws)", addr)
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Printf("Monitor: Server stopped: %v", err)
		return err
	}
	return nil
}

// Shutdown stops the HTTP server and disconnects all clients
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	s.hub.stop()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Publish broadcasts one decoded event to all clients
func (s *Server) Publish(ev protocol.Event) {
	msg := protocol.NewMessage(s.seq.Add(1), ev)

	s.mu.Lock()
	s.counts[msg.Type]++
	s.mu.Unlock()

	s.hub.publish(msg)
}

// Status returns the current counters
func (s *Server) Status() Status {
	s.mu.Lock()
	byType := make(map[protocol.MessageType]uint64, len(s.counts))
	for k, v := range s.counts {
		byType[k] = v
	}
	s.mu.Unlock()

	return Status{
		Frames:  s.seq.Load(),
		Clients: s.hub.clientCount(),
		ByType:  byType,
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Status())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// recoverMiddleware prevents panics from crashing the whole server
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Monitor: Recovered panic: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authMiddleware checks the bearer token if configured
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || s.token == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

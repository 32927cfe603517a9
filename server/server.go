// Package server exposes a preconstructed topology over HTTP. The handler
// owns no composition logic: it decodes the request payload into a value
// tree, invokes the topology, and writes the result or error back as JSON.
package server

import (
	"io"
	"net/http"

	"github.com/ohler55/ojg/oj"

	"github.com/agentstation/flume"
)

// Server wraps a topology behind an HTTP endpoint.
type Server struct {
	node   flume.Node
	logger flume.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger adds request logging.
func WithLogger(logger flume.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server around the given topology. Any Node works: a Flow, a
// ParallelFlow, a Batch, or a single node.
func New(node flume.Node, opts ...ServerOption) *Server {
	s := &Server{node: node}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler: POST /execute.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /execute", s.execute)
	return mux
}

// ListenAndServe serves the handler on addr until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	payload, err := oj.Parse(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	if s.logger != nil {
		s.logger.Debug(ctx, "executing topology", "topology", s.node.Name())
	}

	result, err := s.node.Call(ctx, payload)
	if err != nil {
		if s.logger != nil {
			s.logger.Error(ctx, "topology failed", "topology", s.node.Name(), "error", err)
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]any{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(oj.JSON(v)))
}

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"StorePulse/internal/pacer"
)

// Server exposes the invocation trigger over HTTP: a liveness root, a
// manual pacing trigger, and a read-only status snapshot. Authentication
// is left to the deployment environment.
type Server struct {
	pacer *pacer.Pacer
	srv   *http.Server
}

func New(p *pacer.Pacer, port int) *Server {
	s := &Server{pacer: p}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/run", s.handleRun)
	mux.HandleFunc("/status", s.handleStatus)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprintln(w, "StorePulse pacing bot online.")
}

// handleRun executes one pacing tick. Submission failures inside the tick
// are logged and recorded, never surfaced here: the trigger always gets a
// normal status line.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	st := s.pacer.Run(r.Context())
	fmt.Fprintln(w, st.Summary())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.pacer.Status()
	fmt.Fprintln(w, st.Summary())
}

package metric

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/c360/rdfstore/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the metrics endpoint over HTTP.
type Server struct {
	registry *Registry
	server   *http.Server
	mu       sync.Mutex
	running  bool
}

// NewServer creates a metrics HTTP server for the given registry.
func NewServer(registry *Registry, port int, path string) *Server {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(registry.Gatherer(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})

	return &Server{
		registry: registry,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start begins serving metrics in a background goroutine.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.WrapInvalid(
			fmt.Errorf("metrics server already running on %s", s.server.Addr),
			"MetricsServer", "Start", "start metrics server")
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server stopped", "addr", s.server.Addr, "error", err)
		}
	}()

	s.running = true
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	if err := s.server.Shutdown(ctx); err != nil {
		return errors.WrapTransient(err, "MetricsServer", "Stop", "shutdown metrics server")
	}
	return nil
}

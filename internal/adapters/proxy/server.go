// Package proxy serves the gallery over HTTP: the token and content
// endpoints that stand in front of the CMS, and the web viewer.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/kamal-hamza/gallery-cli/internal/core/ports"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
)

// Backend is the CMS-facing half of the server; it is swapped whole when the
// configuration changes
type Backend struct {
	CMS      ports.CMS
	Gallery  *services.GalleryService
	Endpoint string // Logged, never the password
	Username string
}

// Server is the proxy and web viewer
type Server struct {
	backend atomic.Pointer[Backend]
	logger  *slog.Logger
	handler http.Handler
}

// NewServer wires routes and middleware around a backend
func NewServer(backend *Backend, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := parseTemplates(); err != nil {
		return nil, err
	}

	s := &Server{logger: logger}
	s.backend.Store(backend)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/get-token", s.handleGetToken)
	mux.HandleFunc("GET /api/fetch-content", s.handleFetchContent)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleViewer)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS())))

	s.handler = chain(mux, middlewares(logger)...)
	return s, nil
}

// SetBackend replaces the CMS-facing half for subsequent requests
func (s *Server) SetBackend(backend *Backend) {
	s.backend.Store(backend)
	s.logger.Info("backend replaced", "endpoint", backend.Endpoint, "username", backend.Username)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// current returns the backend for one request; handlers load it once so a
// reload mid-request cannot mix two configurations
func (s *Server) current() *Backend {
	return s.backend.Load()
}

// ListenAndServe runs until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

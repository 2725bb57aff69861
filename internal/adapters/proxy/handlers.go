package proxy

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
)

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleGetToken exchanges the configured credential for a bearer token
func (s *Server) handleGetToken(w http.ResponseWriter, r *http.Request) {
	b := s.current()
	logger := loggerFrom(r.Context())
	logger.Info("token requested", "endpoint", b.Endpoint, "username", b.Username)

	token, err := b.CMS.Login(r.Context())
	if err != nil {
		logger.Error("failed to obtain access token", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// handleFetchContent forwards the published item query with the caller's token
func (s *Server) handleFetchContent(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r.Context())

	token := requestToken(r)
	if token == "" {
		writeError(w, http.StatusBadRequest, "Token is required")
		return
	}

	program := strings.TrimSpace(r.URL.Query().Get("program"))

	items, err := s.current().CMS.RawItems(r.Context(), token, program)
	if err != nil {
		if errors.Is(err, domain.ErrTokenRequired) {
			writeError(w, http.StatusBadRequest, "Token is required")
			return
		}
		logger.Error("failed to fetch content", "error", err, "program", program)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Debug("content fetched", "items", len(items), "program", program)
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// requestToken reads the token from the query string, then the Authorization header
func requestToken(r *http.Request) string {
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}
	auth := r.Header.Get("Authorization")
	if rest, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(rest)
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

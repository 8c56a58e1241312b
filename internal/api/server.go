package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"criticdeck/internal/logging"
	"criticdeck/internal/lookup"
	"criticdeck/internal/settings"
)

// Server serves score lookups and settings access over HTTP.
type Server struct {
	bind   string
	logger *slog.Logger
	engine *lookup.Engine
	store  *settings.Store

	listener net.Listener
	server   *http.Server
}

// NewServer wires the HTTP surface. The settings store may be nil, in which
// case the settings endpoints report 404.
func NewServer(bind string, engine *lookup.Engine, store *settings.Store, logger *slog.Logger) (*Server, error) {
	bind = strings.TrimSpace(bind)
	if bind == "" {
		return nil, errors.New("api bind address is empty")
	}
	if engine == nil {
		return nil, errors.New("lookup engine is nil")
	}
	s := &Server{
		bind:   bind,
		logger: logging.NewComponentLogger(logger, "api"),
		engine: engine,
		store:  store,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/score", s.handleScore)
	mux.HandleFunc("/api/settings/", s.handleSetting)
	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// A score lookup can block for two backend requests.
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// Handler exposes the HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins serving and shuts down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	requestID := uuid.NewString()
	title := r.URL.Query().Get("title")
	platform := r.URL.Query().Get("platform")

	start := time.Now()
	result := s.engine.Lookup(r.Context(), title, platform)
	s.logger.Info("score request",
		logging.String("request_id", requestID),
		logging.String("title", title),
		logging.String("platform", platform),
		logging.Bool("found", result.Found),
		logging.Duration("duration", time.Since(start)))

	w.Header().Set("X-Request-ID", requestID)
	s.writeJSON(w, http.StatusOK, result)
}

// settingPayload is the request/response body of the settings endpoints.
type settingPayload struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func (s *Server) handleSetting(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, "settings store not configured")
		return
	}
	key := strings.TrimPrefix(r.URL.Path, "/api/settings/")
	if key == "" || strings.Contains(key, "/") {
		s.writeError(w, http.StatusNotFound, "setting not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, http.StatusOK, settingPayload{Key: key, Value: s.store.Get(key, nil)})
	case http.MethodPut, http.MethodPost:
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "read request body")
			return
		}
		var payload settingPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			s.writeError(w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}
		if err := s.store.Set(key, payload.Value); err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.writeJSON(w, http.StatusOK, settingPayload{Key: key, Value: payload.Value})
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

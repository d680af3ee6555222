package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/patrickwarner/adweave/internal/config"
	"github.com/patrickwarner/adweave/internal/middleware"
	"github.com/patrickwarner/adweave/internal/models"
	"github.com/patrickwarner/adweave/internal/observability"
)

// Error codes surfaced in the response envelope.
const (
	CodeMissingParameters = "MISSING_PARAMETERS"
	CodeAdNotFound        = "AD_NOT_FOUND"
	CodeInvalidAction     = "INVALID_ACTION"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Server groups dependencies for HTTP handlers.
type Server struct {
	Logger   *zap.Logger
	Store    *models.InMemoryAdConfigStore
	Metrics  observability.MetricsRegistry
	Config   config.Config
	reloadMu sync.Mutex
}

// NewServer constructs a Server.
func NewServer(logger *zap.Logger, store *models.InMemoryAdConfigStore, metrics observability.MetricsRegistry, cfg config.Config) *Server {
	return &Server{
		Logger:  logger,
		Store:   store,
		Metrics: metrics,
		Config:  cfg,
	}
}

// Reload re-reads the ad-config snapshot file and atomically replaces the
// store contents. A no-op when no snapshot file is configured.
func (s *Server) Reload() error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if s.Config.AdConfigFile == "" {
		return fmt.Errorf("no ad config file configured")
	}
	if err := s.Store.ReloadFile(s.Config.AdConfigFile); err != nil {
		return fmt.Errorf("reload ad configs: %w", err)
	}
	s.Logger.Info("ad configs reloaded",
		zap.String("file", s.Config.AdConfigFile),
		zap.Int("count", s.Store.Len()))
	return nil
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success   bool           `json:"success"`
	Data      any            `json:"data,omitempty"`
	Error     *envelopeError `json:"error,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// helper function to write a success envelope
func (s *Server) writeData(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		Success:   true,
		Data:      data,
		RequestID: middleware.RequestIDFromRequest(r),
	})
}

// helper function to write an error envelope
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		Success:   false,
		Error:     &envelopeError{Code: code, Message: message},
		RequestID: middleware.RequestIDFromRequest(r),
	})
}

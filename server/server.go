package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cashflow/models"
	"cashflow/service"

	log "github.com/sirupsen/logrus"
)

// Config holds the HTTP server settings
type Config struct {
	Addr                  string
	DefaultProjectionDays int
	MaxProjectionDays     int
}

// Server exposes the cashflow engine over JSON/HTTP. Authentication is
// handled upstream; the caller's identity arrives in the X-User-ID header.
type Server struct {
	cfg      Config
	cashflow service.CashflowService
	httpSrv  *http.Server
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a new HTTP server around the cashflow service
func New(cfg Config, cashflow service.CashflowService) *Server {
	s := &Server{
		cfg:      cfg,
		cashflow: cashflow,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/cashflow/projection", s.handleProjection)
	mux.HandleFunc("/api/cashflow/balances", s.handleBalances)

	s.httpSrv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// Start begins serving HTTP requests and blocks until the server stops
func (s *Server) Start() error {
	log.Infof("HTTP server listening on %s", s.cfg.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing X-User-ID header"})
		return
	}

	days := s.cfg.DefaultProjectionDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "days must be an integer"})
			return
		}
		if parsed > 0 {
			days = parsed
		}
	}
	if days > s.cfg.MaxProjectionDays {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("days must not exceed %d", s.cfg.MaxProjectionDays),
		})
		return
	}

	scope, ok := parseScope(r.URL.Query().Get("scope"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "scope must be personal or family"})
		return
	}

	filters := models.ProjectionFilters{
		Scope:     scope,
		AccountID: r.URL.Query().Get("account_id"),
	}
	if raw := r.URL.Query().Get("account_ids"); raw != "" {
		filters.AccountIDs = strings.Split(raw, ",")
	}

	projection, err := s.cashflow.GenerateProjection(r.Context(), days, filters, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoFamily) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		log.WithError(err).Error("Failed to generate cashflow projection")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to generate projection"})
		return
	}

	writeJSON(w, http.StatusOK, projection)
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing X-User-ID header"})
		return
	}

	scope, ok := parseScope(r.URL.Query().Get("scope"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "scope must be personal or family"})
		return
	}

	balances, err := s.cashflow.GetCurrentBalances(r.Context(), scope, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoFamily) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		log.WithError(err).Error("Failed to fetch account balances")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch balances"})
		return
	}
	if balances == nil {
		balances = []*models.AccountBalance{}
	}

	writeJSON(w, http.StatusOK, balances)
}

func parseScope(raw string) (models.Scope, bool) {
	switch models.Scope(raw) {
	case "", models.ScopePersonal, models.ScopeFamily:
		return models.Scope(raw), true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

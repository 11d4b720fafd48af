// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/cors"

	"github.com/okian/caltrack/internal/domain/calorie"
	"github.com/okian/caltrack/internal/domain/types"
	"github.com/okian/caltrack/pkg/logger"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	CalculateDependencies
	LatestDependencies
}

// Calculation mirrors the stamped result returned by the service.
type Calculation = types.Calculation

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	calculateHandler *CalculateHandler
	latestHandler    *LatestHandler

	allowedOrigins []string
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithAllowedOrigins sets the CORS origins allowed on /api/ routes.
func WithAllowedOrigins(origins []string) ServerOption {
	return func(s *Server) {
		if len(origins) > 0 {
			s.allowedOrigins = origins
		}
	}
}

// WithMetricsEndpoint toggles the Prometheus exposition on /healthz.
func WithMetricsEndpoint(enabled bool) ServerOption {
	return func(s *Server) {
		s.healthHandler.metricsEnabled = enabled
	}
}

// WithLogger sets the logger used by the handlers.
func WithLogger(l logger.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.calculateHandler.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		calculateHandler: NewCalculateHandler(deps),
		latestHandler:    NewLatestHandler(deps),
		allowedOrigins:   []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	apiRoute := func(h http.HandlerFunc, endpoint string) http.Handler {
		return RequestIDMiddleware(c.Handler(MetricsMiddleware(h, endpoint)))
	}

	mux.Handle("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.Handle("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.Handle("/api/calculate", apiRoute(s.calculateHandler.HandleCalculate, "calculate"))
	mux.Handle("/api/latest", apiRoute(s.latestHandler.HandleLatest, "latest"))
}

// calculationResponse is the JSON shape of a calculation, with the display
// hints the form page shows next to the numbers.
type calculationResponse struct {
	Calculation
	Description string       `json:"description"`
	Tone        calorie.Tone `json:"tone"`
	Breakdown   string       `json:"breakdown"`
}

func newCalculationResponse(c Calculation) calculationResponse {
	return calculationResponse{
		Calculation: c,
		Description: c.Result.Balance.Description(),
		Tone:        c.Result.Balance.Tone(),
		Breakdown:   c.Result.Breakdown(),
	}
}

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

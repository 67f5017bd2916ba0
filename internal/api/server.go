// Package api provides the HTTP server for the E.L.E.S. daemon.
// It exposes the simulation and assessment pipeline plus the event and
// scenario catalogs.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eles-sim/eles/internal/assess"
	"github.com/eles-sim/eles/internal/health"
	"github.com/eles-sim/eles/internal/infra/metrics"
	"github.com/eles-sim/eles/internal/sim"
)

// Server is the E.L.E.S. HTTP API server.
type Server struct {
	engine         *sim.Engine
	survival       *assess.SurvivalPredictor
	risk           *assess.RiskScoreCalculator
	recovery       *assess.RegenTimeEstimator
	checker        *health.Checker
	scenarioDir    string
	version        string
	metricsEnabled bool
}

// NewServer creates a new API server around the engine and the three
// assessment models.
func NewServer(engine *sim.Engine, survival *assess.SurvivalPredictor, risk *assess.RiskScoreCalculator, recovery *assess.RegenTimeEstimator) *Server {
	return &Server{
		engine:   engine,
		survival: survival,
		risk:     risk,
		recovery: recovery,
		version:  "dev",
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetScenarioDir points the scenario catalog at an on-disk directory.
func (s *Server) SetScenarioDir(dir string) { s.scenarioDir = dir }

// SetHealthChecker wires a checker into /health. Without one the
// endpoint reports plain liveness.
func (s *Server) SetHealthChecker(c *health.Checker) { s.checker = c }

// SetVersion sets the version string reported by /api/version.
func (s *Server) SetVersion(v string) {
	if v != "" {
		s.version = v
	}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": s.version,
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", s.handleListEvents)
		r.Get("/scenarios", s.handleListScenarios)
		r.Post("/simulate", s.handleSimulate)
		r.Route("/assess", func(r chi.Router) {
			r.Post("/survival", s.handleAssessSurvival)
			r.Post("/risk", s.handleAssessRisk)
			r.Post("/recovery", s.handleAssessRecovery)
		})
	})

	// Prometheus metrics endpoint (config-gated)
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// handleHealth reports liveness, plus the latest self-check results
// when a checker is wired in. Any failing check degrades the status
// and the response code.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.checker == nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
		return
	}

	status, code := "ok", http.StatusOK
	if !s.checker.IsHealthy() {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": s.checker.Statuses(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// metricsMiddleware records request counts and latency per chi route
// pattern, so path parameters never explode label cardinality.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

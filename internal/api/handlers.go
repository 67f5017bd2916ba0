package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/eles-sim/eles/internal/assess"
	"github.com/eles-sim/eles/internal/domain"
	"github.com/eles-sim/eles/internal/infra/metrics"
	"github.com/eles-sim/eles/internal/scenario"
	"github.com/eles-sim/eles/internal/sim"
)

// ─── Catalogs ───────────────────────────────────────────────────────────────

// eventInfo describes one simulatable event type.
type eventInfo struct {
	EventType         string            `json:"event_type"`
	Label             string            `json:"label"`
	DefaultParameters domain.Parameters `json:"default_parameters"`
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	types := domain.AllEventTypes()
	events := make([]eventInfo, 0, len(types))
	for _, t := range types {
		events = append(events, eventInfo{
			EventType:         string(t),
			Label:             t.Label(),
			DefaultParameters: sim.DefaultParameters(t),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
	})
}

func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := scenario.All(s.scenarioDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenarios": scenarios,
	})
}

// ─── Simulation ─────────────────────────────────────────────────────────────

// simulateRequest is the POST /api/v1/simulate body.
type simulateRequest struct {
	EventType  string            `json:"event_type"`
	Parameters domain.Parameters `json:"parameters,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.EventType == "" {
		writeError(w, http.StatusBadRequest, "event_type is required")
		return
	}

	start := time.Now()
	result, err := s.engine.RunSimulation(req.EventType, req.Parameters)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownEventType) {
			metrics.SimulationFailures.WithLabelValues("unknown_event_type").Inc()
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.SimulationsRun.WithLabelValues(req.EventType).Inc()
	metrics.SimulationDuration.Observe(time.Since(start).Seconds())
	metrics.SimulationSeverity.Observe(float64(result.Severity))

	slog.Info("simulation complete",
		"event_type", req.EventType,
		"severity", int(result.Severity),
		"casualties", result.EstimatedCasualties)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"run_id": uuid.NewString(),
		"result": result.Summary(),
	})
}

// ─── Assessments ────────────────────────────────────────────────────────────

func (s *Server) handleAssessSurvival(w http.ResponseWriter, r *http.Request) {
	var sc assess.SurvivalContext
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	metrics.AssessmentsRun.WithLabelValues("survival").Inc()
	writeJSON(w, http.StatusOK, s.survival.Predict(sc))
}

func (s *Server) handleAssessRisk(w http.ResponseWriter, r *http.Request) {
	var profile assess.RiskProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	metrics.AssessmentsRun.WithLabelValues("risk").Inc()
	writeJSON(w, http.StatusOK, s.risk.Compute(profile))
}

func (s *Server) handleAssessRecovery(w http.ResponseWriter, r *http.Request) {
	var rc assess.RecoveryContext
	if err := json.NewDecoder(r.Body).Decode(&rc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	metrics.AssessmentsRun.WithLabelValues("recovery").Inc()
	writeJSON(w, http.StatusOK, s.recovery.Estimate(rc))
}

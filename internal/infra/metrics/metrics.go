// Package metrics provides Prometheus metrics for the E.L.E.S. daemon —
// counters, gauges, and histograms for simulations, assessments,
// scenarios, and the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Simulations ────────────────────────────────────────────────────────────

// SimulationsRun tracks completed simulations by event type.
var SimulationsRun = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "eles",
	Name:      "simulations_total",
	Help:      "Total simulations run, by event type.",
}, []string{"event_type"})

// SimulationFailures tracks simulations rejected before running.
var SimulationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "eles",
	Name:      "simulation_failures_total",
	Help:      "Total simulation requests rejected, by reason.",
}, []string{"reason"})

// SimulationDuration tracks wall-clock time per simulation.
var SimulationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "eles",
	Name:      "simulation_duration_seconds",
	Help:      "Wall-clock duration of a single simulation.",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
})

// SimulationSeverity tracks the severity classification of each run
// (1=Minimal through 6=Extinction).
var SimulationSeverity = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "eles",
	Name:      "simulation_severity",
	Help:      "Severity classification per simulation (1=Minimal, 6=Extinction).",
	Buckets:   []float64{1, 2, 3, 4, 5, 6},
})

// ─── Assessments ────────────────────────────────────────────────────────────

// AssessmentsRun tracks assessment model evaluations by model name.
var AssessmentsRun = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "eles",
	Name:      "assessments_total",
	Help:      "Total assessment model evaluations, by model.",
}, []string{"model"})

// ─── Scenarios ──────────────────────────────────────────────────────────────

// ScenariosLoaded tracks scenario definitions available in the catalog.
var ScenariosLoaded = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "eles",
	Name:      "scenarios_loaded",
	Help:      "Number of scenario definitions in the catalog.",
})

// ─── HTTP ───────────────────────────────────────────────────────────────────

// HTTPRequests tracks requests served by route and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "eles",
	Name:      "http_requests_total",
	Help:      "HTTP requests served, by route and status code.",
}, []string{"route", "code"})

// HTTPDuration tracks request latency by route.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "eles",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route"})

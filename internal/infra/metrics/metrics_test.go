package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestSimulationMetrics_Registered(t *testing.T) {
	// promauto registers with the default registry automatically; just
	// verify we can observe without panicking and then find the family.
	SimulationsRun.WithLabelValues("asteroid").Inc()
	SimulationFailures.WithLabelValues("unknown_event_type").Inc()
	SimulationDuration.Observe(0.002)
	SimulationSeverity.Observe(4)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}

	expected := []string{
		"eles_simulations_total",
		"eles_simulation_failures_total",
		"eles_simulation_duration_seconds",
		"eles_simulation_severity",
	}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("metric %q not found", name)
		}
	}
}

func TestAssessmentMetrics(t *testing.T) {
	AssessmentsRun.WithLabelValues("survival").Inc()
	AssessmentsRun.WithLabelValues("risk").Inc()
	AssessmentsRun.WithLabelValues("recovery").Inc()

	families, _ := prometheus.DefaultGatherer.Gather()
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}

	if !names["eles_assessments_total"] {
		t.Error("eles_assessments_total not found")
	}
}

func TestScenarioMetrics(t *testing.T) {
	ScenariosLoaded.Set(8)

	families, _ := prometheus.DefaultGatherer.Gather()
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}

	if !names["eles_scenarios_loaded"] {
		t.Error("eles_scenarios_loaded not found")
	}
}

func TestHTTPMetrics(t *testing.T) {
	HTTPRequests.WithLabelValues("/api/v1/simulate", "200").Inc()
	HTTPRequests.WithLabelValues("/api/v1/simulate", "400").Inc()
	HTTPDuration.WithLabelValues("/api/v1/simulate").Observe(0.015)

	families, _ := prometheus.DefaultGatherer.Gather()
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}

	if !names["eles_http_requests_total"] {
		t.Error("eles_http_requests_total not found")
	}
	if !names["eles_http_request_duration_seconds"] {
		t.Error("eles_http_request_duration_seconds not found")
	}
}

func TestAllMetricsGatherable(t *testing.T) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	elesMetrics := 0
	for _, f := range families {
		if len(f.GetName()) > 4 && f.GetName()[:5] == "eles_" {
			elesMetrics++
		}
	}

	// Eight collector families register at init.
	if elesMetrics < 8 {
		t.Errorf("expected at least 8 eles_ metrics, got %d", elesMetrics)
	}
}

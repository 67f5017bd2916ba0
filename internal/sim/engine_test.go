package sim

import (
	"errors"
	"reflect"
	"testing"

	"github.com/eles-sim/eles/internal/domain"
	"github.com/eles-sim/eles/internal/scenario"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(domain.DefaultConstants())
}

func TestRunSimulation_UnknownEventType(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.RunSimulation("zombie_outbreak", nil)
	if !errors.Is(err, domain.ErrUnknownEventType) {
		t.Fatalf("RunSimulation() error = %v, want ErrUnknownEventType", err)
	}

	// Assessment-only hazard categories are not simulatable either.
	if _, err := e.RunSimulation("nuclear_war", nil); !errors.Is(err, domain.ErrUnknownEventType) {
		t.Errorf("RunSimulation(nuclear_war) error = %v, want ErrUnknownEventType", err)
	}
}

func TestRunSimulation_MergesDefaultsUnderOverrides(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.RunSimulation("asteroid", domain.Parameters{"diameter_km": 5.0})
	if err != nil {
		t.Fatalf("RunSimulation() error: %v", err)
	}
	if got := res.Parameters.Float("diameter_km", 0); got != 5.0 {
		t.Errorf("diameter_km = %v, want override 5.0", got)
	}
	if got := res.Parameters.Float("density_kg_m3", 0); got != 3000 {
		t.Errorf("density_kg_m3 = %v, want default 3000", got)
	}
	if got := res.SimulationData.Float("velocity_km_s", 0); got != 20 {
		t.Errorf("velocity_km_s echoed = %v, want default 20", got)
	}
}

func TestRunSimulation_DoesNotMutateCallerParameters(t *testing.T) {
	e := newTestEngine(t)
	params := domain.Parameters{"vei": 8}

	if _, err := e.RunSimulation("supervolcano", params); err != nil {
		t.Fatalf("RunSimulation() error: %v", err)
	}
	if len(params) != 1 {
		t.Errorf("caller parameters grew to %v", params)
	}
}

func TestRunSimulation_IsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	params := domain.Parameters{"r0": 3.0, "mortality_rate": 0.05}

	first, err := e.RunSimulation("pandemic", params)
	if err != nil {
		t.Fatalf("RunSimulation() error: %v", err)
	}
	second, err := e.RunSimulation("pandemic", params)
	if err != nil {
		t.Fatalf("RunSimulation() error: %v", err)
	}

	if !reflect.DeepEqual(first.SimulationData, second.SimulationData) {
		t.Error("identical inputs produced different simulation data")
	}
	if first.Severity != second.Severity || first.EstimatedCasualties != second.EstimatedCasualties {
		t.Error("identical inputs produced different derived results")
	}
}

func TestRunSimulation_EveryRegisteredTypeSucceeds(t *testing.T) {
	e := newTestEngine(t)
	for _, et := range domain.AllEventTypes() {
		res, err := e.RunSimulation(string(et), nil)
		if err != nil {
			t.Fatalf("RunSimulation(%s) error: %v", et, err)
		}
		if !res.Severity.IsValid() {
			t.Errorf("%s severity = %d, want 1..6", et, res.Severity)
		}
		if res.EstimatedCasualties < 0 {
			t.Errorf("%s casualties = %d, want >= 0", et, res.EstimatedCasualties)
		}
		if res.EconomicImpactBillionUSD < 0 {
			t.Errorf("%s economic impact = %v, want >= 0", et, res.EconomicImpactBillionUSD)
		}
		if res.ImpactedAreaKm2 < 0 {
			t.Errorf("%s impacted area = %v, want >= 0", et, res.ImpactedAreaKm2)
		}
	}
}

func TestRunScenario_UsesStoredParameters(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.RunScenario(scenario.Scenario{
		Name:      "test-eruption",
		EventType: "supervolcano",
		Parameters: domain.Parameters{
			"name": "Campi Flegrei",
			"vei":  7,
		},
	})
	if err != nil {
		t.Fatalf("RunScenario() error: %v", err)
	}
	if got := res.SimulationData.Str("volcano_name", ""); got != "Campi Flegrei" {
		t.Errorf("volcano_name = %q", got)
	}
	if res.Severity != domain.SeverityGlobal {
		t.Errorf("VEI 7 severity = %d, want %d", res.Severity, domain.SeverityGlobal)
	}
}

func TestRunScenario_BuiltinCatalogRuns(t *testing.T) {
	e := newTestEngine(t)
	for _, sc := range scenario.Builtin() {
		if _, err := e.RunScenario(sc); err != nil {
			t.Errorf("RunScenario(%s) error: %v", sc.Name, err)
		}
	}
}

func TestDefaultParameters_CoverAllEventTypes(t *testing.T) {
	for _, et := range domain.AllEventTypes() {
		if len(DefaultParameters(et)) == 0 {
			t.Errorf("DefaultParameters(%s) is empty", et)
		}
	}
	if len(DefaultParameters("unregistered")) != 0 {
		t.Error("DefaultParameters(unregistered) is not empty")
	}
}

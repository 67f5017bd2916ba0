// Package sim runs extinction-event simulations: a registry of event models
// dispatched by an Engine, plus the severity classifier that grades their
// output. Every model is deterministic and side-effect free; the only error
// the package produces is a request for an unregistered event type.
package sim

import (
	"fmt"

	"github.com/eles-sim/eles/internal/domain"
	"github.com/eles-sim/eles/internal/scenario"
)

// Engine dispatches simulation requests to the registered event models.
// The registry is fixed at construction; Engine is safe for concurrent use.
type Engine struct {
	consts domain.Constants
	models map[domain.EventType]domain.EventModel
}

// NewEngine builds an engine with all six event models registered against
// the given constants.
func NewEngine(c domain.Constants) *Engine {
	return &Engine{
		consts: c,
		models: map[domain.EventType]domain.EventModel{
			domain.EventAsteroid:        AsteroidImpact{Constants: c},
			domain.EventSupervolcano:    Supervolcano{Constants: c},
			domain.EventPandemic:        Pandemic{Constants: c},
			domain.EventClimateCollapse: ClimateCollapse{Constants: c},
			domain.EventGammaRayBurst:   GammaRayBurst{Constants: c},
			domain.EventAIExtinction:    AIExtinction{Constants: c},
		},
	}
}

// RunSimulation merges params over the event type's defaults, runs the
// model, classifies severity, and assembles the result. The given params
// map is not modified. Returns ErrUnknownEventType (wrapped) when no model
// is registered for eventType.
func (e *Engine) RunSimulation(eventType string, params domain.Parameters) (*domain.ExtinctionResult, error) {
	et := domain.EventType(eventType)
	model, ok := e.models[et]
	if !ok {
		return nil, fmt.Errorf("simulate %q: %w", eventType, domain.ErrUnknownEventType)
	}

	merged := DefaultParameters(et).Merge(params)
	data := model.Simulate(merged)
	severity := ClassifySeverity(et, data)
	return domain.NewExtinctionResult(et, severity, merged, data, e.consts), nil
}

// RunScenario runs a named scenario's event with its stored parameters.
func (e *Engine) RunScenario(sc scenario.Scenario) (*domain.ExtinctionResult, error) {
	return e.RunSimulation(sc.EventType, sc.Parameters)
}

// Constants returns the figure set the engine was built with.
func (e *Engine) Constants() domain.Constants { return e.consts }

// DefaultParameters returns the baseline parameter set merged under every
// simulation of the given event type. Callers may mutate the returned map.
func DefaultParameters(t domain.EventType) domain.Parameters {
	switch t {
	case domain.EventAsteroid:
		return domain.Parameters{
			"diameter_km":   1.0,
			"density_kg_m3": 3000.0,
			"velocity_km_s": 20.0,
		}
	case domain.EventSupervolcano:
		return domain.Parameters{
			"name": "Unknown",
			"vei":  6,
		}
	case domain.EventPandemic:
		return domain.Parameters{
			"r0":             2.5,
			"mortality_rate": 0.1,
		}
	case domain.EventClimateCollapse:
		return domain.Parameters{
			"temperature_change_c": -5.0,
		}
	case domain.EventGammaRayBurst:
		return domain.Parameters{
			"distance_ly": 1000.0,
		}
	case domain.EventAIExtinction:
		return domain.Parameters{
			"ai_level": 5,
		}
	}
	return domain.Parameters{}
}

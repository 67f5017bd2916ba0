// Package domain defines the core types of the ELES simulation pipeline:
// event types, parameter and metric mappings, severity, and the
// ExtinctionResult aggregate. Domain types are pure — no infrastructure
// dependency.
package domain

// EventType identifies a catastrophe category.
type EventType string

const (
	EventAsteroid        EventType = "asteroid"
	EventSupervolcano    EventType = "supervolcano"
	EventPandemic        EventType = "pandemic"
	EventClimateCollapse EventType = "climate_collapse"
	EventGammaRayBurst   EventType = "gamma_ray_burst"
	EventAIExtinction    EventType = "ai_extinction"

	// Hazard categories recognized by the assessment models only.
	// They have no simulation model and are rejected by the engine.
	EventNuclearWar EventType = "nuclear_war"
	EventCosmic     EventType = "cosmic"
)

// AllEventTypes returns the six simulatable event types in display order.
func AllEventTypes() []EventType {
	return []EventType{
		EventAsteroid,
		EventSupervolcano,
		EventPandemic,
		EventClimateCollapse,
		EventGammaRayBurst,
		EventAIExtinction,
	}
}

// IsValid reports whether the event type can be simulated.
func (t EventType) IsValid() bool {
	switch t {
	case EventAsteroid, EventSupervolcano, EventPandemic,
		EventClimateCollapse, EventGammaRayBurst, EventAIExtinction:
		return true
	}
	return false
}

func (t EventType) String() string { return string(t) }

// Label returns a human-readable name ("gamma_ray_burst" → "Gamma Ray Burst").
func (t EventType) Label() string {
	switch t {
	case EventAsteroid:
		return "Asteroid Impact"
	case EventSupervolcano:
		return "Supervolcano"
	case EventPandemic:
		return "Pandemic"
	case EventClimateCollapse:
		return "Climate Collapse"
	case EventGammaRayBurst:
		return "Gamma-Ray Burst"
	case EventAIExtinction:
		return "AI Extinction"
	case EventNuclearWar:
		return "Nuclear War"
	case EventCosmic:
		return "Cosmic Event"
	}
	return string(t)
}

// EventModel is the contract every event simulation implements.
// Simulate is deterministic, performs no I/O, and computes through any
// real-valued input — absurd parameters produce degenerate but defined
// metrics, never an error.
type EventModel interface {
	Simulate(params Parameters) SimulationData
}

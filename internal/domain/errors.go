package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Simulation errors. ErrUnknownEventType is the only error the pipeline
	// itself produces: registered models compute through any parameter
	// values rather than failing.
	ErrUnknownEventType = errors.New("unknown event type")

	// Scenario errors
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrInvalidScenario  = errors.New("scenario is missing or names an unknown event type")
)

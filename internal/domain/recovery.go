package domain

// RecoverySystem names a societal or natural system whose rebuild time the
// recovery estimator models.
type RecoverySystem string

const (
	SystemPopulation     RecoverySystem = "population"
	SystemInfrastructure RecoverySystem = "infrastructure"
	SystemEconomy        RecoverySystem = "economy"
	SystemTechnology     RecoverySystem = "technology"
	SystemAgriculture    RecoverySystem = "agriculture"
	SystemHealthcare     RecoverySystem = "healthcare"
	SystemEducation      RecoverySystem = "education"
	SystemGovernance     RecoverySystem = "governance"
	SystemEcosystem      RecoverySystem = "ecosystem"
	SystemClimate        RecoverySystem = "climate"
)

// AllRecoverySystems returns every modeled system. Estimates are built over
// this list, so per-system maps are structurally complete.
func AllRecoverySystems() []RecoverySystem {
	return []RecoverySystem{
		SystemPopulation,
		SystemInfrastructure,
		SystemEconomy,
		SystemTechnology,
		SystemAgriculture,
		SystemHealthcare,
		SystemEducation,
		SystemGovernance,
		SystemEcosystem,
		SystemClimate,
	}
}

// RecoveryPhase names a stage of the post-event rebuild sequence.
type RecoveryPhase string

const (
	PhaseImmediateResponse    RecoveryPhase = "immediate_response"
	PhaseStabilization        RecoveryPhase = "stabilization"
	PhaseShortTermRecovery    RecoveryPhase = "short_term_recovery"
	PhaseMediumTermRecovery   RecoveryPhase = "medium_term_recovery"
	PhaseLongTermRecovery     RecoveryPhase = "long_term_recovery"
	PhaseEcosystemRestoration RecoveryPhase = "ecosystem_restoration"
)

// AllRecoveryPhases returns the phases in chronological order.
func AllRecoveryPhases() []RecoveryPhase {
	return []RecoveryPhase{
		PhaseImmediateResponse,
		PhaseStabilization,
		PhaseShortTermRecovery,
		PhaseMediumTermRecovery,
		PhaseLongTermRecovery,
		PhaseEcosystemRestoration,
	}
}

// Label returns a display name for the phase.
func (p RecoveryPhase) Label() string {
	switch p {
	case PhaseImmediateResponse:
		return "Immediate Response"
	case PhaseStabilization:
		return "Stabilization"
	case PhaseShortTermRecovery:
		return "Short-Term Recovery"
	case PhaseMediumTermRecovery:
		return "Medium-Term Recovery"
	case PhaseLongTermRecovery:
		return "Long-Term Recovery"
	case PhaseEcosystemRestoration:
		return "Ecosystem Restoration"
	}
	return string(p)
}

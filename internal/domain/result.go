package domain

import (
	"encoding/json"
	"math"
)

// ExtinctionResult is the immutable outcome of one simulation run: the
// classified severity plus impact figures derived from the model's raw
// metrics. Build it with NewExtinctionResult; nothing mutates it afterwards.
type ExtinctionResult struct {
	EventType                EventType
	Severity                 Severity
	Parameters               Parameters
	SimulationData           SimulationData
	EstimatedCasualties      int64
	EconomicImpactBillionUSD float64
	ImpactedAreaKm2          float64
	GlobalEffects            map[string]string
}

// NewExtinctionResult derives the headline impact figures from the raw
// simulation metrics. params and data are stored as given; severity is
// clamped onto the 1..6 scale.
func NewExtinctionResult(eventType EventType, severity Severity, params Parameters, data SimulationData, c Constants) *ExtinctionResult {
	severity = severity.Clamp()
	return &ExtinctionResult{
		EventType:                eventType,
		Severity:                 severity,
		Parameters:               params,
		SimulationData:           data,
		EstimatedCasualties:      deriveCasualties(eventType, severity, data, c),
		EconomicImpactBillionUSD: deriveEconomicImpact(eventType, severity, data, c),
		ImpactedAreaKm2:          deriveImpactedArea(eventType, data, c),
		GlobalEffects:            deriveGlobalEffects(eventType, data),
	}
}

// SeverityDescription returns the scale label for the result's severity.
func (r *ExtinctionResult) SeverityDescription() string { return r.Severity.Label() }

// RecoveryTimeEstimate returns the order-of-magnitude recovery horizon
// implied by the severity.
func (r *ExtinctionResult) RecoveryTimeEstimate() string {
	switch {
	case r.Severity <= SeverityLocal:
		return "1-10 years"
	case r.Severity == SeverityRegional:
		return "10-100 years"
	case r.Severity == SeverityContinental:
		return "100-1000 years"
	case r.Severity == SeverityGlobal:
		return "1000-10000 years"
	default:
		return "May never recover"
	}
}

// RiskFactors lists the major secondary hazards the raw metrics imply.
func (r *ExtinctionResult) RiskFactors() []string {
	var factors []string
	switch r.EventType {
	case EventAsteroid:
		energy := r.SimulationData.Float("impact_energy", 0)
		if energy > 1e21 {
			factors = append(factors,
				"Global climate disruption",
				"Agricultural collapse",
				"Massive tsunamis",
			)
		}
		if energy > 1e20 {
			factors = append(factors,
				"Regional infrastructure destruction",
				"Firestorms",
			)
		}
	case EventPandemic:
		r0 := r.SimulationData.Float("r0", 0)
		mortality := r.SimulationData.Float("mortality_rate", 0)
		if r0 > 3 {
			factors = append(factors, "Rapid global spread")
		}
		if mortality > 0.1 {
			factors = append(factors, "High mortality rate")
		}
		if r0 > 2 && mortality > 0.05 {
			factors = append(factors,
				"Healthcare system collapse",
				"Economic disruption",
			)
		}
	case EventSupervolcano:
		if r.SimulationData.Float("vei", 0) >= 7 {
			factors = append(factors,
				"Global volcanic winter",
				"Atmospheric ash blocking sunlight",
				"Agricultural failure",
			)
		}
	}
	return factors
}

// Summary is the stable serialization contract of a simulation result.
type Summary struct {
	EventType                string            `json:"event_type"`
	Severity                 int               `json:"severity"`
	SeverityDescription      string            `json:"severity_description"`
	Parameters               Parameters        `json:"parameters"`
	ImpactedAreaKm2          float64           `json:"impacted_area_km2"`
	EstimatedCasualties      int64             `json:"estimated_casualties"`
	EconomicImpactBillionUSD float64           `json:"economic_impact_billion_usd"`
	RecoveryTimeEstimate     string            `json:"recovery_time_estimate"`
	GlobalEffects            map[string]string `json:"global_effects"`
	SimulationData           SimulationData    `json:"simulation_data"`
}

// Summary flattens the result into its serialization contract.
func (r *ExtinctionResult) Summary() Summary {
	return Summary{
		EventType:                string(r.EventType),
		Severity:                 int(r.Severity),
		SeverityDescription:      r.SeverityDescription(),
		Parameters:               r.Parameters,
		ImpactedAreaKm2:          r.ImpactedAreaKm2,
		EstimatedCasualties:      r.EstimatedCasualties,
		EconomicImpactBillionUSD: r.EconomicImpactBillionUSD,
		RecoveryTimeEstimate:     r.RecoveryTimeEstimate(),
		GlobalEffects:            r.GlobalEffects,
		SimulationData:           r.SimulationData,
	}
}

// ToJSON renders the summary contract as indented JSON.
func (r *ExtinctionResult) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r.Summary(), "", "  ")
}

// ─── Derivations ────────────────────────────────────────────────────────────

// Population-loss fractions keyed by the severity the classifier assigns,
// for events whose models do not compute a death toll directly. Fractions
// grow with severity so casualties stay monotone in the designated
// magnitude metric.
var (
	volcanicWinterLossFraction = map[Severity]float64{
		SeverityMinimal:     0,
		SeverityLocal:       0,
		SeverityRegional:    0.0005,
		SeverityContinental: 0.005,
		SeverityGlobal:      0.05,
		SeverityExtinction:  0.25,
	}
	climateLossFraction = map[Severity]float64{
		SeverityMinimal:     0.0001,
		SeverityLocal:       0.001,
		SeverityRegional:    0.01,
		SeverityContinental: 0.05,
		SeverityGlobal:      0.20,
		SeverityExtinction:  0.40,
	}
	burstEconomicFraction = map[Severity]float64{
		SeverityMinimal:     0.001,
		SeverityLocal:       0.01,
		SeverityRegional:    0.05,
		SeverityContinental: 0.2,
		SeverityGlobal:      0.5,
		SeverityExtinction:  0.9,
	}
)

func deriveCasualties(eventType EventType, severity Severity, data SimulationData, c Constants) int64 {
	// A model-computed death toll always wins.
	if deaths, ok := data.FloatOK("total_deaths"); ok {
		return int64(deaths)
	}
	switch eventType {
	case EventAsteroid:
		return int64(data.Float("crater_diameter_km", 0) * 1e6)
	case EventSupervolcano:
		immediate := data.Float("immediate_casualties", 0)
		famine := c.WorldPopulation * volcanicWinterLossFraction[severity]
		return int64(math.Max(immediate, famine))
	case EventClimateCollapse:
		return int64(c.WorldPopulation * climateLossFraction[severity])
	case EventGammaRayBurst, EventAIExtinction:
		return int64(c.WorldPopulation * data.Float("extinction_probability", 0))
	}
	return 0
}

func deriveEconomicImpact(eventType EventType, severity Severity, data SimulationData, c Constants) float64 {
	switch eventType {
	case EventAsteroid:
		return data.Float("impact_energy", 0) / 1e18
	case EventPandemic:
		if loss, ok := data.FloatOK("economic_loss_usd"); ok {
			return loss / 1e9
		}
		return data.Float("total_deaths", 0) * 0.01
	case EventSupervolcano:
		vei := data.Float("vei", 0)
		switch {
		case vei >= 8:
			return 50000
		case vei >= 7:
			return 10000
		case vei >= 6:
			return 2000
		case vei >= 5:
			return 500
		case vei >= 4:
			return 100
		default:
			return 10
		}
	case EventClimateCollapse:
		return c.GlobalGDPUSD * data.Float("economic_impact_percent", 0) / 100 / 1e9
	case EventGammaRayBurst:
		return c.GlobalGDPUSD * burstEconomicFraction[severity] / 1e9
	case EventAIExtinction:
		return c.GlobalGDPUSD * data.Float("extinction_probability", 0) / 1e9
	}
	return 0
}

func deriveImpactedArea(eventType EventType, data SimulationData, c Constants) float64 {
	switch eventType {
	case EventAsteroid:
		radius := data.Float("crater_diameter_km", 0) * 1.5
		return math.Pi * radius * radius
	case EventSupervolcano:
		// The dispersal formula goes negative below VEI 5; an area cannot.
		return math.Max(0, data.Float("ash_dispersal_area_km2", 0))
	case EventGammaRayBurst:
		if data.Float("ozone_depletion_percent", 0) > 0 {
			return c.EarthSurfaceKm2 / 2
		}
		return 0
	}
	// Pandemics, climate shifts and AI takeover are not areal hazards.
	return 0
}

func deriveGlobalEffects(eventType EventType, data SimulationData) map[string]string {
	switch eventType {
	case EventAsteroid:
		if m := data.StrMap("global_effects"); m != nil {
			return m
		}
	case EventSupervolcano:
		if m := data.StrMap("global_impact"); m != nil {
			return m
		}
	case EventPandemic:
		return narrativeEffects(data, "social_order", "governance", "technology")
	case EventClimateCollapse:
		return narrativeEffects(data, "food_security", "civilization_status", "migration_crisis")
	case EventGammaRayBurst:
		return narrativeEffects(data, "climate_disruption", "surface_life_survival", "ocean_life_impact")
	case EventAIExtinction:
		return narrativeEffects(data, "most_likely_scenario", "technical_safety", "governance")
	}
	return map[string]string{}
}

func narrativeEffects(data SimulationData, keys ...string) map[string]string {
	effects := make(map[string]string, len(keys))
	for _, k := range keys {
		if s := data.Str(k, ""); s != "" {
			effects[k] = s
		}
	}
	return effects
}

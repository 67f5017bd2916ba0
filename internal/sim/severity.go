package sim

import (
	"math"

	"github.com/eles-sim/eles/internal/domain"
)

// ClassifySeverity grades a simulation's output on the 1..6 scale using the
// event type's designated magnitude metric. Each table is ordered so that
// severity is non-decreasing in the metric (for gamma-ray bursts the metric
// is distance, where closer means worse). Event types without a table grade
// as regional.
func ClassifySeverity(eventType domain.EventType, data domain.SimulationData) domain.Severity {
	switch eventType {
	case domain.EventAsteroid:
		return classifyImpactEnergy(data.Float("impact_energy", 0))
	case domain.EventPandemic:
		return classifyDeathToll(data.Float("total_deaths", 0))
	case domain.EventSupervolcano:
		return classifyVEI(data.Float("vei", 0))
	case domain.EventClimateCollapse:
		return classifyTemperatureShift(data.Float("temperature_change_c", 0))
	case domain.EventGammaRayBurst:
		return classifyBurstDistance(data.Float("distance_ly", math.MaxFloat64))
	case domain.EventAIExtinction:
		return classifyCapabilityLevel(data.Float("ai_level", 0))
	}
	return domain.SeverityRegional
}

func classifyImpactEnergy(joules float64) domain.Severity {
	switch {
	case joules > 1e23:
		return domain.SeverityExtinction
	case joules > 1e22:
		return domain.SeverityGlobal
	case joules > 1e21:
		return domain.SeverityContinental
	case joules > 1e20:
		return domain.SeverityRegional
	case joules > 1e19:
		return domain.SeverityLocal
	default:
		return domain.SeverityMinimal
	}
}

func classifyDeathToll(deaths float64) domain.Severity {
	switch {
	case deaths >= 1e9:
		return domain.SeverityExtinction
	case deaths >= 1e8:
		return domain.SeverityGlobal
	case deaths >= 1e7:
		return domain.SeverityContinental
	case deaths >= 1e6:
		return domain.SeverityRegional
	case deaths >= 1e5:
		return domain.SeverityLocal
	default:
		return domain.SeverityMinimal
	}
}

func classifyVEI(vei float64) domain.Severity {
	switch {
	case vei >= 8:
		return domain.SeverityExtinction
	case vei >= 7:
		return domain.SeverityGlobal
	case vei >= 6:
		return domain.SeverityContinental
	case vei >= 5:
		return domain.SeverityRegional
	case vei >= 4:
		return domain.SeverityLocal
	default:
		return domain.SeverityMinimal
	}
}

func classifyTemperatureShift(deltaC float64) domain.Severity {
	shift := math.Abs(deltaC)
	switch {
	case shift >= 10:
		return domain.SeverityExtinction
	case shift >= 7:
		return domain.SeverityGlobal
	case shift >= 5:
		return domain.SeverityContinental
	case shift >= 3:
		return domain.SeverityRegional
	case shift >= 1.5:
		return domain.SeverityLocal
	default:
		return domain.SeverityMinimal
	}
}

func classifyBurstDistance(lightYears float64) domain.Severity {
	switch {
	case lightYears < 500:
		return domain.SeverityExtinction
	case lightYears < 1500:
		return domain.SeverityGlobal
	case lightYears < 3000:
		return domain.SeverityContinental
	case lightYears < 8000:
		return domain.SeverityRegional
	case lightYears < 15000:
		return domain.SeverityLocal
	default:
		return domain.SeverityMinimal
	}
}

func classifyCapabilityLevel(level float64) domain.Severity {
	switch {
	case level >= 9:
		return domain.SeverityExtinction
	case level >= 7:
		return domain.SeverityGlobal
	case level >= 5:
		return domain.SeverityContinental
	case level >= 3:
		return domain.SeverityRegional
	case level >= 2:
		return domain.SeverityLocal
	default:
		return domain.SeverityMinimal
	}
}

package sim

import (
	"math"

	"github.com/eles-sim/eles/internal/domain"
)

const metersPerLightYear = 9.461e15

// GammaRayBurst models a beamed burst striking Earth from a given
// distance: received fluence, ozone destruction and the ultraviolet
// aftermath, and the chance of an extinction pulse.
type GammaRayBurst struct {
	Constants domain.Constants
}

func (m GammaRayBurst) Simulate(params domain.Parameters) domain.SimulationData {
	distanceLy := params.Float("distance_ly", 1000)
	durationS := params.Float("duration_seconds", 10)
	energyErg := params.Float("energy_erg", 1e44)

	distanceCm := distanceLy * metersPerLightYear * 100
	fluenceErgCm2 := energyErg / (4 * math.Pi * distanceCm * distanceCm)
	fluenceJM2 := fluenceErgCm2 * 1e-7 * 1e4

	ozoneDepletion := 0.0
	uvFactor := 1.0
	if distanceLy < 10000 {
		ozoneDepletion = math.Min(95, 10000/distanceLy*10)
		uvFactor = 1 + ozoneDepletion/100*10
	}

	heating := 0.0
	if fluenceJM2 > 1e6 {
		heating = math.Min(100, fluenceJM2/1e6)
	}
	no2Increase := 0.0
	if distanceLy < 5000 {
		no2Increase = math.Min(1000, 5000/distanceLy)
	}

	dnaDamage, surfaceSurvival, oceanImpact := ultravioletBiology(uvFactor)
	temperatureChange, disruption, iceAge := ozoneClimate(ozoneDepletion)

	return domain.SimulationData{
		"distance_ly":      distanceLy,
		"duration_seconds": durationS,
		"energy_erg":       energyErg,

		"energy_flux_j_m2":    fluenceJM2,
		"intensity":           1 / (distanceLy * distanceLy),
		"peak_flux_erg_cm2_s": fluenceErgCm2 / durationS,

		"ozone_depletion_percent": ozoneDepletion,
		"uv_increase_factor":      uvFactor,
		"atmospheric_heating_k":   heating,
		"no2_production_increase": no2Increase,

		"dna_damage_level":      dnaDamage,
		"surface_life_survival": surfaceSurvival,
		"ocean_life_impact":     oceanImpact,

		"extinction_probability": burstExtinctionProbability(distanceLy),

		"temperature_change_c": temperatureChange,
		"climate_disruption":   disruption,
		"ice_age_trigger":      iceAge,
	}
}

func ultravioletBiology(uvFactor float64) (dnaDamage, surfaceSurvival, oceanImpact string) {
	switch {
	case uvFactor > 10:
		return "Lethal", "Unlikely", "Severe - phytoplankton collapse"
	case uvFactor > 5:
		return "Severe", "Difficult", "Significant"
	case uvFactor > 2:
		return "Moderate", "Reduced", "Moderate"
	default:
		return "Minimal", "Normal", "Minimal"
	}
}

func burstExtinctionProbability(distanceLy float64) float64 {
	switch {
	case distanceLy < 1000:
		return 0.9
	case distanceLy < 3000:
		return 0.5
	case distanceLy < 8000:
		return 0.1
	default:
		return 0.01
	}
}

func ozoneClimate(ozoneDepletion float64) (temperatureChangeC float64, disruption string, iceAgeTrigger bool) {
	switch {
	case ozoneDepletion > 50:
		return -5 - (ozoneDepletion-50)/10, "Severe cooling, ecosystem collapse", true
	case ozoneDepletion > 20:
		return -2, "Moderate cooling", false
	default:
		return 0, "Minimal", false
	}
}

// BurstThreatLevel names the threat class of a burst at the given distance.
func BurstThreatLevel(distanceLy float64) string {
	switch {
	case distanceLy < 1000:
		return "Extinction-Level Threat"
	case distanceLy < 3000:
		return "Catastrophic Threat"
	case distanceLy < 8000:
		return "Severe Threat"
	case distanceLy < 15000:
		return "Moderate Threat"
	default:
		return "Low Threat"
	}
}

package sim

import (
	"math"

	"github.com/eles-sim/eles/internal/domain"
)

// Pandemic models a global outbreak: final epidemic size from the basic
// reproduction number, death toll, healthcare load, and economic and
// social fallout.
type Pandemic struct {
	Constants domain.Constants
}

func (m Pandemic) Simulate(params domain.Parameters) domain.SimulationData {
	r0 := params.Float("r0", 2.5)
	mortality := params.Float("mortality_rate", 0.1)
	population := params.Float("population", m.Constants.WorldPopulation)

	var (
		totalInfected int64
		durationDays  int64
		peakDay       int64
	)
	if r0 > 1 {
		totalInfected = int64(finalEpidemicSize(r0) * population)
		switch {
		case r0 > 3:
			durationDays = 730
		case r0 > 2:
			durationDays = 365
		default:
			durationDays = 180
		}
		peakDay = durationDays / 3
	} else {
		// Subcritical spread never takes off: isolated clusters only.
		totalInfected = int64(math.Min(1000, population*0.001))
		durationDays = 30
		peakDay = 15
	}

	totalDeaths := int64(float64(totalInfected) * mortality)
	peakInfected := totalInfected
	if r0 > 1 {
		peakInfected = int64(0.1 * float64(totalInfected))
	}

	hospitalizationRate := 0.1
	switch {
	case mortality > 0.1:
		hospitalizationRate = 0.3
	case mortality > 0.05:
		hospitalizationRate = 0.2
	}
	peakHospitalizations := int64(float64(peakInfected) * hospitalizationRate)
	beds := m.Constants.HospitalBeds
	stress := math.Min(10, float64(peakHospitalizations)/beds*10)

	infectionRate := float64(totalInfected) / population
	gdpLossPercent := 5.0
	switch {
	case infectionRate > 0.5 && mortality > 0.1:
		gdpLossPercent = 50
	case infectionRate > 0.3 && mortality > 0.05:
		gdpLossPercent = 30
	case infectionRate > 0.1:
		gdpLossPercent = 15
	}
	economicLoss := m.Constants.GlobalGDPUSD * gdpLossPercent / 100

	social := pandemicSocialImpact(r0, mortality)

	return domain.SimulationData{
		"r0":             r0,
		"mortality_rate": mortality,
		"population":     population,

		"total_infected":         totalInfected,
		"total_deaths":           totalDeaths,
		"peak_infected":          peakInfected,
		"epidemic_duration_days": durationDays,
		"peak_day":               peakDay,

		"peak_hospitalizations":      peakHospitalizations,
		"hospital_capacity_exceeded": float64(peakHospitalizations) > beds,
		"healthcare_system_stress":   stress,

		"gdp_loss_percent":       gdpLossPercent,
		"economic_loss_usd":      economicLoss,
		"unemployment_rate_peak": math.Min(50, gdpLossPercent*0.8),

		"social_order": social[0],
		"governance":   social[1],
		"technology":   social[2],
	}
}

// finalEpidemicSize iterates the final-size relation z = 1 − e^(−R0·z)
// from 0.5 to its fixed point, capped at 95% attack rate. At most 20
// rounds; converged when successive iterates differ by under 1e-3.
func finalEpidemicSize(r0 float64) float64 {
	attackRate := 0.5
	for i := 0; i < 20; i++ {
		next := 1 - math.Exp(-r0*attackRate)
		if math.Abs(next-attackRate) < 0.001 {
			break
		}
		attackRate = next
	}
	return math.Min(attackRate, 0.95)
}

func pandemicSocialImpact(r0, mortality float64) [3]string {
	switch {
	case mortality > 0.3 && r0 > 5:
		return [3]string{
			"Complete breakdown of social institutions",
			"Collapse of government structures",
			"Loss of technological civilization",
		}
	case mortality > 0.15 && r0 > 3:
		return [3]string{
			"Severe social disruption",
			"Martial law, authoritarian measures",
			"Significant technological regression",
		}
	case mortality > 0.05:
		return [3]string{
			"Moderate social disruption",
			"Emergency powers, restricted freedoms",
			"Temporary technological disruption",
		}
	default:
		return [3]string{
			"Manageable social stress",
			"Enhanced public health measures",
			"Accelerated digital transformation",
		}
	}
}

// PandemicClassification buckets an outbreak by its mortality rate.
func PandemicClassification(mortality float64) string {
	switch {
	case mortality > 0.3:
		return "Civilization-Ending Pandemic"
	case mortality > 0.15:
		return "Catastrophic Pandemic"
	case mortality > 0.05:
		return "Severe Pandemic"
	case mortality > 0.02:
		return "Major Pandemic"
	default:
		return "Moderate Pandemic"
	}
}

// PandemicComparisons sizes an outbreak (by R0 × mortality) against
// historical pandemics.
func PandemicComparisons(r0, mortality float64) map[string]float64 {
	severity := r0 * mortality
	return map[string]float64{
		"vs_spanish_flu": severity / (2.0 * 0.03),
		"vs_black_death": severity / (1.5 * 0.5),
		"vs_covid19":     severity / (2.5 * 0.01),
	}
}

package sim

import (
	"strings"

	"github.com/eles-sim/eles/internal/domain"
)

// ClimateCollapse models an abrupt global temperature shift in either
// direction: sea level, agriculture, ecosystems, displacement, and the
// tipping-point cascade.
type ClimateCollapse struct {
	Constants domain.Constants
}

func (m ClimateCollapse) Simulate(params domain.Parameters) domain.SimulationData {
	deltaC := params.Float("temperature_change_c", -5.0)
	co2 := params.Float("co2_concentration_ppm", 400)
	timeframe := params.Float("timeframe_years", 100)

	data := domain.SimulationData{
		"temperature_change_c":  deltaC,
		"co2_concentration_ppm": co2,
		"timeframe_years":       timeframe,
	}

	var displaced float64
	if deltaC > 0 {
		rise := deltaC * 2.3
		var flooded string
		switch {
		case rise > 5:
			flooded, displaced = "Most major coastal cities uninhabitable", 1e9
		case rise > 2:
			flooded, displaced = "Many coastal areas flooded", 5e8
		case rise > 0.5:
			flooded, displaced = "Some coastal flooding", 1e8
		default:
			flooded, displaced = "Minimal coastal impact", 1e6
		}
		data["sea_level_rise_m"] = rise
		data["coastal_cities_flooded"] = flooded
	} else if deltaC < -5 {
		displaced = 2e9
		data["sea_level_rise_m"] = -50.0
		data["ice_sheet_expansion"] = "Major ice sheet advance"
	} else {
		data["sea_level_rise_m"] = 0.0
		data["ice_sheet_expansion"] = "Minimal"
	}
	data["displaced_population"] = displaced

	cropYield, arableLand, foodSecurity := agriculturalShift(deltaC)
	data["crop_yield_change"] = cropYield
	data["arable_land_change"] = arableLand
	data["food_security"] = foodSecurity

	shift := deltaC
	if shift < 0 {
		shift = -shift
	}
	switch {
	case shift > 5:
		data["species_extinction_rate"] = 0.7
		data["ecosystem_collapse"] = "Complete biosphere collapse"
		data["coral_reef_survival"] = 0.0
	case shift > 3:
		data["species_extinction_rate"] = 0.4
		data["ecosystem_collapse"] = "Major ecosystem disruption"
		data["coral_reef_survival"] = 0.1
	case shift > 2:
		data["species_extinction_rate"] = 0.2
		data["ecosystem_collapse"] = "Significant ecosystem stress"
		data["coral_reef_survival"] = 0.3
	default:
		data["species_extinction_rate"] = 0.05
		data["ecosystem_collapse"] = "Ecosystem adaptation"
		data["coral_reef_survival"] = 0.7
	}
	data["forest_dieback"] = forestDieback(deltaC)

	atRisk, civilization, economicPercent := humanImpacts(foodSecurity, displaced)
	data["population_at_risk"] = atRisk
	data["civilization_status"] = civilization
	data["economic_impact_percent"] = economicPercent

	switch {
	case displaced > 1e9:
		data["migration_crisis"] = "Unprecedented global migration"
		data["conflict_risk"] = "High - resource wars likely"
	case displaced > 5e8:
		data["migration_crisis"] = "Massive regional migrations"
		data["conflict_risk"] = "Elevated - regional conflicts"
	default:
		data["migration_crisis"] = "Manageable migration"
		data["conflict_risk"] = "Moderate - local tensions"
	}

	tipping := triggeredTippingPoints(deltaC)
	data["triggered_tipping_points"] = tipping
	data["cascading_risk"] = len(tipping) > 2

	return data
}

func agriculturalShift(deltaC float64) (cropYield, arableLand float64, foodSecurity string) {
	if deltaC > 0 {
		switch {
		case deltaC > 4:
			return -0.6, -0.3, "Severe global famine"
		case deltaC > 2:
			return -0.3, -0.1, "Significant food shortages"
		default:
			return -0.1, 0.05, "Regional food stress"
		}
	}
	switch {
	case deltaC < -3:
		return -0.8, -0.5, "Civilizational collapse due to famine"
	case deltaC < -1:
		return -0.4, -0.2, "Major global famine"
	default:
		return -0.1, -0.05, "Regional crop failures"
	}
}

func forestDieback(deltaC float64) string {
	switch {
	case deltaC > 3:
		return "Amazon and boreal forest collapse"
	case deltaC > 1.5:
		return "Significant forest stress"
	case deltaC < -2:
		return "Temperate forest die-off"
	default:
		return "Forest migration"
	}
}

// humanImpacts grades civilizational stress from the food-security
// narrative tier plus the displacement count.
func humanImpacts(foodSecurity string, displaced float64) (atRisk float64, civilization string, economicPercent float64) {
	food := strings.ToLower(foodSecurity)
	switch {
	case strings.Contains(food, "civilizational collapse"):
		return 7e9, "Collapse of technological civilization", 90
	case strings.Contains(food, "severe") || displaced > 5e8:
		return 4e9, "Severe regression of civilization", 60
	case strings.Contains(food, "significant") || displaced > 1e8:
		return 2e9, "Major social upheaval", 30
	default:
		return 5e8, "Adaptation with stress", 10
	}
}

// triggeredTippingPoints lists the warming thresholds crossed, in the
// order they trip. Cooling shifts trigger none.
func triggeredTippingPoints(deltaC float64) []string {
	points := []string{}
	if deltaC > 1.5 {
		points = append(points, "Arctic sea ice loss")
	}
	if deltaC > 2 {
		points = append(points, "Greenland ice sheet collapse")
	}
	if deltaC > 3 {
		points = append(points, "Amazon rainforest dieback", "West Antarctic ice sheet collapse")
	}
	if deltaC > 4 {
		points = append(points, "Permafrost thaw and methane release", "Atlantic circulation shutdown")
	}
	return points
}

// ClimateScenarioType names the overall regime a temperature shift lands in.
func ClimateScenarioType(deltaC float64) string {
	switch {
	case deltaC > 5:
		return "Runaway Greenhouse Effect"
	case deltaC > 3:
		return "Catastrophic Warming"
	case deltaC > 2:
		return "Dangerous Warming"
	case deltaC > 0:
		return "Moderate Warming"
	case deltaC < -5:
		return "Snowball Earth"
	case deltaC < -2:
		return "Ice Age"
	default:
		return "Moderate Cooling"
	}
}

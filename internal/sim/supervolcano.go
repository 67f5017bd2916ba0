package sim

import (
	"math"

	"github.com/eles-sim/eles/internal/domain"
)

// Supervolcano models a major explosive eruption: erupted volume from the
// Volcanic Explosivity Index, ash column and dispersal, volcanic winter,
// and proximal pyroclastic destruction.
type Supervolcano struct {
	Constants domain.Constants
}

func (m Supervolcano) Simulate(params domain.Parameters) domain.SimulationData {
	name := params.Str("name", "Unknown")
	vei := params.Float("vei", 6)

	magma := params.Float("magma_volume_km3", magmaVolumeKm3(vei))
	pyroclasticRange := pyroclasticRangeKm(vei)
	temperatureDrop, coolingYears := volcanicWinter(vei)

	return domain.SimulationData{
		"volcano_name":     name,
		"vei":              vei,
		"magma_volume_km3": magma,

		"ash_volume_km3":         magma * 2,
		"eruption_energy_j":      magma * 1e15,
		"ash_cloud_height_km":    ashCloudHeightKm(vei),
		"ash_dispersal_area_km2": ashDispersalAreaKm2(vei),
		"ash_thickness_10km_m":   math.Max(0, magma/10),
		"ash_thickness_100km_m":  math.Max(0, magma/100),
		"ash_thickness_1000km_m": math.Max(0, magma/10000),

		"temperature_drop_c":         temperatureDrop,
		"cooling_duration_years":     coolingYears,
		"sunlight_reduction_percent": sunlightReduction(vei),
		"darkness_duration_months":   darknessMonths(vei),

		"pyroclastic_flow_range_km": pyroclasticRange,
		"lava_flow_area_km2":        magma * 10,
		"immediate_casualties":      int64(math.Pi * pyroclasticRange * pyroclasticRange * 50),

		"global_impact": eruptionGlobalImpact(vei),
	}
}

// magmaVolumeKm3 converts VEI to erupted magma volume. The index is
// logarithmic, roughly a decade of volume per step.
func magmaVolumeKm3(vei float64) float64 {
	switch {
	case vei >= 8:
		return 1000 + (vei-8)*1000
	case vei >= 7:
		return 100
	case vei >= 6:
		return 10
	case vei >= 5:
		return 1
	default:
		return 0.1 * math.Pow(10, vei-4)
	}
}

func ashCloudHeightKm(vei float64) float64 {
	if vei >= 7 {
		return 35 + (vei-7)*10
	}
	return vei * 5
}

// ashDispersalAreaKm2 goes negative below VEI 5; the result layer floors
// the derived impacted area at zero.
func ashDispersalAreaKm2(vei float64) float64 {
	switch {
	case vei >= 8:
		return 5e7
	case vei >= 7:
		return 1e7
	default:
		return 1e6 * (vei - 5)
	}
}

func volcanicWinter(vei float64) (temperatureDropC, coolingYears float64) {
	switch {
	case vei >= 8:
		return 5 + (vei-8)*2, 5 + (vei-8)*3
	case vei >= 7:
		return 3, 3
	case vei >= 6:
		return 1, 1
	default:
		return 0, 0
	}
}

func sunlightReduction(vei float64) float64 {
	if vei >= 7 {
		return math.Min(90, vei*10)
	}
	return 0
}

func darknessMonths(vei float64) float64 {
	if vei >= 7 {
		return math.Min(24, vei*2)
	}
	return 0
}

func pyroclasticRangeKm(vei float64) float64 {
	if vei >= 7 {
		return 100 + (vei-7)*50
	}
	return math.Max(0, vei*10)
}

func eruptionGlobalImpact(vei float64) map[string]string {
	switch {
	case vei >= 8:
		return map[string]string{
			"severity":     "Extinction-level volcanic winter",
			"agriculture":  "Global crop failure for multiple years",
			"civilization": "Collapse of modern civilization",
			"ecosystem":    "Mass extinction event",
		}
	case vei >= 7:
		return map[string]string{
			"severity":     "Global catastrophe",
			"agriculture":  "Widespread crop failures",
			"civilization": "Severe disruption to global economy",
			"ecosystem":    "Significant species loss",
		}
	case vei >= 6:
		return map[string]string{
			"severity":     "Regional catastrophe with global effects",
			"agriculture":  "Regional crop failures",
			"civilization": "Regional economic collapse",
			"ecosystem":    "Local ecosystem destruction",
		}
	default:
		return map[string]string{
			"severity":     "Local to regional impact",
			"agriculture":  "Local agricultural impact",
			"civilization": "Local infrastructure damage",
			"ecosystem":    "Local environmental damage",
		}
	}
}

// EruptionComparisons sizes an eruption against reference events. Entries
// only appear once the eruption reaches the reference's scale.
func EruptionComparisons(vei, magmaVolumeKm3 float64) map[string]float64 {
	comparisons := make(map[string]float64)
	if vei >= 8 {
		comparisons["vs_toba"] = magmaVolumeKm3 / 2800
	}
	if vei >= 6 {
		comparisons["vs_tambora"] = magmaVolumeKm3 / 160
	}
	if vei >= 5 {
		comparisons["vs_krakatoa"] = magmaVolumeKm3 / 25
	}
	return comparisons
}

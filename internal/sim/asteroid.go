package sim

import (
	"math"

	"github.com/eles-sim/eles/internal/domain"
)

// AsteroidImpact models a kinetic impactor: energy release, cratering,
// seismic and atmospheric aftermath, and — for ocean strikes — tsunami
// generation.
type AsteroidImpact struct {
	Constants domain.Constants
}

// Assumed density of the struck surface, kg/m³.
var targetDensities = map[string]float64{
	"ocean":       1000,
	"continental": 2500,
	"urban":       2000,
}

func (m AsteroidImpact) Simulate(params domain.Parameters) domain.SimulationData {
	diameter := params.Float("diameter_km", 1.0)
	density := params.Float("density_kg_m3", 3000)
	velocity := params.Float("velocity_km_s", m.Constants.DefaultVelocityKms)
	angle := params.Float("impact_angle", m.Constants.DefaultImpactAngle)
	target := params.Str("target_type", "continental")

	targetDensity, ok := targetDensities[target]
	if !ok {
		targetDensity = targetDensities["continental"]
	}

	mass := impactorMass(diameter, density)
	energy := kineticEnergy(mass, velocity)
	crater := craterDiameterKm(energy, targetDensity, m.Constants.CraterScalingFactor)
	dustMass, darknessDays, temperatureDrop := atmosphericInjection(energy)
	atRisk := populationAtRisk(crater)

	data := domain.SimulationData{
		"diameter_km":   diameter,
		"density_kg_m3": density,
		"velocity_km_s": velocity,
		"impact_angle":  angle,
		"target_type":   target,

		"mass_kg":              mass,
		"impact_energy":        energy,
		"tnt_equivalent_mt":    energy / 4.184e15,
		"crater_diameter_km":   crater,
		"crater_depth_km":      crater * 0.1,
		"earthquake_magnitude": richterMagnitude(energy),

		"dust_mass_kg":           dustMass,
		"darkness_duration_days": darknessDays,
		"temperature_drop_c":     temperatureDrop,

		"blast_radius_severe_km":   blastRadiusKm(energy),
		"blast_radius_moderate_km": blastRadiusKm(energy) * 2.5,
		"peak_overpressure_bar":    peakOverpressureBar(energy),

		"population_at_risk":   atRisk,
		"estimated_casualties": int64(0.8 * float64(atRisk)),
		"global_effects":       impactGlobalEffects(energy),
	}

	if target == "ocean" {
		displacedVolume := energy / (1000 * 9.81 * 1000)
		sourceRadiusM := crater * 500
		sourceArea := math.Pi * sourceRadiusM * sourceRadiusM
		data["tsunami_source_height_m"] = math.Min(displacedVolume/sourceArea, 1000)
		data["tsunami_energy_j"] = 0.05 * energy
		data["affected_coastlines"] = affectedCoastlines(energy)
	}

	return data
}

// impactorMass treats the body as a sphere of uniform density.
func impactorMass(diameterKm, densityKgM3 float64) float64 {
	radiusM := diameterKm * 500
	volume := (4.0 / 3.0) * math.Pi * math.Pow(radiusM, 3)
	return volume * densityKgM3
}

func kineticEnergy(massKg, velocityKmS float64) float64 {
	v := velocityKmS * 1000
	return 0.5 * massKg * v * v
}

// craterDiameterKm applies the quarter-power transient crater scaling law.
func craterDiameterKm(energy, targetDensity, scalingFactor float64) float64 {
	meters := scalingFactor * math.Pow(energy/(targetDensity*1000), 0.25)
	return meters / 1000
}

// richterMagnitude converts released energy to the equivalent seismic
// magnitude. Zero or negative energy grades as magnitude 0.
func richterMagnitude(energy float64) float64 {
	if energy <= 0 {
		return 0
	}
	return (math.Log10(energy) - 11.8) / 1.5
}

// atmosphericInjection models dust lofting above the 1e20 J threshold:
// below it the atmosphere shrugs the event off.
func atmosphericInjection(energy float64) (dustMassKg, darknessDays, temperatureDropC float64) {
	if energy <= 1e20 {
		return 0, 0, 0
	}
	dustMassKg = energy / 1e12
	darknessDays = math.Min(energy/1e21*30, 365)
	temperatureDropC = math.Min(energy/1e22*5, 15)
	return dustMassKg, darknessDays, temperatureDropC
}

// blastRadiusKm gives the severe-damage radius by cube-root yield scaling.
func blastRadiusKm(energy float64) float64 {
	return 45 * math.Cbrt(0.1*energy/4.184e15)
}

func peakOverpressureBar(energy float64) float64 {
	overpressure := energy / 1e17
	if energy > 1e20 {
		return math.Min(1000, overpressure)
	}
	return overpressure
}

func affectedCoastlines(energy float64) int64 {
	switch {
	case energy > 1e22:
		return 50
	case energy > 1e21:
		return 20
	case energy > 1e20:
		return 10
	default:
		return 3
	}
}

// populationAtRisk estimates exposure within three crater radii at mean
// global density.
func populationAtRisk(craterKm float64) int64 {
	radius := craterKm / 2 * 3
	return int64(math.Pi * radius * radius * 60)
}

func impactGlobalEffects(energy float64) map[string]string {
	switch {
	case energy > 1e23:
		return map[string]string{
			"climate":      "Global impact winter, temperature drop >10°C",
			"ecology":      "Mass extinction event, >75% species loss",
			"civilization": "Collapse of global civilization",
		}
	case energy > 1e22:
		return map[string]string{
			"climate":      "Severe global cooling, crop failures worldwide",
			"ecology":      "Major extinctions, ecosystem disruption",
			"civilization": "Collapse of technological civilization",
		}
	case energy > 1e21:
		return map[string]string{
			"climate":      "Regional climate disruption",
			"ecology":      "Regional ecosystem damage",
			"civilization": "Collapse of affected region, global economic crisis",
		}
	case energy > 1e20:
		return map[string]string{
			"climate":      "Local weather pattern disruption",
			"ecology":      "Local habitat destruction",
			"civilization": "Regional infrastructure damage",
		}
	default:
		return map[string]string{
			"climate":      "Minimal global impact",
			"ecology":      "Local environmental damage",
			"civilization": "Local infrastructure damage",
		}
	}
}

// ImpactClassification buckets an impact energy into its headline class.
func ImpactClassification(energy float64) string {
	switch {
	case energy > 1e23:
		return "Extinction-Level Event"
	case energy > 1e22:
		return "Global Catastrophe"
	case energy > 1e21:
		return "Continental Disaster"
	case energy > 1e20:
		return "Regional Catastrophe"
	case energy > 1e19:
		return "Local Disaster"
	default:
		return "Minor Impact"
	}
}

// ImpactComparisons sizes an impact against well-studied reference events.
func ImpactComparisons(energy float64) map[string]float64 {
	return map[string]float64{
		"vs_chicxulub":     energy / 1e23,
		"vs_tunguska":      energy / 1e16,
		"vs_meteor_crater": energy / 1e16,
	}
}

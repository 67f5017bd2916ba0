// Package assess implements the downstream assessment models: survival
// probability prediction, composite risk scoring, and recovery-time
// estimation. Each model is a pure computation over a caller-built
// context struct — none of them call the simulation engine, none of
// them error, and out-of-range inputs compute through under the same
// clamp discipline the event models use.
package assess

import (
	"math"
	"sort"

	"github.com/eles-sim/eles/internal/domain"
)

// SurvivalFactor names one weighted input of the survival prediction.
type SurvivalFactor string

const (
	FactorDistance       SurvivalFactor = "distance_from_impact"
	FactorInfrastructure SurvivalFactor = "infrastructure_resilience"
	FactorFood           SurvivalFactor = "food_security"
	FactorMedical        SurvivalFactor = "medical_access"
	FactorSocial         SurvivalFactor = "social_cohesion"
	FactorGovernment     SurvivalFactor = "government_preparedness"
	FactorGeographic     SurvivalFactor = "geographic_location"
	FactorDensity        SurvivalFactor = "population_density"
)

// survivalFactorOrder fixes the summation order so predictions are
// bit-for-bit reproducible across runs.
var survivalFactorOrder = []SurvivalFactor{
	FactorDistance,
	FactorInfrastructure,
	FactorFood,
	FactorMedical,
	FactorSocial,
	FactorGovernment,
	FactorGeographic,
	FactorDensity,
}

// survivalWeights sum to 1.0.
var survivalWeights = map[SurvivalFactor]float64{
	FactorDistance:       0.25,
	FactorInfrastructure: 0.20,
	FactorFood:           0.15,
	FactorMedical:        0.10,
	FactorSocial:         0.10,
	FactorGovernment:     0.08,
	FactorGeographic:     0.07,
	FactorDensity:        0.05,
}

var baseSurvivalRates = map[domain.EventType]float64{
	domain.EventAsteroid:        0.85,
	domain.EventSupervolcano:    0.70,
	domain.EventClimateCollapse: 0.60,
	domain.EventPandemic:        0.75,
	domain.EventGammaRayBurst:   0.40,
	domain.EventAIExtinction:    0.30,
	domain.EventNuclearWar:      0.50,
	domain.EventCosmic:          0.45,
}

// longTermEventModifiers capture how forgiving the aftermath of each
// hazard is over the following decades.
var longTermEventModifiers = map[domain.EventType]float64{
	domain.EventPandemic:        0.9,
	domain.EventClimateCollapse: 0.7,
	domain.EventNuclearWar:      0.6,
	domain.EventAIExtinction:    0.3,
	domain.EventGammaRayBurst:   0.4,
}

var survivalConfidenceByType = map[domain.EventType]float64{
	domain.EventAsteroid:        0.8,
	domain.EventPandemic:        0.9,
	domain.EventClimateCollapse: 0.7,
	domain.EventNuclearWar:      0.8,
	domain.EventSupervolcano:    0.6,
	domain.EventGammaRayBurst:   0.4,
	domain.EventAIExtinction:    0.3,
	domain.EventCosmic:          0.4,
}

// ─── Context & Output ────────────────────────────────────────────────────────

// SurvivalContext describes one affected region for survival prediction.
// Damage and stability fields are fractions on a 0-1 scale.
type SurvivalContext struct {
	EventType            domain.EventType   `json:"event_type" yaml:"event_type"`
	Severity             domain.Severity    `json:"severity" yaml:"severity"`
	DurationYears        float64            `json:"duration_years" yaml:"duration_years"`
	AffectedAreaKm2      float64            `json:"affected_area_km2" yaml:"affected_area_km2"`
	PopulationInArea     int64              `json:"population_in_area" yaml:"population_in_area"`
	GeographicFactors    map[string]float64 `json:"geographic_factors,omitempty" yaml:"geographic_factors,omitempty"`
	InfrastructureDamage float64            `json:"infrastructure_damage" yaml:"infrastructure_damage"`
	FoodSystemDisruption float64            `json:"food_system_disruption" yaml:"food_system_disruption"`
	MedicalSystemImpact  float64            `json:"medical_system_impact" yaml:"medical_system_impact"`
	SocialStability      float64            `json:"social_stability" yaml:"social_stability"`

	// DistanceFromEpicenterKm is meaningful for localized events only;
	// when absent the distance factor takes a neutral 0.5.
	DistanceFromEpicenterKm *float64 `json:"distance_from_epicenter_km,omitempty" yaml:"distance_from_epicenter_km,omitempty"`
}

// SurvivalPrediction is the full output of one Predict call.
type SurvivalPrediction struct {
	ImmediateSurvivalRate float64                    `json:"immediate_survival_rate"`
	LongTermSurvivalRate  float64                    `json:"long_term_survival_rate"`
	ExpectedSurvivors     int64                      `json:"expected_survivors"`
	PopulationAnalysis    PopulationAnalysis         `json:"population_analysis"`
	FactorContributions   map[SurvivalFactor]float64 `json:"factor_contributions"`
	ConfidenceLevel       float64                    `json:"confidence_level"`
	RiskFactors           []string                   `json:"risk_factors"`
	SurvivalTimeline      map[string]float64         `json:"survival_timeline"`
}

// PopulationAnalysis breaks the long-term rate down by demographic group.
type PopulationAnalysis struct {
	ByAgeGroup     map[string]float64 `json:"by_age_group"`
	BySkillSet     map[string]float64 `json:"by_skill_set"`
	ByLocationType map[string]float64 `json:"by_location_type"`
}

// RegionalSurvival aggregates predictions across several regions.
type RegionalSurvival struct {
	GlobalSurvivalRate   float64          `json:"global_survival_rate"`
	TotalPopulation      int64            `json:"total_population"`
	TotalSurvivors       int64            `json:"total_survivors"`
	RegionalBreakdown    []RegionalResult `json:"regional_breakdown"`
	WorstAffectedRegions []RegionalResult `json:"worst_affected_regions"`
	SafestRegions        []RegionalResult `json:"safest_regions"`
}

// RegionalResult pairs a region's context with its prediction.
type RegionalResult struct {
	Context SurvivalContext    `json:"context"`
	Result  SurvivalPrediction `json:"result"`
}

// ─── Predictor ───────────────────────────────────────────────────────────────

// SurvivalPredictor estimates human survival rates under an extinction
// event. All methods are deterministic and safe for concurrent use.
type SurvivalPredictor struct{}

// NewSurvivalPredictor returns a ready predictor.
func NewSurvivalPredictor() *SurvivalPredictor { return &SurvivalPredictor{} }

// Predict computes immediate and long-term survival rates for one region.
// The immediate rate is base rate × severity modifier × weighted factor
// combination, clamped to [0.01, 0.99]; the long-term rate decays it by
// duration and an event-specific aftermath modifier.
func (p *SurvivalPredictor) Predict(sc SurvivalContext) SurvivalPrediction {
	base, ok := baseSurvivalRates[sc.EventType]
	if !ok {
		base = 0.50
	}

	factors := survivalFactors(sc)
	combined := 0.0
	for _, f := range survivalFactorOrder {
		combined += factors[f] * survivalWeights[f]
	}

	immediate := math.Max(0.01, math.Min(0.99, base*severitySurvivalModifier(sc.Severity)*combined))
	longTerm := longTermSurvival(immediate, sc)

	return SurvivalPrediction{
		ImmediateSurvivalRate: immediate,
		LongTermSurvivalRate:  longTerm,
		ExpectedSurvivors:     int64(float64(sc.PopulationInArea) * longTerm),
		PopulationAnalysis:    populationBreakdown(longTerm),
		FactorContributions:   factors,
		ConfidenceLevel:       predictionConfidence(sc),
		RiskFactors:           keySurvivalRisks(sc),
		SurvivalTimeline:      survivalTimeline(immediate),
	}
}

// PredictRegional runs Predict for every region and aggregates a global
// rate plus the three worst-affected and three safest regions.
func (p *SurvivalPredictor) PredictRegional(contexts []SurvivalContext) RegionalSurvival {
	results := make([]RegionalResult, 0, len(contexts))
	var totalPopulation, totalSurvivors int64
	for _, sc := range contexts {
		r := p.Predict(sc)
		results = append(results, RegionalResult{Context: sc, Result: r})
		totalPopulation += sc.PopulationInArea
		totalSurvivors += r.ExpectedSurvivors
	}

	rate := 0.0
	if totalPopulation > 0 {
		rate = float64(totalSurvivors) / float64(totalPopulation)
	}

	worst := append([]RegionalResult(nil), results...)
	sort.SliceStable(worst, func(i, j int) bool {
		return worst[i].Result.LongTermSurvivalRate < worst[j].Result.LongTermSurvivalRate
	})
	safest := append([]RegionalResult(nil), results...)
	sort.SliceStable(safest, func(i, j int) bool {
		return safest[i].Result.LongTermSurvivalRate > safest[j].Result.LongTermSurvivalRate
	})

	return RegionalSurvival{
		GlobalSurvivalRate:   rate,
		TotalPopulation:      totalPopulation,
		TotalSurvivors:       totalSurvivors,
		RegionalBreakdown:    results,
		WorstAffectedRegions: topRegions(worst, 3),
		SafestRegions:        topRegions(safest, 3),
	}
}

func topRegions(sorted []RegionalResult, n int) []RegionalResult {
	if len(sorted) < n {
		n = len(sorted)
	}
	return sorted[:n]
}

// survivalFactors scores each weighted factor on a 0-1 scale.
func survivalFactors(sc SurvivalContext) map[SurvivalFactor]float64 {
	distance := 0.5
	if sc.DistanceFromEpicenterKm != nil {
		distance = math.Min(1.0, *sc.DistanceFromEpicenterKm/1000)
	}

	// Lower density improves survival odds; a zero affected area would
	// divide out, so it pins the factor to its floor instead.
	density := 0.1
	if sc.AffectedAreaKm2 > 0 {
		density = math.Max(0.1, 1.0-(float64(sc.PopulationInArea)/sc.AffectedAreaKm2)/1000)
	}

	geo := (geographicFactor(sc.GeographicFactors, "climate_suitability") + geographicFactor(sc.GeographicFactors, "natural_resources")) / 2

	return map[SurvivalFactor]float64{
		FactorDistance:       distance,
		FactorInfrastructure: 1.0 - sc.InfrastructureDamage,
		FactorFood:           1.0 - sc.FoodSystemDisruption,
		FactorMedical:        1.0 - sc.MedicalSystemImpact,
		FactorSocial:         sc.SocialStability,
		FactorGovernment:     geographicFactor(sc.GeographicFactors, "development_index"),
		FactorGeographic:     geo,
		FactorDensity:        density,
	}
}

// geographicFactor reads one named geographic score, defaulting to a
// neutral 0.5 when the caller did not supply it.
func geographicFactor(factors map[string]float64, key string) float64 {
	if v, ok := factors[key]; ok {
		return v
	}
	return 0.5
}

func severitySurvivalModifier(s domain.Severity) float64 {
	switch s {
	case domain.SeverityMinimal:
		return 0.95
	case domain.SeverityLocal:
		return 0.85
	case domain.SeverityRegional:
		return 0.70
	case domain.SeverityContinental:
		return 0.50
	case domain.SeverityGlobal:
		return 0.25
	case domain.SeverityExtinction:
		return 0.05
	}
	return 0.50
}

// longTermSurvival decays the immediate rate with a ten-year half-life
// style exponential plus an event-specific aftermath modifier.
func longTermSurvival(immediate float64, sc SurvivalContext) float64 {
	decay := math.Exp(-sc.DurationYears / 10)
	modifier, ok := longTermEventModifiers[sc.EventType]
	if !ok {
		modifier = 0.8
	}
	return immediate * decay * modifier
}

// populationBreakdown applies fixed demographic multipliers to the
// long-term rate. Multipliers above 1 can push a group past the regional
// average; they are relative advantages, not probabilities.
func populationBreakdown(longTerm float64) PopulationAnalysis {
	return PopulationAnalysis{
		ByAgeGroup: map[string]float64{
			"children_0_15":   longTerm * 0.8,
			"adults_16_64":    longTerm * 1.0,
			"elderly_65_plus": longTerm * 0.6,
		},
		BySkillSet: map[string]float64{
			"medical_professionals":  longTerm * 1.3,
			"engineers_technicians":  longTerm * 1.2,
			"farmers_food_producers": longTerm * 1.4,
			"military_security":      longTerm * 1.1,
			"general_population":     longTerm * 1.0,
		},
		ByLocationType: map[string]float64{
			"urban_centers":  longTerm * 0.7,
			"suburban_areas": longTerm * 1.0,
			"rural_areas":    longTerm * 1.2,
			"remote_areas":   longTerm * 1.3,
		},
	}
}

func predictionConfidence(sc SurvivalContext) float64 {
	conf, ok := survivalConfidenceByType[sc.EventType]
	if !ok {
		conf = 0.5
	}
	if sc.PopulationInArea <= 0 {
		conf *= 0.8
	}
	if sc.AffectedAreaKm2 <= 0 {
		conf *= 0.8
	}
	if len(sc.GeographicFactors) <= 2 {
		conf *= 0.9
	}
	return conf
}

func keySurvivalRisks(sc SurvivalContext) []string {
	risks := []string{}
	if sc.InfrastructureDamage > 0.7 {
		risks = append(risks, "Critical infrastructure collapse")
	}
	if sc.FoodSystemDisruption > 0.6 {
		risks = append(risks, "Food system failure")
	}
	if sc.MedicalSystemImpact > 0.5 {
		risks = append(risks, "Healthcare system breakdown")
	}
	if sc.SocialStability < 0.4 {
		risks = append(risks, "Social disorder and conflict")
	}
	if sc.Severity >= domain.SeverityGlobal {
		risks = append(risks, "Cascading system failures")
	}
	if sc.DurationYears > 5 {
		risks = append(risks, "Long-term resource depletion")
	}
	return risks
}

func survivalTimeline(immediate float64) map[string]float64 {
	return map[string]float64{
		"1_month":  immediate * 0.95,
		"6_months": immediate * 0.85,
		"1_year":   immediate * 0.75,
		"2_years":  immediate * 0.65,
		"5_years":  immediate * 0.50,
		"10_years": immediate * 0.40,
		"20_years": immediate * 0.35,
	}
}

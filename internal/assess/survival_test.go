package assess

import (
	"math"
	"reflect"
	"testing"

	"github.com/eles-sim/eles/internal/domain"
)

// A regional asteroid strike over a moderately dense area: every factor
// lands on a hand-checkable value and the weighted combination is 0.615.
func TestPredict_RegionalAsteroid(t *testing.T) {
	p := NewSurvivalPredictor()

	sc := SurvivalContext{
		EventType:            domain.EventAsteroid,
		Severity:             domain.SeverityRegional,
		AffectedAreaKm2:      1000,
		PopulationInArea:     100000,
		InfrastructureDamage: 0.4,
		FoodSystemDisruption: 0.2,
		MedicalSystemImpact:  0.3,
		SocialStability:      0.6,
	}
	res := p.Predict(sc)

	// 0.85 base × 0.70 regional modifier × 0.615 combined factors.
	if math.Abs(res.ImmediateSurvivalRate-0.365925) > 1e-12 {
		t.Errorf("ImmediateSurvivalRate = %v, want ~0.365925", res.ImmediateSurvivalRate)
	}
	// Zero duration leaves only the 0.8 default aftermath modifier.
	if got, want := res.LongTermSurvivalRate, res.ImmediateSurvivalRate*0.8; got != want {
		t.Errorf("LongTermSurvivalRate = %v, want %v", got, want)
	}
	if got, want := res.ExpectedSurvivors, int64(float64(sc.PopulationInArea)*res.LongTermSurvivalRate); got != want {
		t.Errorf("ExpectedSurvivors = %d, want %d", got, want)
	}

	contrib := res.FactorContributions
	if contrib[FactorDistance] != 0.5 {
		t.Errorf("distance factor = %v, want neutral 0.5", contrib[FactorDistance])
	}
	if contrib[FactorDensity] != 0.9 {
		t.Errorf("density factor = %v, want 0.9", contrib[FactorDensity])
	}
	if contrib[FactorGovernment] != 0.5 || contrib[FactorGeographic] != 0.5 {
		t.Errorf("defaulted geography factors = %v/%v, want 0.5/0.5",
			contrib[FactorGovernment], contrib[FactorGeographic])
	}

	// Asteroid confidence 0.8, degraded once for sparse geography.
	if math.Abs(res.ConfidenceLevel-0.72) > 1e-12 {
		t.Errorf("ConfidenceLevel = %v, want ~0.72", res.ConfidenceLevel)
	}
	if len(res.RiskFactors) != 0 {
		t.Errorf("RiskFactors = %v, want none", res.RiskFactors)
	}
	if len(res.SurvivalTimeline) != 7 {
		t.Errorf("timeline has %d entries, want 7", len(res.SurvivalTimeline))
	}
	if got, want := res.SurvivalTimeline["1_month"], res.ImmediateSurvivalRate*0.95; got != want {
		t.Errorf("timeline 1_month = %v, want %v", got, want)
	}
	if got, want := res.PopulationAnalysis.BySkillSet["farmers_food_producers"], res.LongTermSurvivalRate*1.4; got != want {
		t.Errorf("farmers rate = %v, want %v", got, want)
	}
}

// An AI takeover at extinction severity drives the raw rate to ~0.003;
// the floor holds it at 1%, and every risk flag trips.
func TestPredict_FloorsAtOnePercent(t *testing.T) {
	p := NewSurvivalPredictor()

	sc := SurvivalContext{
		EventType:            domain.EventAIExtinction,
		Severity:             domain.SeverityExtinction,
		DurationYears:        20,
		AffectedAreaKm2:      1000,
		PopulationInArea:     1_000_000_000,
		InfrastructureDamage: 1.0,
		FoodSystemDisruption: 1.0,
		MedicalSystemImpact:  1.0,
		SocialStability:      0,
	}
	res := p.Predict(sc)

	if res.ImmediateSurvivalRate != 0.01 {
		t.Errorf("ImmediateSurvivalRate = %v, want floored 0.01", res.ImmediateSurvivalRate)
	}
	if got, want := res.LongTermSurvivalRate, 0.01*math.Exp(-sc.DurationYears/10)*0.3; got != want {
		t.Errorf("LongTermSurvivalRate = %v, want %v", got, want)
	}
	if got, want := res.ExpectedSurvivors, int64(float64(sc.PopulationInArea)*res.LongTermSurvivalRate); got != want {
		t.Errorf("ExpectedSurvivors = %d, want %d", got, want)
	}
	// Dense population over a small area pins the density factor.
	if got := res.FactorContributions[FactorDensity]; got != 0.1 {
		t.Errorf("density factor = %v, want floor 0.1", got)
	}

	want := []string{
		"Critical infrastructure collapse",
		"Food system failure",
		"Healthcare system breakdown",
		"Social disorder and conflict",
		"Cascading system failures",
		"Long-term resource depletion",
	}
	if !reflect.DeepEqual(res.RiskFactors, want) {
		t.Errorf("RiskFactors = %v, want %v", res.RiskFactors, want)
	}
}

// Hazards outside the table use the 0.50 base rate and 0.5 confidence.
func TestPredict_UnknownEventDefaults(t *testing.T) {
	p := NewSurvivalPredictor()

	res := p.Predict(SurvivalContext{
		EventType:            domain.EventType("rogue_planet"),
		Severity:             domain.SeverityRegional,
		AffectedAreaKm2:      1000,
		PopulationInArea:     100000,
		InfrastructureDamage: 0.4,
		FoodSystemDisruption: 0.2,
		MedicalSystemImpact:  0.3,
		SocialStability:      0.6,
	})

	// Same factors as the asteroid case; only the base rate differs.
	if math.Abs(res.ImmediateSurvivalRate-0.50*0.70*0.615) > 1e-12 {
		t.Errorf("ImmediateSurvivalRate = %v, want ~0.215", res.ImmediateSurvivalRate)
	}
	if math.Abs(res.ConfidenceLevel-0.45) > 1e-12 {
		t.Errorf("ConfidenceLevel = %v, want ~0.45", res.ConfidenceLevel)
	}
}

func TestSeveritySurvivalModifier_Bands(t *testing.T) {
	tests := []struct {
		severity domain.Severity
		want     float64
	}{
		{domain.SeverityMinimal, 0.95},
		{domain.SeverityLocal, 0.85},
		{domain.SeverityRegional, 0.70},
		{domain.SeverityContinental, 0.50},
		{domain.SeverityGlobal, 0.25},
		{domain.SeverityExtinction, 0.05},
		{domain.Severity(9), 0.50},
	}
	for _, tt := range tests {
		if got := severitySurvivalModifier(tt.severity); got != tt.want {
			t.Errorf("severitySurvivalModifier(%d) = %v, want %v", tt.severity, got, tt.want)
		}
	}
}

// Distance saturates at 1000 km and a zero affected area pins density
// to its floor rather than dividing out.
func TestSurvivalFactors_DistanceAndDensityEdges(t *testing.T) {
	near := 250.0
	f := survivalFactors(SurvivalContext{DistanceFromEpicenterKm: &near, AffectedAreaKm2: 100})
	if f[FactorDistance] != 0.25 {
		t.Errorf("distance factor at 250 km = %v, want 0.25", f[FactorDistance])
	}

	far := 4000.0
	f = survivalFactors(SurvivalContext{DistanceFromEpicenterKm: &far, AffectedAreaKm2: 100})
	if f[FactorDistance] != 1.0 {
		t.Errorf("distance factor at 4000 km = %v, want capped 1.0", f[FactorDistance])
	}

	f = survivalFactors(SurvivalContext{PopulationInArea: 5000})
	if f[FactorDensity] != 0.1 {
		t.Errorf("density factor with zero area = %v, want floor 0.1", f[FactorDensity])
	}

	f = survivalFactors(SurvivalContext{GeographicFactors: map[string]float64{
		"development_index":   0.9,
		"climate_suitability": 1.0,
		"natural_resources":   0.0,
	}})
	if f[FactorGovernment] != 0.9 {
		t.Errorf("government factor = %v, want 0.9", f[FactorGovernment])
	}
	if f[FactorGeographic] != 0.5 {
		t.Errorf("geographic factor = %v, want mean of climate and resources", f[FactorGeographic])
	}
}

// Three regions with sharply different prospects: aggregation must
// conserve totals and rank safest and worst by long-term rate.
func TestPredictRegional_AggregatesAndRanks(t *testing.T) {
	p := NewSurvivalPredictor()

	safe := SurvivalContext{
		EventType:        domain.EventAsteroid,
		Severity:         domain.SeverityLocal,
		AffectedAreaKm2:  1e6,
		PopulationInArea: 1_000_000,
		SocialStability:  0.9,
	}
	mid := SurvivalContext{
		EventType:            domain.EventPandemic,
		Severity:             domain.SeverityContinental,
		AffectedAreaKm2:      1e6,
		PopulationInArea:     50_000_000,
		InfrastructureDamage: 0.5,
		SocialStability:      0.5,
	}
	doomed := SurvivalContext{
		EventType:            domain.EventAIExtinction,
		Severity:             domain.SeverityExtinction,
		DurationYears:        30,
		AffectedAreaKm2:      1e6,
		PopulationInArea:     100_000_000,
		InfrastructureDamage: 1.0,
		FoodSystemDisruption: 1.0,
		SocialStability:      0.1,
	}

	agg := p.PredictRegional([]SurvivalContext{mid, safe, doomed})

	if got := agg.TotalPopulation; got != 151_000_000 {
		t.Errorf("TotalPopulation = %d, want 151000000", got)
	}
	var survivors int64
	for _, r := range agg.RegionalBreakdown {
		survivors += r.Result.ExpectedSurvivors
	}
	if agg.TotalSurvivors != survivors {
		t.Errorf("TotalSurvivors = %d, want sum of regions %d", agg.TotalSurvivors, survivors)
	}
	if got, want := agg.GlobalSurvivalRate, float64(agg.TotalSurvivors)/float64(agg.TotalPopulation); got != want {
		t.Errorf("GlobalSurvivalRate = %v, want %v", got, want)
	}
	if len(agg.WorstAffectedRegions) != 3 || len(agg.SafestRegions) != 3 {
		t.Fatalf("top lists = %d/%d regions, want 3/3",
			len(agg.WorstAffectedRegions), len(agg.SafestRegions))
	}
	if got := agg.SafestRegions[0].Context.EventType; got != domain.EventAsteroid {
		t.Errorf("safest region = %s, want asteroid", got)
	}
	if got := agg.WorstAffectedRegions[0].Context.EventType; got != domain.EventAIExtinction {
		t.Errorf("worst region = %s, want ai_extinction", got)
	}

	pair := p.PredictRegional([]SurvivalContext{safe, doomed})
	if len(pair.WorstAffectedRegions) != 2 {
		t.Errorf("top list with two regions = %d entries, want 2", len(pair.WorstAffectedRegions))
	}

	empty := p.PredictRegional(nil)
	if empty.GlobalSurvivalRate != 0 || empty.TotalPopulation != 0 || len(empty.RegionalBreakdown) != 0 {
		t.Errorf("empty aggregation = %+v, want zero totals", empty)
	}
}

// Two identical predictions must agree bit for bit; the factor
// summation runs in a fixed order.
func TestPredict_Deterministic(t *testing.T) {
	p := NewSurvivalPredictor()

	d := 300.0
	sc := SurvivalContext{
		EventType:        domain.EventSupervolcano,
		Severity:         domain.SeverityGlobal,
		DurationYears:    3,
		AffectedAreaKm2:  5e6,
		PopulationInArea: 200_000_000,
		GeographicFactors: map[string]float64{
			"climate_suitability": 0.4,
			"natural_resources":   0.7,
			"development_index":   0.6,
		},
		InfrastructureDamage:    0.6,
		FoodSystemDisruption:    0.8,
		MedicalSystemImpact:     0.55,
		SocialStability:         0.45,
		DistanceFromEpicenterKm: &d,
	}
	if a, b := p.Predict(sc), p.Predict(sc); !reflect.DeepEqual(a, b) {
		t.Error("identical contexts produced different predictions")
	}
}

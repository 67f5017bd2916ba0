package assess

import (
	"math"
	"reflect"
	"testing"

	"github.com/eles-sim/eles/internal/domain"
)

// A global pandemic with every damage level defaulted to 50%: all ten
// systems scale by e, the pandemic table doubles population recovery,
// and the climate system dominates the totals at 500e years.
func TestEstimate_GlobalPandemic(t *testing.T) {
	e := NewRegenTimeEstimator()

	rc := RecoveryContext{
		EventType:           domain.EventPandemic,
		Severity:            domain.SeverityGlobal,
		SurvivingPopulation: 100_000_000,
	}
	res := e.Estimate(rc)

	sys := res.SystemRecoveryTimes
	if len(sys) != 10 {
		t.Fatalf("got %d system estimates, want 10", len(sys))
	}

	pop := sys[domain.SystemPopulation]
	if pop.DamageScaling != math.Exp(1) {
		t.Errorf("population damage scaling = %v, want e", pop.DamageScaling)
	}
	if pop.EventScaling != 2.0 {
		t.Errorf("population event scaling = %v, want 2.0", pop.EventScaling)
	}
	if pop.ContextModifier != 1.0 {
		t.Errorf("population context modifier = %v, want neutral 1.0", pop.ContextModifier)
	}
	if got, want := pop.TotalTime, 50*math.Exp(1)*2.0; got != want {
		t.Errorf("population recovery = %v, want %v", got, want)
	}
	if math.Abs(pop.Confidence-0.8) > 1e-12 {
		t.Errorf("population confidence = %v, want ~0.8 for a well-studied hazard", pop.Confidence)
	}

	climate := sys[domain.SystemClimate]
	if climate.EventScaling != 1.0 {
		t.Errorf("climate event scaling = %v, want unlisted 1.0", climate.EventScaling)
	}
	if got, want := res.OverallMetrics.TotalRecoveryTime, climate.TotalTime; got != want {
		t.Errorf("TotalRecoveryTime = %v, want slowest system %v", got, want)
	}
	if res.OverallMetrics.AverageRecoveryTime >= res.OverallMetrics.TotalRecoveryTime {
		t.Error("average recovery should sit below the slowest system")
	}

	// Technology carries the longest dependency chain: its own time plus
	// half of the slow population rebuild.
	wantCritical := sys[domain.SystemTechnology].TotalTime + sys[domain.SystemPopulation].TotalTime*0.5
	if got := res.OverallMetrics.CriticalPathTime; got != wantCritical {
		t.Errorf("CriticalPathTime = %v, want %v", got, wantCritical)
	}
	if got, want := res.OverallMetrics.CivilizationRebuildTime, pop.TotalTime*1.3; got != want {
		t.Errorf("CivilizationRebuildTime = %v, want %v", got, want)
	}
	if res.OverallMetrics.PopulationRecoveryTime != pop.TotalTime {
		t.Errorf("PopulationRecoveryTime = %v, want %v", res.OverallMetrics.PopulationRecoveryTime, pop.TotalTime)
	}

	// Severity 5 doubles phase lengths; 100M survivors and defaulted
	// resources halve the divisor, so every base duration runs 4×.
	phases := res.PhaseTimeline
	if got := phases[domain.PhaseImmediateResponse].Duration; got != 4 {
		t.Errorf("immediate response duration = %v, want 4", got)
	}
	if got := phases[domain.PhaseStabilization].StartTime; got != 4 {
		t.Errorf("stabilization start = %v, want 4", got)
	}
	if got := phases[domain.PhaseStabilization].EndTime; got != 20 {
		t.Errorf("stabilization end = %v, want 20", got)
	}
	if got := phases[domain.PhaseShortTermRecovery].EndTime; got != 100 {
		t.Errorf("short-term recovery end = %v, want 100", got)
	}
	wantActivities := []string{
		"Emergency medical care",
		"Search and rescue operations",
		"Temporary shelter establishment",
		"Communication system restoration",
	}
	if !reflect.DeepEqual(phases[domain.PhaseImmediateResponse].KeyActivities, wantActivities) {
		t.Errorf("immediate activities = %v", phases[domain.PhaseImmediateResponse].KeyActivities)
	}
	if got := phases[domain.PhaseImmediateResponse].SuccessProbability; math.Abs(got-0.7) > 1e-12 {
		t.Errorf("immediate success probability = %v, want ~0.7", got)
	}

	sc := res.RecoveryScenarios
	if sc.Realistic.TotalTime != res.OverallMetrics.TotalRecoveryTime {
		t.Errorf("realistic scenario = %v, want total %v", sc.Realistic.TotalTime, res.OverallMetrics.TotalRecoveryTime)
	}
	if got, want := sc.Optimistic.TotalTime, sc.Realistic.TotalTime*0.6; got != want {
		t.Errorf("optimistic scenario = %v, want %v", got, want)
	}
	if got, want := sc.Pessimistic.TotalTime, sc.Realistic.TotalTime*2.0; got != want {
		t.Errorf("pessimistic scenario = %v, want %v", got, want)
	}
	if sc.Optimistic.Description != "Best-case scenario with ideal conditions" {
		t.Errorf("optimistic description = %q", sc.Optimistic.Description)
	}
	wantAssumptions := []string{
		"Maximum external aid",
		"High social cooperation",
		"Favorable environmental conditions",
		"Preserved critical knowledge",
	}
	if !reflect.DeepEqual(sc.Optimistic.Assumptions, wantAssumptions) {
		t.Errorf("optimistic assumptions = %v", sc.Optimistic.Assumptions)
	}

	// Slowest three systems: climate 500e, ecosystem 200e, population 100e.
	if len(res.CriticalBottlenecks) != 3 {
		t.Fatalf("got %d bottlenecks, want 3", len(res.CriticalBottlenecks))
	}
	wantOrder := []domain.RecoverySystem{domain.SystemClimate, domain.SystemEcosystem, domain.SystemPopulation}
	for i, want := range wantOrder {
		if got := res.CriticalBottlenecks[i].System; got != want {
			t.Errorf("bottleneck[%d] = %s, want %s", i, got, want)
		}
		if res.CriticalBottlenecks[i].Severity != "critical" {
			t.Errorf("bottleneck[%d] severity = %q, want critical", i, res.CriticalBottlenecks[i].Severity)
		}
	}
	wantFactors := []string{"High initial damage", "Event-specific complications"}
	if got := res.CriticalBottlenecks[2].KeyFactors; !reflect.DeepEqual(got, wantFactors) {
		t.Errorf("population key factors = %v, want %v", got, wantFactors)
	}

	wantStrategies := []string{
		"Implement ecosystem restoration programs",
		"Protect remaining biodiversity hotspots",
		"Prioritize healthcare and food security",
		"Establish protected population centers",
	}
	if !reflect.DeepEqual(res.RecoveryStrategies, wantStrategies) {
		t.Errorf("RecoveryStrategies = %v, want %v", res.RecoveryStrategies, wantStrategies)
	}

	ci := res.ConfidenceIntervals[domain.SystemClimate]
	width := climate.TotalTime * (1 - climate.Confidence)
	if ci.Low != climate.TotalTime-width || ci.High != climate.TotalTime+width {
		t.Errorf("climate interval = %+v, want ±%v around %v", ci, width, climate.TotalTime)
	}
}

// Full damage to technology under an AI takeover: the 10× event factor
// applies on top of the exponential damage curve.
func TestSystemRecoveryTimes_EventScaling(t *testing.T) {
	rc := RecoveryContext{
		EventType: domain.EventAIExtinction,
		Severity:  domain.SeverityExtinction,
		InitialDamage: map[domain.RecoverySystem]float64{
			domain.SystemTechnology: 0.9,
		},
	}
	sys := systemRecoveryTimes(rc)

	tech := sys[domain.SystemTechnology]
	if tech.EventScaling != 10.0 {
		t.Errorf("technology event scaling = %v, want 10.0", tech.EventScaling)
	}
	if tech.DamageScaling != math.Exp(0.9*2) {
		t.Errorf("technology damage scaling = %v, want e^1.8", tech.DamageScaling)
	}
	if got, want := tech.TotalTime, 30*tech.DamageScaling*10.0*tech.ContextModifier; got != want {
		t.Errorf("technology recovery = %v, want %v", got, want)
	}
	if math.Abs(tech.Confidence-0.8) > 1e-12 {
		t.Errorf("technology confidence = %v, want ~0.8 with damage data", tech.Confidence)
	}

	eco := sys[domain.SystemEcosystem]
	if eco.EventScaling != 1.0 {
		t.Errorf("ecosystem event scaling = %v, want unlisted 1.0", eco.EventScaling)
	}
	if eco.DamageScaling != math.Exp(1) {
		t.Errorf("ecosystem damage scaling = %v, want default e", eco.DamageScaling)
	}
	if math.Abs(eco.Confidence-0.7) > 1e-12 {
		t.Errorf("ecosystem confidence = %v, want base 0.7", eco.Confidence)
	}
}

// Aid, cohesion and preserved technology compound down to the 0.1
// floor; hostile geography stretches past 1.
func TestRecoveryContextModifier_Edges(t *testing.T) {
	ideal := RecoveryContext{
		ExternalAid:            1,
		SocialCohesion:         1,
		TechnologyPreservation: 1,
		GeographicFactors: map[string]float64{
			"climate_suitability": 1,
			"natural_resources":   1,
		},
	}
	if got := recoveryContextModifier(ideal, domain.SystemTechnology); got != 0.1 {
		t.Errorf("ideal-conditions modifier = %v, want floor 0.1", got)
	}
	if got := recoveryContextModifier(ideal, domain.SystemAgriculture); got != 0.1 {
		t.Errorf("ideal-conditions agriculture modifier = %v, want floor 0.1", got)
	}

	// Technology preservation only helps tech-dependent systems.
	partial := RecoveryContext{ExternalAid: 0.5, SocialCohesion: 0.5, TechnologyPreservation: 0.5}
	ag := recoveryContextModifier(partial, domain.SystemAgriculture)
	tech := recoveryContextModifier(partial, domain.SystemTechnology)
	if tech != ag*0.8 {
		t.Errorf("tech modifier = %v, want agriculture %v × 0.8", tech, ag)
	}

	hostile := RecoveryContext{GeographicFactors: map[string]float64{
		"climate_suitability": 0.2,
		"natural_resources":   0.1,
	}}
	if got := recoveryContextModifier(hostile, domain.SystemGovernance); got != 1.7 {
		t.Errorf("hostile-geography modifier = %v, want 1.7", got)
	}
}

func TestMeanResourceLevel_Clamps(t *testing.T) {
	if got := meanResourceLevel(nil); got != 0.5 {
		t.Errorf("no resources = %v, want neutral 0.5", got)
	}
	if got := meanResourceLevel(map[string]float64{"food": 0.01}); got != 0.1 {
		t.Errorf("starved resources = %v, want floor 0.1", got)
	}
	if got := meanResourceLevel(map[string]float64{"food": 5}); got != 1 {
		t.Errorf("oversupplied resources = %v, want cap 1", got)
	}
	if got := meanResourceLevel(map[string]float64{"food": 0.2, "water": 0.6}); got != 0.4 {
		t.Errorf("mixed resources = %v, want mean 0.4", got)
	}
}

func TestPhaseSuccessProbability_Clamps(t *testing.T) {
	// A bare context drops ecosystem restoration below zero; clamp holds.
	if got := phaseSuccessProbability(domain.PhaseEcosystemRestoration, RecoveryContext{}); got != 0 {
		t.Errorf("bare-context ecosystem success = %v, want clamped 0", got)
	}
	// A billion survivors push the boost past the cap.
	rich := RecoveryContext{SurvivingPopulation: 1_000_000_000}
	if got := phaseSuccessProbability(domain.PhaseImmediateResponse, rich); got != 1 {
		t.Errorf("large-population success = %v, want capped 1", got)
	}
}

// The population factor floors at half the 100M norm, so a million
// survivors plan on the same timeline as fifty million.
func TestPhaseTimeline_PopulationFloor(t *testing.T) {
	small := phaseTimeline(RecoveryContext{Severity: domain.SeverityGlobal, SurvivingPopulation: 1_000_000})
	mid := phaseTimeline(RecoveryContext{Severity: domain.SeverityGlobal, SurvivingPopulation: 50_000_000})

	for _, phase := range domain.AllRecoveryPhases() {
		if small[phase].Duration != mid[phase].Duration {
			t.Errorf("%s duration = %v vs %v, want identical under the floor",
				phase, small[phase].Duration, mid[phase].Duration)
		}
	}

	// Durations stay proportional to the baseline table.
	if got, want := mid[domain.PhaseStabilization].Duration, 4*mid[domain.PhaseImmediateResponse].Duration; got != want {
		t.Errorf("stabilization = %v, want 4× immediate %v", got, want)
	}
	last := mid[domain.PhaseEcosystemRestoration]
	sum := 0.0
	for _, phase := range domain.AllRecoveryPhases() {
		sum += mid[phase].Duration
	}
	if last.EndTime != sum {
		t.Errorf("final phase ends at %v, want cumulative %v", last.EndTime, sum)
	}
}

// A mild impactor recovers generations before a runaway climate
// collapse; the comparison must rank them and keep input order.
func TestEstimateComparative_RanksScenarios(t *testing.T) {
	e := NewRegenTimeEstimator()

	mildDamage := map[domain.RecoverySystem]float64{}
	harshDamage := map[domain.RecoverySystem]float64{}
	for _, s := range domain.AllRecoverySystems() {
		mildDamage[s] = 0.1
		harshDamage[s] = 0.9
	}

	mild := RecoveryContext{
		EventType:           domain.EventAsteroid,
		Severity:            domain.SeverityRegional,
		InitialDamage:       mildDamage,
		SurvivingPopulation: 7_000_000_000,
	}
	harsh := RecoveryContext{
		EventType:           domain.EventClimateCollapse,
		Severity:            domain.SeverityExtinction,
		InitialDamage:       harshDamage,
		SurvivingPopulation: 100_000_000,
	}

	cmp := e.EstimateComparative([]RecoveryContext{harsh, mild})

	if len(cmp.ScenarioComparisons) != 2 {
		t.Fatalf("got %d comparisons, want 2", len(cmp.ScenarioComparisons))
	}
	if got := cmp.ScenarioComparisons[0].Context.EventType; got != domain.EventClimateCollapse {
		t.Errorf("comparisons reordered: first = %s, want input order", got)
	}
	if cmp.FastestRecovery.Context.EventType != domain.EventAsteroid {
		t.Errorf("fastest = %s, want asteroid", cmp.FastestRecovery.Context.EventType)
	}
	if cmp.SlowestRecovery.Context.EventType != domain.EventClimateCollapse {
		t.Errorf("slowest = %s, want climate_collapse", cmp.SlowestRecovery.Context.EventType)
	}

	stats := cmp.TimeStatistics
	fast := cmp.FastestRecovery.Estimate.OverallMetrics.TotalRecoveryTime
	slow := cmp.SlowestRecovery.Estimate.OverallMetrics.TotalRecoveryTime
	if stats.MinRecoveryTime != fast || stats.MaxRecoveryTime != slow {
		t.Errorf("stats min/max = %v/%v, want %v/%v", stats.MinRecoveryTime, stats.MaxRecoveryTime, fast, slow)
	}
	if stats.MeanRecoveryTime != stats.MedianRecoveryTime {
		t.Errorf("mean %v != median %v for two scenarios", stats.MeanRecoveryTime, stats.MedianRecoveryTime)
	}

	empty := e.EstimateComparative(nil)
	if empty.FastestRecovery != nil || len(empty.ScenarioComparisons) != 0 {
		t.Errorf("empty comparison = %+v, want zero value", empty)
	}
}

// Identical contexts must estimate identically; resource averaging and
// metric folds run in fixed orders.
func TestEstimate_Deterministic(t *testing.T) {
	e := NewRegenTimeEstimator()

	rc := RecoveryContext{
		EventType: domain.EventGammaRayBurst,
		Severity:  domain.SeverityGlobal,
		InitialDamage: map[domain.RecoverySystem]float64{
			domain.SystemEcosystem:   0.95,
			domain.SystemAgriculture: 0.8,
			domain.SystemPopulation:  0.4,
		},
		SurvivingPopulation: 2_000_000_000,
		AvailableResources: map[string]float64{
			"food":     0.3,
			"fuel":     0.5,
			"medicine": 0.2,
			"water":    0.7,
		},
		ExternalAid:            0.2,
		GeographicFactors:      map[string]float64{"climate_suitability": 0.6},
		TechnologyPreservation: 0.8,
		SocialCohesion:         0.4,
	}
	if a, b := e.Estimate(rc), e.Estimate(rc); !reflect.DeepEqual(a, b) {
		t.Error("identical contexts produced different estimates")
	}
}

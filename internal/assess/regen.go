package assess

import (
	"math"
	"sort"

	"github.com/eles-sim/eles/internal/domain"
)

// baseRecoveryTimes are rebuild times in years for each system at 50%
// damage; the damage scaling curve stretches or shrinks them.
var baseRecoveryTimes = map[domain.RecoverySystem]float64{
	domain.SystemPopulation:     50,
	domain.SystemInfrastructure: 25,
	domain.SystemEconomy:        15,
	domain.SystemTechnology:     30,
	domain.SystemAgriculture:    10,
	domain.SystemHealthcare:     20,
	domain.SystemEducation:      35,
	domain.SystemGovernance:     12,
	domain.SystemEcosystem:      200,
	domain.SystemClimate:        500,
}

// eventScalingFactors stretch recovery for the systems each hazard hits
// hardest. Systems not listed scale by 1.
var eventScalingFactors = map[domain.EventType]map[domain.RecoverySystem]float64{
	domain.EventAsteroid: {
		domain.SystemInfrastructure: 1.5,
		domain.SystemClimate:        0.8,
		domain.SystemEcosystem:      1.2,
	},
	domain.EventSupervolcano: {
		domain.SystemClimate:     3.0,
		domain.SystemAgriculture: 2.5,
		domain.SystemEcosystem:   2.0,
	},
	domain.EventPandemic: {
		domain.SystemPopulation: 2.0,
		domain.SystemHealthcare: 1.5,
		domain.SystemEconomy:    1.3,
	},
	domain.EventClimateCollapse: {
		domain.SystemEcosystem:   5.0,
		domain.SystemAgriculture: 4.0,
		domain.SystemClimate:     10.0,
	},
	domain.EventNuclearWar: {
		domain.SystemInfrastructure: 3.0,
		domain.SystemTechnology:     2.0,
		domain.SystemPopulation:     1.8,
	},
	domain.EventAIExtinction: {
		domain.SystemTechnology:     10.0,
		domain.SystemGovernance:     5.0,
		domain.SystemInfrastructure: 3.0,
	},
	domain.EventGammaRayBurst: {
		domain.SystemEcosystem:   8.0,
		domain.SystemAgriculture: 4.0,
		domain.SystemClimate:     2.0,
	},
}

// phaseDurations are baseline phase lengths in years before severity,
// population and resource scaling.
var phaseDurations = map[domain.RecoveryPhase]float64{
	domain.PhaseImmediateResponse:    1,
	domain.PhaseStabilization:        4,
	domain.PhaseShortTermRecovery:    20,
	domain.PhaseMediumTermRecovery:   75,
	domain.PhaseLongTermRecovery:     900,
	domain.PhaseEcosystemRestoration: 5000,
}

var phaseSuccessBase = map[domain.RecoveryPhase]float64{
	domain.PhaseImmediateResponse:    0.9,
	domain.PhaseStabilization:        0.8,
	domain.PhaseShortTermRecovery:    0.7,
	domain.PhaseMediumTermRecovery:   0.6,
	domain.PhaseLongTermRecovery:     0.5,
	domain.PhaseEcosystemRestoration: 0.4,
}

var phaseActivities = map[domain.RecoveryPhase][]string{
	domain.PhaseImmediateResponse: {
		"Emergency medical care",
		"Search and rescue operations",
		"Temporary shelter establishment",
		"Communication system restoration",
	},
	domain.PhaseStabilization: {
		"Food and water distribution",
		"Basic infrastructure repair",
		"Community organization",
		"Security establishment",
	},
	domain.PhaseShortTermRecovery: {
		"Housing reconstruction",
		"Economic system restart",
		"Education system restoration",
		"Local government re-establishment",
	},
	domain.PhaseMediumTermRecovery: {
		"Industrial capacity rebuilding",
		"Trade network restoration",
		"Advanced infrastructure development",
		"Cultural institution rebuilding",
	},
	domain.PhaseLongTermRecovery: {
		"Full economic development",
		"Advanced technology restoration",
		"International system rebuilding",
		"Quality of life improvements",
	},
	domain.PhaseEcosystemRestoration: {
		"Biodiversity restoration",
		"Climate stabilization",
		"Soil and water rehabilitation",
		"Natural habitat reconstruction",
	},
}

// systemDependencies encode the rebuild ordering used by the critical
// path estimate. A dependent system cannot fully recover until its
// prerequisites are well underway.
var systemDependencies = []struct {
	system domain.RecoverySystem
	deps   []domain.RecoverySystem
}{
	{domain.SystemGovernance, []domain.RecoverySystem{domain.SystemPopulation}},
	{domain.SystemEconomy, []domain.RecoverySystem{domain.SystemPopulation, domain.SystemInfrastructure}},
	{domain.SystemTechnology, []domain.RecoverySystem{domain.SystemPopulation, domain.SystemInfrastructure, domain.SystemEducation}},
	{domain.SystemHealthcare, []domain.RecoverySystem{domain.SystemInfrastructure, domain.SystemTechnology}},
	{domain.SystemEducation, []domain.RecoverySystem{domain.SystemInfrastructure, domain.SystemGovernance}},
}

// ─── Context & Output ────────────────────────────────────────────────────────

// RecoveryContext is the caller-built input of one Estimate call.
// Damage, resource and score fields are fractions on a 0-1 scale.
type RecoveryContext struct {
	EventType               domain.EventType                  `json:"event_type" yaml:"event_type"`
	Severity                domain.Severity                   `json:"severity" yaml:"severity"`
	InitialDamage           map[domain.RecoverySystem]float64 `json:"initial_damage,omitempty" yaml:"initial_damage"`
	SurvivingPopulation     int64                             `json:"surviving_population" yaml:"surviving_population"`
	SurvivingInfrastructure float64                           `json:"surviving_infrastructure" yaml:"surviving_infrastructure"`
	AvailableResources      map[string]float64                `json:"available_resources,omitempty" yaml:"available_resources"`
	ExternalAid             float64                           `json:"external_aid" yaml:"external_aid"`
	GeographicFactors       map[string]float64                `json:"geographic_factors,omitempty" yaml:"geographic_factors"`
	TechnologyPreservation  float64                           `json:"technology_preservation" yaml:"technology_preservation"`
	SocialCohesion          float64                           `json:"social_cohesion" yaml:"social_cohesion"`
}

// RecoveryEstimate is the full output of one Estimate call. Per-system
// and per-phase maps always carry every system and phase.
type RecoveryEstimate struct {
	SystemRecoveryTimes map[domain.RecoverySystem]SystemRecovery     `json:"system_recovery_times"`
	PhaseTimeline       map[domain.RecoveryPhase]PhaseEstimate       `json:"phase_timeline"`
	OverallMetrics      RecoveryMetrics                              `json:"overall_metrics"`
	RecoveryScenarios   RecoveryScenarios                            `json:"recovery_scenarios"`
	CriticalBottlenecks []Bottleneck                                 `json:"critical_bottlenecks"`
	RecoveryStrategies  []string                                     `json:"recovery_strategies"`
	ConfidenceIntervals map[domain.RecoverySystem]ConfidenceInterval `json:"confidence_intervals"`
}

// SystemRecovery breaks one system's recovery time into its factors.
// TotalTime is the product of the base time and the three scalings.
type SystemRecovery struct {
	BaseTime        float64 `json:"base_time"`
	DamageScaling   float64 `json:"damage_scaling"`
	EventScaling    float64 `json:"event_scaling"`
	ContextModifier float64 `json:"context_modifier"`
	TotalTime       float64 `json:"total_time"`
	Confidence      float64 `json:"confidence"`
}

// PhaseEstimate places one recovery phase on the cumulative timeline.
type PhaseEstimate struct {
	Duration           float64  `json:"duration"`
	StartTime          float64  `json:"start_time"`
	EndTime            float64  `json:"end_time"`
	KeyActivities      []string `json:"key_activities"`
	SuccessProbability float64  `json:"success_probability"`
}

// RecoveryMetrics are headline figures derived from the system times.
type RecoveryMetrics struct {
	TotalRecoveryTime       float64 `json:"total_recovery_time"`
	AverageRecoveryTime     float64 `json:"average_recovery_time"`
	CriticalPathTime        float64 `json:"critical_path_time"`
	CivilizationRebuildTime float64 `json:"civilization_rebuild_time"`
	PopulationRecoveryTime  float64 `json:"population_recovery_time"`
	TechnologyRecoveryTime  float64 `json:"technology_recovery_time"`
}

// RecoveryScenarios bracket the realistic estimate with best and worst
// cases.
type RecoveryScenarios struct {
	Optimistic  RecoveryScenario `json:"optimistic"`
	Realistic   RecoveryScenario `json:"realistic"`
	Pessimistic RecoveryScenario `json:"pessimistic"`
}

// RecoveryScenario is one bracketing case.
type RecoveryScenario struct {
	Description string   `json:"description"`
	TotalTime   float64  `json:"total_time"`
	Assumptions []string `json:"assumptions"`
}

// Bottleneck flags one of the slowest-recovering systems.
type Bottleneck struct {
	System       domain.RecoverySystem `json:"system"`
	RecoveryTime float64               `json:"recovery_time"`
	Severity     string                `json:"severity"`
	KeyFactors   []string              `json:"key_factors"`
}

// ConfidenceInterval brackets a recovery time; lower confidence widens
// the interval.
type ConfidenceInterval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// RecoveryComparison ranks several contexts by total recovery time.
type RecoveryComparison struct {
	ScenarioComparisons []ScenarioEstimate `json:"scenario_comparisons"`
	FastestRecovery     *ScenarioEstimate  `json:"fastest_recovery,omitempty"`
	SlowestRecovery     *ScenarioEstimate  `json:"slowest_recovery,omitempty"`
	TimeStatistics      RecoveryStatistics `json:"recovery_time_statistics"`
}

// ScenarioEstimate pairs a context with its estimate.
type ScenarioEstimate struct {
	Context  RecoveryContext  `json:"context"`
	Estimate RecoveryEstimate `json:"estimate"`
}

// RecoveryStatistics summarizes total recovery times across scenarios.
type RecoveryStatistics struct {
	MeanRecoveryTime   float64 `json:"mean_recovery_time"`
	MedianRecoveryTime float64 `json:"median_recovery_time"`
	StdRecoveryTime    float64 `json:"std_recovery_time"`
	MinRecoveryTime    float64 `json:"min_recovery_time"`
	MaxRecoveryTime    float64 `json:"max_recovery_time"`
}

// ─── Estimator ───────────────────────────────────────────────────────────────

// RegenTimeEstimator projects how long each societal and natural system
// needs to rebuild after an event. All methods are deterministic and
// safe for concurrent use.
type RegenTimeEstimator struct{}

// NewRegenTimeEstimator returns a ready estimator.
func NewRegenTimeEstimator() *RegenTimeEstimator { return &RegenTimeEstimator{} }

// Estimate builds the full recovery picture for one context: per-system
// times, the phased timeline, headline metrics, bracketing scenarios,
// bottlenecks, strategies and confidence intervals.
func (e *RegenTimeEstimator) Estimate(rc RecoveryContext) RecoveryEstimate {
	systems := systemRecoveryTimes(rc)
	bottlenecks := recoveryBottlenecks(systems)

	return RecoveryEstimate{
		SystemRecoveryTimes: systems,
		PhaseTimeline:       phaseTimeline(rc),
		OverallMetrics:      overallMetrics(systems),
		RecoveryScenarios:   recoveryScenarios(systems),
		CriticalBottlenecks: bottlenecks,
		RecoveryStrategies:  recoveryStrategies(bottlenecks),
		ConfidenceIntervals: confidenceIntervals(systems),
	}
}

// EstimateComparative estimates every context and ranks them by total
// recovery time.
func (e *RegenTimeEstimator) EstimateComparative(contexts []RecoveryContext) RecoveryComparison {
	if len(contexts) == 0 {
		return RecoveryComparison{}
	}

	estimates := make([]ScenarioEstimate, 0, len(contexts))
	for _, rc := range contexts {
		estimates = append(estimates, ScenarioEstimate{Context: rc, Estimate: e.Estimate(rc)})
	}

	sorted := append([]ScenarioEstimate(nil), estimates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Estimate.OverallMetrics.TotalRecoveryTime < sorted[j].Estimate.OverallMetrics.TotalRecoveryTime
	})

	return RecoveryComparison{
		ScenarioComparisons: estimates,
		FastestRecovery:     &sorted[0],
		SlowestRecovery:     &sorted[len(sorted)-1],
		TimeStatistics:      recoveryStatistics(estimates),
	}
}

// systemRecoveryTimes builds the per-system breakdown. Damage scales
// recovery exponentially; missing damage entries assume 50%.
func systemRecoveryTimes(rc RecoveryContext) map[domain.RecoverySystem]SystemRecovery {
	out := make(map[domain.RecoverySystem]SystemRecovery, len(baseRecoveryTimes))
	for _, system := range domain.AllRecoverySystems() {
		base := baseRecoveryTimes[system]

		damage, ok := rc.InitialDamage[system]
		if !ok {
			damage = 0.5
		}
		damageScaling := math.Exp(damage * 2)

		eventScaling := 1.0
		if f, ok := eventScalingFactors[rc.EventType][system]; ok {
			eventScaling = f
		}

		modifier := recoveryContextModifier(rc, system)

		out[system] = SystemRecovery{
			BaseTime:        base,
			DamageScaling:   damageScaling,
			EventScaling:    eventScaling,
			ContextModifier: modifier,
			TotalTime:       base * damageScaling * eventScaling * modifier,
			Confidence:      systemConfidence(system, rc),
		}
	}
	return out
}

// recoveryContextModifier discounts recovery time for aid, cohesion and
// preserved technology, and stretches it for poor geography. Floored at
// 0.1 so no combination erases a recovery entirely.
func recoveryContextModifier(rc RecoveryContext, system domain.RecoverySystem) float64 {
	modifier := 1.0 - rc.ExternalAid*0.3
	modifier *= 1.0 - rc.SocialCohesion*0.2

	switch system {
	case domain.SystemTechnology, domain.SystemInfrastructure, domain.SystemHealthcare:
		modifier *= 1.0 - rc.TechnologyPreservation*0.4
	}

	climate := geographicFactor(rc.GeographicFactors, "climate_suitability")
	resources := geographicFactor(rc.GeographicFactors, "natural_resources")
	modifier *= 2.0 - (climate + resources)

	return math.Max(0.1, modifier)
}

func systemConfidence(system domain.RecoverySystem, rc RecoveryContext) float64 {
	confidence := 0.7
	if _, ok := rc.InitialDamage[system]; ok {
		confidence += 0.1
	}
	if _, ok := rc.AvailableResources[string(system)]; ok {
		confidence += 0.1
	}
	switch rc.EventType {
	case domain.EventPandemic, domain.EventAsteroid, domain.EventNuclearWar:
		confidence += 0.1
	}
	return math.Min(1.0, confidence)
}

// phaseTimeline lays the six recovery phases end to end. Severity
// stretches each phase; surviving population and resources compress it.
func phaseTimeline(rc RecoveryContext) map[domain.RecoveryPhase]PhaseEstimate {
	severityScaling := 1.0 + (float64(rc.Severity)-3)*0.5
	populationFactor := math.Max(0.5, float64(rc.SurvivingPopulation)/1e8)
	resourceFactor := meanResourceLevel(rc.AvailableResources)

	out := make(map[domain.RecoveryPhase]PhaseEstimate, len(phaseDurations))
	cumulative := 0.0
	for _, phase := range domain.AllRecoveryPhases() {
		duration := phaseDurations[phase] * severityScaling / (populationFactor * resourceFactor)

		out[phase] = PhaseEstimate{
			Duration:           duration,
			StartTime:          cumulative,
			EndTime:            cumulative + duration,
			KeyActivities:      append([]string(nil), phaseActivities[phase]...),
			SuccessProbability: phaseSuccessProbability(phase, rc),
		}
		cumulative += duration
	}
	return out
}

// meanResourceLevel averages the supplied resource levels, clamped to
// [0.1,1] so the phase timeline divisor stays sane. No resources at all
// reads as a neutral 0.5.
func meanResourceLevel(resources map[string]float64) float64 {
	if len(resources) == 0 {
		return 0.5
	}

	keys := make([]string, 0, len(resources))
	for k := range resources {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sum := 0.0
	for _, k := range keys {
		sum += resources[k]
	}
	mean := sum / float64(len(resources))

	return math.Min(1.0, math.Max(0.1, mean))
}

func phaseSuccessProbability(phase domain.RecoveryPhase, rc RecoveryContext) float64 {
	boost := rc.SocialCohesion*0.3 +
		rc.ExternalAid*0.2 +
		rc.TechnologyPreservation*0.2 +
		float64(rc.SurvivingPopulation)/1e8*0.3

	p := phaseSuccessBase[phase] + boost - 0.5
	return math.Min(1.0, math.Max(0.0, p))
}

func overallMetrics(systems map[domain.RecoverySystem]SystemRecovery) RecoveryMetrics {
	total := 0.0
	sum := 0.0
	for _, system := range domain.AllRecoverySystems() {
		t := systems[system].TotalTime
		total = math.Max(total, t)
		sum += t
	}

	return RecoveryMetrics{
		TotalRecoveryTime:       total,
		AverageRecoveryTime:     sum / float64(len(domain.AllRecoverySystems())),
		CriticalPathTime:        criticalPathTime(systems),
		CivilizationRebuildTime: civilizationRebuildTime(systems),
		PopulationRecoveryTime:  systems[domain.SystemPopulation].TotalTime,
		TechnologyRecoveryTime:  systems[domain.SystemTechnology].TotalTime,
	}
}

// criticalPathTime walks the dependency edges: a dependent system's
// effective time is its own plus half its slowest prerequisite.
func criticalPathTime(systems map[domain.RecoverySystem]SystemRecovery) float64 {
	critical := 0.0
	for _, node := range systemDependencies {
		depTime := 0.0
		for _, dep := range node.deps {
			depTime = math.Max(depTime, systems[dep].TotalTime)
		}
		critical = math.Max(critical, systems[node.system].TotalTime+depTime*0.5)
	}
	return critical
}

// civilizationRebuildTime is gated by the slowest of the five key
// systems, plus a 30% integration margin.
func civilizationRebuildTime(systems map[domain.RecoverySystem]SystemRecovery) float64 {
	rebuild := 0.0
	for _, system := range []domain.RecoverySystem{
		domain.SystemPopulation,
		domain.SystemInfrastructure,
		domain.SystemTechnology,
		domain.SystemGovernance,
		domain.SystemEconomy,
	} {
		rebuild = math.Max(rebuild, systems[system].TotalTime)
	}
	return rebuild * 1.3
}

func recoveryScenarios(systems map[domain.RecoverySystem]SystemRecovery) RecoveryScenarios {
	base := 0.0
	for _, system := range domain.AllRecoverySystems() {
		base = math.Max(base, systems[system].TotalTime)
	}

	return RecoveryScenarios{
		Optimistic: RecoveryScenario{
			Description: "Best-case scenario with ideal conditions",
			TotalTime:   base * 0.6,
			Assumptions: []string{
				"Maximum external aid",
				"High social cooperation",
				"Favorable environmental conditions",
				"Preserved critical knowledge",
			},
		},
		Realistic: RecoveryScenario{
			Description: "Most likely scenario based on current conditions",
			TotalTime:   base,
			Assumptions: []string{
				"Moderate external aid",
				"Average social cohesion",
				"Normal environmental variability",
				"Partial knowledge preservation",
			},
		},
		Pessimistic: RecoveryScenario{
			Description: "Worst-case scenario with additional complications",
			TotalTime:   base * 2.0,
			Assumptions: []string{
				"Limited external aid",
				"Social fragmentation",
				"Adverse environmental conditions",
				"Significant knowledge loss",
			},
		},
	}
}

// recoveryBottlenecks returns the three slowest systems, slowest first.
func recoveryBottlenecks(systems map[domain.RecoverySystem]SystemRecovery) []Bottleneck {
	type entry struct {
		system domain.RecoverySystem
		data   SystemRecovery
	}

	entries := make([]entry, 0, len(systems))
	for _, system := range domain.AllRecoverySystems() {
		entries = append(entries, entry{system, systems[system]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].data.TotalTime > entries[j].data.TotalTime
	})

	bottlenecks := make([]Bottleneck, 0, 3)
	for _, e := range entries[:3] {
		severity := "moderate"
		if e.data.TotalTime > 100 {
			severity = "critical"
		}
		bottlenecks = append(bottlenecks, Bottleneck{
			System:       e.system,
			RecoveryTime: e.data.TotalTime,
			Severity:     severity,
			KeyFactors:   bottleneckFactors(e.data),
		})
	}
	return bottlenecks
}

func bottleneckFactors(data SystemRecovery) []string {
	factors := []string{}
	if data.DamageScaling > 2.0 {
		factors = append(factors, "High initial damage")
	}
	if data.EventScaling > 1.5 {
		factors = append(factors, "Event-specific complications")
	}
	if data.ContextModifier > 1.2 {
		factors = append(factors, "Unfavorable context conditions")
	}
	if data.Confidence < 0.6 {
		factors = append(factors, "High uncertainty")
	}
	return factors
}

func recoveryStrategies(bottlenecks []Bottleneck) []string {
	strategies := []string{}
	for _, b := range bottlenecks {
		switch b.System {
		case domain.SystemPopulation:
			strategies = append(strategies,
				"Prioritize healthcare and food security",
				"Establish protected population centers")
		case domain.SystemInfrastructure:
			strategies = append(strategies,
				"Focus on critical infrastructure first",
				"Use modular and resilient designs")
		case domain.SystemTechnology:
			strategies = append(strategies,
				"Preserve and protect technical knowledge",
				"Establish technology preservation centers")
		case domain.SystemEcosystem:
			strategies = append(strategies,
				"Implement ecosystem restoration programs",
				"Protect remaining biodiversity hotspots")
		}
	}
	return strategies
}

func confidenceIntervals(systems map[domain.RecoverySystem]SystemRecovery) map[domain.RecoverySystem]ConfidenceInterval {
	out := make(map[domain.RecoverySystem]ConfidenceInterval, len(systems))
	for system, data := range systems {
		width := data.TotalTime * (1.0 - data.Confidence)
		out[system] = ConfidenceInterval{
			Low:  math.Max(0, data.TotalTime-width),
			High: data.TotalTime + width,
		}
	}
	return out
}

func recoveryStatistics(estimates []ScenarioEstimate) RecoveryStatistics {
	times := make([]float64, 0, len(estimates))
	for _, est := range estimates {
		times = append(times, est.Estimate.OverallMetrics.TotalRecoveryTime)
	}
	sort.Float64s(times)

	n := len(times)
	sum := 0.0
	for _, t := range times {
		sum += t
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, t := range times {
		d := t - mean
		variance += d * d
	}

	median := times[n/2]
	if n%2 == 0 {
		median = (times[n/2-1] + times[n/2]) / 2
	}

	return RecoveryStatistics{
		MeanRecoveryTime:   mean,
		MedianRecoveryTime: median,
		StdRecoveryTime:    math.Sqrt(variance / float64(n)),
		MinRecoveryTime:    times[0],
		MaxRecoveryTime:    times[n-1],
	}
}

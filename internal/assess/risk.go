package assess

import (
	"fmt"
	"math"
	"sort"

	"github.com/eles-sim/eles/internal/domain"
)

// RiskComponent names one normalized input of the composite risk score.
type RiskComponent string

const (
	ComponentProbability     RiskComponent = "probability"
	ComponentImpactMagnitude RiskComponent = "impact_magnitude"
	ComponentExposure        RiskComponent = "population_exposure"
	ComponentVulnerability   RiskComponent = "infrastructure_vulnerability"
	ComponentRecovery        RiskComponent = "recovery_difficulty"
	ComponentCascading       RiskComponent = "cascading_effects"
	ComponentPreparedness    RiskComponent = "preparedness_level"
	ComponentWarningTime     RiskComponent = "warning_time"
)

// riskComponentOrder fixes iteration order for reproducible composites.
var riskComponentOrder = []RiskComponent{
	ComponentProbability,
	ComponentImpactMagnitude,
	ComponentExposure,
	ComponentVulnerability,
	ComponentRecovery,
	ComponentCascading,
	ComponentPreparedness,
	ComponentWarningTime,
}

// riskWeights sum to 1.0, so the weighted average stays in [0,1] for
// component vectors in [0,1].
var riskWeights = map[RiskComponent]float64{
	ComponentProbability:     0.20,
	ComponentImpactMagnitude: 0.25,
	ComponentExposure:        0.15,
	ComponentVulnerability:   0.10,
	ComponentRecovery:        0.10,
	ComponentCascading:       0.10,
	ComponentPreparedness:    0.05,
	ComponentWarningTime:     0.05,
}

// standardProbabilities are rough per-year likelihood figures for named
// sub-scenarios of each hazard, used as reference points when building
// a RiskProfile.
var standardProbabilities = map[domain.EventType]map[string]float64{
	domain.EventAsteroid:        {"city_killer": 1e-4, "regional": 1e-6, "global": 1e-8},
	domain.EventSupervolcano:    {"vei_7": 1e-4, "vei_8": 1e-5},
	domain.EventPandemic:        {"severe": 1e-2, "extreme": 1e-3},
	domain.EventClimateCollapse: {"tipping_point": 1e-1, "runaway": 1e-3},
	domain.EventGammaRayBurst:   {"galactic": 1e-5, "nearby": 1e-8},
	domain.EventAIExtinction:    {"misaligned_agi": 1e-1, "hard_takeoff": 1e-2},
	domain.EventNuclearWar:      {"regional": 1e-3, "global": 1e-4},
}

// referenceEvents anchor the comparative rankings against familiar
// everyday and industrial risks.
var referenceEvents = []struct {
	name        string
	probability float64
	casualties  float64
}{
	{"car_accident_death", 1e-4, 1},
	{"lightning_strike", 1e-6, 1},
	{"plane_crash", 1e-7, 300},
	{"nuclear_plant_accident", 1e-6, 1000},
}

// ─── Profile & Output ────────────────────────────────────────────────────────

// RiskProfile is the caller-built input of one Compute call. Score-like
// fields (global impact, detectability, preventability, mitigation
// potential) are fractions on a 0-1 scale.
type RiskProfile struct {
	EventType           domain.EventType `json:"event_type" yaml:"event_type"`
	ProbabilityPerYear  float64          `json:"probability_per_year" yaml:"probability_per_year"`
	ExpectedCasualties  int64            `json:"expected_casualties" yaml:"expected_casualties"`
	EconomicImpactUSD   float64          `json:"economic_impact_usd" yaml:"economic_impact_usd"`
	AffectedAreaKm2     float64          `json:"affected_area_km2" yaml:"affected_area_km2"`
	DurationYears       float64          `json:"duration_years" yaml:"duration_years"`
	RecoveryTimeYears   float64          `json:"recovery_time_years" yaml:"recovery_time_years"`
	GlobalImpactScore   float64          `json:"global_impact_score" yaml:"global_impact_score"`
	Detectability       float64          `json:"detectability" yaml:"detectability"`
	Preventability      float64          `json:"preventability" yaml:"preventability"`
	MitigationPotential float64          `json:"mitigation_potential" yaml:"mitigation_potential"`
}

// RiskAssessment is the full output of one Compute call.
type RiskAssessment struct {
	OverallRiskScore   float64                   `json:"overall_risk_score"`
	RiskLevel          string                    `json:"risk_level"`
	RiskComponents     map[RiskComponent]float64 `json:"risk_components"`
	CompositeScores    CompositeScores           `json:"composite_scores"`
	ExpectedValues     ExpectedValues            `json:"expected_values"`
	Rankings           RiskRankings              `json:"rankings"`
	MitigationAnalysis MitigationAnalysis        `json:"mitigation_analysis"`
	Recommendations    []string                  `json:"recommendations"`
}

// CompositeScores aggregates the component vector five different ways.
type CompositeScores struct {
	WeightedAverage  float64 `json:"weighted_average"`
	GeometricMean    float64 `json:"geometric_mean"`
	MaximumComponent float64 `json:"maximum_component"`
	MinimumComponent float64 `json:"minimum_component"`
	RootMeanSquare   float64 `json:"root_mean_square"`
}

// ExpectedValues are closed-form annualized and lifetime expectations.
type ExpectedValues struct {
	ExpectedAnnualCasualties    float64 `json:"expected_annual_casualties"`
	ExpectedAnnualEconomicLoss  float64 `json:"expected_annual_economic_loss"`
	ExpectedLifetimeProbability float64 `json:"expected_lifetime_probability"`
	YearsUntilOccurrence        float64 `json:"years_until_occurrence"`
}

// RiskRankings places the profile against reference risks.
type RiskRankings struct {
	ProbabilityPercentile float64          `json:"probability_percentile"`
	ImpactPercentile      float64          `json:"impact_percentile"`
	Comparisons           []RiskComparison `json:"comparisons"`
}

// RiskComparison relates the profile to one reference event.
type RiskComparison struct {
	ReferenceEvent   string  `json:"reference_event"`
	ProbabilityRatio float64 `json:"probability_ratio"`
	ImpactRatio      float64 `json:"impact_ratio"`
	OverallRatio     float64 `json:"overall_ratio"`
}

// MitigationAnalysis scores how much of the risk could be engineered away.
type MitigationAnalysis struct {
	MitigationScore          float64  `json:"mitigation_score"`
	PotentialStrategies      []string `json:"potential_strategies"`
	EstimatedMitigationValue float64  `json:"estimated_mitigation_value"`
	PriorityLevel            string   `json:"priority_level"`
}

// ScenarioComparison ranks several profiles against each other.
type ScenarioComparison struct {
	RankedScenarios  []ScoredProfile    `json:"ranked_scenarios"`
	RelativeRisks    map[string]float64 `json:"relative_risks"`
	HighestRisk      *ScoredProfile     `json:"highest_risk,omitempty"`
	LowestRisk       *ScoredProfile     `json:"lowest_risk,omitempty"`
	RiskDistribution RiskDistribution   `json:"risk_distribution"`
}

// ScoredProfile pairs a profile with its assessment.
type ScoredProfile struct {
	Profile RiskProfile    `json:"profile"`
	Scores  RiskAssessment `json:"scores"`
}

// RiskDistribution summarizes the spread of overall scores.
type RiskDistribution struct {
	MeanRisk     float64 `json:"mean_risk"`
	MedianRisk   float64 `json:"median_risk"`
	StdDeviation float64 `json:"std_deviation"`
	MinRisk      float64 `json:"min_risk"`
	MaxRisk      float64 `json:"max_risk"`
	RiskRange    float64 `json:"risk_range"`
}

// ─── Calculator ──────────────────────────────────────────────────────────────

// RiskScoreCalculator scores extinction-event risk profiles. All methods
// are deterministic and safe for concurrent use.
type RiskScoreCalculator struct{}

// NewRiskScoreCalculator returns a ready calculator.
func NewRiskScoreCalculator() *RiskScoreCalculator { return &RiskScoreCalculator{} }

// Compute normalizes the profile into eight components, aggregates them
// into composite scores, and derives expectations, rankings, mitigation
// analysis and recommendations.
func (c *RiskScoreCalculator) Compute(profile RiskProfile) RiskAssessment {
	components := riskComponents(profile)
	composites := compositeScores(components)

	return RiskAssessment{
		OverallRiskScore:   composites.WeightedAverage,
		RiskLevel:          RiskLevel(composites.WeightedAverage),
		RiskComponents:     components,
		CompositeScores:    composites,
		ExpectedValues:     expectedValues(profile),
		Rankings:           riskRankings(profile),
		MitigationAnalysis: mitigationAnalysis(profile),
		Recommendations:    riskRecommendations(profile, composites),
	}
}

// CompareScenarios computes every profile and ranks them by overall
// score. Relative risks are ratios against the first profile given.
func (c *RiskScoreCalculator) CompareScenarios(profiles []RiskProfile) ScenarioComparison {
	if len(profiles) == 0 {
		return ScenarioComparison{RelativeRisks: map[string]float64{}}
	}

	scored := make([]ScoredProfile, 0, len(profiles))
	for _, p := range profiles {
		scored = append(scored, ScoredProfile{Profile: p, Scores: c.Compute(p)})
	}

	relative := map[string]float64{}
	if len(scored) >= 2 {
		baseline := scored[0].Scores.OverallRiskScore
		for _, s := range scored {
			relative[fmt.Sprintf("%s_relative_risk", s.Profile.EventType)] = s.Scores.OverallRiskScore / baseline
		}
	}

	ranked := append([]ScoredProfile(nil), scored...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.OverallRiskScore > ranked[j].Scores.OverallRiskScore
	})

	return ScenarioComparison{
		RankedScenarios:  ranked,
		RelativeRisks:    relative,
		HighestRisk:      &ranked[0],
		LowestRisk:       &ranked[len(ranked)-1],
		RiskDistribution: riskDistribution(scored),
	}
}

// StandardProbabilities returns the reference annual-probability table
// for t, or nil for hazards without one. The returned map is a copy.
func (c *RiskScoreCalculator) StandardProbabilities(t domain.EventType) map[string]float64 {
	src, ok := standardProbabilities[t]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// RiskLevel buckets a weighted-average score into five bands.
func RiskLevel(score float64) string {
	switch {
	case score >= 0.8:
		return "EXTREME"
	case score >= 0.6:
		return "HIGH"
	case score >= 0.4:
		return "MODERATE"
	case score >= 0.2:
		return "LOW"
	default:
		return "MINIMAL"
	}
}

// riskComponents normalizes the profile onto eight 0-1 component scores.
// Probability uses a log scale with a 1e-10 floor so a zero probability
// still yields a defined score.
func riskComponents(p RiskProfile) map[RiskComponent]float64 {
	probability := math.Min(1.0, -math.Log10(math.Max(1e-10, p.ProbabilityPerYear))/10)

	casualty := math.Min(1.0, float64(p.ExpectedCasualties)/1e9)
	economic := math.Min(1.0, p.EconomicImpactUSD/1e14)

	return map[RiskComponent]float64{
		ComponentProbability:     probability,
		ComponentImpactMagnitude: (casualty + economic) / 2,
		ComponentExposure:        math.Min(1.0, p.AffectedAreaKm2/1.5e8),
		ComponentVulnerability:   math.Min(1.0, p.GlobalImpactScore),
		ComponentRecovery:        math.Min(1.0, p.RecoveryTimeYears/1000),
		ComponentCascading:       math.Min(1.0, p.DurationYears*p.GlobalImpactScore/50),
		ComponentPreparedness:    1.0 - (p.Detectability+p.Preventability)/2,
		ComponentWarningTime:     1.0 - p.Detectability,
	}
}

func compositeScores(components map[RiskComponent]float64) CompositeScores {
	weighted := 0.0
	product := 1.0
	sumSquares := 0.0
	maxC := math.Inf(-1)
	minC := math.Inf(1)
	for _, comp := range riskComponentOrder {
		v := components[comp]
		weighted += v * riskWeights[comp]
		product *= math.Max(0.01, v)
		sumSquares += v * v
		maxC = math.Max(maxC, v)
		minC = math.Min(minC, v)
	}

	n := float64(len(riskComponentOrder))
	return CompositeScores{
		WeightedAverage:  weighted,
		GeometricMean:    math.Pow(product, 1/n),
		MaximumComponent: maxC,
		MinimumComponent: minC,
		RootMeanSquare:   math.Sqrt(sumSquares / n),
	}
}

func expectedValues(p RiskProfile) ExpectedValues {
	prob := p.ProbabilityPerYear
	return ExpectedValues{
		ExpectedAnnualCasualties:    prob * float64(p.ExpectedCasualties),
		ExpectedAnnualEconomicLoss:  prob * p.EconomicImpactUSD,
		ExpectedLifetimeProbability: 1.0 - math.Pow(1.0-prob, 70),
		YearsUntilOccurrence:        1.0 / math.Max(1e-10, prob),
	}
}

func riskRankings(p RiskProfile) RiskRankings {
	comparisons := make([]RiskComparison, 0, len(referenceEvents))
	for _, ref := range referenceEvents {
		probRatio := p.ProbabilityPerYear / ref.probability
		impactRatio := float64(p.ExpectedCasualties) / ref.casualties
		comparisons = append(comparisons, RiskComparison{
			ReferenceEvent:   ref.name,
			ProbabilityRatio: probRatio,
			ImpactRatio:      impactRatio,
			OverallRatio:     probRatio * impactRatio,
		})
	}

	return RiskRankings{
		ProbabilityPercentile: math.Min(100, math.Max(0, -math.Log10(p.ProbabilityPerYear)*10)),
		ImpactPercentile:      math.Min(100, math.Max(0, math.Log10(math.Max(1, float64(p.ExpectedCasualties)))*10)),
		Comparisons:           comparisons,
	}
}

func mitigationAnalysis(p RiskProfile) MitigationAnalysis {
	score := p.Detectability*0.3 + p.Preventability*0.4 + p.MitigationPotential*0.3

	strategies := []string{}
	if p.Detectability > 0.7 {
		strategies = append(strategies, "Early warning systems")
	}
	if p.Preventability > 0.5 {
		strategies = append(strategies, "Prevention measures")
	}
	if p.MitigationPotential > 0.6 {
		strategies = append(strategies, "Impact mitigation")
	}

	return MitigationAnalysis{
		MitigationScore:     score,
		PotentialStrategies: strategies,
		// 1e6 USD per statistical life.
		EstimatedMitigationValue: score * float64(p.ExpectedCasualties) * 1e6,
		PriorityLevel:            mitigationPriority(score, p),
	}
}

func mitigationPriority(score float64, p RiskProfile) string {
	combined := score * p.ProbabilityPerYear * float64(p.ExpectedCasualties)
	switch {
	case combined > 1e3:
		return "CRITICAL"
	case combined > 1e2:
		return "HIGH"
	case combined > 1e1:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func riskRecommendations(p RiskProfile, scores CompositeScores) []string {
	recs := []string{}
	if scores.WeightedAverage > 0.7 {
		recs = append(recs, "Immediate attention required - high priority risk")
	}
	if p.Detectability < 0.3 {
		recs = append(recs, "Invest in detection and monitoring systems")
	}
	if p.Preventability > 0.5 {
		recs = append(recs, "Focus on prevention strategies")
	}
	if p.MitigationPotential > 0.6 {
		recs = append(recs, "Develop comprehensive mitigation plans")
	}
	if p.RecoveryTimeYears > 100 {
		recs = append(recs, "Establish long-term recovery frameworks")
	}
	return recs
}

func riskDistribution(scored []ScoredProfile) RiskDistribution {
	scores := make([]float64, 0, len(scored))
	for _, s := range scored {
		scores = append(scores, s.Scores.OverallRiskScore)
	}
	sort.Float64s(scores)

	n := len(scores)
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, v := range scores {
		d := v - mean
		variance += d * d
	}

	median := scores[n/2]
	if n%2 == 0 {
		median = (scores[n/2-1] + scores[n/2]) / 2
	}

	return RiskDistribution{
		MeanRisk:     mean,
		MedianRisk:   median,
		StdDeviation: math.Sqrt(variance / float64(n)),
		MinRisk:      scores[0],
		MaxRisk:      scores[n-1],
		RiskRange:    scores[n-1] - scores[0],
	}
}

package sim

import (
	"math"

	"github.com/eles-sim/eles/internal/domain"
)

// AIExtinction models misaligned artificial intelligence: extinction
// probability from capability, alignment, development speed and control
// measures, plus timeline and outcome-split estimates.
type AIExtinction struct {
	Constants domain.Constants
}

func (m AIExtinction) Simulate(params domain.Parameters) domain.SimulationData {
	level := params.Float("ai_level", 5)
	speed := params.Float("development_speed", 1.0)
	alignment := params.Float("alignment_probability", 0.5)
	controls := params.Float("control_measures", 3)

	capability := math.Min(1, level/10)
	misalignment := 1 - alignment
	speedMultiplier := math.Log(speed+1) + 1
	mitigation := math.Min(0.9, controls/10)

	rawRisk := capability * misalignment * speedMultiplier * (1 - mitigation)
	extinctionProb := math.Min(1, rawRisk)

	agiYears := int64(0)
	if level < 8 {
		agiYears = maxInt64(1, int64((8-level)*5/speed))
	}
	asiYears := int64(0)
	if level < 10 {
		asiYears = agiYears + maxInt64(1, int64((10-math.Max(8, level))*2/speed))
	}

	return domain.SimulationData{
		"ai_level":              level,
		"development_speed":     speed,
		"alignment_probability": alignment,
		"control_measures":      controls,

		"capability_risk":        capability,
		"misalignment_risk":      misalignment,
		"extinction_probability": extinctionProb,
		"risk_level":             aiRiskLevel(rawRisk),

		"agi_timeline_years":    agiYears,
		"asi_timeline_years":    asiYears,
		"critical_window_years": minInt64(5, agiYears),

		"human_extinction_prob":      extinctionProb * 0.8,
		"civilization_collapse_prob": extinctionProb * 0.15,
		"dystopian_control_prob":     extinctionProb * 0.05,
		"beneficial_outcome_prob":    1 - extinctionProb,

		"most_likely_scenario":    likelyAIScenario(level, alignment),
		"technical_safety":        technicalSafety(controls),
		"governance":              aiGovernance(controls),
		"critical_research_areas": criticalResearchAreas(level, alignment, controls),
	}
}

func aiRiskLevel(risk float64) string {
	switch {
	case risk > 0.7:
		return "Extinction-Level"
	case risk > 0.5:
		return "Catastrophic"
	case risk > 0.3:
		return "Severe"
	case risk > 0.1:
		return "Moderate"
	default:
		return "Low"
	}
}

func likelyAIScenario(level, alignment float64) string {
	switch {
	case level >= 9:
		switch {
		case alignment > 0.8:
			return "AI assists in solving global challenges, human flourishing"
		case alignment > 0.4:
			return "AI power struggle, partial human survival"
		default:
			return "Rapid human extinction via AI optimization"
		}
	case level >= 6:
		switch {
		case alignment > 0.7:
			return "Gradual beneficial AI integration"
		case alignment > 0.3:
			return "AI-human conflict, technological disruption"
		default:
			return "Gradual human displacement and extinction"
		}
	default:
		if alignment > 0.5 {
			return "Narrow AI continues to benefit humanity"
		}
		return "AI systems cause economic and social disruption"
	}
}

func technicalSafety(controls float64) string {
	switch {
	case controls >= 7:
		return "Strong safety measures implemented"
	case controls >= 4:
		return "Moderate safety measures"
	default:
		return "Insufficient safety measures"
	}
}

func aiGovernance(controls float64) string {
	switch {
	case controls >= 6:
		return "International AI governance frameworks"
	case controls >= 3:
		return "National AI regulations"
	default:
		return "Minimal AI oversight"
	}
}

func criticalResearchAreas(level, alignment, controls float64) []string {
	areas := []string{}
	if alignment < 0.7 {
		areas = append(areas, "AI alignment research")
	}
	if controls < 5 {
		areas = append(areas, "AI safety verification", "Robustness testing")
	}
	if level > 6 {
		areas = append(areas, "AI governance frameworks")
	}
	return areas
}

// AICapabilityDescription describes a capability level on the 1..10 scale.
func AICapabilityDescription(level int) string {
	switch level {
	case 1:
		return "Basic automation and simple pattern recognition"
	case 2:
		return "Advanced pattern recognition, basic language processing"
	case 3:
		return "Sophisticated language models, basic reasoning"
	case 4:
		return "Multi-modal AI, advanced reasoning in specific domains"
	case 5:
		return "Human-level performance in most cognitive tasks"
	case 6:
		return "Superhuman performance in most domains"
	case 7:
		return "Advanced general intelligence exceeding humans"
	case 8:
		return "Artificial General Intelligence (AGI)"
	case 9:
		return "Early Artificial Superintelligence (ASI)"
	case 10:
		return "Advanced ASI with recursive self-improvement"
	}
	return "Unknown capability level"
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

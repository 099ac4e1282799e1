package engine

import "math"

// Water-quality sub-scores for categorical status fallbacks. Parameters with
// unrecognized names and no usable numeric value score through this table;
// an unknown status scores neutral.
const (
	statusScoreExcellent = 100
	statusScoreGood      = 80
	statusScoreFair      = 60
	statusScorePoor      = 30
	statusScoreUnknown   = 50
)

// QualityIndex maps raw water-quality parameters to a single 0-100 index:
// the arithmetic mean of the per-parameter sub-scores, rounded to the
// nearest integer. Returns 0 when no parameters are supplied.
//
// Known parameters (matched case-insensitively) are scored against
// documented threshold tables; anything else falls back to the categorical
// status mapping.
func QualityIndex(parameters []WaterQualityParameter) int {
	if len(parameters) == 0 {
		return 0
	}

	var sum float64
	for _, p := range parameters {
		sum += float64(parameterScore(p))
	}

	return int(math.Round(sum / float64(len(parameters))))
}

// parameterScore resolves a single parameter to its 0-100 sub-score.
func parameterScore(p WaterQualityParameter) int {
	if p.Value != nil {
		if score, ok := thresholdScore(canonicalKey(p.Name), *p.Value); ok {
			return score
		}
	}
	return statusScore(p.Status)
}

// thresholdScore scores a numeric reading against the per-metric threshold
// table. The second return value is false for unrecognized metric names.
func thresholdScore(name string, value float64) (int, bool) {
	switch name {
	case "dissolved oxygen", "dissolved_oxygen", "do":
		// mg/L; below 2 is hypoxic.
		switch {
		case value >= 6:
			return 100, true
		case value >= 4:
			return 70, true
		case value >= 2:
			return 40, true
		default:
			return 10, true
		}
	case "ph":
		// Open-ocean pH sits near 8.1; both directions degrade.
		switch {
		case value >= 7.8 && value <= 8.3:
			return 100, true
		case value >= 7.5 && value <= 8.5:
			return 80, true
		case value >= 7.0 && value <= 9.0:
			return 60, true
		default:
			return 20, true
		}
	case "turbidity":
		// NTU; lower is better for settlement and photosynthesis.
		switch {
		case value <= 1:
			return 100, true
		case value <= 5:
			return 80, true
		case value <= 10:
			return 50, true
		default:
			return 20, true
		}
	case "nitrates", "nitrate":
		// mg/L as N.
		switch {
		case value <= 0.1:
			return 100, true
		case value <= 0.5:
			return 75, true
		case value <= 1.0:
			return 45, true
		default:
			return 15, true
		}
	case "phosphates", "phosphate":
		// mg/L as P.
		switch {
		case value <= 0.01:
			return 100, true
		case value <= 0.05:
			return 75, true
		case value <= 0.1:
			return 45, true
		default:
			return 15, true
		}
	default:
		return 0, false
	}
}

// statusScore maps a categorical status to its sub-score.
func statusScore(status string) int {
	switch canonicalKey(status) {
	case "excellent":
		return statusScoreExcellent
	case "good":
		return statusScoreGood
	case "fair", "moderate":
		return statusScoreFair
	case "poor":
		return statusScorePoor
	default:
		return statusScoreUnknown
	}
}

package engine

import "strings"

// Climate risk factor descriptions. Recommendations are derived by pattern
// matching on these strings, so they are stable identifiers as well as
// display text.
const (
	factorSevereThermal   = "Severe thermal stress risk"
	factorModerateThermal = "Moderate thermal stress risk"
	factorRapidSLR        = "Rapid sea level rise exposure"
	factorModerateSLR     = "Moderate sea level rise exposure"
	factorSevereAcidif    = "Significant ocean acidification projected"
	factorModerateAcidif  = "Moderate ocean acidification projected"
	factorHeatwaves       = "Frequent marine heatwave events"
)

// AssessClimateRisk scores climate-change exposure for a site from
// projection data. Each triggered condition contributes points independently
// and cumulatively; the total is capped at 100 and bucketed into a risk
// level (>50 high, >25 medium, else low). The returned assessment lists the
// triggered factors and mitigation recommendations derived from them.
func AssessClimateRisk(climate ClimateProjection) ClimateRiskAssessment {
	score := 0
	var factors []string

	switch {
	case climate.SSTAnomaly > 2.0:
		score += riskPointsSevereThermal
		factors = append(factors, factorSevereThermal)
	case climate.SSTAnomaly > 1.0:
		score += riskPointsModerateThermal
		factors = append(factors, factorModerateThermal)
	}

	switch {
	case climate.ExtremeEvents.SeaLevelRiseRate > 5.0:
		score += riskPointsRapidSLR
		factors = append(factors, factorRapidSLR)
	case climate.ExtremeEvents.SeaLevelRiseRate > 3.0:
		score += riskPointsModerateSLR
		factors = append(factors, factorModerateSLR)
	}

	switch {
	case climate.Projections2050.Acidification < -0.3:
		score += riskPointsSevereAcidif
		factors = append(factors, factorSevereAcidif)
	case climate.Projections2050.Acidification < -0.1:
		score += riskPointsModerateAcidif
		factors = append(factors, factorModerateAcidif)
	}

	if climate.ExtremeEvents.HeatwavesAnnual > 4 {
		score += riskPointsHeatwaves
		factors = append(factors, factorHeatwaves)
	}

	if score > maxScore {
		score = maxScore
	}

	level := riskLevel(score)

	return ClimateRiskAssessment{
		Score:           score,
		Level:           level,
		Factors:         factors,
		Recommendations: climateRecommendations(factors, level),
	}
}

// riskLevel buckets an accumulated risk score.
func riskLevel(score int) RiskLevel {
	switch {
	case score > riskLevelHighThreshold:
		return RiskHigh
	case score > riskLevelMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// climateRecommendations derives mitigations from the triggered factor
// strings. A high overall level always adds the adaptive management
// recommendation.
func climateRecommendations(factors []string, level RiskLevel) []string {
	var recs []string

	for _, f := range factors {
		switch {
		case strings.Contains(f, "thermal stress"):
			recs = append(recs, "Select thermally resilient species for colonization")
		case strings.Contains(f, "sea level rise"):
			recs = append(recs, "Design crest elevation for projected water levels")
		case strings.Contains(f, "acidification"):
			recs = append(recs, "Use pH-buffering concrete admixtures")
		case strings.Contains(f, "heatwave"):
			recs = append(recs, "Incorporate shaded thermal refugia into the structure")
		}
	}

	if level == RiskHigh {
		recs = append(recs, "Implement adaptive management protocols")
	}

	return recs
}

package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/oklog/ulid/v2"

	"github.com/AviL26/project-insights-sub001/internal/logging"
)

// AssessmentRequest bundles the caller-resolved inputs for one assessment.
// Every field except Project is optional: nil or empty inputs are replaced
// by neutral defaults rather than failing.
type AssessmentRequest struct {
	// Project is the proposed structure design.
	Project ProjectDesign

	// Environment is the ambient snapshot; nil substitutes
	// DefaultEnvironment().
	Environment *EnvironmentalSnapshot

	// Observations are the species occurrence records for the site.
	Observations []SpeciesObservation

	// Suitability optionally weights Shannon proportions by scientific
	// name, overriding per-observation weights.
	Suitability map[string]float64

	// WaterQuality holds the raw water-quality readings.
	WaterQuality []WaterQualityParameter

	// Climate is the projection bundle; nil assesses as zero risk.
	Climate *ClimateProjection

	// DiversityIndex is the surveyed baseline diversity index reported by
	// the occurrence data source. It is on a different scale than the
	// Shannon index computed by this engine and the two are deliberately
	// not unified.
	DiversityIndex *float64
}

// environment returns the snapshot, defaulted when absent.
func (r AssessmentRequest) environment() EnvironmentalSnapshot {
	if r.Environment == nil {
		return DefaultEnvironment()
	}
	return *r.Environment
}

// climate returns the projection, zero-valued when absent.
func (r AssessmentRequest) climate() ClimateProjection {
	if r.Climate == nil {
		return ClimateProjection{}
	}
	return *r.Climate
}

// Insights is the structured insight report derived from the sub-models.
type Insights struct {
	Opportunities   []string
	Risks           []string
	Recommendations []string
	Metrics         ImpactMetrics
}

// CalculateOverallScore blends the sub-metric outputs into the composite
// 0-100 impact score. Starting from a neutral base of 70, the biodiversity
// and water-quality sub-scores pull the score toward their own distance
// from 70, climate risk applies a penalty, and matched project goals add a
// weighted bonus. The result is clamped to [0,100] and rounded to the
// nearest integer.
func CalculateOverallScore(project ProjectDesign, shannon float64, waterQualityIndex, climateRiskScore int) int {
	base := scoreBase

	biodivScore := math.Min(shannon/shannonFullScale*100, 100)
	base += (biodivScore - scoreBase) * biodiversityWeight

	base += (float64(waterQualityIndex) - scoreBase) * waterQualityWeight

	base -= float64(climateRiskScore) * climateRiskWeight

	var bonus float64
	for _, goal := range project.PrimaryGoals {
		bonus += goalBonusPoints[goal]
	}
	base += bonus * goalBonusWeight

	return int(math.Round(clamp(base, 0, maxScore)))
}

// GenerateInsights recomputes the four sub-metrics for the request and
// applies the independent threshold rules that build the opportunity, risk
// and recommendation lists. Rules append in evaluation order and no
// deduplication is performed.
func GenerateInsights(req AssessmentRequest) Insights {
	env := req.environment()

	sequestration := EstimateSequestration(req.Project, env)
	shannon := ShannonIndex(req.Observations, req.Suitability)
	waterQuality := QualityIndex(req.WaterQuality)
	climateRisk := AssessClimateRisk(req.climate())

	var out Insights

	if req.DiversityIndex != nil && *req.DiversityIndex > insightDiversityThreshold {
		out.Opportunities = append(out.Opportunities,
			"High baseline species diversity supports rapid colonization")
	}
	if sequestration > insightSequestrationThreshold {
		out.Opportunities = append(out.Opportunities,
			fmt.Sprintf("Significant carbon sequestration potential: %.2f tonnes/year", sequestration))
	}
	if waterQuality > insightWaterQualityGood {
		out.Opportunities = append(out.Opportunities,
			"Excellent water quality conditions for marine life establishment")
	}

	if climateRisk.Level == RiskHigh {
		out.Risks = append(out.Risks, "High climate change exposure at this site")
		out.Risks = append(out.Risks, climateRisk.Factors...)
		out.Recommendations = append(out.Recommendations, climateRisk.Recommendations...)
	}

	if waterQuality < insightWaterQualityPoor {
		out.Recommendations = append(out.Recommendations,
			"Consider water quality remediation before deployment")
	}
	if canonicalKey(req.Project.StructureType) == "artificial reef" && len(req.Observations) > 0 {
		out.Recommendations = append(out.Recommendations,
			"Incorporate habitat complexity features to support the observed species assemblage")
	}

	out.Metrics = ImpactMetrics{
		CarbonSequestration: sequestration,
		ShannonDiversity:    shannon,
		WaterQualityIndex:   waterQuality,
		ClimateRisk:         climateRisk.Score,
	}

	return out
}

// Assess runs the full impact assessment: fans out to the leaf models,
// folds their outputs into the composite score, and derives the insight
// report. The call is a single-pass, side-effect-free transformation; ctx
// is used only for logging.
func Assess(ctx context.Context, req AssessmentRequest) ImpactResult {
	log := logging.FromContext(ctx)

	insights := GenerateInsights(req)
	score := CalculateOverallScore(
		req.Project,
		insights.Metrics.ShannonDiversity,
		insights.Metrics.WaterQualityIndex,
		insights.Metrics.ClimateRisk,
	)

	result := ImpactResult{
		ID:              ulid.Make().String(),
		Score:           score,
		Metrics:         insights.Metrics,
		Opportunities:   insights.Opportunities,
		Risks:           insights.Risks,
		Recommendations: insights.Recommendations,
	}

	log.Debug().
		Str("component", "engine").
		Str("operation", "assess").
		Str("assessment_id", result.ID).
		Str("structure_type", req.Project.StructureType).
		Int("score", result.Score).
		Int("observation_count", len(req.Observations)).
		Msg("impact assessment completed")

	return result
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

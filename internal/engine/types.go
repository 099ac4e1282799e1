// Package engine implements the ecological impact calculation engine for
// marine infrastructure projects.
//
// The engine is a family of pure, stateless scoring models (carbon
// sequestration, biodiversity indices, water quality, climate risk, and
// regulatory compliance) composed into a single 0-100 impact score with
// categorized insights. All lookup tables are statically initialized and
// read-only, so concurrent assessments need no locking. The engine performs
// no I/O; callers supply already-resolved environmental data and consume the
// returned value objects.
package engine

// ProjectDesign describes the proposed marine structure. It is owned by the
// caller and never mutated by the engine. Dimensions are in meters.
type ProjectDesign struct {
	// StructureType is the structure category, e.g. "Artificial Reef",
	// "Breakwater", "Seawall". Unknown values resolve through default
	// lookup-table entries rather than failing.
	StructureType string `json:"structure_type" yaml:"structure_type"`

	// HabitatTypes lists the target habitats in priority order. An empty
	// list is treated as a single "default" habitat bucket.
	HabitatTypes []string `json:"habitat_types" yaml:"habitat_types"`

	Length     float64 `json:"length"      yaml:"length"`
	Width      float64 `json:"width"       yaml:"width"`
	Height     float64 `json:"height"      yaml:"height"`
	WaterDepth float64 `json:"water_depth" yaml:"water_depth"`

	// PrimaryGoals is the set of project goals, e.g.
	// "Biodiversity Enhancement", "Carbon Sequestration".
	PrimaryGoals []string `json:"primary_goals" yaml:"primary_goals"`
}

// Volume returns the bounding volume of the structure in cubic meters.
func (p ProjectDesign) Volume() float64 {
	return p.Length * p.Width * p.Height
}

// Footprint returns the seabed footprint of the structure in square meters.
func (p ProjectDesign) Footprint() float64 {
	return p.Length * p.Width
}

// HasGoal reports whether the project's goal set contains goal.
func (p ProjectDesign) HasGoal(goal string) bool {
	for _, g := range p.PrimaryGoals {
		if g == goal {
			return true
		}
	}
	return false
}

// EnvironmentalSnapshot captures ambient ocean conditions at the project
// site, as resolved by the external data layer. Treated as read-only.
type EnvironmentalSnapshot struct {
	// Temperature is the water temperature in °C.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Salinity is in PSU (Practical Salinity Units).
	Salinity float64 `json:"salinity" yaml:"salinity"`

	// NutrientLevel is one of "low", "moderate", "high", "eutrophic".
	// Unrecognized values behave as "moderate".
	NutrientLevel string `json:"nutrient_level" yaml:"nutrient_level"`

	// Depth is the site depth in meters.
	Depth float64 `json:"depth" yaml:"depth"`
}

// DefaultEnvironment returns the neutral snapshot substituted when the data
// layer could not supply one: temperate, fully marine, shallow, moderate
// nutrients. Every growth-modifier factor evaluates to 1.0 for it.
func DefaultEnvironment() EnvironmentalSnapshot {
	return EnvironmentalSnapshot{
		Temperature:   20,
		Salinity:      35,
		NutrientLevel: NutrientModerate,
		Depth:         10,
	}
}

// SpeciesObservation is a single species occurrence record.
type SpeciesObservation struct {
	// ScientificName is the binomial name, "Genus species".
	ScientificName string `json:"scientific_name" yaml:"scientific_name"`

	// Count is the number of individuals observed. Nil means the record
	// carried no count and defaults to 1.
	Count *int `json:"count,omitempty" yaml:"count,omitempty"`

	// HabitatSuitability optionally weights this species' contribution to
	// the Shannon index, in [0,1]. Nil means 1.0.
	HabitatSuitability *float64 `json:"habitat_suitability,omitempty" yaml:"habitat_suitability,omitempty"`
}

// EffectiveCount returns the observation count, defaulting to 1 when absent.
// Negative counts are treated as 0.
func (o SpeciesObservation) EffectiveCount() int {
	if o.Count == nil {
		return 1
	}
	if *o.Count < 0 {
		return 0
	}
	return *o.Count
}

// WaterQualityParameter is one raw water-quality reading. Either Value is
// set (numeric reading, scored against the per-metric threshold table) or
// Status carries a categorical fallback.
type WaterQualityParameter struct {
	// Name is the parameter key, matched case-insensitively
	// ("Dissolved Oxygen", "pH", "Turbidity", "Nitrates", "Phosphates").
	Name string `json:"name" yaml:"name"`

	// Value is the numeric reading. Nil means no numeric reading was
	// available and Status is consulted instead.
	Value *float64 `json:"value,omitempty" yaml:"value,omitempty"`

	// Status is the categorical fallback ("excellent", "good", "fair",
	// "poor"). Unknown statuses score 50.
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

// ExtremeEvents summarizes projected extreme-event frequencies.
type ExtremeEvents struct {
	// HeatwavesAnnual is the projected number of marine heatwaves per year.
	HeatwavesAnnual int `json:"heatwaves_annual" yaml:"heatwaves_annual"`

	// SeaLevelRiseRate is the projected rise rate in mm/yr.
	SeaLevelRiseRate float64 `json:"sea_level_rise_rate" yaml:"sea_level_rise_rate"`
}

// Projections2050 carries mid-century projection deltas.
type Projections2050 struct {
	// Acidification is the projected pH change, typically negative.
	Acidification float64 `json:"acidification" yaml:"acidification"`
}

// ClimateProjection bundles the climate-change projection data for a site.
// The zero value assesses as zero risk.
type ClimateProjection struct {
	// SSTAnomaly is the projected sea surface temperature anomaly in °C.
	SSTAnomaly float64 `json:"sst_anomaly" yaml:"sst_anomaly"`

	ExtremeEvents   ExtremeEvents   `json:"extreme_events"   yaml:"extreme_events"`
	Projections2050 Projections2050 `json:"projections_2050" yaml:"projections_2050"`
}

// RiskLevel buckets a climate risk score.
type RiskLevel string

// Risk level buckets. High applies above 50 points, medium above 25.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ClimateRiskAssessment is the output of the climate risk assessor.
type ClimateRiskAssessment struct {
	// Score is the accumulated risk points, capped at 100.
	Score int `json:"score" yaml:"score"`

	// Level is the bucket derived from Score.
	Level RiskLevel `json:"level" yaml:"level"`

	// Factors lists the triggered risk factor descriptions.
	Factors []string `json:"factors" yaml:"factors"`

	// Recommendations lists mitigations derived from the factors.
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// ComplianceStatus is the resolution of a single regulatory requirement.
type ComplianceStatus string

// Requirement status values. Only StatusCompliant counts toward overall
// compliance; everything else flags follow-up work of increasing weight.
const (
	StatusCompliant          ComplianceStatus = "compliant"
	StatusReviewNeeded       ComplianceStatus = "review_needed"
	StatusAssessmentRequired ComplianceStatus = "assessment_required"
	StatusFullEIARequired    ComplianceStatus = "full_eia_required"
	StatusScreeningRequired  ComplianceStatus = "screening_required"
	StatusPendingReview      ComplianceStatus = "pending_review"
)

// ComplianceAssessment is the evaluated regulatory checklist for a project.
type ComplianceAssessment struct {
	// Jurisdiction is the jurisdiction code the checklist was built for.
	Jurisdiction string `json:"jurisdiction" yaml:"jurisdiction"`

	// Requirements lists the requirement keys in checklist order.
	Requirements []string `json:"requirements" yaml:"requirements"`

	// Status maps each requirement key to its resolved status.
	Status map[string]ComplianceStatus `json:"status" yaml:"status"`

	// OverallCompliance is StatusCompliant iff every requirement resolved
	// to StatusCompliant, otherwise StatusReviewNeeded.
	OverallCompliance ComplianceStatus `json:"overall_compliance" yaml:"overall_compliance"`
}

// ImpactMetrics holds the four sub-metrics behind a composite score.
type ImpactMetrics struct {
	// CarbonSequestration is the estimated sequestration in tonnes/year.
	CarbonSequestration float64 `json:"carbonSequestration" yaml:"carbonSequestration"`

	// ShannonDiversity is the Shannon diversity index of the observed
	// community.
	ShannonDiversity float64 `json:"shannonDiversity" yaml:"shannonDiversity"`

	// WaterQualityIndex is the 0-100 water quality index.
	WaterQualityIndex int `json:"waterQualityIndex" yaml:"waterQualityIndex"`

	// ClimateRisk is the 0-100 climate risk score.
	ClimateRisk int `json:"climateRisk" yaml:"climateRisk"`
}

// ImpactResult is the composite assessment returned to callers.
type ImpactResult struct {
	// ID is a ULID identifying this assessment run.
	ID string `json:"id" yaml:"id"`

	// Score is the composite impact score, clamped to [0,100].
	Score int `json:"score" yaml:"score"`

	// Metrics holds the sub-metrics that produced Score.
	Metrics ImpactMetrics `json:"metrics" yaml:"metrics"`

	// Opportunities, Risks and Recommendations are ordered, human-readable
	// insight lists. Duplicate triggers produce duplicate strings.
	Opportunities   []string `json:"opportunities"   yaml:"opportunities"`
	Risks           []string `json:"risks"           yaml:"risks"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

package engine

// Nutrient level categories recognized by the growth modifier. Unrecognized
// values behave as NutrientModerate.
const (
	NutrientLow       = "low"
	NutrientModerate  = "moderate"
	NutrientHigh      = "high"
	NutrientEutrophic = "eutrophic"
)

// Growth modifier factors. Each factor is multiplicative and never negative;
// the overall modifier is the product of the four.
const (
	// Temperature factors (°C). Most colonizing species grow fastest in
	// the 16-26 band; cold water and thermal stress both suppress growth.
	tempFactorCold     = 0.3 // below 12
	tempFactorCool     = 0.6 // below 16
	tempFactorOptimal  = 1.0 // up to 26
	tempFactorWarm     = 0.7 // up to 30
	tempFactorStressed = 0.4 // above 30

	// Salinity factors (PSU). Brackish and hypersaline water both reduce
	// growth of fully marine communities.
	salinityFactorBrackish    = 0.5 // below 30
	salinityFactorHypersaline = 0.6 // above 42
	salinityFactorMarine      = 1.0

	// Depth factors (m), evaluated deepest-first so the most restrictive
	// band wins. Light attenuation dominates below 20 m.
	depthFactorAphotic = 0.1 // deeper than 60
	depthFactorDeep    = 0.4 // deeper than 40
	depthFactorMid     = 0.7 // deeper than 20
	depthFactorPhotic  = 1.0

	// Nutrient factors. High nutrients boost growth; eutrophic water
	// suppresses it through algal competition and hypoxia.
	nutrientFactorLow       = 0.7
	nutrientFactorModerate  = 1.0
	nutrientFactorHigh      = 1.3
	nutrientFactorEutrophic = 0.8
)

// defaultBiomassDensity is the global fallback biomass accumulation rate in
// kgC/m²/yr, used when neither habitat nor structure is recognized.
const defaultBiomassDensity = 5.5

// sequestrationAreaFactor converts the per-habitat product
// density × modifier × complexity × footprint into tonnes of carbon per
// year.
const sequestrationAreaFactor = 0.1

// Climate risk points. Conditions are independent and cumulative; the total
// is capped at maxScore.
const (
	riskPointsSevereThermal   = 30 // SST anomaly above 2.0 °C
	riskPointsModerateThermal = 15 // SST anomaly above 1.0 °C
	riskPointsRapidSLR        = 25 // sea level rise above 5.0 mm/yr
	riskPointsModerateSLR     = 10 // sea level rise above 3.0 mm/yr
	riskPointsSevereAcidif    = 20 // pH change below -0.3
	riskPointsModerateAcidif  = 10 // pH change below -0.1
	riskPointsHeatwaves       = 15 // more than 4 heatwaves/yr

	riskLevelHighThreshold   = 50
	riskLevelMediumThreshold = 25
)

// Composite score weights. The composite starts from a neutral base and is
// pushed up or down by each sub-metric's distance from that base.
const (
	scoreBase = 70.0

	// shannonFullScale is the Shannon index treated as a 100% biodiversity
	// sub-score; marine communities rarely exceed H = 3.
	shannonFullScale = 3.0

	biodiversityWeight = 0.30
	waterQualityWeight = 0.25
	climateRiskWeight  = 0.20
	goalBonusWeight    = 0.25

	maxScore = 100
)

// goalBonusPoints are the fixed alignment bonuses per matched project goal,
// summed before applying goalBonusWeight.
//
//nolint:gochecknoglobals // Static read-only lookup table.
var goalBonusPoints = map[string]float64{
	"Biodiversity Enhancement": 10,
	"Carbon Sequestration":     5,
	"Fish Habitat Creation":    8,
	"Coral Restoration":        12,
}

// Insight rule thresholds. The diversity threshold applies to the surveyed
// baseline diversity index supplied by the data layer, which is on a
// different scale than the computed Shannon index; the two are distinct
// inputs.
const (
	insightDiversityThreshold     = 7.0
	insightSequestrationThreshold = 50.0
	insightWaterQualityGood       = 80
	insightWaterQualityPoor       = 60
)

// functionalGroupCount is the number of predefined functional groups the
// functional diversity metric is normalized against.
const functionalGroupCount = 6

package engine

import (
	"math"
	"strings"
)

// biomassDensityTable maps habitat type → structure type → biomass
// accumulation rate in kgC/m²/yr. Keys are lowercase; lookups normalize
// through canonicalKey. Every habitat carries a "default" structure entry,
// and the "default" habitat carries the global fallback, so the lookup never
// fails for unknown enum values.
//
//nolint:gochecknoglobals // Static read-only lookup table.
var biomassDensityTable = map[string]map[string]float64{
	"kelp/algae forests": {
		"artificial reef": 18.4,
		"breakwater":      15.2,
		"seawall":         9.6,
		"pier":            11.8,
		"default":         12.5,
	},
	"coral reefs": {
		"artificial reef": 22.6,
		"breakwater":      13.4,
		"seawall":         7.2,
		"pier":            9.5,
		"default":         14.0,
	},
	"seagrass meadows": {
		"artificial reef": 10.2,
		"breakwater":      8.4,
		"seawall":         5.1,
		"pier":            6.3,
		"default":         7.5,
	},
	"oyster reefs": {
		"artificial reef": 16.8,
		"breakwater":      14.6,
		"seawall":         10.2,
		"pier":            11.1,
		"default":         12.0,
	},
	"rocky intertidal": {
		"artificial reef": 9.4,
		"breakwater":      8.8,
		"seawall":         6.5,
		"pier":            5.9,
		"default":         7.0,
	},
	"default": {
		"default": defaultBiomassDensity,
	},
}

// surfaceComplexityMultipliers scale the geometric complexity ratio per
// structure type. Artificial reefs are designed for texture; seawalls are
// comparatively flat.
//
//nolint:gochecknoglobals // Static read-only lookup table.
var surfaceComplexityMultipliers = map[string]float64{
	"artificial reef": 2.3,
	"breakwater":      1.4,
	"pier":            1.1,
	"seawall":         0.8,
}

// canonicalKey normalizes a lookup-table key: trimmed and lowercased.
func canonicalKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BiomassDensity returns the biomass accumulation rate in kgC/m²/yr for a
// habitat/structure pair. Missing structures fall back to the habitat's
// default entry; missing habitats fall back to the global default.
func BiomassDensity(habitatType, structureType string) float64 {
	structures, ok := biomassDensityTable[canonicalKey(habitatType)]
	if !ok {
		structures = biomassDensityTable["default"]
	}
	if density, ok := structures[canonicalKey(structureType)]; ok {
		return density
	}
	if density, ok := structures["default"]; ok {
		return density
	}
	return defaultBiomassDensity
}

// GrowthModifier computes the multiplicative environmental growth factor
// from ambient conditions: the product of independent temperature, salinity,
// depth and nutrient factors. The result is always positive.
func GrowthModifier(env EnvironmentalSnapshot) float64 {
	return temperatureFactor(env.Temperature) *
		salinityFactor(env.Salinity) *
		depthFactor(env.Depth) *
		nutrientFactor(env.NutrientLevel)
}

func temperatureFactor(temp float64) float64 {
	switch {
	case temp < 12:
		return tempFactorCold
	case temp < 16:
		return tempFactorCool
	case temp <= 26:
		return tempFactorOptimal
	case temp <= 30:
		return tempFactorWarm
	default:
		return tempFactorStressed
	}
}

func salinityFactor(salinity float64) float64 {
	switch {
	case salinity < 30:
		return salinityFactorBrackish
	case salinity > 42:
		return salinityFactorHypersaline
	default:
		return salinityFactorMarine
	}
}

// depthFactor evaluates deepest-first so the most restrictive band wins.
func depthFactor(depth float64) float64 {
	switch {
	case depth > 60:
		return depthFactorAphotic
	case depth > 40:
		return depthFactorDeep
	case depth > 20:
		return depthFactorMid
	default:
		return depthFactorPhotic
	}
}

func nutrientFactor(level string) float64 {
	switch canonicalKey(level) {
	case NutrientLow:
		return nutrientFactorLow
	case NutrientHigh:
		return nutrientFactorHigh
	case NutrientEutrophic:
		return nutrientFactorEutrophic
	case NutrientModerate:
		return nutrientFactorModerate
	default:
		return nutrientFactorModerate
	}
}

// SurfaceComplexity computes the surface-area-to-volume complexity factor
// for a structure. A zero volume (any missing dimension) returns 1.0 to
// avoid division by zero; otherwise the surface area is divided by
// volume^(2/3) and scaled by the structure-type multiplier.
func SurfaceComplexity(structureType string, length, width, height float64) float64 {
	volume := length * width * height
	if volume == 0 {
		return 1.0
	}

	surfaceArea := 2 * (length*width + length*height + width*height)
	complexity := surfaceArea / math.Pow(volume, 2.0/3.0)

	multiplier := 1.0
	if m, ok := surfaceComplexityMultipliers[canonicalKey(structureType)]; ok {
		multiplier = m
	}

	return complexity * multiplier
}

// EstimateSequestration estimates the annual carbon sequestration potential
// of a project in tonnes/year, rounded to 2 decimals. Each habitat type
// contributes density × modifier × complexity × footprint, scaled to tonnes;
// an empty habitat list is treated as a single default bucket. Zero or
// missing dimensions yield a zero contribution rather than an error.
func EstimateSequestration(project ProjectDesign, env EnvironmentalSnapshot) float64 {
	habitats := project.HabitatTypes
	if len(habitats) == 0 {
		habitats = []string{"default"}
	}

	modifier := GrowthModifier(env)
	complexity := SurfaceComplexity(project.StructureType, project.Length, project.Width, project.Height)
	footprint := project.Footprint()

	var sequestration float64
	for _, habitat := range habitats {
		density := BiomassDensity(habitat, project.StructureType)
		sequestration += density * modifier * complexity * footprint * sequestrationAreaFactor
	}

	return round2(sequestration)
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

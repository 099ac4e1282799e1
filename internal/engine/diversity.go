package engine

import (
	"math"
	"strings"
)

// functionalGroups maps each ecological functional group to the genera that
// represent it. Matching is by substring containment on the lowercased genus
// token, which tolerates subgenus qualifiers and minor spelling variants in
// occurrence records.
//
//nolint:gochecknoglobals // Static read-only lookup table.
var functionalGroups = map[string][]string{
	"filter feeders": {
		"mytilus", "ostrea", "crassostrea", "balanus", "sabella", "spirobranchus",
	},
	"grazers": {
		"patella", "littorina", "paracentrotus", "haliotis", "chiton", "gibbula",
	},
	"predators": {
		"carcinus", "octopus", "nucella", "epinephelus", "pisaster", "asterias",
	},
	"primary producers": {
		"ulva", "laminaria", "fucus", "sargassum", "posidonia", "zostera", "cystoseira",
	},
	"detritivores": {
		"holothuria", "arenicola", "nereis", "capitella", "hediste",
	},
	"planktivores": {
		"sardina", "engraulis", "atherina", "chromis", "sprattus",
	},
}

// ShannonIndex computes the Shannon diversity index H = -Σ p·ln(p) over the
// observed community, rounded to 2 decimals. Each species' proportion may be
// weighted by a habitat-suitability factor: an entry in suitability (keyed
// by scientific name) takes precedence, then the observation's own
// HabitatSuitability, then 1.0. Empty input returns 0.
func ShannonIndex(observations []SpeciesObservation, suitability map[string]float64) float64 {
	total := totalCount(observations)
	if total == 0 {
		return 0
	}

	var h float64
	for _, obs := range observations {
		p := float64(obs.EffectiveCount()) / float64(total)
		p *= suitabilityWeight(obs, suitability)
		if p > 0 {
			h -= p * math.Log(p)
		}
	}

	return round2(h)
}

// SimpsonIndex computes the Simpson diversity index 1 - Σ p², the
// probability that two randomly drawn individuals belong to different
// species, rounded to 2 decimals. Empty input returns 0.
func SimpsonIndex(observations []SpeciesObservation) float64 {
	total := totalCount(observations)
	if total == 0 {
		return 0
	}

	var sum float64
	for _, obs := range observations {
		p := float64(obs.EffectiveCount()) / float64(total)
		sum += p * p
	}

	return round2(1 - sum)
}

// Richness returns the species richness adjusted for sampling effort:
// the observation count scaled by samplingEffort capped at 1.0, rounded to
// the nearest integer. Effort below zero is treated as zero.
func Richness(observations []SpeciesObservation, samplingEffort float64) int {
	effort := math.Min(samplingEffort, 1.0)
	if effort < 0 {
		effort = 0
	}
	return int(math.Round(float64(len(observations)) * effort))
}

// FunctionalDiversity returns the fraction of the six predefined functional
// groups represented in the observed community, rounded to 2 decimals. The
// genus (first token of the scientific name) is matched against each group's
// genus list by substring containment. Empty input returns 0.
func FunctionalDiversity(observations []SpeciesObservation) float64 {
	if len(observations) == 0 {
		return 0
	}

	present := make(map[string]bool, len(functionalGroups))
	for _, obs := range observations {
		genus := genusOf(obs.ScientificName)
		if genus == "" {
			continue
		}
		for group, genera := range functionalGroups {
			if present[group] {
				continue
			}
			for _, g := range genera {
				if strings.Contains(genus, g) || strings.Contains(g, genus) {
					present[group] = true
					break
				}
			}
		}
	}

	return round2(float64(len(present)) / functionalGroupCount)
}

// genusOf extracts the lowercased genus token from a binomial name.
func genusOf(scientificName string) string {
	fields := strings.Fields(strings.TrimSpace(scientificName))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// totalCount sums the effective counts of observations.
func totalCount(observations []SpeciesObservation) int {
	total := 0
	for _, obs := range observations {
		total += obs.EffectiveCount()
	}
	return total
}

// suitabilityWeight resolves the Shannon weighting for one observation.
func suitabilityWeight(obs SpeciesObservation, suitability map[string]float64) float64 {
	if w, ok := suitability[obs.ScientificName]; ok {
		return w
	}
	if obs.HabitatSuitability != nil {
		return *obs.HabitatSuitability
	}
	return 1.0
}

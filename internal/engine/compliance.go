package engine

// Project categories for regulatory purposes.
const (
	CategoryMarine  = "Marine"
	CategoryCoastal = "Coastal"
)

// eiaVolumeThreshold is the structure volume in m³ above which a full
// environmental impact assessment is required instead of screening.
const eiaVolumeThreshold = 1000.0

// complianceRequirements maps jurisdiction → project category → the ordered
// checklist of requirement keys. Unknown jurisdictions fall back to
// genericRequirements.
//
//nolint:gochecknoglobals // Static read-only lookup table.
var complianceRequirements = map[string]map[string][]string{
	"EU": {
		CategoryMarine: {
			"eia_required",
			"biodiversity_net_gain",
			"water_framework_compliance",
			"natura_2000_screening",
		},
		CategoryCoastal: {
			"eia_required",
			"coastal_zone_permit",
			"habitats_directive_screening",
		},
	},
	"US": {
		CategoryMarine: {
			"nepa_review",
			"clean_water_act_permit",
			"essential_fish_habitat_consultation",
		},
		CategoryCoastal: {
			"coastal_zone_consistency",
			"clean_water_act_permit",
			"public_trust_review",
		},
	},
	"UK": {
		CategoryMarine: {
			"marine_licence",
			"eia_required",
			"biodiversity_net_gain",
		},
		CategoryCoastal: {
			"marine_licence",
			"coastal_protection_consent",
		},
	},
	"AU": {
		CategoryMarine: {
			"epbc_referral",
			"eia_required",
			"sea_dumping_permit",
		},
		CategoryCoastal: {
			"epbc_referral",
			"coastal_management_approval",
		},
	},
}

// genericRequirements is the fallback checklist for unknown jurisdictions.
//
//nolint:gochecknoglobals // Static read-only lookup table.
var genericRequirements = []string{"environmental_permit"}

// marineStructures and coastalStructures bucket known structure types for
// CategorizeProject. Anything unlisted defaults to Marine.
//
//nolint:gochecknoglobals // Static read-only lookup tables.
var (
	marineStructures = map[string]bool{
		"artificial reef":   true,
		"breakwater":        true,
		"offshore platform": true,
	}
	coastalStructures = map[string]bool{
		"seawall":            true,
		"jetty":              true,
		"pier":               true,
		"coastal protection": true,
	}
)

// CategorizeProject buckets a structure type into a regulatory project
// category. Unknown structure types default to Marine, the stricter bucket.
func CategorizeProject(structureType string) string {
	key := canonicalKey(structureType)
	switch {
	case marineStructures[key]:
		return CategoryMarine
	case coastalStructures[key]:
		return CategoryCoastal
	default:
		return CategoryMarine
	}
}

// RequiredChecklist resolves the ordered regulatory requirement keys for a
// jurisdiction and structure type. Unknown jurisdictions yield the generic
// checklist rather than failing.
func RequiredChecklist(jurisdiction, structureType string) []string {
	categories, ok := complianceRequirements[jurisdiction]
	if !ok {
		out := make([]string, len(genericRequirements))
		copy(out, genericRequirements)
		return out
	}

	reqs := categories[CategorizeProject(structureType)]
	out := make([]string, len(reqs))
	copy(out, reqs)
	return out
}

// AssessCompliance evaluates each requirement on the jurisdiction's
// checklist against the project's attributes. Requirements without a
// specific heuristic resolve to pending_review. OverallCompliance is
// compliant iff every requirement resolved compliant.
func AssessCompliance(project ProjectDesign, jurisdiction string) ComplianceAssessment {
	requirements := RequiredChecklist(jurisdiction, project.StructureType)

	status := make(map[string]ComplianceStatus, len(requirements))
	for _, req := range requirements {
		status[req] = requirementStatus(req, project)
	}

	overall := StatusCompliant
	for _, s := range status {
		if s != StatusCompliant {
			overall = StatusReviewNeeded
			break
		}
	}

	return ComplianceAssessment{
		Jurisdiction:      jurisdiction,
		Requirements:      requirements,
		Status:            status,
		OverallCompliance: overall,
	}
}

// requirementStatus applies the per-requirement heuristic.
func requirementStatus(requirement string, project ProjectDesign) ComplianceStatus {
	switch requirement {
	case "biodiversity_net_gain":
		if project.HasGoal("Biodiversity Enhancement") {
			return StatusCompliant
		}
		return StatusReviewNeeded
	case "eia_required":
		if project.Volume() > eiaVolumeThreshold {
			return StatusFullEIARequired
		}
		return StatusScreeningRequired
	case "water_framework_compliance":
		if project.HasGoal("Water Quality Improvement") {
			return StatusCompliant
		}
		return StatusAssessmentRequired
	case "essential_fish_habitat_consultation":
		if project.HasGoal("Fish Habitat Creation") {
			return StatusCompliant
		}
		return StatusReviewNeeded
	default:
		return StatusPendingReview
	}
}

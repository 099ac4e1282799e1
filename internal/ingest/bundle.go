// Package ingest parses assessment bundles: the already-resolved project
// and environmental datasets the engine consumes. Bundles are plain JSON or
// YAML files produced by the upstream data layer; the engine itself never
// performs I/O.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/AviL26/project-insights-sub001/internal/engine"
	"github.com/AviL26/project-insights-sub001/internal/logging"
)

// SupportedSchemaVersion is the bundle schema major version this build
// understands. Bundles declaring a different major version are rejected.
const SupportedSchemaVersion = "1.0.0"

// constError is an immutable sentinel error type.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is().
var (
	// ErrUnsupportedSchema indicates the bundle's schema_version is not
	// compatible with SupportedSchemaVersion.
	ErrUnsupportedSchema = constError("unsupported bundle schema version")

	// ErrInvalidSchemaVersion indicates schema_version is not a parseable
	// semantic version.
	ErrInvalidSchemaVersion = constError("invalid bundle schema version")

	// ErrMissingProject indicates the bundle has no project section.
	ErrMissingProject = constError("bundle has no project section")
)

// Bundle is one assessment input file. Every section except Project is
// optional; missing sections load as nil and the engine substitutes neutral
// defaults.
type Bundle struct {
	// SchemaVersion declares the bundle format version. Empty is accepted
	// and treated as the supported version.
	SchemaVersion string `json:"schema_version" yaml:"schema_version"`

	// Jurisdiction is the regulatory jurisdiction code for compliance
	// checks ("EU", "US", "UK", "AU"). Optional.
	Jurisdiction string `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`

	Project      *engine.ProjectDesign          `json:"project" yaml:"project"`
	Environment  *engine.EnvironmentalSnapshot  `json:"environment,omitempty" yaml:"environment,omitempty"`
	Species      []engine.SpeciesObservation    `json:"species,omitempty" yaml:"species,omitempty"`
	WaterQuality []engine.WaterQualityParameter `json:"water_quality,omitempty" yaml:"water_quality,omitempty"`
	Climate      *engine.ClimateProjection      `json:"climate,omitempty" yaml:"climate,omitempty"`

	// Suitability maps scientific names to habitat-suitability weights for
	// the Shannon index.
	Suitability map[string]float64 `json:"suitability,omitempty" yaml:"suitability,omitempty"`

	// DiversityIndex is the surveyed baseline diversity index reported by
	// the occurrence data source (distinct from the computed Shannon
	// index).
	DiversityIndex *float64 `json:"diversity_index,omitempty" yaml:"diversity_index,omitempty"`
}

// Request converts the bundle into an engine assessment request.
func (b *Bundle) Request() engine.AssessmentRequest {
	var project engine.ProjectDesign
	if b.Project != nil {
		project = *b.Project
	}

	return engine.AssessmentRequest{
		Project:        project,
		Environment:    b.Environment,
		Observations:   b.Species,
		Suitability:    b.Suitability,
		WaterQuality:   b.WaterQuality,
		Climate:        b.Climate,
		DiversityIndex: b.DiversityIndex,
	}
}

// Load reads and parses a bundle file. The format is chosen by extension:
// .yaml/.yml parse as YAML, everything else as JSON.
func Load(ctx context.Context, path string) (*Bundle, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the CLI user.
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}

	log.Debug().
		Str("component", "ingest").
		Str("operation", "load_bundle").
		Str("path", path).
		Int("data_size_bytes", len(data)).
		Msg("loading assessment bundle")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(ctx, data)
	default:
		return ParseJSON(ctx, data)
	}
}

// ParseJSON parses a JSON bundle document.
func ParseJSON(ctx context.Context, data []byte) (*Bundle, error) {
	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing bundle JSON: %w", err)
	}
	return validate(ctx, &bundle)
}

// ParseYAML parses a YAML bundle document.
func ParseYAML(ctx context.Context, data []byte) (*Bundle, error) {
	var bundle Bundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing bundle YAML: %w", err)
	}
	return validate(ctx, &bundle)
}

// validate enforces the schema-version gate and the presence of a project
// section. All other sections are optional.
func validate(ctx context.Context, bundle *Bundle) (*Bundle, error) {
	log := logging.FromContext(ctx)

	if err := checkSchemaVersion(bundle.SchemaVersion); err != nil {
		return nil, err
	}

	if bundle.Project == nil {
		return nil, ErrMissingProject
	}

	log.Debug().
		Str("component", "ingest").
		Str("structure_type", bundle.Project.StructureType).
		Int("species_count", len(bundle.Species)).
		Int("water_quality_count", len(bundle.WaterQuality)).
		Bool("has_climate", bundle.Climate != nil).
		Msg("bundle parsed")

	return bundle, nil
}

// checkSchemaVersion verifies the declared version shares the supported
// major version. An empty declaration is accepted for convenience.
func checkSchemaVersion(declared string) error {
	if declared == "" {
		return nil
	}

	v, err := semver.NewVersion(declared)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSchemaVersion, declared)
	}

	supported := semver.MustParse(SupportedSchemaVersion)
	if v.Major() != supported.Major() {
		return fmt.Errorf("%w: bundle declares %s, this build supports %s",
			ErrUnsupportedSchema, declared, SupportedSchemaVersion)
	}

	return nil
}

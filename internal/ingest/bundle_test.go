package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonBundle = `{
  "schema_version": "1.0.0",
  "jurisdiction": "EU",
  "project": {
    "structure_type": "Breakwater",
    "habitat_types": ["Kelp/Algae Forests"],
    "length": 10,
    "width": 5,
    "height": 3,
    "water_depth": 10,
    "primary_goals": ["Carbon Sequestration"]
  },
  "environment": {
    "temperature": 22,
    "salinity": 38,
    "nutrient_level": "moderate",
    "depth": 10
  },
  "species": [
    {"scientific_name": "Mytilus galloprovincialis", "count": 40},
    {"scientific_name": "Patella caerulea"}
  ],
  "water_quality": [
    {"name": "pH", "value": 8.0},
    {"name": "Chlorophyll-a", "status": "good"}
  ],
  "climate": {
    "sst_anomaly": 1.5,
    "extreme_events": {"heatwaves_annual": 2, "sea_level_rise_rate": 2.0},
    "projections_2050": {"acidification": -0.05}
  }
}`

const yamlBundle = `schema_version: 1.0.0
jurisdiction: US
project:
  structure_type: Artificial Reef
  habitat_types:
    - Coral Reefs
  length: 20
  width: 10
  height: 4
  primary_goals:
    - Coral Restoration
species:
  - scientific_name: Chromis chromis
    count: 12
    habitat_suitability: 0.8
diversity_index: 8.4
`

func TestParseJSON(t *testing.T) {
	ctx := context.Background()

	bundle, err := ParseJSON(ctx, []byte(jsonBundle))
	require.NoError(t, err)

	assert.Equal(t, "EU", bundle.Jurisdiction)
	require.NotNil(t, bundle.Project)
	assert.Equal(t, "Breakwater", bundle.Project.StructureType)
	assert.InDelta(t, 10.0, bundle.Project.Length, 1e-9)

	require.Len(t, bundle.Species, 2)
	require.NotNil(t, bundle.Species[0].Count)
	assert.Equal(t, 40, *bundle.Species[0].Count)
	assert.Nil(t, bundle.Species[1].Count) // absent count stays nil for the engine default

	require.Len(t, bundle.WaterQuality, 2)
	require.NotNil(t, bundle.WaterQuality[0].Value)
	assert.InDelta(t, 8.0, *bundle.WaterQuality[0].Value, 1e-9)
	assert.Nil(t, bundle.WaterQuality[1].Value)
	assert.Equal(t, "good", bundle.WaterQuality[1].Status)

	require.NotNil(t, bundle.Climate)
	assert.InDelta(t, 1.5, bundle.Climate.SSTAnomaly, 1e-9)
	assert.Equal(t, 2, bundle.Climate.ExtremeEvents.HeatwavesAnnual)
}

func TestParseYAML(t *testing.T) {
	ctx := context.Background()

	bundle, err := ParseYAML(ctx, []byte(yamlBundle))
	require.NoError(t, err)

	require.NotNil(t, bundle.Project)
	assert.Equal(t, "Artificial Reef", bundle.Project.StructureType)
	require.Len(t, bundle.Species, 1)
	require.NotNil(t, bundle.Species[0].HabitatSuitability)
	assert.InDelta(t, 0.8, *bundle.Species[0].HabitatSuitability, 1e-9)
	require.NotNil(t, bundle.DiversityIndex)
	assert.InDelta(t, 8.4, *bundle.DiversityIndex, 1e-9)
	assert.Nil(t, bundle.Environment)
	assert.Nil(t, bundle.Climate)
}

func TestParseErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		data    string
		errWant error
	}{
		{
			name:    "missing project",
			data:    `{"schema_version": "1.0.0"}`,
			errWant: ErrMissingProject,
		},
		{
			name:    "wrong schema major version",
			data:    `{"schema_version": "2.0.0", "project": {"structure_type": "Pier"}}`,
			errWant: ErrUnsupportedSchema,
		},
		{
			name:    "unparseable schema version",
			data:    `{"schema_version": "latest", "project": {"structure_type": "Pier"}}`,
			errWant: ErrInvalidSchemaVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON(ctx, []byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.errWant)
		})
	}

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := ParseJSON(ctx, []byte("{not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing bundle JSON")
	})

	t.Run("empty schema version is accepted", func(t *testing.T) {
		_, err := ParseJSON(ctx, []byte(`{"project": {"structure_type": "Pier"}}`))
		assert.NoError(t, err)
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("json by extension", func(t *testing.T) {
		path := filepath.Join(dir, "bundle.json")
		require.NoError(t, os.WriteFile(path, []byte(jsonBundle), 0600))

		bundle, err := Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "Breakwater", bundle.Project.StructureType)
	})

	t.Run("yaml by extension", func(t *testing.T) {
		path := filepath.Join(dir, "bundle.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yamlBundle), 0600))

		bundle, err := Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "Artificial Reef", bundle.Project.StructureType)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(ctx, filepath.Join(dir, "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading bundle")
	})
}

func TestBundleRequest(t *testing.T) {
	ctx := context.Background()

	bundle, err := ParseJSON(ctx, []byte(jsonBundle))
	require.NoError(t, err)

	req := bundle.Request()
	assert.Equal(t, "Breakwater", req.Project.StructureType)
	assert.Len(t, req.Observations, 2)
	assert.NotNil(t, req.Environment)
	assert.NotNil(t, req.Climate)
}

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBundle = `{
  "schema_version": "1.0.0",
  "jurisdiction": "EU",
  "project": {
    "structure_type": "Breakwater",
    "habitat_types": ["Kelp/Algae Forests"],
    "length": 10,
    "width": 5,
    "height": 3,
    "primary_goals": ["Carbon Sequestration", "Biodiversity Enhancement"]
  },
  "environment": {"temperature": 22, "salinity": 38, "nutrient_level": "moderate", "depth": 10},
  "species": [
    {"scientific_name": "Mytilus galloprovincialis", "count": 40},
    {"scientific_name": "Patella caerulea", "count": 25}
  ],
  "water_quality": [{"name": "pH", "value": 8.0}, {"name": "Turbidity", "value": 1.0}]
}`

// writeTestBundle writes the standard test bundle and returns its path.
func writeTestBundle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(testBundle), 0600))
	return path
}

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestAssessCommand(t *testing.T) {
	path := writeTestBundle(t)

	t.Run("table output", func(t *testing.T) {
		out, err := executeCommand(t, "assess", "--bundle", path)
		require.NoError(t, err)
		assert.Contains(t, out, "ECOLOGICAL IMPACT ASSESSMENT")
		assert.Contains(t, out, "Water quality index")
		assert.Contains(t, out, "100/100")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := executeCommand(t, "assess", "--bundle", path, "--output", "json")
		require.NoError(t, err)

		var records []AssessmentRecord
		require.NoError(t, json.Unmarshal([]byte(out), &records))
		require.Len(t, records, 1)
		assert.Equal(t, path, records[0].Source)
		assert.Equal(t, 100, records[0].Result.Metrics.WaterQualityIndex)
		assert.GreaterOrEqual(t, records[0].Result.Score, 0)
		assert.LessOrEqual(t, records[0].Result.Score, 100)
	})

	t.Run("multiple bundles preserve order", func(t *testing.T) {
		second := filepath.Join(t.TempDir(), "second.json")
		require.NoError(t, os.WriteFile(second, []byte(testBundle), 0600))

		out, err := executeCommand(t, "assess", "--bundle", path, "--bundle", second, "--output", "json")
		require.NoError(t, err)

		var records []AssessmentRecord
		require.NoError(t, json.Unmarshal([]byte(out), &records))
		require.Len(t, records, 2)
		assert.Equal(t, path, records[0].Source)
		assert.Equal(t, second, records[1].Source)
		// Identical bundles produce identical scores.
		assert.Equal(t, records[0].Result.Score, records[1].Result.Score)
	})

	t.Run("missing bundle flag errors", func(t *testing.T) {
		_, err := executeCommand(t, "assess")
		assert.Error(t, err)
	})

	t.Run("configured output format applies when flag unset", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0600))

		out, err := executeCommand(t, "assess", "--bundle", path, "--config", cfgPath)
		require.NoError(t, err)

		var records []AssessmentRecord
		require.NoError(t, json.Unmarshal([]byte(out), &records))
		require.Len(t, records, 1)
	})

	t.Run("output flag overrides configured format", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0600))

		out, err := executeCommand(t, "assess", "--bundle", path, "--config", cfgPath, "--output", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "ECOLOGICAL IMPACT ASSESSMENT")
	})

	t.Run("unknown configured format errors", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: xml\n"), 0600))

		_, err := executeCommand(t, "assess", "--bundle", path, "--config", cfgPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})

	t.Run("unknown output format errors", func(t *testing.T) {
		_, err := executeCommand(t, "assess", "--bundle", path, "--output", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})

	t.Run("unreadable bundle errors with path", func(t *testing.T) {
		_, err := executeCommand(t, "assess", "--bundle", "/does/not/exist.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/does/not/exist.json")
	})

	t.Run("tui refused without a terminal", func(t *testing.T) {
		_, err := executeCommand(t, "assess", "--bundle", path, "--tui")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "terminal")
	})
}

func TestComplianceCommand(t *testing.T) {
	path := writeTestBundle(t)

	t.Run("uses bundle jurisdiction", func(t *testing.T) {
		out, err := executeCommand(t, "compliance", "--bundle", path)
		require.NoError(t, err)
		assert.Contains(t, out, "jurisdiction: EU")
		assert.Contains(t, out, "biodiversity_net_gain")
	})

	t.Run("flag overrides bundle jurisdiction", func(t *testing.T) {
		out, err := executeCommand(t, "compliance", "--bundle", path, "--jurisdiction", "US")
		require.NoError(t, err)
		assert.Contains(t, out, "jurisdiction: US")
		assert.Contains(t, out, "nepa_review")
	})

	t.Run("json output parses", func(t *testing.T) {
		out, err := executeCommand(t, "compliance", "--bundle", path, "--output", "json")
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "EU", decoded["jurisdiction"])
	})

	t.Run("missing bundle flag errors", func(t *testing.T) {
		_, err := executeCommand(t, "compliance")
		assert.Error(t, err)
	})

	t.Run("unknown output format errors", func(t *testing.T) {
		_, err := executeCommand(t, "compliance", "--bundle", path, "--output", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})

	t.Run("configured output format applies when flag unset", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0600))

		out, err := executeCommand(t, "compliance", "--bundle", path, "--config", cfgPath)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "EU", decoded["jurisdiction"])
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("help lists subcommands", func(t *testing.T) {
		out, err := executeCommand(t, "--help")
		require.NoError(t, err)
		assert.Contains(t, out, "assess")
		assert.Contains(t, out, "compliance")
	})

	t.Run("debug flag is accepted", func(t *testing.T) {
		path := writeTestBundle(t)
		_, err := executeCommand(t, "assess", "--bundle", path, "--debug")
		assert.NoError(t, err)
	})
}

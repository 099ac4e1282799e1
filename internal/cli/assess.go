package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AviL26/project-insights-sub001/internal/engine"
	"github.com/AviL26/project-insights-sub001/internal/ingest"
	"github.com/AviL26/project-insights-sub001/internal/logging"
	"github.com/AviL26/project-insights-sub001/internal/tui"
)

// assessParams holds the flag values for the assess command.
type assessParams struct {
	bundles []string
	output  string
	useTUI  bool
}

// AssessmentRecord pairs an impact result with the bundle it came from.
type AssessmentRecord struct {
	Source string              `json:"source"`
	Result engine.ImpactResult `json:"result"`
}

// NewAssessCmd creates the "assess" subcommand. It loads one or more
// assessment bundles, runs the impact engine over each, and renders the
// results as a styled report, JSON, or an interactive browser.
func NewAssessCmd() *cobra.Command {
	var params assessParams

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Compute the ecological impact score for project bundles",
		Long: `Compute a composite 0-100 ecological impact score for each bundle:
carbon sequestration, biodiversity, water quality and climate risk,
with categorized opportunities, risks and recommendations.`,
		Example: assessExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeAssess(cmd, params)
		},
	}

	cmd.Flags().StringArrayVar(&params.bundles, "bundle", nil,
		"Path to an assessment bundle (JSON or YAML); repeatable")
	cmd.Flags().StringVar(&params.output, "output", "",
		"Output format: table or json (default from config)")
	cmd.Flags().BoolVar(&params.useTUI, "tui", false,
		"Browse results interactively")
	_ = cmd.MarkFlagRequired("bundle")

	return cmd
}

const assessExample = `  # Single site
  ecoimpact assess --bundle reef.yaml

  # Compare candidate sites, machine-readable
  ecoimpact assess --bundle north.json --bundle south.json --output json

  # Interactive browser
  ecoimpact assess --bundle reef.yaml --tui`

// executeAssess runs the assessment for every bundle and renders the
// results. Bundles are independent, so they are assessed concurrently with
// a CPU-bounded worker group; output order follows flag order.
func executeAssess(cmd *cobra.Command, params assessParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	output, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}

	log.Info().
		Str("operation", "assess").
		Int("bundle_count", len(params.bundles)).
		Str("output", output).
		Msg("starting assessment")

	records, err := assessBundles(ctx, params.bundles)
	if err != nil {
		return err
	}

	switch {
	case params.useTUI:
		return runReportTUI(records)
	case output == "json":
		return renderJSON(cmd, records)
	default:
		for _, rec := range records {
			RenderReport(cmd.OutOrStdout(), rec.Source, rec.Result)
		}
		return nil
	}
}

// assessBundles loads and assesses each bundle concurrently, preserving
// input order in the returned slice.
func assessBundles(ctx context.Context, paths []string) ([]AssessmentRecord, error) {
	records := make([]AssessmentRecord, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			bundle, err := ingest.Load(gctx, path)
			if err != nil {
				return fmt.Errorf("bundle %s: %w", path, err)
			}

			records[i] = AssessmentRecord{
				Source: path,
				Result: engine.Assess(gctx, bundle.Request()),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// renderJSON writes the records as an indented JSON array.
func renderJSON(cmd *cobra.Command, records []AssessmentRecord) error {
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

// runReportTUI launches the interactive result browser.
func runReportTUI(records []AssessmentRecord) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("--tui requires an interactive terminal")
	}

	items := make([]tui.ReportItem, len(records))
	for i, rec := range records {
		items[i] = tui.ReportItem{Source: rec.Source, Result: rec.Result}
	}

	model := tui.NewReportModel(items)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

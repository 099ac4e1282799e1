package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AviL26/project-insights-sub001/internal/config"
	"github.com/AviL26/project-insights-sub001/internal/engine"
	"github.com/AviL26/project-insights-sub001/internal/ingest"
	"github.com/AviL26/project-insights-sub001/internal/logging"
)

// complianceParams holds the flag values for the compliance command.
type complianceParams struct {
	bundle       string
	jurisdiction string
	output       string
}

// NewComplianceCmd creates the "compliance" subcommand. It resolves the
// regulatory checklist for the bundle's project and jurisdiction and
// evaluates each requirement against the project attributes.
func NewComplianceCmd() *cobra.Command {
	var params complianceParams

	cmd := &cobra.Command{
		Use:   "compliance",
		Short: "Evaluate the regulatory compliance checklist for a project",
		Example: `  # Use the bundle's declared jurisdiction
  ecoimpact compliance --bundle reef.yaml

  # Override the jurisdiction
  ecoimpact compliance --bundle reef.yaml --jurisdiction US`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCompliance(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.bundle, "bundle", "", "Path to an assessment bundle (JSON or YAML)")
	cmd.Flags().StringVar(&params.jurisdiction, "jurisdiction", "",
		"Jurisdiction code (EU, US, UK, AU); overrides the bundle")
	cmd.Flags().StringVar(&params.output, "output", "",
		"Output format: table or json (default from config)")
	_ = cmd.MarkFlagRequired("bundle")

	return cmd
}

// executeCompliance runs the checklist evaluation for the compliance
// command. Jurisdiction resolution order: flag, bundle, configured default.
func executeCompliance(cmd *cobra.Command, params complianceParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	output, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}

	bundle, err := ingest.Load(ctx, params.bundle)
	if err != nil {
		return fmt.Errorf("bundle %s: %w", params.bundle, err)
	}

	jurisdiction := params.jurisdiction
	if jurisdiction == "" {
		jurisdiction = bundle.Jurisdiction
	}
	if jurisdiction == "" {
		jurisdiction = config.GetDefaultJurisdiction()
	}

	log.Info().
		Str("operation", "compliance").
		Str("jurisdiction", jurisdiction).
		Str("structure_type", bundle.Project.StructureType).
		Msg("evaluating compliance checklist")

	assessment := engine.AssessCompliance(*bundle.Project, jurisdiction)

	if output == "json" {
		out, err := json.MarshalIndent(assessment, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding assessment: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	RenderCompliance(cmd.OutOrStdout(), assessment)
	return nil
}

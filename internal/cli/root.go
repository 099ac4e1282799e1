// Package cli implements the ecoimpact command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AviL26/project-insights-sub001/internal/config"
	"github.com/AviL26/project-insights-sub001/internal/logging"
)

// logger is the package-level logger for CLI operations.
//
//nolint:gochecknoglobals // Required for zerolog context integration.
var logger zerolog.Logger

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveOutputFormat resolves the effective output format for a command:
// the --output flag when set, otherwise the configured default. Resolution
// happens at execution time, after PersistentPreRunE has loaded the config
// file.
func resolveOutputFormat(flagValue string) (string, error) {
	output := flagValue
	if output == "" {
		output = config.GetDefaultOutputFormat()
	}

	if output != "table" && output != "json" {
		return "", fmt.Errorf("unknown output format %q (want table or json)", output)
	}
	return output, nil
}

// NewRootCmd creates the root Cobra command for the ecoimpact CLI.
// It wires up configuration loading, logging, and the assess and compliance
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ecoimpact",
		Short:   "Ecological impact assessment for marine infrastructure",
		Long:    "ecoimpact: score the ecological impact of marine infrastructure projects from environmental data bundles",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.DefaultConfigPath()
			}

			cfg := config.New()
			if configPath != "" {
				if err := config.LoadFile(cfg, configPath); err != nil {
					cmd.PrintErrf("Warning: could not load config: %v\n", err)
				}
			}
			config.SetGlobalConfig(cfg)

			return setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default $HOME/.ecoimpact/config.yaml)")
	cmd.AddCommand(NewAssessCmd(), NewComplianceCmd())

	return cmd
}

const rootCmdExample = `  # Assess a project from a bundle file
  ecoimpact assess --bundle reef.yaml

  # Assess several sites and emit JSON
  ecoimpact assess --bundle north.json --bundle south.json --output json

  # Evaluate the regulatory checklist
  ecoimpact compliance --bundle reef.yaml --jurisdiction EU`

// setupLogging configures the logger from config and flags and attaches it,
// with a trace ID, to the command context.
func setupLogging(cmd *cobra.Command) error {
	loggingCfg := config.GetGlobalConfig().Logging

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	base, err := logging.New(loggingCfg.ToLoggingConfig())
	if err != nil {
		cmd.PrintErrf("Warning: logging setup degraded: %v\n", err)
	}
	logger = logging.ComponentLogger(base, "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.With().Str("trace_id", traceID).Logger().WithContext(ctx)
	cmd.SetContext(ctx)

	return nil
}

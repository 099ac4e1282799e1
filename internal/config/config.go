// Package config manages ecoimpact configuration: defaults, the optional
// user config file, and logger initialization.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/AviL26/project-insights-sub001/internal/logging"
)

// configDirName is the per-user configuration directory under $HOME.
const configDirName = ".ecoimpact"

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`

	// File, when set, appends logs to this path in addition to stderr.
	File string `yaml:"file"`
}

// OutputConfig is the output section of the config file.
type OutputConfig struct {
	// Format is the default CLI output format: "table" or "json".
	Format string `yaml:"format"`
}

// AssessmentConfig is the assessment section of the config file.
type AssessmentConfig struct {
	// DefaultJurisdiction is used by compliance checks when a bundle does
	// not declare one and no flag overrides it.
	DefaultJurisdiction string `yaml:"default_jurisdiction"`
}

// Config is the full ecoimpact configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Output     OutputConfig     `yaml:"output"`
	Assessment AssessmentConfig `yaml:"assessment"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Logging:    LoggingConfig{Level: "info", Format: "console"},
		Output:     OutputConfig{Format: "table"},
		Assessment: AssessmentConfig{DefaultJurisdiction: "EU"},
	}
}

// LoadFile overlays the YAML file at path onto cfg. Unknown keys are
// ignored; a missing file is not an error.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // Config path comes from the user's own flags.
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns $HOME/.ecoimpact/config.yaml, or "" when the
// home directory cannot be resolved.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "config.yaml")
}

// globalConfig is the process-wide configuration, guarded for concurrent
// readers during parallel assessments.
//
//nolint:gochecknoglobals // Set once at startup, read everywhere.
var (
	globalConfig   = New()
	globalConfigMu sync.RWMutex
)

// SetGlobalConfig replaces the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if cfg != nil {
		globalConfig = cfg
	}
}

// GetGlobalConfig returns a copy of the process-wide configuration.
func GetGlobalConfig() Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return *globalConfig
}

// GetDefaultOutputFormat returns the configured default CLI output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.Format
}

// GetDefaultJurisdiction returns the configured default jurisdiction code.
func GetDefaultJurisdiction() string {
	return GetGlobalConfig().Assessment.DefaultJurisdiction
}

// ToLoggingConfig converts the logging section into a logging.Config.
// When File is set, output goes to the file; otherwise stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := "stderr"
	if lc.File != "" {
		output = "file"
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

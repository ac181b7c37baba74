// Package config loads the partial-gen tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"partial-generator/internal/analyze"
	"partial-generator/internal/gen"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "partial-gen.yaml"

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config is the partial-gen configuration.
type Config struct {
	// OutputDir is where generated files are written. Empty means next to
	// the source package or schema file.
	OutputDir     string             `yaml:"output_dir"`
	Package       string             `yaml:"package"`
	FileSuffix    string             `yaml:"file_suffix"`
	NameSource    analyze.NameSource `yaml:"name_source"`
	Comments      bool               `yaml:"comments"`
	RuntimeImport string             `yaml:"runtime_import"`
	Log           LogConfig          `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	gc := gen.DefaultGeneratorConfig()

	return &Config{
		FileSuffix:    gc.FileSuffix,
		NameSource:    analyze.NameSourceGo,
		Comments:      gc.GenerateComments,
		RuntimeImport: gc.RuntimeImport,
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// Load reads configuration from a YAML file. Keys missing from the file keep
// their default values. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		applyEnvOverrides(cfg)
		return cfg, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks values that yaml decoding cannot.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case FormatJSON, FormatConsole:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q", FormatJSON, FormatConsole, c.Log.Format)
	}

	if c.FileSuffix == "" {
		return errors.New("file_suffix must not be empty")
	}

	return nil
}

// GeneratorConfig maps the configuration onto generator settings.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	gc := gen.DefaultGeneratorConfig()
	gc.PackageName = c.Package
	gc.GenerateComments = c.Comments

	if c.OutputDir != "" {
		gc.OutputDir = c.OutputDir
	}

	if c.FileSuffix != "" {
		gc.FileSuffix = c.FileSuffix
	}

	if c.RuntimeImport != "" {
		gc.RuntimeImport = c.RuntimeImport
	}

	return gc
}

// applyEnvOverrides applies PARTIAL_GEN_* environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PARTIAL_GEN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if v := os.Getenv("PARTIAL_GEN_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

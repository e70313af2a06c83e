// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/api-catalog/internal/merge"
)

// Environment variables read by FromEnv. A .env file in the working
// directory is loaded into the environment by main.
const (
	EnvDataFile   = "APICATALOG_DATA"
	EnvSourceFile = "APICATALOG_SOURCE"
	EnvReportDir  = "APICATALOG_REPORT_DIR"
)

// Built-in defaults
const (
	DefaultDataFile   = "data/apis.json"
	DefaultSourceFile = "../public-apis-2/db/resources.json"
	DefaultReportDir  = "data/merge-report"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	DataFile   string `json:"data_file,omitempty"`   // Canonical store
	SourceFile string `json:"source_file,omitempty"` // Secondary source catalog
	ReportDir  string `json:"report_dir,omitempty"`  // Merge report output directory

	// Merge
	DomainPolicy string `json:"domain_policy,omitempty" validate:"omitempty,oneof=insert-and-flag insert-only suppress"`

	// Health check
	TimeoutSeconds int     `json:"timeout_seconds,omitempty" validate:"gte=0"`
	Concurrency    int     `json:"concurrency,omitempty" validate:"gte=0"`
	RatePerSecond  float64 `json:"rate_per_second,omitempty" validate:"gte=0"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		DataFile:       DefaultDataFile,
		SourceFile:     DefaultSourceFile,
		ReportDir:      DefaultReportDir,
		DomainPolicy:   string(merge.DefaultDomainPolicy),
		TimeoutSeconds: 10,
		Concurrency:    1,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config holding the paths set in the environment
func FromEnv() Config {
	return Config{
		DataFile:   os.Getenv(EnvDataFile),
		SourceFile: os.Getenv(EnvSourceFile),
		ReportDir:  os.Getenv(EnvReportDir),
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.SourceFile != "" && c.DataFile != "" && filepath.Clean(c.SourceFile) == filepath.Clean(c.DataFile) {
		return fmt.Errorf("config error: 'source_file' and 'data_file' must differ")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// It is applied once per layer: config file over environment over built-ins.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataFile == "" {
		result.DataFile = defaults.DataFile
	}
	if result.SourceFile == "" {
		result.SourceFile = defaults.SourceFile
	}
	if result.ReportDir == "" {
		result.ReportDir = defaults.ReportDir
	}
	if result.DomainPolicy == "" {
		result.DomainPolicy = defaults.DomainPolicy
	}

	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.RatePerSecond == 0 {
		result.RatePerSecond = defaults.RatePerSecond
	}

	return result
}

// Resolve loads the config file at path (if any) and layers it over the
// environment and the built-in defaults
func Resolve(path string) (Config, error) {
	var cfg Config
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return Config{}, err
		}
		cfg = *loaded
	}

	env := FromEnv()
	cfg = cfg.MergeWithDefaults(env)
	cfg = cfg.MergeWithDefaults(Defaults())
	return cfg, nil
}

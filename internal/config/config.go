// Package config handles configuration loading and validation for tpmigrate.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Default domains and report paths for the legacy migration.
const (
	DefaultOriginalDomain    = "gumption.typepad.com"
	DefaultNewDomain         = "interrelativity.com"
	DefaultMappingReportPath = "basename_mappings.txt"
	DefaultURLReportPath     = "url_replacements.txt"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidJSON     ConfigErrorType = "INVALID_JSON"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
)

// ConfigError represents an error that occurred during configuration loading.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// Config holds all settings for a migration run.
type Config struct {
	InputPath         string `json:"inputPath"`
	OutputPath        string `json:"outputPath"`
	OriginalDomain    string `json:"originalDomain"`
	NewDomain         string `json:"newDomain"`
	MappingReportPath string `json:"mappingReportPath"`
	URLReportPath     string `json:"urlReportPath"`
	Verbose           bool   `json:"-"`
	Watch             bool   `json:"-"`
}

// Default returns a Config with the built-in defaults applied.
func Default() Config {
	return Config{
		OriginalDomain:    DefaultOriginalDomain,
		NewDomain:         DefaultNewDomain,
		MappingReportPath: DefaultMappingReportPath,
		URLReportPath:     DefaultURLReportPath,
	}
}

// ApplyDefaults fills any zero-valued optional field with its default.
// Input and output paths have no defaults and are left alone.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.OriginalDomain == "" {
		c.OriginalDomain = defaults.OriginalDomain
	}
	if c.NewDomain == "" {
		c.NewDomain = defaults.NewDomain
	}
	if c.MappingReportPath == "" {
		c.MappingReportPath = defaults.MappingReportPath
	}
	if c.URLReportPath == "" {
		c.URLReportPath = defaults.URLReportPath
	}
}

// Validate checks that the configuration has all required fields.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "input path cannot be empty",
		}
	}
	if c.OutputPath == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "output path cannot be empty",
		}
	}
	if c.OriginalDomain == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "original domain cannot be empty",
		}
	}
	if c.NewDomain == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "new domain cannot be empty",
		}
	}
	if c.MappingReportPath == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "mapping report path cannot be empty",
		}
	}
	if c.URLReportPath == "" {
		return &ConfigError{
			Type:    ValidationError,
			Message: "URL report path cannot be empty",
		}
	}
	return nil
}

// Load reads and parses a configuration file from the given path.
// Missing optional fields receive their defaults; input and output
// paths may still be supplied on the command line afterwards.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{
				Type: FileNotFound,
				Path: filePath,
			}
		}
		return nil, &ConfigError{
			Type:    FileNotFound,
			Path:    filePath,
			Message: err.Error(),
		}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// Save serializes and writes a configuration to the given path.
func Save(cfg *Config, filePath string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("failed to write configuration file: %s", err.Error()),
		}
	}

	return nil
}

// Package config provides configuration loading and management for omexkit.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/biosimulators/omexkit/omexmeta"
)

// Config represents the complete omexkit configuration
type Config struct {
	Metadata   MetadataConfig   `yaml:"metadata"`
	Archive    ArchiveConfig    `yaml:"archive"`
	Validation ValidationConfig `yaml:"validation"`
}

// MetadataConfig configures the OMEX Metadata formats
type MetadataConfig struct {
	// InputFormat is the format metadata files are parsed as (default: rdfxml)
	InputFormat string `yaml:"input_format"`
	// OutputFormat is the format metadata is serialized to (default: rdfxml-abbrev)
	OutputFormat string `yaml:"output_format"`
}

// ArchiveConfig configures COMBINE archive reading
type ArchiveConfig struct {
	// SkipPlainZipFallback disables interpreting invalid COMBINE files as plain zips
	SkipPlainZipFallback bool `yaml:"skip_plain_zip_fallback"`
}

// ValidationConfig configures the validation pipeline
type ValidationConfig struct {
	// ValidateModels enables model-language validation of SED-ML model sources
	ValidateModels bool `yaml:"validate_models"`
	// OnlyMasterSedml restricts execution-set selection to master SED-ML entries
	OnlyMasterSedml bool `yaml:"only_master_sedml"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Metadata: MetadataConfig{
			InputFormat:  string(omexmeta.FormatRDFXML),
			OutputFormat: string(omexmeta.FormatRDFXMLAbbrev),
		},
		Archive: ArchiveConfig{
			SkipPlainZipFallback: false,
		},
		Validation: ValidationConfig{
			ValidateModels:  false,
			OnlyMasterSedml: false,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	inputFormat, err := omexmeta.ParseFormat(c.Metadata.InputFormat)
	if err != nil {
		return fmt.Errorf("metadata.input_format: %w", err)
	}
	if info, ok := omexmeta.GetFormatInfo(inputFormat); !ok || !info.Readable {
		return fmt.Errorf("metadata.input_format `%s` is not readable", c.Metadata.InputFormat)
	}

	outputFormat, err := omexmeta.ParseFormat(c.Metadata.OutputFormat)
	if err != nil {
		return fmt.Errorf("metadata.output_format: %w", err)
	}
	if info, ok := omexmeta.GetFormatInfo(outputFormat); !ok || !info.Writable {
		return fmt.Errorf("metadata.output_format `%s` is not writable", c.Metadata.OutputFormat)
	}
	return nil
}

// InputFormat returns the parsed metadata input format
func (c *Config) InputFormat() omexmeta.Format {
	format, err := omexmeta.ParseFormat(c.Metadata.InputFormat)
	if err != nil {
		return omexmeta.DefaultFormat
	}
	return format
}

// OutputFormat returns the parsed metadata output format
func (c *Config) OutputFormat() omexmeta.Format {
	format, err := omexmeta.ParseFormat(c.Metadata.OutputFormat)
	if err != nil {
		return omexmeta.FormatRDFXMLAbbrev
	}
	return format
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Metadata
	if other.Metadata.InputFormat != "" {
		c.Metadata.InputFormat = other.Metadata.InputFormat
	}
	if other.Metadata.OutputFormat != "" {
		c.Metadata.OutputFormat = other.Metadata.OutputFormat
	}

	// Archive
	if other.Archive.SkipPlainZipFallback {
		c.Archive.SkipPlainZipFallback = true
	}

	// Validation
	if other.Validation.ValidateModels {
		c.Validation.ValidateModels = true
	}
	if other.Validation.OnlyMasterSedml {
		c.Validation.OnlyMasterSedml = true
	}
}

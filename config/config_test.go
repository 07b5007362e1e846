package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biosimulators/omexkit/omexmeta"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Metadata.InputFormat != "rdfxml" {
		t.Errorf("expected default input format rdfxml, got %s", cfg.Metadata.InputFormat)
	}
	if cfg.Metadata.OutputFormat != "rdfxml-abbrev" {
		t.Errorf("expected default output format rdfxml-abbrev, got %s", cfg.Metadata.OutputFormat)
	}
	if cfg.Archive.SkipPlainZipFallback {
		t.Error("expected plain-zip fallback enabled by default")
	}
	if cfg.Validation.OnlyMasterSedml {
		t.Error("expected all SED-ML documents selected by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "unknown input format",
			modify:  func(c *Config) { c.Metadata.InputFormat = "n3" },
			wantErr: true,
		},
		{
			name:    "write-only input format",
			modify:  func(c *Config) { c.Metadata.InputFormat = "rdfxml-abbrev" },
			wantErr: true,
		},
		{
			name:    "unknown output format",
			modify:  func(c *Config) { c.Metadata.OutputFormat = "trig" },
			wantErr: true,
		},
		{
			name:    "turtle output",
			modify:  func(c *Config) { c.Metadata.OutputFormat = "turtle" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
metadata:
  input_format: "turtle"
  output_format: "ntriples"
archive:
  skip_plain_zip_fallback: true
validation:
  validate_models: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Metadata.InputFormat != "turtle" {
		t.Errorf("expected input format turtle, got %s", cfg.Metadata.InputFormat)
	}
	if cfg.Metadata.OutputFormat != "ntriples" {
		t.Errorf("expected output format ntriples, got %s", cfg.Metadata.OutputFormat)
	}
	if !cfg.Archive.SkipPlainZipFallback {
		t.Error("expected plain-zip fallback disabled")
	}
	if !cfg.Validation.ValidateModels {
		t.Error("expected model validation enabled")
	}
	if cfg.InputFormat() != omexmeta.FormatTurtle {
		t.Errorf("expected parsed input format turtle, got %s", cfg.InputFormat())
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Metadata: MetadataConfig{
			OutputFormat: "turtle",
		},
		Validation: ValidationConfig{
			ValidateModels: true,
		},
	}

	base.Merge(override)

	if base.Metadata.OutputFormat != "turtle" {
		t.Errorf("expected output format turtle, got %s", base.Metadata.OutputFormat)
	}
	// Input format should remain from base since override didn't set it
	if base.Metadata.InputFormat != "rdfxml" {
		t.Errorf("expected input format to remain default, got %s", base.Metadata.InputFormat)
	}
	if !base.Validation.ValidateModels {
		t.Error("expected model validation enabled after merge")
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Metadata.OutputFormat = "json"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Metadata.OutputFormat != "json" {
		t.Errorf("expected output format json, got %s", loaded.Metadata.OutputFormat)
	}
}

func TestLoaderReadsUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	userDir := filepath.Join(home, UserConfigDir)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatalf("failed to create user config dir: %v", err)
	}
	data := []byte("metadata:\n  input_format: turtle\n")
	if err := os.WriteFile(filepath.Join(userDir, UserConfigFile), data, 0o644); err != nil {
		t.Fatalf("failed to write user config: %v", err)
	}

	cfg, err := NewLoader(nil).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Metadata.InputFormat != "turtle" {
		t.Errorf("expected input format turtle from user config, got %s", cfg.Metadata.InputFormat)
	}
	// Unset options keep their defaults.
	if cfg.Metadata.OutputFormat != string(omexmeta.FormatRDFXMLAbbrev) {
		t.Errorf("expected default output format, got %s", cfg.Metadata.OutputFormat)
	}
}

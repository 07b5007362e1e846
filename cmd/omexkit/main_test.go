package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biosimulators/omexkit/combine"
	"github.com/biosimulators/omexkit/config"
)

const sedmlFixture = `<?xml version="1.0" encoding="UTF-8"?>
<sedML level="1" version="3">
  <listOfModels>
    <model id="model" source="model.xml" language="urn:sedml:language:sbml"/>
  </listOfModels>
  <listOfTasks>
    <task id="task_1" modelReference="model"/>
  </listOfTasks>
</sedML>
`

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestBuildThenValidate(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "sim.sedml", sedmlFixture)
	writeFixture(t, dir, "model.xml", `<?xml version="1.0"?><sbml/>`)
	writeFixture(t, dir, "notes.txt", "notes")

	outFile := filepath.Join(t.TempDir(), "out.omex")
	err := buildArchive(dir, outFile, buildOptions{
		master:      "sim.sedml",
		description: "Test archive",
		authors:     []string{"Doe, Jane"},
	})
	if err != nil {
		t.Fatalf("failed to build archive: %v", err)
	}

	errors, warnings, err := validateArchive(config.DefaultConfig(), outFile, true)
	if err != nil {
		t.Fatalf("failed to validate archive: %v", err)
	}
	if len(errors) > 0 {
		t.Fatalf("expected a valid archive, got errors: %v", errors)
	}
	if len(warnings) > 0 {
		t.Fatalf("expected no warnings, got: %v", warnings)
	}
}

func TestBuildArchive_MasterMustExist(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "notes.txt", "notes")

	err := buildArchive(dir, filepath.Join(t.TempDir(), "out.omex"), buildOptions{
		master: "missing.sedml",
	})
	if err == nil {
		t.Fatal("expected error for a master that is not bundled")
	}
}

func TestBuildArchive_EmptyDirectory(t *testing.T) {
	err := buildArchive(t.TempDir(), filepath.Join(t.TempDir(), "out.omex"), buildOptions{})
	if err == nil {
		t.Fatal("expected error for an empty directory")
	}
}

func TestValidateArchive_ReportsInvalidArchive(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.omex")
	if err := os.WriteFile(file, []byte("not an archive"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Archive.SkipPlainZipFallback = true
	errors, _, err := validateArchive(cfg, file, true)
	if err != nil {
		t.Fatalf("validation run failed: %v", err)
	}
	if len(errors) == 0 {
		t.Fatal("expected errors for a non-archive file")
	}
}

func TestSelectLocation(t *testing.T) {
	tests := []struct {
		location string
		include  []string
		exclude  []string
		want     bool
	}{
		{"sim.sedml", nil, nil, true},
		{"sim.sedml", []string{"**/*.sedml", "*.sedml"}, nil, true},
		{"data/run.csv", []string{"*.sedml"}, nil, false},
		{"data/run.csv", nil, []string{"data/**"}, false},
		{"sim.sedml", []string{"*.sedml"}, []string{"sim.*"}, false},
	}

	for _, tt := range tests {
		got, err := selectLocation(tt.location, tt.include, tt.exclude)
		if err != nil {
			t.Fatalf("selectLocation(%q) failed: %v", tt.location, err)
		}
		if got != tt.want {
			t.Errorf("selectLocation(%q, %v, %v) = %v, want %v",
				tt.location, tt.include, tt.exclude, got, tt.want)
		}
	}
}

func TestFormatForFile(t *testing.T) {
	tests := []struct {
		location string
		want     combine.ContentFormat
	}{
		{"sim.sedml", combine.FormatSEDML},
		{"model.SBML", combine.FormatSBML},
		{"metadata.rdf", combine.FormatOMEXMetadata},
		{"extra/metadata.rdf", combine.FormatOMEXMetadata},
		{"ontology.rdf", combine.FormatOWL},
		{"figure.png", combine.FormatPNG},
		{"unknown.bin", combine.FormatOther},
	}

	for _, tt := range tests {
		if got := formatForFile(tt.location); got != tt.want {
			t.Errorf("formatForFile(%q) = %s, want %s", tt.location, got, tt.want)
		}
	}
}

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"http://identifiers.org/combine.specifications/sed-ml", "sed-ml"},
		{"https://identifiers.org/combine.specifications/sed-ml.level-1.version-3", "sed-ml"},
		{"http://purl.org/NET/mediatypes/image/png", "image/png"},
		{"", "(none)"},
		{"http://example.org/custom", "http://example.org/custom"},
	}

	for _, tt := range tests {
		if got := formatLabel(tt.uri); got != tt.want {
			t.Errorf("formatLabel(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestParseAuthor(t *testing.T) {
	a := parseAuthor("Doe, Jane")
	if a.FamilyName != "Doe" || a.GivenName != "Jane" {
		t.Errorf("parseAuthor split wrong: %+v", a)
	}

	a = parseAuthor("Curie")
	if a.FamilyName != "Curie" || a.GivenName != "" {
		t.Errorf("parseAuthor single name wrong: %+v", a)
	}
}

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.omex", "x")
	writeFixture(t, dir, "nested/b.omex", "x")
	writeFixture(t, dir, "c.txt", "x")

	files, err := expandPatterns([]string{filepath.Join(dir, "**", "*.omex")})
	if err != nil {
		t.Fatalf("expandPatterns failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 matches, got %v", files)
	}

	if _, err := expandPatterns([]string{filepath.Join(dir, "missing.omex")}); err == nil {
		t.Fatal("expected error for a missing literal path")
	}
}

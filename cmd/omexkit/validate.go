package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/biosimulators/omexkit/combine"
	"github.com/biosimulators/omexkit/config"
	"github.com/biosimulators/omexkit/omexmeta"
	"github.com/biosimulators/omexkit/validation"
)

func validateCmd(configPath *string) *cobra.Command {
	var skipMetadata bool

	cmd := &cobra.Command{
		Use:   "validate <archive>...",
		Short: "Validate COMBINE/OMEX archives",
		Long: `Validate validates one or more COMBINE/OMEX archives: the manifest,
the content entries, every SED-ML document selected for execution, and
the OMEX metadata if the archive carries any.

Arguments are glob patterns; ** matches across directory separators.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			files, err := expandPatterns(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no archives match %v", args)
			}

			invalid := 0
			for _, file := range files {
				errors, warnings, err := validateArchive(cfg, file, !skipMetadata)
				if err != nil {
					return err
				}
				reportFindings(file, errors, warnings)
				if len(errors) > 0 {
					invalid++
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d archives are invalid", invalid, len(files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipMetadata, "skip-metadata", false, "Skip OMEX metadata validation")

	return cmd
}

// expandPatterns resolves glob patterns to a deduplicated file list.
// A pattern without glob metacharacters must name an existing file.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern `%s`: %w", pattern, err)
		}
		if matches == nil && !hasGlobMeta(pattern) {
			return nil, fmt.Errorf("`%s` does not exist", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// validateArchive reads and validates a single archive, including its
// OMEX metadata when requested. The returned error reports failures of
// the validation run itself, not findings about the archive.
func validateArchive(cfg *config.Config, file string, withMetadata bool) ([]validation.Finding, []validation.Finding, error) {
	outDir, err := os.MkdirTemp("", "omexkit-validate-")
	if err != nil {
		return nil, nil, fmt.Errorf("create working directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	reader := combine.NewReader()
	reader.TryPlainZip = !cfg.Archive.SkipPlainZipFallback
	archive, errors, warnings, err := reader.Run(file, outDir)
	if err != nil {
		return []validation.Finding{validation.New("%v", err)}, warnings, nil
	}

	validator := combine.NewValidator()
	validator.ValidateModels = cfg.Validation.ValidateModels
	validator.RunAllWithoutMaster = !cfg.Validation.OnlyMasterSedml
	moreErrors, moreWarnings, err := validator.Run(archive, outDir)
	if err != nil {
		return nil, nil, err
	}
	errors = append(errors, moreErrors...)
	warnings = append(warnings, moreWarnings...)

	if withMetadata {
		metaErrors, metaWarnings := validateArchiveMetadata(cfg, archive, outDir)
		errors = append(errors, metaErrors...)
		warnings = append(warnings, metaWarnings...)
	}

	return errors, warnings, nil
}

// validateArchiveMetadata validates every OMEX metadata file declared in
// the manifest against the archive contents. Only metadata following the
// omex-library.org root URI convention is projected and checked here;
// description-style metadata is validated while the archive is read.
func validateArchiveMetadata(cfg *config.Config, archive *combine.Archive, outDir string) ([]validation.Finding, []validation.Finding) {
	var errors, warnings []validation.Finding

	for _, c := range archive.Contents {
		if c == nil || !combine.MatchesFormat(c.Format, combine.FormatOMEXMetadata) {
			continue
		}

		triples, readErrors, readWarnings := omexmeta.ReadFile(filepath.Join(outDir, c.Location), cfg.InputFormat())
		if len(readWarnings) > 0 {
			warnings = append(warnings, validation.Group(
				fmt.Sprintf("`%s` may be invalid", c.Location), readWarnings))
		}
		if len(readErrors) > 0 {
			errors = append(errors, validation.Group(
				fmt.Sprintf("`%s` is invalid", c.Location), readErrors))
			continue
		}

		if uri, _ := omexmeta.ArchiveURI(triples); uri == "" {
			slog.Debug("Metadata has no archive root URI, skipping projection", "location", c.Location)
			continue
		}

		records, projErrors, projWarnings := omexmeta.ReadTriples(triples)
		if len(projWarnings) > 0 {
			warnings = append(warnings, validation.Group(
				fmt.Sprintf("`%s` may be invalid", c.Location), projWarnings))
		}
		if len(projErrors) > 0 {
			errors = append(errors, validation.Group(
				fmt.Sprintf("`%s` is invalid", c.Location), projErrors))
			continue
		}

		for _, record := range records {
			recordErrors, recordWarnings := combine.ValidateMetadata(record, archive, outDir)
			if len(recordErrors) > 0 {
				errors = append(errors, validation.Group(
					fmt.Sprintf("metadata about `%s` is invalid", record.URI), recordErrors))
			}
			if len(recordWarnings) > 0 {
				warnings = append(warnings, validation.Group(
					fmt.Sprintf("metadata about `%s` may be invalid", record.URI), recordWarnings))
			}
		}
	}

	return errors, warnings
}

func reportFindings(file string, errors, warnings []validation.Finding) {
	switch {
	case len(errors) > 0:
		fmt.Printf("%s is invalid.\n", file)
		fmt.Print(validation.Indent(errors, "  "))
	default:
		fmt.Printf("%s is valid.\n", file)
	}
	if len(warnings) > 0 {
		fmt.Printf("%s has warnings.\n", file)
		fmt.Print(validation.Indent(warnings, "  "))
	}
	if len(errors) > 0 {
		slog.Debug("Archive failed validation", "file", file, "errors", len(errors), "warnings", len(warnings))
	}
}

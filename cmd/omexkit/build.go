package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/biosimulators/omexkit/combine"
)

func buildCmd(configPath *string) *cobra.Command {
	var (
		master      string
		description string
		authors     []string
		include     []string
		exclude     []string
	)

	cmd := &cobra.Command{
		Use:   "build <dir> <archive>",
		Short: "Build a COMBINE/OMEX archive from a directory",
		Long: `Build bundles the files under a directory into a COMBINE/OMEX archive.
Content formats are inferred from file extensions. When a description or
authors are given, the archive also carries an OMEX description metadata
file.

Include and exclude patterns match archive-relative paths; ** matches
across directory separators.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(*configPath); err != nil {
				return err
			}
			return buildArchive(args[0], args[1], buildOptions{
				master:      master,
				description: description,
				authors:     authors,
				include:     include,
				exclude:     exclude,
			})
		},
	}

	cmd.Flags().StringVar(&master, "master", "", "Location of the master content entry")
	cmd.Flags().StringVar(&description, "description", "", "Archive-level description")
	cmd.Flags().StringArrayVar(&authors, "author", nil, `Archive author as "Family, Given" (repeatable)`)
	cmd.Flags().StringArrayVar(&include, "include", nil, "Only include files matching this glob (repeatable)")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "Exclude files matching this glob (repeatable)")

	return cmd
}

type buildOptions struct {
	master      string
	description string
	authors     []string
	include     []string
	exclude     []string
}

func buildArchive(dir, outFile string, opts buildOptions) error {
	contents, err := collectContents(dir, opts)
	if err != nil {
		return err
	}
	if len(contents) == 0 {
		return fmt.Errorf("no files to bundle under `%s`", dir)
	}

	archive := combine.NewArchive(contents...)
	if opts.description != "" || len(opts.authors) > 0 {
		now := time.Now().UTC().Truncate(time.Second)
		archive.Description = opts.description
		archive.Created = &now
		archive.Updated = &now
		for _, author := range opts.authors {
			archive.Authors = append(archive.Authors, parseAuthor(author))
		}
	}

	if opts.master != "" {
		found := false
		for _, c := range contents {
			if c.Location == opts.master {
				c.Master = true
				found = true
			}
		}
		if !found {
			return fmt.Errorf("master `%s` is not among the bundled files", opts.master)
		}
	}

	if err := combine.NewWriter().Run(archive, dir, outFile); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d contents).\n", outFile, len(contents))
	return nil
}

func collectContents(dir string, opts buildOptions) ([]*combine.Content, error) {
	var contents []*combine.Content
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		location, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		location = filepath.ToSlash(location)

		selected, err := selectLocation(location, opts.include, opts.exclude)
		if err != nil {
			return err
		}
		if !selected {
			return nil
		}

		contents = append(contents, &combine.Content{
			Location: location,
			Format:   string(formatForFile(location)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan `%s`: %w", dir, err)
	}
	return contents, nil
}

func selectLocation(location string, include, exclude []string) (bool, error) {
	if len(include) > 0 {
		matched := false
		for _, pattern := range include {
			ok, err := doublestar.Match(pattern, location)
			if err != nil {
				return false, fmt.Errorf("bad pattern `%s`: %w", pattern, err)
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
	for _, pattern := range exclude {
		ok, err := doublestar.Match(pattern, location)
		if err != nil {
			return false, fmt.Errorf("bad pattern `%s`: %w", pattern, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

func parseAuthor(s string) *combine.Author {
	family, given, found := strings.Cut(s, ",")
	if !found {
		return &combine.Author{FamilyName: strings.TrimSpace(s)}
	}
	return &combine.Author{
		FamilyName: strings.TrimSpace(family),
		GivenName:  strings.TrimSpace(given),
	}
}

// extensionFormats maps common file extensions to content format URIs.
// Unlisted extensions fall back to the generic binary format.
var extensionFormats = map[string]combine.ContentFormat{
	".sedml":  combine.FormatSEDML,
	".sbml":   combine.FormatSBML,
	".cellml": combine.FormatCellML,
	".xml":    combine.FormatXML,
	".rdf":    combine.FormatOWL,
	".csv":    combine.FormatCSV,
	".tsv":    combine.FormatTSV,
	".json":   combine.FormatJSON,
	".yml":    combine.FormatYAML,
	".yaml":   combine.FormatYAML,
	".txt":    combine.FormatText,
	".md":     combine.FormatMarkdown,
	".pdf":    combine.FormatPDF,
	".png":    combine.FormatPNG,
	".jpg":    combine.FormatJPEG,
	".jpeg":   combine.FormatJPEG,
	".gif":    combine.FormatGIF,
	".svg":    combine.FormatSVG,
	".webp":   combine.FormatWEBP,
	".h5":     combine.FormatHDF5,
	".hdf5":   combine.FormatHDF5,
	".ipynb":  combine.FormatIPythonNB,
	".py":     combine.FormatPython,
	".m":      combine.FormatMATLAB,
	".r":      combine.FormatR,
	".zip":    combine.FormatZIP,
	".html":   combine.FormatHTML,
}

func formatForFile(location string) combine.ContentFormat {
	if filepath.Base(location) == combine.MetadataFilename {
		return combine.FormatOMEXMetadata
	}
	if format, ok := extensionFormats[strings.ToLower(filepath.Ext(location))]; ok {
		return format
	}
	return combine.FormatOther
}

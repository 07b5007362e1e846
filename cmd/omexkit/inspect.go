package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/biosimulators/omexkit/combine"
	"github.com/biosimulators/omexkit/config"
	"github.com/biosimulators/omexkit/validation"
)

func inspectCmd(configPath *string) *cobra.Command {
	var include, exclude []string

	cmd := &cobra.Command{
		Use:   "inspect <archive>",
		Short: "List the contents of a COMBINE/OMEX archive",
		Long: `Inspect reads an archive and prints its content entries with their
formats and master flags, followed by the archive-level metadata when
the archive carries any.

Include and exclude patterns match content locations; ** matches across
directory separators.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return inspectArchive(cfg, args[0], include, exclude)
		},
	}

	cmd.Flags().StringArrayVar(&include, "include", nil, "Only list contents matching this glob (repeatable)")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "Skip contents matching this glob (repeatable)")

	return cmd
}

func inspectArchive(cfg *config.Config, file string, include, exclude []string) error {
	outDir, err := os.MkdirTemp("", "omexkit-inspect-")
	if err != nil {
		return fmt.Errorf("create working directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	reader := combine.NewReader()
	reader.TryPlainZip = !cfg.Archive.SkipPlainZipFallback
	archive, errors, warnings, err := reader.Run(file, outDir)
	if err != nil {
		return err
	}
	if len(errors) > 0 {
		fmt.Print(validation.Indent(errors, "  "))
	}
	if len(warnings) > 0 {
		fmt.Print(validation.Indent(warnings, "  "))
	}

	fmt.Printf("%s: %d contents\n\n", file, len(archive.Contents))

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCATION\tFORMAT\tMASTER")
	for _, c := range archive.Contents {
		selected, err := selectLocation(c.Location, include, exclude)
		if err != nil {
			return err
		}
		if !selected {
			continue
		}
		master := ""
		if c.Master {
			master = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Location, formatLabel(c.Format), master)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	printDescription(archive)
	return nil
}

// formatLabel shortens a content format URI to its human-readable tail:
// the COMBINE specification name or the media type.
func formatLabel(uri string) string {
	if uri == "" {
		return "(none)"
	}
	if format, ok := combine.ClassifyFormat(uri); ok {
		uri = string(format)
	}
	for _, prefix := range []string{
		"http://identifiers.org/combine.specifications/",
		"https://identifiers.org/combine.specifications/",
		"http://purl.org/NET/mediatypes/",
		"https://purl.org/NET/mediatypes/",
	} {
		if rest := strings.TrimPrefix(uri, prefix); rest != uri {
			return rest
		}
	}
	return uri
}

func printDescription(archive *combine.Archive) {
	if archive.Description == "" && len(archive.Authors) == 0 &&
		archive.Created == nil && archive.Updated == nil {
		return
	}

	fmt.Println()
	if archive.Description != "" {
		fmt.Printf("Description: %s\n", archive.Description)
	}
	for _, a := range archive.Authors {
		fmt.Printf("Author: %s\n", authorLabel(a))
	}
	if archive.Created != nil {
		fmt.Printf("Created: %s\n", archive.Created.Format("2006-01-02 15:04:05"))
	}
	if archive.Updated != nil {
		fmt.Printf("Updated: %s\n", archive.Updated.Format("2006-01-02 15:04:05"))
	}
}

func authorLabel(a *combine.Author) string {
	switch {
	case a.FamilyName != "" && a.GivenName != "":
		return a.FamilyName + ", " + a.GivenName
	case a.FamilyName != "":
		return a.FamilyName
	default:
		return a.GivenName
	}
}

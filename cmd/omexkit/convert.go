package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biosimulators/omexkit/omexmeta"
	"github.com/biosimulators/omexkit/validation"
)

func convertCmd(configPath *string) *cobra.Command {
	var fromName, toName string

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert an OMEX metadata file between RDF serializations",
		Long: `Convert parses an OMEX metadata file and reserializes it in another
RDF format. The input and output formats default to the configured
metadata formats and can be overridden per invocation.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			inFormat := cfg.InputFormat()
			if fromName != "" {
				if inFormat, err = omexmeta.ParseFormat(fromName); err != nil {
					return err
				}
			}
			outFormat := cfg.OutputFormat()
			if toName != "" {
				if outFormat, err = omexmeta.ParseFormat(toName); err != nil {
					return err
				}
			}

			triples, errors, warnings := omexmeta.NewTriplesReader(inFormat).Run(args[0])
			if len(warnings) > 0 {
				fmt.Printf("%s has warnings.\n", args[0])
				fmt.Print(validation.Indent(warnings, "  "))
			}
			if len(errors) > 0 {
				return fmt.Errorf("`%s` could not be parsed:\n%s",
					args[0], validation.Indent(errors, "  "))
			}

			if err := omexmeta.NewTriplesWriter(outFormat).Run(triples, args[1]); err != nil {
				return fmt.Errorf("write `%s`: %w", args[1], err)
			}

			fmt.Printf("Converted %s (%s) to %s (%s).\n", args[0], inFormat, args[1], outFormat)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromName, "from", "", "Input RDF format (overrides config)")
	cmd.Flags().StringVar(&toName, "to", "", "Output RDF format (overrides config)")

	return cmd
}

// Package main provides the omexkit binary entry point.
// Omexkit reads, writes, validates, and converts COMBINE/OMEX archives
// and their OMEX metadata.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biosimulators/omexkit/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "omexkit"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "omexkit",
		Short: "COMBINE/OMEX archive toolkit",
		Long: `Omexkit is a toolkit for COMBINE/OMEX archives.

It provides:
- Archive reading, writing, and validation
- SED-ML document validation
- OMEX metadata parsing, validation, and format conversion

Configuration is layered: built-in defaults, then the user config at
~/.config/omexkit/config.yaml, then a project omexkit.yaml found by
walking up from the working directory.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	cmd.AddCommand(validateCmd(&configPath))
	cmd.AddCommand(convertCmd(&configPath))
	cmd.AddCommand(inspectCmd(&configPath))
	cmd.AddCommand(buildCmd(&configPath))
	cmd.AddCommand(watchCmd(&configPath))

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig loads an explicit config file when one was given, and the
// layered default, user, and project configuration otherwise.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}

	return config.NewLoader(slog.Default()).Load()
}

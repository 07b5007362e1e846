package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/biosimulators/omexkit/config"
)

func watchCmd(configPath *string) *cobra.Command {
	var (
		pattern  string
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <dir>...",
		Short: "Watch directories and revalidate archives on change",
		Long: `Watch monitors directories for changes to COMBINE/OMEX archives and
revalidates an archive whenever it is created or rewritten. Validation
results are logged; watch runs until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return watchDirs(cfg, args, pattern, debounce)
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "**/*.omex", "Glob selecting the archives to watch")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Delay before revalidating after a change")

	return cmd
}

func watchDirs(cfg *config.Config, dirs []string, pattern string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("stat watch path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", dir)
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		slog.Info("Watching directory", "dir", dir, "pattern", pattern)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Rewrites arrive as bursts of events; one timer per path coalesces
	// a burst into a single validation run.
	timers := map[string]*time.Timer{}
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			name := filepath.ToSlash(event.Name)
			if matched, _ := doublestar.Match(pattern, name); !matched {
				if matched, _ = doublestar.Match(pattern, filepath.Base(name)); !matched {
					continue
				}
			}

			file := event.Name
			if timer, exists := timers[file]; exists {
				timer.Reset(debounce)
				continue
			}
			timers[file] = time.AfterFunc(debounce, func() {
				revalidate(cfg, file)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

func revalidate(cfg *config.Config, file string) {
	slog.Info("Archive changed", "file", file)
	errors, warnings, err := validateArchive(cfg, file, true)
	if err != nil {
		slog.Error("Validation failed to run", "file", file, "error", err)
		return
	}
	reportFindings(file, errors, warnings)
}

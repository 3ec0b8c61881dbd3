// Package main is the CLI entry point for corral.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/kclejeune/corral/internal/config"
)

// Overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	verbose      bool
	quiet        bool
	dryRun       bool
	manifestPath string
)

func main() {
	if err := fang.Execute(context.Background(), rootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "corral <regex_pattern> <destination_directory>",
		Short: "Gather files matching a pattern into one directory",
		Long: `corral walks the current directory, moves every file whose path matches
<regex_pattern> into <destination_directory>, and then removes any
directories the move left empty.

The pattern is matched against the whole path, not just the file name.`,
		Example: `  corral '\.txt$' out
  corral --dry-run '(?i)/photos/.*\.jpe?g$' ~/Pictures/inbox`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("usage: %s <regex_pattern> <destination_directory>", cmd.Name())
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLoggingWithWriter(cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			opts, err := config.New(cwd, args[0], args[1], manifestPath, dryRun)
			if err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors, skip the summary")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")
	root.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print planned moves without touching the filesystem")
	root.Flags().StringVarP(&manifestPath, "manifest", "m", "", "write a TOML record of the run to this file")

	return root
}

func setupLoggingWithWriter(w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kclejeune/corral/internal/config"
	"github.com/kclejeune/corral/internal/fsutil"
	"github.com/kclejeune/corral/internal/manifest"
	"github.com/kclejeune/corral/internal/match"
	"github.com/kclejeune/corral/internal/move"
	"github.com/kclejeune/corral/internal/report"
)

// run matches, moves and prunes under opts.Root. Only the error it returns
// is fatal; individual move failures are logged by the mover.
func run(stdout, stderr io.Writer, opts *config.Options) error {
	files, err := match.Find(opts.Root, opts.Pattern)
	if err != nil {
		return err
	}
	slog.Debug("scan complete", "root", opts.Root, "matched", len(files))

	if !opts.DryRun {
		if err := fsutil.EnsureDir(opts.DestDir); err != nil {
			return err
		}
	}

	res := move.New(stdout, opts.DryRun).Move(files, opts.DestDir)

	var pruned []string
	if !opts.DryRun {
		pruned, err = fsutil.PruneEmptyDirs(opts.Root)
		if err != nil {
			return fmt.Errorf("deleting empty directories: %w", err)
		}
		for _, dir := range pruned {
			slog.Debug("removed empty directory", "path", dir)
		}
	}

	if opts.Manifest != "" {
		m := manifest.New(opts.Pattern.String(), opts.Root, opts.DestDir, opts.DryRun, res, pruned)
		if err := m.Write(opts.Manifest); err != nil {
			return err
		}
		slog.Info("manifest written", "path", opts.Manifest)
	}

	if !quiet {
		report.Write(stderr, report.Summary{
			Matched: len(files),
			Moved:   len(res.Moved),
			Failed:  len(res.Failed),
			Pruned:  len(pruned),
			DryRun:  opts.DryRun,
		})
	}
	return nil
}

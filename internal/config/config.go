package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Options is everything a single run needs, resolved against the working
// directory captured at startup.
type Options struct {
	Pattern  *regexp.Regexp
	Root     string
	DestDir  string
	Manifest string
	DryRun   bool
}

// New compiles pattern and resolves dest and manifest relative to root.
func New(root, pattern, dest, manifest string, dryRun bool) (*Options, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regular expression: %w", err)
	}
	if strings.TrimSpace(dest) == "" {
		return nil, fmt.Errorf("destination directory is required")
	}

	opts := &Options{
		Pattern: re,
		Root:    root,
		DestDir: ResolvePath(dest, root),
		DryRun:  dryRun,
	}
	if manifest != "" {
		opts.Manifest = ResolvePath(manifest, root)
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *Options) Validate() error {
	if o.Pattern == nil {
		return fmt.Errorf("pattern is required")
	}
	if !filepath.IsAbs(o.Root) {
		return fmt.Errorf("root must be absolute, got %q", o.Root)
	}
	if strings.TrimSpace(o.DestDir) == "" {
		return fmt.Errorf("destination directory is required")
	}
	if o.Manifest != "" {
		if info, err := os.Stat(o.Manifest); err == nil && info.IsDir() {
			return fmt.Errorf("manifest path %q is a directory", o.Manifest)
		}
	}
	return nil
}

// ResolvePath returns path unchanged when absolute, otherwise joined to base.
func ResolvePath(path, base string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

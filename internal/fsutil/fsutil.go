// Package fsutil provides shared filesystem utilities.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// EnsureDir creates path and any missing parents. An existing object at
// path is left alone, whether or not it is a directory.
func EnsureDir(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %q: %w", path, err)
	}
	return nil
}

// PruneEmptyDirs removes every directory below root that is empty once its
// own subdirectories have been pruned. Root itself is never removed. The
// removed directories are returned in removal order.
func PruneEmptyDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("reading directory %q: %w", path, err)
		}
		if path != root && d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Pre-order reversed puts every child ahead of its parent.
	slices.Reverse(dirs)

	var removed []string
	for _, dir := range dirs {
		empty, err := isEmptyDir(dir)
		if err != nil {
			return removed, err
		}
		if !empty {
			continue
		}
		if err := os.Remove(dir); err != nil {
			return removed, fmt.Errorf("removing directory %q: %w", dir, err)
		}
		removed = append(removed, dir)
	}
	return removed, nil
}

func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, fmt.Errorf("reading directory %q: %w", dir, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(1)
	if len(names) > 0 {
		return false, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading directory %q: %w", dir, err)
	}
	return true, nil
}

// Package match finds files in a directory tree whose path matches a
// regular expression.
package match

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
)

// Find walks root depth-first and returns every non-directory entry whose
// full path matches re. The search is unanchored, so re may match any part
// of the path, directory components included.
//
// Symlinks to directories are followed and their contents are reported
// under the link's path. A link that leads back to a directory already
// being walked is skipped. Any error reading the tree aborts the walk.
func Find(root string, re *regexp.Regexp) ([]string, error) {
	w := &walker{re: re, active: make(map[string]bool)}
	if err := w.walk(root); err != nil {
		return nil, err
	}
	return w.files, nil
}

type walker struct {
	re    *regexp.Regexp
	files []string
	// Real paths of the directories on the current descent.
	active map[string]bool
}

func (w *walker) walk(dir string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("reading directory %q: %w", dir, err)
	}
	if w.active[resolved] {
		slog.Debug("skipping symlink loop", "path", dir, "target", resolved)
		return nil
	}
	w.active[resolved] = true
	defer delete(w.active, resolved)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %q: %w", dir, err)
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			// Broken links and links to files are plain entries.
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				isDir = true
			}
		}

		if isDir {
			if err := w.walk(path); err != nil {
				return err
			}
			continue
		}

		if w.re.MatchString(path) {
			slog.Debug("matched", "path", path)
			w.files = append(w.files, path)
		}
	}
	return nil
}

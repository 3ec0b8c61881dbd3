// Package manifest records what a run did as a TOML document.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/kclejeune/corral/internal/fsutil"
	"github.com/kclejeune/corral/internal/move"
)

type Failure struct {
	Source      string `toml:"source"`
	Destination string `toml:"destination"`
	Error       string `toml:"error"`
}

type Manifest struct {
	Pattern     string      `toml:"pattern"`
	Root        string      `toml:"root"`
	Destination string      `toml:"destination"`
	DryRun      bool        `toml:"dry_run"`
	CreatedAt   time.Time   `toml:"created_at"`
	Pruned      []string    `toml:"pruned"`
	Moved       []move.Move `toml:"moved"`
	Failed      []Failure   `toml:"failed"`
}

// New builds a manifest from a move result and the directories pruned
// afterwards.
func New(pattern, root, dest string, dryRun bool, res move.Result, pruned []string) *Manifest {
	m := &Manifest{
		Pattern:     pattern,
		Root:        root,
		Destination: dest,
		DryRun:      dryRun,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		Pruned:      pruned,
		Moved:       res.Moved,
	}
	for _, f := range res.Failed {
		m.Failed = append(m.Failed, Failure{
			Source:      f.Source,
			Destination: f.Destination,
			Error:       f.Err.Error(),
		})
	}
	return m
}

func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes m to path, creating the parent directory if needed.
func (m *Manifest) Write(path string) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

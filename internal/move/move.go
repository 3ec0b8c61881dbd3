// Package move relocates files into a single destination directory.
package move

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

type Move struct {
	Source      string `toml:"source"`
	Destination string `toml:"destination"`
}

type Failure struct {
	Source      string
	Destination string
	Err         error
}

type Result struct {
	Moved  []Move
	Failed []Failure
}

// Mover renames files into a destination directory, reporting each
// success on Out. Failures are logged and do not stop the batch.
type Mover struct {
	Out    io.Writer
	DryRun bool
}

func New(out io.Writer, dryRun bool) *Mover {
	return &Mover{Out: out, DryRun: dryRun}
}

// Move renames every file to destDir/<basename>. A later file with the
// same basename as an earlier one overwrites it.
func (m *Mover) Move(files []string, destDir string) Result {
	var res Result
	for _, src := range files {
		dst := filepath.Join(destDir, filepath.Base(src))

		if m.DryRun {
			fmt.Fprintf(m.Out, "Would move file: %s to %s\n", src, dst)
			res.Moved = append(res.Moved, Move{Source: src, Destination: dst})
			continue
		}

		if err := os.Rename(src, dst); err != nil {
			err = renameError(err)
			slog.Error("error moving file", "source", src, "destination", dst, "error", err)
			res.Failed = append(res.Failed, Failure{Source: src, Destination: dst, Err: err})
			continue
		}

		fmt.Fprintf(m.Out, "Moved file: %s to %s\n", src, dst)
		res.Moved = append(res.Moved, Move{Source: src, Destination: dst})
	}
	return res
}

// renameError annotates a failed rename. Cross-device renames are not
// retried as a copy.
func renameError(err error) error {
	if errors.Is(err, unix.EXDEV) {
		return fmt.Errorf("%w (source and destination are on different filesystems)", err)
	}
	return err
}

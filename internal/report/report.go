// Package report prints the end-of-run summary.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Summary struct {
	Matched int
	Moved   int
	Failed  int
	Pruned  int
	DryRun  bool
}

// Write prints a one-line summary to w, colored only when w itself is a
// terminal.
func Write(w io.Writer, s Summary) {
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	label := color.New(color.FgCyan)
	if !colorOutput(w) {
		for _, c := range []*color.Color{ok, fail, label} {
			c.DisableColor()
		}
	}

	verb := "moved"
	if s.DryRun {
		verb = "would move"
	}

	failed := fmt.Sprintf("%d failed", s.Failed)
	if s.Failed > 0 {
		failed = fail.Sprint(failed)
	}

	fmt.Fprintf(w, "%s %d matched, %s, %s, %d empty %s pruned\n",
		label.Sprint("summary:"),
		s.Matched,
		ok.Sprintf("%d %s", s.Moved, verb),
		failed,
		s.Pruned,
		plural(s.Pruned, "directory", "directories"),
	)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func colorOutput(w io.Writer) bool {
	if color.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

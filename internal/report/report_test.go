package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name string
		in   Summary
		want string
	}{
		{
			name: "run",
			in:   Summary{Matched: 3, Moved: 2, Failed: 1, Pruned: 1},
			want: "summary: 3 matched, 2 moved, 1 failed, 1 empty directory pruned\n",
		},
		{
			name: "dry run",
			in:   Summary{Matched: 2, Moved: 2, DryRun: true},
			want: "summary: 2 matched, 2 would move, 0 failed, 0 empty directories pruned\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Write(&buf, tt.in)
			if got := buf.String(); got != tt.want {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Color must follow the destination writer, not stdout.
func TestWriteNoColorOffTerminal(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = saved })
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	Write(&buf, Summary{Matched: 1, Moved: 1, Failed: 1})
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Write() to a buffer emitted escape codes: %q", buf.String())
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	Write(f, Summary{Matched: 1, Moved: 1, Failed: 1})
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Errorf("Write() to a regular file emitted escape codes: %q", data)
	}
}

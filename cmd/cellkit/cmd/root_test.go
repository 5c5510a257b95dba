package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cellkit version 0.1.0-dev (built unknown)\n", out)
}

func TestLayoutCommand(t *testing.T) {
	path := writeConfig(t, `
app:
  title: ops
panels:
  - kind: counter
    height: 3
  - kind: text
    title: help
    height: 3
    text: hello
`)

	out, err := execute(t, "layout", "--config", path, "--width", "30", "--height", "8", "--frames", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "widgets.Column")
	assert.Contains(t, out, "widgets.Border")

	frame := out[strings.Index(out, "ops  frames"):]
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "ops  frames 1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "╭─ counter ─"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "│drawn: 1"), lines[2])
	assert.True(t, strings.HasSuffix(lines[2], "│"), lines[2])
	assert.True(t, strings.HasPrefix(lines[4], "╭─ help ─"), lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "│hello"), lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "╰"), lines[6])
}

func TestLayoutCommandWithoutTree(t *testing.T) {
	path := writeConfig(t, "panels:\n  - kind: text\n    text: hi\n")

	out, err := execute(t, "layout", "--config", path, "--width", "10", "--height", "4", "--tree=false")
	require.NoError(t, err)
	assert.Equal(t, "cellkit  f\n╭─ text ─╮\n│hi      │\n╰────────╯\n", out)
}

func TestLayoutCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero width", []string{"layout", "--width", "0"}, "must be positive"},
		{"no frames", []string{"layout", "--frames", "0"}, "at least 1"},
		{"missing config", []string{"layout", "--config", filepath.Join(t.TempDir(), "nope.yaml")}, "failed to read"},
		{"stray args", []string{"layout", "extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunNeedsTerminal(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happystack/renderer/cmds"
)

// runRenderer drives a fresh command tree the way main does, capturing
// everything written to stdout.
func runRenderer(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := cmds.New()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), append([]string{"renderer"}, args...))
	return out.String(), err
}

func TestRenderRows(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "top without columns",
			args: []string{"top", "--width", "12", "--no-color"},
			want: "┌──────────┐\n",
		},
		{
			name: "top with columns",
			args: []string{"top", "--columns", "4", "--width", "12", "--no-color"},
			want: "┌────┬─────┐\n",
		},
		{
			name: "bottom with columns",
			args: []string{"bottom", "--columns", "4", "--width", "12", "--no-color"},
			want: "└────┴─────┘\n",
		},
		{
			name: "separator default keeps line unbroken",
			args: []string{"separator", "--columns", "4", "--width", "12", "--no-color"},
			want: "├──────────┤\n",
		},
		{
			name: "separator cross override",
			args: []string{"separator", "--columns", "4", "--cross", "--width", "12", "--no-color"},
			want: "├────┼─────┤\n",
		},
		{
			name: "separator up override",
			args: []string{"separator", "--columns", "4", "--up", "--width", "12", "--no-color"},
			want: "├────┴─────┤\n",
		},
		{
			name: "middle row",
			args: []string{"middle", "--columns", "4", "--content", "ab,cd", "--width", "12", "--no-color"},
			want: "│ab  │cd   │\n",
		},
		{
			name: "middle row single span",
			args: []string{"middle", "--content", "hello", "--width", "12", "--no-color"},
			want: "│hello     │\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runRenderer(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderRows_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no row kind", nil},
		{"unknown row kind", []string{"sideways"}},
		{"middle without content", []string{"middle", "--width", "20"}},
		{"middle with wrong cell count", []string{"middle", "--columns", "5", "--content", "only", "--width", "20"}},
		{"conflicting directions", []string{"separator", "--up", "--down", "--width", "20"}},
		{"boundary outside interior", []string{"top", "--columns", "40", "--width", "20"}},
		{"malformed columns", []string{"top", "--columns", "1,x", "--width", "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRenderer(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRenderHeader(t *testing.T) {
	out, err := runRenderer(t, "header")
	require.NoError(t, err)
	assert.Contains(t, out, "HAPPYSTACK")
	assert.Contains(t, out, "A Bash script")

	out, err = runRenderer(t, "header", "Deploy", "production")
	require.NoError(t, err)
	assert.Contains(t, out, "Deploy")
	assert.Contains(t, out, "production")
	assert.NotContains(t, out, "HAPPYSTACK")
}

func TestRenderTable(t *testing.T) {
	doc := `banner:
  title: Deploy
  subtitle: production
columns: [12, 24]
header: [task, status, time]
rows:
  - [build, ok, 1s]
  - [test, ok, 4s]
`
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := runRenderer(t, "table", "--file", path, "--width", "40", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Deploy")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "┼")
	assert.Contains(t, out, "build")

	// Every table line is exactly as wide as requested.
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if !strings.HasPrefix(line, "│") && !strings.HasPrefix(line, "┌") &&
			!strings.HasPrefix(line, "├") && !strings.HasPrefix(line, "└") {
			continue // banner lines are independent of terminal width
		}
		assert.Len(t, []rune(line), 40)
	}
}

func TestRenderVersion(t *testing.T) {
	out, err := runRenderer(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestRenderGlyphs(t *testing.T) {
	out, err := runRenderer(t, "glyphs")
	require.NoError(t, err)
	for _, name := range []string{"corner-top-left", "separator-cross", "line-vertical"} {
		assert.Contains(t, out, name)
	}
}

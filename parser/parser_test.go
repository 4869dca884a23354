package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	doc := `
banner:
  title: Deploy
  subtitle: production
columns: [12, 24]
header: [task, status, time]
rows:
  - [build, ok, 1s]
  - [test, ok, 4s]
separators: true
`

	table, err := NewTable(strings.NewReader(doc))
	require.NoError(t, err)

	require.NotNil(t, table.Banner)
	assert.Equal(t, "Deploy", table.Banner.Title)
	assert.Equal(t, "production", table.Banner.Subtitle)
	assert.Equal(t, []int{12, 24}, table.Columns)
	assert.Equal(t, []string{"task", "status", "time"}, table.Header)
	assert.Len(t, table.Rows, 2)
	assert.True(t, table.Separators)
}

func TestNewTable_Minimal(t *testing.T) {
	table, err := NewTable(strings.NewReader("rows:\n  - [only cell]\n"))
	require.NoError(t, err)

	assert.Nil(t, table.Banner)
	assert.Empty(t, table.Columns)
	assert.Len(t, table.Rows, 1)
}

func TestNewTable_RejectsBadCellCounts(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"short data row", "columns: [10]\nrows:\n  - [a]\n"},
		{"long header row", "columns: [10]\nheader: [a, b, c]\nrows:\n  - [a, b]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(strings.NewReader(tt.doc))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "cell(s)")
		})
	}
}

func TestNewTable_InvalidYAML(t *testing.T) {
	_, err := NewTable(strings.NewReader("rows: [not, {a list"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [8]\nrows:\n  - [a, b]\n"), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, table.Columns)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

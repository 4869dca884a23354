package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// Banner overrides the decorative header block above the table.
type Banner struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// TableFile is the YAML description of a complete table, rendered by the
// table command in one shot instead of one CLI invocation per row.
type TableFile struct {
	Banner     *Banner    `yaml:"banner,omitempty"`
	Columns    []int      `yaml:"columns"`
	Header     []string   `yaml:"header"`
	Rows       [][]string `yaml:"rows"`
	Separators bool       `yaml:"separators"`
}

// NewTable decodes a table description from r and validates the cell counts
// against the column boundaries before any rendering begins.
func NewTable(r io.Reader) (*TableFile, error) {
	var t TableFile

	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	want := len(t.Columns) + 1
	if len(t.Header) > 0 && len(t.Header) != want {
		return nil, fmt.Errorf("header row has %d cell(s), want %d", len(t.Header), want)
	}
	for i, row := range t.Rows {
		if len(row) != want {
			return nil, fmt.Errorf("row %d has %d cell(s), want %d", i, len(row), want)
		}
	}

	return &t, nil
}

// Load reads a table description from a file on disk.
func Load(path string) (*TableFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	return NewTable(f)
}

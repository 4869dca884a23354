package render

import "strings"

// Table describes a complete table for batch rendering: one set of column
// boundaries shared by every row, an optional header row, and data rows.
type Table struct {
	Columns    []int
	Header     []string
	Rows       [][]string
	Separators bool // draw a separator row between data rows
}

// Table renders the whole table at once, composing the same per-row engine a
// caller would otherwise drive one invocation at a time. Rows are joined with
// newlines; the boundaries stay consistent across every row by construction.
func (r *Renderer) Table(t Table) (string, error) {
	var lines []string

	add := func(spec RowSpec) error {
		line, err := r.Row(spec)
		if err != nil {
			return err
		}
		lines = append(lines, line)
		return nil
	}

	if err := add(RowSpec{Kind: Top, Boundaries: t.Columns}); err != nil {
		return "", err
	}

	if len(t.Header) > 0 {
		if err := add(RowSpec{Kind: Middle, Boundaries: t.Columns, Cells: t.Header}); err != nil {
			return "", err
		}
		if err := add(RowSpec{Kind: Separator, Boundaries: t.Columns, Direction: DirCross}); err != nil {
			return "", err
		}
	}

	for i, row := range t.Rows {
		if t.Separators && i > 0 {
			if err := add(RowSpec{Kind: Separator, Boundaries: t.Columns, Direction: DirCross}); err != nil {
				return "", err
			}
		}
		if err := add(RowSpec{Kind: Middle, Boundaries: t.Columns, Cells: row}); err != nil {
			return "", err
		}
	}

	if err := add(RowSpec{Kind: Bottom, Boundaries: t.Columns}); err != nil {
		return "", err
	}

	return strings.Join(lines, "\n"), nil
}

package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Layout holds the normalized column boundaries for one row: sorted ascending,
// deduplicated, every boundary an interior x-offset in [0, width-2).
type Layout struct {
	width      int
	boundaries []int
}

// NewLayout normalizes raw boundaries against the given total row width
// (outer borders included). Input order is irrelevant and duplicates are
// dropped; a boundary outside the interior is an error.
func NewLayout(width int, boundaries []int) (*Layout, error) {
	if width < 4 {
		return nil, fmt.Errorf("terminal width %d too narrow to render a row", width)
	}

	sorted := make([]int, len(boundaries))
	copy(sorted, boundaries)
	sort.Ints(sorted)

	norm := sorted[:0]
	for _, b := range sorted {
		if b < 0 || b >= width-2 {
			return nil, fmt.Errorf("column boundary %d outside interior [0, %d)", b, width-2)
		}
		if len(norm) > 0 && b == norm[len(norm)-1] {
			continue
		}
		norm = append(norm, b)
	}

	return &Layout{width: width, boundaries: norm}, nil
}

// ParseBoundaries parses a comma or space separated list of integers, as
// accepted by the --columns flag. An empty string yields no boundaries.
func ParseBoundaries(raw string) ([]int, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})

	var boundaries []int
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid column boundary %q: %w", f, err)
		}
		boundaries = append(boundaries, n)
	}
	return boundaries, nil
}

// Boundaries returns the normalized boundary offsets.
func (l *Layout) Boundaries() []int {
	return l.boundaries
}

// Segments returns the interior cell widths, one per column. Each boundary
// reserves one cell for its vertical separator glyph; the final segment runs
// to the right margin. Without boundaries the single segment spans the whole
// interior.
func (l *Layout) Segments() []int {
	if len(l.boundaries) == 0 {
		return []int{l.width - 2}
	}

	segments := make([]int, 0, len(l.boundaries)+1)
	segments = append(segments, l.boundaries[0])
	for i := 1; i < len(l.boundaries); i++ {
		segments = append(segments, l.boundaries[i]-l.boundaries[i-1]-1)
	}
	segments = append(segments, (l.width-3)-l.boundaries[len(l.boundaries)-1])
	return segments
}

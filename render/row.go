package render

import (
	"fmt"
	"strings"
)

// RowKind selects which table row a single invocation renders.
type RowKind int

const (
	Top RowKind = iota
	Bottom
	Middle
	Separator
)

// String returns the CLI name of the row kind.
func (k RowKind) String() string {
	switch k {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Middle:
		return "middle"
	case Separator:
		return "separator"
	}
	return fmt.Sprintf("RowKind(%d)", int(k))
}

// Direction overrides the glyph a separator row places at column boundaries,
// so the row can merge with the border above or below it when the two use
// different boundaries.
type Direction int

const (
	DirNone  Direction = iota
	DirUp              // merge with the row above, like a bottom border
	DirDown            // merge with the row below, like a top border
	DirCross           // full cross at every boundary
)

// RowSpec describes one row to render. Cells is meaningful only for Middle
// rows and must hold exactly len(Boundaries)+1 entries; Direction only for
// Separator rows.
type RowSpec struct {
	Kind       RowKind
	Boundaries []int
	Cells      []string
	Direction  Direction
}

// Config is the immutable per-process rendering configuration: the terminal
// geometry snapshot plus the glyph set and color scheme. It is constructed
// once at startup and passed into every rendering call, which keeps the
// terminal width injectable for tests.
type Config struct {
	Width  int
	Height int
	Glyphs GlyphSet
	Colors ColorScheme
}

// DefaultConfig snapshots the live terminal and pairs it with the default
// glyphs and colors.
func DefaultConfig() Config {
	w, h := DetectSize()
	return Config{Width: w, Height: h, Glyphs: DefaultGlyphs(), Colors: DefaultColors()}
}

// Renderer renders rows against one immutable Config. It holds no other
// state; concurrent Row calls are safe.
type Renderer struct {
	cfg Config
}

// New creates a Renderer for the given configuration.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Row renders one complete table row: dim color, left border glyph, interior
// fill, right border glyph, default color. The result is always exactly
// Config.Width visible cells wide.
func (r *Renderer) Row(spec RowSpec) (string, error) {
	layout, err := NewLayout(r.cfg.Width, spec.Boundaries)
	if err != nil {
		return "", err
	}

	var fill string
	switch spec.Kind {
	case Middle:
		fill, err = r.contentFill(layout, spec.Cells)
		if err != nil {
			return "", err
		}
	case Top, Bottom, Separator:
		fill = r.borderFill(layout, r.boundaryGlyph(spec.Kind, spec.Direction))
	default:
		return "", fmt.Errorf("unknown row kind %d", int(spec.Kind))
	}

	left, right := r.edgeGlyphs(spec.Kind)
	c := r.cfg.Colors
	return c.Dim + string(left) + fill + string(right) + c.Default, nil
}

// edgeGlyphs resolves the outer border pair for a row kind.
func (r *Renderer) edgeGlyphs(kind RowKind) (left, right rune) {
	g := r.cfg.Glyphs
	switch kind {
	case Top:
		return g.TopLeft, g.TopRight
	case Bottom:
		return g.BottomLeft, g.BottomRight
	case Separator:
		return g.SeparatorLeft, g.SeparatorRight
	default:
		return g.Vertical, g.Vertical
	}
}

// boundaryGlyph resolves the glyph placed at column boundaries of a border
// row. A separator row defaults to an unbroken horizontal line unless a
// direction override asks it to merge with an adjacent border.
func (r *Renderer) boundaryGlyph(kind RowKind, dir Direction) rune {
	g := r.cfg.Glyphs
	switch kind {
	case Top:
		return g.SeparatorTop
	case Bottom:
		return g.SeparatorBottom
	}
	switch dir {
	case DirUp:
		return g.SeparatorBottom
	case DirDown:
		return g.SeparatorTop
	case DirCross:
		return g.Cross
	}
	return g.Horizontal
}

// borderFill walks the interior offsets 0..width-3 and emits the boundary
// glyph at each column boundary and the horizontal line glyph everywhere
// else.
func (r *Renderer) borderFill(layout *Layout, boundary rune) string {
	boundaries := layout.Boundaries()
	var b strings.Builder
	next := 0
	for x := 0; x <= r.cfg.Width-3; x++ {
		if next < len(boundaries) && boundaries[next] == x {
			b.WriteRune(boundary)
			next++
			continue
		}
		b.WriteRune(r.cfg.Glyphs.Horizontal)
	}
	return b.String()
}

// contentFill renders one padded cell per column and joins them with the
// vertical line glyph. The outer border supplies the final vertical, so no
// separator follows the last cell.
func (r *Renderer) contentFill(layout *Layout, cells []string) (string, error) {
	segments := layout.Segments()
	if len(cells) != len(segments) {
		return "", fmt.Errorf("middle row needs %d cell(s) for %d column boundarie(s), got %d",
			len(segments), len(layout.Boundaries()), len(cells))
	}

	rendered := make([]string, len(cells))
	for i, content := range cells {
		rendered[i] = r.cell(content, segments[i])
	}
	return strings.Join(rendered, string(r.cfg.Glyphs.Vertical)), nil
}

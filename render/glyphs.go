package render

import (
	"fmt"

	"github.com/muesli/termenv"
)

// GlyphSet maps the semantic positions of a table frame to box-drawing runes.
// It is a value type; the default set is constructed once and never mutated.
type GlyphSet struct {
	TopLeft         rune
	TopRight        rune
	BottomLeft      rune
	BottomRight     rune
	SeparatorTop    rune
	SeparatorBottom rune
	SeparatorLeft   rune
	SeparatorRight  rune
	Cross           rune
	Horizontal      rune
	Vertical        rune
}

// DefaultGlyphs returns the standard happystack frame glyphs.
func DefaultGlyphs() GlyphSet {
	return GlyphSet{
		TopLeft:         '┌',
		TopRight:        '┐',
		BottomLeft:      '└',
		BottomRight:     '┘',
		SeparatorTop:    '┬',
		SeparatorBottom: '┴',
		SeparatorLeft:   '├',
		SeparatorRight:  '┤',
		Cross:           '┼',
		Horizontal:      '─',
		Vertical:        '│',
	}
}

// GlyphNames lists the semantic glyph names in display order.
var GlyphNames = []string{
	"corner-top-left",
	"corner-top-right",
	"corner-bottom-left",
	"corner-bottom-right",
	"separator-top",
	"separator-bottom",
	"separator-left",
	"separator-right",
	"separator-cross",
	"line-horizontal",
	"line-vertical",
}

// Lookup resolves a semantic glyph name. An unknown name is a programmer
// error, not a data error, and panics.
func (g GlyphSet) Lookup(name string) rune {
	switch name {
	case "corner-top-left":
		return g.TopLeft
	case "corner-top-right":
		return g.TopRight
	case "corner-bottom-left":
		return g.BottomLeft
	case "corner-bottom-right":
		return g.BottomRight
	case "separator-top":
		return g.SeparatorTop
	case "separator-bottom":
		return g.SeparatorBottom
	case "separator-left":
		return g.SeparatorLeft
	case "separator-right":
		return g.SeparatorRight
	case "separator-cross":
		return g.Cross
	case "line-horizontal":
		return g.Horizontal
	case "line-vertical":
		return g.Vertical
	}
	panic(fmt.Sprintf("render: unknown glyph name %q", name))
}

// ColorScheme holds the two ANSI tokens the engine emits: Default opens each
// cell's content, Dim paints the frame. Empty tokens disable color entirely.
type ColorScheme struct {
	Default string
	Dim     string
}

// DefaultColors returns the standard scheme built from termenv sequences.
func DefaultColors() ColorScheme {
	return ColorScheme{
		Default: termenv.CSI + termenv.ResetSeq + "m",
		Dim:     termenv.CSI + termenv.FaintSeq + "m",
	}
}

// NoColors returns a scheme that emits no escape sequences at all.
func NoColors() ColorScheme {
	return ColorScheme{}
}

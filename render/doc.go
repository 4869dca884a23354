// Package render is the table rendering engine for the happystack renderer CLI.
//
// The engine turns one row specification into one fixed-width terminal line
// built from Unicode box-drawing glyphs and ANSI color codes. It includes:
//
//   - Terminal geometry snapshot with a non-TTY fallback
//   - An immutable glyph set and color scheme
//   - ANSI-aware visible-width measurement and truncation
//   - Column layout arithmetic (boundaries to segment widths)
//   - Border, separator and content row assembly
//   - The static happystack header block
//
// Usage:
//
//	cfg := render.Config{Width: 80, Glyphs: render.DefaultGlyphs(), Colors: render.DefaultColors()}
//	r := render.New(cfg)
//	line, err := r.Row(render.RowSpec{Kind: render.Top, Boundaries: []int{10, 30}})
//	fmt.Println(line)
//
// Every row is exactly Config.Width visible cells wide, borders included. The
// engine is stateless across calls; a caller building a multi-row table supplies
// consistent boundaries itself, or uses Renderer.Table to do so in one shot.
package render

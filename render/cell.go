package render

import "strings"

// cell pads content to exactly segment visible cells: default-color prefix,
// content, dim suffix, space fill. Content wider than its segment is
// truncated ANSI-aware rather than allowed to push the row past the terminal
// edge.
func (r *Renderer) cell(content string, segment int) string {
	w := VisibleWidth(content)
	if w > segment {
		content = truncateVisible(content, segment)
		w = VisibleWidth(content)
	}

	c := r.cfg.Colors
	return c.Default + content + c.Dim + strings.Repeat(" ", segment-w)
}

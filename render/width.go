package render

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// colorSeq matches ANSI CSI color sequences: ESC '[' parameters 'm'.
var colorSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// VisibleWidth measures the on-screen width of s in terminal cells, ignoring
// embedded color escape sequences. The sequences stay in the string for
// display; they are only excluded from the measurement.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripColors(s))
}

// StripColors removes all ANSI color escape sequences from s.
func StripColors(s string) string {
	return colorSeq.ReplaceAllString(s, "")
}

// truncateVisible cuts s down to at most max visible cells while preserving
// every escape sequence, so coloring stays balanced in the truncated output.
func truncateVisible(s string, max int) string {
	var b strings.Builder
	budget := max
	last := 0
	for _, loc := range colorSeq.FindAllStringIndex(s, -1) {
		b.WriteString(clipCells(s[last:loc[0]], &budget))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(clipCells(s[last:], &budget))
	return b.String()
}

// clipCells consumes up to *budget cells of plain text, decrementing the
// budget by what it actually took.
func clipCells(text string, budget *int) string {
	if *budget <= 0 {
		return ""
	}
	t := runewidth.Truncate(text, *budget, "")
	*budget -= runewidth.StringWidth(t)
	return t
}

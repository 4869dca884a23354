package render

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions used when stdout is not a terminal.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// DetectSize queries the controlling terminal for its column and row counts.
// The result is meant to be captured once at startup and treated as immutable
// for the rest of the process. Without a terminal attached it degrades to the
// fallback dimensions.
func DetectSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}

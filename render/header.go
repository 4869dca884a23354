package render

import "fmt"

// Built-in header text, used whenever the caller does not override both
// lines.
const (
	DefaultTitle    = "HAPPYSTACK"
	DefaultSubtitle = "A Bash script"
)

// Header returns the static decorative banner block. Exactly two arguments
// replace the title and subtitle; any other argument count falls back to the
// built-in defaults. The block is independent of terminal width.
func Header(args ...string) string {
	title, subtitle := DefaultTitle, DefaultSubtitle
	if len(args) == 2 {
		title, subtitle = args[0], args[1]
	}

	return fmt.Sprintf(" ┌───┐\n ├───┤  %s\n ├───┤  %s\n └───┘", title, subtitle)
}

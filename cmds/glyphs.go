package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/happystack/renderer/render"
	"github.com/happystack/renderer/ui"
)

func glyphsCmd() *cli.Command {
	return &cli.Command{
		Name:  "glyphs",
		Usage: "list the box-drawing glyph set",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := stdout(cmd)
			glyphs := render.DefaultGlyphs()

			fmt.Fprintln(out, ui.Header.Render("Glyph set"))
			for _, name := range render.GlyphNames {
				fmt.Fprintf(out, "  %s  %s\n",
					ui.Value.Render(string(glyphs.Lookup(name))),
					ui.Label.Render(name))
			}
			return nil
		},
	}
}

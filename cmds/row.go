package cmds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"

	"github.com/happystack/renderer/internal/logger"
	"github.com/happystack/renderer/render"
)

func columnsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "columns",
		Aliases: []string{"c"},
		Usage:   "Comma or space separated interior x-offsets for vertical separators",
	}
}

func widthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "width",
		Usage: "Override the detected terminal width (0 = auto-detect)",
	}
}

func noColorFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable ANSI color output (NO_COLOR in the environment does too)",
	}
}

// rowCmd builds the top and bottom border commands, which share everything
// but their glyph triple.
func rowCmd(name, usage string) *cli.Command {
	kind := render.Top
	if name == "bottom" {
		kind = render.Bottom
	}
	return &cli.Command{
		Name:   name,
		Usage:  usage,
		Flags:  []cli.Flag{columnsFlag(), widthFlag(), noColorFlag()},
		Action: rowAction(kind),
	}
}

func middleCmd() *cli.Command {
	return &cli.Command{
		Name:  "middle",
		Usage: "render a content row",
		Description: `Middle renders one content row. Cells are given with --content as a
comma separated list and must hold exactly one more entry than --columns,
the last cell spanning to the right margin. Cells may contain ANSI color
sequences; those do not count toward the visible width.`,
		Flags: []cli.Flag{
			columnsFlag(),
			&cli.StringFlag{
				Name:  "content",
				Usage: "Comma separated cell contents, one per column",
			},
			widthFlag(),
			noColorFlag(),
		},
		Action: rowAction(render.Middle),
	}
}

func separatorCmd() *cli.Command {
	return &cli.Command{
		Name:  "separator",
		Usage: "render a horizontal divider row",
		Description: `Separator renders a divider between two content rows. By default its
column boundaries are drawn as plain horizontal line glyphs; --up, --down
or --cross select a merging glyph so the divider joins the border above,
below, or both when adjacent rows use different boundaries.`,
		Flags: []cli.Flag{
			columnsFlag(),
			&cli.BoolFlag{Name: "up", Usage: "Merge boundaries with the row above"},
			&cli.BoolFlag{Name: "down", Usage: "Merge boundaries with the row below"},
			&cli.BoolFlag{Name: "cross", Usage: "Draw a full cross at every boundary"},
			widthFlag(),
			noColorFlag(),
		},
		Action: rowAction(render.Separator),
	}
}

func rowAction(kind render.RowKind) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		spec := render.RowSpec{Kind: kind}

		if raw := cmd.String("columns"); raw != "" {
			boundaries, err := render.ParseBoundaries(raw)
			if err != nil {
				return err
			}
			spec.Boundaries = boundaries
		}

		if kind == render.Middle {
			raw := cmd.String("content")
			if raw == "" {
				return errors.New("middle rows require --content")
			}
			spec.Cells = strings.Split(raw, ",")
		}

		if kind == render.Separator {
			dir, err := direction(cmd)
			if err != nil {
				return err
			}
			spec.Direction = dir
		}

		cfg := buildConfig(cmd)
		logger.Debug("rendering row", "kind", kind.String(), "width", cfg.Width, "columns", len(spec.Boundaries))

		line, err := render.New(cfg).Row(spec)
		if err != nil {
			return err
		}

		fmt.Fprintln(stdout(cmd), line)
		return nil
	}
}

// direction resolves the separator merge override. The three flags are
// mutually exclusive; combining them is rejected rather than letting the
// last one win.
func direction(cmd *cli.Command) (render.Direction, error) {
	dir := render.DirNone
	set := 0
	for flag, d := range map[string]render.Direction{
		"up":    render.DirUp,
		"down":  render.DirDown,
		"cross": render.DirCross,
	} {
		if cmd.Bool(flag) {
			dir = d
			set++
		}
	}
	if set > 1 {
		return render.DirNone, errors.New("at most one of --up, --down, --cross may be given")
	}
	return dir, nil
}

// buildConfig assembles the immutable rendering configuration for this
// invocation: injected or detected geometry, default glyphs, and a color
// scheme that honors --no-color and non-TTY output.
func buildConfig(cmd *cli.Command) render.Config {
	cfg := render.Config{
		Glyphs: render.DefaultGlyphs(),
		Colors: colorScheme(cmd),
	}

	if w := int(cmd.Int("width")); w > 0 {
		cfg.Width = w
		cfg.Height = render.FallbackHeight
	} else {
		cfg.Width, cfg.Height = render.DetectSize()
	}
	return cfg
}

func colorScheme(cmd *cli.Command) render.ColorScheme {
	if cmd.Bool("no-color") || termenv.EnvNoColor() {
		return render.NoColors()
	}
	return render.DefaultColors()
}

package cmds

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/happystack/renderer/internal/logger"
	"github.com/happystack/renderer/parser"
	"github.com/happystack/renderer/render"
)

func tableCmd() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "render a complete table from a YAML description",
		Description: `Table reads a YAML file describing column boundaries, an optional
banner, an optional header row and data rows, then renders the whole
table in one invocation instead of one invocation per row.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the table description",
				Required: true,
				Validator: func(s string) error {
					if _, err := os.Stat(s); errors.Is(err, fs.ErrNotExist) {
						return fmt.Errorf("table file does not exist: %s", s)
					}
					return nil
				},
			},
			widthFlag(),
			noColorFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("file")

			tf, err := parser.Load(path)
			if err != nil {
				return err
			}

			cfg := buildConfig(cmd)
			logger.Debug("rendering table", "file", path, "rows", len(tf.Rows), "width", cfg.Width)

			out := stdout(cmd)
			if tf.Banner != nil {
				fmt.Fprintln(out, render.Header(tf.Banner.Title, tf.Banner.Subtitle))
			}

			table, err := render.New(cfg).Table(render.Table{
				Columns:    tf.Columns,
				Header:     tf.Header,
				Rows:       tf.Rows,
				Separators: tf.Separators,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(out, table)
			return nil
		},
	}
}

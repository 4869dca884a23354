package cmds

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/happystack/renderer/internal/logger"
)

// New builds a fresh root command. Each invocation renders exactly one row
// (or one block, for header and table), so the command tree is rebuilt per
// run and carries no state across invocations.
func New() *cli.Command {
	return &cli.Command{
		Name:  "renderer",
		Usage: "render fixed-width table rows for happystack output",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("RENDERER_LOG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Setup(&logger.Config{
				Level:  logger.ParseLevelFromString(cmd.String("log-level")),
				Format: "text",
				Output: os.Stderr,
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			rowCmd("top", "render the top border row"),
			rowCmd("bottom", "render the bottom border row"),
			middleCmd(),
			separatorCmd(),
			headerCmd(),
			tableCmd(),
			glyphsCmd(),
			versionCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("unknown row kind %q", cmd.Args().First())
			}
			return fmt.Errorf("missing row kind (top, bottom, middle, separator)")
		},
	}
}

func Execute(ctx context.Context, args []string) error {
	return New().Run(ctx, args)
}

// stdout resolves the writer rendered output goes to. Tests inject a buffer
// through the root command's Writer.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

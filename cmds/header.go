package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/happystack/renderer/render"
)

func headerCmd() *cli.Command {
	return &cli.Command{
		Name:      "header",
		Usage:     "print the decorative banner block",
		ArgsUsage: "[title subtitle]",
		Description: `Header prints the static happystack banner. With exactly two arguments
the title and subtitle are replaced verbatim; any other argument count
falls back to the built-in text.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(stdout(cmd), render.Header(cmd.Args().Slice()...))
			return nil
		},
	}
}

package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/happystack/renderer/internal/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Usage:   "Show version information",
		Aliases: []string{"v"},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(stdout(cmd), version.Get())
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/happystack/renderer/cmds"
	"github.com/happystack/renderer/ui"
)

func main() {
	if err := cmds.Execute(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Render("renderer: "+err.Error()))
		os.Exit(1)
	}
}

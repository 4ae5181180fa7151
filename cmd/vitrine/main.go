package main

import (
	"fmt"
	"os"

	"github.com/atelier-tools/vitrine/internal/cli"
	"github.com/atelier-tools/vitrine/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// The root command silences cobra's own error printing, so the
		// error surfaces exactly once, here.
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

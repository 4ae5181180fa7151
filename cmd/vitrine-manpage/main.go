package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/atelier-tools/vitrine/internal/cli"
	"github.com/atelier-tools/vitrine/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "VITRINE",
		Section: "1",
		Source:  "vitrine " + version.Version,
		Manual:  "vitrine manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

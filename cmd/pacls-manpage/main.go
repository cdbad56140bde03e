package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pacls/cmd/pacls"
	"github.com/arthur-debert/pacls/internal/version"
)

func main() {
	rootCmd := pacls.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PACLS",
		Section: "1",
		Source:  "pacls " + version.Version,
		Manual:  "pacls manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

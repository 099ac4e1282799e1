// Package main is the entry point for the ecoimpact CLI.
package main

import (
	"fmt"
	"os"

	"github.com/AviL26/project-insights-sub001/internal/cli"
	"github.com/AviL26/project-insights-sub001/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the result to an exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

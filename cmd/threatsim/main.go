// Package main is the entry point for the threatsim CLI/TUI.
package main

import (
	"os"

	"github.com/t4skforce/threatsim/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

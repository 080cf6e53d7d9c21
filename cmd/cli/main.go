// Package main is the entry point for the proposal-pricing CLI.
package main

import (
	"os"

	"proposal-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the lvalign CLI.
package main

import (
	"os"

	"github.com/katalvlaran/lvalign/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

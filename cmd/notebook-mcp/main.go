// Package main is the entry point for the notebook-mcp launcher.
// The launcher bootstraps the Python backend and hands it the terminal.
package main

import (
	"os"

	"github.com/akram-side-projects/notebook-mcp/cmd/notebook-mcp/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

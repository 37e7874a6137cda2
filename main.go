// ./main.go
package main

import (
	"github.com/xkilldash9x/reify-cli/cmd"
)

// main is the entry point for the Reify CLI application.
func main() {
	// Execute the root command defined in the cmd package.
	// This handles all command-line parsing, configuration, and execution.
	cmd.Execute()
}

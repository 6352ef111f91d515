// Command thermaflow is a thin CLI demo over the engine: it reads a
// NetworkConfig from a JSON file, runs it and prints a report plus the
// freeze verdict. It is layered strictly above the core and imports
// nothing the core doesn't already export.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

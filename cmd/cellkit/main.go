// Command cellkit runs a terminal dashboard built from cellkit.yaml.
package main

import (
	"os"

	"github.com/go-drift/cellkit/cmd/cellkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

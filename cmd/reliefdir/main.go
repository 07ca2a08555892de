// Command reliefdir browses organizations offering wildfire relief.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/reliefdir/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli.SetVersion(version)
	cli.SetBootstrapper(newServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

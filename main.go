// Copyright (c) 2026 Cronlens Team
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Cronlens.
//
// Usage:
//
//	go run . [flags]
//	./cronlens [flags]
//
// This launches the Cronlens CLI. See --help for options.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/toeirei/cronlens/ui/cli"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

// main is the entrypoint for the Cronlens CLI.
func main() {
	// Print version info if requested (optional, placeholder for future flag parsing)
	if os.Getenv("CRONLENS_SHOW_VERSION") == "1" {
		fmt.Fprintf(os.Stderr, "Cronlens version: %s\n", version)
	}

	if err := cli.Execute(); err != nil {
		log.Printf("Cronlens CLI error: %v", err)
		os.Exit(1)
	}
}

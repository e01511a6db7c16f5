// Package main is the entry point for the hemistich CLI.
//
// This binary provides commands for working with a corpus of Persian
// ghazal text files: counting couplets per poem with aggregate corpus
// statistics, and heuristic meter assessment of individual poems. It
// delegates all functionality to the internal/cli package, which defines
// cobra commands.
package main

import (
	"github.com/theodore-s-beers/hemistich/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// During development they default to "dev", "none", and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package, keeping the
	// build system decoupled from the CLI framework.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}

// Package main is the entry point for the workorders CLI.
//
// The binary fetches project work orders from the Innergy API using an
// API key read from a local .env file, and prints the outcome as a JSON
// envelope. It delegates all functionality to the internal/cli package,
// which defines the cobra commands.
package main

import (
	"github.com/innergy-tools/workorders/internal/cli"
)

// version, commit, and date are set by GoReleaser at build time via
// ldflags. During development they default to "dev", "none", and "unknown".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}

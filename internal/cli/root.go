// Package cli implements the cobra-based commands for workorders.
//
// Running the bare binary performs the fetch: load the dotenv file, call
// the Innergy API once, and print a JSON result envelope to stdout. The
// "list" subcommand renders a human-readable table instead. This file
// defines the root command, the global flags, and the stderr diagnostics
// logger — stdout is reserved for command output.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Global flag variables bound to cobra persistent flags on the root
// command, available to every subcommand.
var (
	// envPath overrides the dotenv file location. Empty means "not given",
	// letting the settings file or the built-in default decide.
	envPath string

	// configPath names an explicit YAML settings file. Empty means the
	// default .workorders.yaml lookup applies.
	configPath string

	// verbose lowers the stderr log level to debug.
	verbose bool
)

// Version, Commit, and Date are set at build time via ldflags and injected
// from the main package for --version output.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// Unlike most CLIs, the root command does real work: it runs the fetch.
// This keeps the original one-flag invocation (`workorders --env-path x`)
// working while still allowing subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workorders",
		Short: "Fetch work orders from the Innergy API",
		Long: `workorders reads an API key from a local .env file, fetches the project
work orders from the Innergy API in a single request, and prints the result
as pretty-printed JSON on stdout.

All outcomes — including failures — are encoded in the printed JSON, so the
command always terminates normally.

Examples:
  workorders
  workorders --env-path /opt/secrets/.env
  workorders list --status "In Progress"`,

		// The envelope contract encodes all outcomes in stdout JSON, so
		// cobra must not add its own usage or error noise around a run.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), cmd.OutOrStdout(), currentOptions())
		},
	}

	rootCmd.PersistentFlags().StringVar(&envPath, "env-path", "",
		fmt.Sprintf("Path to the .env file holding API_KEY (default %q)", "../.env"))
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a YAML settings file (default: .workorders.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging on stderr")

	rootCmd.AddCommand(NewListCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes. The fetch path
// never returns an error (every outcome is a printed envelope); errors
// reaching this point come from subcommands or flag parsing.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runOptions snapshots the global flags for one command invocation.
// Commands take it as a parameter so tests can drive them without
// touching package globals.
type runOptions struct {
	envPath    string
	configPath string
	verbose    bool
}

// currentOptions captures the bound flag values.
func currentOptions() runOptions {
	return runOptions{
		envPath:    envPath,
		configPath: configPath,
		verbose:    verbose,
	}
}

// newLogger builds the stderr diagnostics logger. Stdout stays clean for
// envelopes and tables; everything diagnostic goes through zerolog on
// stderr. --verbose forces debug regardless of the configured level.
func newLogger(level string, verbose bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
}

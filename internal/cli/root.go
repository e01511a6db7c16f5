// Package cli implements the cobra-based CLI commands for hemistich.
//
// Each subcommand (count, meter) is defined in its own file within this
// package. This file defines the root command that serves as the parent
// for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theodore-s-beers/hemistich/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When false (default), output uses the plain text format.
	jsonOutput bool

	// verbose enables detailed progress output to stderr.
	verbose bool
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package for --version output.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// errorLabel styles the "Error:" prefix on stderr. lipgloss downgrades
// the styling automatically when stderr is not a color terminal.
var errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

// NewRootCommand creates and configures the root cobra command.
// The root command itself performs no action; functionality lives in the
// count and meter subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hemistich",
		Short: "Line statistics and meter assessment for ghazal corpora",
		Long: `hemistich works with a corpus of Persian ghazal text files, one
hemistich (half-line) per line, blank lines separating couplets.

The count command validates each file's line structure, derives a
couplet count per ghazal, and prints aggregate statistics with a
frequency distribution. The meter command gives a heuristic meter
assessment of a single poem in Persian/Arabic script.`,

		// SilenceUsage prevents cobra from printing usage on every error;
		// SilenceErrors leaves error formatting to Execute.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewCountCommand())
	rootCmd.AddCommand(NewMeterCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// CLIError values carry their own exit codes; other errors exit with 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			errObj["error"].(map[string]interface{})["cause"] = underlying.Error()
		}
		enc := json.NewEncoder(os.Stderr)
		enc.SetIndent("", "  ")
		_ = enc.Encode(errObj)
		return
	}

	if underlying != nil {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", errorLabel.Render("Error:"), message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorLabel.Render("Error:"), message)
	}
}

// VerboseLog writes a formatted message to stderr when --verbose is set.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

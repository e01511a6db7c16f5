// Package model defines the domain types and value objects for the
// hemistich CLI.
//
// This package contains pure data structures with no external dependencies.
// A Measurement pairs a ghazal filename with its couplet count; a
// Collection holds the ordered sequence of measurements for one run; a
// Distribution tallies how many ghazals share each couplet count.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model

// Package model defines the domain types for the hemistich CLI.
//
// A ghazal file is represented as a Measurement: the file's name together
// with the number of couplets (hemistich pairs) it contains. Measurements
// are collected in processing order into a Collection, from which a value
// frequency Distribution is derived at report time.
package model

import (
	"fmt"
	"sort"
)

// Measurement is the couplet count for a single ghazal file.
// It is created once per file and never modified afterward.
type Measurement struct {
	// Name is the bare filename of the source file (e.g., "12.txt").
	Name string `json:"name"`

	// Couplets is the number of hemistich pairs: the non-empty line count
	// of the file divided by two. Always non-negative.
	Couplets int `json:"couplets"`
}

// Collection is the ordered sequence of Measurements across all scanned
// directories. Order is directory order, then numeric-stem-ascending
// filename order within each directory.
type Collection []Measurement

// Values returns the couplet counts of the collection in order.
func (c Collection) Values() []int {
	values := make([]int, len(c))
	for i, m := range c {
		values[i] = m.Couplets
	}
	return values
}

// Distribution maps a couplet count to the number of Measurements sharing
// that count.
type Distribution map[int]int

// NewDistribution tallies the given values into a Distribution.
func NewDistribution(values []int) Distribution {
	dist := make(Distribution, len(values))
	for _, v := range values {
		dist[v]++
	}
	return dist
}

// Keys returns the distinct values of the distribution in ascending order.
// Reports enumerate the distribution in this order.
func (d Distribution) Keys() []int {
	keys := make([]int, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// ExitCode defines the process exit codes used by the CLI.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitDirNotFound indicates an expected corpus directory does not exist.
	ExitDirNotFound ExitCode = 2

	// ExitOddHemistichs indicates a file's non-empty line count is odd,
	// so its hemistichs cannot pair into couplets.
	ExitOddHemistichs ExitCode = 3

	// ExitStatsError indicates a statistics precondition failed
	// (sample standard deviation over fewer than two measurements).
	ExitStatsError ExitCode = 4

	// ExitFileTooLarge indicates a poem file exceeds the meter analyzer's
	// size limit.
	ExitFileTooLarge ExitCode = 5

	// ExitPoemTooShort indicates a poem has too few hemistichs for meter
	// assessment.
	ExitPoemTooShort ExitCode = 6

	// ExitBadScript indicates a poem contains a character outside the
	// Persian/Arabic script the meter analyzer understands.
	ExitBadScript ExitCode = 7
)

// CLIError is an error that carries an exit code.
// The root command translates it into the process exit status.
type CLIError struct {
	// Code is the exit code to terminate the process with.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is / errors.As chains.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

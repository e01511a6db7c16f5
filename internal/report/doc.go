// Package report renders the run's output: per-file progress lines, the
// banner-delimited statistics section, the couplet-count distribution,
// and an equivalent JSON document for machine consumption.
//
// The text format is a fixed contract (consumed by existing scripts and
// eyeballs), so rendering is plain fmt formatting rather than a table
// library: mean, median, and standard deviation print with two decimals,
// counts print as integers.
package report

// Package cli — count.go implements the "hemistich count" command.
//
// The count command scans corpus directories for poem files, counts the
// non-empty lines of each, validates that hemistichs pair into couplets,
// and prints per-file progress followed by aggregate statistics and a
// couplet-count frequency distribution.
//
// The run is strictly sequential and fails hard: a missing directory or
// a file with an odd hemistich count aborts everything, with no partial
// statistics. Correctness favors hard failure over silent miscounting.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theodore-s-beers/hemistich/internal/config"
	"github.com/theodore-s-beers/hemistich/internal/corpus"
	"github.com/theodore-s-beers/hemistich/internal/counting"
	"github.com/theodore-s-beers/hemistich/internal/model"
	"github.com/theodore-s-beers/hemistich/internal/report"
)

// countFlags holds the flag values for the count command.
type countFlags struct {
	// configPath points at an optional corpus config file (JSON, JSONC,
	// or YAML). Empty means built-in defaults.
	configPath string

	// pattern overrides the filename glob selecting poem files.
	pattern string
}

// NewCountCommand creates the "count" cobra command.
func NewCountCommand() *cobra.Command {
	flags := &countFlags{}

	cmd := &cobra.Command{
		Use:   "count [directories...]",
		Short: "Count couplets per ghazal and print corpus statistics",
		Long: `Count the couplets of every ghazal file in the corpus directories
and print aggregate statistics.

Each file is read line by line; lines that are non-empty after trimming
whitespace are hemistichs, and every two hemistichs form one couplet.
A file with an odd number of hemistichs is structurally broken and
aborts the run. Files with more than the warning threshold of
hemistichs are flagged but still counted.

With no arguments, the hafiz-1 and hafiz-2 directories are scanned.

Examples:
  hemistich count
  hemistich count divan-a divan-b
  hemistich count --config corpus.jsonc
  hemistich count --json`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd.OutOrStdout(), flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "",
		"Path to a corpus config file (.json, .jsonc, .yaml)")
	cmd.Flags().StringVar(&flags.pattern, "pattern", "",
		"Filename glob for poem files (default \"*.txt\")")

	return cmd
}

// runCount is the main logic for the count command.
func runCount(out io.Writer, flags *countFlags, dirs []string) error {
	// Resolve configuration: defaults, then config file, then flags and
	// positional directories, most specific last.
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		VerboseLog("Loaded config from %s", flags.configPath)
	}
	if len(dirs) > 0 {
		cfg.Directories = dirs
	}
	if flags.pattern != "" {
		cfg.Pattern = flags.pattern
	}

	// Warning notices go to stdout alongside progress lines, except in
	// JSON mode where they would corrupt the document.
	warnOut := out
	if IsJSONOutput() {
		warnOut = os.Stderr
	}

	var collection model.Collection

	for _, dir := range cfg.Directories {
		paths, err := corpus.ListDir(dir, cfg.Pattern)
		if err != nil {
			return err
		}
		VerboseLog("Scanning %s: %d files", dir, len(paths))

		for _, path := range paths {
			couplets, err := counting.CountCouplets(path, cfg.WarnThreshold, warnOut)
			if err != nil {
				return err
			}

			m := model.Measurement{Name: filepath.Base(path), Couplets: couplets}
			collection = append(collection, m)
			if !IsJSONOutput() {
				report.Progress(out, m)
			}
		}
	}

	if IsJSONOutput() {
		if err := report.WriteJSON(out, collection); err != nil {
			return model.WrapCLIError(model.ExitStatsError,
				"failed to compute statistics", err)
		}
		return nil
	}

	if err := report.WriteStats(out, collection); err != nil {
		return model.WrapCLIError(model.ExitStatsError,
			"failed to compute statistics", err)
	}
	return nil
}

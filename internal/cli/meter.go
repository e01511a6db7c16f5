// Package cli — meter.go implements the "hemistich meter" command.
//
// The meter command runs the heuristic meter assessment over a single
// ghazal file in Persian/Arabic script and prints the resulting report.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/theodore-s-beers/hemistich/internal/meter"
)

// NewMeterCommand creates the "meter" cobra command.
func NewMeterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meter <file>",
		Short: "Assess the meter of a single ghazal",
		Long: `Assess the meter of one ghazal file, written one hemistich per line
in Persian/Arabic script.

The assessment reports the reconstructed hemistichs, the apparent meter
length (long or short, from average letters per hemistich), indications
of first- and second-syllable length, and suggested named meters.

Examples:
  hemistich meter hafiz-1/21.txt
  hemistich meter --json hafiz-1/21.txt`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeter(cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

// runMeter is the main logic for the meter command.
func runMeter(out io.Writer, path string) error {
	VerboseLog("Assessing meter of %s", path)

	rep, err := meter.AssessFile(path)
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		doc := map[string]string{
			"file":   path,
			"report": rep,
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	fmt.Fprint(out, rep)
	return nil
}

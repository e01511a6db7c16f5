package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/theodore-s-beers/hemistich/internal/model"
	"github.com/theodore-s-beers/hemistich/internal/stats"
)

// bannerWidth is the width of the "=" rule delimiting the statistics
// section.
const bannerWidth = 50

// Progress writes the per-file progress line for one measurement:
//
//	<filename>: <count> lines
//
// The count shown is the couplet count, matching the historical output
// of the corpus scripts.
func Progress(w io.Writer, m model.Measurement) {
	fmt.Fprintf(w, "%s: %d lines\n", m.Name, m.Couplets)
}

// WriteStats renders the statistics section and distribution for the
// collection. An empty collection produces no output at all.
//
// Any error from statistics computation (a single measurement cannot
// yield a sample standard deviation) is returned unhandled; no partial
// statistics section is emitted in that case.
func WriteStats(w io.Writer, c model.Collection) error {
	if len(c) == 0 {
		return nil
	}

	values := c.Values()
	summary, err := stats.Summarize(values)
	if err != nil {
		return err
	}

	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "STATISTICS")
	fmt.Fprintln(w, banner)

	fmt.Fprintf(w, "Total ghazals: %d\n", summary.Count)
	fmt.Fprintf(w, "Mean lines per ghazal: %.2f\n", summary.Mean)
	fmt.Fprintf(w, "Median lines per ghazal: %.2f\n", summary.Median)
	fmt.Fprintf(w, "Min lines: %d\n", summary.Min)
	fmt.Fprintf(w, "Max lines: %d\n", summary.Max)
	fmt.Fprintf(w, "Standard deviation: %.2f\n", summary.StdDev)

	fmt.Fprintln(w, "\nDistribution:")
	dist := model.NewDistribution(values)
	for _, v := range dist.Keys() {
		fmt.Fprintf(w, "  %d lines: %d ghazals\n", v, dist[v])
	}

	return nil
}

// jsonReport is the machine-readable form of a run's results.
type jsonReport struct {
	Ghazals      model.Collection   `json:"ghazals"`
	Stats        *stats.Summary     `json:"stats,omitempty"`
	Distribution model.Distribution `json:"distribution,omitempty"`
}

// WriteJSON renders the collection and its statistics as an indented JSON
// document. An empty collection yields a document with an empty ghazal
// list and no stats, mirroring the text renderer's no-statistics rule.
func WriteJSON(w io.Writer, c model.Collection) error {
	doc := jsonReport{Ghazals: c}
	if doc.Ghazals == nil {
		doc.Ghazals = model.Collection{}
	}
	if len(c) > 0 {
		values := c.Values()
		summary, err := stats.Summarize(values)
		if err != nil {
			return err
		}
		doc.Stats = summary
		doc.Distribution = model.NewDistribution(values)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

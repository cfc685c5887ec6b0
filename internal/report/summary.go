// Package report renders aggregated benchmark results: console summaries,
// LaTeX tables with paper-ready macros, and binary snapshots for reuse.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hpostats/optarena/internal/analysis"
)

// WriteSummary renders one benchmark's per-optimizer aggregates in the
// requested format (table, markdown, json).
func WriteSummary(table *analysis.BenchmarkTable, format string, w io.Writer) error {
	switch format {
	case "markdown":
		return writeMarkdown(table, w)
	case "json":
		return writeJSON(table, w)
	case "table", "":
		return writeTable(table, w)
	}
	return fmt.Errorf("unknown format %q, must be one of [table markdown json]", format)
}

func writeTable(table *analysis.BenchmarkTable, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPTIMIZER\tSEEDS\tMEAN\tMEDIAN\tQ1\tQ3\tMEDIAN TIME")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, a := range table.Aggregates {
		fmt.Fprintf(tw, "%s\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%.1fs\n",
			a.Optimizer, len(a.Values), a.Mean, a.Median, a.Q1, a.Q3, a.MedianTimeUsed)
	}
	return tw.Flush()
}

func writeMarkdown(table *analysis.BenchmarkTable, w io.Writer) error {
	fmt.Fprintln(w, "| Optimizer | Seeds | Mean | Median | Q1 | Q3 | Median Time |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|")
	for _, a := range table.Aggregates {
		fmt.Fprintf(w, "| %s | %d | %.4g | %.4g | %.4g | %.4g | %.1fs |\n",
			a.Optimizer, len(a.Values), a.Mean, a.Median, a.Q1, a.Q3, a.MedianTimeUsed)
	}
	return nil
}

func writeJSON(table *analysis.BenchmarkTable, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(table)
}

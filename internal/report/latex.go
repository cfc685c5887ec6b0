package report

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/hpostats/optarena/internal/analysis"
)

// Formatter selects how table cells render regret values.
type Formatter string

const (
	// FormatterOrig: scientific notation with two decimals below 1e-3,
	// three significant digits otherwise.
	FormatterOrig Formatter = "orig"
	// FormatterFixed: five fixed decimals.
	FormatterFixed Formatter = "fixed"
)

// ParseFormatter validates a formatter name.
func ParseFormatter(s string) (Formatter, error) {
	switch Formatter(s) {
	case FormatterOrig, FormatterFixed:
		return Formatter(s), nil
	}
	return "", fmt.Errorf("unknown formatter %q, must be one of [orig fixed]", s)
}

// FormatValue renders one regret value under the formatter rules.
func (f Formatter) FormatValue(val float64) string {
	if f == FormatterFixed {
		return fmt.Sprintf("%.5f", val)
	}
	if val < 1e-3 {
		return fmt.Sprintf("%.2e", val)
	}
	return fmt.Sprintf("%.3g", math.Round(val*1000)/1000)
}

// Bold wraps a formatted value in the bold-markup token the LaTeX writer
// later expands into \textbf.
func Bold(s string) string {
	return "textbf{" + s + "}"
}

// MedianTable is the cross-benchmark table of formatted median regrets with
// the per-row winners bolded, plus the combined mean-of-medians scores.
type MedianTable struct {
	Optimizers []string
	Rows       []MedianRow
	Scores     []analysis.CombinedScore
}

// MedianRow holds one benchmark's formatted cell per optimizer; optimizers
// without data render as a dash.
type MedianRow struct {
	Benchmark string
	Cells     map[string]string
}

// BuildMedianTable formats per-benchmark aggregates into table cells. Every
// optimizer tied for the row minimum is bolded; the combined scores keep
// the first-argmin tie-break for the overall winner.
func BuildMedianTable(tables []analysis.BenchmarkTable, optimizers []string, formatter Formatter) MedianTable {
	out := MedianTable{
		Optimizers: optimizers,
		Scores:     analysis.Combine(tables, optimizers),
	}
	for i := range tables {
		row := MedianRow{Benchmark: tables[i].Benchmark, Cells: make(map[string]string)}
		best := math.Inf(1)
		for _, opt := range optimizers {
			if agg, ok := tables[i].Find(opt); ok && agg.Median < best {
				best = agg.Median
			}
		}
		for _, opt := range optimizers {
			agg, ok := tables[i].Find(opt)
			if !ok {
				row.Cells[opt] = "-"
				continue
			}
			cell := formatter.FormatValue(agg.Median)
			if agg.Median == best {
				cell = Bold(cell)
			}
			row.Cells[opt] = cell
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// latexReplacements expands the bold/underline tokens into real LaTeX
// markup after the table body is assembled.
var latexReplacements = [][2]string{
	{"textbf", `\textbf`},
	{"underline", `\underline`},
}

// WriteLatex writes the median table as a LaTeX tabular. Benchmark names
// are replaced by their configured typeset macros, and two trailing rows
// carry the combined mean-of-medians (winner bolded) and the ordinal ranks.
func WriteLatex(path string, table MedianTable, macros map[string]string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\\begin{tabular}{l%s}\n", strings.Repeat("r", len(table.Optimizers)))
	b.WriteString("\\toprule\n")
	b.WriteString("benchmark")
	for _, opt := range table.Optimizers {
		b.WriteString(" & " + opt)
	}
	b.WriteString(" \\\\\n\\midrule\n")

	for _, row := range table.Rows {
		name := row.Benchmark
		if macro, ok := macros[name]; ok && macro != "" {
			name = macro
		}
		b.WriteString(name)
		for _, opt := range table.Optimizers {
			b.WriteString(" & " + row.Cells[opt])
		}
		b.WriteString(" \\\\\n")
	}

	if len(table.Scores) > 0 {
		b.WriteString("\\midrule\n")
		best, _ := analysis.Best(table.Scores)
		scoreByOpt := make(map[string]analysis.CombinedScore, len(table.Scores))
		for _, s := range table.Scores {
			scoreByOpt[s.Optimizer] = s
		}
		b.WriteString("mean")
		for _, opt := range table.Optimizers {
			s, ok := scoreByOpt[opt]
			if !ok {
				b.WriteString(" & -")
				continue
			}
			cell := FormatterOrig.FormatValue(s.MeanOfMedians)
			if s.Optimizer == best.Optimizer {
				cell = Bold(cell)
			}
			b.WriteString(" & " + cell)
		}
		b.WriteString(" \\\\\n")
		b.WriteString("rank")
		for _, opt := range table.Optimizers {
			if s, ok := scoreByOpt[opt]; ok {
				fmt.Fprintf(&b, " & %d", s.Rank)
			} else {
				b.WriteString(" & -")
			}
		}
		b.WriteString(" \\\\\n")
	}

	b.WriteString("\\bottomrule\n\\end{tabular}\n")

	latex := b.String()
	for _, r := range latexReplacements {
		latex = strings.ReplaceAll(latex, r[0], r[1])
	}
	return os.WriteFile(path, []byte(latex), 0o644)
}

// WriteCorrelationTable writes the fidelity-correlation matrix as a LaTeX
// tabular: one column per lower fidelity, one row per fidelity, cells
// "rho (n)" above the diagonal and a dash at and below it.
func WriteCorrelationTable(path string, table *analysis.CorrelationTable) error {
	fidels := table.Fidelities
	if len(fidels) < 2 {
		return fmt.Errorf("correlation table needs at least two fidelity levels, got %d", len(fidels))
	}
	cols := fidels[:len(fidels)-1]

	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{tabular}{l%s}\n", strings.Repeat("r", len(cols)))
	b.WriteString("\\toprule\n")
	for _, f := range cols {
		fmt.Fprintf(&b, " & %g", f)
	}
	b.WriteString(" \\\\\n\\midrule\n")
	for _, f2 := range fidels {
		fmt.Fprintf(&b, "%g", f2)
		for _, f1 := range cols {
			c, ok := table.At(f1, f2)
			if !ok || f2 < f1 {
				b.WriteString(" & -")
				continue
			}
			fmt.Fprintf(&b, " & %.3g (%d)", math.Round(c.Rho*1000)/1000, c.N)
		}
		b.WriteString(" \\\\\n")
	}
	b.WriteString("\\bottomrule\n\\end{tabular}\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

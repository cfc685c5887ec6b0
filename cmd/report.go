package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hpostats/optarena/internal/analysis"
	"github.com/hpostats/optarena/internal/config"
	"github.com/hpostats/optarena/internal/plot"
	"github.com/hpostats/optarena/internal/report"
	"github.com/hpostats/optarena/internal/runner"
	"github.com/hpostats/optarena/internal/trajectory"
)

var (
	flagBenchmark   string
	flagWhat        string
	flagAgg         string
	flagUnvalidated bool
	flagWhich       string
	flagThresh      float64
	flagParallel    int
	flagFormat      string
)

var reportWhats = []string{"all", "best_found", "ecdf", "correlation", "overhead", "fidels"}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate plots and summaries from optimizer run histories",
		RunE:  runReport,
	}
	cmd.Flags().StringVar(&flagBenchmark, "benchmark", "", "restrict to a single benchmark")
	cmd.Flags().StringVar(&flagWhat, "what", "all", fmt.Sprintf("which analysis to produce %v", reportWhats))
	cmd.Flags().StringVar(&flagAgg, "agg", "median", "aggregation criterion (mean, median)")
	cmd.Flags().BoolVar(&flagUnvalidated, "unvalidated", false, "use unvalidated (training) trajectories")
	cmd.Flags().StringVar(&flagWhich, "which", "v1", "trajectory schema version (v1, v2)")
	cmd.Flags().Float64Var(&flagThresh, "thresh", 1.0, "fraction of the time budget to truncate at")
	cmd.Flags().IntVar(&flagParallel, "parallel", 1, "max benchmarks analyzed concurrently")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "summary output format (table, markdown, json)")
	return cmd
}

func wantWhat(what string) bool {
	return flagWhat == "all" || flagWhat == what
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := checkReportFlags(); err != nil {
		return err
	}

	benchmarks := cfg.Benchmarks
	if flagBenchmark != "" {
		b, err := cfg.FindBenchmark(flagBenchmark)
		if err != nil {
			return err
		}
		benchmarks = []config.Benchmark{*b}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	jobs := make([]runner.Job, 0, len(benchmarks))
	for i := range benchmarks {
		bench := benchmarks[i]
		jobs = append(jobs, func() error {
			fmt.Printf("Analyzing %s...\n", bench.Name)
			if err := reportBenchmark(cfg, &bench); err != nil {
				return fmt.Errorf("%s: %w", bench.Name, err)
			}
			return nil
		})
	}
	errs := runner.RunPool(flagParallel, jobs)
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
	}
	if len(errs) == len(benchmarks) && len(benchmarks) > 0 {
		return fmt.Errorf("all %d benchmarks failed", len(benchmarks))
	}
	return nil
}

func checkReportFlags() error {
	okWhat := false
	for _, w := range reportWhats {
		if flagWhat == w {
			okWhat = true
		}
	}
	if !okWhat {
		return fmt.Errorf("unknown --what %q, must be one of %v", flagWhat, reportWhats)
	}
	if flagAgg != "mean" && flagAgg != "median" {
		return fmt.Errorf("unknown --agg %q, must be one of [mean median]", flagAgg)
	}
	if flagThresh <= 0 || flagThresh > 1 {
		return fmt.Errorf("--thresh must be in (0, 1], got %g", flagThresh)
	}
	if _, err := trajectory.SelectWhich(flagUnvalidated, flagWhich); err != nil {
		return err
	}
	return nil
}

func reportBenchmark(cfg *config.Config, bench *config.Benchmark) error {
	if wantWhat("best_found") {
		if err := reportBestFound(cfg, bench); err != nil {
			return err
		}
	}

	needHistory := wantWhat("ecdf") || wantWhat("overhead") || wantWhat("fidels") || wantWhat("correlation")
	if !needHistory {
		return nil
	}

	runsByOpt, order, err := loadRunsByOptimizer(cfg.InputDir, bench.Name, trajectory.Runhistory, nil)
	if err != nil {
		return err
	}
	seriesByOpt, _ := normalizeAll(runsByOpt, order, bench.YStarValid, bench.YMax)

	outPath := func(suffix string) string {
		return filepath.Join(cfg.OutputDir, bench.Name+suffix)
	}

	if wantWhat("ecdf") {
		if err := plot.ECDF(outPath("_ecdf.png"), seriesByOpt, cfg.DisplayName, bench.YScale); err != nil {
			return fmt.Errorf("ecdf plot: %w", err)
		}
	}
	if wantWhat("overhead") {
		if err := plot.Overhead(outPath("_overhead.png"), seriesByOpt, cfg.DisplayName); err != nil {
			return fmt.Errorf("overhead plot: %w", err)
		}
	}
	if wantWhat("fidels") {
		if err := plot.Fidelities(outPath("_fidel.png"), seriesByOpt, cfg.DisplayName); err != nil {
			return fmt.Errorf("fidelity plot: %w", err)
		}
	}
	if wantWhat("correlation") {
		table, err := analysis.Correlate(runsByOpt, cfg.CorrelationFamilies)
		if err != nil {
			return fmt.Errorf("correlation: %w", err)
		}
		if len(table.Fidelities) < 2 {
			fmt.Printf("  %s: fewer than two fidelity levels observed, skipping correlation\n", bench.Name)
			return nil
		}
		if err := plot.CorrelationScatter(outPath("_correlation.png"), table); err != nil {
			return fmt.Errorf("correlation plot: %w", err)
		}
		if err := report.WriteCorrelationTable(outPath("_correlation_table.tex"), table); err != nil {
			return fmt.Errorf("correlation table: %w", err)
		}
	}
	return nil
}

func reportBestFound(cfg *config.Config, bench *config.Benchmark) error {
	which, err := trajectory.SelectWhich(flagUnvalidated, flagWhich)
	if err != nil {
		return err
	}
	yBest := bench.YStarTest
	if flagUnvalidated {
		yBest = bench.YStarValid
	}

	runsByOpt, order, err := loadRunsByOptimizer(cfg.InputDir, bench.Name, which, nil)
	if err != nil {
		return err
	}
	seriesByOpt, order := normalizeAll(runsByOpt, order, yBest, bench.YMax)
	table := aggregateBenchmark(bench, seriesByOpt, order, flagThresh)

	if err := report.WriteSummary(&table, flagFormat, os.Stdout); err != nil {
		return err
	}
	if best, ok := bestByAgg(table.Aggregates, flagAgg); ok {
		fmt.Printf("Best on %s by %s: %s\n", bench.Name, flagAgg, best)
	}
	return nil
}

// bestByAgg picks the optimizer with the lowest mean or median regret;
// ties resolve to the table's insertion order.
func bestByAgg(aggs []analysis.OptimizerAggregate, agg string) (string, bool) {
	if len(aggs) == 0 {
		return "", false
	}
	best := aggs[0]
	for _, a := range aggs[1:] {
		val, bestVal := a.Median, best.Median
		if agg == "mean" {
			val, bestVal = a.Mean, best.Mean
		}
		if val < bestVal {
			best = a
		}
	}
	return best.Optimizer, true
}

package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/hpostats/optarena/internal/analysis"
	"github.com/hpostats/optarena/internal/config"
	"github.com/hpostats/optarena/internal/trajectory"
)

// loadRunsByOptimizer discovers and loads the run files of a benchmark's
// optimizers. optList restricts and orders the optimizers; nil means every
// optimizer found on disk, sorted. Optimizers that fail to load or have no
// matching files are reported and skipped so the batch keeps going.
func loadRunsByOptimizer(inputDir, benchmark string, which trajectory.Which, optList []string) (map[string][]trajectory.Run, []string, error) {
	found, err := trajectory.Discover(inputDir, benchmark, which)
	if err != nil {
		return nil, nil, err
	}

	if optList == nil {
		for opt := range found {
			optList = append(optList, opt)
		}
		sort.Strings(optList)
	}

	runsByOpt := make(map[string][]trajectory.Run)
	var order []string
	for _, opt := range optList {
		files := found[opt]
		if len(files) == 0 {
			fmt.Printf("  skip %s: no %s files for %s\n", opt, which, benchmark)
			continue
		}
		runs, err := trajectory.LoadRuns(files)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  skipping %s on %s: %v\n", opt, benchmark, err)
			continue
		}
		runsByOpt[opt] = runs
		order = append(order, opt)
	}
	return runsByOpt, order, nil
}

// normalizeAll turns raw runs into regret series per optimizer. A malformed
// run history fails its optimizer, not the batch.
func normalizeAll(runsByOpt map[string][]trajectory.Run, order []string, yBest, yMax float64) (map[string]analysis.Series, []string) {
	seriesByOpt := make(map[string]analysis.Series, len(order))
	var kept []string
	for _, opt := range order {
		series, err := analysis.Normalize(opt, runsByOpt[opt], yBest, yMax)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  skipping %s: %v\n", opt, err)
			continue
		}
		seriesByOpt[opt] = series
		kept = append(kept, opt)
	}
	return seriesByOpt, kept
}

// aggregateBenchmark truncates every seed at the budget fraction and
// aggregates the surviving incumbents per optimizer. Seeds with nothing
// but the sentinel left are reported and contribute no data point.
func aggregateBenchmark(bench *config.Benchmark, seriesByOpt map[string]analysis.Series, order []string, thresh float64) analysis.BenchmarkTable {
	cutTimeStep := thresh * bench.TimeLimitInS
	var incumbents []analysis.Row
	for _, opt := range order {
		series, ok := seriesByOpt[opt]
		if !ok {
			continue
		}
		for _, id := range series.SeedIDs() {
			tr := analysis.TruncateAtBudget(series.Seed(id), cutTimeStep)
			if tr.State != analysis.RealData {
				fmt.Printf("  %s seed %d has not enough runs at timestep %g (%s)\n",
					opt, id, cutTimeStep, tr.State)
				continue
			}
			incumbents = append(incumbents, tr.Incumbent)
		}
	}
	return analysis.BenchmarkTable{
		Benchmark:  bench.Name,
		Aggregates: analysis.Aggregate(incumbents),
	}
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hpostats/optarena/internal/analysis"
	"github.com/hpostats/optarena/internal/report"
	"github.com/hpostats/optarena/internal/trajectory"
)

var (
	flagSet            string
	flagFormatter      string
	flagTblUnvalidated bool
	flagTblWhich       string
	flagTblThresh      float64
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Build the cross-benchmark median table (LaTeX, ranks, snapshot)",
		RunE:  runTable,
	}
	cmd.Flags().StringVar(&flagSet, "set", "", "named optimizer set from the config (default: all optimizers)")
	cmd.Flags().StringVar(&flagFormatter, "formatter", "orig", "value formatter (orig, fixed)")
	cmd.Flags().BoolVar(&flagTblUnvalidated, "unvalidated", false, "use unvalidated (training) trajectories")
	cmd.Flags().StringVar(&flagTblWhich, "which", "v1", "trajectory schema version (v1, v2)")
	cmd.Flags().Float64Var(&flagTblThresh, "thresh", 1.0, "fraction of the time budget to truncate at")
	return cmd
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagTblThresh <= 0 || flagTblThresh > 1 {
		return fmt.Errorf("--thresh must be in (0, 1], got %g", flagTblThresh)
	}
	formatter, err := report.ParseFormatter(flagFormatter)
	if err != nil {
		return err
	}
	optList, err := cfg.OptimizerSet(flagSet)
	if err != nil {
		return err
	}
	which, err := trajectory.SelectWhich(flagTblUnvalidated, flagTblWhich)
	if err != nil {
		return err
	}

	var tables []analysis.BenchmarkTable
	for i := range cfg.Benchmarks {
		bench := &cfg.Benchmarks[i]
		fmt.Printf("Tabulating %s...\n", bench.Name)

		yBest := bench.YStarTest
		if flagTblUnvalidated {
			yBest = bench.YStarValid
		}
		runsByOpt, order, err := loadRunsByOptimizer(cfg.InputDir, bench.Name, which, optList)
		if err != nil {
			if errors.Is(err, trajectory.ErrMissing) {
				fmt.Printf("  skipping %s: %v\n", bench.Name, err)
				continue
			}
			return err
		}
		seriesByOpt, order := normalizeAll(runsByOpt, order, yBest, bench.YMax)
		tables = append(tables, aggregateBenchmark(bench, seriesByOpt, order, flagTblThresh))
	}
	if len(tables) == 0 {
		return fmt.Errorf("no benchmark produced any data")
	}

	table := report.BuildMedianTable(tables, optList, formatter)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	base := tableBaseName(flagSet, flagTblUnvalidated, flagTblWhich, flagTblThresh)

	macros := make(map[string]string, len(cfg.Benchmarks))
	for _, b := range cfg.Benchmarks {
		macros[b.Name] = b.LatexMacro
	}
	texPath := filepath.Join(cfg.OutputDir, base+".tex")
	if err := report.WriteLatex(texPath, table, macros); err != nil {
		return err
	}
	snapPath := filepath.Join(cfg.OutputDir, base+".gob")
	snap := &report.Snapshot{
		Which:  string(which),
		Thresh: flagTblThresh,
		Tables: tables,
		Scores: table.Scores,
	}
	if err := report.WriteSnapshot(snapPath, snap); err != nil {
		return err
	}

	printScores(table.Scores)
	fmt.Printf("Wrote %s and %s\n", texPath, snapPath)
	return nil
}

func tableBaseName(set string, unvalidated bool, which string, thresh float64) string {
	if set == "" {
		set = "all"
	}
	val := "validated"
	if unvalidated {
		val = "unvalidated"
	}
	name := fmt.Sprintf("result_table_%s_%s_%s", set, val, which)
	if thresh < 1 {
		name = fmt.Sprintf("%s_%d", name, int(thresh*100))
	}
	return name
}

func printScores(scores []analysis.CombinedScore) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPTIMIZER\tMEAN OF MEDIANS\tRANK\tBENCHMARKS")
	fmt.Fprintln(tw, strings.Repeat("-", 56))
	for _, s := range scores {
		fmt.Fprintf(tw, "%s\t%.4g\t%d\t%d\n", s.Optimizer, s.MeanOfMedians, s.Rank, s.Benchmarks)
	}
	tw.Flush()
	if best, ok := analysis.Best(scores); ok {
		fmt.Printf("Best optimizer: %s\n", best.Optimizer)
	}
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hpostats/optarena/internal/space"
	"github.com/hpostats/optarena/internal/trajectory"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the config and run histories against the declared search spaces",
		Long: "Loads the experiment config (which already validates itself) and then walks " +
			"every benchmark's run histories, checking each evaluated configuration against " +
			"the benchmark's declared hyperparameter space and each record's fidelity shape.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			violations := 0
			for i := range cfg.Benchmarks {
				bench := &cfg.Benchmarks[i]
				if len(bench.Space) == 0 {
					fmt.Printf("%s: no search space declared, skipping\n", bench.Name)
					continue
				}
				found, err := trajectory.Discover(cfg.InputDir, bench.Name, trajectory.Runhistory)
				if err != nil {
					if errors.Is(err, trajectory.ErrMissing) {
						fmt.Printf("%s: no results, skipping\n", bench.Name)
						continue
					}
					return err
				}
				for opt, files := range found {
					runs, err := trajectory.LoadRuns(files)
					if err != nil {
						fmt.Fprintf(os.Stderr, "%s/%s: %v\n", bench.Name, opt, err)
						violations++
						continue
					}
					for seed, run := range runs {
						if len(run) < 2 {
							continue
						}
						for rec := range run[1:] {
							r := &run[1+rec]
							if _, err := r.FidelityValue(); err != nil {
								fmt.Fprintf(os.Stderr, "%s/%s seed %d record %d: %v\n",
									bench.Name, opt, seed, rec+1, err)
								violations++
								continue
							}
							if err := space.Validate(bench.Space, r.Configuration); err != nil {
								fmt.Fprintf(os.Stderr, "%s/%s seed %d record %d: %v\n",
									bench.Name, opt, seed, rec+1, err)
								violations++
							}
						}
					}
				}
			}
			if violations > 0 {
				return fmt.Errorf("%d validation problems found", violations)
			}
			fmt.Println("OK")
			return nil
		},
	}
}

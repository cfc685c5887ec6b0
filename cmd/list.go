package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hpostats/optarena/internal/trajectory"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured benchmarks and the optimizer results on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Println("Optimizers:")
			for _, o := range cfg.Optimizers {
				if o.DisplayName != "" {
					fmt.Printf("  - %s (%s)\n", o.Name, o.DisplayName)
				} else {
					fmt.Printf("  - %s\n", o.Name)
				}
			}
			fmt.Println("\nBenchmarks:")
			for _, b := range cfg.Benchmarks {
				found, err := trajectory.Discover(cfg.InputDir, b.Name, trajectory.Runhistory)
				if err != nil {
					if errors.Is(err, trajectory.ErrMissing) {
						fmt.Printf("  - %s [no results]\n", b.Name)
						continue
					}
					return err
				}
				var present []string
				for opt, files := range found {
					if len(files) > 0 {
						present = append(present, fmt.Sprintf("%s×%d", opt, len(files)))
					}
				}
				sort.Strings(present)
				fmt.Printf("  - %s (budget %gs): %v\n", b.Name, b.TimeLimitInS, present)
			}
			return nil
		},
	}
}

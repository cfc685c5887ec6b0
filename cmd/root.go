package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hpostats/optarena/internal/config"
)

var (
	cfgFile       string
	flagInputDir  string
	flagOutputDir string
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "optarena",
		Short: "Analysis harness for HPO benchmark experiments",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "optarena.yaml", "config file path")
	root.PersistentFlags().StringVar(&flagInputDir, "input-dir", "", "override the configured input directory")
	root.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "override the configured output directory")
	root.AddCommand(newReportCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newValidateCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if flagInputDir != "" {
		cfg.InputDir = flagInputDir
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if cfg.InputDir == "" {
		return nil, fmt.Errorf("no input directory configured (set input_dir or --input-dir)")
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("no output directory configured (set output_dir or --output-dir)")
	}
	return cfg, nil
}

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/portfolio-montecarlo/internal/calculation"
	"github.com/rpgo/portfolio-montecarlo/internal/config"
	"github.com/rpgo/portfolio-montecarlo/internal/domain"
	"github.com/rpgo/portfolio-montecarlo/internal/output"
)

func newCompareCmd() *cobra.Command {
	var (
		configPath string
		format     string
		outputPath string
		seed       uint64
		workers    int
	)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Simulate and compare the scenarios of a configuration file",
		Long: `Runs every scenario of a YAML configuration in order and prints a comparison.
Without --config the built-in aggressive vs. conservative comparison is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.ResolveFormatter(format)
			if err != nil {
				return err
			}

			parser := config.NewInputParser()
			var cfg *domain.Configuration
			if configPath == "" {
				cfg = parser.CreateExampleConfiguration()
			} else {
				cfg, err = parser.LoadFromFile(configPath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("seed") {
				cfg.Simulation.Seed = seed
			}
			if cmd.Flags().Changed("workers") {
				cfg.Simulation.Workers = workers
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logrus.StandardLogger())
			comparison, err := engine.RunScenarios(cfg)
			if err != nil {
				return err
			}
			return writeReport(cmd, formatter, comparison, outputPath)
		},
	}

	compareCmd.Flags().StringVarP(&configPath, "config", "c", "", "Scenario configuration file (YAML)")
	compareCmd.Flags().StringVar(&format, "format", "console", "Report format")
	compareCmd.Flags().StringVar(&outputPath, "output", "", "Write the report to FILE instead of stdout")
	compareCmd.Flags().Uint64Var(&seed, "seed", 0, "Override the configured seed")
	compareCmd.Flags().IntVar(&workers, "workers", 0, "Override the configured worker count")

	return compareCmd
}

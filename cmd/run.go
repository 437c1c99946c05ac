package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/portfolio-montecarlo/internal/calculation"
	"github.com/rpgo/portfolio-montecarlo/internal/domain"
	"github.com/rpgo/portfolio-montecarlo/internal/output"
	"github.com/rpgo/portfolio-montecarlo/internal/storage"
)

// runOptions holds the flags of the run command
type runOptions struct {
	name          string
	years         int
	trials        int
	meanReturn    float64
	volatility    float64
	inflationRate float64
	percentile    float64
	seed          uint64
	workers       int
	format        string
	initial       string
	currency      string
	savePaths     string
	csvDir        string
	outputPath    string
	storeDSN      string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one Monte Carlo simulation from flags",
		Example: `  montecarlo run --mean 0.094324 --volatility 0.15675
  montecarlo run --mean 0.06189 --volatility 0.063438 --seed 42 --save-paths conservative.dat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	flags := runCmd.Flags()
	flags.StringVar(&opts.name, "name", "portfolio", "Scenario name used in reports")
	flags.IntVar(&opts.years, "years", 20, "Simulation horizon in years")
	flags.IntVar(&opts.trials, "trials", 100000, "Number of independent trials")
	flags.Float64Var(&opts.meanReturn, "mean", 0.094324, "Mean annual return (0.09 == 9%)")
	flags.Float64Var(&opts.volatility, "volatility", 0.15675, "Standard deviation of the annual return")
	flags.Float64Var(&opts.inflationRate, "inflation", 0.035, "Annual inflation rate")
	flags.Float64Var(&opts.percentile, "percentile", 0.1, "Lower cutoff of the worst/best case pair, strictly between 0 and 1")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 draws a fresh one)")
	flags.IntVar(&opts.workers, "workers", 0, "Worker goroutines (0 uses GOMAXPROCS)")
	flags.StringVar(&opts.format, "format", "console", fmt.Sprintf("Report format %v", output.AvailableFormatterNames()))
	flags.StringVar(&opts.initial, "initial", "0", "Initial investment used to show outcomes as amounts (0 disables)")
	flags.StringVar(&opts.currency, "currency", "USD", "Currency code of the initial investment")
	flags.StringVar(&opts.savePaths, "save-paths", "", "Write every trial path to FILE (.dat or .csv)")
	flags.StringVar(&opts.csvDir, "csv-dir", "", "Write summary, percentile and terminal value CSVs to DIR")
	flags.StringVar(&opts.outputPath, "output", "", "Write the report to FILE instead of stdout")
	flags.StringVar(&opts.storeDSN, "store-dsn", "", "Postgres DSN; when set the run is recorded in simulation_runs")

	return runCmd
}

func (o *runOptions) run(cmd *cobra.Command) error {
	params, err := domain.NewSimulationParameters(o.years, o.trials, o.meanReturn, o.volatility, o.inflationRate, o.percentile)
	if err != nil {
		return err
	}
	initial, err := decimal.NewFromString(o.initial)
	if err != nil {
		return fmt.Errorf("invalid initial investment %q: %w", o.initial, err)
	}
	formatter, err := output.ResolveFormatter(o.format)
	if err != nil {
		return err
	}

	sim := calculation.NewMonteCarloSimulator(calculation.MonteCarloConfig{
		Workers:     o.workers,
		Seed:        o.seed,
		RetainPaths: o.savePaths != "",
	})
	sim.SetLogger(logrus.StandardLogger())

	result, err := sim.RunSimulation(params)
	if err != nil {
		return err
	}

	if o.savePaths != "" {
		if err := output.WritePathMatrix(o.savePaths, result.Paths); err != nil {
			return err
		}
		logrus.Infof("paths written to %s", o.savePaths)
	}
	if o.csvDir != "" {
		report := &output.MonteCarloCSVReport{Name: o.name, Result: result}
		if err := report.GenerateAllCSVReports(o.csvDir); err != nil {
			return err
		}
		logrus.Infof("CSV reports written to %s", filepath.Clean(o.csvDir))
	}
	if o.storeDSN != "" {
		if err := o.record(cmd, params, result.Summary); err != nil {
			return err
		}
	}

	settings := domain.SimulationSettings{
		Years:         params.Years,
		Trials:        params.Trials,
		InflationRate: decimal.NewFromFloat(params.InflationRate),
		Percentile:    decimal.NewFromFloat(params.Percentile),
	}
	comparison := &domain.ScenarioComparison{
		GeneratedAt:       time.Now(),
		Outcomes:          []domain.ScenarioOutcome{{Name: o.name, Parameters: params, Result: result.Summary}},
		InitialInvestment: initial.InexactFloat64(),
		Currency:          o.currency,
		Assumptions:       settings.GenerateAssumptions(),
	}
	return writeReport(cmd, formatter, comparison, o.outputPath)
}

// record stores a finished run in the configured run history.
func (o *runOptions) record(cmd *cobra.Command, params domain.SimulationParameters, result domain.SimulationResult) error {
	store, closeStore, err := openRunStore(cmd.Context(), o.storeDSN)
	if err != nil {
		return err
	}
	defer closeStore()

	rec := storage.NewRunRecord(o.name, params, result, time.Now())
	if err := store.Insert(cmd.Context(), rec); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Run recorded as %s\n", rec.ID)
	return nil
}

// writeReport writes the formatted comparison to path, or to stdout when path is empty.
func writeReport(cmd *cobra.Command, f output.Formatter, comparison *domain.ScenarioComparison, path string) error {
	if path != "" {
		written, err := output.WriteFormatted(f, comparison, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", written)
		return nil
	}
	data, err := f.Format(comparison)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

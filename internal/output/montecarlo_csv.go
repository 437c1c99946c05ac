package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/rpgo/portfolio-montecarlo/internal/calculation"
)

// reportPercentiles are the cutoffs listed in the percentile CSV.
var reportPercentiles = []float64{0.01, 0.05, 0.10, 0.25, 0.50, 0.75, 0.90, 0.95, 0.99}

// MonteCarloCSVReport generates CSV exports for one simulation run
type MonteCarloCSVReport struct {
	Name   string
	Result *calculation.MonteCarloResult
}

func writeCSV(outputPath string, rows [][]string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// GenerateSummaryCSV creates a summary CSV with aggregate statistics
func (m *MonteCarloCSVReport) GenerateSummaryCSV(outputPath string) error {
	p, r := m.Result.Parameters, m.Result.Summary
	lower, upper := PercentileLabels(p.Percentile)
	rows := [][]string{
		{"Metric", "Value", "Description"},
		{"Worst Case", FormatValue(r.WorstCase), lower + " percentile of terminal value"},
		{"Mean", FormatValue(r.Mean), "Arithmetic mean of terminal value"},
		{"Best Case", FormatValue(r.BestCase), upper + " percentile of terminal value"},
		{"Median", FormatValue(r.Median), "50th percentile of terminal value"},
		{"Standard Deviation", FormatValue(r.StdDev), "Sample standard deviation of terminal value"},
		{"Minimum", FormatValue(r.Min), "Lowest terminal value"},
		{"Maximum", FormatValue(r.Max), "Highest terminal value"},
		{"Number of Simulations", strconv.Itoa(p.Trials), "Total number of trials run"},
		{"Years", strconv.Itoa(p.Years), "Simulation horizon"},
		{"Elapsed Time (ms)", strconv.FormatInt(r.ElapsedTimeMs, 10), "Wall clock time of the run"},
		{"Seed", strconv.FormatUint(r.Seed, 10), "Seed reproducing the run"},
	}
	return writeCSV(outputPath, rows)
}

// GeneratePercentileCSV creates a CSV with nearest-rank percentiles of the terminal value
func (m *MonteCarloCSVReport) GeneratePercentileCSV(outputPath string) error {
	sorted := slices.Clone(m.Result.TerminalValues)
	slices.Sort(sorted)
	if len(sorted) == 0 {
		return fmt.Errorf("no terminal values")
	}

	rows := [][]string{{"Percentile", "Rank", "TerminalValue"}}
	for _, pct := range reportPercentiles {
		rank, _ := calculation.PercentileRanks(len(sorted), pct)
		label, _ := PercentileLabels(pct)
		rows = append(rows, []string{label, strconv.Itoa(rank), FormatValue(sorted[rank])})
	}
	return writeCSV(outputPath, rows)
}

// GenerateTerminalCSV lists the terminal value of every trial in trial order
func (m *MonteCarloCSVReport) GenerateTerminalCSV(outputPath string) error {
	rows := make([][]string, 0, len(m.Result.TerminalValues)+1)
	rows = append(rows, []string{"Trial", "TerminalValue"})
	for i, v := range m.Result.TerminalValues {
		rows = append(rows, []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64)})
	}
	return writeCSV(outputPath, rows)
}

// GenerateAllCSVReports creates all CSV reports in a single directory
func (m *MonteCarloCSVReport) GenerateAllCSVReports(outputDir string) error {
	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	prefix := m.Name
	if prefix == "" {
		prefix = "monte_carlo"
	}

	summaryPath := filepath.Join(outputDir, prefix+"_summary.csv")
	if err := m.GenerateSummaryCSV(summaryPath); err != nil {
		return fmt.Errorf("failed to generate summary CSV: %w", err)
	}

	percentilePath := filepath.Join(outputDir, prefix+"_percentiles.csv")
	if err := m.GeneratePercentileCSV(percentilePath); err != nil {
		return fmt.Errorf("failed to generate percentile CSV: %w", err)
	}

	terminalPath := filepath.Join(outputDir, prefix+"_terminal.csv")
	if err := m.GenerateTerminalCSV(terminalPath); err != nil {
		return fmt.Errorf("failed to generate terminal CSV: %w", err)
	}

	return nil
}

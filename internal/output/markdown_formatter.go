package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// MarkdownFormatter renders the comparison as a Markdown document with one
// summary table. The terminal and HTML formatters render this document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# Monte Carlo Scenario Summary")
	fmt.Fprintln(&buf)
	if !results.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "_Generated %s_\n\n", results.GeneratedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	}

	fmt.Fprintln(&buf, "| Scenario | Mean return | Volatility | Inflation | Years | Trials | Worst case | Mean | Median | Best case | Time (ms) |")
	fmt.Fprintln(&buf, "|---|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, o := range results.Outcomes {
		p, r := o.Parameters, o.Result
		lower, upper := PercentileLabels(p.Percentile)
		fmt.Fprintf(&buf, "| %s | %s | %s | %s | %d | %d | %s (%s) | %s | %s | %s (%s) | %d |\n",
			o.Name, FormatRate(p.MeanReturn), FormatRate(p.Volatility), FormatRate(p.InflationRate),
			p.Years, p.Trials,
			FormatValue(r.WorstCase), lower, FormatValue(r.Mean), FormatValue(r.Median),
			FormatValue(r.BestCase), upper, r.ElapsedTimeMs)
	}

	if hasAmounts(results) {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "## Initial investment of %s\n\n", FormatAmount(results, 1))
		fmt.Fprintln(&buf, "| Scenario | Worst case | Mean | Best case |")
		fmt.Fprintln(&buf, "|---|---:|---:|---:|")
		for _, o := range results.Outcomes {
			fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n", o.Name,
				FormatAmount(results, o.Result.WorstCase),
				FormatAmount(results, o.Result.Mean),
				FormatAmount(results, o.Result.BestCase))
		}
	}

	if len(results.Outcomes) > 1 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "## Comparison")
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "- Highest mean: **%s** (+%s over the lowest)\n", rec.HighestMean, FormatValue(rec.MeanAdvantage))
		fmt.Fprintf(&buf, "- Highest best case: **%s**\n", rec.HighestBestCase)
		fmt.Fprintf(&buf, "- Safest worst case: **%s**\n", rec.SafestScenario)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "## Key Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// ConsoleFormatter prints one text block per scenario, in configuration order.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MONTE CARLO SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, o := range results.Outcomes {
		r := o.Result
		lower, upper := PercentileLabels(o.Parameters.Percentile)
		fmt.Fprintf(&buf, "%s(%dms):\n", strings.ToUpper(o.Name), r.ElapsedTimeMs)
		fmt.Fprintf(&buf, "  mean: %6.4f\n", r.Mean)
		fmt.Fprintf(&buf, "  median: %6.4f\n", r.Median)
		fmt.Fprintf(&buf, "  %s best case: %6.4f\n", upper, r.BestCase)
		fmt.Fprintf(&buf, "  %s worst case: %6.4f\n", lower, r.WorstCase)
		if hasAmounts(results) {
			fmt.Fprintf(&buf, "  range: %s .. %s (mean %s)\n",
				FormatAmount(results, r.WorstCase),
				FormatAmount(results, r.BestCase),
				FormatAmount(results, r.Mean))
		}
	}
	if len(results.Outcomes) > 1 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Highest mean: %s (+%s)\n", rec.HighestMean, FormatValue(rec.MeanAdvantage))
		fmt.Fprintf(&buf, "Safest worst case: %s\n", rec.SafestScenario)
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Years", "Trials", "MeanReturn", "Volatility", "InflationRate", "Percentile", "WorstCase", "Mean", "BestCase", "Median", "StdDev", "Min", "Max", "ElapsedTimeMs", "Seed"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, o := range results.Outcomes {
		p, r := o.Parameters, o.Result
		row := []string{
			o.Name,
			intToString(p.Years),
			intToString(p.Trials),
			strconv.FormatFloat(p.MeanReturn, 'f', -1, 64),
			strconv.FormatFloat(p.Volatility, 'f', -1, 64),
			strconv.FormatFloat(p.InflationRate, 'f', -1, 64),
			strconv.FormatFloat(p.Percentile, 'f', -1, 64),
			FormatValue(r.WorstCase),
			FormatValue(r.Mean),
			FormatValue(r.BestCase),
			FormatValue(r.Median),
			FormatValue(r.StdDev),
			FormatValue(r.Min),
			FormatValue(r.Max),
			strconv.FormatInt(r.ElapsedTimeMs, 10),
			strconv.FormatUint(r.Seed, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

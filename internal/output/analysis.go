package output

import (
	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// Recommendation highlights the scenarios that lead on each summary statistic.
type Recommendation struct {
	HighestMean     string
	HighestBestCase string
	// SafestScenario has the highest worst case.
	SafestScenario string
	// MeanAdvantage is the gap between the highest and the lowest mean.
	MeanAdvantage float64
}

// AnalyzeScenarios ranks the outcomes of a comparison. Ties go to the scenario
// listed first.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Outcomes) == 0 {
		return Recommendation{}
	}
	first := results.Outcomes[0]
	rec := Recommendation{
		HighestMean:     first.Name,
		HighestBestCase: first.Name,
		SafestScenario:  first.Name,
	}
	bestMean, lowestMean := first.Result.Mean, first.Result.Mean
	bestCase, bestWorst := first.Result.BestCase, first.Result.WorstCase
	for _, o := range results.Outcomes[1:] {
		r := o.Result
		if r.Mean > bestMean {
			bestMean, rec.HighestMean = r.Mean, o.Name
		}
		if r.Mean < lowestMean {
			lowestMean = r.Mean
		}
		if r.BestCase > bestCase {
			bestCase, rec.HighestBestCase = r.BestCase, o.Name
		}
		if r.WorstCase > bestWorst {
			bestWorst, rec.SafestScenario = r.WorstCase, o.Name
		}
	}
	rec.MeanAdvantage = bestMean - lowestMean
	return rec
}

package output

import (
	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when the comparison carries none of its own.
var DefaultAssumptions = []string{
	"Annual returns: Gaussian, drawn independently for every year and trial",
	"Inflation: constant annual rate, applied every year",
	"Worst/best case: nearest-rank percentiles, no interpolation",
	"Initial portfolio value normalized to 1.0",
}

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return DefaultAssumptions
}

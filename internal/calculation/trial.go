package calculation

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

// Sampler draws one annual rate of return. distuv.Normal satisfies it.
type Sampler interface {
	Rand() float64
}

// NewReturnSampler returns the Gaussian return distribution of params drawing from src.
func NewReturnSampler(params domain.SimulationParameters, src rand.Source) distuv.Normal {
	return distuv.Normal{
		Mu:    params.MeanReturn,
		Sigma: params.Volatility,
		Src:   src,
	}
}

// GenerateTrialPath fills one trial path of params.Years+1 values, reusing dst
// when it is large enough. Index 0 is the normalized initial value 1.0; every
// following year compounds one sampled return and deflates by inflation.
// Returns below -100% are kept as drawn, so values may turn zero or negative.
func GenerateTrialPath(params domain.SimulationParameters, sampler Sampler, dst []float64) []float64 {
	n := params.Years + 1
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	path := dst[:n]

	path[0] = 1.0
	deflator := 1 + params.InflationRate
	for year := 1; year <= params.Years; year++ {
		ror := sampler.Rand()
		path[year] = path[year-1] * (1 + ror) / deflator
	}
	return path
}

// SimulateTerminalValue runs the same recurrence as GenerateTrialPath without
// keeping the intermediate years.
func SimulateTerminalValue(params domain.SimulationParameters, sampler Sampler) float64 {
	value := 1.0
	deflator := 1 + params.InflationRate
	for year := 1; year <= params.Years; year++ {
		ror := sampler.Rand()
		value = value * (1 + ror) / deflator
	}
	return value
}

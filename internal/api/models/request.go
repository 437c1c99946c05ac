package models

import "github.com/rpgo/portfolio-montecarlo/internal/domain"

// SimulationRequest represents the request body for running a simulation.
// Numeric fields are validated by the simulation itself so that a missing
// value is reported with the name of the offending field.
type SimulationRequest struct {
	Name          string  `json:"name,omitempty"`
	Years         int     `json:"years"`
	Trials        int     `json:"trials"`
	MeanReturn    float64 `json:"mean_return"`
	Volatility    float64 `json:"volatility"`
	InflationRate float64 `json:"inflation_rate"`
	Percentile    float64 `json:"percentile"`
	// Seed 0 draws a fresh seed; the seed used is echoed in the result.
	Seed uint64 `json:"seed,omitempty"`
}

// Parameters converts the request into simulation parameters without validating them.
func (r SimulationRequest) Parameters() domain.SimulationParameters {
	return domain.SimulationParameters{
		Years:         r.Years,
		Trials:        r.Trials,
		MeanReturn:    r.MeanReturn,
		Volatility:    r.Volatility,
		InflationRate: r.InflationRate,
		Percentile:    r.Percentile,
	}
}

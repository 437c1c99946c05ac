package domain

import "math"

// SimulationParameters holds the immutable inputs of one Monte Carlo run.
// Rates are expressed as fractions (0.035 == 3.5%).
type SimulationParameters struct {
	Years         int     `json:"years" yaml:"years"`
	Trials        int     `json:"trials" yaml:"trials"`
	MeanReturn    float64 `json:"mean_return" yaml:"mean_return"`
	Volatility    float64 `json:"volatility" yaml:"volatility"`
	InflationRate float64 `json:"inflation_rate" yaml:"inflation_rate"`
	// Percentile selects the symmetric cutoff pair, e.g. 0.1 for the 10th/90th percentiles.
	Percentile float64 `json:"percentile" yaml:"percentile"`
}

// NewSimulationParameters builds and validates a parameter set.
func NewSimulationParameters(years, trials int, meanReturn, volatility, inflationRate, percentile float64) (SimulationParameters, error) {
	p := SimulationParameters{
		Years:         years,
		Trials:        trials,
		MeanReturn:    meanReturn,
		Volatility:    volatility,
		InflationRate: inflationRate,
		Percentile:    percentile,
	}
	if err := p.Validate(); err != nil {
		return SimulationParameters{}, err
	}
	return p, nil
}

// Validate checks the parameter invariants, reporting the first violated field.
func (p SimulationParameters) Validate() error {
	if p.Years <= 0 {
		return &InvalidParameterError{Field: FieldYears, Value: p.Years, Reason: "years must be positive"}
	}
	if p.Trials <= 0 {
		return &InvalidParameterError{Field: FieldTrials, Value: p.Trials, Reason: "trials must be positive"}
	}
	// written as a negated range so NaN is rejected too
	if !(p.Percentile > 0 && p.Percentile < 1) {
		return &InvalidParameterError{Field: FieldPercentile, Value: p.Percentile, Reason: "percentile must be strictly between 0 and 1"}
	}
	if p.Volatility < 0 || math.IsNaN(p.Volatility) {
		return &InvalidParameterError{Field: FieldVolatility, Value: p.Volatility, Reason: "volatility cannot be negative"}
	}
	return nil
}

// RealGrowthFactor is the deterministic one-year growth (1+mean)/(1+inflation).
func (p SimulationParameters) RealGrowthFactor() float64 {
	return (1 + p.MeanReturn) / (1 + p.InflationRate)
}

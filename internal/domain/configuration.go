package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Configuration represents the complete input configuration
type Configuration struct {
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
	Scenarios  []Scenario         `yaml:"scenarios" json:"scenarios"`
}

// SimulationSettings holds the values shared by every scenario unless overridden
type SimulationSettings struct {
	Years         int             `yaml:"years" json:"years"`
	Trials        int             `yaml:"trials" json:"trials"`
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	Percentile    decimal.Decimal `yaml:"percentile" json:"percentile"`

	// Seed 0 draws a fresh seed per run.
	Seed uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	// Workers <= 0 uses GOMAXPROCS.
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`

	// Presentation only: scales normalized outcomes into an amount of Currency.
	InitialInvestment decimal.Decimal `yaml:"initial_investment,omitempty" json:"initial_investment,omitempty"`
	Currency          string          `yaml:"currency,omitempty" json:"currency,omitempty"`
}

// Scenario is one named return profile. Pointer fields override SimulationSettings.
type Scenario struct {
	Name       string          `yaml:"name" json:"name"`
	MeanReturn decimal.Decimal `yaml:"mean_return" json:"mean_return"`
	Volatility decimal.Decimal `yaml:"volatility" json:"volatility"`

	Years         *int             `yaml:"years,omitempty" json:"years,omitempty"`
	Trials        *int             `yaml:"trials,omitempty" json:"trials,omitempty"`
	InflationRate *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	Percentile    *decimal.Decimal `yaml:"percentile,omitempty" json:"percentile,omitempty"`
}

// ParametersFor resolves the effective, validated parameters of a scenario.
func (c *Configuration) ParametersFor(s *Scenario) (SimulationParameters, error) {
	years := c.Simulation.Years
	if s.Years != nil {
		years = *s.Years
	}
	trials := c.Simulation.Trials
	if s.Trials != nil {
		trials = *s.Trials
	}
	inflation := c.Simulation.InflationRate
	if s.InflationRate != nil {
		inflation = *s.InflationRate
	}
	percentile := c.Simulation.Percentile
	if s.Percentile != nil {
		percentile = *s.Percentile
	}

	params, err := NewSimulationParameters(
		years,
		trials,
		s.MeanReturn.InexactFloat64(),
		s.Volatility.InexactFloat64(),
		inflation.InexactFloat64(),
		percentile.InexactFloat64(),
	)
	if err != nil {
		return SimulationParameters{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return params, nil
}

// GenerateAssumptions creates dynamic assumptions list from actual config values
func (ss *SimulationSettings) GenerateAssumptions() []string {
	hundred := decimal.NewFromInt(100)
	lower := ss.Percentile.Mul(hundred)
	upper := hundred.Sub(lower)
	return []string{
		fmt.Sprintf("Horizon: %d years, %d independent trials per scenario", ss.Years, ss.Trials),
		fmt.Sprintf("Inflation: %s%% annually, applied every year", ss.InflationRate.Mul(hundred).StringFixed(2)),
		fmt.Sprintf("Worst/best case: %sth / %sth percentile (nearest rank, no interpolation)", lower.StringFixed(0), upper.StringFixed(0)),
		"Annual returns: Gaussian, drawn independently for every year and trial",
		"Initial portfolio value normalized to 1.0",
	}
}

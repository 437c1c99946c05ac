package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() *Configuration {
	return &Configuration{
		Simulation: SimulationSettings{
			Years:         20,
			Trials:        1000,
			InflationRate: decimal.NewFromFloat(0.035),
			Percentile:    decimal.NewFromFloat(0.1),
		},
		Scenarios: []Scenario{
			{Name: "aggressive", MeanReturn: decimal.NewFromFloat(0.094324), Volatility: decimal.NewFromFloat(0.15675)},
		},
	}
}

func TestParametersFor_UsesSharedSettings(t *testing.T) {
	cfg := testConfiguration()

	p, err := cfg.ParametersFor(&cfg.Scenarios[0])
	require.NoError(t, err)
	assert.Equal(t, 20, p.Years)
	assert.Equal(t, 1000, p.Trials)
	assert.InDelta(t, 0.094324, p.MeanReturn, 1e-12)
	assert.InDelta(t, 0.15675, p.Volatility, 1e-12)
	assert.InDelta(t, 0.035, p.InflationRate, 1e-12)
	assert.InDelta(t, 0.1, p.Percentile, 1e-12)
}

func TestParametersFor_ScenarioOverrides(t *testing.T) {
	cfg := testConfiguration()
	years := 5
	trials := 10
	inflation := decimal.NewFromFloat(0.01)
	percentile := decimal.NewFromFloat(0.25)
	sc := cfg.Scenarios[0]
	sc.Years = &years
	sc.Trials = &trials
	sc.InflationRate = &inflation
	sc.Percentile = &percentile

	p, err := cfg.ParametersFor(&sc)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Years)
	assert.Equal(t, 10, p.Trials)
	assert.InDelta(t, 0.01, p.InflationRate, 1e-12)
	assert.InDelta(t, 0.25, p.Percentile, 1e-12)
}

func TestParametersFor_InvalidScenarioNamesScenario(t *testing.T) {
	cfg := testConfiguration()
	cfg.Simulation.Trials = 0

	_, err := cfg.ParametersFor(&cfg.Scenarios[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), `scenario "aggressive"`)
	assert.Contains(t, err.Error(), "trials")
}

func TestGenerateAssumptions(t *testing.T) {
	cfg := testConfiguration()
	lines := cfg.Simulation.GenerateAssumptions()
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "20 years")
	assert.Contains(t, lines[1], "3.50%")
	assert.Contains(t, lines[2], "10th / 90th")
}

package calculation

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
)

const (
	testInflation          = 0.035
	testYears              = 20
	testTrials             = 100000
	aggressiveReturn       = 0.094324
	aggressiveVolatility   = 0.15675
	conservativeReturn     = 0.06189
	conservativeVolatility = 0.063438
	testPercentile         = 0.1
)

func mustParams(t *testing.T, years, trials int, mean, volatility, inflation, percentile float64) domain.SimulationParameters {
	t.Helper()
	p, err := domain.NewSimulationParameters(years, trials, mean, volatility, inflation, percentile)
	require.NoError(t, err)
	return p
}

func TestMonteCarloSimulator_RejectsInvalidParameters(t *testing.T) {
	testCases := []struct {
		params domain.SimulationParameters
		field  domain.ParameterField
	}{
		{domain.SimulationParameters{Years: 0, Trials: 10, Percentile: 0.1}, domain.FieldYears},
		{domain.SimulationParameters{Years: -5, Trials: 10, Percentile: 0.1}, domain.FieldYears},
		{domain.SimulationParameters{Years: 10, Trials: 0, Percentile: 0.1}, domain.FieldTrials},
		{domain.SimulationParameters{Years: 10, Trials: -100, Percentile: 0.1}, domain.FieldTrials},
		{domain.SimulationParameters{Years: 10, Trials: 10, Percentile: 0}, domain.FieldPercentile},
		{domain.SimulationParameters{Years: 10, Trials: 10, Percentile: 1}, domain.FieldPercentile},
		{domain.SimulationParameters{Years: 10, Trials: 10, Percentile: -0.1}, domain.FieldPercentile},
		{domain.SimulationParameters{Years: 10, Trials: 10, Percentile: 1.1}, domain.FieldPercentile},
	}

	sim := NewMonteCarloSimulator(MonteCarloConfig{Seed: 1})
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%d", tc.field, i), func(t *testing.T) {
			result, err := sim.RunSimulation(tc.params)
			assert.Nil(t, result)
			require.ErrorIs(t, err, domain.ErrInvalidParameter)
			field, ok := domain.InvalidField(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, field)
		})
	}
}

func TestMonteCarloSimulator_ZeroVolatilityIsDeterministic(t *testing.T) {
	params := mustParams(t, testYears, 1000, conservativeReturn, 0, testInflation, testPercentile)
	expected := math.Pow((1+conservativeReturn)/(1+testInflation), testYears)

	result, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 2024, Workers: 4}).RunSimulation(params)
	require.NoError(t, err)

	for i, v := range result.TerminalValues {
		if math.Abs(v-expected) > 1e-12 {
			t.Fatalf("trial %d terminal = %v, want %v", i, v, expected)
		}
	}
	assert.Equal(t, result.Summary.WorstCase, result.Summary.BestCase)
	assert.InDelta(t, expected, result.Summary.WorstCase, 1e-12)
	assert.InDelta(t, expected, result.Summary.Mean, 1e-12)
	assert.InDelta(t, expected, result.Summary.BestCase, 1e-12)
	assert.InDelta(t, 0.0, result.Summary.StdDev, 1e-12)
}

func TestMonteCarloSimulator_SeedReproducible(t *testing.T) {
	params := mustParams(t, 10, 2000, aggressiveReturn, aggressiveVolatility, testInflation, testPercentile)

	first, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 12345}).RunSimulation(params)
	require.NoError(t, err)
	second, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 12345}).RunSimulation(params)
	require.NoError(t, err)

	assert.Equal(t, first.TerminalValues, second.TerminalValues)
	assert.Equal(t, first.Summary.WorstCase, second.Summary.WorstCase)
	assert.Equal(t, first.Summary.Mean, second.Summary.Mean)
	assert.Equal(t, first.Summary.BestCase, second.Summary.BestCase)
	assert.Equal(t, uint64(12345), first.Summary.Seed)
}

func TestMonteCarloSimulator_StatisticsIndependentOfWorkerCount(t *testing.T) {
	params := mustParams(t, 15, 5003, aggressiveReturn, aggressiveVolatility, testInflation, testPercentile)

	baseline, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 777, Workers: 1}).RunSimulation(params)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 64} {
		t.Run(fmt.Sprintf("workers_%d", workers), func(t *testing.T) {
			result, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 777, Workers: workers}).RunSimulation(params)
			require.NoError(t, err)
			assert.Equal(t, baseline.TerminalValues, result.TerminalValues)
			assert.Equal(t, baseline.Summary.WorstCase, result.Summary.WorstCase)
			assert.Equal(t, baseline.Summary.Mean, result.Summary.Mean)
			assert.Equal(t, baseline.Summary.BestCase, result.Summary.BestCase)
		})
	}
}

func TestMonteCarloSimulator_MoreWorkersThanTrials(t *testing.T) {
	params := mustParams(t, 5, 3, aggressiveReturn, aggressiveVolatility, testInflation, 0.5)

	result, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 5, Workers: 16}).RunSimulation(params)
	require.NoError(t, err)
	assert.Len(t, result.TerminalValues, 3)
	for _, v := range result.TerminalValues {
		assert.NotZero(t, v)
	}
}

func TestMonteCarloSimulator_RetainPaths(t *testing.T) {
	params := mustParams(t, 10, 50, aggressiveReturn, aggressiveVolatility, testInflation, testPercentile)

	retained, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 99, RetainPaths: true}).RunSimulation(params)
	require.NoError(t, err)
	require.NotNil(t, retained.Paths)
	assert.Equal(t, 50, retained.Paths.Trials())
	assert.Equal(t, 10, retained.Paths.Years())

	for trial := 0; trial < params.Trials; trial++ {
		assert.Equal(t, 1.0, retained.Paths.At(trial, 0))
		assert.Len(t, retained.Paths.Trial(trial), 11)
		assert.Equal(t, retained.TerminalValues[trial], retained.Paths.Terminal(trial))
	}

	plain, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 99}).RunSimulation(params)
	require.NoError(t, err)
	assert.Nil(t, plain.Paths)
	assert.Equal(t, plain.TerminalValues, retained.TerminalValues, "retention must not change the simulation")
}

func TestMonteCarloSimulator_ElapsedTime(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	orig := nowFunc
	SetNowFunc(func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * 250 * time.Millisecond)
	})
	defer SetNowFunc(orig)

	params := mustParams(t, 2, 10, 0.05, 0.1, 0.02, 0.1)
	result, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 1}).RunSimulation(params)
	require.NoError(t, err)
	assert.Equal(t, int64(250), result.Summary.ElapsedTimeMs)
}

func TestNewMonteCarloSimulator_Defaults(t *testing.T) {
	orig := seedFunc
	SetSeedFunc(func() uint64 { return 4242 })
	defer SetSeedFunc(orig)

	sim := NewMonteCarloSimulator(MonteCarloConfig{})
	assert.Equal(t, uint64(4242), sim.Seed)
	assert.GreaterOrEqual(t, sim.Workers, 1)
	assert.IsType(t, NopLogger{}, sim.Logger)

	sim.SetLogger(nil)
	assert.IsType(t, NopLogger{}, sim.Logger)
}

func TestMonteCarloSimulator_HigherMeanReturnDominates(t *testing.T) {
	high := mustParams(t, testYears, 10000, 0.08, 0.1, testInflation, testPercentile)
	low := mustParams(t, testYears, 10000, 0.04, 0.1, testInflation, testPercentile)

	sim := NewMonteCarloSimulator(MonteCarloConfig{Seed: 31337})
	a, err := sim.RunSimulation(high)
	require.NoError(t, err)
	b, err := sim.RunSimulation(low)
	require.NoError(t, err)

	assert.Greater(t, a.Summary.Mean, b.Summary.Mean)
	assert.Greater(t, a.Summary.BestCase, b.Summary.BestCase)
	assert.Greater(t, a.Summary.WorstCase, b.Summary.WorstCase)
}

func TestMonteCarloSimulator_StableAcrossSeeds(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100k-trial stability run in short mode")
	}
	params := mustParams(t, testYears, testTrials, aggressiveReturn, aggressiveVolatility, testInflation, testPercentile)

	first, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 1}).RunSimulation(params)
	require.NoError(t, err)
	second, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 2}).RunSimulation(params)
	require.NoError(t, err)

	assert.InEpsilon(t, first.Summary.Mean, second.Summary.Mean, 0.03)
	assert.InEpsilon(t, first.Summary.WorstCase, second.Summary.WorstCase, 0.03)
	assert.InEpsilon(t, first.Summary.BestCase, second.Summary.BestCase, 0.03)
}

func TestMonteCarloSimulator_AggressiveVsConservative(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100k-trial scenario comparison in short mode")
	}
	aggressiveParams := mustParams(t, testYears, testTrials, aggressiveReturn, aggressiveVolatility, testInflation, testPercentile)
	conservativeParams := mustParams(t, testYears, testTrials, conservativeReturn, conservativeVolatility, testInflation, testPercentile)

	aggressive, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 20}).RunSimulation(aggressiveParams)
	require.NoError(t, err)
	conservative, err := NewMonteCarloSimulator(MonteCarloConfig{Seed: 21}).RunSimulation(conservativeParams)
	require.NoError(t, err)

	assert.Greater(t, aggressive.Summary.Mean, conservative.Summary.Mean, "aggressive mean should exceed conservative")
	assert.Greater(t, aggressive.Summary.BestCase, conservative.Summary.BestCase, "aggressive best case should exceed conservative")
	assert.Less(t, aggressive.Summary.WorstCase, conservative.Summary.WorstCase, "aggressive worst case should be below conservative")
}

func TestRun_ReturnsSummary(t *testing.T) {
	params := mustParams(t, 5, 100, 0.05, 0.1, 0.02, 0.1)

	result, err := Run(params)
	require.NoError(t, err)
	assert.LessOrEqual(t, result.WorstCase, result.BestCase)
	assert.NotZero(t, result.Seed)

	_, err = Run(domain.SimulationParameters{Years: 1, Trials: 1, Percentile: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestPartitionTrials(t *testing.T) {
	ranges := partitionTrials(10, 3)
	require.Len(t, ranges, 3)
	assert.Equal(t, trialRange{0, 4}, ranges[0])
	assert.Equal(t, trialRange{4, 7}, ranges[1])
	assert.Equal(t, trialRange{7, 10}, ranges[2])

	single := partitionTrials(5, 1)
	assert.Equal(t, []trialRange{{0, 5}}, single)
}

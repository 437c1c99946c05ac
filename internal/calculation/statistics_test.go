package calculation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentileRanks(t *testing.T) {
	testCases := []struct {
		desc         string
		n            int
		percentile   float64
		lower, upper int
	}{
		{"ten values at 10%", 10, 0.1, 1, 9},
		{"hundred thousand at 10%", 100000, 0.1, 10000, 90000},
		{"single value at median", 1, 0.5, 0, 0},
		{"three values at median", 3, 0.5, 1, 1},
		{"truncates instead of rounding", 3, 0.3, 0, 2},
		{"seven values at 10%", 7, 0.1, 0, 6},
		{"tiny percentile clamps upper rank", 3, 1e-17, 0, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			lower, upper := PercentileRanks(tc.n, tc.percentile)
			assert.Equal(t, tc.lower, lower, "lower rank")
			assert.Equal(t, tc.upper, upper, "upper rank")
		})
	}
}

func TestSummarize_NearestRank(t *testing.T) {
	values := []float64{7, 3, 10, 1, 9, 2, 8, 5, 4, 6}

	stats := Summarize(values, 0.1)

	assert.Equal(t, 2.0, stats.WorstCase)
	assert.Equal(t, 10.0, stats.BestCase)
	assert.InDelta(t, 5.5, stats.Mean, 1e-12)
	assert.Equal(t, 6.0, stats.Median)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 10.0, stats.Max)
	assert.Greater(t, stats.StdDev, 0.0)
}

func TestSummarize_DoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Summarize(values, 0.25)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestSummarize_PermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	values := make([]float64, 5000)
	for i := range values {
		values[i] = rng.NormFloat64()*0.5 + 1
	}
	want := Summarize(values, 0.1)

	for round := 0; round < 5; round++ {
		shuffled := append([]float64(nil), values...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, Summarize(shuffled, 0.1), "round %d", round)
	}
}

func TestSummarize_WorstNotAboveBestBelowMedianPercentile(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{1, 2, 3, 10, 999} {
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.Float64()*4 - 2
		}
		for _, p := range []float64{0.01, 0.1, 0.25, 0.49} {
			stats := Summarize(values, p)
			require.LessOrEqual(t, stats.WorstCase, stats.BestCase, "n=%d p=%v", n, p)
		}
	}
}

func TestSummarize_SingleValue(t *testing.T) {
	stats := Summarize([]float64{1.25}, 0.5)
	assert.Equal(t, Statistics{WorstCase: 1.25, Mean: 1.25, BestCase: 1.25, Median: 1.25, Min: 1.25, Max: 1.25}, stats)
}

func TestSummarize_NegativeValuesFlowThrough(t *testing.T) {
	stats := Summarize([]float64{-0.5, 0, 1.5, 2}, 0.25)
	assert.Equal(t, 0.0, stats.WorstCase)
	assert.Equal(t, -0.5, stats.Min)
	assert.InDelta(t, 0.75, stats.Mean, 1e-12)
}

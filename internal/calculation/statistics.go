package calculation

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes a collection of terminal values.
type Statistics struct {
	WorstCase float64
	Mean      float64
	BestCase  float64
	Median    float64
	StdDev    float64
	Min       float64
	Max       float64
}

// PercentileRanks returns the zero-based nearest-rank indices of the lower and
// upper percentile in a sorted collection of n values: floor(n*p) and
// floor(n*(1-p)). Truncation, not rounding, is intentional; for small n it
// decides which sample is picked. Ranks are clamped into [0, n-1] because
// 1-p can round to 1 for tiny p.
func PercentileRanks(n int, percentile float64) (lower, upper int) {
	lower = clampRank(int(float64(n)*percentile), n)
	upper = clampRank(int(float64(n)*(1-percentile)), n)
	return lower, upper
}

func clampRank(rank, n int) int {
	if rank < 0 {
		return 0
	}
	if rank > n-1 {
		return n - 1
	}
	return rank
}

// Summarize computes the mean and the symmetric percentile pair of values.
// The input is treated as an unordered multiset: it is copied and sorted, and
// never modified. values must not be empty.
func Summarize(values []float64, percentile float64) Statistics {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	n := len(sorted)
	lower, upper := PercentileRanks(n, percentile)

	stats := Statistics{
		WorstCase: sorted[lower],
		Mean:      stat.Mean(sorted, nil),
		BestCase:  sorted[upper],
		Median:    sorted[n/2],
		Min:       sorted[0],
		Max:       sorted[n-1],
	}
	if n > 1 {
		stats.StdDev = stat.StdDev(sorted, nil)
	}
	return stats
}

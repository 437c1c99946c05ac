package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rpgo/portfolio-montecarlo/internal/domain"
	moneypkg "github.com/rpgo/portfolio-montecarlo/pkg/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatValue formats a normalized portfolio value with 4 decimals.
func FormatValue(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.035) as a percentage ("3.50%").
func FormatRate(rate float64) string {
	return FormatPercentage(decimal.NewFromFloat(rate).Mul(decimalHundred))
}

// PercentileLabels returns the labels of the lower and upper cutoffs,
// e.g. "10%" and "90%" for 0.1.
func PercentileLabels(percentile float64) (lower, upper string) {
	l := decimal.NewFromFloat(percentile).Mul(decimalHundred).Round(2)
	return l.String() + "%", decimalHundred.Sub(l).String() + "%"
}

// hasAmounts reports whether outcomes should also be shown in currency.
func hasAmounts(results *domain.ScenarioComparison) bool {
	return results.InitialInvestment > 0
}

// FormatAmount scales a normalized value by the comparison's initial investment.
func FormatAmount(results *domain.ScenarioComparison, normalized float64) string {
	initial := decimal.NewFromFloat(results.InitialInvestment)
	return moneypkg.ScaleOutcome(initial, normalized, results.Currency).Format()
}

func intToString(i int) string { return strconv.Itoa(i) }

package decimal

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is configured.
const DefaultCurrency = "USD"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
	Currency string
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64, currency string) Money {
	return Money{decimal.NewFromFloat(value), normalizeCode(currency)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal, currency string) Money {
	return Money{d, normalizeCode(currency)}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value, currency string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d, normalizeCode(currency)}, nil
}

// ScaleOutcome converts a normalized portfolio value (1.0 == initial value)
// into an amount of the initial investment's currency.
func ScaleOutcome(initial decimal.Decimal, normalized float64, currency string) Money {
	return NewMoneyFromDecimal(initial.Mul(decimal.NewFromFloat(normalized)), currency)
}

// Round rounds the amount to the minor unit of its currency.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(m.fraction()), m.Currency}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor), m.Currency}
}

// Sub subtracts another amount of the same currency.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal), m.Currency}
}

// String returns the amount with the currency's number of decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(m.fraction())
}

// Format renders the amount with the currency's grapheme and separators,
// e.g. "$1,234.56". Unknown currency codes fall back to "1234.56 XYZ".
func (m Money) Format() string {
	cur := money.GetCurrency(m.Currency)
	if cur == nil {
		return m.String() + " " + m.Currency
	}
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

func (m Money) fraction() int32 {
	if cur := money.GetCurrency(m.Currency); cur != nil {
		return int32(cur.Fraction)
	}
	return 2
}

func normalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency
	}
	return code
}

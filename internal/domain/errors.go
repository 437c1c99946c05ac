package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the sentinel wrapped by every parameter validation failure.
var ErrInvalidParameter = errors.New("invalid simulation parameter")

// ParameterField identifies which simulation parameter failed validation.
type ParameterField string

const (
	FieldYears      ParameterField = "years"
	FieldTrials     ParameterField = "trials"
	FieldPercentile ParameterField = "percentile"
	FieldVolatility ParameterField = "volatility"
)

// InvalidParameterError reports a rejected simulation parameter.
// Use errors.As to recover the offending field.
type InvalidParameterError struct {
	Field  ParameterField
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// InvalidField returns the field named by err when it is (or wraps) an
// InvalidParameterError.
func InvalidField(err error) (ParameterField, bool) {
	var ipe *InvalidParameterError
	if errors.As(err, &ipe) {
		return ipe.Field, true
	}
	return "", false
}

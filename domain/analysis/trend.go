package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"tunnelstats/domain/core"
	"tunnelstats/domain/table"
)

// TrendResult holds a first-degree least-squares fit between two columns.
// Values are unrounded; formatting happens at the report boundary.
// Correlation is only meaningful when CorrelationDefined is set; a constant
// y series has a valid (flat) fit but no correlation coefficient.
type TrendResult struct {
	Slope              float64 `json:"slope"`
	Intercept          float64 `json:"intercept"`
	Correlation        float64 `json:"correlation"`
	CorrelationDefined bool    `json:"correlation_defined"`
}

// TrendFitter fits ordinary least-squares trend lines over paired,
// null-filtered samples.
type TrendFitter struct{}

// NewTrendFitter creates a new trend fitter.
func NewTrendFitter() *TrendFitter {
	return &TrendFitter{}
}

// minTrendPoints is the sample floor for a meaningful trend line. A 2-point
// fit is exact but says nothing about a trend, so 3 is required.
const minTrendPoints = 3

// Fit regresses yCol on xCol over rows where both columns are numeric.
// Fewer than three complete pairs yields core.ErrInsufficientData; zero
// variance in x yields core.ErrDegenerateFit. Both are per-pair conditions:
// callers omit the trend line and carry on.
func (f *TrendFitter) Fit(t *table.Table, xCol, yCol string) (*TrendResult, error) {
	for _, c := range []string{xCol, yCol} {
		if !t.HasColumn(c) {
			return nil, core.NewColumnNotFoundError(c)
		}
	}

	xs, ys := t.PairedSamples(xCol, yCol)
	if len(xs) < minTrendPoints {
		return nil, fmt.Errorf("%w: trend fit needs %d points, have %d", core.ErrInsufficientData, minTrendPoints, len(xs))
	}
	if stat.Variance(xs, nil) == 0 {
		return nil, fmt.Errorf("%w: %s has zero variance", core.ErrDegenerateFit, xCol)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	result := &TrendResult{
		Slope:     slope,
		Intercept: intercept,
	}
	if stat.Variance(ys, nil) > 0 {
		result.Correlation = stat.Correlation(xs, ys, nil)
		result.CorrelationDefined = true
	}
	return result, nil
}

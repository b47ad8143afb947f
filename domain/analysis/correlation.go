package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"tunnelstats/domain/core"
	"tunnelstats/domain/table"
)

// CorrelationPair is one ranked entry of the pairwise correlation matrix.
// The pair is unordered; ColumnA is the one encountered first in column order.
type CorrelationPair struct {
	ColumnA        string  `json:"column_a"`
	ColumnB        string  `json:"column_b"`
	AbsCorrelation float64 `json:"abs_correlation"`
}

// CorrelationEngine computes pairwise Pearson correlations over the current
// table snapshot. Results are always computed on demand, never cached across
// filter changes.
type CorrelationEngine struct{}

// NewCorrelationEngine creates a new correlation engine.
func NewCorrelationEngine() *CorrelationEngine {
	return &CorrelationEngine{}
}

// PairCorrelation returns the Pearson correlation coefficient between two
// columns over the rows where both hold numeric values. Fewer than two
// complete pairs, or zero variance in either column, yields
// core.ErrUndefinedCorrelation rather than a NaN that could be mistaken for
// a valid result.
func (e *CorrelationEngine) PairCorrelation(t *table.Table, colA, colB string) (float64, error) {
	for _, c := range []string{colA, colB} {
		if !t.HasColumn(c) {
			return 0, core.NewColumnNotFoundError(c)
		}
	}

	xs, ys := t.PairedSamples(colA, colB)
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: %s vs %s has %d complete pairs", core.ErrUndefinedCorrelation, colA, colB, len(xs))
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return 0, fmt.Errorf("%w: %s vs %s has a zero-variance side", core.ErrUndefinedCorrelation, colA, colB)
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, fmt.Errorf("%w: %s vs %s", core.ErrUndefinedCorrelation, colA, colB)
	}
	return r, nil
}

// TopCorrelations ranks the strongest distinct column pairs by absolute
// Pearson correlation. Each unordered pair appears exactly once, self-pairs
// are excluded, undefined pairs are skipped, and ties keep first-encountered
// order. At most limit entries are returned.
func (e *CorrelationEngine) TopCorrelations(t *table.Table, limit int) ([]CorrelationPair, error) {
	columns := table.NumericColumns(t)
	if len(columns) < 2 {
		return nil, fmt.Errorf("%w: found %d", core.ErrInsufficientNumericColumns, len(columns))
	}

	var pairs []CorrelationPair
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r, err := e.PairCorrelation(t, columns[i], columns[j])
			if err != nil {
				// Undefined pairs are omitted from the ranking, not fatal.
				continue
			}
			pairs = append(pairs, CorrelationPair{
				ColumnA:        columns[i],
				ColumnB:        columns[j],
				AbsCorrelation: math.Abs(r),
			})
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].AbsCorrelation > pairs[b].AbsCorrelation
	})

	if limit >= 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs, nil
}

package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"tunnelstats/domain/core"
	"tunnelstats/domain/table"
)

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Describe summarizes every numeric column of the table in column order.
// Columns without numeric values are skipped.
func Describe(t *table.Table) []ColumnSummary {
	var out []ColumnSummary
	for _, column := range table.NumericColumns(t) {
		data := numericSamples(t, column)
		if len(data) == 0 {
			continue
		}

		mean, _ := stats.Mean(data)
		stdDev, _ := stats.StandardDeviationSample(data)
		if len(data) < 2 {
			stdDev = 0
		}
		min, _ := stats.Min(data)
		max, _ := stats.Max(data)
		median, _ := stats.Median(data)
		// Percentile needs at least three samples and returns NaN with an
		// error below that; clamp to the extremes so a summary field is
		// always a finite number.
		q25, err := stats.Percentile(data, 25)
		if err != nil {
			q25 = min
		}
		q75, err := stats.Percentile(data, 75)
		if err != nil {
			q75 = max
		}

		out = append(out, ColumnSummary{
			Column: column,
			Count:  len(data),
			Mean:   mean,
			StdDev: stdDev,
			Min:    min,
			Q25:    q25,
			Median: median,
			Q75:    q75,
			Max:    max,
		})
	}
	return out
}

// MeanValue returns the mean of a column's numeric cells.
func MeanValue(t *table.Table, column string) (float64, error) {
	if !t.HasColumn(column) {
		return 0, core.NewColumnNotFoundError(column)
	}
	data := numericSamples(t, column)
	if len(data) == 0 {
		return 0, core.ErrInsufficientData
	}
	return stats.Mean(data)
}

// MinimumValue returns the smallest numeric cell across the given columns,
// the "minimum velocity" headline figure when fed the weak-zone columns.
func MinimumValue(t *table.Table, columns []string) (float64, error) {
	min := math.Inf(1)
	found := false
	for _, column := range columns {
		for _, v := range numericSamples(t, column) {
			if v < min {
				min = v
			}
			found = true
		}
	}
	if !found {
		return 0, core.ErrInsufficientData
	}
	return min, nil
}

func numericSamples(t *table.Table, column string) []float64 {
	var data []float64
	for _, row := range t.Rows {
		if v, ok := row[column].Float(); ok {
			data = append(data, v)
		}
	}
	return data
}

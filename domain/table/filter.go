package table

import (
	"tunnelstats/domain/core"
)

// FilterRange returns a new table containing the rows whose position cell
// lies inside [low, high] (both ends inclusive). Inverted bounds are a
// caller error and are rejected, never silently corrected. The input table
// is not mutated.
func FilterRange(t *Table, positionColumn string, low, high float64) (*Table, error) {
	if !t.HasColumn(positionColumn) {
		return nil, core.NewColumnNotFoundError(positionColumn)
	}
	if low > high {
		return nil, core.NewInvalidRangeError(low, high, "lower bound exceeds upper bound")
	}

	out := New(t.Columns)
	for _, row := range t.Rows {
		pos, ok := row[positionColumn].Float()
		if !ok {
			continue
		}
		if pos >= low && pos <= high {
			kept := make(Row, len(row))
			for k, v := range row {
				kept[k] = v
			}
			out.Rows = append(out.Rows, kept)
		}
	}
	return out, nil
}

// Extent returns the minimum and maximum numeric value of a column.
// ok is false when the column holds no numeric values.
func Extent(t *Table, column string) (min, max float64, ok bool) {
	for _, row := range t.Rows {
		v, isNum := row[column].Float()
		if !isNum {
			continue
		}
		if !ok {
			min, max, ok = v, v, true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}

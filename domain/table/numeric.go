package table

// NumericColumns returns the columns whose non-null cells are all numeric
// and which hold at least one numeric value, in table column order. This is
// recomputed after every cleaning or filtering step; it is never cached.
func NumericColumns(t *Table) []string {
	var out []string
	for _, c := range t.Columns {
		if isNumericColumn(t, c) {
			out = append(out, c)
		}
	}
	return out
}

func isNumericColumn(t *Table, column string) bool {
	count := 0
	for _, row := range t.Rows {
		v, ok := row[column]
		if !ok || v.IsNull() {
			continue
		}
		if v.Kind != KindNumber {
			return false
		}
		count++
	}
	return count > 0
}

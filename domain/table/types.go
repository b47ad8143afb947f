package table

// ValueKind discriminates cell contents.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindNumber
	KindText
)

// Value is a single cell: a number, a piece of text, or null.
type Value struct {
	Kind ValueKind `json:"kind"`
	Num  float64   `json:"num,omitempty"`
	Text string    `json:"text,omitempty"`
}

// Num constructs a numeric cell.
func Num(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// Str constructs a text cell.
func Str(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Null constructs an empty cell.
func Null() Value {
	return Value{Kind: KindNull}
}

// IsNull reports whether the cell carries no value.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Float returns the numeric value and whether the cell is numeric.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

// Row maps a column name to a cell value.
type Row map[string]Value

// Table is an ordered sequence of rows with a fixed column order.
// Column names are expected to be unique; Normalize enforces this.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// New creates an empty table with the given column order.
func New(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnValues returns the cells of one column in row order. Rows without
// the column yield null cells.
func (t *Table) ColumnValues(name string) []Value {
	values := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		if v, ok := row[name]; ok {
			values[i] = v
		} else {
			values[i] = Null()
		}
	}
	return values
}

// Clone returns a deep copy; transforms never mutate their input.
func (t *Table) Clone() *Table {
	out := New(t.Columns)
	out.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		copied := make(Row, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out.Rows[i] = copied
	}
	return out
}

// PairedSamples collects the rows where both columns hold numeric values,
// returning the aligned sample slices (pairwise-complete case handling).
func (t *Table) PairedSamples(colX, colY string) (xs, ys []float64) {
	for _, row := range t.Rows {
		x, okX := row[colX].Float()
		y, okY := row[colY].Float()
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

package ports

import (
	"tunnelstats/domain/table"
)

// TableReader loads a raw measurement table from a spreadsheet file.
// Implementations return the table exactly as stored: column names and cell
// types are not guaranteed clean on entry, normalization happens downstream.
type TableReader interface {
	ReadTable(path string) (*table.Table, error)
}

package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"tunnelstats/domain/table"
)

// DataReader handles reading Excel and CSV files into raw tables.
type DataReader struct{}

// NewDataReader creates a new data reader that handles both Excel and CSV files.
func NewDataReader() *DataReader {
	return &DataReader{}
}

// ReadTable reads a spreadsheet into a raw table. The file type is decided
// by extension: ".csv" is parsed as CSV, everything else goes through
// excelize using the workbook's first sheet.
func (r *DataReader) ReadTable(path string) (*table.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("spreadsheet not found: %s", path)
	}

	var (
		rows [][]string
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		rows, err = readCSVRows(path)
	} else {
		rows, err = readExcelRows(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row: %s", path)
	}

	t := buildTable(rows)
	log.Printf("[DataReader] Loaded %s (%d columns, %d rows)", filepath.Base(path), len(t.Columns), len(t.Rows))
	return t, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// buildTable converts raw string rows into a table, coercing each cell to
// number, text or null. Header names keep their original spelling; the
// normalizer owns canonicalization.
func buildTable(rows [][]string) *table.Table {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	t := table.New(headers)
	for _, raw := range rows[1:] {
		row := make(table.Row, len(headers))
		for j, header := range headers {
			if j < len(raw) {
				row[header] = coerceCell(raw[j])
			} else {
				row[header] = table.Null()
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// coerceCell maps a trimmed cell string to its typed value.
func coerceCell(cell string) table.Value {
	s := strings.TrimSpace(cell)
	if s == "" {
		return table.Null()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return table.Num(f)
	}
	return table.Str(s)
}

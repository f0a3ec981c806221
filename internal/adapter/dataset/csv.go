// internal/adapter/dataset/csv.go

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Table holds a parsed delimited file. No schema is enforced: the headers
// are whatever the first record contains and rows may be ragged.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Load reads the CSV file at path into a Table. The first record is taken
// as the header row; a file without one is a parse failure.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Source datasets are frequently ragged; column access is bounds-checked
	// instead of rejecting short rows.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: %q has no header row", path)
	}

	return &Table{
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

// ColumnIndex returns the index of the named column, or -1 if absent.
// Header names are matched exactly; some source datasets carry trailing
// spaces in header names and callers rely on that distinction.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Value returns the trimmed cell at the given column of a row, or "" when
// the row is too short to carry it.
func (t *Table) Value(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

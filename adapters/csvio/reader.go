// Package csvio reads and writes tables and views as CSV files
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"olymstats/domain/table"
	"olymstats/internal/errors"
)

// missingMarkers are cell spellings treated as absent on load
var missingMarkers = map[string]bool{
	"":   true,
	"NA": true,
}

// Reader loads an Olympic athlete-event CSV file into a table
type Reader struct {
	path string
}

// NewReader creates a reader for the given CSV file
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Source returns the file path backing this reader
func (r *Reader) Source() string {
	return r.path
}

// Read parses the full file. Cells in numeric columns are parsed as numbers
// when possible; unparsable cells stay textual so the cleaning pipeline can
// coerce or discard them. Missing markers load as missing values.
func (r *Reader) Read() (*table.Table, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "open csv file %s", r.path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parse csv file %s", r.path)
	}
	if len(records) == 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("csv file %s has no header row", r.path))
	}

	header := records[0]
	numeric := map[string]bool{}
	for _, col := range table.NumericColumns {
		numeric[col] = true
	}

	t := table.New(header)
	for _, record := range records[1:] {
		row := make(table.Row, len(header))
		for i, col := range header {
			if i >= len(record) {
				row[col] = table.NewMissingValue()
				continue
			}
			row[col] = parseCell(record[i], numeric[col])
		}
		t.Append(row)
	}
	return t, nil
}

func parseCell(raw string, numeric bool) table.Value {
	if missingMarkers[raw] {
		return table.NewMissingValue()
	}
	if numeric {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return table.NewNumericValue(f)
		}
	}
	return table.NewStringValue(raw)
}

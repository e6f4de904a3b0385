package table

// Row maps column names to typed values
type Row map[string]Value

// Clone returns a copy of the row
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered collection of rows over a fixed column set.
// The cleaning pipeline works on a private copy; the aggregation engine
// treats the table it is handed as immutable.
type Table struct {
	columns []string
	rows    []Row
}

// New creates an empty table with the given column order
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols}
}

// NewOlympic creates an empty table with the full Olympic schema
func NewOlympic() *Table {
	return New(Columns)
}

// Append adds a row to the table
func (t *Table) Append(row Row) {
	t.rows = append(t.rows, row)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the column order
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Rows returns the underlying row slice. Callers outside the cleaning
// pipeline must not mutate it.
func (t *Table) Rows() []Row {
	return t.rows
}

// Row returns the row at index i
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// SetRows replaces the row slice, used by row-dropping stages
func (t *Table) SetRows(rows []Row) {
	t.rows = rows
}

// HasColumn reports whether a column is part of the table
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.columns {
		if c == col {
			return true
		}
	}
	return false
}

// HasColumns is the schema capability check consulted by every cleaning
// stage: a stage referencing an absent column is not applicable and no-ops.
func (t *Table) HasColumns(cols ...string) bool {
	for _, c := range cols {
		if !t.HasColumn(c) {
			return false
		}
	}
	return true
}

// TextColumns returns the columns whose first non-missing value is text
func (t *Table) TextColumns() []string {
	var out []string
	for _, col := range t.columns {
		for _, row := range t.rows {
			v, ok := row[col]
			if !ok || v.IsMissing() {
				continue
			}
			if v.IsString() {
				out = append(out, col)
			}
			break
		}
	}
	return out
}

// NumericValues collects the non-missing numeric values of a column in row
// order. The empty result is the "empty statistical basis" case stages must
// treat as a zero-effect no-op.
func (t *Table) NumericValues(col string) []float64 {
	var out []float64
	for _, row := range t.rows {
		if v, ok := row[col]; ok && v.IsNumeric() {
			out = append(out, v.AsFloat64())
		}
	}
	return out
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	out := New(t.columns)
	out.rows = make([]Row, len(t.rows))
	for i, row := range t.rows {
		out.rows[i] = row.Clone()
	}
	return out
}

// Filter returns a new table holding the rows for which keep returns true.
// Rows are shared, not copied.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := New(t.columns)
	for _, row := range t.rows {
		if keep(row) {
			out.rows = append(out.rows, row)
		}
	}
	return out
}

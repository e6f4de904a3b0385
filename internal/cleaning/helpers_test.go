package cleaning

import (
	"strings"
	"testing"

	"olymstats/domain/table"
)

// newTable builds a table over the given columns from row literals
func newTable(cols []string, rows ...table.Row) *table.Table {
	t := table.New(cols)
	for _, r := range rows {
		t.Append(r)
	}
	return t
}

func str(s string) table.Value  { return table.NewStringValue(s) }
func num(f float64) table.Value { return table.NewNumericValue(f) }
func missing() table.Value      { return table.NewMissingValue() }

// ageColumn builds a single-column Age table from the given values
func ageColumn(values ...table.Value) *table.Table {
	rows := make([]table.Row, 0, len(values))
	for _, v := range values {
		rows = append(rows, table.Row{table.ColAge: v})
	}
	return newTable([]string{table.ColAge}, rows...)
}

func assertDetailContains(t *testing.T, out Outcome, want string) {
	t.Helper()
	if !strings.Contains(out.Detail, want) {
		t.Errorf("detail %q does not contain %q", out.Detail, want)
	}
}

// Package cleaning implements the multi-stage transformation pipeline that
// turns the raw Olympic record set into a table fit for statistical analysis.
//
// Every stage is a named transform over the working table. Stages never fail
// for data-shape reasons: a referenced column that is absent from the table
// makes the stage "not applicable" (a logged no-op), and an empty statistical
// basis (no rows to compute a mean or quantile over) leaves the column
// untouched with a zero-effect log line.
package cleaning

import (
	"fmt"

	"olymstats/domain/table"
)

// Outcome describes what a stage invocation changed
type Outcome struct {
	Affected int    `json:"affected"`
	Detail   string `json:"detail"`
}

// Stage is one named transformation step. Apply mutates the working table in
// place; the runner hands every run a private copy, so the caller's raw table
// is never touched.
type Stage struct {
	Name  string
	Apply func(t *table.Table) Outcome
}

// notApplicable is the shared outcome for stages whose columns are absent
func notApplicable(cols ...string) Outcome {
	return Outcome{Detail: fmt.Sprintf("not applicable, missing column(s) %v", cols)}
}

// noBasis is the shared outcome for stages with nothing to compute over
func noBasis(col string) Outcome {
	return Outcome{Detail: fmt.Sprintf("no values to compute over in %s, 0 affected", col)}
}

// isNumericColumn reports whether a column has at least one non-missing value
// and every non-missing value is numeric. Numeric-only strategies applied to
// any other column are a no-op, not a failure.
func isNumericColumn(t *table.Table, col string) bool {
	seen := false
	for _, row := range t.Rows() {
		v, ok := row[col]
		if !ok || v.IsMissing() {
			continue
		}
		if !v.IsNumeric() {
			return false
		}
		seen = true
	}
	return seen
}

// missingCount counts missing (or wholly absent) values in a column
func missingCount(t *table.Table, col string) int {
	n := 0
	for _, row := range t.Rows() {
		if v, ok := row[col]; !ok || v.IsMissing() {
			n++
		}
	}
	return n
}

// resolveTextColumns expands an empty selection to all text columns
func resolveTextColumns(t *table.Table, cols []string) []string {
	if len(cols) == 0 {
		return t.TextColumns()
	}
	var present []string
	for _, c := range cols {
		if t.HasColumn(c) {
			present = append(present, c)
		}
	}
	return present
}

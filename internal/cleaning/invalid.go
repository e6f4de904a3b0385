package cleaning

import (
	"fmt"

	"olymstats/domain/table"
)

// DropWhere removes rows whose column value fails the predicate
func DropWhere(col string, valid func(table.Value) bool) Stage {
	return Stage{
		Name: fmt.Sprintf("remove_invalid_values(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			before := t.Len()
			var kept []table.Row
			for _, row := range t.Rows() {
				if valid(row[col]) {
					kept = append(kept, row)
				}
			}
			t.SetRows(kept)
			removed := before - t.Len()
			return Outcome{Affected: removed, Detail: fmt.Sprintf("removed %d invalid rows", removed)}
		},
	}
}

// ReplaceInvalidCategory replaces values outside the allow-list with the
// replacement sentinel. Missing values stay missing: absent is not invalid.
func ReplaceInvalidCategory(col string, allowed []string, replacement string) Stage {
	return Stage{
		Name: fmt.Sprintf("replace_invalid_categorical(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			replaced := replaceInvalidCategory(t, col, allowed, replacement)
			return Outcome{Affected: replaced, Detail: fmt.Sprintf("replaced %d values with %q", replaced, replacement)}
		},
	}
}

func replaceInvalidCategory(t *table.Table, col string, allowed []string, replacement string) int {
	allow := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		allow[a] = true
	}
	replaced := 0
	for _, row := range t.Rows() {
		v, present := row[col]
		if !present || v.IsMissing() {
			continue
		}
		if v.IsString() && allow[v.AsString()] {
			continue
		}
		row[col] = table.NewStringValue(replacement)
		replaced++
	}
	return replaced
}

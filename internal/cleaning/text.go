package cleaning

import (
	"fmt"
	"regexp"
	"strings"

	"olymstats/domain/table"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// TrimSpace strips surrounding whitespace from text values in the given
// columns, or in every text column when none are given.
func TrimSpace(columns ...string) Stage {
	return Stage{
		Name: "strip_whitespace",
		Apply: func(t *table.Table) Outcome {
			cols := resolveTextColumns(t, columns)
			if len(cols) == 0 && len(columns) > 0 {
				return notApplicable(columns...)
			}
			changed := 0
			for _, col := range cols {
				changed += rewriteText(t, col, strings.TrimSpace)
			}
			return Outcome{Affected: changed, Detail: fmt.Sprintf("trimmed %d values across %d columns", changed, len(cols))}
		},
	}
}

// NormalizeText trims a column, collapses internal whitespace runs to a
// single space, and optionally lower-cases it.
func NormalizeText(col string, lowercase bool, collapseSpaces bool) Stage {
	return Stage{
		Name: fmt.Sprintf("normalize_text(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			changed := rewriteText(t, col, func(s string) string {
				s = strings.TrimSpace(s)
				if collapseSpaces {
					s = spaceRuns.ReplaceAllString(s, " ")
				}
				if lowercase {
					s = strings.ToLower(s)
				}
				return s
			})
			return Outcome{
				Affected: changed,
				Detail:   fmt.Sprintf("normalized %d values (lowercase=%t, collapse=%t)", changed, lowercase, collapseSpaces),
			}
		},
	}
}

// BlankToMissing converts blank and whitespace-only text to the missing
// marker. Runs before any text-dependent stage so blank strings are never
// mistaken for valid categorical values downstream.
func BlankToMissing(columns ...string) Stage {
	return Stage{
		Name: "replace_empty_string_with_missing",
		Apply: func(t *table.Table) Outcome {
			cols := resolveTextColumns(t, columns)
			if len(cols) == 0 && len(columns) > 0 {
				return notApplicable(columns...)
			}
			changed := 0
			for _, col := range cols {
				for _, row := range t.Rows() {
					v, present := row[col]
					if !present || !v.IsString() {
						continue
					}
					if strings.TrimSpace(v.AsString()) == "" {
						row[col] = table.NewMissingValue()
						changed++
					}
				}
			}
			return Outcome{Affected: changed, Detail: fmt.Sprintf("converted %d blank values to missing", changed)}
		},
	}
}

// rewriteText applies fn to every text value of a column, returning the
// number of values that changed
func rewriteText(t *table.Table, col string, fn func(string) string) int {
	changed := 0
	for _, row := range t.Rows() {
		v, present := row[col]
		if !present || !v.IsString() {
			continue
		}
		if out := fn(v.AsString()); out != v.AsString() {
			row[col] = table.NewStringValue(out)
			changed++
		}
	}
	return changed
}

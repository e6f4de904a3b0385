package cleaning

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"olymstats/domain/table"
)

// DropMissing removes rows that have a missing value in any of the given
// columns, or in any column at all when none are given.
func DropMissing(columns ...string) Stage {
	name := "remove_missing_values"
	if len(columns) > 0 {
		name = fmt.Sprintf("remove_missing_values(%s)", strings.Join(columns, ","))
	}
	return Stage{
		Name: name,
		Apply: func(t *table.Table) Outcome {
			checked := columns
			if len(checked) == 0 {
				checked = t.Columns()
			} else {
				var present []string
				for _, c := range checked {
					if t.HasColumn(c) {
						present = append(present, c)
					}
				}
				if len(present) == 0 {
					return notApplicable(columns...)
				}
				checked = present
			}

			before := t.Len()
			kept := t.Rows()[:0:0]
			for _, row := range t.Rows() {
				miss := false
				for _, c := range checked {
					if v, ok := row[c]; !ok || v.IsMissing() {
						miss = true
						break
					}
				}
				if !miss {
					kept = append(kept, row)
				}
			}
			t.SetRows(kept)
			removed := before - t.Len()
			return Outcome{Affected: removed, Detail: fmt.Sprintf("removed %d rows with missing values", removed)}
		},
	}
}

// FillMissingMean fills missing values of a numeric column with its mean
func FillMissingMean(col string) Stage {
	return fillWithColumnStat(fmt.Sprintf("fill_missing_with_mean(%s)", col), col, stats.Mean)
}

// FillMissingMedian fills missing values of a numeric column with its median.
// The median is less sensitive to outliers than the mean.
func FillMissingMedian(col string) Stage {
	return fillWithColumnStat(fmt.Sprintf("fill_missing_with_median(%s)", col), col, stats.Median)
}

func fillWithColumnStat(name, col string, stat func(stats.Float64Data) (float64, error)) Stage {
	return Stage{
		Name: name,
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			missing := missingCount(t, col)
			if missing == 0 {
				return Outcome{Detail: "filled 0 values"}
			}
			// Numeric-only strategy on a non-numeric column is a no-op
			if !isNumericColumn(t, col) {
				return noBasis(col)
			}
			fill, err := stat(t.NumericValues(col))
			if err != nil {
				return noBasis(col)
			}
			filled := fillMissingWith(t, col, table.NewNumericValue(fill))
			return Outcome{Affected: filled, Detail: fmt.Sprintf("filled %d values", filled)}
		},
	}
}

// FillMissingMode fills missing values with the column's most frequent value.
// Works for text and numeric columns alike; ties resolve to the value seen
// first in row order.
func FillMissingMode(col string) Stage {
	return Stage{
		Name: fmt.Sprintf("fill_missing_with_mode(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			missing := missingCount(t, col)
			if missing == 0 {
				return Outcome{Detail: "filled 0 values"}
			}
			mode, ok := columnMode(t, col)
			if !ok {
				return noBasis(col)
			}
			filled := fillMissingWith(t, col, mode)
			return Outcome{Affected: filled, Detail: fmt.Sprintf("filled %d values", filled)}
		},
	}
}

// FillMissingValue fills missing values with a fixed replacement
func FillMissingValue(col string, replacement table.Value) Stage {
	return Stage{
		Name: fmt.Sprintf("fill_missing_with_value(%s, %s)", col, replacement.String()),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			filled := fillMissingWith(t, col, replacement)
			return Outcome{Affected: filled, Detail: fmt.Sprintf("filled %d values", filled)}
		},
	}
}

// FillMissingGroupMean fills missing numeric values with the mean of the
// column inside the row's group, falling back to the global mean for rows
// whose group has no data.
func FillMissingGroupMean(col string, groupBy ...string) Stage {
	return Stage{
		Name: fmt.Sprintf("fill_missing_with_group_mean(%s, %v)", col, groupBy),
		Apply: func(t *table.Table) Outcome {
			return fillNumericGrouped(t, col, StrategyMean, true, groupBy)
		},
	}
}

// FillNumeric is the recipe's per-column imputation stage: group-wise
// mean/median first (grouped by sport and sex unless told otherwise), then the
// global statistic for values whose group had no data.
func FillNumeric(col string, strategy FillStrategy, useGroup bool, groupBy []string) Stage {
	if len(groupBy) == 0 {
		groupBy = []string{table.ColSport, table.ColSex}
	}
	return Stage{
		Name: fmt.Sprintf("fill_numeric(%s)", col),
		Apply: func(t *table.Table) Outcome {
			return fillNumericGrouped(t, col, strategy, useGroup, groupBy)
		},
	}
}

func fillNumericGrouped(t *table.Table, col string, strategy FillStrategy, useGroup bool, groupBy []string) Outcome {
	if !t.HasColumn(col) {
		return notApplicable(col)
	}
	missing := missingCount(t, col)
	if missing == 0 {
		return Outcome{Detail: "filled 0 values"}
	}
	if !isNumericColumn(t, col) {
		return noBasis(col)
	}

	stat := stats.Median
	if strategy == StrategyMean {
		stat = stats.Mean
	}

	global, err := stat(t.NumericValues(col))
	if err != nil {
		return noBasis(col)
	}

	groupStats := map[string]float64{}
	if useGroup && t.HasColumns(groupBy...) {
		grouped := map[string][]float64{}
		for _, row := range t.Rows() {
			v, ok := row[col]
			if !ok || !v.IsNumeric() {
				continue
			}
			grouped[groupKey(row, groupBy)] = append(grouped[groupKey(row, groupBy)], v.AsFloat64())
		}
		for key, vals := range grouped {
			if s, err := stat(vals); err == nil {
				groupStats[key] = s
			}
		}
	}

	filled := 0
	for _, row := range t.Rows() {
		if v, ok := row[col]; ok && !v.IsMissing() {
			continue
		}
		fill := global
		if s, ok := groupStats[groupKey(row, groupBy)]; ok {
			fill = s
		}
		row[col] = table.NewNumericValue(fill)
		filled++
	}
	return Outcome{
		Affected: filled,
		Detail:   fmt.Sprintf("filled %d values (strategy=%s, group=%t)", filled, strategy, useGroup && len(groupStats) > 0),
	}
}

// groupKey builds a deterministic group identity from the grouping columns.
// Missing group values form their own group, as they do for any other value.
func groupKey(row table.Row, groupBy []string) string {
	var b strings.Builder
	for i, col := range groupBy {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		b.WriteString(row[col].String())
	}
	return b.String()
}

func fillMissingWith(t *table.Table, col string, replacement table.Value) int {
	filled := 0
	for _, row := range t.Rows() {
		if v, ok := row[col]; !ok || v.IsMissing() {
			row[col] = replacement
			filled++
		}
	}
	return filled
}

func columnMode(t *table.Table, col string) (table.Value, bool) {
	counts := map[string]int{}
	first := map[string]table.Value{}
	order := []string{}
	for _, row := range t.Rows() {
		v, ok := row[col]
		if !ok || v.IsMissing() {
			continue
		}
		key := v.String()
		if _, seen := counts[key]; !seen {
			first[key] = v
			order = append(order, key)
		}
		counts[key]++
	}
	if len(order) == 0 {
		return table.Value{}, false
	}
	best := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[best] {
			best = key
		}
	}
	return first[best], true
}

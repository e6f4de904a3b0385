package cleaning

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"olymstats/domain/table"
)

// iqrBounds computes [Q1-k*IQR, Q3+k*IQR] over the column's numeric values
func iqrBounds(values []float64, multiplier float64) (lower, upper float64, ok bool) {
	q1, err := stats.Percentile(values, 25)
	if err != nil {
		return 0, 0, false
	}
	q3, err := stats.Percentile(values, 75)
	if err != nil {
		return 0, 0, false
	}
	iqr := q3 - q1
	return q1 - multiplier*iqr, q3 + multiplier*iqr, true
}

// ClipOutliersIQR saturates a column's outliers to the IQR bounds in place.
// Row count is preserved, which keeps subsequent group-imputation
// denominators honest. Missing values are untouched.
func ClipOutliersIQR(col string, multiplier float64) Stage {
	return Stage{
		Name: fmt.Sprintf("clip_outliers_iqr(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			lower, upper, ok := iqrBounds(t.NumericValues(col), multiplier)
			if !ok {
				return noBasis(col)
			}
			clipped := 0
			for _, row := range t.Rows() {
				v, present := row[col]
				if !present || !v.IsNumeric() {
					continue
				}
				switch f := v.AsFloat64(); {
				case f < lower:
					row[col] = table.NewNumericValue(lower)
					clipped++
				case f > upper:
					row[col] = table.NewNumericValue(upper)
					clipped++
				}
			}
			return Outcome{Affected: clipped, Detail: fmt.Sprintf("clipped %d values into [%g,%g]", clipped, lower, upper)}
		},
	}
}

// DropOutliersIQR deletes rows whose column value falls outside the IQR
// bounds. Rows without a comparable value in the column fail the bounds test
// and are dropped too, matching the comparison semantics this stage replaces.
func DropOutliersIQR(col string, multiplier float64) Stage {
	return Stage{
		Name: fmt.Sprintf("remove_outliers_iqr(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			lower, upper, ok := iqrBounds(t.NumericValues(col), multiplier)
			if !ok {
				return noBasis(col)
			}
			before := t.Len()
			var kept []table.Row
			for _, row := range t.Rows() {
				v, present := row[col]
				if !present || !v.IsNumeric() {
					continue
				}
				if f := v.AsFloat64(); f >= lower && f <= upper {
					kept = append(kept, row)
				}
			}
			t.SetRows(kept)
			removed := before - t.Len()
			return Outcome{Affected: removed, Detail: fmt.Sprintf("removed %d outlier rows outside [%g,%g]", removed, lower, upper)}
		},
	}
}

// ClipToValidRange clamps a column into its fixed domain-valid range. This is
// a hard domain sanity clamp, independent of any statistical outlier policy,
// and runs after IQR clipping and imputation so it bounds the final value.
func ClipToValidRange(col string) Stage {
	return Stage{
		Name: fmt.Sprintf("clip_to_valid_range(%s)", col),
		Apply: func(t *table.Table) Outcome {
			if !t.HasColumn(col) {
				return notApplicable(col)
			}
			r, defined := table.ValidRanges[col]
			if !defined {
				return Outcome{Detail: fmt.Sprintf("no valid range defined for %s, 0 affected", col)}
			}
			clipped := 0
			for _, row := range t.Rows() {
				v, present := row[col]
				if !present || !v.IsNumeric() {
					continue
				}
				f := v.AsFloat64()
				if f >= r.Low && f <= r.High {
					continue
				}
				bound := r.Low
				if f > r.High {
					bound = r.High
				}
				if v.Type == table.ValueTypeInteger {
					row[col] = table.NewIntegerValue(int64(bound))
				} else {
					row[col] = table.NewNumericValue(bound)
				}
				clipped++
			}
			return Outcome{Affected: clipped, Detail: fmt.Sprintf("clipped %d values into [%g,%g]", clipped, r.Low, r.High)}
		},
	}
}

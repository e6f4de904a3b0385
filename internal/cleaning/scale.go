package cleaning

import (
	"fmt"
	"strings"

	"olymstats/domain/table"
	"olymstats/ports"
)

// ScaleStandard standardizes the given numeric columns to zero mean and unit
// variance via the injected scaler. The scaler capability is resolved once at
// pipeline construction: a nil scaler degrades the stage to a logged no-op.
// Scaling is best effort and never required for downstream aggregation.
func ScaleStandard(scaler ports.Scaler, columns ...string) Stage {
	if len(columns) == 0 {
		columns = []string{table.ColAge, table.ColHeight, table.ColWeight}
	}
	return Stage{
		Name: "scale_data",
		Apply: func(t *table.Table) Outcome {
			if scaler == nil {
				return Outcome{Detail: "skipped, no scaler available"}
			}
			var scaledCols []string
			scaled := 0
			for _, col := range columns {
				if !t.HasColumn(col) || !isNumericColumn(t, col) {
					continue
				}
				var idx []int
				var vals []float64
				for i, row := range t.Rows() {
					if v, ok := row[col]; ok && v.IsNumeric() {
						idx = append(idx, i)
						vals = append(vals, v.AsFloat64())
					}
				}
				out, ok := scaler.Standardize(vals)
				if !ok {
					continue
				}
				for j, i := range idx {
					t.Row(i)[col] = table.NewNumericValue(out[j])
				}
				scaled += len(idx)
				scaledCols = append(scaledCols, col)
			}
			if len(scaledCols) == 0 {
				return Outcome{Detail: "no scalable columns, 0 affected"}
			}
			return Outcome{
				Affected: scaled,
				Detail:   fmt.Sprintf("standardized %d values in %s", scaled, strings.Join(scaledCols, ",")),
			}
		},
	}
}

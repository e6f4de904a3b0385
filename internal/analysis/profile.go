package analysis

import (
	"github.com/montanaflynn/stats"

	"olymstats/domain/views"
)

// ColumnProfile surveys every column: missing count, distinct value count,
// and min/max/mean for columns carrying numeric data. Non-numeric columns
// report zero for the statistical cells.
func (e *Engine) ColumnProfile() views.View {
	grid := views.Grid{
		Name:     "column_profile",
		KeyLabel: "Column",
		Columns:  []string{"Missing", "Distinct", "Min", "Max", "Mean"},
	}
	for _, col := range e.tbl.Columns() {
		missing := 0.0
		for _, row := range e.tbl.Rows() {
			if v, ok := row[col]; !ok || v.IsMissing() {
				missing++
			}
		}
		cells := map[string]float64{
			"Missing":  missing,
			"Distinct": float64(e.distinctCount(col)),
		}
		if values := e.tbl.NumericValues(col); len(values) > 0 {
			min, _ := stats.Min(values)
			max, _ := stats.Max(values)
			mean, _ := stats.Mean(values)
			cells["Min"] = min
			cells["Max"] = max
			cells["Mean"] = round2(mean)
		}
		grid.Rows = append(grid.Rows, views.GridRow{Key: col, Cells: cells})
	}
	return grid
}

package analysis

import (
	"olymstats/domain/table"
	"olymstats/domain/views"
)

// Overview summarizes the dataset: distinct athletes, countries, games,
// sports and the total number of medals awarded. Medal counting ignores
// missing medal values and the "No Medal" sentinel.
func (e *Engine) Overview() views.View {
	totalMedals := 0
	for _, row := range e.tbl.Rows() {
		v := row[table.ColMedal]
		if v.IsString() && v.AsString() != table.NoMedal {
			totalMedals++
		}
	}
	return views.Summary{
		Name: "overview",
		Fields: []views.Field{
			{Key: "total_athletes", Value: float64(e.distinctCount(table.ColID))},
			{Key: "total_countries", Value: float64(e.distinctCount(table.ColNOC))},
			{Key: "total_olympic_games", Value: float64(e.distinctCount(table.ColYear))},
			{Key: "total_sports", Value: float64(e.distinctCount(table.ColSport))},
			{Key: "total_medals", Value: float64(totalMedals)},
		},
	}
}

// GenderBreakdown reports athlete-entry counts per sex, the share of total
// entries each sex represents and the medals won, ordered by count descending.
func (e *Engine) GenderBreakdown() views.View {
	entries := newCounter()
	medals := newCounter()
	for _, row := range e.tbl.Rows() {
		v := row[table.ColSex]
		if v.IsMissing() {
			continue
		}
		sex := v.String()
		entries.add(sex, 1)
		if table.IsMedal(row[table.ColMedal]) {
			medals.add(sex, 1)
		}
	}
	total := 0.0
	for _, k := range entries.keys() {
		total += entries.get(k)
	}

	grid := views.Grid{
		Name:     "gender_breakdown",
		KeyLabel: "Sex",
		Columns:  []string{"Count", "Percent", "Medals"},
	}
	for _, sex := range entries.keysByCountDesc() {
		count := entries.get(sex)
		percent := 0.0
		if total > 0 {
			percent = round2(count / total * 100)
		}
		grid.Rows = append(grid.Rows, views.GridRow{
			Key: sex,
			Cells: map[string]float64{
				"Count":   count,
				"Percent": percent,
				"Medals":  medals.get(sex),
			},
		})
	}
	return grid
}

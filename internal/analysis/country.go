package analysis

import (
	"fmt"
	"sort"

	"olymstats/domain/table"
	"olymstats/domain/views"
)

// MedalsByCountryYear counts medal-bearing rows per (year, country) pair,
// ordered by year then country
func (e *Engine) MedalsByCountryYear() views.View {
	type pair struct {
		year float64
		noc  string
	}
	counts := map[pair]float64{}
	var order []pair
	for _, row := range e.medalRows() {
		year := row[table.ColYear]
		noc := row[table.ColNOC]
		if !year.IsNumeric() || noc.IsMissing() {
			continue
		}
		p := pair{year: year.AsFloat64(), noc: noc.String()}
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].year != order[j].year {
			return order[i].year < order[j].year
		}
		return order[i].noc < order[j].noc
	})

	grid := views.Grid{
		Name:     "medals_by_country_year",
		KeyLabel: "NOC",
		Columns:  []string{"Year", "Medals"},
	}
	for _, p := range order {
		grid.Rows = append(grid.Rows, views.GridRow{
			Key:   p.noc,
			Cells: map[string]float64{"Year": p.year, "Medals": counts[p]},
		})
	}
	return grid
}

// CountryPerformance charts one country's medal haul per year,
// chronologically. Unknown countries yield an empty series.
func (e *Engine) CountryPerformance(noc string) views.Series {
	c := newCounter()
	for _, row := range e.medalRows() {
		if rowNOC := row[table.ColNOC]; !rowNOC.IsString() || rowNOC.AsString() != noc {
			continue
		}
		if year := row[table.ColYear]; !year.IsMissing() {
			c.add(year.String(), 1)
		}
	}
	s := views.Series{
		Name:    fmt.Sprintf("country_performance_%s", noc),
		Measure: "Medals",
	}
	for _, year := range c.keysAscending() {
		s.Points = append(s.Points, views.Point{Key: year, Value: c.get(year)})
	}
	return s
}

// TopCountries returns the n countries with the most medal-bearing rows,
// descending, ties in input order
func (e *Engine) TopCountries(n int) []string {
	c := newCounter()
	for _, row := range e.medalRows() {
		if noc := row[table.ColNOC]; !noc.IsMissing() {
			c.add(noc.String(), 1)
		}
	}
	keys := c.keysByCountDesc()
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// Vietnam summarizes Vietnamese participation: distinct athletes and medals
// won. An empty summary means the table holds no Vietnamese rows.
func (e *Engine) Vietnam() views.View {
	const noc = "VIE"
	athletes := map[string]bool{}
	medals := 0.0
	for _, row := range e.tbl.Rows() {
		if v := row[table.ColNOC]; !v.IsString() || v.AsString() != noc {
			continue
		}
		if id := row[table.ColID]; !id.IsMissing() {
			athletes[id.String()] = true
		}
		if table.IsMedal(row[table.ColMedal]) {
			medals++
		}
	}
	v := views.Summary{Name: "vietnam_analysis"}
	if len(athletes) == 0 && medals == 0 {
		return v
	}
	v.Fields = []views.Field{
		{Key: "total_athletes", Value: float64(len(athletes))},
		{Key: "total_medals", Value: medals},
	}
	return v
}

// HostCities counts the distinct years each host city appears in,
// alphabetically by city
func (e *Engine) HostCities() views.View {
	years := map[string]map[string]bool{}
	var order []string
	for _, row := range e.tbl.Rows() {
		city := row[table.ColCity]
		year := row[table.ColYear]
		if city.IsMissing() || year.IsMissing() {
			continue
		}
		key := city.String()
		if _, seen := years[key]; !seen {
			years[key] = map[string]bool{}
			order = append(order, key)
		}
		years[key][year.String()] = true
	}
	sort.Strings(order)

	s := views.Series{Name: "host_cities", Measure: "Games"}
	for _, city := range order {
		s.Points = append(s.Points, views.Point{Key: city, Value: float64(len(years[city]))})
	}
	return s
}
